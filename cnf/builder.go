package cnf

import (
	"fmt"

	"github.com/npillmayer/gocky/cnf/sparse"
	"github.com/pkg/errors"
)

// GrammarBuilder is a fluent interface for constructing grammars.
//
//    b := cnf.NewGrammarBuilder("G")
//    b.LHS("S").N("A").N("B").End()
//
// A builder must not be used any more after Grammar() has been called.
type GrammarBuilder struct {
	g         *Grammar
	startName string
	seen      map[string]Production // rule keys, for dropping duplicates
	done      bool
}

// NewGrammarBuilder creates a builder for a grammar with a given name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{
		g: &Grammar{
			Name:          name,
			symbols:       newSymbolTable(),
			rules:         make([]Production, 0, 64),
			terminalRules: make(map[string][]*TerminalRule),
		},
		seen: make(map[string]Production),
	}
}

// Start sets the start symbol. If it is never called, the left-hand side of
// the first rule is the start symbol.
func (b *GrammarBuilder) Start(name string) *GrammarBuilder {
	b.startName = name
	return b
}

// LHS starts a new rule with left-hand side non-terminal name.
func (b *GrammarBuilder) LHS(name string) *RuleBuilder {
	if b.done {
		panic("grammar builder used after grammar has been created")
	}
	return &RuleBuilder{b: b, lhs: name}
}

// Grammar finishes building and returns the grammar. It returns an error if
// the grammar has no rules or if the start symbol has no rules.
func (b *GrammarBuilder) Grammar() (*Grammar, error) {
	b.done = true
	g := b.g
	if len(g.rules) == 0 {
		return nil, errors.Errorf("grammar %s has no rules", g.Name)
	}
	if b.startName == "" {
		b.startName = g.rules[0].LHS().Name
	}
	if g.start = g.symbols.resolve(b.startName); g.start == nil {
		return nil, errors.Errorf("start symbol %s of grammar %s is not defined", b.startName, g.Name)
	}
	n := g.symbols.size()
	g.pairs = sparse.NewIntMatrix(n, n)
	for i, r := range g.binaryRules {
		g.pairs.Add(r.Left.ID, r.Right.ID, int32(i))
	}
	tracer().Infof("grammar %s: %d rules, %d binary, %d irregular, %d non-terminals, %d symbol pairs",
		g.Name, len(g.rules), len(g.binaryRules), len(g.irregular), n, g.pairs.ValueCount())
	return g, nil
}

// --- Rule builder ----------------------------------------------------------

// RuleBuilder collects the right-hand side of a single rule.
type RuleBuilder struct {
	b   *GrammarBuilder
	lhs string
	rhs []rhsItem
}

// N appends a non-terminal to the right-hand side.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, rhsItem{name: name})
	return rb
}

// T appends a terminal token to the right-hand side.
func (rb *RuleBuilder) T(token string) *RuleBuilder {
	rb.rhs = append(rb.rhs, rhsItem{name: token, terminal: true})
	return rb
}

// Epsilon finishes an epsilon-production A → ε. Epsilon productions are not
// in CNF and will be unreachable.
func (rb *RuleBuilder) Epsilon() Production {
	rb.rhs = nil
	return rb.End()
}

// End finishes the rule and adds it to the grammar. Adding an identical rule
// a second time has no effect and returns the first instance.
func (rb *RuleBuilder) End() Production {
	b := rb.b
	if b.done {
		panic("grammar builder used after grammar has been created")
	}
	g := b.g
	lhs, _ := g.symbols.resolveOrDefine(rb.lhs)
	serial := len(g.rules)
	var r Production
	switch {
	case len(rb.rhs) == 1 && rb.rhs[0].terminal:
		r = &TerminalRule{lhs: lhs, Token: rb.rhs[0].name, serial: serial}
	case len(rb.rhs) == 2 && !rb.rhs[0].terminal && !rb.rhs[1].terminal:
		B, _ := g.symbols.resolveOrDefine(rb.rhs[0].name)
		C, _ := g.symbols.resolveOrDefine(rb.rhs[1].name)
		r = &BinaryRule{lhs: lhs, Left: B, Right: C, serial: serial}
	default:
		for _, item := range rb.rhs {
			if !item.terminal {
				g.symbols.resolveOrDefine(item.name)
			}
		}
		r = &IrregularRule{lhs: lhs, rhs: rb.rhs, serial: serial}
	}
	key := ruleKey(r)
	if prev, ok := b.seen[key]; ok {
		tracer().Debugf("dropping duplicate rule %s", r)
		return prev
	}
	b.seen[key] = r
	g.rules = append(g.rules, r)
	switch rule := r.(type) {
	case *TerminalRule:
		g.terminalRules[rule.Token] = append(g.terminalRules[rule.Token], rule)
	case *BinaryRule:
		g.binaryRules = append(g.binaryRules, rule)
	case *IrregularRule:
		tracer().Debugf("rule %s is not in CNF and will be unreachable", rule)
		g.irregular = append(g.irregular, rule)
	default:
		panic(fmt.Sprintf("unknown production type %T", r))
	}
	return r
}
