package cnf

import (
	"bytes"
	"sort"
	"strconv"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/gocky/cnf/sparse"
)

// View is the read-only access parsers have to a grammar.
//
// Implementations must be safe for concurrent use by multiple parsers, as long
// as no-one modifies the grammar. *Grammar is the default implementation.
type View interface {
	// Start returns the start symbol.
	Start() *Symbol
	// TerminalRules returns all rules A → token, with token matched exactly.
	TerminalRules(token string) []*TerminalRule
	// BinaryRules returns all rules A → B C.
	BinaryRules() []*BinaryRule
	// RulesFor returns all rules A → left right.
	RulesFor(left, right *Symbol) []*BinaryRule
}

// Grammar is an immutable collection of productions plus a start symbol.
// Create one with a GrammarBuilder.
type Grammar struct {
	Name          string
	start         *Symbol
	symbols       *symbolTable
	rules         []Production // in serial order
	terminalRules map[string][]*TerminalRule
	binaryRules   []*BinaryRule
	irregular     []*IrregularRule
	pairs         *sparse.IntMatrix // (B,C) → indices into binaryRules
}

var _ View = (*Grammar)(nil)

// Start returns the start symbol.
func (g *Grammar) Start() *Symbol {
	return g.start
}

// TerminalRules returns all rules A → token. Clients must not modify the result.
func (g *Grammar) TerminalRules(token string) []*TerminalRule {
	return g.terminalRules[token]
}

// BinaryRules returns all rules A → B C in serial order.
// Clients must not modify the result.
func (g *Grammar) BinaryRules() []*BinaryRule {
	return g.binaryRules
}

// RulesFor returns all rules A → left right in serial order.
func (g *Grammar) RulesFor(left, right *Symbol) []*BinaryRule {
	if left == nil || right == nil || g.pairs == nil {
		return nil
	}
	inx := g.pairs.Values(left.ID, right.ID)
	if len(inx) == 0 {
		return nil
	}
	rules := make([]*BinaryRule, len(inx))
	for i, k := range inx {
		rules[i] = g.binaryRules[k]
	}
	return rules
}

// IrregularRules returns all rules which are not in CNF. Parsers ignore them.
func (g *Grammar) IrregularRules() []*IrregularRule {
	return g.irregular
}

// Rule returns production no. i.
func (g *Grammar) Rule(i int) Production {
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// Size returns the number of productions, including irregular ones.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// SymbolByName returns the non-terminal for a name, or nil.
func (g *Grammar) SymbolByName(name string) *Symbol {
	return g.symbols.resolve(name)
}

// NonTerminals returns the names of all non-terminals, sorted.
func (g *Grammar) NonTerminals() []string {
	set := treeset.NewWithStringComparator()
	g.symbols.each(func(A *Symbol) {
		set.Add(A.Name)
	})
	return stringValues(set)
}

// Terminals returns all terminal tokens of CNF rules, sorted.
func (g *Grammar) Terminals() []string {
	set := treeset.NewWithStringComparator()
	for token := range g.terminalRules {
		set.Add(token)
	}
	return stringValues(set)
}

func stringValues(set *treeset.Set) []string {
	values := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		values = append(values, v.(string))
	}
	return values
}

// Dump is a debugging helper, listing all rules to the tracer.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("start symbol is %s", g.start)
	for _, r := range g.rules {
		if _, ok := r.(*IrregularRule); ok {
			tracer().Debugf("%s    (not CNF, unreachable)", r)
			continue
		}
		tracer().Debugf("%s", r)
	}
	tracer().Debugf("-------------------------------------------------------")
}

// --- Fingerprint -----------------------------------------------------------

// grammarSignature is the hashable content of a grammar: the start symbol and
// the set of productions, independent of rule order and grammar name.
type grammarSignature struct {
	Start string   `hash:"name:start"`
	Rules []string `hash:"name:rules"`
}

// Fingerprint returns a content hash of the grammar. Two grammars with the same
// start symbol and the same set of productions have the same fingerprint.
func (g *Grammar) Fingerprint() string {
	sig := grammarSignature{
		Start: g.start.Name,
		Rules: make([]string, len(g.rules)),
	}
	for i, r := range g.rules {
		sig.Rules[i] = ruleKey(r)
	}
	sort.Strings(sig.Rules)
	h, err := structhash.Hash(sig, 1)
	if err != nil { // cannot happen for plain strings
		tracer().Errorf("cannot hash grammar %s: %v", g.Name, err)
		return ""
	}
	return h
}

// ruleKey renders a production without its serial number. Symbol names and
// tokens are quoted, so rules with different structure never share a key.
func ruleKey(r Production) string {
	var b bytes.Buffer
	b.WriteString(strconv.Quote(r.LHS().Name))
	b.WriteString(" ->")
	switch rule := r.(type) {
	case *TerminalRule:
		writeKeyItem(&b, rhsItem{name: rule.Token, terminal: true})
	case *BinaryRule:
		writeKeyItem(&b, rhsItem{name: rule.Left.Name})
		writeKeyItem(&b, rhsItem{name: rule.Right.Name})
	case *IrregularRule:
		for _, item := range rule.rhs {
			writeKeyItem(&b, item)
		}
	}
	return b.String()
}

func writeKeyItem(b *bytes.Buffer, item rhsItem) {
	if item.terminal {
		b.WriteString(" t")
	} else {
		b.WriteString(" n")
	}
	b.WriteString(strconv.Quote(item.name))
}
