package cky

import (
	"fmt"

	"github.com/npillmayer/gocky"
	"github.com/npillmayer/gocky/cnf"
	"github.com/pkg/errors"
)

// Backpointer explains one derivation of a symbol over a span. It either
// records the token of a terminal rule A → 'a', or the split point and the
// right-hand side symbols of a binary rule A → B C.
type Backpointer struct {
	Token       string
	Left, Right *cnf.Symbol
	Mid         int
}

// IsLeaf is true for backpointers of terminal rules.
func (bp Backpointer) IsLeaf() bool {
	return bp.Left == nil
}

func (bp Backpointer) String() string {
	if bp.IsLeaf() {
		return fmt.Sprintf("'%s'", bp.Token)
	}
	return fmt.Sprintf("%s@%d %s", bp.Left, bp.Mid, bp.Right)
}

// parseCell holds, for each derivable symbol, all backpointers for it.
// A symbol is present if and only if it has at least one backpointer.
type parseCell struct {
	symbolIndex
	derivs [][]Backpointer
}

type parseChart struct {
	n     int
	cells []parseCell
}

var _ cells = (*parseChart)(nil)

func newParseChart(n int) *parseChart {
	return &parseChart{n: n, cells: make([]parseCell, triangleSize(n))}
}

func (c *parseChart) leaf(pos int, r *cnf.TerminalRule) {
	cell := &c.cells[at(pos, pos+1)]
	if _, isNew := cell.add(r.LHS()); isNew {
		cell.derivs = append(cell.derivs, []Backpointer{{Token: r.Token}})
	}
}

func (c *parseChart) combine(start, mid, end int, r *cnf.BinaryRule) {
	cell := &c.cells[at(start, end)]
	bp := Backpointer{Left: r.Left, Right: r.Right, Mid: mid}
	if k, isNew := cell.add(r.LHS()); isNew {
		cell.derivs = append(cell.derivs, []Backpointer{bp})
	} else {
		cell.derivs[k] = append(cell.derivs[k], bp)
	}
}

func (c *parseChart) symbols(start, end int) []*cnf.Symbol {
	return c.cells[at(start, end)].syms
}

// derivations returns the backpointers for A over (start, end).
func (c *parseChart) derivations(A *cnf.Symbol, start, end int) []Backpointer {
	cell := &c.cells[at(start, end)]
	if k, ok := cell.lookup(A); ok {
		return cell.derivs[k]
	}
	return nil
}

// --- Tree extraction -------------------------------------------------------

type memoKey struct {
	sym  *cnf.Symbol
	span gocky.Span
}

// extractor enumerates derivation trees from a filled parse chart. Trees for
// a (symbol, span) triple are constructed once and shared between parents.
type extractor struct {
	chart  *parseChart
	memo   map[memoKey][]*Tree
	budget int // 0 = unlimited
	nodes  int // nodes constructed so far
}

func (x *extractor) enumerate(A *cnf.Symbol, span gocky.Span) ([]*Tree, error) {
	key := memoKey{sym: A, span: span}
	if trees, ok := x.memo[key]; ok {
		return trees, nil
	}
	var trees []*Tree
	for _, bp := range x.chart.derivations(A, span.From(), span.To()) {
		if bp.IsLeaf() {
			if err := x.spend(); err != nil {
				return nil, err
			}
			trees = append(trees, preterminal(A.Name, bp.Token, span.From()))
			continue
		}
		lspan, rspan := span.Split(bp.Mid)
		lefts, err := x.enumerate(bp.Left, lspan)
		if err != nil {
			return nil, err
		}
		rights, err := x.enumerate(bp.Right, rspan)
		if err != nil {
			return nil, err
		}
		for _, l := range lefts {
			for _, r := range rights {
				if err := x.spend(); err != nil {
					return nil, err
				}
				trees = append(trees, inner(A.Name, l, r))
			}
		}
	}
	x.memo[key] = trees
	return trees, nil
}

func (x *extractor) spend() error {
	x.nodes++
	if x.budget > 0 && x.nodes > x.budget {
		return errors.Wrapf(ErrBudgetExceeded, "more than %d tree nodes", x.budget)
	}
	return nil
}

// Parse returns all distinct derivation trees of sentence from the start
// symbol of g. The result is empty if and only if Recognize(g, sentence) is
// false.
//
// If a node budget is in effect (see WithBudget) and extraction would exceed
// it, Parse returns an error wrapping ErrBudgetExceeded.
func Parse(g cnf.View, sentence []string, opts ...Option) (*TreeSet, error) {
	conf := newConfig(opts)
	trees := newTreeSet()
	n := len(sentence)
	if n == 0 {
		return trees, nil
	}
	chart := newParseChart(n)
	fill(g, sentence, chart)
	x := &extractor{
		chart:  chart,
		memo:   make(map[memoKey][]*Tree),
		budget: conf.budget,
	}
	roots, err := x.enumerate(g.Start(), gocky.Span{0, n})
	if err != nil {
		tracer().Errorf("parse %v: %v", sentence, err)
		return nil, err
	}
	for _, t := range roots {
		trees.add(t)
	}
	tracer().Infof("parse %v: %d tree(s), %d nodes constructed", sentence, trees.Size(), x.nodes)
	return trees, nil
}
