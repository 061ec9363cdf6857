package cky

import (
	"github.com/npillmayer/gocky/cnf"
)

// --- Triangular tables -----------------------------------------------------

// Spans (start, end) with 0 ≤ start < end ≤ n are mapped onto a flat slice:
//
//     (0,1)  (0,2) (1,2)  (0,3) (1,3) (2,3)  …
//
// resulting in n·(n+1)/2 cells for a sentence of length n.
func triangleSize(n int) int {
	return n * (n + 1) / 2
}

func at(start, end int) int {
	return end*(end-1)/2 + start
}

// symbolIndex is an insertion-ordered set of symbols. It is the common part of
// all cell types.
type symbolIndex struct {
	syms  []*cnf.Symbol
	index map[*cnf.Symbol]int
}

// add inserts A, if not already present, and returns its position.
func (si *symbolIndex) add(A *cnf.Symbol) (int, bool) {
	if k, ok := si.index[A]; ok {
		return k, false
	}
	if si.index == nil {
		si.index = make(map[*cnf.Symbol]int)
	}
	si.index[A] = len(si.syms)
	si.syms = append(si.syms, A)
	return len(si.syms) - 1, true
}

func (si *symbolIndex) lookup(A *cnf.Symbol) (int, bool) {
	k, ok := si.index[A]
	return k, ok
}

// --- Chart fill ------------------------------------------------------------

// cells is the mode-specific storage of a chart. fill calls leaf for every
// matching terminal rule and combine for every binary rule A → B C with B
// derivable over (start, mid) and C derivable over (mid, end).
type cells interface {
	leaf(pos int, r *cnf.TerminalRule)
	combine(start, mid, end int, r *cnf.BinaryRule)
	symbols(start, end int) []*cnf.Symbol
}

// fill is the chart-fill procedure shared by all query modes.
func fill(g cnf.View, sentence []string, c cells) {
	n := len(sentence)
	for i, word := range sentence {
		rules := g.TerminalRules(word)
		if len(rules) == 0 {
			tracer().Debugf("no terminal rule for token %q at position %d", word, i)
		}
		for _, r := range rules {
			c.leaf(i, r)
		}
	}
	for width := 2; width <= n; width++ {
		for start := 0; start+width <= n; start++ {
			end := start + width
			for mid := start + 1; mid < end; mid++ {
				right := c.symbols(mid, end)
				if len(right) == 0 {
					continue
				}
				for _, B := range c.symbols(start, mid) {
					for _, C := range right {
						for _, r := range g.RulesFor(B, C) {
							c.combine(start, mid, end, r)
						}
					}
				}
			}
		}
	}
	dumpChart(c, n)
}

// === Recognition ===========================================================

// Chart is a recognition chart, holding for every span the set of
// non-terminals derivable over it.
type Chart struct {
	start *cnf.Symbol
	n     int
	cells []symbolIndex
}

var _ cells = (*Chart)(nil)

// Fill creates and fills a recognition chart for a sentence.
func Fill(g cnf.View, sentence []string) *Chart {
	c := &Chart{
		start: g.Start(),
		n:     len(sentence),
		cells: make([]symbolIndex, triangleSize(len(sentence))),
	}
	fill(g, sentence, c)
	return c
}

// Recognize returns true if sentence is in the language of g.
func Recognize(g cnf.View, sentence []string) bool {
	accept := Fill(g, sentence).Accepts()
	tracer().Debugf("recognize %v = %v", sentence, accept)
	return accept
}

// Len returns the length of the sentence the chart is for.
func (c *Chart) Len() int {
	return c.n
}

// Accepts is true if the start symbol is derivable over the whole sentence.
// The chart for an empty sentence never accepts.
func (c *Chart) Accepts() bool {
	if c.n == 0 {
		return false
	}
	return c.Contains(c.start, 0, c.n)
}

// Symbols returns the non-terminals derivable over span (start, end), in order
// of derivation. It returns nil for spans outside the chart.
// Clients must not modify the result.
func (c *Chart) Symbols(start, end int) []*cnf.Symbol {
	if start < 0 || end > c.n || start >= end {
		return nil
	}
	return c.cells[at(start, end)].syms
}

// Contains is true if A is derivable over span (start, end).
func (c *Chart) Contains(A *cnf.Symbol, start, end int) bool {
	if start < 0 || end > c.n || start >= end {
		return false
	}
	_, ok := c.cells[at(start, end)].lookup(A)
	return ok
}

func (c *Chart) leaf(pos int, r *cnf.TerminalRule) {
	c.cells[at(pos, pos+1)].add(r.LHS())
}

func (c *Chart) combine(start, mid, end int, r *cnf.BinaryRule) {
	c.cells[at(start, end)].add(r.LHS())
}

func (c *Chart) symbols(start, end int) []*cnf.Symbol {
	return c.cells[at(start, end)].syms
}
