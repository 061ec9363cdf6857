package cky

import (
	"math/big"

	"github.com/npillmayer/gocky/cnf"
)

// countCell holds, for each derivable symbol, the number of its derivations.
type countCell struct {
	symbolIndex
	counts []*big.Int
}

type countChart struct {
	cells []countCell
}

var _ cells = (*countChart)(nil)

// A diagonal entry means "the symbol derives the token", not "the number of
// terminal rules deriving the token". Identical terminal rules are dropped by
// the grammar builder, so setting it to 1 does not lose derivations.
func (c *countChart) leaf(pos int, r *cnf.TerminalRule) {
	cell := &c.cells[at(pos, pos+1)]
	if k, isNew := cell.add(r.LHS()); isNew {
		cell.counts = append(cell.counts, big.NewInt(1))
	} else {
		cell.counts[k].SetInt64(1)
	}
}

func (c *countChart) combine(start, mid, end int, r *cnf.BinaryRule) {
	left, right := &c.cells[at(start, mid)], &c.cells[at(mid, end)]
	kB, _ := left.lookup(r.Left)
	kC, _ := right.lookup(r.Right)
	product := new(big.Int).Mul(left.counts[kB], right.counts[kC])
	cell := &c.cells[at(start, end)]
	if k, isNew := cell.add(r.LHS()); isNew {
		cell.counts = append(cell.counts, product)
	} else {
		cell.counts[k].Add(cell.counts[k], product)
	}
}

func (c *countChart) symbols(start, end int) []*cnf.Symbol {
	return c.cells[at(start, end)].syms
}

// Count returns the number of distinct derivations of sentence from the start
// symbol of g. The result is 0 if and only if Recognize(g, sentence) is false.
func Count(g cnf.View, sentence []string) *big.Int {
	n := len(sentence)
	if n == 0 {
		return new(big.Int)
	}
	c := &countChart{cells: make([]countCell, triangleSize(n))}
	fill(g, sentence, c)
	root := &c.cells[at(0, n)]
	k, ok := root.lookup(g.Start())
	if !ok {
		tracer().Debugf("count %v = 0", sentence)
		return new(big.Int)
	}
	tracer().Debugf("count %v = %s", sentence, root.counts[k])
	return new(big.Int).Set(root.counts[k])
}

// Ambiguity counts the derivations of sentence and reports whether the count
// lies within [min, max]. A negative max means no upper bound.
func Ambiguity(g cnf.View, sentence []string, min, max int64) (*big.Int, bool) {
	count := Count(g, sentence)
	if count.Cmp(big.NewInt(min)) < 0 {
		return count, false
	}
	if max >= 0 && count.Cmp(big.NewInt(max)) > 0 {
		return count, false
	}
	return count, true
}
