/*
Package cky implements a bottom-up chart parser for grammars in Chomsky Normal
Form, following the Cocke–Kasami–Younger algorithm.

The chart is a triangular table indexed by spans (start, end) over the input
sentence. Its diagonal cells (i, i+1) are filled from terminal rules matching
the token at position i; every other cell (start, end) is filled by combining
a symbol derivable over (start, mid) with a symbol derivable over (mid, end),
for each start < mid < end, via a binary rule. Cells are filled by increasing
span length, resulting in O(n³·|G|) time.

There are three query modes over the same chart-fill procedure:

    ok := cky.Recognize(g, sentence)        // is sentence in L(g)?
    trees, err := cky.Parse(g, sentence)    // all distinct derivation trees
    n := cky.Count(g, sentence)             // number of derivations, as *big.Int

The modes differ only in what a chart cell stores: bare presence of a symbol,
a list of backpointers explaining every derivation of a symbol, or the number
of derivations of a symbol. Count(g, s) is always equal to Parse(g, s).Size().

Tree extraction is memoized per (symbol, start, end). Nevertheless, the number
of trees may grow exponentially with sentence length for highly ambiguous
grammars. Clients may set a budget on the number of tree nodes to construct:

    trees, err := cky.Parse(g, sentence, cky.WithBudget(100000))
    if errors.Is(err, cky.ErrBudgetExceeded) { … }

If no budget is given, the configuration key "cky-tree-budget" (package gconf)
is consulted. A value of zero means unlimited.

Sentences of length zero are never part of a language, as there are no epsilon
productions in CNF: Recognize returns false, Count returns 0 and Parse returns
an empty tree set.

Grammars are accessed read-only through cnf.View. The same grammar may be used
by concurrent parses; charts are private to a single call.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cky

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocky.cky'.
func tracer() tracing.Trace {
	return tracing.Select("gocky.cky")
}
