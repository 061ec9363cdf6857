package cky

import (
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/gocky/cnf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

//     S ⟶ S S | A S | B A | 'a'
//     A ⟶ 'a' | 'b'
//     B ⟶ 'b'
func makeMixedGrammar(t *testing.T) *cnf.Grammar {
	b := cnf.NewGrammarBuilder("mixed")
	b.LHS("S").N("S").N("S").End()
	b.LHS("S").N("A").N("S").End()
	b.LHS("S").N("B").N("A").End()
	b.LHS("S").T("a").End()
	b.LHS("A").T("a").End()
	b.LHS("A").T("b").End()
	b.LHS("B").T("b").End()
	return build(t, b)
}

// allSentences returns all sentences over an alphabet, up to length max.
func allSentences(alphabet []string, max int) [][]string {
	var result [][]string
	level := [][]string{{}}
	for n := 1; n <= max; n++ {
		var next [][]string
		for _, prefix := range level {
			for _, a := range alphabet {
				s := make([]string, len(prefix), len(prefix)+1)
				copy(s, prefix)
				next = append(next, append(s, a))
			}
		}
		result = append(result, next...)
		level = next
	}
	return result
}

func TestModesAgree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocky.cky")
	defer teardown()
	//
	g := makeMixedGrammar(t)
	accepted := 0
	for _, sentence := range allSentences([]string{"a", "b"}, 6) {
		ok := Recognize(g, sentence)
		count := Count(g, sentence)
		trees, err := Parse(g, sentence)
		if err != nil {
			t.Fatal(err)
		}
		if ok != (count.Sign() > 0) {
			t.Errorf("%v: recognize = %v, but count = %s", sentence, ok, count)
		}
		if ok == trees.Empty() {
			t.Errorf("%v: recognize = %v, but %d trees", sentence, ok, trees.Size())
		}
		if !count.IsInt64() || count.Int64() != int64(trees.Size()) {
			t.Errorf("%v: count = %s, but %d distinct trees", sentence, count, trees.Size())
		}
		yield := strings.Join(sentence, " ")
		for _, tree := range trees.Trees() {
			if tree.Label != "S" || strings.Join(tree.Leaves(), " ") != yield {
				t.Errorf("%v: unexpected tree %s", sentence, tree)
			}
		}
		if ok {
			accepted++
		}
	}
	t.Logf("%d sentences accepted", accepted)
	if accepted == 0 {
		t.Errorf("expected some sentences to be accepted")
	}
}

func TestUnambiguousGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocky.cky")
	defer teardown()
	//
	// right-branching lists a b b … b
	b := cnf.NewGrammarBuilder("list")
	b.LHS("L").N("A").N("R").End()
	b.LHS("R").N("B").N("R").End()
	b.LHS("R").T("b").End()
	b.LHS("L").T("a").End()
	b.LHS("A").T("a").End()
	b.LHS("B").T("b").End()
	g := build(t, b)
	for _, sentence := range allSentences([]string{"a", "b"}, 7) {
		count := Count(g, sentence)
		if count.Int64() > 1 {
			t.Errorf("%v: expected at most one derivation, counted %s", sentence, count)
		}
	}
	if c := Count(g, words("a b b b b")); c.Int64() != 1 {
		t.Errorf("expected 'a b b b b' to have exactly one derivation, counted %s", c)
	}
}

func TestConcurrentParses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocky.cky")
	defer teardown()
	//
	g := makeCatalanGrammar(t)
	counts := make([]int, 8)
	var wg sync.WaitGroup
	for i := range counts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			trees, err := Parse(g, as(i+1))
			if err == nil {
				counts[i] = trees.Size()
			}
		}(i)
	}
	wg.Wait()
	for i, c := range counts {
		if expected := catalan(int64(i)); int64(c) != expected.Int64() {
			t.Errorf("a^%d: expected %s trees, have %d", i+1, expected, c)
		}
	}
}
