package main

import (
	"testing"

	"github.com/npillmayer/gocky/cky"
	"github.com/npillmayer/gocky/cnf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLeveledTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocky.cli")
	defer teardown()
	//
	b := cnf.NewGrammarBuilder("G")
	b.LHS("S").N("NP").N("VP").End()
	b.LHS("NP").T("a").End()
	b.LHS("VP").T("b").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	trees, err := cky.Parse(g, []string{"a", "b"})
	if err != nil || trees.Size() != 1 {
		t.Fatalf("expected one tree, have %v", err)
	}
	ll := leveledTree(trees.Trees()[0])
	levels := []int{0, 1, 2, 1, 2}
	labels := []string{"S", "NP", "", "VP", ""}
	if len(ll) != len(levels) {
		t.Fatalf("expected %d list items, have %d", len(levels), len(ll))
	}
	for i, item := range ll {
		if item.Level != levels[i] {
			t.Errorf("item #%d: expected level %d, is %d", i, levels[i], item.Level)
		}
		if labels[i] != "" && item.Text != labels[i] {
			t.Errorf("item #%d: expected label %s, is %s", i, labels[i], item.Text)
		}
	}
}
