package cky

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTreeEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocky.cky")
	defer teardown()
	//
	t1 := inner("S", preterminal("NP", "a", 0), preterminal("VP", "b", 1))
	t2 := inner("S", preterminal("NP", "a", 0), preterminal("VP", "b", 1))
	t3 := inner("S", preterminal("NP", "a", 0), preterminal("VP", "c", 1))
	if !t1.Equal(t2) {
		t.Errorf("expected %s to equal %s", t1, t2)
	}
	if t1.Equal(t3) {
		t.Errorf("expected %s to differ from %s", t1, t3)
	}
	if t1.Equal(nil) {
		t.Errorf("expected tree not to equal nil")
	}
	if t1.Span.From() != 0 || t1.Span.To() != 2 {
		t.Errorf("expected span (0…2), is %v", t1.Span)
	}
	if t1.Height() != 2 {
		t.Errorf("expected height 2, is %d", t1.Height())
	}
}

func TestTreeSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocky.cky")
	defer teardown()
	//
	ts := newTreeSet()
	t1 := inner("S", preterminal("B", "a", 0), preterminal("C", "b", 1))
	t2 := inner("S", preterminal("A", "a", 0), preterminal("C", "b", 1))
	if !ts.add(t1) || !ts.add(t2) {
		t.Fatalf("expected distinct trees to be added")
	}
	if ts.add(inner("S", preterminal("B", "a", 0), preterminal("C", "b", 1))) {
		t.Errorf("expected equal tree not to be added twice")
	}
	if ts.Size() != 2 || !ts.Contains(t1) {
		t.Errorf("expected set of 2 trees containing %s, have %v", t1, ts.Strings())
	}
	if first := ts.Trees()[0]; first != t2 {
		t.Errorf("expected %s to come first, is %s", t2, first)
	}
	n := 0
	ts.Each(func(i int, tree *Tree) bool {
		n++
		return false
	})
	if n != 1 {
		t.Errorf("expected Each to stop after first tree, visited %d", n)
	}
	t3 := inner("S", preterminal("A", "x) (B", 0), preterminal("C", "b", 1))
	t4 := inner("S", preterminal("A", "x", 0), preterminal("B) (C", "b", 1))
	if t3.String() != t4.String() || t3.Equal(t4) {
		t.Fatalf("expected %s and %s to print alike and differ", t3, t4)
	}
	if !ts.add(t3) || !ts.add(t4) || !ts.Contains(t3) || !ts.Contains(t4) {
		t.Errorf("expected trees printing alike to both be in the set")
	}
	var empty *TreeSet
	if !empty.Empty() || empty.Trees() != nil {
		t.Errorf("expected nil set to be empty")
	}
}

// bracketer re-creates the bracketed representation of a tree.
type bracketer struct {
	maxLevel int
}

func (l *bracketer) EnterNode(label string, children []*Tree, ctxt NodeCtxt) bool {
	if ctxt.Level > l.maxLevel {
		l.maxLevel = ctxt.Level
	}
	return label != "X"
}

func (l *bracketer) ExitNode(label string, values []interface{}, ctxt NodeCtxt) interface{} {
	s := make([]string, 0, len(values)+1)
	s = append(s, label)
	for _, v := range values {
		if v != nil {
			s = append(s, v.(string))
		}
	}
	return "(" + strings.Join(s, " ") + ")"
}

func (l *bracketer) Terminal(label string, word string, ctxt NodeCtxt) interface{} {
	return "(" + label + " " + word + ")"
}

func TestTopDown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocky.cky")
	defer teardown()
	//
	g := makeSplitGrammar(t)
	trees, _ := Parse(g, words("a b c"))
	for _, tree := range trees.Trees() {
		l := &bracketer{}
		v := tree.TopDown(l, LtoR, Continue)
		if v.(string) != tree.String() {
			t.Errorf("expected walk to yield %s, is %v", tree, v)
		}
		if l.maxLevel != 1 {
			t.Errorf("expected inner nodes at levels 0 and 1, max is %d", l.maxLevel)
		}
	}
	// (S (A a) (X (B b) (C c))): listener breaks at X
	tree := trees.Trees()[0]
	if v := tree.TopDown(&bracketer{}, LtoR, Break); v.(string) != "(S (A a) (X))" {
		t.Errorf("expected break at X, have %v", v)
	}
	if v := tree.TopDown(&bracketer{}, RtoL, Continue); v.(string) != tree.String() {
		t.Errorf("expected right-to-left walk to keep child positions, have %v", v)
	}
}
