package cky

import (
	"bytes"
	"strconv"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/gocky"
)

// Tree is a derivation tree. Preterminal nodes carry the token they derive
// and have no children; all other nodes have exactly two children.
//
// Subtrees may be shared between trees of the same parse. Clients must treat
// trees as immutable.
type Tree struct {
	Label    string     // non-terminal name
	Word     string     // token, for preterminals only
	Children []*Tree    // left and right child, nil for preterminals
	Span     gocky.Span // input positions covered by the tree
}

func preterminal(label, word string, pos int) *Tree {
	return &Tree{
		Label: label,
		Word:  word,
		Span:  gocky.Span{pos, pos + 1},
	}
}

func inner(label string, left, right *Tree) *Tree {
	return &Tree{
		Label:    label,
		Children: []*Tree{left, right},
		Span:     gocky.Span{left.Span.From(), right.Span.To()},
	}
}

// IsPreterminal is true for nodes deriving a single token.
func (t *Tree) IsPreterminal() bool {
	return len(t.Children) == 0
}

// Leaves returns the tokens of the tree, left to right.
func (t *Tree) Leaves() []string {
	leaves := make([]string, 0, t.Span.Len())
	return t.appendLeaves(leaves)
}

func (t *Tree) appendLeaves(leaves []string) []string {
	if t.IsPreterminal() {
		return append(leaves, t.Word)
	}
	for _, ch := range t.Children {
		leaves = ch.appendLeaves(leaves)
	}
	return leaves
}

// Height returns the number of nodes on the longest path from t to a
// preterminal, including both. Token leaves are not counted.
func (t *Tree) Height() int {
	h := 0
	for _, ch := range t.Children {
		if chh := ch.Height(); chh > h {
			h = chh
		}
	}
	return h + 1
}

// Equal is true if t and other have the same structure, labels and tokens.
func (t *Tree) Equal(other *Tree) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	if t.Label != other.Label || t.Word != other.Word || len(t.Children) != len(other.Children) {
		return false
	}
	for i, ch := range t.Children {
		if !ch.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// String returns a bracketed representation of a tree, e.g.
//
//     (S (NP a) (VP b))
//
func (t *Tree) String() string {
	if t == nil {
		return "()"
	}
	var b bytes.Buffer
	t.write(&b)
	return b.String()
}

func (t *Tree) write(b *bytes.Buffer) {
	b.WriteByte('(')
	b.WriteString(t.Label)
	if t.IsPreterminal() {
		b.WriteByte(' ')
		b.WriteString(t.Word)
	}
	for _, ch := range t.Children {
		b.WriteByte(' ')
		ch.write(b)
	}
	b.WriteByte(')')
}

// writeIdentity writes a representation of t with all labels and words
// quoted. Unlike the bracketed form, it is distinct for trees which are not
// Equal, whatever characters labels and words contain.
func (t *Tree) writeIdentity(b *bytes.Buffer) {
	b.WriteByte('(')
	b.WriteString(strconv.Quote(t.Label))
	if t.IsPreterminal() {
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(t.Word))
	}
	for _, ch := range t.Children {
		b.WriteByte(' ')
		ch.writeIdentity(b)
	}
	b.WriteByte(')')
}

// --- Tree sets -------------------------------------------------------------

// treeKey orders trees by their bracketed string. Trees which print the same
// but differ in structure are told apart by their identity.
type treeKey struct {
	text     string
	identity string
}

func keyOf(t *Tree) treeKey {
	var b bytes.Buffer
	t.writeIdentity(&b)
	return treeKey{text: t.String(), identity: b.String()}
}

func treeKeyComparator(k1, k2 interface{}) int {
	t1, t2 := k1.(treeKey), k2.(treeKey)
	if c := utils.StringComparator(t1.text, t2.text); c != 0 {
		return c
	}
	return utils.StringComparator(t1.identity, t2.identity)
}

// TreeSet is a set of distinct derivation trees, ordered by their bracketed
// string representation.
type TreeSet struct {
	trees *treemap.Map
}

func newTreeSet() *TreeSet {
	return &TreeSet{trees: treemap.NewWith(treeKeyComparator)}
}

// add inserts t, if an equal tree is not already present.
func (ts *TreeSet) add(t *Tree) bool {
	key := keyOf(t)
	if _, found := ts.trees.Get(key); found {
		return false
	}
	ts.trees.Put(key, t)
	return true
}

// Size returns the number of trees in the set.
func (ts *TreeSet) Size() int {
	if ts == nil {
		return 0
	}
	return ts.trees.Size()
}

// Empty is true for a set without trees.
func (ts *TreeSet) Empty() bool {
	return ts.Size() == 0
}

// Contains is true if a tree equal to t is in the set.
func (ts *TreeSet) Contains(t *Tree) bool {
	if ts == nil || t == nil {
		return false
	}
	_, found := ts.trees.Get(keyOf(t))
	return found
}

// Trees returns the trees of the set in deterministic order.
func (ts *TreeSet) Trees() []*Tree {
	if ts == nil {
		return nil
	}
	trees := make([]*Tree, 0, ts.trees.Size())
	it := ts.trees.Iterator()
	for it.Next() {
		trees = append(trees, it.Value().(*Tree))
	}
	return trees
}

// Each calls f for every tree of the set, in deterministic order, until f
// returns false.
func (ts *TreeSet) Each(f func(i int, t *Tree) bool) {
	if ts == nil {
		return
	}
	it := ts.trees.Iterator()
	for i := 0; it.Next(); i++ {
		if !f(i, it.Value().(*Tree)) {
			return
		}
	}
}

// Strings returns the bracketed representations of all trees, in order.
func (ts *TreeSet) Strings() []string {
	if ts == nil {
		return nil
	}
	keys := ts.trees.Keys()
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = k.(treeKey).text
	}
	return s
}
