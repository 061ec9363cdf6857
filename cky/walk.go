package cky

import (
	"github.com/npillmayer/gocky"
)

// TopDown traverses a tree top-down, applying Listener-methods for all nodes
// encountered. It returns a user-defined value, calculated by the listener.
func (t *Tree) TopDown(listener Listener, dir Direction, breakmode Breakmode) interface{} {
	if t == nil {
		return nil
	}
	tracer().Debugf("TopDown starting at node %s%v", t.Label, t.Span)
	return t.traverseTopDown(listener, dir, breakmode, 0)
}

func (t *Tree) traverseTopDown(listener Listener, dir Direction, breakmode Breakmode, level int) interface{} {
	ctxt := NodeCtxt{Span: t.Span, Level: level}
	if t.IsPreterminal() {
		return listener.Terminal(t.Label, t.Word, ctxt)
	}
	values := make([]interface{}, len(t.Children))
	doContinue := listener.EnterNode(t.Label, t.Children, ctxt)
	if doContinue || breakmode == Continue { // listener signalled us to traverse children nodes
		i := 0
		if dir == RtoL {
			i = len(t.Children) - 1
		}
		for ; i >= 0 && i < len(t.Children); i += int(dir) {
			values[i] = t.Children[i].traverseTopDown(listener, dir, breakmode, level+1)
		}
	}
	return listener.ExitNode(t.Label, values, ctxt)
}

// Direction lets clients decide wether children nodes should be traversed left-to-right
// (default) or right-to-left.
type Direction int

// Children nodes may be traversed left-to-right (default) or right-to-left.
const (
	LtoR Direction = 1
	RtoL Direction = -1
)

// Breakmode is a client hint wether to stop traversing on break-signals or not.
type Breakmode int

// Setting Continue will always traverse a complete (sub-)tree. Break will skip
// traversing sub-tree as soon as an Enter-function signals a break.
const (
	Continue Breakmode = iota
	Break
)

// --- Listener --------------------------------------------------------------

// Listener is a type for walking a derivation tree.
//
// EnterNode is called for inner nodes before their children are visited. It
// returns a boolean value indicating if the traversal should continue to the
// children of this node. ExitNode receives the values of the children (nil for
// children not visited) and may return a user-defined value to be propagated
// upwards. Terminal is called for preterminal nodes.
type Listener interface {
	EnterNode(label string, children []*Tree, ctxt NodeCtxt) bool
	ExitNode(label string, values []interface{}, ctxt NodeCtxt) interface{}
	Terminal(label string, word string, ctxt NodeCtxt) interface{}
}

// NodeCtxt is a context structure for Listeners.
type NodeCtxt struct {
	Span  gocky.Span // span of input tokens covered by this node
	Level int        // nesting level, 0 for the root
}
