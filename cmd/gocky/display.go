package main

import (
	"fmt"

	"github.com/npillmayer/gocky/cky"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// printTrees prints all trees of a set, either bracketed or rendered.
func printTrees(trees *cky.TreeSet, render bool) {
	pterm.Info.Println(fmt.Sprintf("%d tree(s)", trees.Size()))
	trees.Each(func(i int, t *cky.Tree) bool {
		if render {
			pterm.Println(fmt.Sprintf("#%d", i))
			showTree(t)
		} else {
			pterm.Println(fmt.Sprintf("#%d %s", i, t))
		}
		return true
	})
}

func showTree(t *cky.Tree) {
	ll := leveledTree(t)
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

// leveledTree converts a derivation tree to a pterm leveled list. Tokens are
// placed one level below their preterminal.
func leveledTree(t *cky.Tree) pterm.LeveledList {
	lister := &treeLister{}
	t.TopDown(lister, cky.LtoR, cky.Continue)
	return lister.ll
}

type treeLister struct {
	ll pterm.LeveledList
}

var _ cky.Listener = (*treeLister)(nil)

func (tl *treeLister) EnterNode(label string, children []*cky.Tree, ctxt cky.NodeCtxt) bool {
	tl.ll = append(tl.ll, pterm.LeveledListItem{
		Level: ctxt.Level,
		Text:  label,
	})
	return true
}

func (tl *treeLister) ExitNode(label string, values []interface{}, ctxt cky.NodeCtxt) interface{} {
	return nil
}

func (tl *treeLister) Terminal(label string, word string, ctxt cky.NodeCtxt) interface{} {
	tl.ll = append(tl.ll, pterm.LeveledListItem{
		Level: ctxt.Level,
		Text:  label,
	}, pterm.LeveledListItem{
		Level: ctxt.Level + 1,
		Text:  pterm.Cyan(word),
	})
	return nil
}
