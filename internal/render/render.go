// Package render draws binary trees as text.
//
// Drawing is delegated to github.com/shivamMg/ppds/tree, which lays out
// general trees. Binary trees need one extra rule: when a node has only one
// child, the missing side is drawn with a marker so left and right stay
// distinguishable.
//
//	out := render.Sprint(tree, render.Options{NullMarker: "·"})
package render

import (
	"strconv"

	"github.com/shivamMg/ppds/tree"
	"golang.org/x/exp/constraints"

	"github.com/KilimcininKorOglu/bintree/internal/bintree"
)

// DefaultNullMarker is drawn in place of a missing child.
const DefaultNullMarker = "·"

// EmptyTree is returned for a tree without a root.
const EmptyTree = "(empty)"

// Options controls how a tree is drawn.
type Options struct {
	// Horizontal draws the root on the left and grows to the right.
	Horizontal bool
	// NullMarker is drawn for the absent side of a one-child node.
	NullMarker string
}

// Sprint returns the drawing of t.
func Sprint[T constraints.Signed](t *bintree.Tree[T], opts Options) string {
	if t.IsEmpty() {
		return EmptyTree
	}
	if opts.NullMarker == "" {
		opts.NullMarker = DefaultNullMarker
	}

	root := adapt(t.Root, opts.NullMarker)
	if opts.Horizontal {
		return tree.SprintHr(root)
	}
	return tree.Sprint(root)
}

// node adapts a bintree node to the ppds tree.Node interface. ppds keys its
// layout by node identity, so the adapter tree is built once and Children
// returns the same pointers on every call.
type node struct {
	data     string
	children []*node
}

// adapt builds the adapter tree below n. A nil n becomes a marker
// placeholder with no children; a leaf gets no placeholders.
func adapt[T constraints.Signed](n *bintree.Node[T], marker string) *node {
	if n == nil {
		return &node{data: marker}
	}
	a := &node{data: strconv.FormatInt(int64(n.Value), 10)}
	if !n.IsLeaf() {
		a.children = []*node{adapt(n.Left, marker), adapt(n.Right, marker)}
	}
	return a
}

func (a *node) Data() interface{} {
	return a.data
}

func (a *node) Children() (children []tree.Node) {
	for _, c := range a.children {
		children = append(children, tree.Node(c))
	}
	return
}
