package bintree

import (
	"golang.org/x/exp/constraints"
)

// position describes where a node sits in a tree.
// parent is nil for the root.
type position[T constraints.Signed] struct {
	depth  int
	parent *Node[T]
}

// locate searches for target by identity and returns its depth and parent.
func (t *Tree[T]) locate(target *Node[T]) (position[T], bool) {
	if t.IsEmpty() || target == nil {
		return position[T]{}, false
	}
	return locateFrom(t.Root, target, position[T]{})
}

func locateFrom[T constraints.Signed](n, target *Node[T], at position[T]) (position[T], bool) {
	if n == nil {
		return position[T]{}, false
	}
	if n == target {
		return at, true
	}

	below := position[T]{depth: at.depth + 1, parent: n}
	if pos, ok := locateFrom(n.Left, target, below); ok {
		return pos, true
	}
	return locateFrom(n.Right, target, below)
}

// AreCousins returns true if a and b are both in the tree, at the same depth,
// with different parents. Siblings, a node paired with itself, and nodes that
// do not belong to this tree are never cousins.
func (t *Tree[T]) AreCousins(a, b *Node[T]) bool {
	posA, ok := t.locate(a)
	if !ok {
		return false
	}
	posB, ok := t.locate(b)
	if !ok {
		return false
	}
	return posA.depth == posB.depth && posA.parent != posB.parent
}
