package bintree

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Ancestor errors.
var (
	ErrNodeNotInTree = errors.New("node not in tree")
)

// LowestCommonAncestor returns the deepest node that is an ancestor of both a
// and b. A node counts as its own ancestor, so if one input is an ancestor of
// the other it is returned. ErrNodeNotInTree is returned if either input is
// nil or not part of this tree.
func (t *Tree[T]) LowestCommonAncestor(a, b *Node[T]) (*Node[T], error) {
	if !t.Contains(a) || !t.Contains(b) {
		return nil, ErrNodeNotInTree
	}
	return findAncestor(t.Root, a, b), nil
}

// findAncestor returns a or b if found below n, or their common ancestor when
// they sit in different subtrees of some node.
func findAncestor[T constraints.Signed](n, a, b *Node[T]) *Node[T] {
	if n == nil || n == a || n == b {
		return n
	}

	left := findAncestor(n.Left, a, b)
	right := findAncestor(n.Right, a, b)

	if left != nil && right != nil {
		return n
	}
	if left != nil {
		return left
	}
	return right
}
