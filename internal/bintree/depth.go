package bintree

import (
	"golang.org/x/exp/constraints"
)

// MinDepth returns the number of nodes on the shortest root-to-leaf path.
// An empty tree has depth 0.
func (t *Tree[T]) MinDepth() int {
	if t.IsEmpty() {
		return 0
	}
	return depth(t.Root, shorter)
}

// MaxDepth returns the number of nodes on the longest root-to-leaf path.
// An empty tree has depth 0.
func (t *Tree[T]) MaxDepth() int {
	if t.IsEmpty() {
		return 0
	}
	return depth(t.Root, longer)
}

// depth measures root-to-leaf paths below n, choosing between two subtrees
// with pick. A node with one child is not a leaf, so the missing side never
// counts as a path.
func depth[T constraints.Signed](n *Node[T], pick func(a, b int) int) int {
	switch {
	case n.Left == nil && n.Right == nil:
		return 1
	case n.Left == nil:
		return 1 + depth(n.Right, pick)
	case n.Right == nil:
		return 1 + depth(n.Left, pick)
	default:
		return 1 + pick(depth(n.Left, pick), depth(n.Right, pick))
	}
}

func shorter(a, b int) int { return min(a, b) }

func longer(a, b int) int { return max(a, b) }
