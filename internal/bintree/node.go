package bintree

import (
	"golang.org/x/exp/constraints"
)

// Node is a single tree vertex. Left and Right are nil when the child is absent.
// A node must have at most one parent; nothing checks this at runtime.
type Node[T constraints.Signed] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// NewNode creates a node with the given value and children.
func NewNode[T constraints.Signed](value T, left, right *Node[T]) *Node[T] {
	return &Node[T]{
		Value: value,
		Left:  left,
		Right: right,
	}
}

// Leaf creates a node with no children.
func Leaf[T constraints.Signed](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// IsLeaf returns true if the node has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// equalNodes reports whether two subtrees have the same shape and values.
func equalNodes[T constraints.Signed](a, b *Node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Value != b.Value {
		return false
	}
	return equalNodes(a.Left, b.Left) && equalNodes(a.Right, b.Right)
}
