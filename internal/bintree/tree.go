package bintree

import (
	"golang.org/x/exp/constraints"
)

// Tree wraps an optional root node. The zero value is an empty tree.
type Tree[T constraints.Signed] struct {
	Root *Node[T]
}

// New creates a tree with the given root. A nil root yields an empty tree.
func New[T constraints.Signed](root *Node[T]) *Tree[T] {
	return &Tree[T]{Root: root}
}

// IsEmpty returns true if the tree has no root.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.Root == nil
}

// Size returns the number of nodes in the tree.
func (t *Tree[T]) Size() int {
	if t.IsEmpty() {
		return 0
	}
	return countNodes(t.Root)
}

func countNodes[T constraints.Signed](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.Left) + countNodes(n.Right)
}

// Values returns the node values in pre-order.
func (t *Tree[T]) Values() []T {
	if t.IsEmpty() {
		return nil
	}
	values := make([]T, 0, t.Size())
	return appendPreOrder(t.Root, values)
}

func appendPreOrder[T constraints.Signed](n *Node[T], values []T) []T {
	if n == nil {
		return values
	}
	values = append(values, n.Value)
	values = appendPreOrder(n.Left, values)
	return appendPreOrder(n.Right, values)
}

// Find returns the first node in pre-order holding value, or nil if the
// value does not occur in the tree.
func (t *Tree[T]) Find(value T) *Node[T] {
	if t.IsEmpty() {
		return nil
	}
	return findValue(t.Root, value)
}

func findValue[T constraints.Signed](n *Node[T], value T) *Node[T] {
	if n == nil {
		return nil
	}
	if n.Value == value {
		return n
	}
	if found := findValue(n.Left, value); found != nil {
		return found
	}
	return findValue(n.Right, value)
}

// Contains returns true if target is one of the tree's nodes.
// Nodes are compared by identity.
func (t *Tree[T]) Contains(target *Node[T]) bool {
	_, ok := t.locate(target)
	return ok
}

// Equal reports whether both trees have the same shape and the same values
// at corresponding positions.
func (t *Tree[T]) Equal(other *Tree[T]) bool {
	var a, b *Node[T]
	if t != nil {
		a = t.Root
	}
	if other != nil {
		b = other.Root
	}
	return equalNodes(a, b)
}

// String returns the pre-order encoding of the tree.
func (t *Tree[T]) String() string {
	return Serialize(t)
}
