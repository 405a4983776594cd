package bintree

import (
	"golang.org/x/exp/constraints"
)

// candidate tracks the smallest value above a bound seen during a traversal.
type candidate[T constraints.Signed] struct {
	bound T
	value T
	found bool
}

func (c *candidate[T]) visit(v T) {
	if v <= c.bound {
		return
	}
	if !c.found || v < c.value {
		c.value = v
		c.found = true
	}
}

// NextLarger returns the smallest value in the tree strictly greater than
// lowerBound. The second result is false if no such value exists.
// The tree is not ordered, so every node is visited.
func (t *Tree[T]) NextLarger(lowerBound T) (T, bool) {
	c := candidate[T]{bound: lowerBound}
	if !t.IsEmpty() {
		visitNextLarger(t.Root, &c)
	}
	return c.value, c.found
}

func visitNextLarger[T constraints.Signed](n *Node[T], c *candidate[T]) {
	if n == nil {
		return
	}
	c.visit(n.Value)
	visitNextLarger(n.Left, c)
	visitNextLarger(n.Right, c)
}
