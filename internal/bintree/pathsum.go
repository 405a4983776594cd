package bintree

import (
	"math"

	"golang.org/x/exp/constraints"
)

// pathSum accumulates the best path sum seen so far.
type pathSum struct {
	best int64
	set  bool
}

func (p *pathSum) offer(sum int64) {
	if !p.set || sum > p.best {
		p.best = sum
		p.set = true
	}
}

// MaxSum returns the maximum sum of node values along any simple path in the
// tree. The path may start and end at any node and need not pass through the
// root. An empty tree yields 0. Sums beyond the int64 range saturate at
// math.MaxInt64 or math.MinInt64.
func (t *Tree[T]) MaxSum() int64 {
	if t.IsEmpty() {
		return 0
	}
	var acc pathSum
	maxGain(t.Root, &acc)
	return acc.best
}

// maxGain returns the best sum of a downward path starting at n, or 0 when
// every such path is negative. The best path bending at n is offered to acc.
func maxGain[T constraints.Signed](n *Node[T], acc *pathSum) int64 {
	if n == nil {
		return 0
	}

	left := maxGain(n.Left, acc)
	right := maxGain(n.Right, acc)
	v := int64(n.Value)

	acc.offer(addSat(addSat(v, left), right))

	return max(0, addSat(v, max(left, right)))
}

// addSat returns a+b clamped to the int64 range.
func addSat(a, b int64) int64 {
	sum := a + b
	if (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0) {
		if a >= 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return sum
}
