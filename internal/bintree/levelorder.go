package bintree

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// FromLevelOrder builds a tree from a breadth-first listing such as
// "1,2,3,null,null,4,5". Each present node takes the next two entries as its
// left and right children; "null" or an empty entry marks a missing child.
// Entries for children of missing nodes are not listed. Trailing entries
// beyond the last parent are an error.
func FromLevelOrder[T constraints.Signed](s string) (*Tree[T], error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if strings.TrimSpace(s) == "" {
		return New[T](nil), nil
	}

	tokens := strings.Split(s, Separator)
	nodes := make([]*Node[T], len(tokens))
	for i, raw := range tokens {
		tok := strings.TrimSpace(raw)
		if tok == "" || tok == NullToken {
			continue
		}
		value, err := parseValue[T](tok)
		if err != nil {
			return nil, fmt.Errorf("%w at entry %d: %q", ErrInvalidToken, i, tok)
		}
		nodes[i] = Leaf(value)
	}

	// queue holds nodes still waiting for children, in breadth-first order.
	queue := []*Node[T]{nodes[0]}
	if nodes[0] == nil {
		queue = queue[:0]
	}
	next := 1
	for len(queue) > 0 && next < len(nodes) {
		parent := queue[0]
		queue = queue[1:]

		parent.Left = nodes[next]
		next++
		if next < len(nodes) {
			parent.Right = nodes[next]
			next++
		}
		for _, child := range []*Node[T]{parent.Left, parent.Right} {
			if child != nil {
				queue = append(queue, child)
			}
		}
	}

	if next < len(nodes) {
		return nil, fmt.Errorf("%w: %d entries after the last level", ErrTrailingTokens, len(nodes)-next)
	}

	return New(nodes[0]), nil
}
