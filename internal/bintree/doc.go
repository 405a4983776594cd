// Package bintree implements an in-memory binary tree with a set of
// recursive queries over it.
//
// # Overview
//
// A Tree owns at most one root Node; every Node owns up to two children.
// Trees are assembled by hand or decoded from their string encoding and are
// then queried synchronously:
//
//   - MinDepth / MaxDepth: shortest and longest root-to-leaf path, in nodes
//   - MaxSum: maximum sum over any simple path in the tree
//   - NextLarger: smallest value strictly greater than a bound
//   - AreCousins: equal depth, different parents
//   - LowestCommonAncestor: deepest node that is an ancestor of both inputs
//
// # Building a Tree
//
//	tree := bintree.New(bintree.NewNode(1,
//	    bintree.Leaf(2),
//	    bintree.NewNode(3, bintree.Leaf(4), bintree.Leaf(5)),
//	))
//
//	tree.MaxDepth() // 3
//	tree.MinDepth() // 2
//
// # Node Identity
//
// AreCousins and LowestCommonAncestor compare nodes by pointer, not by value,
// since a tree may hold the same value many times. Use Find to obtain the
// node holding a value:
//
//	a, b := tree.Find(4), tree.Find(2)
//	lca, err := tree.LowestCommonAncestor(a, b)
//
// # Encoding
//
// Trees are encoded in pre-order, comma separated, with "null" marking an
// absent child:
//
//	s := bintree.Serialize(tree) // "1,2,null,null,3,4,null,null,5,null,null"
//	t, err := bintree.Deserialize[int](s)
//
// The zero Tree is empty and encodes as "null". Trees are not safe for
// concurrent mutation; callers sharing a tree must serialize access.
package bintree
