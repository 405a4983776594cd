package main

import (
	"flag"
	"fmt"

	"github.com/KilimcininKorOglu/bintree/internal/bintree"
)

// depthCmd handles the depth command.
func depthCmd(args []string) int {
	f := newTreeFlags("depth")
	if help, err := f.parse(args); err != nil {
		return 1
	} else if help {
		printDepthUsage(stdout)
		return 0
	}

	s, ok := f.open()
	if !ok {
		return 1
	}
	defer s.logger.Close()

	minDepth, maxDepth := s.tree.MinDepth(), s.tree.MaxDepth()
	s.logger.Debug("depth computed", "min", minDepth, "max", maxDepth)
	fmt.Fprintf(stdout, "min=%d max=%d\n", minDepth, maxDepth)
	return 0
}

// maxSumCmd handles the maxsum command.
func maxSumCmd(args []string) int {
	f := newTreeFlags("maxsum")
	if help, err := f.parse(args); err != nil {
		return 1
	} else if help {
		printMaxSumUsage(stdout)
		return 0
	}

	s, ok := f.open()
	if !ok {
		return 1
	}
	defer s.logger.Close()

	fmt.Fprintln(stdout, s.tree.MaxSum())
	return 0
}

// nextCmd handles the next command.
func nextCmd(args []string) int {
	f := newTreeFlags("next")
	bound := f.fs.Int64("bound", 0, "Lower bound (exclusive)")
	if help, err := f.parse(args); err != nil {
		return 1
	} else if help {
		printNextUsage(stdout)
		return 0
	}

	if !f.isSet("bound") {
		fmt.Fprintln(stderr, "Error: -bound is required")
		return 1
	}

	s, ok := f.open()
	if !ok {
		return 1
	}
	defer s.logger.Close()

	value, found := s.tree.NextLarger(*bound)
	if !found {
		fmt.Fprintln(stdout, "none")
		return 0
	}
	fmt.Fprintln(stdout, value)
	return 0
}

// pairFlags adds the -a and -b flags used by cousins and lca.
func pairFlags(f *treeFlags) (a, b *int64) {
	a = f.fs.Int64("a", 0, "Value of the first node")
	b = f.fs.Int64("b", 0, "Value of the second node")
	return a, b
}

// requirePair checks that -a and -b were given.
func requirePair(f *treeFlags) bool {
	for _, name := range []string{"a", "b"} {
		if !f.isSet(name) {
			fmt.Fprintf(stderr, "Error: -%s is required\n", name)
			return false
		}
	}
	return true
}

// cousinsCmd handles the cousins command.
// Nodes are located by value; the first match in pre-order is used.
func cousinsCmd(args []string) int {
	f := newTreeFlags("cousins")
	a, b := pairFlags(f)
	if help, err := f.parse(args); err != nil {
		return 1
	} else if help {
		printCousinsUsage(stdout)
		return 0
	}

	if !requirePair(f) {
		return 1
	}

	s, ok := f.open()
	if !ok {
		return 1
	}
	defer s.logger.Close()

	fmt.Fprintln(stdout, s.tree.AreCousins(s.tree.Find(*a), s.tree.Find(*b)))
	return 0
}

// lcaCmd handles the lca command.
func lcaCmd(args []string) int {
	f := newTreeFlags("lca")
	a, b := pairFlags(f)
	if help, err := f.parse(args); err != nil {
		return 1
	} else if help {
		printLCAUsage(stdout)
		return 0
	}

	if !requirePair(f) {
		return 1
	}

	s, ok := f.open()
	if !ok {
		return 1
	}
	defer s.logger.Close()

	ancestor, err := s.tree.LowestCommonAncestor(s.tree.Find(*a), s.tree.Find(*b))
	if err != nil {
		s.logger.Warn("lca failed", "a", *a, "b", *b, "error", err)
		fmt.Fprintf(stderr, "Error: %v (a=%d, b=%d)\n", err, *a, *b)
		return 1
	}

	fmt.Fprintln(stdout, ancestor.Value)
	return 0
}

// encodeCmd handles the encode command.
func encodeCmd(args []string) int {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(stderr)

	values := fs.String("values", "", "Tree in level order, e.g. \"1,2,3,null,null,4,5\"")
	help := fs.Bool("h", false, "Show help message")
	helpLong := fs.Bool("help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || *helpLong {
		printEncodeUsage(stdout)
		return 0
	}

	given := false
	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "values" {
			given = true
		}
	})
	if !given {
		fmt.Fprintln(stderr, "Error: -values is required")
		return 1
	}

	tree, err := bintree.FromLevelOrder[int64](*values)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing values: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, bintree.Serialize(tree))
	return 0
}
