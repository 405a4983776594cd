package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage information to the given writer.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `bintree - binary tree queries

Usage:
  bintree <command> [options]

Commands:
  depth       Show minimum and maximum depth
  maxsum      Show the maximum path sum
  next        Show the smallest value above a bound
  cousins     Check whether two nodes are cousins
  lca         Show the lowest common ancestor of two nodes
  print       Draw the tree
  encode      Convert a level-order listing to the tree encoding
  config      Configuration management
  version     Show version information

Trees are given in pre-order encoding, e.g. "1,2,null,null,3,null,null".

Use "bintree <command> -h" for more information about a command.
`)
}

// treeOptions is the option block shared by commands that read a tree.
const treeOptions = `  -tree string
        Tree in pre-order encoding (overrides config)
  -config string
        Path to configuration file (.yaml, .yml or .json)
  -h, -help
        Show this help message
`

const treeEnvironment = `
Environment Variables:
  BINTREE_TREE             Tree used when -tree is not given
  BINTREE_LOGGING_LEVEL    Override log level
`

// printDepthUsage prints the depth command usage.
func printDepthUsage(w io.Writer) {
	fmt.Fprint(w, `Show minimum and maximum depth

Usage:
  bintree depth [options]

Depth counts nodes on a root-to-leaf path. An empty tree has depth 0.

Options:
`+treeOptions+treeEnvironment)
}

// printMaxSumUsage prints the maxsum command usage.
func printMaxSumUsage(w io.Writer) {
	fmt.Fprint(w, `Show the maximum path sum

Usage:
  bintree maxsum [options]

The path may start and end at any node. An empty tree yields 0.

Options:
`+treeOptions+treeEnvironment)
}

// printNextUsage prints the next command usage.
func printNextUsage(w io.Writer) {
	fmt.Fprint(w, `Show the smallest value above a bound

Usage:
  bintree next -bound <n> [options]

Prints "none" when no value is larger than the bound.

Options:
  -bound int
        Lower bound, exclusive (required)
`+treeOptions+treeEnvironment)
}

// printCousinsUsage prints the cousins command usage.
func printCousinsUsage(w io.Writer) {
	fmt.Fprint(w, `Check whether two nodes are cousins

Usage:
  bintree cousins -a <value> -b <value> [options]

Cousins sit at the same depth under different parents. Each value selects
the first node holding it in pre-order.

Options:
  -a int
        Value of the first node (required)
  -b int
        Value of the second node (required)
`+treeOptions+treeEnvironment)
}

// printLCAUsage prints the lca command usage.
func printLCAUsage(w io.Writer) {
	fmt.Fprint(w, `Show the lowest common ancestor of two nodes

Usage:
  bintree lca -a <value> -b <value> [options]

Each value selects the first node holding it in pre-order. A node is its
own ancestor.

Options:
  -a int
        Value of the first node (required)
  -b int
        Value of the second node (required)
`+treeOptions+treeEnvironment)
}

// printPrintUsage prints the print command usage.
func printPrintUsage(w io.Writer) {
	fmt.Fprint(w, `Draw the tree

Usage:
  bintree print [options]

Options:
  -horizontal
        Draw the root on the left (overrides config)
`+treeOptions+treeEnvironment)
}

// printEncodeUsage prints the encode command usage.
func printEncodeUsage(w io.Writer) {
	fmt.Fprint(w, `Convert a level-order listing to the tree encoding

Usage:
  bintree encode -values "1,2,3,null,null,4,5"

Options:
  -values string
        Tree in level order; "null" or an empty entry is a missing child (required)
  -h, -help
        Show this help message
`)
}

// printConfigUsage prints the config command usage.
func printConfigUsage(w io.Writer) {
	fmt.Fprint(w, `Configuration management

Usage:
  bintree config <subcommand> [options]

Subcommands:
  init        Print the default configuration
  validate    Validate a configuration file
  show        Print the effective configuration
`)
}

// printVersionUsage prints the version command usage.
func printVersionUsage(w io.Writer) {
	fmt.Fprint(w, `Show version information

Usage:
  bintree version [options]

Options:
  -short
        Show only version number
  -h, -help
        Show this help message
`)
}
