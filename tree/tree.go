package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/strata"
	"github.com/npillmayer/strata/grammar"
	"github.com/npillmayer/strata/intervals"
)

// Tree is a single parse tree over a document, the result of selecting
// one derivation for every nonterminal of a chart.
type Tree struct {
	root *Node
}

// Root returns the root node of the tree. Its label is the start symbol
// of the grammar the tree was selected for.
func (t *Tree) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// Node is one node of a selected parse tree. Leaves correspond to
// elementary or blank nodes of the underlying interval graph, inner nodes
// to synthesized nonterminals.
type Node struct {
	Span     strata.Span
	Label    string
	Weight   int
	Kind     intervals.NodeKind
	Rule     *grammar.Rule // the selected derivation's rule; nil at leaves
	parent   *Node
	children []*Node
}

// Parent returns the parent of a node, nil at the root of a tree.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the children of n in ascending span order. The slice
// is a copy; callers may keep it.
func (n *Node) Children() []*Node {
	children := make([]*Node, len(n.children))
	copy(children, n.children)
	return children
}

// Child returns the i'th child of n, counting from the left.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Degree returns the number of children of n.
func (n *Node) Degree() int {
	return len(n.children)
}

// IsLeaf tells whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

func (n *Node) String() string {
	if n == nil {
		return "<no node>"
	}
	return fmt.Sprintf("%s%v", n.Label, n.Span)
}
