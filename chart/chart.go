package chart

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"

	"github.com/npillmayer/strata/grammar"
	"github.com/npillmayer/strata/intervals"
)

// Derivation is one way a nonterminal node may have been produced: a rule
// together with the chain of child nodes whose labels spell out the rule's
// right-hand side. One node can accumulate several competing derivations,
// from different rules or from different chains.
type Derivation struct {
	Rule *grammar.Rule
	Path []*intervals.Node
}

// Chart is the outcome of a resolution run: the final graph snapshot and
// the candidate derivations of every synthesized nonterminal node.
type Chart struct {
	graph      *intervals.Graph
	nodes      map[intervals.Key]*intervals.Node
	candidates map[intervals.Key][]Derivation
}

func newChart() *Chart {
	return &Chart{
		nodes:      make(map[intervals.Key]*intervals.Node),
		candidates: make(map[intervals.Key][]Derivation),
	}
}

// Graph returns the final graph snapshot, with every synthesized node
// spliced in.
func (c *Chart) Graph() *intervals.Graph {
	return c.graph
}

// Derivations returns the candidate derivations recorded for a node, in
// discovery order. Elementary and blank nodes have none.
func (c *Chart) Derivations(n *intervals.Node) []Derivation {
	return c.candidates[n.Key()]
}

// Nodes returns all synthesized nonterminal nodes, in span order.
func (c *Chart) Nodes() []*intervals.Node {
	nodes := make([]*intervals.Node, 0, len(c.nodes))
	for _, n := range c.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		if cmp := nodes[i].Span.Compare(nodes[j].Span); cmp != 0 {
			return cmp < 0
		}
		return nodes[i].Label < nodes[j].Label
	})
	return nodes
}

// NodesLabeled returns all synthesized nodes carrying the given label, in
// span order.
func (c *Chart) NodesLabeled(label string) []*intervals.Node {
	var labeled []*intervals.Node
	for _, n := range c.Nodes() {
		if n.Label == label {
			labeled = append(labeled, n)
		}
	}
	return labeled
}

// Size returns the number of synthesized nonterminal nodes.
func (c *Chart) Size() int {
	return len(c.nodes)
}

func (c *Chart) add(n *intervals.Node, d Derivation) {
	k := n.Key()
	c.nodes[k] = n
	c.candidates[k] = append(c.candidates[k], d)
}
