package intervals

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"math"

	"github.com/npillmayer/strata"
)

// NodeKind classifies the nodes of an interval graph.
type NodeKind int8

// Nodes are either elementary (one input annotation span), blank
// (synthesized filler for an uncovered gap), nonterminal (synthesized by
// rule application), or one of the two sentinels bounding the graph.
const (
	Elementary NodeKind = iota
	Blank
	Nonterminal
	Sentinel
)

func (k NodeKind) String() string {
	switch k {
	case Elementary:
		return "elementary"
	case Blank:
		return "blank"
	case Nonterminal:
		return "nonterminal"
	case Sentinel:
		return "sentinel"
	}
	return "<illegal node kind>"
}

// BlankLabel labels synthesized gap-filler nodes. It is a legal grammar
// identifier: rules name it explicitly wherever spans are expected to be
// separated by uncovered text.
const BlankLabel = "_"

// Labels of the two sentinel nodes. They cannot collide with grammar
// symbols, which are restricted to identifier characters.
const (
	StartLabel = "<start>"
	EndLabel   = "<end>"
)

// Node is one labeled span occurrence in an interval graph. Nodes are
// created by the graph they belong to and never mutated afterwards, except
// that a nonterminal node's weight may be raised when a second rule
// synthesizes the same span under the same label.
type Node struct {
	Span   strata.Span
	Label  string
	Weight int
	Kind   NodeKind
	serial uint // creation order within one graph chain
}

// Key is a node's identity: span plus label. Graphs hold at most one node
// per key; adjacency and candidate bookkeeping index by Key.
type Key struct {
	From, To int64
	Label    string
}

// Key returns the node's identity.
func (n *Node) Key() Key {
	return Key{From: n.Span.From(), To: n.Span.To(), Label: n.Label}
}

// IsSentinel tells whether n is one of the two graph-bounding sentinels.
func (n *Node) IsSentinel() bool {
	return n.Kind == Sentinel
}

func (n *Node) String() string {
	if n == nil {
		return "<no node>"
	}
	if n.IsSentinel() {
		return n.Label
	}
	return fmt.Sprintf("%s%v", n.Label, n.Span)
}

// Nodes are ordered by span, then label, then creation order. This is a
// total order: within one graph chain two distinct nodes never share span
// and label.
func nodeComparator(a, b interface{}) int {
	n1 := a.(*Node)
	n2 := b.(*Node)
	if cmp := n1.Span.Compare(n2.Span); cmp != 0 {
		return cmp
	}
	if n1.Label != n2.Label {
		if n1.Label < n2.Label {
			return -1
		}
		return 1
	}
	return int(n1.serial) - int(n2.serial)
}

func nodeLess(n1, n2 *Node) bool {
	return nodeComparator(n1, n2) < 0
}

func startSentinel() *Node {
	return &Node{
		Span:  strata.S(math.MinInt64, math.MinInt64),
		Label: StartLabel,
		Kind:  Sentinel,
	}
}

func endSentinel() *Node {
	return &Node{
		Span:  strata.S(math.MaxInt64, math.MaxInt64),
		Label: EndLabel,
		Kind:  Sentinel,
	}
}
