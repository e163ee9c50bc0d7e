package intervals

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/npillmayer/strata"
)

// edge is one directed adjacency between two nodes.
type edge struct {
	from, to *Node
}

// Graph is one snapshot of an interval graph. The base graph is built by
// Build and stays mutable until frozen; Extend creates child snapshots
// which add nodes and edges without modifying their parent. Lookups
// consult the whole snapshot chain down to the base, so a snapshot always
// presents the complete graph as of its own creation plus its own
// additions.
type Graph struct {
	parent *Graph
	shared *shared
	nodes  *treeset.Set    // *Node, ordered by nodeComparator
	byKey  map[Key]*Node   // node identity index for this snapshot
	edges  *arraylist.List // *edge
	frozen bool
}

// Bookkeeping common to all snapshots of one chain.
type shared struct {
	serials uint
	start   *Node
	end     *Node
}

// NewGraph creates an empty, mutable base graph holding only the two
// sentinel nodes.
func NewGraph() *Graph {
	g := &Graph{
		shared: &shared{},
		nodes:  treeset.NewWith(nodeComparator),
		byKey:  make(map[Key]*Node),
		edges:  arraylist.New(),
	}
	g.shared.start = g.insert(startSentinel())
	g.shared.end = g.insert(endSentinel())
	return g
}

// Extend freezes g and returns a new mutable snapshot on top of it.
func (g *Graph) Extend() *Graph {
	g.Freeze()
	return &Graph{
		parent: g,
		shared: g.shared,
		nodes:  treeset.NewWith(nodeComparator),
		byKey:  make(map[Key]*Node),
		edges:  arraylist.New(),
	}
}

// Freeze makes the snapshot immutable. A frozen snapshot may be read and
// extended concurrently.
func (g *Graph) Freeze() {
	g.frozen = true
}

// Start returns the START sentinel bounding the graph on the left.
func (g *Graph) Start() *Node {
	return g.shared.start
}

// End returns the END sentinel bounding the graph on the right.
func (g *Graph) End() *Node {
	return g.shared.end
}

// Node returns the node with the given identity, or nil.
func (g *Graph) Node(k Key) *Node {
	for s := g; s != nil; s = s.parent {
		if n, ok := s.byKey[k]; ok {
			return n
		}
	}
	return nil
}

// Nodes returns all nodes of the snapshot chain, sentinels included, in
// span order.
func (g *Graph) Nodes() []*Node {
	var nodes []*Node
	for s := g; s != nil; s = s.parent {
		it := s.nodes.Iterator()
		for it.Next() {
			nodes = append(nodes, it.Value().(*Node))
		}
	}
	sort.Slice(nodes, func(i, j int) bool { return nodeLess(nodes[i], nodes[j]) })
	return nodes
}

// NodesLabeled returns all nodes of the chain carrying the given label,
// in span order.
func (g *Graph) NodesLabeled(label string) []*Node {
	var nodes []*Node
	for s := g; s != nil; s = s.parent {
		it := s.nodes.Iterator()
		for it.Next() {
			if n := it.Value().(*Node); n.Label == label {
				nodes = append(nodes, n)
			}
		}
	}
	sort.Slice(nodes, func(i, j int) bool { return nodeLess(nodes[i], nodes[j]) })
	return nodes
}

// NodeCount returns the number of nodes in the chain, sentinels included.
func (g *Graph) NodeCount() int {
	cnt := 0
	for s := g; s != nil; s = s.parent {
		cnt += s.nodes.Size()
	}
	return cnt
}

// EdgeCount returns the number of edges in the chain.
func (g *Graph) EdgeCount() int {
	cnt := 0
	for s := g; s != nil; s = s.parent {
		cnt += s.edges.Size()
	}
	return cnt
}

// Successors returns the direct successors of n, in span order.
func (g *Graph) Successors(n *Node) []*Node {
	var succs []*Node
	for s := g; s != nil; s = s.parent {
		it := s.edges.Iterator()
		for it.Next() {
			if e := it.Value().(*edge); e.from == n {
				succs = append(succs, e.to)
			}
		}
	}
	sort.Slice(succs, func(i, j int) bool { return nodeLess(succs[i], succs[j]) })
	return succs
}

// Predecessors returns the direct predecessors of n, in span order.
func (g *Graph) Predecessors(n *Node) []*Node {
	var preds []*Node
	for s := g; s != nil; s = s.parent {
		it := s.edges.Iterator()
		for it.Next() {
			if e := it.Value().(*edge); e.to == n {
				preds = append(preds, e.from)
			}
		}
	}
	sort.Slice(preds, func(i, j int) bool { return nodeLess(preds[i], preds[j]) })
	return preds
}

// HasEdge tells whether the chain contains the direct edge a → b.
func (g *Graph) HasEdge(a, b *Node) bool {
	for s := g; s != nil; s = s.parent {
		it := s.edges.Iterator()
		for it.Next() {
			if e := it.Value().(*edge); e.from == a && e.to == b {
				return true
			}
		}
	}
	return false
}

// Synthesize adds a nonterminal node for the given span and label, or
// returns the already existing node for that identity, with created=false.
// Synthesizing an existing node never lowers its weight; a higher weight
// wins.
func (g *Graph) Synthesize(span strata.Span, label string, weight int) (n *Node, created bool) {
	g.mustBeMutable()
	k := Key{From: span.From(), To: span.To(), Label: label}
	if n := g.Node(k); n != nil {
		if weight > n.Weight {
			n.Weight = weight
		}
		return n, false
	}
	n = g.insert(&Node{Span: span, Label: label, Weight: weight, Kind: Nonterminal})
	tracer().Debugf("synthesized %v with weight %d", n, weight)
	return n, true
}

// AddEdge adds the edge a → b unless the chain already contains it.
func (g *Graph) AddEdge(a, b *Node) bool {
	g.mustBeMutable()
	if g.HasEdge(a, b) {
		return false
	}
	g.edges.Add(&edge{from: a, to: b})
	return true
}

// --- Snapshot-internal mutation ---------------------------------------

func (g *Graph) mustBeMutable() {
	if g.frozen {
		panic("attempt to modify a frozen graph snapshot")
	}
}

// insert assigns the next serial and indexes the node. The caller
// guarantees the key is not present anywhere in the chain.
func (g *Graph) insert(n *Node) *Node {
	g.mustBeMutable()
	n.serial = g.shared.serials
	g.shared.serials++
	g.nodes.Add(n)
	g.byKey[n.Key()] = n
	return n
}

// addSpan materializes an elementary or blank node. Duplicate identities
// unify onto the already existing node.
func (g *Graph) addSpan(span strata.Span, label string, kind NodeKind) *Node {
	k := Key{From: span.From(), To: span.To(), Label: label}
	if n := g.Node(k); n != nil {
		return n
	}
	return g.insert(&Node{Span: span, Label: label, Weight: 1, Kind: kind})
}

// allEdges collects the edges of the chain. No particular order.
func (g *Graph) allEdges() []*edge {
	var edges []*edge
	for s := g; s != nil; s = s.parent {
		it := s.edges.Iterator()
		for it.Next() {
			edges = append(edges, it.Value().(*edge))
		}
	}
	return edges
}

// rebuildEdges replaces the snapshot's edge list. Only the base snapshot
// rebuilds edges (during reduction and blank insertion); extensions are
// strictly additive.
func (g *Graph) rebuildEdges(edges []*edge) {
	g.mustBeMutable()
	g.edges.Clear()
	for _, e := range edges {
		g.edges.Add(e)
	}
}
