package intervals

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"

	"github.com/npillmayer/strata"
	"github.com/npillmayer/strata/intervals/boolmat"
)

// Build constructs the base interval graph for a document's annotation
// layers: one elementary node per labeled span, edges to nearest successor
// spans, sentinels on both sides, blank filler nodes for uncovered gaps of
// more than one character, everything transitively reduced. The returned
// graph is frozen; resolution extends it with snapshots.
//
// A document without layers, a layer without spans, and an empty span are
// all rejected with an EmptyInputError.
func Build(layers map[string][]strata.Span) (*Graph, error) {
	if len(layers) == 0 {
		return nil, &strata.EmptyInputError{Msg: "document has no annotation layers"}
	}
	g := NewGraph()
	names := make([]string, 0, len(layers))
	for name := range layers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		spans := layers[name]
		if len(spans) == 0 {
			return nil, &strata.EmptyInputError{Layer: name, Msg: "layer has no spans"}
		}
		for _, span := range spans {
			if span.IsEmpty() {
				return nil, &strata.EmptyInputError{
					Layer: name,
					Msg:   fmt.Sprintf("span %v is empty", span),
				}
			}
			g.addSpan(span, name, Elementary)
		}
	}
	connectNearest(g)
	attachSentinels(g)
	reduce(g)
	insertBlanks(g)
	reduce(g)
	g.Freeze()
	tracer().Infof("base graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	return g, nil
}

// connectNearest adds, for every node, edges to its nearest successor
// candidates. B is a candidate successor of A if B starts at or after A's
// end; of all candidates of A only those starting earliest survive, ties
// included. Far-future spans get no direct edge when a closer one exists.
func connectNearest(g *Graph) {
	nodes := g.Nodes()
	for _, a := range nodes {
		if a.IsSentinel() {
			continue
		}
		var nearest []*Node
		var minStart int64
		for _, b := range nodes {
			if a == b || b.IsSentinel() || !a.Span.Precedes(b.Span) {
				continue
			}
			switch {
			case len(nearest) == 0 || b.Span.From() < minStart:
				nearest = append(nearest[:0], b)
				minStart = b.Span.From()
			case b.Span.From() == minStart:
				nearest = append(nearest, b)
			}
		}
		for _, b := range nearest {
			g.AddEdge(a, b)
		}
	}
}

// attachSentinels connects START to every node without a predecessor, and
// every node without a successor to END. In a finite DAG this makes every
// node reachable from START, and END reachable from every node.
func attachSentinels(g *Graph) {
	hasPred := make(map[*Node]bool)
	hasSucc := make(map[*Node]bool)
	for _, e := range g.allEdges() {
		hasSucc[e.from] = true
		hasPred[e.to] = true
	}
	for _, n := range g.Nodes() {
		if n.IsSentinel() {
			continue
		}
		if !hasPred[n] {
			g.AddEdge(g.Start(), n)
		}
		if !hasSucc[n] {
			g.AddEdge(n, g.End())
		}
	}
}

// adjacency returns the boolean adjacency matrix of the chain, with rows
// and columns indexed by the graph's span order.
func adjacency(g *Graph) (*boolmat.Matrix, []*Node) {
	nodes := g.Nodes()
	index := make(map[*Node]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
	}
	m := boolmat.New(len(nodes))
	for _, e := range g.allEdges() {
		m.Set(index[e.from], index[e.to])
	}
	return m, nodes
}

// reduce removes every edge implied by a longer path. An edge survives iff
// it is adjacent and not the composition of an edge with a nonempty path,
// i.e. the reduced relation is M ∧ ¬(M·M⁺).
func reduce(g *Graph) {
	m, nodes := adjacency(g)
	reduced := m.AndNot(m.MulBool(m.Closure()))
	var edges []*edge
	for i, a := range nodes {
		for j, b := range nodes {
			if reduced.At(i, j) {
				edges = append(edges, &edge{from: a, to: b})
			}
		}
	}
	g.rebuildEdges(edges)
	tracer().Debugf("transitive reduction: %d -> %d edges", m.Count(), len(edges))
}

// insertBlanks splices a blank filler node into every edge spanning an
// uncovered gap of more than one character: A → B becomes A → blank → B.
// Sentinel edges and edges at an existing blank are left alone, so blanks
// never end up directly adjacent.
func insertBlanks(g *Graph) {
	var keep, gaps []*edge
	for _, e := range g.allEdges() {
		if e.from.IsSentinel() || e.to.IsSentinel() ||
			e.from.Kind == Blank || e.to.Kind == Blank ||
			e.to.Span.From()-e.from.Span.To() <= 1 {
			keep = append(keep, e)
			continue
		}
		gaps = append(gaps, e)
	}
	if len(gaps) == 0 {
		return
	}
	g.rebuildEdges(keep)
	for _, e := range gaps {
		blank := g.addSpan(strata.S(e.from.Span.To(), e.to.Span.From()), BlankLabel, Blank)
		g.AddEdge(e.from, blank)
		g.AddEdge(blank, e.to)
		tracer().Debugf("blank %v fills the gap between %v and %v", blank, e.from, e.to)
	}
}
