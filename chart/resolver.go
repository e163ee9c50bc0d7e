package chart

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sync"

	"github.com/npillmayer/strata"
	"github.com/npillmayer/strata/grammar"
	"github.com/npillmayer/strata/intervals"
)

// Resolver applies a grammar's rules bottom-up over an interval graph.
// Create one with NewResolver; a Resolver is stateless between runs and
// may be reused for any number of documents.
type Resolver struct {
	grammar  *grammar.Grammar
	parallel bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// Parallel lets the nonterminals of one dependency level search
// concurrently. Searches read the level's frozen snapshot; their matches
// are merged serially afterwards, so resolution output is identical to a
// sequential run.
func Parallel(b bool) Option {
	return func(r *Resolver) {
		r.parallel = b
	}
}

// NewResolver creates a resolver for a grammar.
func NewResolver(g *grammar.Grammar, opts ...Option) *Resolver {
	r := &Resolver{grammar: g}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// match is one accepted rule application: the chain of nodes spelling the
// rule's right-hand side.
type match struct {
	rule *grammar.Rule
	path []*intervals.Node
}

// Resolve applies the grammar level by level over the base graph. Every
// level searches the previous snapshot and merges its matches into a new
// snapshot, so rules of later nonterminals can match both original nodes
// and nodes synthesized earlier. Resolve neither modifies the base graph
// nor keeps state between runs.
func (r *Resolver) Resolve(base *intervals.Graph) (*Chart, error) {
	if base == nil || base.NodeCount() <= 2 { // nothing but sentinels
		return nil, &strata.EmptyInputError{Msg: "interval graph has no span nodes"}
	}
	chart := newChart()
	snapshot := base
	snapshot.Freeze()
	for level, nonterminals := range r.grammar.Levels() {
		results := make([][]match, len(nonterminals))
		if r.parallel && len(nonterminals) > 1 {
			var wg sync.WaitGroup
			for i, nt := range nonterminals {
				wg.Add(1)
				go func(slot int, nt string) {
					defer wg.Done()
					results[slot] = r.search(snapshot, nt)
				}(i, nt)
			}
			wg.Wait()
		} else {
			for i, nt := range nonterminals {
				results[i] = r.search(snapshot, nt)
			}
		}
		total := 0
		for _, matches := range results {
			total += len(matches)
		}
		tracer().Debugf("level %d: %v found %d matches", level, nonterminals, total)
		if total == 0 {
			continue
		}
		next := snapshot.Extend()
		for _, matches := range results {
			for _, m := range matches {
				splice(next, chart, m)
			}
		}
		next.Freeze()
		snapshot = next
	}
	chart.graph = snapshot
	tracer().Infof("chart resolution synthesized %d nonterminal nodes", chart.Size())
	return chart, nil
}

// search collects the matches of all rules of one nonterminal against a
// frozen snapshot. It only reads graph state.
func (r *Resolver) search(g *intervals.Graph, nonterminal string) []match {
	var matches []match
	for _, rule := range r.grammar.RulesFor(nonterminal) {
		if rule.IsEpsilon() {
			continue // an epsilon rule covers no span
		}
		for _, path := range findPaths(g, rule.RHS) {
			matches = append(matches, match{rule: rule, path: path})
		}
	}
	return matches
}

// findPaths returns every chain of adjacent nodes whose labels spell rhs,
// by breadth-first expansion from the nodes labeled rhs[0]. Partial chains
// are pruned as soon as the next label mismatches; sentinels are never
// traversed.
func findPaths(g *intervals.Graph, rhs []string) [][]*intervals.Node {
	var accepted [][]*intervals.Node
	var frontier [][]*intervals.Node
	for _, seed := range g.NodesLabeled(rhs[0]) {
		frontier = append(frontier, []*intervals.Node{seed})
	}
	for len(frontier) > 0 {
		path := frontier[0]
		frontier = frontier[1:]
		if len(path) == len(rhs) {
			accepted = append(accepted, path)
			continue
		}
		want := rhs[len(path)]
		for _, succ := range g.Successors(path[len(path)-1]) {
			if succ.IsSentinel() || succ.Label != want {
				continue
			}
			extended := make([]*intervals.Node, len(path), len(path)+1)
			copy(extended, path)
			frontier = append(frontier, append(extended, succ))
		}
	}
	return accepted
}

// splice synthesizes the nonterminal node for a match and wires it into
// the growing snapshot: every predecessor of the chain's first node gains
// an edge to the new node, the new node gains an edge to every successor
// of the chain's last node. The chain itself stays untouched, so later
// rules can still match the original nodes.
func splice(g *intervals.Graph, c *Chart, m match) {
	first, last := m.path[0], m.path[len(m.path)-1]
	span := strata.S(first.Span.From(), last.Span.To())
	node, _ := g.Synthesize(span, m.rule.LHS, m.rule.Weight)
	// A second match may reuse the node with a different chain; edges
	// accumulate as the union over all chains.
	for _, pred := range g.Predecessors(first) {
		g.AddEdge(pred, node)
	}
	for _, succ := range g.Successors(last) {
		g.AddEdge(node, succ)
	}
	c.add(node, Derivation{Rule: m.rule, Path: m.path})
}
