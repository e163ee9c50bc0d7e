package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/strata"
	"github.com/npillmayer/strata/chart"
	"github.com/npillmayer/strata/grammar"
	"github.com/npillmayer/strata/intervals"
)

// Select picks a single parse tree from the candidate derivations of a
// chart. The root becomes the heaviest chart node labeled with the start
// symbol of g; if the chart never derived the start symbol, Select
// returns a ParseFailedError. Expansion then proceeds breadth-first from
// the root, choosing at every nonterminal the candidate derivation of
// maximum rule weight. Ties fall to the earlier candidate: in span order
// for the root, in accumulation order for derivations.
func Select(c *chart.Chart, g *grammar.Grammar) (*Tree, error) {
	if g == nil {
		return nil, &strata.ConfigurationError{Msg: "tree selection without a grammar"}
	}
	if c == nil {
		return nil, &strata.EmptyInputError{Msg: "tree selection without a chart"}
	}
	root := heaviest(c.NodesLabeled(g.Start()))
	if root == nil {
		tracer().Infof("chart of size %d never derived %q", c.Size(), g.Start())
		return nil, &strata.ParseFailedError{Start: g.Start()}
	}
	tracer().Infof("selected root %v with weight %d", root, root.Weight)
	return &Tree{root: expand(c, root)}, nil
}

// heaviest returns the node of maximum weight, nil for an empty slice.
// nodes is expected in span order, so the earliest maximum wins.
func heaviest(nodes []*intervals.Node) *intervals.Node {
	var best *intervals.Node
	for _, n := range nodes {
		if best == nil || n.Weight > best.Weight {
			best = n
		}
	}
	return best
}

// growth is an agenda entry of the breadth-first expansion: a tree node
// still to be expanded, together with the chart node it mirrors.
type growth struct {
	from *intervals.Node
	at   *Node
}

func expand(c *chart.Chart, root *intervals.Node) *Node {
	top := makeNode(root, nil)
	agenda := []growth{{from: root, at: top}}
	for len(agenda) > 0 {
		g := agenda[0]
		agenda = agenda[1:]
		d, ok := heaviestDerivation(c.Derivations(g.from))
		if !ok {
			continue // node is a leaf
		}
		tracer().Debugf("expanding %v by %v", g.at, d.Rule)
		g.at.Rule = d.Rule
		g.at.children = make([]*Node, len(d.Path))
		for i, step := range d.Path {
			child := makeNode(step, g.at)
			g.at.children[i] = child
			if step.Kind == intervals.Nonterminal {
				agenda = append(agenda, growth{from: step, at: child})
			}
		}
	}
	return top
}

func makeNode(n *intervals.Node, parent *Node) *Node {
	return &Node{
		Span:   n.Span,
		Label:  n.Label,
		Weight: n.Weight,
		Kind:   n.Kind,
		parent: parent,
	}
}

// heaviestDerivation returns the candidate of maximum rule weight, with
// ok=false for a node without candidates.
func heaviestDerivation(ds []chart.Derivation) (d chart.Derivation, ok bool) {
	if len(ds) == 0 {
		return chart.Derivation{}, false
	}
	best := ds[0]
	for _, d := range ds[1:] {
		if d.Rule.Weight > best.Rule.Weight {
			best = d
		}
	}
	return best, true
}
