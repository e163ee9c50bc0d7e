package intervals

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"sort"
)

// GraphViz exports the graph chain to the Graphviz Dot format, mainly for
// debugging grammars and layer sets.
func GraphViz(g *Graph, w io.Writer) {
	io.WriteString(w, `digraph {
graph [splines=true, fontname=Helvetica, fontsize=10, rankdir=LR];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	for _, n := range g.Nodes() {
		io.WriteString(w, fmt.Sprintf("n%03d [fillcolor=%s label=\"{%s | %d}\"]\n",
			n.serial, nodecolor(n), n, n.Weight))
	}
	edges := g.allEdges()
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].from != edges[j].from {
			return nodeLess(edges[i].from, edges[j].from)
		}
		return nodeLess(edges[i].to, edges[j].to)
	})
	for _, e := range edges {
		io.WriteString(w, fmt.Sprintf("n%03d -> n%03d\n", e.from.serial, e.to.serial))
	}
	io.WriteString(w, "}\n")
}

func nodecolor(n *Node) string {
	switch n.Kind {
	case Blank:
		return "lightgray"
	case Nonterminal:
		return "lightblue"
	case Sentinel:
		return "gray"
	}
	return "white"
}
