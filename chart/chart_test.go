package chart

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/strata"
	"github.com/npillmayer/strata/grammar"
	"github.com/npillmayer/strata/grammar/notation"
	"github.com/npillmayer/strata/intervals"
)

func TestResolveSimpleSentence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.chart")
	defer teardown()
	//
	g := mustGrammar(t, "S", "S -> NOUN VERB NOUN : 5")
	base := mustBuild(t, map[string][]strata.Span{
		"NOUN": {strata.S(0, 5), strata.S(9, 14)},
		"VERB": {strata.S(5, 9)},
	})
	chart, err := NewResolver(g).Resolve(base)
	if err != nil {
		t.Fatal(err)
	}
	roots := chart.NodesLabeled("S")
	if len(roots) != 1 {
		t.Fatalf("expected exactly one S node, have %d", len(roots))
	}
	s := roots[0]
	if s.Span != strata.S(0, 14) {
		t.Errorf("expected S to span (0…14), have %v", s.Span)
	}
	if s.Weight != 5 {
		t.Errorf("expected S to carry the rule weight 5, have %d", s.Weight)
	}
	derivations := chart.Derivations(s)
	if len(derivations) != 1 {
		t.Fatalf("expected one derivation, have %d", len(derivations))
	}
	path := derivations[0].Path
	if len(path) != 3 || path[0].Label != "NOUN" || path[1].Label != "VERB" || path[2].Label != "NOUN" {
		t.Errorf("expected the chain NOUN VERB NOUN, have %v", path)
	}
}

func TestResolveNoMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.chart")
	defer teardown()
	//
	g := mustGrammar(t, "S", "S -> NOUN NOUN")
	base := mustBuild(t, map[string][]strata.Span{
		"NOUN": {strata.S(0, 5), strata.S(9, 14)},
		"VERB": {strata.S(5, 9)},
	})
	chart, err := NewResolver(g).Resolve(base)
	if err != nil {
		t.Fatal(err)
	}
	if len(chart.NodesLabeled("S")) != 0 {
		t.Errorf("NOUN NOUN must not match with a VERB in between")
	}
}

func TestResolveMultiLevel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.chart")
	defer teardown()
	//
	g := mustGrammar(t, "S", `
NP -> DET NOUN
VP -> VERB NP
S -> NP VP
`)
	base := mustBuild(t, map[string][]strata.Span{
		"DET":  {strata.S(0, 2), strata.S(9, 11)},
		"NOUN": {strata.S(2, 5), strata.S(11, 14)},
		"VERB": {strata.S(5, 9)},
	})
	chart, err := NewResolver(g).Resolve(base)
	if err != nil {
		t.Fatal(err)
	}
	expectNode(t, chart, 0, 5, "NP")
	expectNode(t, chart, 9, 14, "NP")
	expectNode(t, chart, 5, 14, "VP")
	s := expectNode(t, chart, 0, 14, "S")
	path := chart.Derivations(s)[0].Path
	if path[0].Label != "NP" || path[1].Label != "VP" {
		t.Errorf("expected S to be derived from NP VP, have %v", path)
	}
}

func TestResolveSameLevelAdjacency(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.chart")
	defer teardown()
	//
	// NP and PP are independent, so they share a level; S still needs an
	// edge between their synthesized nodes.
	g := mustGrammar(t, "S", `
NP -> DET NOUN
PP -> PREP NOUN
S -> NP PP
`)
	base := mustBuild(t, map[string][]strata.Span{
		"DET":  {strata.S(0, 2)},
		"NOUN": {strata.S(2, 5), strata.S(7, 9)},
		"PREP": {strata.S(5, 7)},
	})
	chart, err := NewResolver(g).Resolve(base)
	if err != nil {
		t.Fatal(err)
	}
	np := expectNode(t, chart, 0, 5, "NP")
	pp := expectNode(t, chart, 5, 9, "PP")
	if !chart.Graph().HasEdge(np, pp) {
		t.Errorf("expected the same-level nodes NP and PP to become adjacent")
	}
	expectNode(t, chart, 0, 9, "S")
}

func TestResolveAccumulatesDerivations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.chart")
	defer teardown()
	//
	g := mustGrammar(t, "X", `
X -> A B : 1
X -> C : 7
`)
	base := mustBuild(t, map[string][]strata.Span{
		"A": {strata.S(0, 2)},
		"B": {strata.S(2, 5)},
		"C": {strata.S(0, 5)},
	})
	chart, err := NewResolver(g).Resolve(base)
	if err != nil {
		t.Fatal(err)
	}
	x := expectNode(t, chart, 0, 5, "X")
	if len(chart.Derivations(x)) != 2 {
		t.Fatalf("expected X(0…5) to accumulate 2 derivations, have %d",
			len(chart.Derivations(x)))
	}
	if x.Weight != 7 {
		t.Errorf("expected the node weight to be the maximum rule weight 7, have %d", x.Weight)
	}
}

func TestResolveAcrossBlank(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.chart")
	defer teardown()
	//
	// Rules must name the blank filler explicitly to span uncovered text.
	g := mustGrammar(t, "S", "S -> A _ B")
	base := mustBuild(t, map[string][]strata.Span{
		"A": {strata.S(0, 5)},
		"B": {strata.S(9, 14)},
	})
	chart, err := NewResolver(g).Resolve(base)
	if err != nil {
		t.Fatal(err)
	}
	s := expectNode(t, chart, 0, 14, "S")
	path := chart.Derivations(s)[0].Path
	if len(path) != 3 || path[1].Kind != intervals.Blank {
		t.Errorf("expected the middle chain node to be the blank, have %v", path)
	}
}

func TestResolveSkipsEpsilonRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.chart")
	defer teardown()
	//
	g := mustGrammar(t, "X", "X -> a?") // compiles to X -> [] and X -> [a]
	base := mustBuild(t, map[string][]strata.Span{
		"a": {strata.S(0, 3)},
	})
	chart, err := NewResolver(g).Resolve(base)
	if err != nil {
		t.Fatal(err)
	}
	if chart.Size() != 1 {
		t.Fatalf("expected exactly the X node from [a], have %d nodes", chart.Size())
	}
	expectNode(t, chart, 0, 3, "X")
}

func TestResolveParallelMatchesSequential(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.chart")
	defer teardown()
	//
	// NP and PP depend on terminals only and share a dependency level.
	g := mustGrammar(t, "S", `
NP -> DET? NOUN
PP -> PREP NOUN
VP -> VERB NP PP?
S -> NP VP
`)
	layers := map[string][]strata.Span{
		"DET":  {strata.S(0, 4), strata.S(16, 20)},
		"NOUN": {strata.S(4, 8), strata.S(20, 26), strata.S(33, 38)},
		"VERB": {strata.S(8, 16)},
		"PREP": {strata.S(26, 33)},
	}
	sequential, err := NewResolver(g).Resolve(mustBuild(t, layers))
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := NewResolver(g, Parallel(true)).Resolve(mustBuild(t, layers))
	if err != nil {
		t.Fatal(err)
	}
	if sequential.Size() != parallel.Size() {
		t.Fatalf("parallel run synthesized %d nodes, sequential %d",
			parallel.Size(), sequential.Size())
	}
	seqNodes := sequential.Nodes()
	parNodes := parallel.Nodes()
	for i, n := range seqNodes {
		p := parNodes[i]
		if n.Key() != p.Key() || n.Weight != p.Weight {
			t.Errorf("node %d differs: sequential %v/%d, parallel %v/%d",
				i, n, n.Weight, p, p.Weight)
		}
		if len(sequential.Derivations(n)) != len(parallel.Derivations(p)) {
			t.Errorf("derivation counts for %v differ", n)
		}
	}
}

func TestResolveRejectsEmptyGraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.chart")
	defer teardown()
	//
	g := mustGrammar(t, "S", "S -> NOUN")
	var emptyerr *strata.EmptyInputError
	if _, err := NewResolver(g).Resolve(intervals.NewGraph()); !errors.As(err, &emptyerr) {
		t.Errorf("expected a sentinel-only graph to be rejected, have %v", err)
	}
}

// --- Helpers ----------------------------------------------------------

func mustGrammar(t *testing.T, start, rules string) *grammar.Grammar {
	t.Helper()
	g, err := notation.CompileGrammar("G", start, rules)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func mustBuild(t *testing.T, layers map[string][]strata.Span) *intervals.Graph {
	t.Helper()
	base, err := intervals.Build(layers)
	if err != nil {
		t.Fatal(err)
	}
	return base
}

func expectNode(t *testing.T, c *Chart, from, to int64, label string) *intervals.Node {
	t.Helper()
	for _, n := range c.NodesLabeled(label) {
		if n.Span == strata.S(from, to) {
			return n
		}
	}
	t.Fatalf("expected chart node %s(%d…%d), chart has %v", label, from, to, c.Nodes())
	return nil
}
