package tree

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/strata"
	"github.com/npillmayer/strata/chart"
	"github.com/npillmayer/strata/grammar"
	"github.com/npillmayer/strata/grammar/notation"
	"github.com/npillmayer/strata/intervals"
)

func TestSelectSimpleSentence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.tree")
	defer teardown()
	//
	tr := mustSelect(t, "S", "S -> NOUN VERB NOUN : 5", map[string][]strata.Span{
		"NOUN": {strata.S(0, 5), strata.S(9, 14)},
		"VERB": {strata.S(5, 9)},
	})
	root := tr.Root()
	if root.Label != "S" || root.Span != strata.S(0, 14) {
		t.Fatalf("expected root S(0…14), have %v", root)
	}
	if root.Weight != 5 {
		t.Errorf("expected root weight 5, have %d", root.Weight)
	}
	if root.Degree() != 3 {
		t.Fatalf("expected 3 children, have %d", root.Degree())
	}
	for i, label := range []string{"NOUN", "VERB", "NOUN"} {
		child := root.Child(i)
		if child.Label != label {
			t.Errorf("expected child #%d to be %s, have %v", i, label, child)
		}
		if child.Parent() != root {
			t.Errorf("expected child #%d to point back at the root", i)
		}
		if !child.IsLeaf() || child.Rule != nil {
			t.Errorf("expected child #%d to be a plain leaf", i)
		}
	}
}

func TestSelectParseFailed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.tree")
	defer teardown()
	//
	g := mustGrammar(t, "S", "S -> NOUN NOUN")
	c := mustResolve(t, g, map[string][]strata.Span{
		"NOUN": {strata.S(0, 5), strata.S(9, 14)},
		"VERB": {strata.S(5, 9)},
	})
	tr, err := Select(c, g)
	if tr != nil {
		t.Errorf("expected no tree for a failed parse, have %v", tr.Root())
	}
	if !strata.IsParseFailed(err) {
		t.Fatalf("expected a parse failure, have %v", err)
	}
	var pf *strata.ParseFailedError
	if !errors.As(err, &pf) || pf.Start != "S" {
		t.Errorf("expected the failure to name the start symbol S, have %v", err)
	}
}

func TestSelectHeaviestRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.tree")
	defer teardown()
	//
	// Both rules derive S nodes; the sentence-spanning one is heavier.
	tr := mustSelect(t, "S", `
S -> NOUN : 1
S -> NOUN VERB NOUN : 7
`, map[string][]strata.Span{
		"NOUN": {strata.S(0, 5), strata.S(9, 14)},
		"VERB": {strata.S(5, 9)},
	})
	root := tr.Root()
	if root.Span != strata.S(0, 14) || root.Weight != 7 {
		t.Errorf("expected the weight-7 root spanning (0…14), have %v with weight %d",
			root, root.Weight)
	}
	if root.Degree() != 3 {
		t.Errorf("expected the root to expand to 3 children, have %d", root.Degree())
	}
}

func TestSelectHeaviestDerivation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.tree")
	defer teardown()
	//
	// B and C cover the same span, so both rules synthesize one single S
	// node, with two candidate derivations of different weight.
	tr := mustSelect(t, "S", `
S -> A B : 1
S -> A C : 9
`, map[string][]strata.Span{
		"A": {strata.S(0, 2)},
		"B": {strata.S(2, 4)},
		"C": {strata.S(2, 4)},
	})
	root := tr.Root()
	if root.Rule == nil || root.Rule.Weight != 9 {
		t.Fatalf("expected the weight-9 derivation to win, have %v", root.Rule)
	}
	if root.Degree() != 2 || root.Child(1).Label != "C" {
		t.Errorf("expected children A C, have %v", root.Children())
	}
}

func TestSelectBlankLeaf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.tree")
	defer teardown()
	//
	tr := mustSelect(t, "S", "S -> A _ B", map[string][]strata.Span{
		"A": {strata.S(0, 3)},
		"B": {strata.S(5, 9)},
	})
	root := tr.Root()
	if root.Degree() != 3 {
		t.Fatalf("expected children A _ B, have %v", root.Children())
	}
	gap := root.Child(1)
	if gap.Kind != intervals.Blank || gap.Span != strata.S(3, 5) {
		t.Errorf("expected a blank leaf covering (3…5), have %v", gap)
	}
}

func TestTreeIsProper(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.tree")
	defer teardown()
	//
	tr := mustSelect(t, "S", `
NP -> DET NOUN
VP -> VERB NP
S -> NP VP
`, map[string][]strata.Span{
		"DET":  {strata.S(0, 2), strata.S(9, 11)},
		"NOUN": {strata.S(2, 5), strata.S(11, 14)},
		"VERB": {strata.S(5, 9)},
	})
	var check func(n *Node)
	check = func(n *Node) {
		for i, child := range n.Children() {
			if child.Parent() != n {
				t.Errorf("child %v of %v carries the wrong parent", child, n)
			}
			if child.Span.From() < n.Span.From() || child.Span.To() > n.Span.To() {
				t.Errorf("child %v exceeds the span of %v", child, n)
			}
			if i > 0 && child.Span.From() < n.Child(i-1).Span.To() {
				t.Errorf("children %v and %v of %v overlap", n.Child(i-1), child, n)
			}
			check(child)
		}
	}
	check(tr.Root())
}

func TestWalkTopDownDirections(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.tree")
	defer teardown()
	//
	tr := mustSelect(t, "S", "S -> A B C", map[string][]strata.Span{
		"A": {strata.S(0, 2)},
		"B": {strata.S(3, 5)},
		"C": {strata.S(6, 8)},
	})
	l := &collector{}
	value := tr.SetCursor(nil).TopDown(l, LtoR, Continue)
	if value != "A B C" {
		t.Errorf("expected the walk to yield \"A B C\", have %v", value)
	}
	if strings.Join(leafLabels(l), " ") != "A B C" {
		t.Errorf("expected leaves in document order, have %v", l.leaves)
	}
	// Walking right-to-left reverses the visiting order, but child values
	// keep their left-to-right positions.
	l = &collector{}
	value = tr.SetCursor(nil).TopDown(l, RtoL, Continue)
	if strings.Join(leafLabels(l), " ") != "C B A" {
		t.Errorf("expected leaves in reverse document order, have %v", l.leaves)
	}
	if value != "A B C" {
		t.Errorf("expected value positions to stay left-to-right, have %v", value)
	}
}

func TestWalkBreak(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.tree")
	defer teardown()
	//
	tr := mustSelect(t, "S", `
NP -> DET NOUN
S -> NP VERB : 4
`, map[string][]strata.Span{
		"DET":  {strata.S(0, 3)},
		"NOUN": {strata.S(4, 8)},
		"VERB": {strata.S(9, 13)},
	})
	l := &collector{stopAt: "NP"}
	tr.SetCursor(nil).TopDown(l, LtoR, Break)
	if strings.Join(leafLabels(l), " ") != "VERB" {
		t.Errorf("expected the NP subtree to be skipped, have leaves %v", l.leaves)
	}
	// With breakmode Continue the signal is ignored.
	l = &collector{stopAt: "NP"}
	tr.SetCursor(nil).TopDown(l, LtoR, Continue)
	if strings.Join(leafLabels(l), " ") != "DET NOUN VERB" {
		t.Errorf("expected a complete walk, have leaves %v", l.leaves)
	}
}

func TestCursorMoves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.tree")
	defer teardown()
	//
	tr := mustSelect(t, "S", `
NP -> DET NOUN
S -> NP VERB : 4
`, map[string][]strata.Span{
		"DET":  {strata.S(0, 3)},
		"NOUN": {strata.S(4, 8)},
		"VERB": {strata.S(9, 13)},
	})
	cursor := tr.SetCursor(nil)
	if cursor.Node().Label != "S" {
		t.Fatalf("expected the cursor to start at the root, have %v", cursor.Node())
	}
	if n, ok := cursor.Down(LtoR); !ok || n.Label != "NP" {
		t.Errorf("expected DOWN to reach NP, have %v", n)
	}
	if n, ok := cursor.Sibling(LtoR); !ok || n.Label != "VERB" {
		t.Errorf("expected SIBLING to reach VERB, have %v", n)
	}
	if _, ok := cursor.Sibling(LtoR); ok {
		t.Errorf("expected no sibling right of VERB")
	}
	if n, ok := cursor.Up(); !ok || n.Label != "S" {
		t.Errorf("expected UP to reach S, have %v", n)
	}
	if _, ok := cursor.Up(); ok {
		t.Errorf("expected no parent above the root")
	}
	if n, ok := cursor.Down(RtoL); !ok || n.Label != "VERB" {
		t.Errorf("expected DOWN from the right to reach VERB, have %v", n)
	}
	if n, ok := cursor.Sibling(RtoL); !ok || n.Label != "NP" {
		t.Errorf("expected SIBLING to move left to NP, have %v", n)
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

func mustResolve(t *testing.T, g *grammar.Grammar, layers map[string][]strata.Span) *chart.Chart {
	t.Helper()
	base, err := intervals.Build(layers)
	if err != nil {
		t.Fatal(err)
	}
	c, err := chart.NewResolver(g).Resolve(base)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func mustSelect(t *testing.T, start, rules string, layers map[string][]strata.Span) *Tree {
	t.Helper()
	g := mustGrammar(t, start, rules)
	tr, err := Select(mustResolve(t, g, layers), g)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

// collector is a Listener recording the order of visited nodes. ExitRule
// joins the children's values, so a full walk yields the leaf labels in
// document order no matter the walking direction.
type collector struct {
	enters []string
	leaves []interface{}
	stopAt string
}

func (l *collector) EnterRule(n *Node, ctxt RuleCtxt) bool {
	l.enters = append(l.enters, n.Label)
	return n.Label != l.stopAt
}

func (l *collector) ExitRule(n *Node, values []interface{}, ctxt RuleCtxt) interface{} {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func (l *collector) Terminal(n *Node, ctxt RuleCtxt) interface{} {
	l.leaves = append(l.leaves, n.Label)
	return n.Label
}

func leafLabels(l *collector) []string {
	labels := make([]string, len(l.leaves))
	for i, leaf := range l.leaves {
		labels[i], _ = leaf.(string)
	}
	return labels
}
