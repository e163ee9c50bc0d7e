package document

import (
	"errors"
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/strata"
)

func TestAddLayerKeepsFirstMentionOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.document")
	defer teardown()
	//
	d := New("")
	if err := d.AddLayer("NOUN", strata.S(0, 4)); err != nil {
		t.Fatal(err)
	}
	if err := d.AddLayer("VERB", strata.S(5, 10)); err != nil {
		t.Fatal(err)
	}
	if err := d.AddLayer("NOUN", strata.S(11, 15)); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(d.Layers(), []string{"NOUN", "VERB"}) {
		t.Errorf("expected layers [NOUN VERB], have %v", d.Layers())
	}
	spans, ok := d.Layer("NOUN")
	if !ok || len(spans) != 2 {
		t.Errorf("expected NOUN to carry both mentions, have %v", spans)
	}
}

func TestAddLayerRejectsBadSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.document")
	defer teardown()
	//
	d := New("")
	var emptyerr *strata.EmptyInputError
	if err := d.AddLayer("X", strata.S(-2, 3)); !errors.As(err, &emptyerr) {
		t.Errorf("expected a negative span to be rejected, have %v", err)
	}
	if err := d.AddLayer("X", strata.S(4, 1)); !errors.As(err, &emptyerr) {
		t.Errorf("expected an inverted span to be rejected, have %v", err)
	}
	if emptyerr.Layer != "X" {
		t.Errorf("expected the error to name layer X, have %q", emptyerr.Layer)
	}
}

func TestSpanMapSelectsLayers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.document")
	defer teardown()
	//
	d := New("")
	d.AddLayer("A", strata.S(0, 1))
	d.AddLayer("B", strata.S(1, 2))
	all, err := d.SpanMap()
	if err != nil || len(all) != 2 {
		t.Errorf("expected both layers, have %v (%v)", all, err)
	}
	some, err := d.SpanMap("A")
	if err != nil || len(some) != 1 {
		t.Errorf("expected layer A only, have %v (%v)", some, err)
	}
	var emptyerr *strata.EmptyInputError
	if _, err := d.SpanMap("A", "C"); !errors.As(err, &emptyerr) || emptyerr.Layer != "C" {
		t.Errorf("expected the missing layer C to be reported, have %v", err)
	}
}

func TestSnippet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.document")
	defer teardown()
	//
	d := New("John loves Mary.")
	if s := d.Snippet(strata.S(0, 4)); s != "John" {
		t.Errorf("expected snippet \"John\", have %q", s)
	}
	if s := d.Snippet(strata.S(11, 99)); s != "Mary." {
		t.Errorf("expected the snippet to be clamped to \"Mary.\", have %q", s)
	}
	if s := New("").Snippet(strata.S(0, 4)); s != "" {
		t.Errorf("expected no snippet without a text, have %q", s)
	}
}

func TestFromJSONEnvelope(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.document")
	defer teardown()
	//
	d, err := FromJSON([]byte(`{
		"text": "John loves Mary.",
		"layers": {
			"NOUN": [[0,4], [11,15]],
			"VERB": [[5,10]]
		}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if d.Text() != "John loves Mary." {
		t.Errorf("expected the text to be read, have %q", d.Text())
	}
	if !reflect.DeepEqual(d.Layers(), []string{"NOUN", "VERB"}) {
		t.Errorf("expected layers [NOUN VERB], have %v", d.Layers())
	}
	spans, _ := d.Layer("NOUN")
	if !reflect.DeepEqual(spans, []strata.Span{strata.S(0, 4), strata.S(11, 15)}) {
		t.Errorf("expected NOUN spans (0…4) (11…15), have %v", spans)
	}
}

func TestFromJSONBareLayers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.document")
	defer teardown()
	//
	d, err := FromJSON([]byte(`{"NOUN": [[0,4]], "VERB": [[5,10]]}`))
	if err != nil {
		t.Fatal(err)
	}
	if d.Text() != "" {
		t.Errorf("expected no text in the bare form, have %q", d.Text())
	}
	if len(d.Layers()) != 2 {
		t.Errorf("expected two layers, have %v", d.Layers())
	}
}

func TestFromJSONRejectsMalformedSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.document")
	defer teardown()
	//
	var emptyerr *strata.EmptyInputError
	if _, err := FromJSON([]byte(`{"layers": {"X": [[4,1]]}}`)); !errors.As(err, &emptyerr) {
		t.Errorf("expected an inverted span to be rejected, have %v", err)
	}
	if _, err := FromJSON([]byte(`{"layers": {"X": [[1,2,3]]}}`)); err == nil {
		t.Errorf("expected a triple to be rejected")
	}
}

func TestFromDSL(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.document")
	defer teardown()
	//
	d, err := FromDSL(`
# a tiny example sentence
text "John loves Mary."
layer NOUN: 0..4, 11..15
layer VERB: 5..10
`)
	if err != nil {
		t.Fatal(err)
	}
	if d.Text() != "John loves Mary." {
		t.Errorf("expected the text line to be read, have %q", d.Text())
	}
	if !reflect.DeepEqual(d.Layers(), []string{"NOUN", "VERB"}) {
		t.Errorf("expected layers in first-mention order, have %v", d.Layers())
	}
	spans, _ := d.Layer("NOUN")
	if !reflect.DeepEqual(spans, []strata.Span{strata.S(0, 4), strata.S(11, 15)}) {
		t.Errorf("expected NOUN spans (0…4) (11…15), have %v", spans)
	}
	if s := d.Snippet(spans[1]); s != "Mary" {
		t.Errorf("expected the second NOUN to cover \"Mary\", have %q", s)
	}
}

func TestFromDSLWithoutText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.document")
	defer teardown()
	//
	d, err := FromDSL(`layer A: 0..2`)
	if err != nil {
		t.Fatal(err)
	}
	if d.Text() != "" {
		t.Errorf("expected no text, have %q", d.Text())
	}
	if _, ok := d.Layer("A"); !ok {
		t.Errorf("expected layer A to be read")
	}
}

func TestFromDSLRejectsGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "strata.document")
	defer teardown()
	//
	if _, err := FromDSL(`layer A: 0..2 nonsense`); err == nil {
		t.Errorf("expected trailing garbage to be rejected")
	}
	if _, err := FromDSL(`layer A: 9..5`); err == nil {
		t.Errorf("expected an inverted span to be rejected")
	}
}
