package document

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/strata"
)

// Document is an annotated text: named annotation layers, each covering
// the text with ordered spans, plus optionally the raw text itself. The
// text is not needed for parsing; renderers use it to fill leaves and
// gaps with their original content.
type Document struct {
	text   string
	names  []string // layer names in first-mention order
	layers map[string][]strata.Span
}

// New creates an empty document over a text. The text may be empty if
// only span arithmetic is of interest.
func New(text string) *Document {
	return &Document{
		text:   text,
		layers: make(map[string][]strata.Span),
	}
}

// AddLayer adds spans to the annotation layer of the given name, creating
// the layer as needed. Layers keep the order of their first mention.
// Spans with negative offsets or with an end before their start are
// rejected.
func (d *Document) AddLayer(name string, spans ...strata.Span) error {
	for _, span := range spans {
		if err := validate(name, span); err != nil {
			return err
		}
	}
	if _, ok := d.layers[name]; !ok {
		d.names = append(d.names, name)
	}
	d.layers[name] = append(d.layers[name], spans...)
	tracer().Debugf("layer %q now carries %d spans", name, len(d.layers[name]))
	return nil
}

func validate(layer string, span strata.Span) error {
	if span.From() < 0 {
		return &strata.EmptyInputError{
			Layer: layer,
			Msg:   fmt.Sprintf("span %v starts before the document", span),
		}
	}
	if span.To() < span.From() {
		return &strata.EmptyInputError{
			Layer: layer,
			Msg:   fmt.Sprintf("span %v is inverted, covering no offsets", span),
		}
	}
	return nil
}

// Text returns the document's raw text, empty if none was given.
func (d *Document) Text() string {
	return d.text
}

// Layers returns the names of all annotation layers in first-mention
// order.
func (d *Document) Layers() []string {
	names := make([]string, len(d.names))
	copy(names, d.names)
	return names
}

// Layer returns the spans of a named layer, in the order they were added.
func (d *Document) Layer(name string) ([]strata.Span, bool) {
	spans, ok := d.layers[name]
	if !ok {
		return nil, false
	}
	s := make([]strata.Span, len(spans))
	copy(s, spans)
	return s, true
}

// SpanMap collects layers into the span-map form the graph builder
// consumes. Without arguments it collects every layer of the document;
// otherwise only the named ones. Requesting a layer the document does
// not carry is an error.
func (d *Document) SpanMap(names ...string) (map[string][]strata.Span, error) {
	if len(names) == 0 {
		names = d.names
	}
	m := make(map[string][]strata.Span, len(names))
	for _, name := range names {
		spans, ok := d.layers[name]
		if !ok {
			return nil, &strata.EmptyInputError{
				Layer: name,
				Msg:   "document has no such layer",
			}
		}
		s := make([]strata.Span, len(spans))
		copy(s, spans)
		m[name] = s
	}
	return m, nil
}

// Snippet returns the text covered by a span, clamped to the document's
// bounds. Without a text, Snippet returns the empty string.
func (d *Document) Snippet(span strata.Span) string {
	if d.text == "" {
		return ""
	}
	from, to := span.From(), span.To()
	if from < 0 {
		from = 0
	}
	if max := int64(len(d.text)); to > max {
		to = max
	}
	if from >= to {
		return ""
	}
	return d.text[from:to]
}

func (d *Document) String() string {
	return fmt.Sprintf("document with %d layers over %d bytes of text",
		len(d.names), len(d.text))
}
