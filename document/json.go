package document

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/npillmayer/strata"
)

// jsonDocument mirrors the JSON wire form:
//
//    { "text": "John loves Mary.",
//      "layers": { "NOUN": [[0,4], [11,15]], "VERB": [[5,10]] } }
//
type jsonDocument struct {
	Text   string               `json:"text"`
	Layers map[string][][]int64 `json:"layers"`
}

// FromJSON loads a document from its JSON form. Accepted are both the
// envelope form with "text" and "layers" members and a bare layers
// object, mapping layer names to arrays of [start, end] pairs.
func FromJSON(data []byte) (*Document, error) {
	var envelope jsonDocument
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}
	if envelope.Layers == nil && envelope.Text == "" {
		var bare map[string][][]int64
		if err := json.Unmarshal(data, &bare); err == nil {
			tracer().Debugf("reading a bare layers object with %d layers", len(bare))
			return fromPairs("", bare)
		}
	}
	return fromPairs(envelope.Text, envelope.Layers)
}

// fromPairs assembles a document from raw offset pairs. JSON objects do
// not preserve member order, so layers are added in lexicographic order
// to keep loaded documents deterministic.
func fromPairs(text string, layers map[string][][]int64) (*Document, error) {
	d := New(text)
	for _, name := range sortedNames(layers) {
		spans := make([]strata.Span, 0, len(layers[name]))
		for _, pair := range layers[name] {
			if len(pair) != 2 {
				return nil, fmt.Errorf("layer %q: span pairs must be [start, end], have %v",
					name, pair)
			}
			spans = append(spans, strata.S(pair[0], pair[1]))
		}
		if err := d.AddLayer(name, spans...); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func sortedNames(layers map[string][][]int64) []string {
	names := make([]string, 0, len(layers))
	for name := range layers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
