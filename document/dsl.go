package document

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"

	"github.com/npillmayer/strata"
)

// The textual document form is a sequence of layer lines, preceded by an
// optional text line. '#' starts a comment reaching to the end of the
// line.
//
//    # a tiny example sentence
//    text "John loves Mary."
//    layer NOUN: 0..4, 11..15
//    layer VERB: 5..10
//
type dslDocument struct {
	Text   string      `("text" @String)?`
	Layers []*dslLayer `@@*`
}

type dslLayer struct {
	Name  string     `"layer" @Ident ":"`
	Spans []*dslSpan `@@ ("," @@)*`
}

type dslSpan struct {
	From int64 `@Int ".."`
	To   int64 `@Int`
}

var dslLexer = lexer.Must(lexer.Regexp(`(\s+)` +
	`|(#[^\n]*)` +
	`|(?P<Ident>[a-zA-Z_][a-zA-Z0-9_]*)` +
	`|(?P<String>"(?:\\.|[^"])*")` +
	`|(?P<Range>\.\.)` +
	`|(?P<Int>[0-9]+)` +
	`|(?P<Punct>[:,])`))

var dslParser = participle.MustBuild(&dslDocument{},
	participle.Lexer(dslLexer),
	participle.Unquote("String"),
)

// FromDSL loads a document from its compact textual form.
func FromDSL(input string) (*Document, error) {
	ast := &dslDocument{}
	if err := dslParser.ParseString(input, ast); err != nil {
		return nil, err
	}
	d := New(ast.Text)
	for _, layer := range ast.Layers {
		spans := make([]strata.Span, 0, len(layer.Spans))
		for _, span := range layer.Spans {
			spans = append(spans, strata.S(span.From, span.To))
		}
		if err := d.AddLayer(layer.Name, spans...); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("read %v from its textual form", d)
	return d, nil
}
