package render

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/strata/tree"
)

// XML renders a parse tree as nested span elements,
//
//    <span class="LABEL" start="0" end="15"> … </span>
//
// wrapped into one covering element with class "document". Children
// appear in ascending start order. If text is non-empty, leaves contain
// the text they cover, uncovered gaps between siblings reappear between
// their elements, and text outside the root's span pads the document
// element. No indentation is inserted, so the character content of the
// markup is exactly the document text.
func XML(t *tree.Tree, text string, w io.Writer) error {
	root := t.Root()
	if root == nil {
		return fmt.Errorf("render: tree has no root")
	}
	docEnd := int64(len(text))
	if docEnd == 0 {
		docEnd = root.Span.To() // no text given, the annotations bound the document
	}
	enc := xml.NewEncoder(w)
	if err := openSpan(enc, "document", 0, docEnd); err != nil {
		return err
	}
	if err := chardata(enc, slice(text, 0, root.Span.From())); err != nil {
		return err
	}
	if err := emit(enc, root, text); err != nil {
		return err
	}
	if err := chardata(enc, slice(text, root.Span.To(), int64(len(text)))); err != nil {
		return err
	}
	if err := closeSpan(enc); err != nil {
		return err
	}
	return enc.Flush()
}

// XMLString renders like XML, returning the markup as a string.
func XMLString(t *tree.Tree, text string) (string, error) {
	var b strings.Builder
	if err := XML(t, text, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func emit(enc *xml.Encoder, n *tree.Node, text string) error {
	if err := openSpan(enc, n.Label, n.Span.From(), n.Span.To()); err != nil {
		return err
	}
	if n.IsLeaf() {
		if err := chardata(enc, slice(text, n.Span.From(), n.Span.To())); err != nil {
			return err
		}
		return closeSpan(enc)
	}
	children := n.Children()
	for i, child := range children {
		if err := emit(enc, child, text); err != nil {
			return err
		}
		if i+1 < len(children) && child.Span.To() < children[i+1].Span.From() {
			gap := slice(text, child.Span.To(), children[i+1].Span.From())
			if err := chardata(enc, gap); err != nil {
				return err
			}
		}
	}
	return closeSpan(enc)
}

func openSpan(enc *xml.Encoder, class string, from, to int64) error {
	return enc.EncodeToken(xml.StartElement{
		Name: xml.Name{Local: "span"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "class"}, Value: class},
			{Name: xml.Name{Local: "start"}, Value: strconv.FormatInt(from, 10)},
			{Name: xml.Name{Local: "end"}, Value: strconv.FormatInt(to, 10)},
		},
	})
}

func closeSpan(enc *xml.Encoder) error {
	return enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: "span"}})
}

func chardata(enc *xml.Encoder, text string) error {
	if text == "" {
		return nil
	}
	return enc.EncodeToken(xml.CharData(text))
}

// slice cuts [from, to) out of text, clamped to the text's bounds.
// Documents without text yield empty slices everywhere.
func slice(text string, from, to int64) string {
	if max := int64(len(text)); to > max {
		to = max
	}
	if from < 0 {
		from = 0
	}
	if from >= to {
		return ""
	}
	return text[from:to]
}

// HTML wraps the XML rendering of a tree into a minimal standalone page,
// expecting span classes to be styled by an accompanying main.css.
func HTML(t *tree.Tree, text string, w io.Writer) error {
	if _, err := io.WriteString(w, htmlHeader); err != nil {
		return err
	}
	if err := XML(t, text, w); err != nil {
		return err
	}
	_, err := io.WriteString(w, htmlFooter)
	return err
}

const htmlHeader = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Annotated document</title>
    <link rel="stylesheet" type="text/css" href="main.css">
</head>
<body>
`

const htmlFooter = `
</body>
</html>
`
