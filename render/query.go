package render

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/npillmayer/strata/tree"
)

// Query renders a tree and returns the first node matched by an XPath
// expression over the markup, nil if nothing matches. Span elements are
// addressed by class, e.g.
//
//    //span[@class='NOUN']
//
func Query(t *tree.Tree, text string, expr string) (*xmlquery.Node, error) {
	doc, sel, err := prepare(t, text, expr)
	if err != nil {
		return nil, err
	}
	return xmlquery.QuerySelector(doc, sel), nil
}

// QueryAll renders a tree and returns all nodes matched by an XPath
// expression over the markup.
func QueryAll(t *tree.Tree, text string, expr string) ([]*xmlquery.Node, error) {
	doc, sel, err := prepare(t, text, expr)
	if err != nil {
		return nil, err
	}
	return xmlquery.QuerySelectorAll(doc, sel), nil
}

// prepare compiles the XPath expression and renders the tree into a
// queryable markup document.
func prepare(t *tree.Tree, text string, expr string) (*xmlquery.Node, *xpath.Expr, error) {
	sel, err := xpath.Compile(expr)
	if err != nil {
		return nil, nil, err
	}
	markup, err := XMLString(t, text)
	if err != nil {
		return nil, nil, err
	}
	tracer().Debugf("querying %d bytes of markup with %q", len(markup), expr)
	doc, err := xmlquery.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, nil, err
	}
	return doc, sel, nil
}
