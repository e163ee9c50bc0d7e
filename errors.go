package strata

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"
)

// Errors are typed, so that callers can distinguish the failure classes of
// the pipeline (scanning or parsing the rule notation, grammar analysis,
// graph construction, parse-tree selection) with errors.As. No error is ever
// swallowed by a package of this module; retry policy is up to the caller.

// LexicalError signals an unrecognized character in a grammar notation line.
type LexicalError struct {
	Line string // the offending notation line
	Pos  int    // character position within the line, starting at 0
	Char rune   // the unrecognized character
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("unexpected character %q at position %d", e.Char, e.Pos)
}

// SyntaxError signals a malformed grammar notation line: a missing arrow,
// an unbalanced group, a dangling quantifier, a malformed weight, etc.
type SyntaxError struct {
	Pos      int    // character position within the line, starting at 0
	Expected string // what the parser was looking for
	Found    string // the lexeme it found instead; "end of line" at EOL
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expected %s, found %s at position %d", e.Expected, e.Found, e.Pos)
}

// ConfigurationError signals an unusable grammar, detected during grammar
// analysis and before any graph work begins. The prime example is a cyclic
// dependency among nonterminals, which admits no application order.
type ConfigurationError struct {
	Msg   string
	Cycle []string // nonterminals participating in a dependency cycle, if any
}

func (e *ConfigurationError) Error() string {
	if len(e.Cycle) > 0 {
		return fmt.Sprintf("%s: %s", e.Msg, strings.Join(e.Cycle, ", "))
	}
	return e.Msg
}

// EmptyInputError signals that a document provides nothing to build a graph
// from: no layers at all, or a referenced layer without spans, or a span
// covering no offsets.
type EmptyInputError struct {
	Layer string // the offending layer; empty if the whole document is empty
	Msg   string
}

func (e *EmptyInputError) Error() string {
	if e.Layer != "" {
		return fmt.Sprintf("layer %q: %s", e.Layer, e.Msg)
	}
	return e.Msg
}

// ParseFailedError signals that chart resolution never produced the
// grammar's start symbol. The failure is local to the document and grammar
// at hand; no shared state is corrupted, and the caller may retry with a
// different grammar or document.
type ParseFailedError struct {
	Start string // the start symbol that was never derived
}

func (e *ParseFailedError) Error() string {
	return fmt.Sprintf("parse failed: start symbol %q was never derived", e.Start)
}

// IsParseFailed tells whether err is (or wraps) a ParseFailedError.
// Callers wanting to retry with an adapted grammar check for this condition.
func IsParseFailed(err error) bool {
	var pf *ParseFailedError
	return errors.As(err, &pf)
}
