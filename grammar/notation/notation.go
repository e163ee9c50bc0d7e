package notation

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/strata/grammar"
)

// Compile compiles one line of rule notation into concrete grammar rules.
// All produced rules share the line's left-hand side; the accepted
// right-hand sides are deduplicated, keeping the first expansion order.
// If the line carries a ':w' suffix, every rule gets weight w, otherwise
// weights default to the length of each rule's right-hand side.
//
// Scanning and parsing fail fast: Compile returns a LexicalError for an
// unrecognized character and a SyntaxError for a malformed line.
func Compile(input string) ([]*grammar.Rule, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	l, err := parse(tokens, len(input))
	if err != nil {
		return nil, err
	}
	seqs := dedupe(l.rhs.expand())
	rules := make([]*grammar.Rule, 0, len(seqs))
	for _, rhs := range seqs {
		r := grammar.NewRule(l.lhs, rhs...)
		if l.hasWeight {
			r = r.WithWeight(l.weight)
		}
		rules = append(rules, r)
	}
	tracer().Debugf("%q compiled to %d rules", input, len(rules))
	return rules, nil
}

// CompileAll compiles a multi-line rule description. Blank lines and lines
// starting with '#' are skipped. Compilation stops at the first offending
// line.
func CompileAll(input string) ([]*grammar.Rule, error) {
	var rules []*grammar.Rule
	for _, ln := range strings.Split(input, "\n") {
		if trimmed := strings.TrimSpace(ln); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		compiled, err := Compile(ln)
		if err != nil {
			return nil, err
		}
		rules = append(rules, compiled...)
	}
	return rules, nil
}

// CompileGrammar compiles a multi-line rule description and wraps the
// resulting rules in a grammar with the given start symbol. An empty
// start symbol will be inferred from the rules, if possible.
func CompileGrammar(name, start, input string) (*grammar.Grammar, error) {
	rules, err := CompileAll(input)
	if err != nil {
		return nil, err
	}
	if start == "" {
		if start, err = grammar.InferStart(rules); err != nil {
			return nil, err
		}
	}
	return grammar.New(name, start, rules)
}
