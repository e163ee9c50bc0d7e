package notation

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"
	"strings"

	"github.com/npillmayer/strata"
)

// A parsed rule-notation line: the left-hand side nonterminal, the
// right-hand side expression, and an optional weight for the rules the
// line produces.
type line struct {
	lhs       string
	rhs       *expr
	weight    int
	hasWeight bool
}

// parser is a recursive-descent parser over the scanned tokens of one
// notation line.
//
//	line := IDENT '->' [ alt ] [ WEIGHT ]
//	alt  := seq { '|' seq }
//	seq  := term { term }
//	term := atom [ '?' | '*' | '+' | RANGE ]
//	atom := IDENT | '(' alt ')'
type parser struct {
	tokens []token
	pos    int
	end    int // position just past the last token, for error reporting
}

func parse(tokens []token, length int) (*line, error) {
	p := &parser{tokens: tokens, end: length}
	return p.line()
}

func (p *parser) line() (*line, error) {
	lhs, err := p.expect(tokIdent, "a nonterminal")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokArrow, "'->'"); err != nil {
		return nil, err
	}
	l := &line{lhs: lhs.lexeme}
	if p.peek().kind == tokEOF || p.peek().kind == tokWeight {
		l.rhs = sequence() // an empty right-hand side is an epsilon rule
	} else if l.rhs, err = p.alt(); err != nil {
		return nil, err
	}
	if p.peek().kind == tokWeight {
		w := p.next()
		l.weight, err = strconv.Atoi(strings.TrimSpace(w.lexeme[1:]))
		if err != nil {
			return nil, p.syntaxError("a weight", w)
		}
		l.hasWeight = true
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.syntaxError("end of line", tok)
	}
	return l, nil
}

func (p *parser) alt() (*expr, error) {
	first, err := p.seq()
	if err != nil {
		return nil, err
	}
	branches := []*expr{first}
	for p.peek().kind == tokType('|') {
		p.next()
		branch, err := p.seq()
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}
	if len(branches) == 1 {
		return first, nil
	}
	return alternation(branches...), nil
}

func (p *parser) seq() (*expr, error) {
	first, err := p.term()
	if err != nil {
		return nil, err
	}
	terms := []*expr{first}
	for p.atAtom() {
		term, err := p.term()
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	if len(terms) == 1 {
		return first, nil
	}
	return sequence(terms...), nil
}

func (p *parser) term() (*expr, error) {
	atom, err := p.atom()
	if err != nil {
		return nil, err
	}
	switch tok := p.peek(); tok.kind {
	case tokType('?'):
		p.next()
		return repeat(atom, 0, 1), nil
	case tokType('*'):
		p.next()
		return repeat(atom, 0, CAP), nil
	case tokType('+'):
		p.next()
		return repeat(atom, 1, CAP), nil
	case tokRange:
		p.next()
		min, max, err := parseRange(tok)
		if err != nil {
			return nil, err
		}
		return repeat(atom, min, max), nil
	}
	return atom, nil
}

func (p *parser) atom() (*expr, error) {
	switch tok := p.peek(); tok.kind {
	case tokIdent:
		p.next()
		return symbol(tok.lexeme), nil
	case tokType('('):
		p.next()
		inner, err := p.alt()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokType(')'), "')'"); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, p.syntaxError("a symbol or '('", tok)
	}
}

func (p *parser) atAtom() bool {
	kind := p.peek().kind
	return kind == tokIdent || kind == tokType('(')
}

// parseRange decodes a '{m,n}' token. An empty range (m greater than n) is
// rejected; it would accept nothing.
func parseRange(tok token) (int, int, error) {
	bounds := strings.SplitN(tok.lexeme[1:len(tok.lexeme)-1], ",", 2)
	min, err1 := strconv.Atoi(strings.TrimSpace(bounds[0]))
	max, err2 := strconv.Atoi(strings.TrimSpace(bounds[1]))
	if err1 != nil || err2 != nil || min > max {
		return 0, 0, &strata.SyntaxError{
			Pos:      tok.pos,
			Expected: "a repetition range {m,n} with m ≤ n",
			Found:    tok.String(),
		}
	}
	return min, max, nil
}

// --- Token stream helpers ---------------------------------------------

func (p *parser) peek() token {
	if p.pos >= len(p.tokens) {
		return token{kind: tokEOF, pos: p.end}
	}
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind tokType, what string) (token, error) {
	tok := p.peek()
	if tok.kind != kind {
		return tok, p.syntaxError(what, tok)
	}
	return p.next(), nil
}

func (p *parser) syntaxError(expected string, found token) error {
	err := &strata.SyntaxError{
		Pos:      found.pos,
		Expected: expected,
		Found:    found.String(),
	}
	tracer().Errorf(err.Error())
	return err
}
