package notation

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/npillmayer/strata"
)

// Token types for the rule notation. Single-character metasymbols are
// identified by their code point, named token classes by negative values.
type tokType int

const (
	tokEOF tokType = -(iota + 1)
	tokIdent
	tokArrow  // ->
	tokRange  // {m,n}
	tokWeight // :w
)

// The tokens representing literal one-char lexemes
var literals = []string{"?", "*", "+", "|", "(", ")"}

// token is one scanned lexeme of a notation line.
type token struct {
	kind   tokType
	lexeme string
	pos    int
}

func (t token) String() string {
	switch t.kind {
	case tokEOF:
		return "end of line"
	case tokIdent:
		return "symbol '" + t.lexeme + "'"
	default:
		return "'" + t.lexeme + "'"
	}
}

// The lexer DFA is compiled once and shared by all compilations.
var lexerOnce sync.Once
var lexer *lexmachine.Lexer
var lexerErr error

func notationLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lexer = lexmachine.NewLexer()
		lexer.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_]*`), makeToken(tokIdent))
		lexer.Add([]byte(`->`), makeToken(tokArrow))
		lexer.Add([]byte(`\{[0-9]+, *[0-9]+\}`), makeToken(tokRange))
		lexer.Add([]byte(`:( |\t)*[0-9]+`), makeToken(tokWeight))
		for _, lit := range literals {
			lexer.Add([]byte("\\"+lit), makeToken(tokType(lit[0])))
		}
		lexer.Add([]byte(`( |\t|\n|\r)+`), skip)
		lexerErr = lexer.Compile()
		if lexerErr != nil {
			tracer().Errorf("error compiling DFA: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

// tokenize scans one line of rule notation. An unrecognized character is a
// fatal LexicalError; scanning does not resume after it.
func tokenize(line string) ([]token, error) {
	lex, err := notationLexer()
	if err != nil {
		return nil, err
	}
	s, err := lex.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var tokens []token
	for tok, err, eof := s.Next(); !eof; tok, err, eof = s.Next() {
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				ch := rune(0)
				if ui.StartTC < len(ui.Text) {
					ch = rune(ui.Text[ui.StartTC])
				}
				return nil, &strata.LexicalError{
					Line: line,
					Pos:  ui.StartTC,
					Char: ch,
				}
			}
			return nil, err
		}
		tokens = append(tokens, tok.(token))
	}
	tracer().Debugf("scanned %d tokens from %q", len(tokens), line)
	return tokens, nil
}

// makeToken is a lexer action which wraps a scanned match into a token.
func makeToken(kind tokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return token{kind: kind, lexeme: string(m.Bytes), pos: m.TC}, nil
	}
}

// skip is a lexer action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}
