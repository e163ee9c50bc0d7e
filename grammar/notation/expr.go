package notation

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// CAP is the finite bound substituted for "unbounded" repetition: '*' and
// '+' expand to at most CAP copies of their operand. Bounding repetition
// keeps the set of concrete right-hand sides finite.
const CAP = 10

// An expr is one node of the expression IR, a sum type discriminated by
// kind. Parsing produces an expr tree, expansion flattens it into concrete
// symbol sequences.
type expr struct {
	kind     exprKind
	name     string  // symbolExpr only
	subs     []*expr // sequenceExpr and alternationExpr; repeatExpr has exactly one
	min, max int     // repeatExpr only
}

type exprKind int8

const (
	symbolExpr exprKind = iota
	sequenceExpr
	repeatExpr
	alternationExpr
)

func symbol(name string) *expr {
	return &expr{kind: symbolExpr, name: name}
}

func sequence(subs ...*expr) *expr {
	return &expr{kind: sequenceExpr, subs: subs}
}

func repeat(sub *expr, min, max int) *expr {
	return &expr{kind: repeatExpr, subs: []*expr{sub}, min: min, max: max}
}

func alternation(subs ...*expr) *expr {
	return &expr{kind: alternationExpr, subs: subs}
}

func (e *expr) String() string {
	switch e.kind {
	case symbolExpr:
		return e.name
	case sequenceExpr:
		var b strings.Builder
		for i, sub := range e.subs {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(sub.String())
		}
		return b.String()
	case repeatExpr:
		return fmt.Sprintf("(%s){%d,%d}", e.subs[0], e.min, e.max)
	case alternationExpr:
		var b strings.Builder
		b.WriteByte('(')
		for i, sub := range e.subs {
			if i > 0 {
				b.WriteByte('|')
			}
			b.WriteString(sub.String())
		}
		b.WriteByte(')')
		return b.String()
	}
	return "?"
}

// expand rewrites an expression into the concrete symbol sequences it
// accepts. A symbol accepts itself; a sequence accepts every concatenation
// of one choice per child; a repetition accepts, for every count j in
// [min,max], every concatenation of j independent choices of its operand
// (count 0 contributes the empty sequence); an alternation accepts whatever
// one of its branches accepts. The result may contain duplicates; callers
// deduplicate.
func (e *expr) expand() [][]string {
	switch e.kind {
	case symbolExpr:
		return [][]string{{e.name}}
	case sequenceExpr:
		seqs := [][]string{{}}
		for _, sub := range e.subs {
			seqs = cross(seqs, sub.expand())
		}
		return seqs
	case repeatExpr:
		inner := e.subs[0].expand()
		var seqs [][]string
		for j := e.min; j <= e.max; j++ {
			counted := [][]string{{}}
			for i := 0; i < j; i++ {
				counted = cross(counted, inner)
			}
			seqs = append(seqs, counted...)
		}
		return seqs
	case alternationExpr:
		var seqs [][]string
		for _, sub := range e.subs {
			seqs = append(seqs, sub.expand()...)
		}
		return seqs
	}
	return nil
}

// cross concatenates every prefix with every suffix, preserving order.
func cross(prefixes, suffixes [][]string) [][]string {
	seqs := make([][]string, 0, len(prefixes)*len(suffixes))
	for _, p := range prefixes {
		for _, s := range suffixes {
			seq := make([]string, 0, len(p)+len(s))
			seq = append(seq, p...)
			seq = append(seq, s...)
			seqs = append(seqs, seq)
		}
	}
	return seqs
}

// dedupe removes duplicate sequences, keeping first occurrences.
func dedupe(seqs [][]string) [][]string {
	seen := make(map[string]struct{}, len(seqs))
	unique := seqs[:0]
	for _, seq := range seqs {
		key := strings.Join(seq, " ")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, seq)
	}
	return unique
}
