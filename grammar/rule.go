package grammar

import (
	"fmt"
	"strings"
)

// Rule is one concrete grammar rule: a nonterminal left-hand side, a fixed
// sequence of symbol names as right-hand side, and a weight. Weights steer
// parse-tree selection; heavier rules win.
type Rule struct {
	LHS    string   // nonterminal name
	RHS    []string // ordered symbol names, terminals or nonterminals
	Weight int      // defaults to len(RHS)
}

// NewRule creates a rule with the default weight len(rhs).
func NewRule(lhs string, rhs ...string) *Rule {
	return &Rule{
		LHS:    lhs,
		RHS:    rhs,
		Weight: len(rhs),
	}
}

// WithWeight overrides the default weight of a rule. It returns the rule to
// allow chaining with NewRule.
func (r *Rule) WithWeight(w int) *Rule {
	r.Weight = w
	return r
}

// IsEpsilon is true for rules with an empty right-hand side. Such rules may
// result from compiling optional notation expressions. They never match a
// path in an interval graph.
func (r *Rule) IsEpsilon() bool {
	return len(r.RHS) == 0
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s ➞ [%s]  :%d", r.LHS, strings.Join(r.RHS, " "), r.Weight)
}
