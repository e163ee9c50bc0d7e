package grammar

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
	"github.com/npillmayer/schuko/gconf"

	"github.com/npillmayer/strata"
)

// Grammar is an immutable set of rules together with a designated start
// symbol. Construction derives the terminal and nonterminal alphabets and
// the nonterminal application order; an unusable rule set is rejected with
// a ConfigurationError.
type Grammar struct {
	name         string
	start        string
	rules        []*Rule
	byLHS        map[string][]*Rule
	terminals    []string // sorted
	nonterminals []string // sorted
	ntset        map[string]struct{}
	levels       [][]string // application order, grouped by dependency level
	order        []string   // application order, flattened
	fingerprint  string
}

// New creates a grammar from a set of concrete rules. The name is only used
// for diagnostics. New fails with a ConfigurationError if the rule set is
// unusable: no rules, no start symbol, a start symbol without rules, or a
// cyclic dependency among nonterminals.
func New(name, start string, rules []*Rule) (*Grammar, error) {
	if name == "" {
		name = "G"
	}
	if start == "" {
		return nil, &strata.ConfigurationError{Msg: "grammar has no start symbol"}
	}
	if len(rules) == 0 {
		return nil, &strata.ConfigurationError{Msg: "grammar has no rules"}
	}
	g := &Grammar{
		name:  name,
		start: start,
		rules: rules,
		byLHS: make(map[string][]*Rule),
		ntset: make(map[string]struct{}),
	}
	for _, r := range rules {
		if r == nil || r.LHS == "" {
			return nil, &strata.ConfigurationError{Msg: "rule without a left-hand side"}
		}
		g.byLHS[r.LHS] = append(g.byLHS[r.LHS], r)
		g.ntset[r.LHS] = struct{}{}
	}
	if _, ok := g.ntset[start]; !ok {
		return nil, &strata.ConfigurationError{
			Msg: fmt.Sprintf("start symbol %q has no rules", start),
		}
	}
	g.deriveAlphabets()
	if err := g.deriveOrder(); err != nil {
		return nil, err
	}
	tracer().Infof("grammar %s: %d rules, %d terminals, %d nonterminals, %d levels",
		g.name, len(g.rules), len(g.terminals), len(g.nonterminals), len(g.levels))
	return g, nil
}

// InferStart proposes a start symbol for a set of rules: the single
// nonterminal which no other rule references on a right-hand side. For
// rule sets without such a unique root the caller has to name the start
// symbol explicitly.
func InferStart(rules []*Rule) (string, error) {
	candidates := map[string]struct{}{}
	for _, r := range rules {
		if r != nil {
			candidates[r.LHS] = struct{}{}
		}
	}
	for _, r := range rules {
		for _, sym := range r.RHS {
			if sym != r.LHS {
				delete(candidates, sym)
			}
		}
	}
	roots := sortedKeys(candidates)
	if len(roots) == 1 {
		return roots[0], nil
	}
	return "", &strata.ConfigurationError{
		Msg: fmt.Sprintf("cannot infer a start symbol, candidates are %v", roots),
	}
}

// Terminals are the symbols used in some right-hand side but never as a
// left-hand side.
func (g *Grammar) deriveAlphabets() {
	termset := map[string]struct{}{}
	for _, r := range g.rules {
		for _, sym := range r.RHS {
			if _, isNT := g.ntset[sym]; !isNT {
				termset[sym] = struct{}{}
			}
		}
	}
	g.terminals = sortedKeys(termset)
	g.nonterminals = sortedKeys(g.ntset)
}

// deriveOrder computes the nonterminal application order as dependency
// levels: a nonterminal's dependency set holds the other nonterminals
// occurring in its rules' right-hand sides; every round emits all
// nonterminals whose unresolved dependencies are exhausted. A round that
// emits nothing while nonterminals remain means the remainder contains a
// cycle.
func (g *Grammar) deriveOrder() error {
	deps := make(map[string]map[string]struct{}, len(g.nonterminals))
	for nt, rules := range g.byLHS {
		d := map[string]struct{}{}
		for _, r := range rules {
			for _, sym := range r.RHS {
				if _, isNT := g.ntset[sym]; isNT && sym != nt {
					d[sym] = struct{}{}
				}
			}
		}
		deps[nt] = d
	}
	resolved := map[string]struct{}{}
	remaining := map[string]struct{}{}
	for nt := range deps {
		remaining[nt] = struct{}{}
	}
	for len(remaining) > 0 {
		var level []string
		for nt := range remaining {
			blocked := false
			for d := range deps[nt] {
				if _, done := resolved[d]; !done {
					blocked = true
					break
				}
			}
			if !blocked {
				level = append(level, nt)
			}
		}
		if len(level) == 0 {
			return cycleDetected(cycleMembers(deps, remaining))
		}
		sort.Strings(level)
		for _, nt := range level {
			resolved[nt] = struct{}{}
			delete(remaining, nt)
		}
		g.levels = append(g.levels, level)
		g.order = append(g.order, level...)
	}
	return nil
}

// cycleMembers narrows an unresolvable remainder down to the nonterminals
// which can reach themselves through unresolved dependencies.
func cycleMembers(deps map[string]map[string]struct{}, remaining map[string]struct{}) []string {
	var members []string
	for nt := range remaining {
		if reaches(deps, remaining, nt, nt, map[string]struct{}{}) {
			members = append(members, nt)
		}
	}
	sort.Strings(members)
	return members
}

func reaches(deps map[string]map[string]struct{}, remaining map[string]struct{},
	from, target string, visited map[string]struct{}) bool {
	//
	for d := range deps[from] {
		if _, unresolved := remaining[d]; !unresolved {
			continue
		}
		if d == target {
			return true
		}
		if _, seen := visited[d]; seen {
			continue
		}
		visited[d] = struct{}{}
		if reaches(deps, remaining, d, target, visited) {
			return true
		}
	}
	return false
}

func cycleDetected(members []string) error {
	err := &strata.ConfigurationError{
		Msg:   "nonterminal dependencies contain a cycle",
		Cycle: members,
	}
	tracer().Errorf(err.Error())
	if gconf.GetBool("panic-on-grammar-cycle") {
		panic(`grammar has cyclic nonterminal dependencies.

Configuration flag panic-on-grammar-cycle is set to true. It is aimed at
helping to debug a grammar and do a post-mortem of where the cycle comes
from. However, if this is a production environment and you did not expect
this to panic, please unset panic-on-grammar-cycle to its default (false).

` + err.Error())
	}
	return err
}

// --- Accessors --------------------------------------------------------

// Name returns the diagnostic name of the grammar.
func (g *Grammar) Name() string {
	return g.name
}

// Start returns the start symbol.
func (g *Grammar) Start() string {
	return g.start
}

// Rules returns all rules in definition order.
func (g *Grammar) Rules() []*Rule {
	return g.rules
}

// RulesFor returns the rules for a nonterminal, in definition order.
func (g *Grammar) RulesFor(lhs string) []*Rule {
	return g.byLHS[lhs]
}

// Terminals returns the sorted terminal alphabet.
func (g *Grammar) Terminals() []string {
	return g.terminals
}

// Nonterminals returns the sorted nonterminal alphabet.
func (g *Grammar) Nonterminals() []string {
	return g.nonterminals
}

// IsNonterminal tells whether sym is the left-hand side of some rule.
func (g *Grammar) IsNonterminal(sym string) bool {
	_, ok := g.ntset[sym]
	return ok
}

// ApplicationOrder returns the nonterminals in an order respecting their
// dependencies: every nonterminal comes after all nonterminals its rules
// reference.
func (g *Grammar) ApplicationOrder() []string {
	return g.order
}

// Levels returns the application order grouped into dependency levels.
// Nonterminals within one level do not reference each other and may be
// applied in any order, or concurrently.
func (g *Grammar) Levels() [][]string {
	return g.levels
}

// Fingerprint returns a stable content hash over the start symbol and the
// rules, usable for identifying a grammar in traces and caches.
func (g *Grammar) Fingerprint() string {
	if g.fingerprint != "" {
		return g.fingerprint
	}
	model := struct {
		Start string
		Rules []Rule
	}{Start: g.start}
	for _, r := range g.rules {
		model.Rules = append(model.Rules, *r)
	}
	h, err := structhash.Hash(model, 1)
	if err != nil {
		tracer().Errorf("cannot fingerprint grammar: %v", err)
		return ""
	}
	g.fingerprint = h
	return g.fingerprint
}

func (g *Grammar) String() string {
	return fmt.Sprintf("%s(start=%s, |rules|=%d)", g.name, g.start, len(g.rules))
}

// Dump is a debugging helper, listing the full grammar to the tracer.
func (g *Grammar) Dump() {
	tracer().Debugf("=== grammar %s ==========================", g.name)
	tracer().Debugf("start symbol: %s", g.start)
	for i, r := range g.rules {
		tracer().Debugf("%4d: %v", i, r)
	}
	tracer().Debugf("terminals:    %v", g.terminals)
	tracer().Debugf("nonterminals: %v", g.nonterminals)
	for i, level := range g.levels {
		tracer().Debugf("level %d:      %v", i, level)
	}
	tracer().Debugf("=========================================")
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
