/*
Package notation compiles a compact textual rule notation into concrete
grammar rules.

One line of notation describes all right-hand sides a nonterminal accepts,
using a regex-like expression syntax:

	NP -> DET? ADJ* NOUN : 3

Expressions may use alternation '|', grouping with parentheses, the
quantifiers '?', '*' and '+', and bounded repetition '{m,n}'. An optional
trailing ':w' assigns the weight w to every rule the line produces.
Compilation expands the expression into the finite set of concrete symbol
sequences it accepts; unbounded quantifiers are capped at CAP repetitions.
The line above compiles to rules

	NP ➞ [NOUN], NP ➞ [DET NOUN], NP ➞ [ADJ NOUN], NP ➞ [ADJ ADJ NOUN], …

all with weight 3.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package notation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'strata.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("strata.grammar")
}
