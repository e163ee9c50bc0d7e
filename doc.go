/*
Package strata merges overlapping span-annotation layers into parse trees.

Several independently produced annotation layers over one document, each a
list of (start,end) spans carrying the layer's label, are combined into a
single hierarchical parse tree, guided by a weighted context-free-like
grammar whose terminals are the layer labels. Package structure is as
follows:

■ grammar: Package grammar holds concrete rules and grammars, and computes
terminal/nonterminal alphabets and the order in which nonterminals have to
be applied. Sub-package notation compiles the textual rule notation into
concrete rules.

■ intervals: Package intervals builds the interval graph for a document:
a DAG over span-nodes encoding which spans may immediately follow which,
transitively reduced and with gap-filler nodes inserted.

■ chart: Package chart applies grammar rules bottom-up over an interval
graph, collecting candidate derivations for synthesized nonterminal nodes.

■ tree: Package tree selects one parse tree from the candidate derivations.

■ document: Package document models the per-layer span input and provides
loaders for it.

■ render: Package render turns parse trees into marked-up XML/HTML.

The base package contains data types which are used throughout all the other
packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package strata
