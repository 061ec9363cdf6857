/*
Package cnf holds context-free grammars in Chomsky Normal Form (CNF).

A CNF production rewrites a non-terminal either to a single terminal token or
to exactly two non-terminals. Parsers of package cky only ever see a grammar
through the read-only View interface.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminal tokens.

Example:

    b := cnf.NewGrammarBuilder("G")
    b.LHS("S").N("NP").N("VP").End()    // S   ->  NP VP
    b.LHS("NP").T("a").End()            // NP  ->  'a'
    b.LHS("VP").T("b").End()            // VP  ->  'b'
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: [S] ::= [NP VP]
   1: [NP] ::= ['a']
   2: [VP] ::= ['b']

The start symbol is the left-hand side of the first rule, unless set explicitly
with b.Start(…).

Productions of any other shape (epsilon productions, unary chains A → B,
three or more right-hand-side symbols, mixed terminals and non-terminals) may
be added, too. They are kept as IrregularRule for dumping and diagnostics,
but are never offered to a parser. This is a scope limitation, not an error.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cnf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocky.cnf'.
func tracer() tracing.Trace {
	return tracing.Select("gocky.cnf")
}
