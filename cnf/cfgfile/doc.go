/*
Package cfgfile reads grammars from text files in the format used by NLTK for
context-free grammars.

    # ATIS-style grammar in CNF
    %start S
    S   -> NP VP | 'hello'
    NP  -> Det N
    Det -> 'the' | "a"
    N   -> 'flight'
    VP  -> 'departs'

Each line holds one rule with alternatives separated by '|'. Non-terminals are
bare identifiers, terminals are enclosed in single or double quotes. Lines
starting with '#' are comments, a trailing backslash continues a rule on the
next line. If no %start directive is present, the left-hand side of the first
rule is the start symbol.

Rules which are not in Chomsky Normal Form are accepted and kept as irregular
rules of the resulting grammar (see package cnf); they will never take part in
a derivation.

Tokenizing is done with lexmachine (https://github.com/timtadh/lexmachine).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cfgfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocky.cnf'.
func tracer() tracing.Trace {
	return tracing.Select("gocky.cnf")
}
