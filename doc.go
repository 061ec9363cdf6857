/*
Package gocky is a chart parsing toolbox for context-free grammars in
Chomsky Normal Form.

It focusses on the CKY algorithm and on ambiguous grammars: a sentence may be
recognized, all of its distinct derivation trees may be enumerated, or the
derivations may just be counted, all from the same dynamic programming chart.
Package structure is as follows:

■ cnf: Package cnf holds grammars in Chomsky Normal Form, a grammar builder and
the read-only grammar view the parsers work on.

■ cnf/cfgfile: Package cfgfile loads grammars from NLTK-style text files.

■ cky: Package cky implements the chart parser in its three query modes.

■ corpus: Package corpus reads test sentences and runs them concurrently
against a grammar.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gocky
