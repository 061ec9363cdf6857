/*
Package corpus reads test sentences and runs them against a grammar in bulk.

Test sentences use the format of NLTK's test-sentence files. Each line holds
one sentence, tokens separated by white space, optionally prefixed by a label
and a colon:

    # comments start with '#', '%' or ';'
    2:show the flight from boston to denver
    true:i need a flight
    list all flights

A numeric label is the expected number of derivations, a label of true or
false states whether the sentence is expected to be grammatical.

Run processes samples concurrently with a pool of workers, all sharing one
read-only grammar. Results are reported in input order.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package corpus

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocky.corpus'.
func tracer() tracing.Trace {
	return tracing.Select("gocky.corpus")
}
