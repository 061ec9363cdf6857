/*
Command gocky is a command line tool for CKY parsing of sentences with grammars
in Chomsky Normal Form. Grammars are read from NLTK-style .cfg files.

    gocky recognize -g atis.cfg show me the flights .
    gocky parse     -g atis.cfg [-budget N] [-show] show me the flights .
    gocky count     -g atis.cfg show me the flights .
    gocky corpus    -g atis.cfg -s sentences.txt [-workers N] [-parse] [-min 2 -max 4]
    gocky repl      -g atis.cfg

Every sub-command accepts -trace [Debug|Info|Error] to set the trace level.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gocky.cli'
func tracer() tracing.Trace {
	return tracing.Select("gocky.cli")
}
