package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/npillmayer/gocky/cnf"
	"github.com/npillmayer/gocky/cnf/cfgfile"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
)

// traceKeys are the trace keys of all packages of this module.
var traceKeys = []string{"gocky.cli", "gocky.cnf", "gocky.cky", "gocky.corpus"}

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	root := &commander.Command{
		UsageLine: "gocky <command> [options] [arguments]",
		Short:     "CKY parsing with grammars in Chomsky Normal Form",
		Subcommands: []*commander.Command{
			recognizeCmd(),
			parseCmd(),
			countCmd(),
			corpusCmd(),
			replCmd(),
		},
		Flag: *flag.NewFlagSet("gocky", flag.ExitOnError),
	}
	if err := root.Dispatch(os.Args[1:]); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// --- Flags common to all sub-commands --------------------------------------

type commonFlags struct {
	grammar string
	trace   string
}

func (cf *commonFlags) register(cmd *commander.Command) {
	cmd.Flag.StringVar(&cf.grammar, "g", "", "Grammar file (NLTK .cfg format, CNF)")
	cmd.Flag.StringVar(&cf.trace, "trace", "Info", "Trace level [Debug|Info|Error]")
}

// setup sets the trace level and loads the grammar.
func (cf *commonFlags) setup(cmd *commander.Command) (*cnf.Grammar, error) {
	setTraceLevel(cf.trace)
	if cf.grammar == "" {
		cmd.Usage()
		return nil, errors.New("no grammar file given, use -g")
	}
	g, err := loadGrammar(cf.grammar)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func loadGrammar(path string) (*cnf.Grammar, error) {
	level := tracing.Select("gocky.cnf").GetTraceLevel()
	tracing.Select("gocky.cnf").SetTraceLevel(tracing.LevelError)
	g, err := cfgfile.LoadFile(path)
	tracing.Select("gocky.cnf").SetTraceLevel(level)
	if err != nil {
		return nil, err
	}
	g.Dump() // only visible in debug mode
	pterm.Info.Println(fmt.Sprintf("Grammar %s: %d rules, %d non-terminals, %d terminals",
		g.Name, g.Size(), len(g.NonTerminals()), len(g.Terminals())))
	if n := len(g.IrregularRules()); n > 0 {
		pterm.Warning.Println(fmt.Sprintf("%d rules are not in CNF and will be ignored", n))
	}
	tracer().Infof("Grammar fingerprint is %s", g.Fingerprint())
	return g, nil
}

func setTraceLevel(l string) {
	level := traceLevel(l)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Debugf("Trace level is %s", l)
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
