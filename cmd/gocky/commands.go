package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/npillmayer/gocky/cky"
	"github.com/npillmayer/gocky/cnf"
	"github.com/npillmayer/gocky/corpus"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
)

func sentenceArgs(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, errors.New("no sentence given")
	}
	return args, nil
}

// --- recognize -------------------------------------------------------------

func recognizeCmd() *commander.Command {
	var cf commonFlags
	cmd := &commander.Command{
		UsageLine: "recognize -g <grammar> <token>...",
		Short:     "checks whether a sentence is in the language of a grammar",
		Long: `
checks whether a sentence is in the language of a grammar

	$ gocky recognize -g atis.cfg show me the flights .

`,
		Flag: *flag.NewFlagSet("recognize", flag.ExitOnError),
	}
	cf.register(cmd)
	cmd.Run = func(cmd *commander.Command, args []string) error {
		g, err := cf.setup(cmd)
		if err != nil {
			return err
		}
		sentence, err := sentenceArgs(args)
		if err != nil {
			return err
		}
		if cky.Recognize(g, sentence) {
			pterm.Success.Println(fmt.Sprintf("%v is in the language of %s", sentence, g.Name))
		} else {
			pterm.Info.Println(fmt.Sprintf("%v is not in the language of %s", sentence, g.Name))
		}
		return nil
	}
	return cmd
}

// --- parse -----------------------------------------------------------------

func parseCmd() *commander.Command {
	var cf commonFlags
	var budget int
	var show bool
	cmd := &commander.Command{
		UsageLine: "parse -g <grammar> [-budget N] [-show] <token>...",
		Short:     "prints all derivation trees of a sentence",
		Long: `
prints all derivation trees of a sentence

	$ gocky parse -g atis.cfg -show show me the flights .

`,
		Flag: *flag.NewFlagSet("parse", flag.ExitOnError),
	}
	cf.register(cmd)
	cmd.Flag.IntVar(&budget, "budget", 0, "Max. number of tree nodes to construct; 0 = unlimited")
	cmd.Flag.BoolVar(&show, "show", false, "Render trees instead of printing them bracketed")
	cmd.Run = func(cmd *commander.Command, args []string) error {
		g, err := cf.setup(cmd)
		if err != nil {
			return err
		}
		sentence, err := sentenceArgs(args)
		if err != nil {
			return err
		}
		var opts []cky.Option
		if budget > 0 {
			opts = append(opts, cky.WithBudget(budget))
		}
		trees, err := cky.Parse(g, sentence, opts...)
		if err != nil {
			return err
		}
		printTrees(trees, show)
		return nil
	}
	return cmd
}

// --- count -----------------------------------------------------------------

func countCmd() *commander.Command {
	var cf commonFlags
	cmd := &commander.Command{
		UsageLine: "count -g <grammar> <token>...",
		Short:     "counts the derivations of a sentence without constructing trees",
		Long: `
counts the derivations of a sentence without constructing trees

	$ gocky count -g atis.cfg show me the flights .

`,
		Flag: *flag.NewFlagSet("count", flag.ExitOnError),
	}
	cf.register(cmd)
	cmd.Run = func(cmd *commander.Command, args []string) error {
		g, err := cf.setup(cmd)
		if err != nil {
			return err
		}
		sentence, err := sentenceArgs(args)
		if err != nil {
			return err
		}
		start := time.Now()
		n := cky.Count(g, sentence)
		pterm.Info.Println(fmt.Sprintf("%s derivation(s), counted in %v", n, time.Since(start)))
		return nil
	}
	return cmd
}

// --- corpus ----------------------------------------------------------------

func corpusCmd() *commander.Command {
	var cf commonFlags
	var sentences string
	var workers, budget int
	var parse bool
	var min, max int
	cmd := &commander.Command{
		UsageLine: "corpus -g <grammar> -s <sentences> [options]",
		Short:     "runs a file of test sentences against a grammar",
		Long: `
runs a file of test sentences against a grammar and reports the number of
derivations found for each sentence, together with its label

	$ gocky corpus -g atis.cfg -s atis_sentences.txt -parse -min 2 -max 4

With -parse, one tree is shown for each sentence with a number of trees
within [min, max].

`,
		Flag: *flag.NewFlagSet("corpus", flag.ExitOnError),
	}
	cf.register(cmd)
	cmd.Flag.StringVar(&sentences, "s", "", "Test sentence file (NLTK format)")
	cmd.Flag.IntVar(&workers, "workers", 0, "Number of concurrent workers; 0 = one per CPU")
	cmd.Flag.BoolVar(&parse, "parse", false, "Construct trees instead of counting derivations")
	cmd.Flag.IntVar(&budget, "budget", 0, "Max. number of tree nodes per sentence; 0 = unlimited")
	cmd.Flag.IntVar(&min, "min", 2, "Show a tree for sentences with at least min trees")
	cmd.Flag.IntVar(&max, "max", 4, "Show a tree for sentences with at most max trees")
	cmd.Run = func(cmd *commander.Command, args []string) error {
		g, err := cf.setup(cmd)
		if err != nil {
			return err
		}
		if sentences == "" {
			cmd.Usage()
			return errors.New("no sentence file given, use -s")
		}
		samples, err := corpus.ReadFile(sentences)
		if err != nil {
			return err
		}
		mode := corpus.CountMode
		var opts []cky.Option
		if parse {
			mode = corpus.ParseMode
			if budget > 0 {
				opts = append(opts, cky.WithBudget(budget))
			}
		}
		report, err := corpus.Run(context.Background(), g, samples, workers, mode, opts...)
		if err != nil {
			return err
		}
		printReport(report)
		if parse {
			showSelected(g, report, int64(min), int64(max))
		}
		return nil
	}
	return cmd
}

func printReport(report *corpus.Report) {
	data := pterm.TableData{{"ID", "Predicted", "Labeled", "Time"}}
	for _, r := range report.Results {
		var predicted string
		switch {
		case r.Err != nil:
			predicted = "error"
		case r.Count != nil:
			predicted = r.Count.String()
		default:
			predicted = strconv.FormatBool(r.Accepted)
		}
		if !r.Matches() {
			predicted = pterm.Red(predicted)
		}
		data = append(data, []string{
			strconv.Itoa(r.Index),
			predicted,
			label(r.Sample),
			r.Elapsed.Round(time.Microsecond).String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Info.Println(fmt.Sprintf("Execution time: %.4f seconds", report.Total.Seconds()))
	if n := report.Mismatches(); n > 0 {
		pterm.Warning.Println(fmt.Sprintf("%d of %d sentences do not match their label", n, len(report.Results)))
	}
}

func label(s corpus.Sample) string {
	switch s.Label {
	case corpus.CountLabel:
		return strconv.Itoa(s.Expected)
	case corpus.BoolLabel:
		return strconv.FormatBool(s.Grammatical)
	}
	return ""
}

// showSelected renders the first tree of each sentence with a number of trees
// in [min, max].
func showSelected(g cnf.View, report *corpus.Report, min, max int64) {
	for _, r := range report.Results {
		if r.Trees.Empty() {
			continue
		}
		if _, ok := cky.Ambiguity(g, r.Sample.Tokens, min, max); !ok {
			continue
		}
		pterm.Println()
		pterm.Info.Println(fmt.Sprintf("#%d: %s (%d trees)", r.Index,
			strings.Join(r.Sample.Tokens, " "), r.Trees.Size()))
		showTree(r.Trees.Trees()[0])
	}
}
