package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/npillmayer/gocky/cky"
	"github.com/npillmayer/gocky/cnf"
	"github.com/pterm/pterm"
)

func replCmd() *commander.Command {
	var cf commonFlags
	var budget int
	cmd := &commander.Command{
		UsageLine: "repl -g <grammar>",
		Short:     "interactively recognizes, counts and parses sentences",
		Long: `
interactively recognizes, counts and parses sentences; each input line is
split into tokens at white space

	$ gocky repl -g atis.cfg

Quit with <ctrl>D.

`,
		Flag: *flag.NewFlagSet("repl", flag.ExitOnError),
	}
	cf.register(cmd)
	cmd.Flag.IntVar(&budget, "budget", 100000, "Max. number of tree nodes per sentence; 0 = unlimited")
	cmd.Run = func(cmd *commander.Command, args []string) error {
		g, err := cf.setup(cmd)
		if err != nil {
			return err
		}
		repl, err := readline.New("gocky> ")
		if err != nil {
			return err
		}
		defer repl.Close()
		intp := &Intp{
			g:      g,
			repl:   repl,
			budget: budget,
		}
		pterm.Info.Println("Welcome to gocky") // colored welcome message
		tracer().Infof("Quit with <ctrl>D")   // inform user how to stop the CLI
		intp.REPL()
		return nil
	}
	return cmd
}

// Intp is our interpreter object
type Intp struct {
	g      *cnf.Grammar
	repl   *readline.Instance
	budget int
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		intp.Eval(strings.Fields(line))
	}
	println("Good bye!")
}

// Eval answers a sentence in all three modes.
func (intp *Intp) Eval(sentence []string) {
	if !cky.Recognize(intp.g, sentence) {
		pterm.Info.Println(fmt.Sprintf("%v is not in the language of %s", sentence, intp.g.Name))
		chart := cky.Fill(intp.g, sentence)
		for i := range sentence {
			if len(chart.Symbols(i, i+1)) == 0 {
				pterm.Error.Println(fmt.Sprintf("no rule for token %q", sentence[i]))
			}
		}
		return
	}
	count := cky.Count(intp.g, sentence)
	pterm.Success.Println(fmt.Sprintf("%v is in the language of %s, %s derivation(s)",
		sentence, intp.g.Name, count))
	trees, err := cky.Parse(intp.g, sentence, cky.WithBudget(intp.budget))
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	printTrees(trees, trees.Size() <= 4)
}
