package cfgfile

import (
	"strings"
	"testing"

	"github.com/npillmayer/gocky/cky"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var scannerInputs = []string{
	"S -> NP VP",
	"NP -> 'a' | \"b c\"",
	"# comment only",
	"%start S\nA -> B C",
	"X -> Y \\\n   Z",
	"NP_NNP/x -> A^1 B<C>",
}

var scannerTokenCounts = []int{4, 5, 0, 7, 4, 4}

func TestScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocky.cnf")
	defer teardown()
	//
	for i, input := range scannerInputs {
		t.Logf("------+-----------------+--------")
		sc, err := newScanner([]byte(input))
		if err != nil {
			t.Fatal(err)
		}
		count := 0
		tok, err := sc.next()
		for err == nil && tok.TokType() != EOF {
			t.Logf(" %4d | %15s | @%5d", tok.TokType(), tok.Lexeme(), tok.Span().From())
			count++
			tok, err = sc.next()
		}
		if err != nil {
			t.Errorf("input #%d: %v", i, err)
		}
		if count != scannerTokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, scannerTokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestScannerValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocky.cnf")
	defer teardown()
	//
	sc, _ := newScanner([]byte(`%start S` + "\n" + `A -> 'x y' "z"`))
	expected := []struct {
		typ   string
		value string
		line  int
	}{
		{TokenName(Directive), "start", 1},
		{TokenName(Ident), "S", 1},
		{TokenName(Newline), "", 1},
		{TokenName(Ident), "A", 2},
		{TokenName(Arrow), "->", 2},
		{TokenName(Terminal), "x y", 2},
		{TokenName(Terminal), "z", 2},
		{TokenName(EOF), "", 2},
	}
	for i, exp := range expected {
		tok, err := sc.next()
		if err != nil {
			t.Fatal(err)
		}
		if TokenName(tok.TokType()) != exp.typ || tok.Value().(string) != exp.value || tok.line != exp.line {
			t.Errorf("token #%d: expected %s %q at line %d, have %s %q at line %d", i,
				exp.typ, exp.value, exp.line, TokenName(tok.TokType()), tok.Value(), tok.line)
		}
	}
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocky.cnf")
	defer teardown()
	//
	input := `
# a comment
S -> NP VP
NP -> 'a' | "the"
VP -> 'b'
`
	g, err := Load("G", strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.Name != "G" || g.Start().Name != "S" {
		t.Errorf("expected grammar G with start symbol S, is %s with %v", g.Name, g.Start())
	}
	if g.Size() != 4 {
		t.Errorf("expected 4 rules, have %d", g.Size())
	}
	if len(g.TerminalRules("the")) != 1 {
		t.Errorf("expected double-quoted terminal 'the'")
	}
	if !cky.Recognize(g, []string{"the", "b"}) {
		t.Errorf("expected 'the b' to be recognized")
	}
}

func TestLoadStartAndEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocky.cnf")
	defer teardown()
	//
	input := "A -> 'a'\n%start S\nS -> A A |\n"
	g, err := Load("G", strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if g.Start().Name != "S" {
		t.Errorf("expected start symbol S, is %v", g.Start())
	}
	if len(g.IrregularRules()) != 1 {
		t.Errorf("expected empty alternative to be an irregular rule, have %v", g.IrregularRules())
	}
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocky.cnf")
	defer teardown()
	//
	inputs := []struct {
		input string
		line  string
	}{
		{"S -> A B\nA 'a'\n", "line 2"},
		{"S -> A B\n\n-> 'a'\n", "line 3"},
		{"%include other.cfg\n", "line 1"},
		{"S -> A B\nA -> 'a\n", "line 2"},
		{"%start\n", "line 1"},
		{"S -> A = B\n", "line 1"},
	}
	for i, in := range inputs {
		_, err := Load("G", strings.NewReader(in.input))
		if err == nil {
			t.Errorf("input #%d: expected an error", i)
			continue
		}
		t.Logf("input #%d: %v", i, err)
		if !strings.Contains(err.Error(), in.line) {
			t.Errorf("input #%d: expected error to mention %q, is %v", i, in.line, err)
		}
	}
	if _, err := Load("empty", strings.NewReader("# nothing\n")); err == nil {
		t.Errorf("expected grammar without rules to be an error")
	}
}

func TestLoadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gocky.cnf")
	defer teardown()
	//
	g, err := LoadFile("testdata/flights.cfg")
	if err != nil {
		t.Fatal(err)
	}
	if g.Name != "flights" || g.Start().Name != "SIGMA" {
		t.Errorf("expected grammar flights with start SIGMA, is %s with %v", g.Name, g.Start())
	}
	if g.Size() != 25 {
		t.Errorf("expected 25 rules, have %d", g.Size())
	}
	if len(g.BinaryRules()) != 7 {
		t.Errorf("expected 7 binary rules, have %d", len(g.BinaryRules()))
	}
	if len(g.IrregularRules()) != 0 {
		t.Errorf("expected grammar to be in CNF, have %v", g.IrregularRules())
	}
	sentence := strings.Fields("show the flight from boston to denver")
	if c := cky.Count(g, sentence); c.Int64() != 2 {
		t.Errorf("expected 2 derivations, have %s", c)
	}
	if _, err = LoadFile("testdata/missing.cfg"); err == nil {
		t.Errorf("expected missing file to be an error")
	}
}
