package cfgfile

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/gocky/cnf"
	"github.com/pkg/errors"
)

// Load reads a grammar from r and returns it under the given name.
// Errors include the line number of the offending input.
func Load(name string, r io.Reader) (*cnf.Grammar, error) {
	input, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading grammar %s", name)
	}
	sc, err := newScanner(input)
	if err != nil {
		return nil, err
	}
	l := &loader{sc: sc, b: cnf.NewGrammarBuilder(name)}
	if err = l.parse(); err != nil {
		tracer().Errorf("grammar %s: %v", name, err)
		return nil, errors.Wrapf(err, "grammar %s", name)
	}
	tracer().Infof("grammar %s: %d rule alternatives read", name, l.alternatives)
	return l.b.Grammar()
}

// LoadFile reads a grammar from a file. The grammar is named after the file,
// without directory and extension.
func LoadFile(path string) (*cnf.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening grammar file")
	}
	defer f.Close()
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return Load(name, f)
}

// --- Recursive descent -----------------------------------------------------

//     file      ::= { line }
//     line      ::= [ rule | directive ] NEWLINE
//     directive ::= '%start' IDENT
//     rule      ::= IDENT '->' alt { '|' alt }
//     alt       ::= { IDENT | TERMINAL }
type loader struct {
	sc           *scanner
	b            *cnf.GrammarBuilder
	tok          *token // lookahead
	alternatives int
}

func (l *loader) advance() error {
	tok, err := l.sc.next()
	if err != nil {
		return err
	}
	l.tok = tok
	return nil
}

func (l *loader) unexpected(expected string) error {
	return errors.Errorf("line %d: expected %s, found %s", l.tok.line, expected, l.tok)
}

func (l *loader) parse() error {
	if err := l.advance(); err != nil {
		return err
	}
	for l.tok.typ != EOF {
		var err error
		switch l.tok.typ {
		case Newline:
			err = l.advance()
		case Directive:
			err = l.directive()
		case Ident:
			err = l.rule()
		default:
			err = l.unexpected("rule or directive")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (l *loader) directive() error {
	if l.tok.value != "start" {
		return errors.Errorf("line %d: unknown directive %s", l.tok.line, l.tok.lexeme)
	}
	if err := l.advance(); err != nil {
		return err
	}
	if l.tok.typ != Ident {
		return l.unexpected("start symbol")
	}
	l.b.Start(l.tok.value)
	if err := l.advance(); err != nil {
		return err
	}
	if l.tok.typ != Newline && l.tok.typ != EOF {
		return l.unexpected(TokenName(Newline))
	}
	return nil
}

// rule reads a rule up to, but not including, the end of the line.
func (l *loader) rule() error {
	lhs := l.tok.value
	if err := l.advance(); err != nil {
		return err
	}
	if l.tok.typ != Arrow {
		return l.unexpected(TokenName(Arrow))
	}
	rb := l.b.LHS(lhs)
	for {
		if err := l.advance(); err != nil {
			return err
		}
		switch l.tok.typ {
		case Ident:
			rb.N(l.tok.value)
		case Terminal:
			rb.T(l.tok.value)
		case Bar:
			rb.End()
			l.alternatives++
			rb = l.b.LHS(lhs)
		case Newline, EOF:
			rb.End()
			l.alternatives++
			return nil
		default:
			return l.unexpected("symbol, '|' or end of line")
		}
	}
}
