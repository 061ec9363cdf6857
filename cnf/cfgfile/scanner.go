package cfgfile

import (
	"fmt"
	"sync"

	"github.com/npillmayer/gocky"
	"github.com/pkg/errors"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types of grammar files.
const (
	EOF gocky.TokType = iota
	Newline
	Ident
	Terminal
	Arrow
	Bar
	Directive
	continuation // backslash-newline, never returned by the scanner
)

var tokenNames = map[gocky.TokType]string{
	EOF:       "end of input",
	Newline:   "end of line",
	Ident:     "non-terminal",
	Terminal:  "terminal",
	Arrow:     "'->'",
	Bar:       "'|'",
	Directive: "directive",
}

// TokenName returns a readable name for a token type.
func TokenName(t gocky.TokType) string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", t)
}

// --- Lexer -----------------------------------------------------------------

var lexer struct {
	once  sync.Once
	lexer *lexmachine.Lexer
	err   error
}

func initLexer(lx *lexmachine.Lexer) {
	lx.Add([]byte(`#[^\n]*`), skip)
	lx.Add([]byte(`\\\r?\n`), makeToken(continuation))
	lx.Add([]byte(`( |\t|\r)+`), skip)
	lx.Add([]byte(`\n`), makeToken(Newline))
	lx.Add([]byte(`\-\>`), makeToken(Arrow))
	lx.Add([]byte(`\|`), makeToken(Bar))
	lx.Add([]byte(`%([a-z]|[A-Z])+`), makeToken(Directive))
	lx.Add([]byte(`'[^'\n]*'`), makeToken(Terminal))
	lx.Add([]byte(`\"[^"\n]*\"`), makeToken(Terminal))
	lx.Add([]byte(`([a-z]|[A-Z]|[0-9]|_|/)([a-z]|[A-Z]|[0-9]|_|/|\^|<|>|\-)*`), makeToken(Ident))
}

// compiledLexer returns the lexer for grammar files, compiling its DFA on
// first use.
func compiledLexer() (*lexmachine.Lexer, error) {
	lexer.once.Do(func() {
		lx := lexmachine.NewLexer()
		initLexer(lx)
		if err := lx.Compile(); err != nil {
			tracer().Errorf("Error compiling DFA: %v", err)
			lexer.err = errors.Wrap(err, "compiling grammar file lexer")
			return
		}
		lexer.lexer = lx
	})
	return lexer.lexer, lexer.err
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(typ gocky.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

// --- Tokens ----------------------------------------------------------------

// token is a token of a grammar file. It implements gocky.Token.
type token struct {
	typ    gocky.TokType
	lexeme string
	value  string
	line   int
	span   gocky.Span
}

var _ gocky.Token = (*token)(nil)

func (t *token) TokType() gocky.TokType { return t.typ }
func (t *token) Lexeme() string         { return t.lexeme }
func (t *token) Value() interface{}     { return t.value }
func (t *token) Span() gocky.Span       { return t.span }

func (t *token) String() string {
	if t.typ == EOF || t.typ == Newline {
		return TokenName(t.typ)
	}
	return fmt.Sprintf("%s %s", TokenName(t.typ), t.lexeme)
}

// --- Scanner ---------------------------------------------------------------

// scanner produces the tokens of a single grammar file.
type scanner struct {
	s    *lexmachine.Scanner
	line int // line of the most recent token
}

func newScanner(input []byte) (*scanner, error) {
	lx, err := compiledLexer()
	if err != nil {
		return nil, err
	}
	s, err := lx.Scanner(input)
	if err != nil {
		return nil, errors.Wrap(err, "creating grammar file scanner")
	}
	return &scanner{s: s, line: 1}, nil
}

// next returns the next token. At the end of input it returns an EOF token.
// Input which cannot be tokenized is an error.
func (sc *scanner) next() (*token, error) {
	for {
		tok, err, eof := sc.s.Next()
		if err != nil {
			if _, is := err.(*machines.UnconsumedInput); is {
				return nil, errors.Errorf("line %d: illegal character sequence (%v)", sc.line, err)
			}
			return nil, errors.Wrapf(err, "line %d", sc.line)
		}
		if eof {
			return &token{typ: EOF, line: sc.line}, nil
		}
		lmtok := tok.(*lexmachine.Token)
		t := &token{
			typ:    gocky.TokType(lmtok.Type),
			lexeme: string(lmtok.Lexeme),
			line:   sc.line,
			span:   gocky.Span{lmtok.TC, lmtok.TC + len(lmtok.Lexeme)},
		}
		switch t.typ {
		case continuation:
			sc.line++
			continue
		case Newline:
			sc.line++
		case Terminal:
			t.value = t.lexeme[1 : len(t.lexeme)-1]
		case Directive:
			t.value = t.lexeme[1:]
		default:
			t.value = t.lexeme
		}
		tracer().Debugf("token %s at line %d", t, t.line)
		return t, nil
	}
}
