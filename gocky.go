package gocky

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Scanners define their own constants.
type TokType int

// Tokens represent input tokens, usually produced by a scanner.
//
// An example would be a token for a quoted terminal in a grammar file:
//
//    TokType = Terminal    // identifier for this kind of tokens (scanner specific)
//    Lexeme  = "'flight'"  // lexeme how it appeared in the input stream
//    Value   = "flight"    // unquoted value
//    Span    = 67…75       // occured from position 67 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input positions. For chart
// parsing, a span denotes the sentence positions a chart cell or a tree node
// covers: the start position and the position just behind the end.
type Span [2]int // (x…y)

// From returns the start value of a span.
func (s Span) From() int {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() int {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() int {
	return s[1] - s[0]
}

// Split divides a span at position mid into (x…mid) and (mid…y).
// mid has to lie strictly inside the span.
func (s Span) Split(mid int) (Span, Span) {
	if mid <= s[0] || mid >= s[1] {
		panic(fmt.Sprintf("split position %d outside of span %v", mid, s))
	}
	return Span{s[0], mid}, Span{mid, s[1]}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
