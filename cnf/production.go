package cnf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Production is a closed variant type for grammar rules. Its only
// implementations are *TerminalRule and *BinaryRule, which are the CNF shapes
// parsers work with, and *IrregularRule, which parsers never see.
type Production interface {
	LHS() *Symbol
	Serial() int // position of the rule within its grammar
	String() string
	isProduction()
}

// TerminalRule is a production A → 'token'.
type TerminalRule struct {
	lhs    *Symbol
	Token  string
	serial int
}

// LHS returns the left-hand side non-terminal.
func (r *TerminalRule) LHS() *Symbol { return r.lhs }

// Serial is part of interface Production.
func (r *TerminalRule) Serial() int { return r.serial }

func (r *TerminalRule) String() string {
	return fmt.Sprintf("%d: [%s] ::= [%s]", r.serial, r.lhs, quote(r.Token))
}

func (r *TerminalRule) isProduction() {}

// BinaryRule is a production A → B C.
type BinaryRule struct {
	lhs         *Symbol
	Left, Right *Symbol
	serial      int
}

// LHS returns the left-hand side non-terminal.
func (r *BinaryRule) LHS() *Symbol { return r.lhs }

// Serial is part of interface Production.
func (r *BinaryRule) Serial() int { return r.serial }

func (r *BinaryRule) String() string {
	return fmt.Sprintf("%d: [%s] ::= [%s %s]", r.serial, r.lhs, r.Left, r.Right)
}

func (r *BinaryRule) isProduction() {}

// IrregularRule is a production not in CNF, e.g. an epsilon-production or
// a chain A → B. It is part of the grammar but unreachable for parsers.
type IrregularRule struct {
	lhs    *Symbol
	rhs    []rhsItem
	serial int
}

// LHS returns the left-hand side non-terminal.
func (r *IrregularRule) LHS() *Symbol { return r.lhs }

// Serial is part of interface Production.
func (r *IrregularRule) Serial() int { return r.serial }

func (r *IrregularRule) String() string {
	var b bytes.Buffer
	for i, item := range r.rhs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(item.String())
	}
	return fmt.Sprintf("%d: [%s] ::= [%s]", r.serial, r.lhs, b.String())
}

func (r *IrregularRule) isProduction() {}

var _ Production = (*TerminalRule)(nil)
var _ Production = (*BinaryRule)(nil)
var _ Production = (*IrregularRule)(nil)

// --- Right-hand-side items -------------------------------------------------

// rhsItem is a right-hand-side element as collected by a rule builder.
type rhsItem struct {
	name     string
	terminal bool
}

func (item rhsItem) String() string {
	if item.terminal {
		return quote(item.name)
	}
	return item.name
}

func quote(token string) string {
	if strconv.CanBackquote(token) && !strings.ContainsRune(token, '\'') {
		return "'" + token + "'"
	}
	return strconv.Quote(token)
}
