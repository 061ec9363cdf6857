package cnf

// --- Symbols ---------------------------------------------------------------

// Symbol is a non-terminal of a grammar. Symbols are interned per grammar:
// there is exactly one *Symbol for every name, thus pointer equality is
// symbol equality. Terminals are plain token strings and do not get symbols.
type Symbol struct {
	Name string
	ID   int // dense serial number, unique within a grammar
}

// String is a debug Stringer for symbols.
func (A *Symbol) String() string {
	if A == nil {
		return "<nil>"
	}
	return A.Name
}

// === Symbol Tables =========================================================

// symbolTable stores the non-terminals of a grammar (map-like semantics),
// handing out serial IDs in order of definition.
type symbolTable struct {
	table   map[string]*Symbol
	symbols []*Symbol
}

func newSymbolTable() *symbolTable {
	return &symbolTable{
		table:   make(map[string]*Symbol),
		symbols: make([]*Symbol, 0, 32),
	}
}

// resolve checks for a symbol in the table. Returns a symbol or nil.
func (t *symbolTable) resolve(name string) *Symbol {
	return t.table[name]
}

// resolveOrDefine finds a symbol in the table, inserting a new one if not found.
// Returns the symbol and a flag, signalling wether the symbol has already been present.
func (t *symbolTable) resolveOrDefine(name string) (*Symbol, bool) {
	if len(name) == 0 {
		panic("cannot define a non-terminal without a name")
	}
	if A := t.resolve(name); A != nil {
		return A, true
	}
	A := &Symbol{Name: name, ID: len(t.symbols)}
	t.table[name] = A
	t.symbols = append(t.symbols, A)
	return A, false
}

// size counts the symbols in a symbol table.
func (t *symbolTable) size() int {
	return len(t.symbols)
}

// each iterates over each symbol in order of definition.
func (t *symbolTable) each(mapper func(*Symbol)) {
	for _, A := range t.symbols {
		mapper(A)
	}
}
