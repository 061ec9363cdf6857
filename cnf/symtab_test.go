package cnf

import (
	"testing"
)

func TestNewSymbol(t *testing.T) {
	symtab := newSymbolTable()
	sym, found := symtab.resolveOrDefine("new-sym")
	if sym == nil || found {
		t.Error("no symbol created for table")
	}
	if sym.ID != 0 {
		t.Errorf("expected first symbol to have ID 0, has %d", sym.ID)
	}
}

func TestTwoSymbolsDistinctID(t *testing.T) {
	symtab := newSymbolTable()
	sym1, _ := symtab.resolveOrDefine("new-sym1")
	sym2, _ := symtab.resolveOrDefine("new-sym2")
	if sym1 == sym2 || sym1.ID == sym2.ID {
		t.Error("2 symbols with equal identity")
	}
	if symtab.size() != 2 {
		t.Errorf("expected 2 symbols in table, have %d", symtab.size())
	}
}

func TestResolveOrDefine(t *testing.T) {
	symtab := newSymbolTable()
	sym, _ := symtab.resolveOrDefine("new-sym")
	if s := symtab.resolve(sym.Name); s != sym {
		t.Error("cannot find stored symbol in table")
	}
	if s, found := symtab.resolveOrDefine(sym.Name); !found || s != sym {
		t.Error("symbol should have been interned")
	}
	if symtab.resolve("other") != nil {
		t.Error("found symbol never defined")
	}
}
