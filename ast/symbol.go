package ast

// Symbol is the canonical name of an identifier. Two symbols are equal if
// their names are equal.
type Symbol string

// Name returns the text of the symbol
func (s Symbol) Name() string {
	return string(s)
}

func (s Symbol) String() string {
	return string(s)
}

// SymbolTable interns identifier text so every occurrence of a name shares
// one canonical Symbol.
type SymbolTable struct {
	n map[string]Symbol
}

// NewSymbolTable creates an empty table
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		n: make(map[string]Symbol),
	}
}

// Intern returns the canonical symbol for name, adding it to the table if
// it was not seen before.
func (st *SymbolTable) Intern(name string) Symbol {
	if sym, ok := st.n[name]; ok {
		return sym
	}
	sym := Symbol(name)
	st.n[name] = sym
	return sym
}

// Lookup returns the canonical symbol for name, if any.
func (st *SymbolTable) Lookup(name string) (Symbol, bool) {
	sym, ok := st.n[name]
	return sym, ok
}

// Len returns the number of distinct symbols in the table
func (st *SymbolTable) Len() int {
	return len(st.n)
}
