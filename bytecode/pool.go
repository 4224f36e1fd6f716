package bytecode

import "github.com/josharian/intern"

// Symbol is an index into a StringPool, the wire-format stand-in for a
// string constant (spec.md's opcode module is the one place interning is
// in scope).
type Symbol uint32

// StringPool assigns each distinct string a stable, insertion-order
// Symbol. Stored strings are canonicalized through intern.String so
// repeated constants across a compiled unit share one backing array.
type StringPool struct {
	index   map[string]Symbol
	strings []string
}

// NewStringPool returns an empty pool.
func NewStringPool() *StringPool {
	return &StringPool{index: make(map[string]Symbol)}
}

// Intern returns s's Symbol, assigning the next index the first time s
// is seen.
func (p *StringPool) Intern(s string) Symbol {
	if sym, ok := p.index[s]; ok {
		return sym
	}
	canonical := intern.String(s)
	sym := Symbol(len(p.strings))
	p.strings = append(p.strings, canonical)
	p.index[canonical] = sym
	return sym
}

// Lookup returns the string a Symbol was assigned, if any.
func (p *StringPool) Lookup(sym Symbol) (string, bool) {
	if int(sym) >= len(p.strings) {
		return "", false
	}
	return p.strings[int(sym)], true
}
