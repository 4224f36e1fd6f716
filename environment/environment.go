// Package environment holds the global namespace half of spec.md §4.4's
// environment model. The local half — fixed-size, parent-linked frames —
// lives in value.Frame: Function.Closure needs that type, and Go forbids
// the import cycle a separate environment.Frame referencing value.Value
// would create.
package environment

import "github.com/loxlang/loxcore/value"

// UndefinedVariable is returned by Assign/Get when name has no global
// binding (spec.md §4.4, §7).
type UndefinedVariable struct {
	Name string
}

func (e *UndefinedVariable) Error() string {
	return "undefined variable '" + e.Name + "'"
}

// Global is the `name -> value` mapping every top-level declaration and
// unresolved local reference ultimately reads or writes.
type Global struct {
	vars map[string]value.Value
}

// NewGlobal returns an empty global namespace.
func NewGlobal() *Global {
	return &Global{vars: make(map[string]value.Value)}
}

// Define inserts or overwrites name unconditionally.
func (g *Global) Define(name string, v value.Value) {
	g.vars[name] = v
}

// Assign updates an existing binding, failing if name is undefined.
func (g *Global) Assign(name string, v value.Value) error {
	if _, ok := g.vars[name]; !ok {
		return &UndefinedVariable{Name: name}
	}
	g.vars[name] = v
	return nil
}

// Get reads name, failing if it is undefined.
func (g *Global) Get(name string) (value.Value, error) {
	v, ok := g.vars[name]
	if !ok {
		return nil, &UndefinedVariable{Name: name}
	}
	return v, nil
}
