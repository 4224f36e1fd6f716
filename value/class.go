package value

// Class carries a name, an optional superclass, and its own method
// table. Methods close over whatever synthetic `super`/`this` frames the
// resolver installed; per-instance `this` binding happens in Bind when a
// method is looked up (spec.md §4.5).
type Class struct {
	Name    string
	Super   *Class
	Methods map[string]*Function
}

func (*Class) Type() string { return "class" }
func (*Class) valueNode()   {}

func (c *Class) String() string { return "<class " + c.Name + ">" }

// GetMethod searches c's own method table, then its superclass chain.
func (c *Class) GetMethod(name string) (*Function, bool) {
	if fn, ok := c.Methods[name]; ok {
		return fn, true
	}
	if c.Super != nil {
		return c.Super.GetMethod(name)
	}
	return nil, false
}

// Arity is the arity of the class's init method, or 0 if it has none.
func (c *Class) Arity() int {
	if init, ok := c.GetMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Instance is a Lox object: a reference to its class plus a mutable
// field map. Field reads fall back to the class's method table; field
// writes always land in the instance's own map (spec.md §4.5).
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

// NewInstance allocates an instance of class with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value)}
}

func (*Instance) Type() string { return "instance" }
func (*Instance) valueNode()   {}

func (i *Instance) String() string { return i.Class.Name + " instance" }

// Get reads a field, falling back to a class method bound to this
// instance. The bool result reports whether either was found.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if method, ok := i.Class.GetMethod(name); ok {
		return method.Bind(i), true
	}
	return nil, false
}

// Set writes a field directly onto the instance.
func (i *Instance) Set(name string, v Value) {
	i.Fields[name] = v
}
