package internal

// uninitialized marks a variable slot that has been declared but never
// assigned a value (`var x;`), distinguishing it from both "absent" and
// "present with a value" — spec.md §3's three-state invariant.
var uninitialized = &struct{}{}

// Environment is a mapping from name to value with an optional parent
// link, grounded on the teacher's env.go chain-lookup shape and extended
// with hop-indexed access (getAt/assignAt) for the Resolver's contract.
type Environment struct {
	enclosing *Environment
	values    map[string]interface{}
}

// NewEnvironment creates a child of enclosing, or a root environment if
// enclosing is nil.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, values: make(map[string]interface{})}
}

// Define binds name in this environment, overwriting any prior binding —
// this is what lets `var a = 1; var a = 2;` work uneventfully at the REPL.
func (e *Environment) Define(name string, value interface{}) {
	e.values[name] = value
}

// DefineUninitialized binds name to the uninitialized sentinel.
func (e *Environment) DefineUninitialized(name string) {
	e.values[name] = uninitialized
}

// Get walks the parent chain looking for name, starting at this
// environment.
func (e *Environment) Get(name Token) interface{} {
	if value, ok := e.values[name.Lexeme]; ok {
		if value == uninitialized {
			panic(&RuntimeError{Token: name, Message: "Variable '" + name.Lexeme + "' is not initialized."})
		}
		return value
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	panic(&RuntimeError{Token: name, Message: "Undefined variable '" + name.Lexeme + "'."})
}

// Assign walks the parent chain looking for an existing binding of name
// to overwrite. Assigning to an undefined variable is a runtime error —
// it never creates one (that's what Define is for).
func (e *Environment) Assign(name Token, value interface{}) {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return
	}
	if e.enclosing != nil {
		e.enclosing.Assign(name, value)
		return
	}
	panic(&RuntimeError{Token: name, Message: "Undefined variable '" + name.Lexeme + "'."})
}

// GetAt reads name after walking exactly hop parent links, with no
// searching — the Resolver has already proven the binding lives there.
func (e *Environment) GetAt(hop int, name Token) interface{} {
	value, ok := e.ancestor(hop).values[name.Lexeme]
	if !ok {
		panic(&RuntimeError{Token: name, Message: "Undefined variable '" + name.Lexeme + "'."})
	}
	if value == uninitialized {
		panic(&RuntimeError{Token: name, Message: "Variable '" + name.Lexeme + "' is not initialized."})
	}
	return value
}

// AssignAt writes name after walking exactly hop parent links.
func (e *Environment) AssignAt(hop int, name Token, value interface{}) {
	e.ancestor(hop).values[name.Lexeme] = value
}

func (e *Environment) ancestor(hop int) *Environment {
	env := e
	for i := 0; i < hop; i++ {
		env = env.enclosing
	}
	return env
}
