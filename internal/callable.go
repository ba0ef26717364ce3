package internal

// Callable is anything that can appear on the left of a CallExpr: a
// native function, a user-defined Function, or a Class (calling a class
// constructs an Instance).
type Callable interface {
	Arity() int
	Call(interp *Interpreter, arguments []interface{}) interface{}
	String() string
}

// NativeFunction wraps a Go closure as a Lox callable, grounded on the
// teacher's nativeFn (internal/function.go): a small struct holding the
// arity and the closure, rather than a bare func value, so it can satisfy
// Callable and carry a String() for stringify/error messages.
type NativeFunction struct {
	name  string
	arity int
	fn    func(interp *Interpreter, arguments []interface{}) interface{}
}

// NewNativeFunction builds a NativeFunction.
func NewNativeFunction(name string, arity int, fn func(interp *Interpreter, arguments []interface{}) interface{}) *NativeFunction {
	return &NativeFunction{name: name, arity: arity, fn: fn}
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) Call(interp *Interpreter, arguments []interface{}) interface{} {
	return n.fn(interp, arguments)
}

func (n *NativeFunction) String() string {
	return "<native fn " + n.name + ">"
}
