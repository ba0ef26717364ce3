package internal

// thisToken is used to look up the "this" binding captured at hop 0 of a
// method's closure — it never comes from the scanner, only Lexeme is
// read by Environment.GetAt.
var thisToken = Token{Lexeme: "this"}

// Function is a user-defined function or method together with the
// environment in effect at its declaration (its closure), grounded on
// the teacher's function/grotskyFunction.call shape: a fresh environment
// per call, a deferred recover translating a returnSignal panic into the
// call's result.
type Function struct {
	declaration   *FunctionStmt
	closure       *Environment
	isInitializer bool
}

// NewFunction builds a Function. isInitializer is set iff declaration is
// a class's "init" method.
func NewFunction(declaration *FunctionStmt, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

func (f *Function) Call(interp *Interpreter, arguments []interface{}) (result interface{}) {
	env := NewEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, arguments[i])
	}

	defer func() {
		if r := recover(); r != nil {
			ret, isReturn := r.(returnSignal)
			if !isReturn {
				panic(r)
			}
			if f.isInitializer {
				result = f.closure.GetAt(0, thisToken)
				return
			}
			result = ret.value
		}
	}()

	interp.executeBlock(f.declaration.Body, env)

	// Fell off the end of the body with no explicit return.
	if f.isInitializer {
		return f.closure.GetAt(0, thisToken)
	}
	return nil
}

// Bind returns a copy of f whose closure is a fresh child environment
// with "this" bound to instance. Each retrieval of a method makes its own
// environment; every call of the returned bound method shares it.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnvironment(f.closure)
	env.Define("this", instance)
	return NewFunction(f.declaration, env, f.isInitializer)
}

func (f *Function) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}
