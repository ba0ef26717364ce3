package internal

// Class is a runtime class object, itself Callable: calling it allocates
// an Instance and runs init (if declared) against it, grounded on the
// teacher's grotskyClass.call shape. There is deliberately no superclass
// field — spec.md's data model has no inheritance.
type Class struct {
	Name    string
	methods map[string]*Function
}

// NewClass builds a Class from its resolved method table.
func NewClass(name string, methods map[string]*Function) *Class {
	return &Class{Name: name, methods: methods}
}

func (c *Class) FindMethod(name string) (*Function, bool) {
	fn, ok := c.methods[name]
	return fn, ok
}

func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

func (c *Class) Call(interp *Interpreter, arguments []interface{}) interface{} {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		init.Bind(instance).Call(interp, arguments)
	}
	return instance
}

func (c *Class) String() string {
	return c.Name
}
