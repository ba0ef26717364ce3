package internal

// Instance is a runtime object produced by calling a Class, grounded on
// the teacher's grotskyInstance: a bag of fields backed by the class it
// was stamped from for method lookup.
type Instance struct {
	class  *Class
	fields map[string]interface{}
}

// NewInstance builds an Instance of class with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]interface{})}
}

// Get resolves a property access: fields shadow methods, and a method is
// bound to this instance before it's returned so a later call sees the
// right "this".
func (i *Instance) Get(name Token) interface{} {
	if value, ok := i.fields[name.Lexeme]; ok {
		return value
	}
	if method, ok := i.class.FindMethod(name.Lexeme); ok {
		return method.Bind(i)
	}
	panic(&RuntimeError{Token: name, Message: "Undefined property '" + name.Lexeme + "'."})
}

func (i *Instance) Set(name Token, value interface{}) {
	i.fields[name.Lexeme] = value
}

func (i *Instance) String() string {
	return i.class.Name + " instance"
}
