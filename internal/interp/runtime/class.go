package runtime

// ClassValue is a class declaration's runtime value. Calling the class
// constructs an instance, running the "init" method when one is declared.
// All methods share the environment the class declaration executed in.
type ClassValue struct {
	Name    string
	Methods map[string]*FunctionValue
}

// NewClass creates a class value with the given method table.
func NewClass(name string, methods map[string]*FunctionValue) *ClassValue {
	return &ClassValue{
		Name:    name,
		Methods: methods,
	}
}

func (c *ClassValue) Type() string   { return "CLASS" }
func (c *ClassValue) String() string { return c.Name }

// FindMethod looks up a method by name, or nil when the class declares no
// such method.
func (c *ClassValue) FindMethod(name string) *FunctionValue {
	if method, ok := c.Methods[name]; ok {
		return method
	}
	return nil
}

// Arity returns the initializer's arity, or zero for classes without an
// init method.
func (c *ClassValue) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call constructs a new instance. When the class declares an init method it
// is bound to the fresh instance and invoked with the arguments; the
// instance is the result either way.
func (c *ClassValue) Call(ev Evaluator, arguments []Value) (Value, error) {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(ev, arguments); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// InstanceValue is a runtime instance of a class: a reference to the class
// plus a mutable field table. Fields are created on first assignment.
type InstanceValue struct {
	Class  *ClassValue
	Fields map[string]Value
}

// NewInstance creates an instance of the given class with no fields.
func NewInstance(class *ClassValue) *InstanceValue {
	return &InstanceValue{
		Class:  class,
		Fields: make(map[string]Value),
	}
}

func (i *InstanceValue) Type() string   { return "INSTANCE" }
func (i *InstanceValue) String() string { return i.Class.Name + " instance" }

// GetMember resolves a name on the instance: fields shadow methods, and a
// method hit is bound to the instance.
func (i *InstanceValue) GetMember(name string) (Value, bool) {
	if val, ok := i.Fields[name]; ok {
		return val, true
	}
	if method := i.Class.FindMethod(name); method != nil {
		return method.Bind(i), true
	}
	return nil, false
}

// SetField assigns a field, creating it on first assignment.
func (i *InstanceValue) SetField(name string, val Value) {
	i.Fields[name] = val
}
