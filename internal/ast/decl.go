package ast

// ConstructorName is the method name given to constructors.
const ConstructorName = "<init>"

// ClassNode is a class, interface or annotation type declaration.
type ClassNode struct {
	AnnotatedNode
	Name      string
	Modifiers Modifier
	// SuperClass is the name of the direct superclass, empty for the root
	// type and for classes whose superclass is unknown.
	SuperClass string
	// Interfaces are the names of the directly implemented interfaces, or
	// for an interface, the interfaces it extends.
	Interfaces   []string
	Fields       []*FieldNode
	Properties   []*PropertyNode
	Methods      []*MethodNode
	Constructors []*MethodNode
}

// NewClass creates an empty class declaration.
func NewClass(name string, mods Modifier, superClass string, interfaces ...string) *ClassNode {
	return &ClassNode{
		Name:       name,
		Modifiers:  mods,
		SuperClass: superClass,
		Interfaces: interfaces,
	}
}

func (c *ClassNode) IsInterface() bool {
	return c.Modifiers.Has(Interface)
}

func (c *ClassNode) IsAnnotationType() bool {
	return c.Modifiers.Has(AnnotationType)
}

// Type returns a reference to this class.
func (c *ClassNode) Type() Type {
	return Type{Name: c.Name}
}

// AddField appends f to the class and records the class as its owner.
func (c *ClassNode) AddField(f *FieldNode) {
	f.Owner = c.Name
	c.Fields = append(c.Fields, f)
}

// AddProperty appends p to the class. The backing field is added too unless
// the class already lists it.
func (c *ClassNode) AddProperty(p *PropertyNode) {
	if c.Field(p.Name) == nil {
		c.AddField(p.Field)
	}
	c.Properties = append(c.Properties, p)
}

func (c *ClassNode) AddMethod(m *MethodNode) {
	c.Methods = append(c.Methods, m)
}

func (c *ClassNode) AddConstructor(m *MethodNode) {
	m.Name = ConstructorName
	c.Constructors = append(c.Constructors, m)
}

// Field returns the field declared by this class with the given name.
func (c *ClassNode) Field(name string) *FieldNode {
	for _, f := range c.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Property returns the property declared by this class with the given name.
func (c *ClassNode) Property(name string) *PropertyNode {
	for _, p := range c.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// DeclaredMethods returns the methods this class declares with the given name.
func (c *ClassNode) DeclaredMethods(name string) []*MethodNode {
	var result []*MethodNode
	for _, m := range c.Methods {
		if m.Name == name {
			result = append(result, m)
		}
	}
	return result
}

func (c *ClassNode) String() string {
	return c.Name
}

// FieldNode is a field declaration.
type FieldNode struct {
	AnnotatedNode
	Name      string
	Type      Type
	Modifiers Modifier
	// Owner is the name of the declaring class.
	Owner        string
	initialValue Expression
}

func NewField(name string, mods Modifier, t Type, initialValue Expression) *FieldNode {
	return &FieldNode{
		Name:         name,
		Type:         t,
		Modifiers:    mods,
		initialValue: initialValue,
	}
}

func (f *FieldNode) IsStatic() bool {
	return f.Modifiers.Has(Static)
}

// InitialValue returns the stored initializer, or nil.
func (f *FieldNode) InitialValue() Expression {
	return f.initialValue
}

func (f *FieldNode) HasInitialValue() bool {
	return f.initialValue != nil
}

// SetInitialValue replaces the stored initializer.
func (f *FieldNode) SetInitialValue(expr Expression) {
	f.initialValue = expr
}

// TakeInitialValue removes the stored initializer and returns it. After the
// call the field has no initializer; the caller owns the returned expression.
// Calling it twice on the same field returns nil the second time.
func (f *FieldNode) TakeInitialValue() Expression {
	expr := f.initialValue
	f.initialValue = nil
	return expr
}

func (f *FieldNode) VariableName() string { return f.Name }
func (f *FieldNode) VariableType() Type   { return f.Type }

// PropertyNode is a property, always backed by a field of the same name.
type PropertyNode struct {
	AnnotatedNode
	Name      string
	Modifiers Modifier
	Field     *FieldNode
}

// NewProperty creates a property backed by field.
func NewProperty(field *FieldNode, mods Modifier) *PropertyNode {
	return &PropertyNode{
		Name:      field.Name,
		Modifiers: mods,
		Field:     field,
	}
}

func (p *PropertyNode) IsStatic() bool {
	return p.Modifiers.Has(Static)
}

func (p *PropertyNode) Type() Type {
	return p.Field.Type
}

// MethodNode is a method or constructor declaration.
type MethodNode struct {
	AnnotatedNode
	Name       string
	ReturnType Type
	Modifiers  Modifier
	// Parameters is nil when the parameter list is unknown, which is not the
	// same as an empty list.
	Parameters []*Parameter
	Code       Statement
}

func NewMethod(name string, mods Modifier, returnType Type, params []*Parameter, code Statement) *MethodNode {
	return &MethodNode{
		Name:       name,
		Modifiers:  mods,
		ReturnType: returnType,
		Parameters: params,
		Code:       code,
	}
}

func (m *MethodNode) IsStatic() bool {
	return m.Modifiers.Has(Static)
}

func (m *MethodNode) IsConstructor() bool {
	return m.Name == ConstructorName
}

// Parameter is a method, constructor or closure parameter.
type Parameter struct {
	AnnotatedNode
	Name string
	Type Type
	// InitialExpression is the default value, or nil.
	InitialExpression Expression
}

func NewParameter(t Type, name string) *Parameter {
	return &Parameter{Name: name, Type: t}
}

func (p *Parameter) VariableName() string { return p.Name }
func (p *Parameter) VariableType() Type   { return p.Type }

func (f *FieldNode) String() string {
	return f.Owner + "." + f.Name
}

func (p *PropertyNode) String() string {
	return p.Field.String()
}

func (m *MethodNode) String() string {
	return m.Name
}
