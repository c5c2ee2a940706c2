package ast

type (
	// VariableExpr references a local variable, parameter or field by name.
	VariableExpr struct {
		Position
		Name string
		Type Type
	}

	// ConstantExpr is a literal value. A nil Value is the null literal.
	ConstantExpr struct {
		Position
		Value         any
		KeepPrimitive bool
	}

	// PropertyExpr is owner.property. Property is usually a string constant.
	PropertyExpr struct {
		Position
		Object   Expression
		Property Expression
	}

	// AttributeExpr is owner.@attribute, a direct field access.
	AttributeExpr struct {
		Position
		Object    Expression
		Attribute Expression
	}

	// FieldExpr references a field declaration directly.
	FieldExpr struct {
		Position
		Field *FieldNode
	}

	BinaryExpr struct {
		Position
		Left  Expression
		Op    Token
		Right Expression
	}

	// BooleanExpr marks an expression used in a boolean position.
	BooleanExpr struct {
		Position
		Expr Expression
	}

	NotExpr struct {
		Position
		Expr Expression
	}

	TernaryExpr struct {
		Position
		Cond  *BooleanExpr
		True  Expression
		False Expression
	}

	CastExpr struct {
		Position
		Type             Type
		Expr             Expression
		IgnoreAutoboxing bool
	}

	// ClassExpr is a class literal such as String.class.
	ClassExpr struct {
		Position
		Type Type
	}

	// ClosureExpr is an anonymous block of code with its own parameters.
	ClosureExpr struct {
		Position
		Params []*Parameter
		Code   Statement
	}

	ConstructorCallExpr struct {
		Position
		Type Type
		Args *ArgumentListExpr
	}

	MethodCallExpr struct {
		Position
		Receiver Expression
		Method   Expression
		Args     *ArgumentListExpr
	}

	StaticMethodCallExpr struct {
		Position
		Owner  Type
		Method string
		Args   *ArgumentListExpr
	}

	ArgumentListExpr struct {
		Position
		Exprs []Expression
	}

	// DeclarationExpr declares Target and assigns Init to it.
	DeclarationExpr struct {
		Position
		Target Expression
		Init   Expression
	}
)

func (*VariableExpr) exprNode()         {}
func (*ConstantExpr) exprNode()         {}
func (*PropertyExpr) exprNode()         {}
func (*AttributeExpr) exprNode()        {}
func (*FieldExpr) exprNode()            {}
func (*BinaryExpr) exprNode()           {}
func (*BooleanExpr) exprNode()          {}
func (*NotExpr) exprNode()              {}
func (*TernaryExpr) exprNode()          {}
func (*CastExpr) exprNode()             {}
func (*ClassExpr) exprNode()            {}
func (*ClosureExpr) exprNode()          {}
func (*ConstructorCallExpr) exprNode()  {}
func (*MethodCallExpr) exprNode()       {}
func (*StaticMethodCallExpr) exprNode() {}
func (*ArgumentListExpr) exprNode()     {}
func (*DeclarationExpr) exprNode()      {}

// EmptyExpression is the shared "no value" expression. It must never be
// mutated.
var EmptyExpression = &ConstantExpr{}

// IsNull reports whether the constant is the null literal. EmptyExpression
// is a null constant too.
func (c *ConstantExpr) IsNull() bool {
	return c.Value == nil
}

// IsNullConstant reports whether expr is a null literal.
func IsNullConstant(expr Expression) bool {
	c, ok := expr.(*ConstantExpr)
	return ok && c.IsNull()
}

// Text returns the literal text of a string constant, and false for any
// other kind of constant.
func (c *ConstantExpr) Text() (string, bool) {
	s, ok := c.Value.(string)
	return s, ok
}

// PropertyName returns the property as text when it is a string constant.
func (p *PropertyExpr) PropertyName() (string, bool) {
	if c, ok := p.Property.(*ConstantExpr); ok {
		return c.Text()
	}
	return "", false
}

// MethodName returns the called method as text when it is a string constant.
func (m *MethodCallExpr) MethodName() (string, bool) {
	if c, ok := m.Method.(*ConstantExpr); ok {
		return c.Text()
	}
	return "", false
}

func (v *VariableExpr) IsThis() bool  { return v.Name == "this" }
func (v *VariableExpr) IsSuper() bool { return v.Name == "super" }
