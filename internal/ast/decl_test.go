package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassMembers(t *testing.T) {
	c := NewClass("Point", Public, "Object", "Serializable")
	x := NewField("x", Private, MakeType("int"), nil)
	c.AddField(x)
	label := NewField("label", 0, MakeType("String"), nil)
	c.AddProperty(NewProperty(label, Public))

	assert.Equal(t, "Point", x.Owner)
	assert.Equal(t, "Point", label.Owner)
	assert.Equal(t, "Point.x", x.String())
	assert.Same(t, x, c.Field("x"))
	assert.Same(t, label, c.Field("label"))
	assert.Nil(t, c.Field("y"))
	require.NotNil(t, c.Property("label"))
	assert.Equal(t, MakeType("String"), c.Property("label").Type())
	assert.Nil(t, c.Property("x"))
	assert.Len(t, c.Fields, 2)

	c.AddProperty(NewProperty(x, Public))
	assert.Len(t, c.Fields, 2, "a property over an existing field does not add it again")

	c.AddMethod(NewMethod("move", Public, MakeType("void"), []*Parameter{NewParameter(MakeType("int"), "dx")}, nil))
	c.AddMethod(NewMethod("move", Public, MakeType("void"), []*Parameter{}, nil))
	c.AddConstructor(NewMethod("Point", Public, c.Type(), []*Parameter{}, nil))

	assert.Len(t, c.DeclaredMethods("move"), 2)
	assert.Empty(t, c.DeclaredMethods("Point"))
	require.Len(t, c.Constructors, 1)
	assert.True(t, c.Constructors[0].IsConstructor())
	assert.Equal(t, ConstructorName, c.Constructors[0].Name)
}

func TestFieldInitialValue(t *testing.T) {
	init := &ConstantExpr{Value: "x"}
	f := NewField("name", 0, MakeType("String"), init)
	assert.True(t, f.HasInitialValue())
	assert.Same(t, init, f.InitialValue())

	taken := f.TakeInitialValue()
	assert.Same(t, init, taken)
	assert.False(t, f.HasInitialValue())
	assert.Nil(t, f.InitialValue())
	assert.Nil(t, f.TakeInitialValue())

	f.SetInitialValue(init)
	assert.True(t, f.HasInitialValue())
}

func TestClassKinds(t *testing.T) {
	assert.True(t, NewClass("Runnable", Interface, "Object").IsInterface())
	annotationType := NewClass("Audited", Interface|AnnotationType, "Object")
	assert.True(t, annotationType.IsAnnotationType())
	assert.True(t, annotationType.IsInterface())
	assert.False(t, NewClass("Plain", Public, "Object").IsInterface())
}

func TestNullConstants(t *testing.T) {
	assert.True(t, IsNullConstant(EmptyExpression))
	assert.True(t, IsNullConstant(&ConstantExpr{}))
	assert.False(t, IsNullConstant(&ConstantExpr{Value: 0}))
	assert.False(t, IsNullConstant(&VariableExpr{Name: "x"}))
	assert.False(t, IsNullConstant(nil))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(EmptyStatement))
	assert.True(t, IsEmpty(&BlockStmt{}))
	assert.False(t, IsEmpty(&BlockStmt{Stmts: []Statement{EmptyStatement}}))
	assert.False(t, IsEmpty(&ReturnStmt{Expr: EmptyExpression}))
}

func TestVariableScope(t *testing.T) {
	outer := &VariableScope{}
	outer.Declare("a")
	inner := &VariableScope{Parent: outer}
	inner.Declare("b")

	assert.True(t, inner.IsDeclared("a"))
	assert.True(t, inner.IsDeclared("b"))
	assert.False(t, outer.IsDeclared("b"))
}

func TestPosition(t *testing.T) {
	pos := Position{File: "A.java", Line: 3, Column: 5, LastLine: 3, LastColumn: 9}
	assert.True(t, pos.IsValid())
	assert.Equal(t, "A.java:3:5", pos.String())
	assert.Equal(t, "3:5", Position{Line: 3, Column: 5}.String())
	assert.False(t, Position{}.IsValid())

	var copied Position
	copied.SetSourcePosition(&VariableExpr{Position: pos})
	assert.Equal(t, pos, copied)

	copied.SetSourcePosition(nil)
	assert.Equal(t, pos, copied)
}
