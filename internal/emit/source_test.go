package emit

import (
	"testing"

	"github.com/astforge/astforge/internal/ast"
	"github.com/astforge/astforge/internal/codegen"
	"github.com/dave/dst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapConstructorSource(t *testing.T) {
	class := ast.NewClass("com.acme.Foo", ast.Public, "Object")
	count := ast.NewField("count", ast.Private, ast.MakeType("int"), nil)
	name := ast.NewField("name", ast.Private, ast.MakeType("String"), codegen.ConstX("x"))
	class.AddField(count)
	class.AddField(name)

	fields := []*ast.FieldNode{count, name}
	body := codegen.DefaultConstructorBody(fields)

	e := New()
	fn := e.MapConstructor(class, body)
	assert.Equal(t, "NewFooFromMap", fn.Name.Name)
	require.Len(t, fn.Body.List, 4)

	src, err := Source("model", StructDecl(class, fields), fn)
	require.NoError(t, err)

	out := string(src)
	for _, want := range []string{
		"package model",
		"type Foo struct {",
		"count int32",
		"name  string",
		"func NewFooFromMap(args map[string]any) *Foo {",
		"this := &Foo{}",
		`if args["count"] == nil {`,
		`this.count = args["count"].(int32)`,
		`if args["name"] == nil {`,
		`this.name = "x"`,
		`this.name = args["name"].(string)`,
		"return this",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSourceAddsImports(t *testing.T) {
	e := New()
	fn := &dst.FuncDecl{
		Name: dst.NewIdent("widgetType"),
		Type: &dst.FuncType{Params: &dst.FieldList{}},
		Body: &dst.BlockStmt{List: []dst.Stmt{
			&dst.ExprStmt{X: e.Expr(codegen.ClassX(ast.MakeType("Widget")))},
		}},
	}

	src, err := Source("model", fn)
	require.NoError(t, err)
	assert.Contains(t, string(src), `"reflect"`)
	assert.Contains(t, string(src), "reflect.TypeFor[*Widget]()")
}

func TestMapConstructorNameUsesSimpleName(t *testing.T) {
	class := ast.NewClass("a.b.Bar", 0, "")
	assert.Equal(t, "NewBarFromMap", MapConstructorName(class))
}

func TestMapConstructorEscapesKeywords(t *testing.T) {
	class := ast.NewClass("Token", ast.Public, "Object")
	kind := ast.NewField("type", ast.Private, ast.MakeType("String"), nil)
	next := ast.NewField("range", ast.Private, ast.MakeType("int"), nil)
	class.AddField(kind)
	class.AddField(next)
	fields := []*ast.FieldNode{kind, next}

	fn := New().MapConstructor(class, codegen.DefaultConstructorBody(fields))
	src, err := Source("model", StructDecl(class, fields), fn)
	require.NoError(t, err)

	out := string(src)
	for _, want := range []string{
		"type_  string",
		"range_ int32",
		`if args["type"] == nil {`,
		`this.type_ = args["type"].(string)`,
		`this.range_ = args["range"].(int32)`,
	} {
		assert.Contains(t, out, want)
	}
}

func TestGoName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"type", "type_"},
		{"func", "func_"},
		{"select", "select_"},
		{"name", "name"},
		{"Type", "Type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GoName(tt.name))
		})
	}
}
