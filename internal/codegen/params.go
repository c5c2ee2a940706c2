package codegen

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/astforge/astforge/internal/ast"
)

// Param returns a parameter without a default value.
func Param(t ast.Type, name string) *ast.Parameter {
	return ast.NewParameter(t, name)
}

// ParamWithDefault returns a parameter whose default is init.
func ParamWithDefault(t ast.Type, name string, init ast.Expression) *ast.Parameter {
	p := ast.NewParameter(t, name)
	p.InitialExpression = init
	return p
}

// Params returns params as a parameter list. It never returns nil.
func Params(params ...*ast.Parameter) []*ast.Parameter {
	if params == nil {
		return []*ast.Parameter{}
	}
	return params
}

// CloneParams copies the name and type of every parameter. Defaults and
// annotations are not carried over.
func CloneParams(source []*ast.Parameter) []*ast.Parameter {
	result := make([]*ast.Parameter, len(source))
	for i, p := range source {
		result[i] = ast.NewParameter(p.Type, p.Name)
	}
	return result
}

// GetterName returns the name of the getter generated for a property,
// "get" followed by the capitalized property name.
func GetterName(property *ast.PropertyNode) string {
	return "get" + capitalize(property.Name)
}

// DescriptorWithoutReturnType identifies a method by its name and parameter
// types, e.g. "put:String,Object,".
func DescriptorWithoutReturnType(method *ast.MethodNode) string {
	var sb strings.Builder
	sb.WriteString(method.Name)
	sb.WriteByte(':')
	for _, p := range method.Parameters {
		sb.WriteString(p.Type.String())
		sb.WriteByte(',')
	}
	return sb.String()
}

func capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
