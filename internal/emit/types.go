package emit

import (
	"github.com/astforge/astforge/internal/ast"
	"github.com/dave/dst"
)

var goTypes = map[string]string{
	"boolean": "bool",
	"byte":    "byte",
	"char":    "rune",
	"short":   "int16",
	"int":     "int32",
	"long":    "int64",
	"float":   "float32",
	"double":  "float64",

	"Boolean":   "bool",
	"Byte":      "byte",
	"Character": "rune",
	"Short":     "int16",
	"Integer":   "int32",
	"Long":      "int64",
	"Float":     "float32",
	"Double":    "float64",
	"String":    "string",
	"Object":    "any",
}

// TypeExpr maps a class-language type to a Go type expression. Primitives,
// their boxes and String map to Go builtins, the dynamic type and Object map
// to any, arrays to slices and any other class to a pointer to its simple name.
func TypeExpr(t ast.Type) dst.Expr {
	if t.IsArray() {
		return &dst.ArrayType{Elt: TypeExpr(t.ElementType())}
	}
	if t.IsDynamic() {
		return dst.NewIdent("any")
	}
	name := t.SimpleName()
	if goType, ok := goTypes[name]; ok {
		return dst.NewIdent(goType)
	}
	return &dst.StarExpr{X: dst.NewIdent(name)}
}
