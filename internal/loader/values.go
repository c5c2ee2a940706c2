package loader

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/astforge/astforge/internal/ast"
	"github.com/astforge/astforge/internal/codegen"
	sitter "github.com/smacker/go-tree-sitter"
)

// annotation loads a marker or normal annotation. A single unnamed argument
// is the "value" member.
func (f *sourceFile) annotation(node *sitter.Node) *ast.AnnotationNode {
	name := node.ChildByFieldName("name")
	if name == nil {
		f.parseError(node, "annotation")
		return nil
	}
	a := ast.NewAnnotation(ast.MakeType(f.content(name)))
	a.Position = f.position(node)

	args := node.ChildByFieldName("arguments")
	if args == nil {
		return a
	}
	for _, arg := range children(args) {
		if arg.Type() == "element_value_pair" {
			key, value := arg.ChildByFieldName("key"), arg.ChildByFieldName("value")
			if key == nil || value == nil {
				f.parseError(arg, "annotation member")
				continue
			}
			f.annotationMember(a, f.content(key), value)
			continue
		}
		f.annotationMember(a, "value", arg)
	}
	return a
}

func (f *sourceFile) annotationMember(a *ast.AnnotationNode, name string, node *sitter.Node) {
	expr, ok := f.value(node)
	if !ok {
		f.log.WithField("annotation", a.Type.Name).Warnf("unsupported value of member %s ignored", name)
		return
	}
	a.AddMember(name, expr)
}

// value loads a literal, name, member reference, class literal, lambda or
// simple constructor call. Any other expression is reported as unsupported.
func (f *sourceFile) value(node *sitter.Node) (ast.Expression, bool) {
	var expr ast.Expression
	text := f.content(node)

	switch node.Type() {
	case "string_literal", "character_literal":
		expr = codegen.ConstX(unquote(text))
	case "decimal_integer_literal", "hex_integer_literal", "octal_integer_literal", "binary_integer_literal":
		v, ok := integer(text)
		if !ok {
			return nil, false
		}
		expr = codegen.ConstX(v)
	case "decimal_floating_point_literal", "hex_floating_point_literal":
		v, ok := float(text)
		if !ok {
			return nil, false
		}
		expr = codegen.ConstX(v)
	case "true":
		expr = codegen.ConstX(true)
	case "false":
		expr = codegen.ConstX(false)
	case "null_literal":
		expr = codegen.ConstX(nil)
	case "identifier", "scoped_identifier":
		expr = nameExpr(text)
	case "field_access":
		object, field := node.ChildByFieldName("object"), node.ChildByFieldName("field")
		if object == nil || field == nil {
			return nil, false
		}
		if f.content(field) == "class" {
			// Foo.class parses as a field access
			expr = codegen.ClassX(ast.MakeType(typeName(f.content(object))))
			break
		}
		expr = codegen.PropX(nameExpr(f.content(object)), f.content(field))
	case "class_literal":
		if node.NamedChildCount() == 0 {
			return nil, false
		}
		expr = codegen.ClassX(ast.MakeType(typeName(f.content(node.NamedChild(0)))))
	case "lambda_expression":
		expr = codegen.ClosureX(f.lambdaParameters(node.ChildByFieldName("parameters")), ast.EmptyStatement)
	case "element_value_array_initializer", "array_initializer":
		var values []ast.Expression
		for _, c := range children(node) {
			v, ok := f.value(c)
			if !ok {
				return nil, false
			}
			values = append(values, v)
		}
		expr = codegen.Args(values...)
	case "object_creation_expression":
		t := node.ChildByFieldName("type")
		if t == nil || node.ChildByFieldName("body") != nil {
			return nil, false
		}
		var args []ast.Expression
		if list := node.ChildByFieldName("arguments"); list != nil {
			for _, c := range children(list) {
				v, ok := f.value(c)
				if !ok {
					return nil, false
				}
				args = append(args, v)
			}
		}
		expr = codegen.CtorX(ast.MakeType(typeName(f.content(t))), codegen.Args(args...))
	case "parenthesized_expression":
		if node.NamedChildCount() != 1 {
			return nil, false
		}
		return f.value(node.NamedChild(0))
	default:
		return nil, false
	}

	expr.(positioned).SetSourcePosition(f.position(node))
	return expr, true
}

type positioned interface {
	SetSourcePosition(other ast.Node)
}

// nameExpr treats a capitalized name as a class reference and anything else
// as a variable.
func nameExpr(text string) ast.Expression {
	simple := ast.SimpleName(text)
	if simple != "" && unicode.IsUpper([]rune(simple)[0]) {
		return codegen.ClassX(ast.MakeType(text))
	}
	return codegen.VarX(text)
}

func (f *sourceFile) lambdaParameters(node *sitter.Node) []*ast.Parameter {
	params := codegen.Params()
	if node == nil {
		return params
	}
	switch node.Type() {
	case "identifier":
		return codegen.Params(codegen.Param(ast.DynamicType, f.content(node)))
	case "inferred_parameters":
		for _, c := range children(node) {
			params = append(params, codegen.Param(ast.DynamicType, f.content(c)))
		}
		return params
	case "formal_parameters":
		return f.parameters(node)
	}
	return params
}

func unquote(text string) string {
	if s, err := strconv.Unquote(text); err == nil {
		return s
	}
	if strings.HasPrefix(text, `"""`) {
		return strings.TrimSuffix(strings.TrimPrefix(text, `"""`), `"""`)
	}
	return strings.Trim(text, `"'`)
}

// integer parses a Java integer literal. A long literal stays int64.
func integer(text string) (any, bool) {
	clean := strings.ReplaceAll(text, "_", "")
	long := strings.HasSuffix(clean, "l") || strings.HasSuffix(clean, "L")
	clean = strings.TrimRight(clean, "lL")
	if len(clean) > 1 && clean[0] == '0' && clean[1] >= '0' && clean[1] <= '9' {
		clean = "0o" + clean[1:]
	}
	v, err := strconv.ParseInt(clean, 0, 64)
	if err != nil {
		return nil, false
	}
	if long {
		return v, true
	}
	return int(v), true
}

// float parses a Java floating point literal. An f suffix gives float32.
func float(text string) (any, bool) {
	clean := strings.ReplaceAll(text, "_", "")
	switch clean[len(clean)-1] {
	case 'f', 'F':
		v, err := strconv.ParseFloat(clean[:len(clean)-1], 32)
		return float32(v), err == nil
	case 'd', 'D':
		clean = clean[:len(clean)-1]
	}
	v, err := strconv.ParseFloat(clean, 64)
	return v, err == nil
}
