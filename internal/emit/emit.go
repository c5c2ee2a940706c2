// Package emit lowers ast fragments to Go syntax trees and renders them as Go
// source. Constructs without a direct Go form are lowered to an equivalent
// function literal or helper call, so the output always parses.
package emit

import (
	"fmt"
	"go/token"
	"strconv"

	"github.com/astforge/astforge/internal/ast"
	"github.com/dave/dst"
)

// Emitter lowers fragments. Variables registered with MapVariable are treated
// as map[string]any, so property access on them becomes an index expression.
type Emitter struct {
	mapVariables map[string]bool
}

func New() *Emitter {
	return &Emitter{mapVariables: map[string]bool{}}
}

// MapVariable marks name as a map[string]any variable.
func (e *Emitter) MapVariable(name string) {
	e.mapVariables[name] = true
}

var binaryTokens = map[ast.Token]token.Token{
	ast.EQ:   token.EQL,
	ast.NE:   token.NEQ,
	ast.LT:   token.LSS,
	ast.AND:  token.LAND,
	ast.OR:   token.LOR,
	ast.PLUS: token.ADD,
}

// Expr lowers an expression. It panics on a node type it does not know, which
// means a new node type was added to package ast without a lowering here.
func (e *Emitter) Expr(expr ast.Expression) dst.Expr {
	switch x := expr.(type) {
	case *ast.VariableExpr:
		return ident(x.Name)
	case *ast.ConstantExpr:
		return constant(x)
	case *ast.PropertyExpr:
		return e.selector(x.Object, x.Property)
	case *ast.AttributeExpr:
		return e.selector(x.Object, x.Attribute)
	case *ast.FieldExpr:
		return &dst.SelectorExpr{X: dst.NewIdent("this"), Sel: ident(x.Field.Name)}
	case *ast.BinaryExpr:
		return e.binary(x)
	case *ast.BooleanExpr:
		return e.Expr(x.Expr)
	case *ast.NotExpr:
		return &dst.UnaryExpr{Op: token.NOT, X: e.Expr(x.Expr)}
	case *ast.TernaryExpr:
		return e.ternary(x)
	case *ast.CastExpr:
		return &dst.TypeAssertExpr{X: e.Expr(x.Expr), Type: TypeExpr(x.Type)}
	case *ast.ClassExpr:
		return &dst.CallExpr{
			Fun: &dst.IndexExpr{
				X:     &dst.Ident{Name: "TypeFor", Path: "reflect"},
				Index: TypeExpr(x.Type),
			},
		}
	case *ast.ClosureExpr:
		return e.closure(x)
	case *ast.ConstructorCallExpr:
		return &dst.CallExpr{Fun: dst.NewIdent(constructorName(x.Type)), Args: e.args(x.Args)}
	case *ast.MethodCallExpr:
		var fun dst.Expr
		if name, ok := x.MethodName(); ok {
			fun = &dst.SelectorExpr{X: e.Expr(x.Receiver), Sel: ident(name)}
		} else {
			fun = &dst.IndexExpr{X: e.Expr(x.Receiver), Index: e.Expr(x.Method)}
		}
		return &dst.CallExpr{Fun: fun, Args: e.args(x.Args)}
	case *ast.StaticMethodCallExpr:
		return &dst.CallExpr{
			Fun:  &dst.SelectorExpr{X: dst.NewIdent(x.Owner.SimpleName()), Sel: ident(x.Method)},
			Args: e.args(x.Args),
		}
	case *ast.ArgumentListExpr:
		return &dst.CompositeLit{
			Type: &dst.ArrayType{Elt: dst.NewIdent("any")},
			Elts: e.args(x),
		}
	case *ast.DeclarationExpr:
		// only valid as a statement; as a value it yields the assigned value
		return e.Expr(x.Init)
	}
	panic(fmt.Sprintf("emit: unsupported expression %T", expr))
}

func (e *Emitter) args(list *ast.ArgumentListExpr) []dst.Expr {
	if list == nil {
		return nil
	}
	result := make([]dst.Expr, 0, len(list.Exprs))
	for _, a := range list.Exprs {
		result = append(result, e.Expr(a))
	}
	return result
}

func (e *Emitter) selector(object, property ast.Expression) dst.Expr {
	name, isName := "", false
	if c, ok := property.(*ast.ConstantExpr); ok {
		name, isName = c.Text()
	}
	if v, ok := object.(*ast.VariableExpr); ok && e.mapVariables[v.Name] && isName {
		return &dst.IndexExpr{X: dst.NewIdent(v.Name), Index: stringLit(name)}
	}
	if isName {
		return &dst.SelectorExpr{X: e.Expr(object), Sel: ident(name)}
	}
	return &dst.IndexExpr{X: e.Expr(object), Index: e.Expr(property)}
}

func (e *Emitter) binary(x *ast.BinaryExpr) dst.Expr {
	switch x.Op {
	case ast.INDEX:
		return &dst.IndexExpr{X: e.Expr(x.Left), Index: e.Expr(x.Right)}
	case ast.INSTANCEOF:
		class, ok := x.Right.(*ast.ClassExpr)
		if !ok {
			break
		}
		// func() bool { _, ok := x.(T); return ok }()
		return &dst.CallExpr{
			Fun: &dst.FuncLit{
				Type: &dst.FuncType{
					Params:  &dst.FieldList{},
					Results: &dst.FieldList{List: []*dst.Field{{Type: dst.NewIdent("bool")}}},
				},
				Body: &dst.BlockStmt{List: []dst.Stmt{
					&dst.AssignStmt{
						Lhs: []dst.Expr{dst.NewIdent("_"), dst.NewIdent("ok")},
						Tok: token.DEFINE,
						Rhs: []dst.Expr{&dst.TypeAssertExpr{X: e.Expr(x.Left), Type: TypeExpr(class.Type)}},
					},
					&dst.ReturnStmt{Results: []dst.Expr{dst.NewIdent("ok")}},
				}},
			},
		}
	case ast.CMP:
		return &dst.CallExpr{
			Fun:  &dst.Ident{Name: "Compare", Path: "cmp"},
			Args: []dst.Expr{e.Expr(x.Left), e.Expr(x.Right)},
		}
	default:
		if op, ok := binaryTokens[x.Op]; ok {
			return &dst.BinaryExpr{X: e.Expr(x.Left), Op: op, Y: e.Expr(x.Right)}
		}
	}
	panic(fmt.Sprintf("emit: operator %s has no expression form", x.Op))
}

func (e *Emitter) ternary(x *ast.TernaryExpr) dst.Expr {
	// func() any { if cond { return a }; return b }()
	return &dst.CallExpr{
		Fun: &dst.FuncLit{
			Type: &dst.FuncType{
				Params:  &dst.FieldList{},
				Results: &dst.FieldList{List: []*dst.Field{{Type: dst.NewIdent("any")}}},
			},
			Body: &dst.BlockStmt{List: []dst.Stmt{
				&dst.IfStmt{
					Cond: e.Expr(x.Cond),
					Body: &dst.BlockStmt{List: []dst.Stmt{
						&dst.ReturnStmt{Results: []dst.Expr{e.Expr(x.True)}},
					}},
				},
				&dst.ReturnStmt{Results: []dst.Expr{e.Expr(x.False)}},
			}},
		},
	}
}

func (e *Emitter) closure(x *ast.ClosureExpr) dst.Expr {
	params := &dst.FieldList{}
	for _, p := range x.Params {
		params.List = append(params.List, &dst.Field{
			Names: []*dst.Ident{ident(p.Name)},
			Type:  TypeExpr(p.Type),
		})
	}
	return &dst.FuncLit{
		Type: &dst.FuncType{Params: params},
		Body: e.Block(x.Code),
	}
}

func constant(c *ast.ConstantExpr) dst.Expr {
	switch v := c.Value.(type) {
	case nil:
		return dst.NewIdent("nil")
	case string:
		return stringLit(v)
	case bool:
		return dst.NewIdent(strconv.FormatBool(v))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return &dst.BasicLit{Kind: token.INT, Value: fmt.Sprintf("%d", v)}
	case float32:
		return &dst.BasicLit{Kind: token.FLOAT, Value: strconv.FormatFloat(float64(v), 'g', -1, 32)}
	case float64:
		return &dst.BasicLit{Kind: token.FLOAT, Value: strconv.FormatFloat(v, 'g', -1, 64)}
	}
	return stringLit(fmt.Sprint(c.Value))
}

func stringLit(s string) *dst.BasicLit {
	return &dst.BasicLit{Kind: token.STRING, Value: strconv.Quote(s)}
}

func constructorName(t ast.Type) string {
	switch t {
	case ast.ThisType, ast.SuperType:
		return t.Name
	}
	return "New" + t.SimpleName()
}
