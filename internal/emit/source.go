package emit

import (
	"bytes"
	"fmt"
	"go/token"

	"github.com/astforge/astforge/internal/ast"
	"github.com/astforge/astforge/internal/codegen"
	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/dave/dst/decorator/resolver/guess"
	"golang.org/x/tools/imports"
)

// MapConstructorName is the name of the Go constructor generated for a class.
func MapConstructorName(class *ast.ClassNode) string {
	return "New" + ast.SimpleName(class.Name) + "FromMap"
}

// StructDecl declares a Go struct for class holding fields in order.
func StructDecl(class *ast.ClassNode, fields []*ast.FieldNode) *dst.GenDecl {
	list := &dst.FieldList{}
	for _, f := range fields {
		list.List = append(list.List, &dst.Field{
			Names: []*dst.Ident{ident(f.Name)},
			Type:  TypeExpr(f.Type),
		})
	}
	return &dst.GenDecl{
		Tok: token.TYPE,
		Specs: []dst.Spec{
			&dst.TypeSpec{
				Name: dst.NewIdent(ast.SimpleName(class.Name)),
				Type: &dst.StructType{Fields: list},
			},
		},
	}
}

// StructFields returns the fields of a struct declared by StructDecl.
func StructFields(decl *dst.GenDecl) []*dst.Field {
	spec := decl.Specs[0].(*dst.TypeSpec)
	return spec.Type.(*dst.StructType).Fields.List
}

// MapConstructor lowers body into a Go constructor that takes the named
// arguments map:
//
//	func NewFooFromMap(args map[string]any) *Foo {
//		this := &Foo{}
//		...
//		return this
//	}
func (e *Emitter) MapConstructor(class *ast.ClassNode, body *ast.BlockStmt) *dst.FuncDecl {
	e.MapVariable(codegen.ArgumentsVariable)
	name := ast.SimpleName(class.Name)

	fn := &dst.FuncDecl{
		Name: dst.NewIdent(MapConstructorName(class)),
		Type: &dst.FuncType{
			Params: &dst.FieldList{List: []*dst.Field{{
				Names: []*dst.Ident{dst.NewIdent(codegen.ArgumentsVariable)},
				Type:  &dst.MapType{Key: dst.NewIdent("string"), Value: dst.NewIdent("any")},
			}}},
			Results: &dst.FieldList{List: []*dst.Field{{
				Type: &dst.StarExpr{X: dst.NewIdent(name)},
			}}},
		},
		Body: e.Block(body),
	}
	SeparateStatements(fn.Body.List...)

	ret := &dst.ReturnStmt{Results: []dst.Expr{dst.NewIdent(codegen.ThisVariable)}}
	ret.Decs.Before = dst.EmptyLine
	fn.Body.List = append(fn.Body.List, ret)

	init := &dst.AssignStmt{
		Lhs: []dst.Expr{dst.NewIdent(codegen.ThisVariable)},
		Tok: token.DEFINE,
		Rhs: []dst.Expr{&dst.UnaryExpr{Op: token.AND, X: &dst.CompositeLit{Type: dst.NewIdent(name)}}},
	}
	CreateStatementBlock(false, init)
	PrependStatementToFunctionDecl(fn, init)
	return fn
}

// Source renders decls as a formatted Go file in package pkg. Imports needed
// by qualified identifiers are added.
func Source(pkg string, decls ...dst.Decl) ([]byte, error) {
	file := &dst.File{Name: dst.NewIdent(pkg), Decls: decls}

	var buf bytes.Buffer
	r := decorator.NewRestorerWithImports(pkg, guess.New())
	if err := r.Fprint(&buf, file); err != nil {
		return nil, fmt.Errorf("failed to print package %s: %w", pkg, err)
	}

	out, err := imports.Process("", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to format package %s: %w", pkg, err)
	}
	return out, nil
}
