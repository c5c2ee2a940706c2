// codegen is a library that creates expression, statement and parameter nodes for
// the declaration model in package ast. It is the one place where transformations
// build new fragments. When implementing functions for this library, the following
// rules should apply:
//
// 1. Every call returns freshly allocated nodes. Inputs are placed into the output
// as they are, so a caller that passes the same expression to two builders shares it
// between both fragments. The only shared nodes are ast.EmptyStatement and
// ast.EmptyExpression, and nothing may mutate those.
// 2. Builders never fail. A nil required argument is a programming error and panics.
// 3. Please add a comment header about what the output of your function is. All
// exported functions MUST be documented in way that is compatible with `godoc`.
// 4. Any builder that changes one of its inputs must say so in its name or its
// documentation. DefaultFieldInit is the only one today.
package codegen

import (
	"fmt"

	"github.com/astforge/astforge/internal/ast"
)

const (
	// ThisVariable and SuperVariable are the implicit receivers.
	ThisVariable  = "this"
	SuperVariable = "super"

	// ArgumentsVariable is the name of the map argument passed to a generated
	// map-style constructor.
	ArgumentsVariable = "args"
)

func mustExpr(builder string, exprs ...ast.Expression) {
	for i, e := range exprs {
		if e == nil {
			panic(fmt.Sprintf("codegen: %s: expression argument %d is nil", builder, i))
		}
	}
}

func mustStmt(builder string, stmts ...ast.Statement) {
	for i, s := range stmts {
		if s == nil {
			panic(fmt.Sprintf("codegen: %s: statement argument %d is nil", builder, i))
		}
	}
}

// asBoolean wraps expr in a BooleanExpr unless it already is one.
func asBoolean(expr ast.Expression) *ast.BooleanExpr {
	if b, ok := expr.(*ast.BooleanExpr); ok {
		return b
	}
	return &ast.BooleanExpr{Expr: expr}
}

func argsOrEmpty(args *ast.ArgumentListExpr) *ast.ArgumentListExpr {
	if args == nil {
		return &ast.ArgumentListExpr{Exprs: []ast.Expression{}}
	}
	return args
}
