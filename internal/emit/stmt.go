package emit

import (
	"fmt"
	"go/token"

	"github.com/astforge/astforge/internal/ast"
	"github.com/dave/dst"
)

// Stmt lowers a statement. Assignments and declarations become AssignStmt and
// an if with an empty else drops the else branch. The empty statement, and an
// assignment of ast.EmptyExpression, render as nothing.
func (e *Emitter) Stmt(stmt ast.Statement) dst.Stmt {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		return e.Block(s)
	case *ast.ExpressionStmt:
		return e.expressionStmt(s)
	case *ast.IfStmt:
		return e.ifStmt(s)
	case *ast.ReturnStmt:
		ret := &dst.ReturnStmt{}
		if s.Expr != nil && s.Expr != ast.EmptyExpression {
			ret.Results = []dst.Expr{e.Expr(s.Expr)}
		}
		return ret
	case *ast.EmptyStmt:
		return &dst.EmptyStmt{Implicit: true}
	}
	panic(fmt.Sprintf("emit: unsupported statement %T", stmt))
}

// Block lowers stmt into a block, wrapping a single statement when needed.
// Statements that lower to nothing are left out.
func (e *Emitter) Block(stmt ast.Statement) *dst.BlockStmt {
	block := &dst.BlockStmt{}
	switch s := stmt.(type) {
	case nil:
	case *ast.BlockStmt:
		for _, inner := range s.Stmts {
			block.List = e.appendStmt(block.List, inner)
		}
	default:
		block.List = e.appendStmt(block.List, s)
	}
	return block
}

func (e *Emitter) appendStmt(list []dst.Stmt, stmt ast.Statement) []dst.Stmt {
	if ast.IsEmpty(stmt) {
		return list
	}
	lowered := e.Stmt(stmt)
	if empty, ok := lowered.(*dst.EmptyStmt); ok && empty.Implicit {
		return list
	}
	return append(list, lowered)
}

func (e *Emitter) expressionStmt(s *ast.ExpressionStmt) dst.Stmt {
	switch x := s.Expr.(type) {
	case *ast.BinaryExpr:
		if x.Op == ast.ASSIGN && x.Right == ast.EmptyExpression {
			// the target already holds its zero value
			return &dst.EmptyStmt{Implicit: true}
		}
		if x.Op == ast.ASSIGN {
			return &dst.AssignStmt{
				Lhs: []dst.Expr{e.Expr(x.Left)},
				Tok: token.ASSIGN,
				Rhs: []dst.Expr{e.Expr(x.Right)},
			}
		}
	case *ast.DeclarationExpr:
		return &dst.AssignStmt{
			Lhs: []dst.Expr{e.Expr(x.Target)},
			Tok: token.DEFINE,
			Rhs: []dst.Expr{e.Expr(x.Init)},
		}
	}
	return &dst.ExprStmt{X: e.Expr(s.Expr)}
}

func (e *Emitter) ifStmt(s *ast.IfStmt) dst.Stmt {
	stmt := &dst.IfStmt{
		Cond: e.Expr(s.Cond),
		Body: e.Block(s.Then),
	}
	if s.Else == nil || ast.IsEmpty(s.Else) {
		return stmt
	}
	if nested, ok := s.Else.(*ast.IfStmt); ok {
		stmt.Else = e.ifStmt(nested)
	} else {
		stmt.Else = e.Block(s.Else)
	}
	return stmt
}
