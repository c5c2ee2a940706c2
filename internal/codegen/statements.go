package codegen

import (
	"github.com/astforge/astforge/internal/ast"
)

// Stmt wraps expr in an expression statement.
func Stmt(expr ast.Expression) *ast.ExpressionStmt {
	mustExpr("Stmt", expr)
	return &ast.ExpressionStmt{Expr: expr}
}

// AssignS returns the statement `target = value`.
func AssignS(target, value ast.Expression) *ast.ExpressionStmt {
	return Stmt(AssignX(target, value))
}

// DeclS returns the declaration statement `def target = init`.
func DeclS(target, init ast.Expression) *ast.ExpressionStmt {
	mustExpr("DeclS", target, init)
	return Stmt(&ast.DeclarationExpr{Target: target, Init: init})
}

// Block returns a block holding stmts in order.
func Block(stmts ...ast.Statement) *ast.BlockStmt {
	block := &ast.BlockStmt{Stmts: make([]ast.Statement, 0, len(stmts))}
	for _, s := range stmts {
		block.AddStatement(s)
	}
	return block
}

// BlockWithScope returns a block bound to the given variable scope.
func BlockWithScope(scope *ast.VariableScope, stmts ...ast.Statement) *ast.BlockStmt {
	block := Block(stmts...)
	block.Scope = scope
	return block
}

// IfS returns `if (cond) then` with an empty else branch.
func IfS(cond ast.Expression, then ast.Statement) *ast.IfStmt {
	return IfElseS(cond, then, ast.EmptyStatement)
}

// IfExprS returns `if (cond) expr`.
func IfExprS(cond, expr ast.Expression) *ast.IfStmt {
	return IfS(cond, Stmt(expr))
}

// IfElseS returns `if (cond) then else otherwise`. The condition is placed in
// boolean position.
func IfElseS(cond ast.Expression, then, otherwise ast.Statement) *ast.IfStmt {
	mustExpr("IfElseS", cond)
	mustStmt("IfElseS", then, otherwise)
	return &ast.IfStmt{Cond: asBoolean(cond), Then: then, Else: otherwise}
}

// ReturnS returns `return expr`.
func ReturnS(expr ast.Expression) *ast.ReturnStmt {
	mustExpr("ReturnS", expr)
	return &ast.ReturnStmt{Expr: expr}
}

// CtorSuperS returns the statement `super(args)`.
func CtorSuperS(args *ast.ArgumentListExpr) *ast.ExpressionStmt {
	return Stmt(CtorX(ast.SuperType, args))
}

// CtorThisS returns the statement `this(args)`.
func CtorThisS(args *ast.ArgumentListExpr) *ast.ExpressionStmt {
	return Stmt(CtorX(ast.ThisType, args))
}

// SafeExpression returns `if (fieldExpr == null) fieldExpr else expr`.
func SafeExpression(fieldExpr, expr ast.Expression) *ast.IfStmt {
	return &ast.IfStmt{
		Cond: EqualsNullX(fieldExpr),
		Then: Stmt(fieldExpr),
		Else: Stmt(expr),
	}
}
