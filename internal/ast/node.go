// Package ast holds the declaration model and the expression and statement
// nodes that transformations assemble. Declarations form a tree: a class owns
// its fields, properties, methods and annotations. Links between classes
// (superclass, interfaces) and from a field to its owning class are names,
// resolved through a ClassTable, never pointers.
package ast

// Node is implemented by every declaration, expression and statement.
type Node interface {
	Pos() Position
}

// Expression is a node that yields a value.
type Expression interface {
	Node
	exprNode()
}

// Statement is a node executed for its effect.
type Statement interface {
	Node
	stmtNode()
}

// Variable is anything a VariableExpr can refer to.
type Variable interface {
	VariableName() string
	VariableType() Type
}
