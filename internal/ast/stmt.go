package ast

type (
	// BlockStmt is a sequence of statements with an optional variable scope.
	BlockStmt struct {
		Position
		Stmts []Statement
		Scope *VariableScope
	}

	ExpressionStmt struct {
		Position
		Expr Expression
	}

	IfStmt struct {
		Position
		Cond *BooleanExpr
		Then Statement
		Else Statement
	}

	ReturnStmt struct {
		Position
		Expr Expression
	}

	// EmptyStmt does nothing. Use the shared EmptyStatement.
	EmptyStmt struct {
		Position
	}
)

func (*BlockStmt) stmtNode()      {}
func (*ExpressionStmt) stmtNode() {}
func (*IfStmt) stmtNode()         {}
func (*ReturnStmt) stmtNode()     {}
func (*EmptyStmt) stmtNode()      {}

// EmptyStatement is the shared no-op statement. It must never be mutated.
var EmptyStatement = &EmptyStmt{}

// IsEmpty reports whether stmt is nil or a no-op.
func IsEmpty(stmt Statement) bool {
	switch s := stmt.(type) {
	case nil:
		return true
	case *EmptyStmt:
		return true
	case *BlockStmt:
		return s == nil || len(s.Stmts) == 0
	}
	return false
}

// AddStatement appends stmt to the block.
func (b *BlockStmt) AddStatement(stmt Statement) {
	b.Stmts = append(b.Stmts, stmt)
}

// VariableScope records the names declared in a block.
type VariableScope struct {
	Parent   *VariableScope
	Declared []string
}

// Declare adds name to the scope.
func (s *VariableScope) Declare(name string) {
	s.Declared = append(s.Declared, name)
}

// IsDeclared reports whether name is declared in this scope or a parent.
func (s *VariableScope) IsDeclared(name string) bool {
	for scope := s; scope != nil; scope = scope.Parent {
		for _, d := range scope.Declared {
			if d == name {
				return true
			}
		}
	}
	return false
}
