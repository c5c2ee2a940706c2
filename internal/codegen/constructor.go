package codegen

import (
	"github.com/astforge/astforge/internal/ast"
)

// DefaultFieldInit returns the statement a map-style constructor uses to
// initialize field from its argument map:
//
//	if (args.name == null) {
//		<no argument branch>
//	} else {
//		this.name = (T) args.name
//	}
//
// The no argument branch assigns the field's initializer when it has one that
// is not the null literal. Without one, it is a no-op for primitive types and
// assigns the empty expression otherwise.
//
// DefaultFieldInit takes the initializer out of field (see
// ast.FieldNode.TakeInitialValue), so it must be called at most once per field.
func DefaultFieldInit(field *ast.FieldNode) ast.Statement {
	name := field.Name
	init := field.TakeInitialValue()

	var noArgument ast.Statement
	switch {
	case init != nil && !ast.IsNullConstant(init):
		noArgument = AssignS(thisField(name), init)
	case field.Type.IsPrimitive():
		noArgument = ast.EmptyStatement
	default:
		noArgument = AssignS(thisField(name), ast.EmptyExpression)
	}

	return IfElseS(
		EqualsNullX(FindArg(name)),
		noArgument,
		AssignS(thisField(name), CastX(field.Type, FindArg(name))),
	)
}

// DefaultConstructorBody returns a block with one DefaultFieldInit statement per
// field, in order. Every field loses its stored initializer.
func DefaultConstructorBody(fields []*ast.FieldNode) *ast.BlockStmt {
	block := Block()
	for _, f := range fields {
		block.AddStatement(DefaultFieldInit(f))
	}
	return block
}

func thisField(name string) *ast.PropertyExpr {
	return PropX(VarX(ThisVariable), name)
}
