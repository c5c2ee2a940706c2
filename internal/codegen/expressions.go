package codegen

import (
	"github.com/astforge/astforge/internal/ast"
)

func binaryX(builder string, lhs ast.Expression, op ast.Token, rhs ast.Expression) *ast.BinaryExpr {
	mustExpr(builder, lhs, rhs)
	return &ast.BinaryExpr{Left: lhs, Op: op, Right: rhs}
}

// AndX returns `lhs && rhs`.
func AndX(lhs, rhs ast.Expression) *ast.BinaryExpr {
	return binaryX("AndX", lhs, ast.AND, rhs)
}

// OrX returns `lhs || rhs`.
func OrX(lhs, rhs ast.Expression) *ast.BinaryExpr {
	return binaryX("OrX", lhs, ast.OR, rhs)
}

// EqX returns `lhs == rhs`.
func EqX(lhs, rhs ast.Expression) *ast.BinaryExpr {
	return binaryX("EqX", lhs, ast.EQ, rhs)
}

// NeX returns `lhs != rhs`.
func NeX(lhs, rhs ast.Expression) *ast.BinaryExpr {
	return binaryX("NeX", lhs, ast.NE, rhs)
}

// LtX returns `lhs < rhs`.
func LtX(lhs, rhs ast.Expression) *ast.BinaryExpr {
	return binaryX("LtX", lhs, ast.LT, rhs)
}

// CmpX returns `lhs <=> rhs`.
func CmpX(lhs, rhs ast.Expression) *ast.BinaryExpr {
	return binaryX("CmpX", lhs, ast.CMP, rhs)
}

// PlusX returns `lhs + rhs`.
func PlusX(lhs, rhs ast.Expression) *ast.BinaryExpr {
	return binaryX("PlusX", lhs, ast.PLUS, rhs)
}

// IndexX returns `target[value]`.
func IndexX(target, value ast.Expression) *ast.BinaryExpr {
	return binaryX("IndexX", target, ast.INDEX, value)
}

// AssignX returns the expression `target = value`.
func AssignX(target, value ast.Expression) *ast.BinaryExpr {
	return binaryX("AssignX", target, ast.ASSIGN, value)
}

// Args returns an argument list holding exprs in order.
func Args(exprs ...ast.Expression) *ast.ArgumentListExpr {
	list := make([]ast.Expression, 0, len(exprs))
	list = append(list, exprs...)
	return &ast.ArgumentListExpr{Exprs: list}
}

// ArgsFromNames returns an argument list of variable references, one per name.
func ArgsFromNames(names ...string) *ast.ArgumentListExpr {
	list := make([]ast.Expression, 0, len(names))
	for _, name := range names {
		list = append(list, VarX(name))
	}
	return &ast.ArgumentListExpr{Exprs: list}
}

// ArgsFromParams returns an argument list forwarding each parameter by name.
func ArgsFromParams(params []*ast.Parameter) *ast.ArgumentListExpr {
	list := make([]ast.Expression, 0, len(params))
	for _, p := range params {
		list = append(list, VarOfX(p))
	}
	return &ast.ArgumentListExpr{Exprs: list}
}

// AttrX returns the direct field access `object.@attribute`.
func AttrX(object, attribute ast.Expression) *ast.AttributeExpr {
	mustExpr("AttrX", object, attribute)
	return &ast.AttributeExpr{Object: object, Attribute: attribute}
}

// CallX returns `receiver.method(args)`. A nil args is an empty argument list.
func CallX(receiver ast.Expression, method string, args *ast.ArgumentListExpr) *ast.MethodCallExpr {
	return CallMethodX(receiver, ConstX(method), args)
}

// CallMethodX returns a call whose method name is itself an expression.
func CallMethodX(receiver, method ast.Expression, args *ast.ArgumentListExpr) *ast.MethodCallExpr {
	mustExpr("CallMethodX", receiver, method)
	return &ast.MethodCallExpr{Receiver: receiver, Method: method, Args: argsOrEmpty(args)}
}

// CallStaticX returns `Owner.method(args)` for a static method.
func CallStaticX(owner ast.Type, method string, args *ast.ArgumentListExpr) *ast.StaticMethodCallExpr {
	return &ast.StaticMethodCallExpr{Owner: owner, Method: method, Args: argsOrEmpty(args)}
}

// CallThisX returns `this.method(args)`.
func CallThisX(method string, args *ast.ArgumentListExpr) *ast.MethodCallExpr {
	return CallX(VarX(ThisVariable), method, args)
}

// CallSuperX returns `super.method(args)`.
func CallSuperX(method string, args *ast.ArgumentListExpr) *ast.MethodCallExpr {
	return CallX(VarX(SuperVariable), method, args)
}

// CastX returns `(t) expr`.
func CastX(t ast.Type, expr ast.Expression) *ast.CastExpr {
	mustExpr("CastX", expr)
	return &ast.CastExpr{Type: t, Expr: expr}
}

// CastIgnoreAutoboxingX returns `(t) expr` where primitive boxing is skipped.
func CastIgnoreAutoboxingX(t ast.Type, expr ast.Expression) *ast.CastExpr {
	cast := CastX(t, expr)
	cast.IgnoreAutoboxing = true
	return cast
}

// ClassX returns the class literal `T.class`.
func ClassX(t ast.Type) *ast.ClassExpr {
	return &ast.ClassExpr{Type: t}
}

// ClosureX returns a closure over code. A nil params is an empty list.
func ClosureX(params []*ast.Parameter, code ast.Statement) *ast.ClosureExpr {
	mustStmt("ClosureX", code)
	return &ast.ClosureExpr{Params: Params(params...), Code: code}
}

// ConstX returns a literal. ConstX(nil) is the null literal.
func ConstX(value any) *ast.ConstantExpr {
	return &ast.ConstantExpr{Value: value}
}

// ConstPrimitiveX returns a literal that keeps its primitive type instead of
// being boxed.
func ConstPrimitiveX(value any) *ast.ConstantExpr {
	return &ast.ConstantExpr{Value: value, KeepPrimitive: true}
}

// CtorX returns `new T(args)`. A nil args is an empty argument list.
func CtorX(t ast.Type, args *ast.ArgumentListExpr) *ast.ConstructorCallExpr {
	return &ast.ConstructorCallExpr{Type: t, Args: argsOrEmpty(args)}
}

// EqualsNullX returns the boolean `arg == null`.
func EqualsNullX(arg ast.Expression) *ast.BooleanExpr {
	return &ast.BooleanExpr{Expr: EqX(arg, ConstX(nil))}
}

// NotNullX returns the boolean `arg != null`.
func NotNullX(arg ast.Expression) *ast.BooleanExpr {
	return &ast.BooleanExpr{Expr: NeX(arg, ConstX(nil))}
}

// IsTrueX returns the boolean `arg == true`.
func IsTrueX(arg ast.Expression) *ast.BooleanExpr {
	return &ast.BooleanExpr{Expr: EqX(arg, ConstX(true))}
}

// IsZeroX returns the boolean `expr == 0`.
func IsZeroX(expr ast.Expression) *ast.BooleanExpr {
	return &ast.BooleanExpr{Expr: EqX(expr, ConstX(0))}
}

// IsOneX returns the boolean `expr == 1`.
func IsOneX(expr ast.Expression) *ast.BooleanExpr {
	return &ast.BooleanExpr{Expr: EqX(expr, ConstX(1))}
}

// IsInstanceOfX returns the boolean `object instanceof T`.
func IsInstanceOfX(object ast.Expression, t ast.Type) *ast.BooleanExpr {
	return &ast.BooleanExpr{Expr: binaryX("IsInstanceOfX", object, ast.INSTANCEOF, ClassX(t))}
}

// NotX returns `!expr`, with expr in boolean position.
func NotX(expr ast.Expression) *ast.NotExpr {
	mustExpr("NotX", expr)
	return &ast.NotExpr{Expr: asBoolean(expr)}
}

// SameX returns the identity comparison `self.is(other)`.
func SameX(self, other ast.Expression) *ast.BooleanExpr {
	return &ast.BooleanExpr{Expr: CallX(self, "is", Args(other))}
}

// HasClassX returns `T.class == instance.getClass()`.
func HasClassX(instance ast.Expression, t ast.Type) *ast.BinaryExpr {
	return EqX(ClassX(t), CallX(instance, "getClass", nil))
}

// TernaryX returns `cond ? whenTrue : whenFalse`.
func TernaryX(cond, whenTrue, whenFalse ast.Expression) *ast.TernaryExpr {
	mustExpr("TernaryX", cond, whenTrue, whenFalse)
	return &ast.TernaryExpr{Cond: asBoolean(cond), True: whenTrue, False: whenFalse}
}

// PropX returns `owner.property`.
func PropX(owner ast.Expression, property string) *ast.PropertyExpr {
	return PropExprX(owner, ConstX(property))
}

// PropExprX returns a property access whose name is itself an expression.
func PropExprX(owner, property ast.Expression) *ast.PropertyExpr {
	mustExpr("PropExprX", owner, property)
	return &ast.PropertyExpr{Object: owner, Property: property}
}

// FieldX returns a direct reference to a field declaration.
func FieldX(field *ast.FieldNode) *ast.FieldExpr {
	if field == nil {
		panic("codegen: FieldX: field is nil")
	}
	return &ast.FieldExpr{Field: field}
}

// FieldOfX returns a direct reference to the field `name` declared by owner.
// The field must exist.
func FieldOfX(owner *ast.ClassNode, name string) *ast.FieldExpr {
	field := owner.Field(name)
	if field == nil {
		panic("codegen: FieldOfX: " + owner.Name + " declares no field " + name)
	}
	return FieldX(field)
}

// FindArg returns `args.name`, the lookup of one entry of the map argument
// of a generated constructor.
func FindArg(name string) *ast.PropertyExpr {
	return PropX(VarX(ArgumentsVariable), name)
}

// VarX returns an untyped variable reference.
func VarX(name string) *ast.VariableExpr {
	return &ast.VariableExpr{Name: name}
}

// VarTypedX returns a variable reference with a declared type.
func VarTypedX(name string, t ast.Type) *ast.VariableExpr {
	return &ast.VariableExpr{Name: name, Type: t}
}

// VarOfX returns a reference to a field or parameter.
func VarOfX(v ast.Variable) *ast.VariableExpr {
	return VarTypedX(v.VariableName(), v.VariableType())
}

// HasEqualFieldX returns `field == other.field`.
func HasEqualFieldX(field *ast.FieldNode, other ast.Expression) *ast.BinaryExpr {
	return EqX(VarOfX(field), PropX(other, field.Name))
}

// HasEqualPropertyX returns `this.getP() == other.getP()`.
func HasEqualPropertyX(property *ast.PropertyNode, other ast.Expression) *ast.BinaryExpr {
	getter := GetterName(property)
	return EqX(CallThisX(getter, nil), CallX(other, getter, nil))
}

// HasSameFieldX returns `field.is(other.field)`.
func HasSameFieldX(field *ast.FieldNode, other ast.Expression) *ast.BooleanExpr {
	return SameX(VarOfX(field), PropX(other, field.Name))
}

// HasSamePropertyX returns `this.getP().is(other.getP())`.
func HasSamePropertyX(property *ast.PropertyNode, other ast.Expression) *ast.BooleanExpr {
	getter := GetterName(property)
	return SameX(CallThisX(getter, nil), CallX(other, getter, nil))
}
