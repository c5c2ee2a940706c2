package emit

import (
	"go/token"
	"reflect"
	"testing"

	"github.com/dave/dst"
	"github.com/stretchr/testify/assert"
)

// expressionsEqual reports whether two lowered Go expressions have the same
// shape, ignoring decorations.
func expressionsEqual(a dst.Expr, b dst.Expr) bool {
	return compareExpr(a, b)
}

func compareExprs(a, b []dst.Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !compareExpr(a[i], b[i]) {
			return false
		}
	}
	return true
}

func compareExpr(a dst.Expr, b dst.Expr) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	switch a := a.(type) {
	case *dst.BasicLit:
		b := b.(*dst.BasicLit)
		return a.Kind == b.Kind && a.Value == b.Value
	case *dst.Ident:
		b := b.(*dst.Ident)
		return a.Name == b.Name && a.Path == b.Path
	case *dst.BinaryExpr:
		b := b.(*dst.BinaryExpr)
		return compareExpr(a.X, b.X) && compareExpr(a.Y, b.Y) && a.Op == b.Op
	case *dst.CallExpr:
		b := b.(*dst.CallExpr)
		return compareExpr(a.Fun, b.Fun) && compareExprs(a.Args, b.Args)
	case *dst.ParenExpr:
		b := b.(*dst.ParenExpr)
		return compareExpr(a.X, b.X)
	case *dst.SelectorExpr:
		b := b.(*dst.SelectorExpr)
		return compareExpr(a.X, b.X) && compareExpr(a.Sel, b.Sel)
	case *dst.StarExpr:
		b := b.(*dst.StarExpr)
		return compareExpr(a.X, b.X)
	case *dst.UnaryExpr:
		b := b.(*dst.UnaryExpr)
		return a.Op == b.Op && compareExpr(a.X, b.X)
	case *dst.IndexExpr:
		b := b.(*dst.IndexExpr)
		return compareExpr(a.X, b.X) && compareExpr(a.Index, b.Index)
	case *dst.TypeAssertExpr:
		b := b.(*dst.TypeAssertExpr)
		return compareExpr(a.X, b.X) && compareExpr(a.Type, b.Type)
	case *dst.ArrayType:
		b := b.(*dst.ArrayType)
		return compareExpr(a.Len, b.Len) && compareExpr(a.Elt, b.Elt)
	case *dst.MapType:
		b := b.(*dst.MapType)
		return compareExpr(a.Key, b.Key) && compareExpr(a.Value, b.Value)
	case *dst.CompositeLit:
		b := b.(*dst.CompositeLit)
		return compareExpr(a.Type, b.Type) && compareExprs(a.Elts, b.Elts)
	default:
		return false
	}
}

func TestExpressionsEqual(t *testing.T) {
	tests := []struct {
		name string
		a    dst.Expr
		b    dst.Expr
		want bool
	}{
		{
			name: "both nil",
			want: true,
		},
		{
			name: "one nil",
			a:    dst.NewIdent("x"),
			want: false,
		},
		{
			name: "different node types",
			a:    dst.NewIdent("x"),
			b:    &dst.BasicLit{Kind: token.STRING, Value: `"x"`},
			want: false,
		},
		{
			name: "identical string literals",
			a:    &dst.BasicLit{Kind: token.STRING, Value: `"count"`},
			b:    &dst.BasicLit{Kind: token.STRING, Value: `"count"`},
			want: true,
		},
		{
			name: "identifiers with different import paths",
			a:    &dst.Ident{Name: "TypeFor", Path: "reflect"},
			b:    &dst.Ident{Name: "TypeFor"},
			want: false,
		},
		{
			name: "identical map index",
			a: &dst.IndexExpr{
				X:     dst.NewIdent("args"),
				Index: &dst.BasicLit{Kind: token.STRING, Value: `"name"`},
			},
			b: &dst.IndexExpr{
				X:     dst.NewIdent("args"),
				Index: &dst.BasicLit{Kind: token.STRING, Value: `"name"`},
			},
			want: true,
		},
		{
			name: "different map keys",
			a: &dst.IndexExpr{
				X:     dst.NewIdent("args"),
				Index: &dst.BasicLit{Kind: token.STRING, Value: `"name"`},
			},
			b: &dst.IndexExpr{
				X:     dst.NewIdent("args"),
				Index: &dst.BasicLit{Kind: token.STRING, Value: `"count"`},
			},
			want: false,
		},
		{
			name: "identical type assertions",
			a: &dst.TypeAssertExpr{
				X:    dst.NewIdent("v"),
				Type: &dst.StarExpr{X: dst.NewIdent("Foo")},
			},
			b: &dst.TypeAssertExpr{
				X:    dst.NewIdent("v"),
				Type: &dst.StarExpr{X: dst.NewIdent("Foo")},
			},
			want: true,
		},
		{
			name: "type assertions to different types",
			a: &dst.TypeAssertExpr{
				X:    dst.NewIdent("v"),
				Type: dst.NewIdent("int32"),
			},
			b: &dst.TypeAssertExpr{
				X:    dst.NewIdent("v"),
				Type: dst.NewIdent("int64"),
			},
			want: false,
		},
		{
			name: "identical slice literals",
			a: &dst.CompositeLit{
				Type: &dst.ArrayType{Elt: dst.NewIdent("any")},
				Elts: []dst.Expr{dst.NewIdent("a"), dst.NewIdent("b")},
			},
			b: &dst.CompositeLit{
				Type: &dst.ArrayType{Elt: dst.NewIdent("any")},
				Elts: []dst.Expr{dst.NewIdent("a"), dst.NewIdent("b")},
			},
			want: true,
		},
		{
			name: "slice literals of different length",
			a: &dst.CompositeLit{
				Type: &dst.ArrayType{Elt: dst.NewIdent("any")},
				Elts: []dst.Expr{dst.NewIdent("a")},
			},
			b: &dst.CompositeLit{
				Type: &dst.ArrayType{Elt: dst.NewIdent("any")},
				Elts: []dst.Expr{dst.NewIdent("a"), dst.NewIdent("b")},
			},
			want: false,
		},
		{
			name: "different map types",
			a:    &dst.MapType{Key: dst.NewIdent("string"), Value: dst.NewIdent("any")},
			b:    &dst.MapType{Key: dst.NewIdent("string"), Value: dst.NewIdent("int")},
			want: false,
		},
		{
			name: "different binary operators",
			a: &dst.BinaryExpr{
				X:  dst.NewIdent("a"),
				Op: token.EQL,
				Y:  dst.NewIdent("nil"),
			},
			b: &dst.BinaryExpr{
				X:  dst.NewIdent("a"),
				Op: token.NEQ,
				Y:  dst.NewIdent("nil"),
			},
			want: false,
		},
		{
			name: "identical method calls",
			a: &dst.CallExpr{
				Fun:  &dst.SelectorExpr{X: dst.NewIdent("this"), Sel: dst.NewIdent("equals")},
				Args: []dst.Expr{dst.NewIdent("other")},
			},
			b: &dst.CallExpr{
				Fun:  &dst.SelectorExpr{X: dst.NewIdent("this"), Sel: dst.NewIdent("equals")},
				Args: []dst.Expr{dst.NewIdent("other")},
			},
			want: true,
		},
		{
			name: "function literals are never equal",
			a:    &dst.FuncLit{},
			b:    &dst.FuncLit{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := expressionsEqual(tt.a, tt.b)
			assert.Equal(t, tt.want, got)
		})
	}
}

func BenchmarkExpressionsEqual(b *testing.B) {
	build := func() dst.Expr {
		return &dst.TypeAssertExpr{
			X: &dst.IndexExpr{
				X:     dst.NewIdent("args"),
				Index: &dst.BasicLit{Kind: token.STRING, Value: `"count"`},
			},
			Type: dst.NewIdent("int32"),
		}
	}
	expr1, expr2 := build(), build()

	for i := 0; i < b.N; i++ {
		expressionsEqual(expr1, expr2)
	}
}
