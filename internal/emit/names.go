package emit

import (
	"go/token"

	"github.com/dave/dst"
)

// GoName maps a class-language identifier to a Go identifier. Names that are
// Go keywords get a trailing underscore, so a field called type becomes type_.
func GoName(name string) string {
	if token.IsKeyword(name) {
		return name + "_"
	}
	return name
}

func ident(name string) *dst.Ident {
	return dst.NewIdent(GoName(name))
}
