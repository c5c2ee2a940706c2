package ast

import (
	"strings"
)

// Type is a reference to a class by name. It never owns the class it names;
// resolve it through a ClassTable.
type Type struct {
	Name string
	// Dimensions is the array depth, 0 for a plain type.
	Dimensions int
}

var (
	// DynamicType is the zero Type, used for untyped variables.
	DynamicType = Type{}

	// ThisType and SuperType are the special receivers of this(...) and super(...) calls.
	ThisType  = Type{Name: "this"}
	SuperType = Type{Name: "super"}
)

var primitiveTypes = map[string]bool{
	"boolean": true,
	"byte":    true,
	"char":    true,
	"short":   true,
	"int":     true,
	"long":    true,
	"float":   true,
	"double":  true,
}

// MakeType parses a type name such as "int" or "java.lang.String[][]".
func MakeType(name string) Type {
	name = strings.TrimSpace(name)
	dims := 0
	for strings.HasSuffix(name, "[]") {
		name = strings.TrimSpace(strings.TrimSuffix(name, "[]"))
		dims++
	}
	return Type{Name: name, Dimensions: dims}
}

// IsPrimitive reports whether the type is one of the primitive numeric or
// boolean types, which have an implicit zero value.
func (t Type) IsPrimitive() bool {
	return t.Dimensions == 0 && primitiveTypes[t.Name]
}

// IsDynamic reports whether the type is unknown.
func (t Type) IsDynamic() bool {
	return t.Name == ""
}

// IsArray reports whether the type has at least one array dimension.
func (t Type) IsArray() bool {
	return t.Dimensions > 0
}

// ElementType strips one array dimension.
func (t Type) ElementType() Type {
	if t.Dimensions == 0 {
		return t
	}
	return Type{Name: t.Name, Dimensions: t.Dimensions - 1}
}

// SimpleName returns the name without its package qualifier.
func (t Type) SimpleName() string {
	return SimpleName(t.Name)
}

func (t Type) String() string {
	if t.Name == "" {
		return "def"
	}
	return t.Name + strings.Repeat("[]", t.Dimensions)
}

// SimpleName strips the package qualifier from a class name.
func SimpleName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Modifier is a set of declaration modifiers.
type Modifier uint16

const (
	Public Modifier = 1 << iota
	Protected
	Private
	Static
	Final
	Abstract
	Interface
	AnnotationType
	Synthetic
)

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{Public, "public"},
	{Protected, "protected"},
	{Private, "private"},
	{Static, "static"},
	{Final, "final"},
	{Abstract, "abstract"},
	{Interface, "interface"},
	{AnnotationType, "@interface"},
	{Synthetic, "synthetic"},
}

// Has reports whether every modifier in m is set.
func (mods Modifier) Has(m Modifier) bool {
	return mods&m == m
}

// HasVisibility reports whether an explicit access modifier is present.
func (mods Modifier) HasVisibility() bool {
	return mods&(Public|Protected|Private) != 0
}

func (mods Modifier) String() string {
	var parts []string
	for _, mn := range modifierNames {
		if mods.Has(mn.mod) {
			parts = append(parts, mn.name)
		}
	}
	return strings.Join(parts, " ")
}
