// Package hierarchy aggregates declarations across a class's superclass chain
// and interface set.
//
// Unless stated otherwise, results are ordered from the queried class up to the
// root type, so members of a subclass come before members of its superclasses.
// Every walk requires an acyclic superclass chain; see ast.ClassTable.Ancestors.
package hierarchy

import (
	"sort"

	"github.com/astforge/astforge/internal/ast"
)

// Walker answers hierarchy questions against one class table.
type Walker struct {
	classes *ast.ClassTable
}

func NewWalker(classes *ast.ClassTable) *Walker {
	return &Walker{classes: classes}
}

// Classes returns the table the walker resolves names against.
func (w *Walker) Classes() *ast.ClassTable {
	return w.classes
}

// AllMethods returns the methods declared by class, then by its superclass, and
// so on up to the root. Overridden methods appear once per declaring class.
func (w *Walker) AllMethods(class *ast.ClassNode) []*ast.MethodNode {
	result := []*ast.MethodNode{}
	for _, node := range w.classes.Ancestors(class) {
		result = append(result, node.Methods...)
	}
	return result
}

// AllProperties returns the properties of class and of every ancestor, in the
// same order as AllMethods.
func (w *Walker) AllProperties(class *ast.ClassNode) []*ast.PropertyNode {
	result := []*ast.PropertyNode{}
	for _, node := range w.classes.Ancestors(class) {
		result = append(result, node.Properties...)
	}
	return result
}

// InstanceNonPropertyFields returns the non-static fields of class that no
// property of class is backed by. Ancestors are not consulted.
func InstanceNonPropertyFields(class *ast.ClassNode) []*ast.FieldNode {
	result := []*ast.FieldNode{}
	for _, f := range class.Fields {
		if !f.IsStatic() && class.Property(f.Name) == nil {
			result = append(result, f)
		}
	}
	return result
}

// InstanceProperties returns the non-static properties of class.
func InstanceProperties(class *ast.ClassNode) []*ast.PropertyNode {
	result := []*ast.PropertyNode{}
	for _, p := range class.Properties {
		if !p.IsStatic() {
			result = append(result, p)
		}
	}
	return result
}

// InstancePropertyFields returns the backing fields of the non-static
// properties of class.
func InstancePropertyFields(class *ast.ClassNode) []*ast.FieldNode {
	result := []*ast.FieldNode{}
	for _, p := range InstanceProperties(class) {
		result = append(result, p.Field)
	}
	return result
}

// SuperNonPropertyFields returns the instance non-property fields of every
// class from the top of the hierarchy down to class itself. Unlike the other
// walks this is ordered root first, and the root type contributes nothing.
func (w *Walker) SuperNonPropertyFields(class *ast.ClassNode) []*ast.FieldNode {
	result := []*ast.FieldNode{}
	w.rootFirst(class, func(node *ast.ClassNode) {
		result = append(result, InstanceNonPropertyFields(node)...)
	})
	return result
}

// SuperPropertyFields returns the backing fields of the instance properties of
// every class from the top of the hierarchy down to class itself, root first.
func (w *Walker) SuperPropertyFields(class *ast.ClassNode) []*ast.FieldNode {
	result := []*ast.FieldNode{}
	w.rootFirst(class, func(node *ast.ClassNode) {
		result = append(result, InstancePropertyFields(node)...)
	})
	return result
}

func (w *Walker) rootFirst(class *ast.ClassNode, visit func(node *ast.ClassNode)) {
	chain := w.classes.Ancestors(class)
	for i := len(chain) - 1; i >= 0; i-- {
		if w.classes.IsRoot(chain[i]) {
			continue
		}
		visit(chain[i])
	}
}

// HasDeclaredMethod reports whether class itself declares a method called name
// taking exactly argCount parameters. A method with an unknown parameter list
// never matches.
func HasDeclaredMethod(class *ast.ClassNode, name string, argCount int) bool {
	for _, m := range class.DeclaredMethods(name) {
		if m.Parameters != nil && len(m.Parameters) == argCount {
			return true
		}
	}
	return false
}

// InterfaceSet is a set of interface names.
type InterfaceSet map[string]struct{}

func (s InterfaceSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in lexical order.
func (s InterfaceSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InterfacesAndSuperInterfaces returns the interfaces implemented by class or
// any of its superclasses. For an interface the result is the interface alone;
// the interfaces it extends are not followed.
func (w *Walker) InterfacesAndSuperInterfaces(class *ast.ClassNode) InterfaceSet {
	result := InterfaceSet{}
	if class.IsInterface() {
		result[class.Name] = struct{}{}
		return result
	}
	for _, node := range w.classes.Ancestors(class) {
		for _, name := range node.Interfaces {
			result[name] = struct{}{}
		}
	}
	return result
}

// Implements reports whether class, one of its superclasses, or one of the
// interfaces they extend, names iface as an interface.
func (w *Walker) Implements(class *ast.ClassNode, iface string) bool {
	seen := map[string]bool{}
	var pending []string
	for _, node := range w.classes.Ancestors(class) {
		pending = append(pending, node.Interfaces...)
	}
	for len(pending) > 0 {
		name := pending[0]
		pending = pending[1:]
		if seen[name] {
			continue
		}
		seen[name] = true
		if sameClass(name, iface) {
			return true
		}
		if decl, ok := w.classes.Lookup(name); ok {
			pending = append(pending, decl.Interfaces...)
		}
	}
	return false
}

// IsOrImplements reports whether class is iface or implements it.
func (w *Walker) IsOrImplements(class *ast.ClassNode, iface string) bool {
	return sameClass(class.Name, iface) || w.Implements(class, iface)
}

// IsSubtypeOf reports whether class is target, extends it, or implements it.
func (w *Walker) IsSubtypeOf(class *ast.ClassNode, target string) bool {
	for _, node := range w.classes.Ancestors(class) {
		if sameClass(node.Name, target) {
			return true
		}
	}
	return w.Implements(class, target)
}

func sameClass(a, b string) bool {
	return a == b || ast.SimpleName(a) == ast.SimpleName(b)
}
