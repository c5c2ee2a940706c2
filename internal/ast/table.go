package ast

import (
	"fmt"
)

// DefaultRootType is the universal root of every class hierarchy.
const DefaultRootType = "Object"

// ClassTable resolves class names to declarations. It always contains the
// root type.
type ClassTable struct {
	root    string
	classes map[string]*ClassNode
	order   []string
}

// NewClassTable creates a table whose universal root type is root, or
// DefaultRootType when root is empty.
func NewClassTable(root string) *ClassTable {
	if root == "" {
		root = DefaultRootType
	}
	t := &ClassTable{
		root:    root,
		classes: map[string]*ClassNode{},
	}
	t.register(NewClass(root, Public, ""))
	return t
}

func (t *ClassTable) register(c *ClassNode) {
	if _, ok := t.classes[c.Name]; !ok {
		t.order = append(t.order, c.Name)
	}
	t.classes[c.Name] = c
}

// Add registers a class. A class named after the root type replaces the
// built in root; any other duplicate name is an error.
func (t *ClassTable) Add(c *ClassNode) error {
	if c == nil || c.Name == "" {
		return fmt.Errorf("cannot register a class without a name")
	}
	if c.Name == t.root {
		c.SuperClass = ""
		t.register(c)
		return nil
	}
	if _, ok := t.classes[c.Name]; ok {
		return fmt.Errorf("class %s is already registered", c.Name)
	}
	t.register(c)
	return nil
}

// Lookup finds a class by its name. A qualified name that is not
// registered is retried with its simple name.
func (t *ClassTable) Lookup(name string) (*ClassNode, bool) {
	if c, ok := t.classes[name]; ok {
		return c, true
	}
	if simple := SimpleName(name); simple != name {
		c, ok := t.classes[simple]
		return c, ok
	}
	return nil, false
}

// Root returns the universal root type.
func (t *ClassTable) Root() *ClassNode {
	return t.classes[t.root]
}

// IsRoot reports whether c is the universal root type.
func (t *ClassTable) IsRoot(c *ClassNode) bool {
	return c != nil && c.Name == t.root
}

// SuperClass returns the resolved direct superclass of c. The boolean is
// false for the root, and for a class whose superclass is not registered.
func (t *ClassTable) SuperClass(c *ClassNode) (*ClassNode, bool) {
	if c == nil || c.SuperClass == "" || t.IsRoot(c) {
		return nil, false
	}
	return t.Lookup(c.SuperClass)
}

// Ancestors returns c followed by each of its superclasses, ending at the
// root type or at the first superclass that cannot be resolved.
//
// The superclass relation must be acyclic. A cycle is a broken invariant of
// the caller and panics instead of walking forever.
func (t *ClassTable) Ancestors(c *ClassNode) []*ClassNode {
	var chain []*ClassNode
	limit := len(t.classes) + 1
	for node, ok := c, c != nil; ok; node, ok = t.SuperClass(node) {
		if len(chain) == limit {
			panic(fmt.Sprintf("ast: superclass chain of %s does not reach the root type %s", c.Name, t.root))
		}
		chain = append(chain, node)
	}
	return chain
}

// Classes returns every registered class in registration order, starting
// with the root type.
func (t *ClassTable) Classes() []*ClassNode {
	result := make([]*ClassNode, 0, len(t.order))
	for _, name := range t.order {
		result = append(result, t.classes[name])
	}
	return result
}

func (t *ClassTable) Len() int {
	return len(t.classes)
}
