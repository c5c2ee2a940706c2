package ast

// Annotated is a declaration that carries annotations.
type Annotated interface {
	Node
	Annotations() []*AnnotationNode
	AddAnnotation(annotation *AnnotationNode)
}

// AnnotatedNode is embedded by every declaration.
type AnnotatedNode struct {
	Position
	annotations []*AnnotationNode
}

func (n *AnnotatedNode) Annotations() []*AnnotationNode {
	return n.annotations
}

func (n *AnnotatedNode) AddAnnotation(annotation *AnnotationNode) {
	n.annotations = append(n.annotations, annotation)
}

// AnnotationsOf returns the annotations whose type is typeName. Qualified
// and simple names match each other, so "Retention" finds
// @java.lang.annotation.Retention.
func (n *AnnotatedNode) AnnotationsOf(typeName string) []*AnnotationNode {
	var result []*AnnotationNode
	for _, a := range n.annotations {
		if a.Type.Name == typeName || a.Type.SimpleName() == SimpleName(typeName) {
			result = append(result, a)
		}
	}
	return result
}

// AnnotationMember is one name/value pair of an annotation.
type AnnotationMember struct {
	Name  string
	Value Expression
}

// AnnotationNode is a use of an annotation type on a declaration. Members
// keep their insertion order.
type AnnotationNode struct {
	Position
	Type    Type
	members []AnnotationMember
}

func NewAnnotation(t Type) *AnnotationNode {
	return &AnnotationNode{Type: t}
}

// AddMember sets the value of a member. An existing member keeps its place
// in the order and has its value replaced.
func (a *AnnotationNode) AddMember(name string, value Expression) {
	for i := range a.members {
		if a.members[i].Name == name {
			a.members[i].Value = value
			return
		}
	}
	a.members = append(a.members, AnnotationMember{Name: name, Value: value})
}

// Member returns the value of the named member, or nil.
func (a *AnnotationNode) Member(name string) Expression {
	for _, m := range a.members {
		if m.Name == name {
			return m.Value
		}
	}
	return nil
}

// Members returns the members in insertion order. The slice is a copy; the
// values are shared.
func (a *AnnotationNode) Members() []AnnotationMember {
	result := make([]AnnotationMember, len(a.members))
	copy(result, a.members)
	return result
}

func (a *AnnotationNode) String() string {
	return "@" + a.Type.String()
}
