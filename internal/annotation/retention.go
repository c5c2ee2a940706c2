// Package annotation decides which annotations of a declaration are carried
// over to a declaration generated from it.
package annotation

import (
	"github.com/astforge/astforge/internal/ast"
	"github.com/astforge/astforge/internal/hierarchy"
)

const (
	// DefaultRetentionType is the meta-annotation that declares the retention
	// policy of an annotation type.
	DefaultRetentionType = "Retention"

	// DefaultClosureMarker is the type every generated closure class implements.
	DefaultClosureMarker = "GeneratedClosure"

	// RetentionRuntime and RetentionClass are the retention policies that
	// survive past source compilation.
	RetentionRuntime = "RUNTIME"
	RetentionClass   = "CLASS"

	retentionValueMember = "value"
)

// Filter copies retained annotations. It resolves annotation types and closure
// classes through a class table and never modifies them.
type Filter struct {
	walker        *hierarchy.Walker
	retentionType string
	closureMarker string
}

type Option func(*Filter)

// WithRetentionType changes the name of the retention meta-annotation.
func WithRetentionType(name string) Option {
	return func(f *Filter) {
		if name != "" {
			f.retentionType = name
		}
	}
}

// WithClosureMarker changes the type that identifies generated closure classes.
func WithClosureMarker(name string) Option {
	return func(f *Filter) {
		if name != "" {
			f.closureMarker = name
		}
	}
}

func NewFilter(walker *hierarchy.Walker, opts ...Option) *Filter {
	f := &Filter{
		walker:        walker,
		retentionType: DefaultRetentionType,
		closureMarker: DefaultClosureMarker,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CopyRetained returns copies of the annotations of decl whose type is retained
// at RUNTIME or CLASS level, positioned at decl. Annotations with a closure
// valued member are returned uncopied in notCopied so the caller can report
// them. Every other annotation, including one whose type declares no retention
// policy or an unrecognized one, is left out of both lists.
func (f *Filter) CopyRetained(decl ast.Annotated) (copied, notCopied []*ast.AnnotationNode) {
	copied = []*ast.AnnotationNode{}
	notCopied = []*ast.AnnotationNode{}

	for _, annotation := range decl.Annotations() {
		retention, ok := f.retentionOf(annotation)
		if !ok {
			continue
		}

		if f.hasClosureMember(annotation) {
			notCopied = append(notCopied, annotation)
			continue
		}

		if !isRetainedPolicy(retention.Member(retentionValueMember)) {
			continue
		}

		copied = append(copied, copyAnnotation(annotation, decl))
	}
	return copied, notCopied
}

// CopyTo attaches the retained annotations of source to target and returns the
// ones that could not be copied.
func (f *Filter) CopyTo(source, target ast.Annotated) []*ast.AnnotationNode {
	copied, notCopied := f.CopyRetained(source)
	for _, a := range copied {
		target.AddAnnotation(a)
	}
	return notCopied
}

// retentionOf returns the first retention meta-annotation on the annotation's
// own type.
func (f *Filter) retentionOf(annotation *ast.AnnotationNode) (*ast.AnnotationNode, bool) {
	decl, ok := f.walker.Classes().Lookup(annotation.Type.Name)
	if !ok {
		return nil, false
	}
	retentions := decl.AnnotationsOf(f.retentionType)
	if len(retentions) == 0 {
		return nil, false
	}
	return retentions[0], true
}

// hasClosureMember checks every member, not only the first, for a closure or
// a class literal naming a generated closure class.
func (f *Filter) hasClosureMember(annotation *ast.AnnotationNode) bool {
	for _, m := range annotation.Members() {
		switch v := m.Value.(type) {
		case *ast.ClosureExpr:
			return true
		case *ast.ClassExpr:
			if f.isGeneratedClosure(v.Type) {
				return true
			}
		}
	}
	return false
}

// isGeneratedClosure is false for types the table cannot resolve.
func (f *Filter) isGeneratedClosure(t ast.Type) bool {
	if t.IsArray() {
		return false
	}
	class, ok := f.walker.Classes().Lookup(t.Name)
	if !ok {
		return false
	}
	return f.walker.IsSubtypeOf(class, f.closureMarker)
}

// isRetainedPolicy matches the literal text of a Type.NAME reference. The
// referenced constant is not resolved.
func isRetainedPolicy(value ast.Expression) bool {
	prop, ok := value.(*ast.PropertyExpr)
	if !ok {
		return false
	}
	name, ok := prop.PropertyName()
	return ok && (name == RetentionRuntime || name == RetentionClass)
}

func copyAnnotation(annotation *ast.AnnotationNode, host ast.Node) *ast.AnnotationNode {
	result := ast.NewAnnotation(annotation.Type)
	for _, m := range annotation.Members() {
		result.AddMember(m.Name, m.Value)
	}
	result.SetSourcePosition(host)
	return result
}
