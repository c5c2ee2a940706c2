package loader

import (
	"strings"

	"github.com/astforge/astforge/internal/ast"
	"github.com/astforge/astforge/internal/codegen"
	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
)

var modifierKeywords = map[string]ast.Modifier{
	"public":    ast.Public,
	"protected": ast.Protected,
	"private":   ast.Private,
	"static":    ast.Static,
	"final":     ast.Final,
	"abstract":  ast.Abstract,
}

// typeDeclaration registers a class, interface or annotation type and any
// types nested in its body. Nested types are registered under their simple
// name, like top level ones.
func (f *sourceFile) typeDeclaration(node *sitter.Node, outer string) {
	var mods ast.Modifier
	switch node.Type() {
	case "class_declaration":
	case "interface_declaration":
		mods |= ast.Interface | ast.Abstract
	case "annotation_type_declaration":
		mods |= ast.Interface | ast.Abstract | ast.AnnotationType
	case "ERROR":
		f.parseError(node, "declaration")
		return
	default:
		return
	}

	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		f.parseError(node, "declaration")
		return
	}

	table := f.loader.table
	class := ast.NewClass(f.content(nameNode), mods, table.Root().Name)
	class.Position = f.position(node)

	if modifiers := childOfType(node, "modifiers"); modifiers != nil {
		class.Modifiers |= f.modifiers(modifiers, class)
	}
	if outer != "" && class.IsInterface() {
		class.Modifiers |= ast.Static
	}

	if superclass := childOfType(node, "superclass"); superclass != nil && superclass.NamedChildCount() > 0 {
		class.SuperClass = typeName(f.content(superclass.NamedChild(0)))
	}
	for _, listType := range []string{"super_interfaces", "extends_interfaces"} {
		if list := childOfType(node, listType); list != nil {
			class.Interfaces = append(class.Interfaces, f.typeList(list)...)
		}
	}

	entry := f.log.WithFields(log.Fields{"class": class.Name})
	if outer != "" {
		entry = entry.WithField("outer", outer)
	}
	if err := table.Add(class); err != nil {
		entry.WithError(err).Warn("class not registered")
		return
	}
	entry.Debug("registered class")

	body := node.ChildByFieldName("body")
	if body == nil {
		return
	}
	for _, member := range children(body) {
		f.member(class, member)
	}
}

func (f *sourceFile) typeList(node *sitter.Node) []string {
	var names []string
	list := childOfType(node, "type_list")
	if list == nil {
		list = node
	}
	for _, t := range children(list) {
		names = append(names, typeName(f.content(t)))
	}
	return names
}

func (f *sourceFile) member(class *ast.ClassNode, node *sitter.Node) {
	switch node.Type() {
	case "field_declaration", "constant_declaration":
		f.field(class, node)
	case "method_declaration", "annotation_type_element_declaration":
		f.method(class, node)
	case "constructor_declaration":
		f.constructor(class, node)
	case "class_declaration", "interface_declaration", "annotation_type_declaration":
		f.typeDeclaration(node, class.Name)
	case "ERROR":
		f.parseError(node, "member")
	}
}

// field loads every declarator of a field declaration. Fields of an
// interface are static constants; a class field without an access modifier
// is a property.
func (f *sourceFile) field(class *ast.ClassNode, node *sitter.Node) {
	var mods ast.Modifier
	var annotations []*ast.AnnotationNode
	if modifiers := childOfType(node, "modifiers"); modifiers != nil {
		holder := &ast.AnnotatedNode{}
		mods = f.modifiers(modifiers, holder)
		annotations = holder.Annotations()
	}
	if class.IsInterface() {
		mods |= ast.Public | ast.Static | ast.Final
	}

	typeNode := node.ChildByFieldName("type")
	if typeNode == nil {
		f.parseError(node, "field")
		return
	}
	baseType := typeName(f.content(typeNode))

	for _, declarator := range children(node) {
		if declarator.Type() != "variable_declarator" {
			continue
		}
		name := declarator.ChildByFieldName("name")
		if name == nil {
			f.parseError(declarator, "field")
			continue
		}

		t := ast.MakeType(baseType)
		if dims := declarator.ChildByFieldName("dimensions"); dims != nil {
			t.Dimensions += strings.Count(f.content(dims), "[")
		}

		var init ast.Expression
		if value := declarator.ChildByFieldName("value"); value != nil {
			expr, ok := f.value(value)
			if ok {
				init = expr
			} else {
				f.log.WithFields(log.Fields{
					"class": class.Name,
					"field": f.content(name),
				}).Warn("unsupported field initializer ignored")
			}
		}

		field := ast.NewField(f.content(name), mods, t, init)
		field.Position = f.position(node)
		for _, a := range annotations {
			field.AddAnnotation(a)
		}

		if class.IsInterface() || mods.HasVisibility() {
			class.AddField(field)
			continue
		}
		field.Modifiers |= ast.Private
		property := ast.NewProperty(field, mods|ast.Public)
		property.Position = field.Position
		for _, a := range annotations {
			property.AddAnnotation(a)
		}
		class.AddProperty(property)
	}
}

func (f *sourceFile) method(class *ast.ClassNode, node *sitter.Node) {
	name := node.ChildByFieldName("name")
	if name == nil {
		f.parseError(node, "method")
		return
	}

	returnType := ast.DynamicType
	if t := node.ChildByFieldName("type"); t != nil {
		returnType = ast.MakeType(typeName(f.content(t)))
	}

	params := codegen.Params()
	if p := node.ChildByFieldName("parameters"); p != nil {
		params = f.parameters(p)
	}

	var code ast.Statement
	if node.ChildByFieldName("body") != nil {
		code = codegen.Block()
	}

	method := ast.NewMethod(f.content(name), 0, returnType, params, code)
	method.Position = f.position(node)
	if modifiers := childOfType(node, "modifiers"); modifiers != nil {
		method.Modifiers = f.modifiers(modifiers, method)
	}
	if class.IsInterface() {
		method.Modifiers |= ast.Public
		if code == nil {
			method.Modifiers |= ast.Abstract
		}
	}
	class.AddMethod(method)
}

func (f *sourceFile) constructor(class *ast.ClassNode, node *sitter.Node) {
	params := codegen.Params()
	if p := node.ChildByFieldName("parameters"); p != nil {
		params = f.parameters(p)
	}

	ctor := ast.NewMethod(ast.ConstructorName, 0, class.Type(), params, codegen.Block())
	ctor.Position = f.position(node)
	if modifiers := childOfType(node, "modifiers"); modifiers != nil {
		ctor.Modifiers = f.modifiers(modifiers, ctor)
	}
	class.AddConstructor(ctor)
}

func (f *sourceFile) parameters(node *sitter.Node) []*ast.Parameter {
	params := codegen.Params()
	for _, p := range children(node) {
		var t ast.Type
		var nameNode *sitter.Node

		switch p.Type() {
		case "formal_parameter":
			typeNode := p.ChildByFieldName("type")
			nameNode = p.ChildByFieldName("name")
			if typeNode == nil || nameNode == nil {
				f.parseError(p, "parameter")
				continue
			}
			t = ast.MakeType(typeName(f.content(typeNode)))
			if dims := p.ChildByFieldName("dimensions"); dims != nil {
				t.Dimensions += strings.Count(f.content(dims), "[")
			}
		case "spread_parameter":
			// modifiers? type ... variable_declarator
			for _, c := range children(p) {
				switch c.Type() {
				case "modifiers":
				case "variable_declarator":
					nameNode = c.ChildByFieldName("name")
				default:
					if t.Name == "" {
						t = ast.MakeType(typeName(f.content(c)))
					}
				}
			}
			if nameNode == nil {
				f.parseError(p, "parameter")
				continue
			}
			t.Dimensions++
		default:
			continue
		}

		param := codegen.Param(t, f.content(nameNode))
		param.Position = f.position(p)
		if modifiers := childOfType(p, "modifiers"); modifiers != nil {
			f.modifiers(modifiers, param)
		}
		params = append(params, param)
	}
	return params
}

// modifiers returns the keyword modifiers of node and adds its annotations
// to target.
func (f *sourceFile) modifiers(node *sitter.Node, target ast.Annotated) ast.Modifier {
	var mods ast.Modifier
	for i := 0; i < int(node.ChildCount()); i++ {
		c := node.Child(i)
		switch c.Type() {
		case "marker_annotation", "annotation":
			if a := f.annotation(c); a != nil {
				target.AddAnnotation(a)
			}
		default:
			mods |= modifierKeywords[c.Type()]
		}
	}
	return mods
}

// typeName strips type arguments and whitespace from a type as written,
// keeping array brackets.
func typeName(text string) string {
	var sb strings.Builder
	depth := 0
	for _, r := range text {
		switch {
		case r == '<':
			depth++
		case r == '>':
			depth--
		case depth > 0:
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
