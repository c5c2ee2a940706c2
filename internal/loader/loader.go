// Package loader reads Java class declarations into an ast.ClassTable.
//
// Only headers and member declarations are read: modifiers, superclass,
// interfaces, fields, properties, methods, constructors and annotations with
// literal members. Method bodies are never parsed. A field without an access
// modifier is loaded as a property.
package loader

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/astforge/astforge/internal/ast"
	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

const javaExtension = ".java"

// Loader registers the classes of every source it reads in one table.
type Loader struct {
	table  *ast.ClassTable
	parser *sitter.Parser
}

// New creates a loader whose table has rootType as its universal root.
func New(rootType string) *Loader {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	return &Loader{
		table:  ast.NewClassTable(rootType),
		parser: parser,
	}
}

func (l *Loader) Table() *ast.ClassTable {
	return l.table
}

// Load reads every .java file under paths into a new table.
func Load(ctx context.Context, rootType string, paths ...string) (*ast.ClassTable, error) {
	l := New(rootType)
	if err := l.LoadPaths(ctx, paths...); err != nil {
		return nil, err
	}
	return l.Table(), nil
}

// LoadPaths reads each path, walking directories for .java files. It stops
// between files once ctx is done.
func (l *Loader) LoadPaths(ctx context.Context, paths ...string) error {
	for _, path := range paths {
		files, err := javaFiles(path)
		if err != nil {
			return err
		}
		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			if err := l.LoadSource(ctx, file, src); err != nil {
				return err
			}
		}
	}
	return nil
}

func javaFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, javaExtension) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", path, err)
	}
	return files, nil
}

// LoadSource parses src and registers its top level and nested types. file
// is only used for positions and log fields.
func (l *Loader) LoadSource(ctx context.Context, file string, src []byte) error {
	tree, err := l.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", file, err)
	}

	f := &sourceFile{
		name:   file,
		src:    src,
		loader: l,
		log:    log.WithField("file", file),
	}
	root := tree.RootNode()
	if root.HasError() {
		f.log.Warn("source contains syntax errors; erroneous declarations are skipped")
	}
	for _, node := range children(root) {
		f.typeDeclaration(node, "")
	}
	return nil
}

// sourceFile carries the state of one LoadSource call.
type sourceFile struct {
	name   string
	src    []byte
	loader *Loader
	log    *log.Entry
}

func children(node *sitter.Node) []*sitter.Node {
	count := int(node.NamedChildCount())
	result := make([]*sitter.Node, count)
	for i := 0; i < count; i++ {
		result[i] = node.NamedChild(i)
	}
	return result
}

func childOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for _, c := range children(node) {
		if c.Type() == nodeType {
			return c
		}
	}
	return nil
}

func (f *sourceFile) content(node *sitter.Node) string {
	return node.Content(f.src)
}

func (f *sourceFile) position(node *sitter.Node) ast.Position {
	start, end := node.StartPoint(), node.EndPoint()
	return ast.Position{
		File:       f.name,
		Line:       int(start.Row) + 1,
		Column:     int(start.Column) + 1,
		LastLine:   int(end.Row) + 1,
		LastColumn: int(end.Column) + 1,
	}
}

func (f *sourceFile) parseError(node *sitter.Node, what string) {
	pos := f.position(node)
	f.log.WithFields(log.Fields{
		"line":   pos.Line,
		"column": pos.Column,
		"parsed": f.content(node),
	}).Warnf("%s parse error", what)
}
