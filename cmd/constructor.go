package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/astforge/astforge/internal/annotation"
	"github.com/astforge/astforge/internal/ast"
	"github.com/astforge/astforge/internal/codegen"
	"github.com/astforge/astforge/internal/comment"
	"github.com/astforge/astforge/internal/emit"
	"github.com/astforge/astforge/internal/hierarchy"
	"github.com/astforge/astforge/internal/util"
	"github.com/dave/dst"
	log "github.com/sirupsen/logrus"
	godiffpatch "github.com/sourcegraph/go-diff-patch"
	"github.com/spf13/cobra"
)

var (
	constructorFlags classFlags
	diffFile         string
	outputPackage    string
	propertiesOnly   bool
)

var constructorCmd = &cobra.Command{
	Use:   "constructor",
	Short: "render the default map constructor of a class as Go",
	Long:  "synthesize the default constructor of a class, which initializes every instance field from a named arguments map, and render it as Go source",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		if diffFile != "" {
			if err := validateOutputFile(diffFile); err != nil {
				return err
			}
		}

		table, class, err := constructorFlags.load(cmd.Context())
		if err != nil {
			return err
		}

		comment.EnableConsolePrinter(constructorFlags.path)
		defer comment.WriteAll()

		pkg := outputPackage
		if pkg == "" {
			pkg = cfg.OutputPackage
		}

		walker := hierarchy.NewWalker(table)
		filter := annotation.NewFilter(walker, cfg.FilterOptions()...)
		src, err := renderConstructor(walker, filter, class, pkg, propertiesOnly)
		if err != nil {
			return err
		}

		if diffFile == "" {
			_, err = cmd.OutOrStdout().Write(src)
			return err
		}
		return writeDiff(diffFile, constructorFileName(class), src)
	},
}

// constructorFields lists the fields the map constructor initializes:
// property fields of the whole hierarchy, then the other instance fields.
// A field hidden by a same-named field of a subclass is left out.
func constructorFields(walker *hierarchy.Walker, class *ast.ClassNode, propertiesOnly bool) []*ast.FieldNode {
	fields := walker.SuperPropertyFields(class)
	if !propertiesOnly {
		fields = append(fields, walker.SuperNonPropertyFields(class)...)
	}
	return visibleFields(walker.Classes().Ancestors(class), fields)
}

// visibleFields keeps one field per name, the one declared closest to the
// queried class, at the place the name first appears.
func visibleFields(chain []*ast.ClassNode, fields []*ast.FieldNode) []*ast.FieldNode {
	depth := map[string]int{}
	for i, c := range chain {
		depth[c.Name] = i
	}

	result := []*ast.FieldNode{}
	index := map[string]int{}
	for _, f := range fields {
		i, seen := index[f.Name]
		if !seen {
			index[f.Name] = len(result)
			result = append(result, f)
			continue
		}
		hidden := f
		if depth[f.Owner] < depth[result[i].Owner] {
			hidden, result[i] = result[i], f
		}
		log.WithFields(log.Fields{"field": hidden.String(), "by": result[i].String()}).Debug("hidden field skipped")
	}
	return result
}

func renderConstructor(walker *hierarchy.Walker, filter *annotation.Filter, class *ast.ClassNode, pkg string, propertiesOnly bool) ([]byte, error) {
	fields := constructorFields(walker, class, propertiesOnly)

	decl := emit.StructDecl(class, fields)
	for i, field := range emit.StructFields(decl) {
		annotateField(filter, fields[i], field)
	}

	body := codegen.DefaultConstructorBody(fields)
	fn := emit.New().MapConstructor(class, body)
	if len(fields) == 0 {
		comment.Info(class.Pos(), fn, fmt.Sprintf("%s has no instance fields to initialize", class.Name))
	}
	util.DebugNode(log.WithField("class", class.Name), "map constructor", fn)

	return emit.Source(pkg, decl, fn)
}

// annotateField records the retained annotations of a field as comments on
// the generated struct field.
func annotateField(filter *annotation.Filter, field *ast.FieldNode, node *dst.Field) {
	copied, notCopied := filter.CopyRetained(field)
	for _, a := range copied {
		node.Decs.Start.Append("// " + a.String())
	}
	for _, a := range notCopied {
		comment.Warn(a.Pos(), node,
			fmt.Sprintf("annotation %s on field %s was not copied", a, field),
			"a member value is a closure, which cannot be carried to generated code",
		)
	}
}

func constructorFileName(class *ast.ClassNode) string {
	return strings.ToLower(ast.SimpleName(class.Name)) + "_constructor.go"
}

// validateOutputFile checks that the custom output path is valid
func validateOutputFile(path string) error {
	if filepath.Ext(path) != ".diff" {
		return errors.New("output file must have a .diff extension")
	}

	_, err := os.Stat(filepath.Dir(path))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("output file directory does not exist: %v", err)
	}

	return nil
}

// writeDiff writes a patch that creates fileName with src to path.
func writeDiff(path, fileName string, src []byte) error {
	patch := godiffpatch.GeneratePatch(fileName, "", string(src))
	if err := os.WriteFile(path, []byte(patch), 0644); err != nil {
		return fmt.Errorf("failed to write diff %s: %w", path, err)
	}
	log.WithFields(log.Fields{"diff": path, "file": fileName}).Info("constructor diff written")
	return nil
}

func init() {
	constructorFlags.register(constructorCmd)
	constructorCmd.Flags().StringVar(&diffFile, "diff", "", "write a diff creating the generated file instead of printing it")
	constructorCmd.Flags().StringVar(&outputPackage, "package", "", "package clause of the generated file (default from config)")
	constructorCmd.Flags().BoolVar(&propertiesOnly, "properties-only", false, "initialize only property fields")
	cobra.MarkFlagFilename(constructorCmd.Flags(), "diff", ".diff") // for file completion
	rootCmd.AddCommand(constructorCmd)
}
