package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/astforge/astforge/internal/annotation"
	"github.com/astforge/astforge/internal/ast"
	"github.com/astforge/astforge/internal/comment"
	"github.com/astforge/astforge/internal/hierarchy"
	"github.com/spf13/cobra"
)

var annotationsFlags classFlags

var annotationsCmd = &cobra.Command{
	Use:   "annotations",
	Short: "print the annotations a class and its members would carry over",
	Long:  "print, for a class and each of its members, the annotations retained at RUNTIME or CLASS level; annotations with closure members are reported as warnings",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, class, err := annotationsFlags.load(cmd.Context())
		if err != nil {
			return err
		}

		comment.EnableConsolePrinter(annotationsFlags.path)
		defer comment.WriteAll()

		filter := annotation.NewFilter(hierarchy.NewWalker(table), cfg.FilterOptions()...)
		printRetained(cmd.OutOrStdout(), filter, class)
		return nil
	},
}

type annotatedMember struct {
	label string
	decl  ast.Annotated
}

func annotatedMembers(class *ast.ClassNode) []annotatedMember {
	members := []annotatedMember{{label: "class " + class.Name, decl: class}}
	for _, f := range class.Fields {
		members = append(members, annotatedMember{label: "field " + f.Name, decl: f})
	}
	for _, p := range class.Properties {
		members = append(members, annotatedMember{label: "property " + p.Name, decl: p})
	}
	for _, m := range class.Constructors {
		members = append(members, annotatedMember{label: "constructor " + describeParams(m), decl: m})
	}
	for _, m := range class.Methods {
		members = append(members, annotatedMember{label: "method " + describeParams(m), decl: m})
		for _, p := range m.Parameters {
			members = append(members, annotatedMember{label: "parameter " + m.Name + "." + p.Name, decl: p})
		}
	}
	return members
}

func describeParams(m *ast.MethodNode) string {
	var params []string
	for _, p := range m.Parameters {
		params = append(params, p.Type.String())
	}
	return m.Name + "(" + strings.Join(params, ", ") + ")"
}

func printRetained(out io.Writer, filter *annotation.Filter, class *ast.ClassNode) {
	for _, member := range annotatedMembers(class) {
		copied, notCopied := filter.CopyRetained(member.decl)
		if len(copied) == 0 && len(notCopied) == 0 {
			continue
		}

		fmt.Fprintf(out, "%s:\n", member.label)
		for _, a := range copied {
			fmt.Fprintf(out, "\t%s\n", a)
		}
		for _, a := range notCopied {
			comment.Warn(a.Pos(), nil,
				fmt.Sprintf("annotation %s on %s was not copied", a, member.label),
				"a member value is a closure, which cannot be carried to generated code",
			)
		}
	}
}

func init() {
	annotationsFlags.register(annotationsCmd)
	rootCmd.AddCommand(annotationsCmd)
}
