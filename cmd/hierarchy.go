package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/astforge/astforge/internal/ast"
	"github.com/astforge/astforge/internal/codegen"
	"github.com/astforge/astforge/internal/hierarchy"
	"github.com/spf13/cobra"
)

var (
	hierarchyFlags classFlags
	implementsName string
)

var hierarchyCmd = &cobra.Command{
	Use:   "hierarchy",
	Short: "print the members of a class and its ancestors",
	Long:  "print the methods, properties, field partitions and interfaces of a class, including everything inherited up to the root type",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, class, err := hierarchyFlags.load(cmd.Context())
		if err != nil {
			return err
		}
		printHierarchy(cmd.OutOrStdout(), hierarchy.NewWalker(table), class)
		return nil
	},
}

func printHierarchy(out io.Writer, walker *hierarchy.Walker, class *ast.ClassNode) {
	var chain []string
	for _, c := range walker.Classes().Ancestors(class) {
		chain = append(chain, c.Name)
	}
	fmt.Fprintf(out, "class %s\n", class.Name)
	fmt.Fprintf(out, "ancestors: %s\n", strings.Join(chain, " -> "))

	fmt.Fprintln(out, "methods:")
	for _, m := range walker.AllMethods(class) {
		fmt.Fprintf(out, "\t%s %s\n", m.ReturnType, codegen.DescriptorWithoutReturnType(m))
	}

	fmt.Fprintln(out, "properties:")
	for _, p := range walker.AllProperties(class) {
		getter := codegen.GetterName(p)
		source := "generated"
		if hierarchy.HasDeclaredMethod(class, getter, 0) {
			source = "declared"
		}
		fmt.Fprintf(out, "\t%s %s (%s %s)\n", p.Type(), p.Name, getter, source)
	}

	printFields(out, "instance property fields", hierarchy.InstancePropertyFields(class))
	printFields(out, "instance non-property fields", hierarchy.InstanceNonPropertyFields(class))
	printFields(out, "super property fields", walker.SuperPropertyFields(class))
	printFields(out, "super non-property fields", walker.SuperNonPropertyFields(class))

	fmt.Fprintf(out, "interfaces: %s\n", strings.Join(walker.InterfacesAndSuperInterfaces(class).Sorted(), ", "))

	if implementsName != "" {
		fmt.Fprintf(out, "is or implements %s: %t\n", implementsName, walker.IsOrImplements(class, implementsName))
	}
}

func printFields(out io.Writer, title string, fields []*ast.FieldNode) {
	fmt.Fprintf(out, "%s:\n", title)
	for _, f := range fields {
		fmt.Fprintf(out, "\t%s %s\n", f.Type, f)
	}
}

func init() {
	hierarchyFlags.register(hierarchyCmd)
	hierarchyCmd.Flags().StringVar(&implementsName, "implements", "", "also report whether the class is or implements this interface")
	rootCmd.AddCommand(hierarchyCmd)
}
