package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/astforge/astforge/internal/ast"
	"github.com/astforge/astforge/internal/loader"
	"github.com/spf13/cobra"
)

// classFlags are the flags shared by every command that works on one class.
type classFlags struct {
	path      string
	className string
}

func (f *classFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "path", "", "Java source file or directory")
	cmd.Flags().StringVar(&f.className, "class", "", "name of the class to inspect")
	_ = cmd.MarkFlagRequired("path")
	_ = cmd.MarkFlagRequired("class")
}

// load reads the sources at the path flag and resolves the class flag.
func (f *classFlags) load(ctx context.Context) (*ast.ClassTable, *ast.ClassNode, error) {
	if _, err := os.Stat(f.path); err != nil {
		return nil, nil, fmt.Errorf("--path \"%s\" is invalid: %w", f.path, err)
	}

	table, err := loader.Load(ctx, cfg.RootType, f.path)
	if err != nil {
		return nil, nil, err
	}

	class, ok := table.Lookup(f.className)
	if !ok {
		return nil, nil, fmt.Errorf("class %s not found under %s", f.className, f.path)
	}
	return table, class, nil
}
