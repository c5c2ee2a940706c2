package comment

import (
	"fmt"

	"github.com/astforge/astforge/internal/ast"
	"github.com/dave/dst"
)

const (
	InfoHeader string = "INFO"
	WarnHeader string = "WARN"
)

// Info reports an informational message about the declaration at pos. When node
// is not nil, the message is also prepended to its comments so that it appears
// in the generated code. The message is the main comment, and additionalInfo is
// a list of optional comments that will be printed on new lines below it.
func Info(pos ast.Position, node dst.Node, message string, additionalInfo ...string) {
	decorate(node, InfoHeader, message, additionalInfo...)
	printer.Add(pos, InfoHeader, message, additionalInfo...)
}

// Warn reports a problem the user should look at, in the same way as Info.
func Warn(pos ast.Position, node dst.Node, message string, additionalInfo ...string) {
	decorate(node, WarnHeader, message, additionalInfo...)
	printer.Add(pos, WarnHeader, message, additionalInfo...)
}

func decorate(node dst.Node, header, message string, additionalInfo ...string) {
	if node == nil {
		return
	}

	comments := []string{
		fmt.Sprintf("// %s: %s", header, message),
	}
	for _, info := range additionalInfo {
		comments = append(comments, fmt.Sprintf("// %s", info))
	}

	decs := node.Decorations()
	if len(decs.Start) > 0 {
		comments = append(comments, "//")
	}

	decs.Start.Prepend(comments...)
}
