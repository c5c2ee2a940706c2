package comment

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/astforge/astforge/internal/ast"
)

// getPosition creates a human readable string representing the position of a declaration.
// In order to improve readability, the filename will be localized to the root of the application.
// The format of the string is as follows based on the positional info available:
//
// Info 					|		Formatting
// ------------------------------------------------------------------
// filename, line, column	|	filename line:column
// filename, line			|	filename line
// filename					|	filename
// invalid or empty			|	""
func getPosition(pos ast.Position, appRoot string) string {
	if pos.File == "" && !pos.IsValid() {
		return ""
	}

	path := strings.Builder{}
	if pos.File != "" {
		rooted := appRoot == ""
		for _, segment := range strings.Split(filepath.ToSlash(pos.File), "/") {
			if !rooted {
				rooted = segment == appRoot
				if !rooted {
					continue
				}
			}
			if path.Len() != 0 {
				path.WriteByte(filepath.Separator)
			}
			path.WriteString(segment)
		}
		if path.Len() == 0 {
			path.WriteString(filepath.Base(pos.File))
		}
	}

	if pos.Line != 0 {
		if path.Len() != 0 {
			path.WriteByte(' ')
		}
		path.WriteString(strconv.Itoa(pos.Line))
		if pos.Column != 0 {
			path.WriteByte(':')
			path.WriteString(strconv.Itoa(pos.Column))
		}
	}

	return path.String()
}
