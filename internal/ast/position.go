package ast

import (
	"fmt"
)

// Position is the source span of a node. The zero value means the node has
// no known position, which is the case for every node created by codegen.
type Position struct {
	File       string
	Line       int
	Column     int
	LastLine   int
	LastColumn int
}

// Pos returns the position itself, so that any struct embedding a Position
// satisfies Node.
func (p Position) Pos() Position {
	return p
}

// IsValid reports whether the position points at a line in a source file.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// SetSourcePosition copies the span of other onto the receiver.
func (p *Position) SetSourcePosition(other Node) {
	if other == nil {
		return
	}
	*p = other.Pos()
}

func (p Position) String() string {
	switch {
	case !p.IsValid():
		return p.File
	case p.File == "":
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	default:
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
}
