package util

import (
	"fmt"
	"strings"

	"github.com/dave/dst"
	log "github.com/sirupsen/logrus"
)

// DebugPrint returns a string representation of the given node.
// This is useful for debugging purposes, and will pretty print
// the structure of a node in human readable form.
func DebugPrint(node dst.Node) string {
	objString := strings.Builder{}
	_ = dst.Fprint(&objString, node, dst.NotNilFilter)
	return objString.String()
}

// DebugNode logs message with a dump of node on entry. The dump is only built
// when entry's logger has debug logging enabled.
func DebugNode(entry *log.Entry, message string, node dst.Node) {
	if !entry.Logger.IsLevelEnabled(log.DebugLevel) {
		return
	}
	entry.WithField("node", fmt.Sprintf("%T", node)).Debug(message + "\n" + DebugPrint(node))
}
