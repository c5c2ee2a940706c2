package comment

import (
	"path/filepath"
	"strings"

	"github.com/astforge/astforge/internal/ast"
	log "github.com/sirupsen/logrus"
)

type entry struct {
	header string
	text   string
}

type ConsolePrinter struct {
	appRoot string
	logger  *log.Logger
	entries []entry
}

// initialize this if you want to use it at the start of the program
var printer *ConsolePrinter

// EnableConsolePrinter collects every Info and Warn message until WriteAll.
// File names are shown relative to the base of applicationPath.
func EnableConsolePrinter(applicationPath string) {
	printer = &ConsolePrinter{
		appRoot: filepath.Base(applicationPath),
		logger:  log.StandardLogger(),
	}
}

// DisableConsolePrinter drops any pending messages and stops collecting.
func DisableConsolePrinter() {
	printer = nil
}

func WriteAll() {
	if printer != nil {
		printer.Flush()
	}
}

// Add appends a new message to the printer.
// The message is the main comment, and additionalInfo is a list of optional
// comments that will be printed on new lines below the main comment.
func (p *ConsolePrinter) Add(pos ast.Position, header, message string, additionalInfo ...string) {
	if p == nil {
		return
	}

	b := strings.Builder{}
	b.WriteString(header)
	b.WriteString(" - ")

	if where := getPosition(pos, p.appRoot); where != "" {
		b.WriteString(where)
		b.WriteByte(' ')
	}
	b.WriteString(message)
	for _, info := range additionalInfo {
		b.WriteString("\n\t")
		b.WriteString(info)
	}

	p.entries = append(p.entries, entry{header: header, text: b.String()})
}

// Len returns the number of pending messages.
func (p *ConsolePrinter) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// Flush logs all pending messages, warnings at warning level.
func (p *ConsolePrinter) Flush() {
	if p == nil {
		return
	}

	logger := p.logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	for _, e := range p.entries {
		if e.header == WarnHeader {
			logger.Warn(e.text)
		} else {
			logger.Info(e.text)
		}
	}
	p.entries = nil
}
