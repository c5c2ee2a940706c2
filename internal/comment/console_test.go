package comment

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/astforge/astforge/internal/ast"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestAddComment(t *testing.T) {
	testPrinter := &ConsolePrinter{}

	testPrinter.Add(ast.Position{}, InfoHeader, "message", "additionalInfo")
	if assert.Equal(t, 1, testPrinter.Len()) {
		assert.Equal(t, "INFO - message\n\tadditionalInfo", testPrinter.entries[0].text)
	}
}

func TestFlush(t *testing.T) {
	var out bytes.Buffer
	logger := log.New()
	logger.SetOutput(&out)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true, DisableColors: true})

	testPrinter := &ConsolePrinter{logger: logger}
	testPrinter.Add(ast.Position{}, WarnHeader, "closure member")
	testPrinter.Add(ast.Position{}, InfoHeader, "copied")
	testPrinter.Flush()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if assert.Len(t, lines, 2) {
		assert.Contains(t, lines[0], "level=warning")
		assert.Contains(t, lines[0], "closure member")
		assert.Contains(t, lines[1], "level=info")
	}
	assert.Equal(t, 0, testPrinter.Len())
}

func TestNilPrinter(t *testing.T) {
	var p *ConsolePrinter
	assert.NotPanics(t, func() {
		p.Add(ast.Position{}, InfoHeader, "message")
		p.Flush()
	})
	assert.Equal(t, 0, p.Len())
}

func TestGetPosition(t *testing.T) {
	sep := string(filepath.Separator)
	tests := []struct {
		name    string
		pos     ast.Position
		appRoot string
		want    string
	}{
		{
			name: "invalid position",
			pos:  ast.Position{},
			want: "",
		},
		{
			name:    "file, line and column",
			pos:     ast.Position{File: "home/me/app/src/Foo.java", Line: 10, Column: 4},
			appRoot: "app",
			want:    "app" + sep + "src" + sep + "Foo.java 10:4",
		},
		{
			name:    "file and line",
			pos:     ast.Position{File: "home/me/app/Foo.java", Line: 10},
			appRoot: "app",
			want:    "app" + sep + "Foo.java 10",
		},
		{
			name:    "file outside the application root",
			pos:     ast.Position{File: "elsewhere/Foo.java"},
			appRoot: "app",
			want:    "Foo.java",
		},
		{
			name: "line without file",
			pos:  ast.Position{Line: 7, Column: 1},
			want: "7:1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getPosition(tt.pos, tt.appRoot))
		})
	}
}
