package util

import (
	"testing"

	"github.com/dave/dst"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugPrint(t *testing.T) {
	out := DebugPrint(&dst.Ident{Name: "this"})
	assert.Contains(t, out, "*dst.Ident")
	assert.Contains(t, out, `Name: "this"`)
}

func TestDebugNode(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		entries int
	}{
		{name: "debug level logs the dump", level: log.DebugLevel, entries: 1},
		{name: "info level skips the dump", level: log.InfoLevel, entries: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			logger.SetLevel(tt.level)

			DebugNode(log.NewEntry(logger).WithField("class", "Widget"), "map constructor", dst.NewIdent("this"))

			require.Len(t, hook.AllEntries(), tt.entries)
			if tt.entries == 0 {
				return
			}
			entry := hook.LastEntry()
			assert.Equal(t, "Widget", entry.Data["class"])
			assert.Equal(t, "*dst.Ident", entry.Data["node"])
			assert.Contains(t, entry.Message, "map constructor\n")
			assert.Contains(t, entry.Message, `Name: "this"`)
		})
	}
}
