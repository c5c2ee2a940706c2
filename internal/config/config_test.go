package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "astforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		env      map[string]string
		expected Config
	}{
		{
			name:    "empty file takes defaults",
			content: "",
			expected: Config{
				RootType:            "Object",
				RetentionAnnotation: "Retention",
				ClosureMarker:       "GeneratedClosure",
				OutputPackage:       "model",
				LogLevel:            "info",
			},
		},
		{
			name: "file values",
			content: `
root_type: java.lang.Object
retention_annotation: java.lang.annotation.Retention
closure_marker: com.acme.runtime.GeneratedClosure
output_package: beans
log_level: debug
`,
			expected: Config{
				RootType:            "java.lang.Object",
				RetentionAnnotation: "java.lang.annotation.Retention",
				ClosureMarker:       "com.acme.runtime.GeneratedClosure",
				OutputPackage:       "beans",
				LogLevel:            "debug",
			},
		},
		{
			name:    "environment overrides the file",
			content: "output_package: beans\n",
			env: map[string]string{
				"ASTFORGE_OUTPUT_PACKAGE": "dto",
				"ASTFORGE_ROOT_TYPE":      "Base",
			},
			expected: Config{
				RootType:            "Base",
				RetentionAnnotation: "Retention",
				ClosureMarker:       "GeneratedClosure",
				OutputPackage:       "dto",
				LogLevel:            "info",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load(writeConfig(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *cfg)
		})
	}
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "root_type: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "output_package: my-pkg\nlog_level: loud\n"))
		require.Error(t, err)

		var verr ValidationError
		require.True(t, errors.As(err, &verr))
		require.Len(t, verr.Errors, 2)
		assert.Equal(t, "output_package", verr.Errors[0].Field)
		assert.Equal(t, "log_level", verr.Errors[1].Field)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		fields []string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:   "qualified class names are valid",
			mutate: func(c *Config) { c.RootType = "java.lang.Object" },
		},
		{
			name:   "empty root type",
			mutate: func(c *Config) { c.RootType = "" },
			fields: []string{"root_type"},
		},
		{
			name:   "dangling dot in marker",
			mutate: func(c *Config) { c.ClosureMarker = "acme." },
			fields: []string{"closure_marker"},
		},
		{
			name: "several errors are collected",
			mutate: func(c *Config) {
				c.RetentionAnnotation = "1Retention"
				c.OutputPackage = ""
			},
			fields: []string{"retention_annotation", "output_package"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			var verr ValidationError
			require.True(t, errors.As(err, &verr))
			var got []string
			for _, fe := range verr.Errors {
				got = append(got, fe.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestFilterOptions(t *testing.T) {
	assert.Len(t, Default().FilterOptions(), 2)
}
