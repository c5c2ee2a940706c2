// Package config loads the astforge configuration file.
//
// A configuration file is YAML:
//
//	root_type: Object
//	retention_annotation: Retention
//	closure_marker: GeneratedClosure
//	output_package: model
//	log_level: info
//
// Every key is optional. Missing keys take the defaults below, and any key can
// be overridden with an ASTFORGE_ environment variable named after it, such
// as ASTFORGE_ROOT_TYPE.
package config

import (
	"github.com/astforge/astforge/internal/annotation"
	"github.com/astforge/astforge/internal/ast"
)

type Config struct {
	// RootType is the universal root of the class hierarchy.
	RootType string `yaml:"root_type"`

	// RetentionAnnotation is the meta-annotation that declares an annotation's retention.
	RetentionAnnotation string `yaml:"retention_annotation"`

	// ClosureMarker is the type implemented by generated closure classes.
	ClosureMarker string `yaml:"closure_marker"`

	// OutputPackage is the package clause of generated Go source.
	OutputPackage string `yaml:"output_package"`

	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`
}

const (
	DefaultOutputPackage = "model"
	DefaultLogLevel      = "info"
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills every empty field. It is idempotent.
func ApplyDefaults(cfg *Config) {
	if cfg.RootType == "" {
		cfg.RootType = ast.DefaultRootType
	}
	if cfg.RetentionAnnotation == "" {
		cfg.RetentionAnnotation = annotation.DefaultRetentionType
	}
	if cfg.ClosureMarker == "" {
		cfg.ClosureMarker = annotation.DefaultClosureMarker
	}
	if cfg.OutputPackage == "" {
		cfg.OutputPackage = DefaultOutputPackage
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}

// FilterOptions returns the annotation filter options for cfg.
func (cfg *Config) FilterOptions() []annotation.Option {
	return []annotation.Option{
		annotation.WithRetentionType(cfg.RetentionAnnotation),
		annotation.WithClosureMarker(cfg.ClosureMarker),
	}
}
