// Package config loads the CLI's runtime options from an optional YAML
// file, the way the teacher CLI loads its own run-time flags defaults —
// using goccy/go-yaml, already a transitive dependency of the teacher's
// own module, promoted here to a direct one since SPEC_FULL.md's CLI front
// end needs a config file of its own. Config is host-only: it never
// becomes visible to an evaluated program, only to the cmd/zyxt front end.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Options are the settings cmd/zyxt reads from --config. When a config
// file is given, its options (over Default()) replace those set by the
// equivalent command-line flags.
type Options struct {
	TypeCheck bool   `yaml:"type_check"`
	Color     bool   `yaml:"color"`
	Trace     bool   `yaml:"trace"`
	DumpAST   string `yaml:"dump_ast"` // "", "text", or "json"
}

// Default returns the built-in defaults, used when no --config is given.
func Default() Options {
	return Options{TypeCheck: true, Color: true}
}

// Load reads and parses a YAML options file, starting from Default() so
// that a file only needs to mention the fields it overrides.
func Load(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, err
	}
	return opts, nil
}
