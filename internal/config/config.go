// Package config loads MiniSoft toolchain defaults (identifier length,
// integer range, warnings-as-errors) from an optional YAML file, the
// file-backed counterpart to the functional-options configuration used
// by pkg/minisoft.Engine.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// CompilerConfig holds toolchain defaults that MiniSoft's fixed language
// semantics do not otherwise expose as compile-time options: the
// identifier-length and integer-range limits the lexer and analyzer
// enforce, and whether unused-declaration warnings are reported as errors.
type CompilerConfig struct {
	MaxIdentifierLength int  `yaml:"maxIdentifierLength"`
	IntMin              int  `yaml:"intMin"`
	IntMax              int  `yaml:"intMax"`
	WarningsAsErrors    bool `yaml:"warningsAsErrors"`
}

// Default returns the configuration matching MiniSoft's fixed language
// rules: a 32-bit signed integer range and a 14-character identifier
// limit, with no warnings promoted to errors.
func Default() CompilerConfig {
	return CompilerConfig{
		MaxIdentifierLength: 14,
		IntMin:              -2147483648,
		IntMax:              2147483647,
		WarningsAsErrors:    false,
	}
}

// Load reads a YAML config file at path, overlaying it onto Default().
// A missing file is not an error: Load returns the defaults unchanged.
func Load(path string) (CompilerConfig, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
