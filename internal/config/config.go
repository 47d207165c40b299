// Package config loads evaluator settings from a tern.toml manifest.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"tern/internal/eval"
)

// ManifestName is the default manifest file name looked up next to a
// program.
const ManifestName = "tern.toml"

// Config carries everything a host can set from a manifest.
type Config struct {
	Evaluator Evaluator `toml:"evaluator"`
	Output    Output    `toml:"output"`
}

// Evaluator mirrors eval.Options in manifest form.
type Evaluator struct {
	MaxDiagnostics int    `toml:"max-diagnostics"`
	Strict         Strict `toml:"strict"`
}

// Strict mirrors eval.Strictness; every flag defaults to false.
type Strict struct {
	UnresolvedIdents bool `toml:"unresolved-idents"`
	CallTargets      bool `toml:"call-targets"`
	MemberAccess     bool `toml:"member-access"`
	Operands         bool `toml:"operands"`
	RecordFields     bool `toml:"record-fields"`
	IntegerDivision  bool `toml:"integer-division"`
}

// Output controls CLI rendering.
type Output struct {
	Color string `toml:"color"` // auto|on|off
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Evaluator: Evaluator{MaxDiagnostics: 100},
		Output:    Output{Color: "auto"},
	}
}

// Load parses a manifest file. A missing file is not an error; the
// defaults come back untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("evaluator", "max-diagnostics") {
		cfg.Evaluator.MaxDiagnostics = Default().Evaluator.MaxDiagnostics
	}
	if cfg.Output.Color == "" {
		cfg.Output.Color = "auto"
	}
	return cfg, nil
}

// Options converts the manifest form into evaluator options.
func (c Config) Options() eval.Options {
	return eval.Options{
		MaxDiagnostics: c.Evaluator.MaxDiagnostics,
		Strict: eval.Strictness{
			UnresolvedIdents: c.Evaluator.Strict.UnresolvedIdents,
			CallTargets:      c.Evaluator.Strict.CallTargets,
			MemberAccess:     c.Evaluator.Strict.MemberAccess,
			Operands:         c.Evaluator.Strict.Operands,
			RecordFields:     c.Evaluator.Strict.RecordFields,
			IntegerDivision:  c.Evaluator.Strict.IntegerDivision,
		},
	}
}
