// Package driver orchestrates evaluation runs: it loads encoded programs,
// builds the root scope, runs the evaluator and hands back values plus
// diagnostics.
package driver

import (
	"fmt"
	"path/filepath"

	"tern/internal/astcodec"
	"tern/internal/config"
	"tern/internal/eval"
	"tern/internal/scope"
	"tern/internal/source"
	"tern/internal/value"
)

// Result is the outcome of one evaluated program.
type Result struct {
	Path      string
	Values    []value.Value
	Evaluator *eval.Evaluator
	FileSet   *source.FileSet
}

// Run loads the encoded program at path, evaluates it with opts and
// returns the result. Each run gets its own arena, root scope and
// evaluator.
func Run(path string, opts eval.Options) (*Result, error) {
	prog, origin, err := astcodec.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fs := source.NewFileSet()
	if origin != "" {
		// Diagnostics resolve to real line/column positions when the
		// origin source still exists; otherwise register the name only.
		if _, err := fs.Load(origin); err != nil {
			fs.AddVirtual(origin, nil)
		}
	}

	arena := scope.NewArena(0)
	root := arena.New(scope.ModuleEntry())
	mgr := scope.NewManager(arena, root)

	ev := eval.New(prog, mgr, opts)
	values := ev.Evaluate()

	return &Result{
		Path:      path,
		Values:    values,
		Evaluator: ev,
		FileSet:   fs,
	}, nil
}

// LoadOptions reads the manifest next to path, falling back to defaults
// when none exists.
func LoadOptions(path string) (config.Config, error) {
	manifest := filepath.Join(filepath.Dir(path), config.ManifestName)
	cfg, err := config.Load(manifest)
	if err != nil {
		return config.Config{}, fmt.Errorf("load options: %w", err)
	}
	return cfg, nil
}
