package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"tern/internal/ast"
	"tern/internal/astcodec"
	"tern/internal/eval"
	"tern/internal/source"
	"tern/internal/types"
)

func sp(start, end uint32) source.Span {
	return source.Span{File: 0, Start: start, End: end}
}

// sumProgram declares a: i32 = n and evaluates a + 1.
func sumProgram(n int64) *ast.Program {
	return &ast.Program{Stmts: []*ast.Stmt{
		ast.Decl("a", ast.IntType(32, true, sp(3, 6)), ast.IntLit(n, sp(9, 10)), sp(0, 10)),
		ast.ExprStmt(ast.Binary(ast.OpAdd, ast.Ident("a", sp(11, 12)), ast.IntLit(1, sp(15, 16)))),
	}}
}

func encodeProgram(t *testing.T, dir, name string, prog *ast.Program) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := astcodec.WriteFile(path, prog, name+".xl"); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
	return path
}

func TestRun(t *testing.T) {
	path := encodeProgram(t, t.TempDir(), "sum.tast", sumProgram(41))

	res, err := Run(path, eval.Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Path != path {
		t.Fatalf("Path = %q, want %q", res.Path, path)
	}
	if len(res.Values) != 2 {
		t.Fatalf("got %d values, want 2", len(res.Values))
	}
	v := res.Values[1]
	if v.Int != 42 || !types.Equal(v.Type, types.MakeInt(types.Width32, true)) {
		t.Fatalf("a + 1 = %v (%s)", v, v.Type)
	}
	if res.Evaluator.Bag().HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Evaluator.Diagnostics())
	}
	if res.FileSet.Len() != 1 {
		t.Fatalf("origin file not registered, FileSet.Len() = %d", res.FileSet.Len())
	}
}

func TestRunLoadsOriginSourceWhenPresent(t *testing.T) {
	dir := t.TempDir()
	origin := filepath.Join(dir, "sum.xl")
	content := []byte("a: i32 = 41\na + 1\n")
	if err := os.WriteFile(origin, content, 0o600); err != nil {
		t.Fatalf("write origin: %v", err)
	}

	path := filepath.Join(dir, "sum.tast")
	if err := astcodec.WriteFile(path, sumProgram(41), origin); err != nil {
		t.Fatalf("encode: %v", err)
	}

	res, err := Run(path, eval.Options{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	f, ok := res.FileSet.GetByPath(origin)
	if !ok {
		t.Fatalf("origin not registered")
	}
	if string(f.Content) != string(content) {
		t.Fatalf("origin content not loaded: %q", f.Content)
	}

	// A span on the second line resolves to a real position, not a
	// line-1 fallback.
	start, _ := res.FileSet.Resolve(source.Span{File: f.ID, Start: 13, End: 14})
	if start.Line != 2 || start.Col != 2 {
		t.Fatalf("Resolve = %d:%d, want 2:2", start.Line, start.Col)
	}
}

func TestRunMissingFile(t *testing.T) {
	if _, err := Run(filepath.Join(t.TempDir(), "absent.tast"), eval.Options{}); err == nil {
		t.Fatalf("Run on a missing file should fail")
	}
}

func TestRunAllKeepsInputOrder(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 8)
	for i := range paths {
		paths[i] = encodeProgram(t, dir, fmt.Sprintf("p%d.tast", i), sumProgram(int64(i)))
	}

	results, err := RunAll(context.Background(), paths, eval.Options{}, 3)
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}
	for i, res := range results {
		if res.Path != paths[i] {
			t.Fatalf("results[%d].Path = %q, want %q", i, res.Path, paths[i])
		}
		if got := res.Values[1].Int; got != int64(i)+1 {
			t.Fatalf("results[%d] value = %d, want %d", i, got, i+1)
		}
	}
}

func TestRunAllPropagatesFailure(t *testing.T) {
	dir := t.TempDir()
	good := encodeProgram(t, dir, "good.tast", sumProgram(1))
	bad := filepath.Join(dir, "bad.tast")
	if err := os.WriteFile(bad, []byte("not a payload"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := RunAll(context.Background(), []string{good, bad}, eval.Options{}, 2); err == nil {
		t.Fatalf("RunAll should surface the decode failure")
	}
}

func TestLoadOptionsWithoutManifest(t *testing.T) {
	cfg, err := LoadOptions(filepath.Join(t.TempDir(), "p.tast"))
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if cfg.Evaluator.MaxDiagnostics != 100 {
		t.Fatalf("defaults not applied: %+v", cfg.Evaluator)
	}
}

func TestLoadOptionsReadsManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "tern.toml")
	if err := os.WriteFile(manifest, []byte("[evaluator]\nmax-diagnostics = 5\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	cfg, err := LoadOptions(filepath.Join(dir, "p.tast"))
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if got := cfg.Options().MaxDiagnostics; got != 5 {
		t.Fatalf("MaxDiagnostics = %d, want 5", got)
	}
}
