package astcodec

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tern/internal/ast"
	"tern/internal/source"
)

func sp(start, end uint32) source.Span {
	return source.Span{File: 0, Start: start, End: end}
}

// sampleProgram exercises every statement and expression shape the payload
// carries: declarations with annotations, record and function literals,
// calls, member access and nested lists.
func sampleProgram() *ast.Program {
	point := ast.Decl("Point", nil, ast.RecordLit([]ast.Param{
		ast.NamedParam("x", ast.IntType(32, true, sp(10, 13)), sp(7, 13)),
		ast.NamedParam("y", ast.IntType(32, true, sp(18, 21)), sp(15, 21)),
	}, sp(6, 22)), sp(0, 22))

	body := ast.List(
		ast.ExprStmt(ast.Binary(ast.OpAssign, ast.Ident("x", sp(60, 61)), ast.Ident("a", sp(64, 65)))),
		ast.ExprStmt(ast.Binary(ast.OpAssign, ast.Ident("y", sp(66, 67)), ast.Ident("b", sp(70, 71)))),
	)
	mk := ast.Decl("mk", nil, ast.FuncLit(
		[]ast.Param{ast.NamedParam("a", ast.IntType(32, true, sp(30, 33)), sp(27, 33))},
		[]ast.Param{ast.NamedParam("r", ast.FloatType(64, sp(48, 51)), sp(45, 51))},
		body, sp(23, 72)), sp(23, 72))

	use := ast.ExprStmt(ast.Binary(ast.OpDot,
		ast.Call(ast.Ident("mk", sp(78, 80)), ast.IntLit(1, sp(81, 82)), ast.FloatLit(2.5, sp(84, 87))),
		ast.Ident("r", sp(89, 90))))

	ann := ast.Decl("n", ast.NamedType("Point", sp(94, 99)), ast.IntLit(5, sp(102, 103)), sp(91, 103))

	return &ast.Program{Stmts: []*ast.Stmt{point, mk, use, ann}}
}

func TestRoundtrip(t *testing.T) {
	prog := sampleProgram()

	data, err := Encode(prog, "examples/point.xl")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, origin, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if origin != "examples/point.xl" {
		t.Fatalf("origin = %q", origin)
	}
	if diff := cmp.Diff(prog, got); diff != "" {
		t.Fatalf("program changed across the wire (-want +got):\n%s", diff)
	}
}

func TestFileRoundtrip(t *testing.T) {
	prog := sampleProgram()
	path := filepath.Join(t.TempDir(), "point.tast")

	if err := WriteFile(path, prog, "point.xl"); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, origin, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if origin != "point.xl" {
		t.Fatalf("origin = %q", origin)
	}
	if diff := cmp.Diff(prog, got); diff != "" {
		t.Fatalf("file roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejectsUnknownSchema(t *testing.T) {
	// A msgpack nil payload decodes into a zero schema, which the version
	// check must refuse.
	if _, _, err := Decode([]byte{0xc0}); err == nil {
		t.Fatalf("decoding nil payload should fail the schema check")
	}
	if _, _, err := Decode([]byte("not msgpack at all")); err == nil {
		t.Fatalf("decoding garbage should fail")
	}
}

func TestEncodeNilProgram(t *testing.T) {
	if _, err := Encode(nil, "p.xl"); err == nil {
		t.Fatalf("Encode(nil) should fail")
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, _, err := ReadFile(filepath.Join(t.TempDir(), "absent.tast")); err == nil {
		t.Fatalf("reading a missing file should fail")
	}
}
