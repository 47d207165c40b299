package source

import (
	"testing"
)

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.tn", []byte("a := 5\nb := a + 2\n"))

	tests := []struct {
		name  string
		span  Span
		start LineCol
	}{
		{
			name:  "first line first column",
			span:  Span{File: id, Start: 0, End: 1},
			start: LineCol{Line: 1, Col: 1},
		},
		{
			name:  "first line mid",
			span:  Span{File: id, Start: 5, End: 6},
			start: LineCol{Line: 1, Col: 6},
		},
		{
			name:  "second line start",
			span:  Span{File: id, Start: 7, End: 8},
			start: LineCol{Line: 2, Col: 1},
		},
		{
			name:  "second line mid",
			span:  Span{File: id, Start: 12, End: 13},
			start: LineCol{Line: 2, Col: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(tt.span)
			if start != tt.start {
				t.Fatalf("Resolve() start = %v, want %v", start, tt.start)
			}
		})
	}
}

func TestFileSetLookup(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("one.tn", []byte("x"))

	f := fs.Get(id)
	if f == nil || f.Path != "one.tn" {
		t.Fatalf("Get returned %v", f)
	}
	if f.Flags&FileVirtual == 0 {
		t.Fatalf("expected virtual flag")
	}

	byPath, ok := fs.GetByPath("one.tn")
	if !ok || byPath.ID != id {
		t.Fatalf("GetByPath mismatch")
	}
	if fs.Get(FileID(99)) != nil {
		t.Fatalf("expected nil for unknown ID")
	}
}

func TestFileSetReaddKeepsLatest(t *testing.T) {
	fs := NewFileSet()
	first := fs.AddVirtual("same.tn", []byte("old"))
	second := fs.AddVirtual("same.tn", []byte("new"))
	if first == second {
		t.Fatalf("expected distinct IDs for re-added path")
	}
	got, ok := fs.GetByPath("same.tn")
	if !ok || got.ID != second {
		t.Fatalf("index should point at the latest file")
	}
}
