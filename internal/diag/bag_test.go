package diag

import (
	"testing"

	"tern/internal/source"
)

func at(file, start, end uint32) source.Span {
	return source.Span{File: source.FileID(file), Start: start, End: end}
}

func TestBagCapDropsOverflow(t *testing.T) {
	bag := NewBag(2)
	for i := 0; i < 5; i++ {
		bag.Add(Diagnostic{
			Severity: SevError,
			Code:     EvalTypeMismatch,
			Message:  "m",
			Primary:  at(0, uint32(i), uint32(i)+1),
		})
	}
	if bag.Len() != 2 {
		t.Fatalf("Len() = %d, want cap 2", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(10)
	if bag.HasErrors() {
		t.Fatalf("empty bag reports errors")
	}
	bag.Add(Diagnostic{Severity: SevInfo, Code: EvalInfo, Message: "note", Primary: at(0, 0, 1)})
	if bag.HasErrors() {
		t.Fatalf("info-only bag reports errors")
	}
	bag.Add(Diagnostic{Severity: SevError, Code: EvalUnresolvedIdent, Message: "bad", Primary: at(0, 2, 3)})
	if !bag.HasErrors() {
		t.Fatalf("bag with an error does not report it")
	}
}

func TestBagSortOrder(t *testing.T) {
	bag := NewBag(10)
	bag.Add(Diagnostic{Severity: SevError, Code: EvalTypeMismatch, Message: "later", Primary: at(0, 10, 12)})
	bag.Add(Diagnostic{Severity: SevError, Code: EvalTypeMismatch, Message: "other file", Primary: at(1, 0, 1)})
	bag.Add(Diagnostic{Severity: SevWarning, Code: EvalUnsupportedOperands, Message: "warn first", Primary: at(0, 4, 5)})
	bag.Add(Diagnostic{Severity: SevError, Code: EvalUnresolvedIdent, Message: "err first", Primary: at(0, 4, 5)})

	bag.Sort()
	items := bag.Items()

	wantMessages := []string{"err first", "warn first", "later", "other file"}
	for i, want := range wantMessages {
		if items[i].Message != want {
			t.Fatalf("items[%d].Message = %q, want %q", i, items[i].Message, want)
		}
	}
}

func TestCodeString(t *testing.T) {
	if got := EvalTypeMismatch.String(); got != "E4001" {
		t.Fatalf("EvalTypeMismatch.String() = %q", got)
	}
}

func TestWithNote(t *testing.T) {
	d := Diagnostic{Severity: SevError, Code: EvalTypeMismatch, Message: "m", Primary: at(0, 0, 1)}
	d = d.WithNote(at(0, 5, 6), "declared here")
	if len(d.Notes) != 1 || d.Notes[0].Msg != "declared here" {
		t.Fatalf("WithNote did not attach the note: %+v", d.Notes)
	}
}
