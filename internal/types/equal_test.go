package types

import "testing"

func TestEqualNumerics(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"same sized int", MakeInt(Width32, true), MakeInt(Width32, true), true},
		{"different width", MakeInt(Width32, true), MakeInt(Width64, true), false},
		{"different signedness", MakeInt(Width32, true), MakeInt(Width32, false), false},
		{"coercible is not sized", CoercibleInt(), MakeInt(Width32, true), false},
		{"same float", MakeFloat(Width64), MakeFloat(Width64), true},
		{"float width differs", MakeFloat(Width32), MakeFloat(Width64), false},
		{"empty equals empty", Empty(), Empty(), true},
		{"int is not float", MakeInt(Width32, true), MakeFloat(Width32), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Fatalf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqualStructured(t *testing.T) {
	point := MakeRecord([]Param{
		{Name: "x", Type: MakeInt(Width32, true)},
		{Name: "y", Type: MakeInt(Width32, true)},
	})
	samePoint := MakeRecord([]Param{
		{Name: "x", Type: MakeInt(Width32, true)},
		{Name: "y", Type: MakeInt(Width32, true)},
	})
	renamed := MakeRecord([]Param{
		{Name: "a", Type: MakeInt(Width32, true)},
		{Name: "y", Type: MakeInt(Width32, true)},
	})

	if !Equal(point, samePoint) {
		t.Fatalf("identical records should be equal")
	}
	if Equal(point, renamed) {
		t.Fatalf("field names participate in identity")
	}

	fn := MakeFunc(
		[]Param{{Name: "a", Type: MakeInt(Width32, true)}},
		[]Param{{Name: "r", Type: MakeInt(Width32, true)}},
	)
	fnWider := MakeFunc(
		[]Param{{Name: "a", Type: MakeInt(Width64, true)}},
		[]Param{{Name: "r", Type: MakeInt(Width32, true)}},
	)
	if Equal(fn, fnWider) {
		t.Fatalf("parameter types participate in identity")
	}

	if !Equal(MakeSymbol(3), MakeSymbol(3)) || Equal(MakeSymbol(3), MakeSymbol(4)) {
		t.Fatalf("symbol identity is the scope reference")
	}
}

func TestTypeString(t *testing.T) {
	if got := MakeInt(Width32, true).String(); got != "i32" {
		t.Fatalf("String() = %q, want i32", got)
	}
	if got := MakeInt(Width16, false).String(); got != "u16" {
		t.Fatalf("String() = %q, want u16", got)
	}
	if got := MakeFloat(Width64).String(); got != "f64" {
		t.Fatalf("String() = %q, want f64", got)
	}
}
