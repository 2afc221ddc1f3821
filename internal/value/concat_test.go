package value

import "testing"

func TestConcatNumericWithString(t *testing.T) {
	got, err := BinOpr(Concat, NewInt(32, 1), Str{V: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "1x" {
		t.Fatalf("got %q, want %q", got.String(), "1x")
	}
}

func TestConcatSameKindIsIdentityKind(t *testing.T) {
	got, err := BinOpr(Concat, NewInt(8, 1), NewInt(8, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind() != "i8" {
		t.Fatalf("got kind %s, want i8", got.Kind())
	}
	if got.String() != "12" {
		t.Fatalf("got value %q, want %q (digit concatenation, not addition)", got.String(), "12")
	}
}

func TestConcatWidensToLargerSignedWidth(t *testing.T) {
	got, err := BinOpr(Concat, NewInt(8, 1), NewInt(64, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind() != "i64" {
		t.Fatalf("got kind %s, want i64", got.Kind())
	}
	if got.String() != "12" {
		t.Fatalf("got value %q, want %q", got.String(), "12")
	}
}

// TestConcatScenario6 pins down spec §8 scenario 6 exactly: I8(12) ~ U16(34)
// must render both operands as decimal digits, join them, and parse the
// result back into the widened kind — I16(1234), not I16(46) (the sum).
func TestConcatScenario6(t *testing.T) {
	got, err := BinOpr(Concat, NewInt(8, 12), NewUint(16, 34))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind() != "i16" {
		t.Fatalf("got kind %s, want i16", got.Kind())
	}
	if got.String() != "1234" {
		t.Fatalf("got value %q, want %q", got.String(), "1234")
	}
}

func TestConcatCommutesOnResultKind(t *testing.T) {
	// The *kind* chosen for two numeric operands of the same pair does not
	// depend on argument order, since this port's widening law is
	// intentionally symmetric (see DESIGN.md); only the digit order differs.
	a, err := BinOpr(Concat, NewInt(16, 1), NewUint(32, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := BinOpr(Concat, NewUint(32, 2), NewInt(16, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Kind() != b.Kind() {
		t.Fatalf("concat kind not commutative: %s vs %s", a.Kind(), b.Kind())
	}
}

func TestConcatBoolAndStr(t *testing.T) {
	got, err := BinOpr(Concat, Bool{V: true}, Str{V: "!"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "true!" {
		t.Fatalf("got %q, want %q", got.String(), "true!")
	}
}
