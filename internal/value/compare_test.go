package value

import "testing"

func TestCompareNumericAcrossKinds(t *testing.T) {
	got, err := BinOpr(Lt, NewInt(32, 3), NewUint(8, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := got.(Bool); !ok || !b.V {
		t.Fatalf("got %#v, want Bool{true}", got)
	}
}

func TestCompareEqDifferentKindsSameValue(t *testing.T) {
	got, err := BinOpr(Eq, NewInt(32, 5), NewUint(8, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := got.(Bool); !ok || !b.V {
		t.Fatalf("got %#v, want Bool{true}", got)
	}
}

func TestCompareStrings(t *testing.T) {
	got, err := BinOpr(Lt, Str{V: "abc"}, Str{V: "abd"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := got.(Bool); !ok || !b.V {
		t.Fatalf("got %#v, want Bool{true}", got)
	}
}

func TestCompareEqAcrossDifferentShapesIsFalse(t *testing.T) {
	got, err := BinOpr(Eq, Str{V: "1"}, NewInt(32, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := got.(Bool); !ok || b.V {
		t.Fatalf("got %#v, want Bool{false}", got)
	}
}

func TestLogicalAndOr(t *testing.T) {
	got, err := BinOpr(And, Bool{V: true}, Bool{V: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := got.(Bool); !ok || b.V {
		t.Fatalf("got %#v, want Bool{false}", got)
	}

	got, err = BinOpr(Or, Bool{V: true}, Bool{V: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := got.(Bool); !ok || !b.V {
		t.Fatalf("got %#v, want Bool{true}", got)
	}
}
