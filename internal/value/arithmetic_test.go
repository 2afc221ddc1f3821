package value

import (
	"testing"

	"github.com/zyxtlang/zyxt-go/internal/types"
)

func TestAddCastsRHSToLHSKind(t *testing.T) {
	// i32 + u8 casts the u8 into i32 first and wraps the sum as i32, per
	// the typecast_add! macro demonstrated in the original.
	got, err := BinOpr(Plus, NewInt(32, 10), NewUint(8, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i, ok := got.(Int[int32])
	if !ok || i.V != 15 {
		t.Fatalf("got %#v, want Int[int32]{15}", got)
	}
}

func TestSubOverflowReportsOverflow(t *testing.T) {
	_, err := BinOpr(Minus, NewUint(8, 0), NewUint(8, 1))
	oe, ok := err.(*OprError)
	if !ok || oe.Kind != Overflow {
		t.Fatalf("got %v, want Overflow error", err)
	}
}

func TestDivByZero(t *testing.T) {
	_, err := BinOpr(Div, NewInt(32, 10), NewInt(32, 0))
	oe, ok := err.(*OprError)
	if !ok || oe.Kind != ZeroDivision {
		t.Fatalf("got %v, want ZeroDivision error", err)
	}
}

func TestFractDivAlwaysYieldsF64(t *testing.T) {
	got, err := BinOpr(FractDiv, NewInt(32, 7), NewInt(32, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, ok := got.(Float64)
	if !ok || f.V != 3.5 {
		t.Fatalf("got %#v, want Float64{3.5}", got)
	}
}

func TestModuloWrapsInLHSKind(t *testing.T) {
	got, err := BinOpr(Modulo, NewInt(32, 10), NewInt(32, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i, ok := got.(Int[int32])
	if !ok || i.V != 1 {
		t.Fatalf("got %#v, want Int[int32]{1}", got)
	}
}

func TestStringMultiplyRepeats(t *testing.T) {
	got, err := BinOpr(AstMult, Str{V: "ab"}, NewInt(32, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := got.(Str)
	if !ok || s.V != "ababab" {
		t.Fatalf("got %#v, want Str{\"ababab\"}", got)
	}
}

func TestStringMultiplyNegativeIsTypecastError(t *testing.T) {
	_, err := BinOpr(AstMult, Str{V: "ab"}, NewInt(32, -1))
	oe, ok := err.(*OprError)
	if !ok || oe.Kind != TypecastErr {
		t.Fatalf("got %v, want TypecastErr", err)
	}
}

func TestPlusConcatenatesStrings(t *testing.T) {
	got, err := BinOpr(Plus, Str{V: "a"}, Str{V: "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "ab" {
		t.Fatalf("got %q, want %q", got.String(), "ab")
	}
}

func TestUnaryMinusUnsignedIsNoImpl(t *testing.T) {
	_, err := UnOpr(MinusSign, NewUint(8, 5))
	oe, ok := err.(*OprError)
	if !ok || oe.Kind != NoImplForOpr {
		t.Fatalf("got %v, want NoImplForOpr", err)
	}
}

func TestUnaryMinusSigned(t *testing.T) {
	got, err := UnOpr(MinusSign, NewInt(32, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i, ok := got.(Int[int32])
	if !ok || i.V != -5 {
		t.Fatalf("got %#v, want Int[int32]{-5}", got)
	}
}

func TestNot(t *testing.T) {
	got, err := UnOpr(Not, Bool{V: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b, ok := got.(Bool); !ok || b.V {
		t.Fatalf("got %#v, want Bool{false}", got)
	}
}

func TestReturnIsTransparentToOperators(t *testing.T) {
	// Return idempotence/transparency (§8): operators see through the
	// Return sentinel on either operand.
	got, err := BinOpr(Plus, Return{Inner: NewInt(32, 1)}, Return{Inner: NewInt(32, 2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i, ok := got.(Int[int32])
	if !ok || i.V != 3 {
		t.Fatalf("got %#v, want Int[int32]{3}", got)
	}
}

func TestGetTypeObjUnwrapsReturn(t *testing.T) {
	ty := GetTypeObj(Return{Inner: Str{V: "x"}})
	want := types.FromName(types.Str)
	if !ty.Equal(want) {
		t.Fatalf("got %v, want %v", ty, want)
	}
}
