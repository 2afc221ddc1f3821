package value

import (
	"testing"

	"github.com/zyxtlang/zyxt-go/internal/types"
)

func TestCastNarrowingSaturates(t *testing.T) {
	got, err := Cast(NewInt(32, 1000), types.FromName(types.I8))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i, ok := got.(Int[int8])
	if !ok || i.V != 127 {
		t.Fatalf("got %#v, want Int[int8]{127} (saturated)", got)
	}
}

func TestCastNarrowingSaturatesNegative(t *testing.T) {
	got, err := Cast(NewInt(32, -1000), types.FromName(types.I8))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	i, ok := got.(Int[int8])
	if !ok || i.V != -128 {
		t.Fatalf("got %#v, want Int[int8]{-128} (saturated)", got)
	}
}

func TestCastRoundTripWithinRange(t *testing.T) {
	v := NewInt(8, 42)
	widened, err := Cast(v, types.FromName(types.I32))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := Cast(widened, types.FromName(types.I8))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.String() != v.String() {
		t.Fatalf("round trip %s != original %s", back.String(), v.String())
	}
}

func TestCastStrToIntParseFailure(t *testing.T) {
	_, err := Cast(Str{V: "not a number"}, types.FromName(types.I32))
	oe, ok := err.(*OprError)
	if !ok || oe.Kind != TypecastErr {
		t.Fatalf("got %v, want TypecastErr", err)
	}
}

func TestCastToStr(t *testing.T) {
	got, err := Cast(NewInt(32, 7), types.FromName(types.Str))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "7" {
		t.Fatalf("got %q, want %q", got.String(), "7")
	}
}

func TestCastIdentity(t *testing.T) {
	v := NewInt(32, 7)
	got, err := Cast(v, types.FromName(types.I32))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != v {
		t.Fatalf("identity cast should return the same value")
	}
}

func TestCastUbigNeverNegative(t *testing.T) {
	got, err := Cast(NewInt(32, -5), types.FromName(types.Ubig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "0" {
		t.Fatalf("got %s, want 0 (clamped)", got.String())
	}
}
