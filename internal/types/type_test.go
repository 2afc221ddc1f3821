package types

import "testing"

func TestNullIsInstanceNamedHashNull(t *testing.T) {
	n := Null()
	if n.Name != "#null" {
		t.Fatalf("Null().Name = %q, want %q", n.Name, "#null")
	}
	if !IsNull(n) {
		t.Fatalf("IsNull(Null()) = false, want true")
	}
}

func TestFromNameBareInstance(t *testing.T) {
	ty := FromName("i32")
	if ty.Name != "i32" || len(ty.TypeArgs) != 0 || len(ty.InstAttrs) != 0 {
		t.Fatalf("FromName(%q) = %+v, want bare instance", "i32", ty)
	}
	if ty.String() != "i32" {
		t.Fatalf("String() = %q, want %q", ty.String(), "i32")
	}
}

func TestInstanceStringWithTypeArgs(t *testing.T) {
	ty := &Instance{Name: "proc", TypeArgs: []Type{FromName("i32"), FromName("str")}}
	if got, want := ty.String(), "proc<i32,str>"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestInstanceEqualStructural(t *testing.T) {
	a := FromName("i32")
	b := FromName("i32")
	if !a.Equal(b) {
		t.Fatalf("two separately-constructed FromName(\"i32\") should be Equal")
	}
	if a.Equal(FromName("i64")) {
		t.Fatalf("i32 should not Equal i64")
	}
}

func TestInstanceEqualWithAttrs(t *testing.T) {
	a := &Instance{Name: "TPoint", InstAttrs: map[string]Type{"x": FromName("i32"), "y": FromName("i32")}}
	b := &Instance{Name: "TPoint", InstAttrs: map[string]Type{"x": FromName("i32"), "y": FromName("i32")}}
	c := &Instance{Name: "TPoint", InstAttrs: map[string]Type{"x": FromName("i32"), "y": FromName("f64")}}
	if !a.Equal(b) {
		t.Fatalf("identical attr maps should be Equal")
	}
	if a.Equal(c) {
		t.Fatalf("differing attr maps should not be Equal")
	}
}

func TestInstanceEqualImplementationByIdentity(t *testing.T) {
	impl1 := &Definition{Name: "TFoo"}
	impl2 := &Definition{Name: "TFoo"}
	a := &Instance{Name: "TFoo", Implementation: impl1}
	b := &Instance{Name: "TFoo", Implementation: impl1}
	c := &Instance{Name: "TFoo", Implementation: impl2}
	if !a.Equal(b) {
		t.Fatalf("same Implementation pointer should be Equal")
	}
	if a.Equal(c) {
		t.Fatalf("distinct Implementation pointers (even if deeply equal) should not be Equal")
	}
}

func TestDefinitionString(t *testing.T) {
	d := &Definition{Name: "TFoo"}
	if got, want := d.String(), "class<TFoo>"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestSortedAttrNames(t *testing.T) {
	ty := &Instance{Name: "T", InstAttrs: map[string]Type{"z": FromName("i32"), "a": FromName("i32"), "m": FromName("i32")}}
	got := ty.SortedAttrNames()
	want := []string{"a", "m", "z"}
	if len(got) != len(want) {
		t.Fatalf("SortedAttrNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortedAttrNames() = %v, want %v", got, want)
		}
	}
}

func TestIsNumericAndWidth(t *testing.T) {
	for _, k := range []string{I8, I16, I32, I64, I128, Isize, Ibig, U8, U16, U32, U64, U128, Usize, Ubig, F16, F32, F64} {
		if !IsNumeric(k) {
			t.Errorf("IsNumeric(%q) = false, want true", k)
		}
	}
	for _, k := range []string{Str, Bool, TypeT} {
		if IsNumeric(k) {
			t.Errorf("IsNumeric(%q) = true, want false", k)
		}
	}
	if IntWidth(I32) != 32 || IntWidth(U8) != 8 || IntWidth(Str) != 0 {
		t.Fatalf("IntWidth mismatch")
	}
}
