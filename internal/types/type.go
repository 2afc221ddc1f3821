// Package types defines the static type descriptor used by the type checker
// and carried around at runtime as a first-class Value.
//
// A Type is one of two shapes: Instance, the type of an ordinary value
// (a primitive, a procedure, or a class instance), and Definition, the type
// of a class itself (as opposed to an instance of that class). Both are
// immutable once built. Instance equality is structural (apart from
// Implementation, compared by identity); Definition equality is nominal.
package types

import (
	"sort"
	"strings"
)

// NullTypeName is the name of the singleton null type, Instance{Name: "#null"}.
const NullTypeName = "#null"

// Type is the closed sum of type descriptor shapes. It is implemented by
// *Instance and *Definition; callers switch on the concrete type the same
// way the interpreter switches on value.Value's concrete types.
type Type interface {
	isType()
	// String renders the type in its short display form, e.g. "i32" or
	// "proc<i32,i32>".
	String() string
	// Equal reports structural equality with other.
	Equal(other Type) bool
}

// Instance describes the type of an ordinary value: a primitive kind
// ("i32", "str", ...), a procedure/function type ("proc<...>", "fn<...>"),
// or a user class's instance type.
type Instance struct {
	Name     string
	TypeArgs []Type
	// InstAttrs maps an attribute name to its declared type, used for class
	// instance types; empty for primitives.
	InstAttrs map[string]Type
	// Implementation optionally points at the class body this instance type
	// was declared from. Two Instances compare equal on Implementation by
	// pointer identity, never by deep structural comparison, since a class
	// body is not itself comparable by value.
	Implementation *Definition
}

func (*Instance) isType() {}

// Null returns the singleton null type, Instance{Name: "#null"}.
func Null() *Instance {
	return &Instance{Name: NullTypeName}
}

// IsNull reports whether t is the null type.
func IsNull(t Type) bool {
	inst, ok := t.(*Instance)
	return ok && inst.Name == NullTypeName
}

// FromName builds a bare Instance with no type arguments or attributes.
// This is the type descriptor's parseable short form: FromName("i32") is
// the same type as parsing the literal "i32" in source.
func FromName(name string) *Instance {
	return &Instance{Name: name}
}

func (t *Instance) String() string {
	if len(t.TypeArgs) == 0 {
		return t.Name
	}
	parts := make([]string, len(t.TypeArgs))
	for i, arg := range t.TypeArgs {
		parts[i] = arg.String()
	}
	return t.Name + "<" + strings.Join(parts, ",") + ">"
}

// Equal compares two types structurally: same name, same type arguments in
// order, same attribute set, and (if both carry one) the same
// Implementation by pointer identity.
func (t *Instance) Equal(other Type) bool {
	if other == nil {
		return false
	}
	o, ok := other.(*Instance)
	if !ok {
		return false
	}
	if t.Name != o.Name || len(t.TypeArgs) != len(o.TypeArgs) {
		return false
	}
	for i := range t.TypeArgs {
		if !t.TypeArgs[i].Equal(o.TypeArgs[i]) {
			return false
		}
	}
	if len(t.InstAttrs) != len(o.InstAttrs) {
		return false
	}
	for name, typ := range t.InstAttrs {
		otherTyp, ok := o.InstAttrs[name]
		if !ok || !typ.Equal(otherTyp) {
			return false
		}
	}
	if t.Implementation != nil || o.Implementation != nil {
		return t.Implementation == o.Implementation
	}
	return true
}

// SortedAttrNames returns the InstAttrs keys in a deterministic order, for
// display and for any code that needs to iterate attributes reproducibly.
func (t *Instance) SortedAttrNames() []string {
	names := make([]string, 0, len(t.InstAttrs))
	for name := range t.InstAttrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definition describes the type of a class itself — what you get from
// referring to a class name as a value, as opposed to an instance of it.
type Definition struct {
	Name string
	// InstanceType is the Instance type produced by constructing this class.
	InstanceType *Instance
}

func (*Definition) isType() {}

func (d *Definition) String() string {
	return "class<" + d.Name + ">"
}

// Equal compares two Definitions by name and by pointer identity of their
// instance type (class definitions are nominal, never structural).
func (d *Definition) Equal(other Type) bool {
	o, ok := other.(*Definition)
	if !ok {
		return false
	}
	return d.Name == o.Name && d.InstanceType == o.InstanceType
}
