// Package value implements the runtime value system: the ~18-kind numeric
// tower plus Str/Bool/Null/Type/Proc/ClassInstance/Return, the operator
// algebra that acts on them, and the typecast rules that convert between
// kinds.
//
// Value is a closed tagged union rather than an open interface hierarchy:
// every concrete type below is final, and dispatch is always a type switch
// on the concrete Value, never a virtual method a caller can override by
// implementing the interface themselves. This mirrors how the teacher's
// interpreter package represents its own (smaller) value set, one struct
// per kind behind a shared interface.
package value

import (
	"fmt"

	"github.com/zyxtlang/zyxt-go/internal/types"
)

// Value is any runtime value produced by evaluation.
type Value interface {
	// Kind returns the short type name of this value, e.g. "i32" or "str".
	Kind() string
	// String renders the value the way it would print to stdout.
	String() string
}

// Str is a runtime string value.
type Str struct{ V string }

func (s Str) Kind() string   { return types.Str }
func (s Str) String() string { return s.V }

// Bool is a runtime boolean value.
type Bool struct{ V bool }

func (b Bool) Kind() string   { return types.Bool }
func (b Bool) String() string { return fmt.Sprintf("%t", b.V) }

// Null is the singleton null value.
type Null struct{}

func (Null) Kind() string   { return types.NullTypeName }
func (Null) String() string { return "null" }

// TypeValue wraps a type descriptor so that types can be passed around and
// compared as ordinary runtime values (e.g. the result of a type literal
// expression, or the argument to a TypeCast).
type TypeValue struct{ T types.Type }

func (t TypeValue) Kind() string   { return types.TypeT }
func (t TypeValue) String() string { return "<" + t.T.String() + ">" }

// Proc is a callable value: a procedure or function, with its declared
// argument and return types and the block it runs when called. Body is an
// opaque any because package value must not import package ast (ast imports
// value, so the reverse import would be a cycle, and a Proc's body is only
// ever interpreted by package interp, never inspected here).
type Proc struct {
	ArgTypes   []types.Type
	ArgNames   []string
	ReturnType types.Type
	Body       any
	// Closure is the defining scope snapshot, opaque to this package for the
	// same reason as Body; package interp knows its concrete shape.
	Closure any
	IsFn     bool // true for "fn" (pure/expression form), false for "proc"
}

func (p Proc) Kind() string {
	if p.IsFn {
		return types.Fn
	}
	return types.Proc
}

func (p Proc) String() string {
	s := "fn|"
	if !p.IsFn {
		s = "proc|"
	}
	for i, name := range p.ArgNames {
		if i > 0 {
			s += ","
		}
		s += name
	}
	ret := "#null"
	if p.ReturnType != nil {
		ret = p.ReturnType.String()
	}
	return s + "|: " + ret
}

// ClassInstance is a data-only record: a class type plus its attribute
// values. Construction, inheritance and method dispatch are out of scope
// (see SPEC_FULL.md §1); ClassInstance exists so that Declare/Set/Get over
// class-typed variables and the TypeCast/Concat rules that mention
// ClassInstance have something concrete to operate on.
type ClassInstance struct {
	T     *types.Instance
	Attrs map[string]Value
}

func (c ClassInstance) Kind() string { return c.T.Name }
func (c ClassInstance) String() string {
	return "<" + c.T.Name + ">"
}

// Return wraps a value flowing out of a Return element. It is a sentinel,
// not a distinct kind of data: GetTypeObj, operator application and
// printing all unwrap it and act on the inner value, since a returned i32
// behaves exactly like an i32 everywhere except inside the interpreter's
// own block-evaluation loop, which is the only place that tests for Return
// specifically to stop executing the rest of a block.
type Return struct{ Inner Value }

func (r Return) Kind() string { return r.Inner.Kind() }
func (r Return) String() string {
	return r.Inner.String()
}

// Unreturn peels away zero or more layers of Return, returning the first
// non-Return value underneath. Used anywhere a value must be inspected for
// its own sake rather than as control flow, mirroring the original
// interpreter recursing through Value::Return before every operation.
func Unreturn(v Value) Value {
	for {
		r, ok := v.(Return)
		if !ok {
			return v
		}
		v = r.Inner
	}
}

// GetTypeObj returns the static Type that describes v's runtime shape.
func GetTypeObj(v Value) types.Type {
	switch vv := v.(type) {
	case Return:
		return GetTypeObj(vv.Inner)
	case Str:
		return types.FromName(types.Str)
	case Bool:
		return types.FromName(types.Bool)
	case Null:
		return types.Null()
	case TypeValue:
		return types.FromName(types.TypeT)
	case ClassInstance:
		return vv.T
	case Proc:
		// Mirrors the original's get_type_obj: a procedure's type is
		// Instance{name: "fn"|"proc", type_args: [null, return_type]},
		// not its argument list.
		name := types.Proc
		if vv.IsFn {
			name = types.Fn
		}
		ret := types.Type(types.Null())
		if vv.ReturnType != nil {
			ret = vv.ReturnType
		}
		return &types.Instance{Name: name, TypeArgs: []types.Type{types.Null(), ret}}
	default:
		return types.FromName(v.Kind())
	}
}
