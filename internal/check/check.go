// Package check implements the type-checking pass: a single recursive
// GetType function that walks an ast.Element tree, resolves the static
// Type of every node, and mutates Declare nodes in place to insert the
// inferred type or an explicit TypeCast wrapper — directly grounded on the
// original's Element::get_type (objects/element.rs), which performs the
// same single-pass inference-and-mutation.
package check

import (
	"github.com/zyxtlang/zyxt-go/internal/ast"
	"github.com/zyxtlang/zyxt-go/internal/errors"
	"github.com/zyxtlang/zyxt-go/internal/scope"
	"github.com/zyxtlang/zyxt-go/internal/types"
	"github.com/zyxtlang/zyxt-go/internal/value"
)

// TypeScope is the checker's scope stack, over static Type descriptors.
type TypeScope = scope.ScopeStack[types.Type]

// NewTypeScope returns a fresh global type scope.
func NewTypeScope() *TypeScope {
	return scope.NewScopeStack[types.Type]()
}

// Checker threads the single piece of mutable state the pass needs beyond
// the scope stack: the accumulated list of errors, so that checking can
// continue past a single bad node and report everything wrong with a
// program in one pass (matching the teacher CLI's p.Errors()-style
// accumulation rather than failing at the first error).
type Checker struct {
	Errors []*errors.CodedError
}

func New() *Checker {
	return &Checker{}
}

func (c *Checker) addError(e *errors.CodedError) {
	c.Errors = append(c.Errors, e)
}

// GetType resolves (and, for Declare nodes, assigns) the type of e within
// ts, returning the resolved type. Every failure is appended to c.Errors
// so that the caller can keep walking the rest of the tree rather than
// aborting outright; a node whose own type cannot be resolved yields
// types.Null(), while a Declare or Procedure whose declared type conflicts
// with its value still yields that declared type.
func (c *Checker) GetType(e *ast.Element, ts *TypeScope) types.Type {
	switch e.Kind {
	case ast.KComment, ast.KNull:
		return types.Null()

	case ast.KLiteral:
		return value.GetTypeObj(e.LitValue)

	case ast.KVariable:
		t, ok := ts.GetVal(e.Name)
		if !ok {
			c.addError(errors.Undefined(e.Pos, e.Name))
			return types.Null()
		}
		return t

	case ast.KBlock:
		return c.getBlockType(e, ts, e.AddScope)

	case ast.KCall:
		return c.getCallType(e, ts)

	case ast.KDeclare:
		return c.getDeclareType(e, ts)

	case ast.KSet:
		return c.getSetType(e, ts)

	case ast.KIf:
		return c.getIfType(e, ts)

	case ast.KBinaryOpr:
		return c.getBinaryOprType(e, ts)

	case ast.KUnaryOpr:
		return c.getUnaryOprType(e, ts)

	case ast.KProcedure:
		return c.getProcedureType(e, ts)

	case ast.KReturn:
		if e.Val == nil {
			return types.Null()
		}
		return c.GetType(e.Val, ts)

	case ast.KDelete:
		for _, name := range e.Names {
			if !ts.HasVal(name) {
				c.addError(errors.Undefined(e.Pos, name))
			}
		}
		return types.Null()

	default:
		c.addError(errors.New(errors.Code0_0, e.Pos, "malformed AST node"))
		return types.Null()
	}
}

// getBlockType types every statement in the block in order, optionally
// inside a fresh scope frame, and returns the type of the last statement
// (null for an empty block) — the same "conditionally push/pop a frame"
// shape as the original's get_block_type(add_set).
func (c *Checker) getBlockType(e *ast.Element, ts *TypeScope, addScope bool) types.Type {
	if addScope {
		ts.AddSet()
		defer ts.PopSet()
	}
	var last types.Type = types.Null()
	for i := range e.Content {
		last = c.GetType(&e.Content[i], ts)
	}
	return last
}

func (c *Checker) getCallType(e *ast.Element, ts *TypeScope) types.Type {
	calleeType := c.GetType(e.Callee, ts)
	for i := range e.Args {
		c.GetType(&e.Args[i], ts)
	}
	for _, kw := range e.Kwargs {
		c.GetType(&kw, ts)
	}
	inst, ok := calleeType.(*types.Instance)
	if !ok || (inst.Name != types.Proc && inst.Name != types.Fn) {
		c.addError(errors.New(errors.Code2_2, e.Pos, "value is not callable"))
		return types.Null()
	}
	if len(inst.TypeArgs) < 2 {
		return types.Null()
	}
	return inst.TypeArgs[len(inst.TypeArgs)-1]
}

// getDeclareType mirrors the original's in-place AST mutation: if the
// Declare has no explicit type, it's inferred from the value and written
// back into e.VarType; if it does have an explicit type and the value's
// type differs, the value is wrapped in a synthetic TypeCast node (here,
// a KUnaryOpr{Opr: value.TypeCast} borrowing the parent Declare's
// position — unlike the original, which defaults synthesized nodes to the
// zero position, this keeps the position threaded through for diagnostics
// raised against the cast itself).
func (c *Checker) getDeclareType(e *ast.Element, ts *TypeScope) types.Type {
	var valType types.Type = types.Null()
	if e.Val != nil {
		valType = c.GetType(e.Val, ts)
	}

	if e.VarType == nil {
		e.VarType = valType
	} else if e.Val != nil && !e.VarType.Equal(valType) {
		cast := ast.Element{
			Kind:    ast.KUnaryOpr,
			Pos:     e.Pos,
			Opr:     value.TypeCast,
			Operand: e.Val,
		}
		cast.VarType = e.VarType
		e.Val = &cast
		if !canCast(valType, e.VarType) {
			c.addError(errors.New(errors.Code4_0_1, e.Pos, "declared type "+e.VarType.String()+" does not match value type "+valType.String()))
		}
	}

	ts.DeclareVal(e.Name, e.VarType)
	return e.VarType
}

func (c *Checker) getSetType(e *ast.Element, ts *TypeScope) types.Type {
	declared, ok := ts.GetVal(e.Name)
	if !ok {
		c.addError(errors.Undefined(e.Pos, e.Name))
		return types.Null()
	}
	if e.Val != nil {
		c.GetType(e.Val, ts)
	}
	return declared
}

func (c *Checker) getIfType(e *ast.Element, ts *TypeScope) types.Type {
	if len(e.Conditions) == 0 {
		return types.Null()
	}
	first := e.Conditions[0]
	if first.Condition != nil {
		c.GetType(first.Condition, ts)
	}
	for i := range e.Conditions {
		if e.Conditions[i].IfTrue != nil {
			c.GetType(e.Conditions[i].IfTrue, ts)
		}
	}
	// Only the first branch's type is authoritative, matching the
	// original's TODO-flagged behaviour (get_type only inspects the first
	// condition's block).
	if first.IfTrue == nil {
		return types.Null()
	}
	return c.GetType(first.IfTrue, ts)
}

func (c *Checker) getBinaryOprType(e *ast.Element, ts *TypeScope) types.Type {
	lt := c.GetType(e.LHS, ts)
	rt := c.GetType(e.RHS, ts)
	result, err := binOprReturnType(e.Opr, lt, rt)
	if err != nil {
		c.addError(errors.NoImplBinary(e.Pos, e.Opr.String(), lt.String(), rt.String()))
		return types.Null()
	}
	return result
}

func (c *Checker) getUnaryOprType(e *ast.Element, ts *TypeScope) types.Type {
	if e.Opr == value.TypeCast {
		c.GetType(e.Operand, ts)
		return e.VarType
	}
	ot := c.GetType(e.Operand, ts)
	result, err := unOprReturnType(e.Opr, ot)
	if err != nil {
		c.addError(errors.NoImplUnary(e.Pos, e.Opr.String(), ot.String()))
		return types.Null()
	}
	return result
}

func (c *Checker) getProcedureType(e *ast.Element, ts *TypeScope) types.Type {
	ts.AddSet()
	seen := map[string]bool{}
	for _, arg := range e.ProcArgs {
		if seen[arg.Name] {
			c.addError(errors.New(errors.Code2_0_0, e.Pos, "duplicate argument name \""+arg.Name+"\""))
		}
		seen[arg.Name] = true
		ts.DeclareVal(arg.Name, arg.Type)
		if arg.Default != nil {
			c.GetType(arg.Default, ts)
		}
	}
	bodyType := c.getBlockType(e.Body, ts, false)
	ts.PopSet()

	if e.ReturnType == nil {
		e.ReturnType = bodyType
	} else if !e.ReturnType.Equal(bodyType) && !types.IsNull(bodyType) {
		c.addError(errors.New(errors.Code4_0_1, e.Pos, "return type "+e.ReturnType.String()+" does not match body type "+bodyType.String()))
	}

	name := types.Proc
	if e.IsFn {
		name = types.Fn
	}
	return &types.Instance{Name: name, TypeArgs: []types.Type{types.Null(), e.ReturnType}}
}

// canCast reports whether a value of type from can be TypeCast to type to
// without the checker flagging it as an error (numeric<->numeric,
// anything<->str and anything<->bool are always permitted; see value.Cast for the runtime
// rules this approximates statically).
func canCast(from, to types.Type) bool {
	fi, fok := from.(*types.Instance)
	ti, tok := to.(*types.Instance)
	if !fok || !tok {
		return false
	}
	if types.IsNumeric(fi.Name) && types.IsNumeric(ti.Name) {
		return true
	}
	if ti.Name == types.Str || fi.Name == types.Str {
		return true
	}
	if ti.Name == types.Bool || fi.Name == types.Bool {
		return true
	}
	return false
}
