// Package ast defines the typed AST this interpreter walks: Element, a
// closed tagged union of every node shape the checker and evaluator know
// how to handle. This is a deliberate divergence from an open
// Node/Expression/Statement interface hierarchy: the Data Model this
// package implements describes Element as a single sum type, and closing
// it means the checker and interpreter can exhaustively switch on Kind
// instead of relying on type assertions against an open set of node types.
package ast

import (
	"github.com/zyxtlang/zyxt-go/internal/token"
	"github.com/zyxtlang/zyxt-go/internal/types"
	"github.com/zyxtlang/zyxt-go/internal/value"
)

// Kind tags which variant an Element holds.
type Kind int

const (
	KComment Kind = iota
	KCall
	KUnaryOpr
	KBinaryOpr
	KDeclare
	KSet
	KLiteral
	KVariable
	KIf
	KBlock
	KDelete
	KReturn
	KProcedure
	KNull
	KToken
)

// OprKind re-exports value.OprType under the ast package so call sites that
// only import ast (not value) can still name an operator. It is a type
// alias, so no conversion between the two is needed.
type OprKind = value.OprType

// Argument is a procedure parameter: its name, declared type, and default
// value expression (nil if the parameter has no default).
type Argument struct {
	Name    string
	Type    types.Type
	Default *Element
}

// Condition pairs a branch's guard expression with the block to run when
// it holds. The Element AST's "If" node holds a list of these, so that an
// if/elif/.../else chain is just a sequence of conditions with the final
// unconditional "else" branch represented by a nil Condition field.
type Condition struct {
	Condition *Element // nil for the trailing unconditional branch
	IfTrue    *Element // always a KBlock
}

// Element is the closed AST node type. Exactly one of the Kind-specific
// field groups below is meaningful for a given Kind; the rest are zero,
// except where a group notes that it reuses another group's field.
// This trades a little memory for avoiding 15 separate concrete node
// types and the resulting interface-based dispatch.
type Element struct {
	Kind Kind
	Pos  token.Position

	// Comment
	Text string

	// Call: Callee(Args...), with optional Kwargs by name.
	Callee *Element
	Args   []Element
	Kwargs map[string]Element

	// UnaryOpr / BinaryOpr
	Opr  OprKind
	LHS  *Element
	RHS  *Element
	// Operand is used instead of LHS for UnaryOpr. A TypeCast UnaryOpr
	// also sets VarType (below) to the cast's target type.
	Operand *Element

	// Declare: Name : Type = Value (Type may be nil, to be inferred).
	// Set: Name = Value (Type always nil; never mutates a declared type).
	Name    string
	VarType types.Type
	Val     *Element

	// Literal
	LitValue value.Value

	// Variable: plain name reference. Uses Name above.

	// If
	Conditions []Condition

	// Block
	Content []Element
	// AddScope controls whether evaluating/typing this block pushes a new
	// scope frame; false for a procedure's own body block, whose frame was
	// already pushed by the enclosing Procedure/Call handling.
	AddScope bool

	// Delete: Names holds the variables the statement names. The checker
	// and interpreter only verify that each name is bound (error 3.0
	// otherwise); neither removes the binding from its scope.
	Names []string

	// Return: Value may be nil (bare "return").
	// (reuses Val above)

	// Procedure
	ProcArgs   []Argument
	ReturnType types.Type // nil if to be inferred from the body
	IsFn       bool
	Body       *Element // always a KBlock

	// Token: an un-elaborated lexical token surviving into this stage.
	// Nothing in this module builds KToken nodes; the checker and
	// interpreter reject them (error 0.0) if encountered.
	TokenText string
}

// GetPos returns the node's source position, the position-reporting shape
// every diagnostic needs.
func (e *Element) GetPos() token.Position { return e.Pos }

// GetName returns the defining name of this element, where applicable
// (Declare, Variable, Procedure with a name, Delete's first name), mirroring
// the original's Element::get_name.
func (e *Element) GetName() string {
	switch e.Kind {
	case KDeclare, KVariable, KProcedure:
		return e.Name
	case KDelete:
		if len(e.Names) > 0 {
			return e.Names[0]
		}
	}
	return ""
}
