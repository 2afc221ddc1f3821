package interp

import (
	"bytes"
	"testing"

	"github.com/zyxtlang/zyxt-go/internal/ast"
	"github.com/zyxtlang/zyxt-go/internal/token"
	"github.com/zyxtlang/zyxt-go/internal/types"
	"github.com/zyxtlang/zyxt-go/internal/value"
)

func pos(line int) token.Position { return token.Position{File: "t.zx", Line: line, Column: 1} }

func TestEvalLiteral(t *testing.T) {
	ip := New(&bytes.Buffer{})
	vs := NewValueScope()
	e := ast.Lit(pos(1), value.NewInt(32, 7))
	got, err := ip.Eval(&e, vs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "7" {
		t.Fatalf("got %v, want 7", got)
	}
}

func TestEvalUndefinedVariable(t *testing.T) {
	ip := New(&bytes.Buffer{})
	vs := NewValueScope()
	e := ast.Var(pos(1), "nope")
	_, err := ip.Eval(&e, vs)
	if err == nil {
		t.Fatalf("expected an error for an undefined variable")
	}
}

func TestEvalDeclareAndVariable(t *testing.T) {
	ip := New(&bytes.Buffer{})
	vs := NewValueScope()
	lit := ast.Lit(pos(1), value.NewInt(32, 5))
	decl := ast.Declare(pos(1), "x", nil, &lit)
	if _, err := ip.Eval(&decl, vs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ref := ast.Var(pos(2), "x")
	got, err := ip.Eval(&ref, vs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "5" {
		t.Fatalf("got %v, want 5", got)
	}
}

func TestEvalBinaryOpr(t *testing.T) {
	ip := New(&bytes.Buffer{})
	vs := NewValueScope()
	lhs := ast.Lit(pos(1), value.NewInt(32, 2))
	rhs := ast.Lit(pos(1), value.NewInt(32, 3))
	e := ast.BinOp(pos(1), value.Plus, lhs, rhs)
	got, err := ip.Eval(&e, vs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "5" {
		t.Fatalf("got %v, want 5", got)
	}
}

func TestProcedureCallReturnsValue(t *testing.T) {
	// Scenario grounded on spec §8: declaring a procedure that returns a
	// value, then calling it, should yield that value with Return unwrapped.
	ip := New(&bytes.Buffer{})
	vs := NewValueScope()

	retLit := ast.Lit(pos(1), value.NewInt(32, 42))
	retStmt := ast.Ret(pos(1), &retLit)
	body := ast.Block(pos(1), false, retStmt)
	proc := ast.Procedure(pos(1), "answer", nil, types.FromName(types.I32), true, body)
	decl := ast.Declare(pos(1), "answer", nil, &proc)
	if _, err := ip.Eval(&decl, vs); err != nil {
		t.Fatalf("unexpected error declaring procedure: %v", err)
	}

	callee := ast.Var(pos(2), "answer")
	call := ast.Call(pos(2), callee)
	got, err := ip.Eval(&call, vs)
	if err != nil {
		t.Fatalf("unexpected error calling procedure: %v", err)
	}
	if got.String() != "42" {
		t.Fatalf("got %v, want 42", got)
	}
	if _, isReturn := got.(value.Return); isReturn {
		t.Fatalf("call result should have Return unwrapped")
	}
}

func TestIfEvaluatesMatchingBranch(t *testing.T) {
	ip := New(&bytes.Buffer{})
	vs := NewValueScope()
	cond := ast.Lit(pos(1), value.Bool{V: true})
	thenLit := ast.Lit(pos(1), value.NewInt(32, 1))
	thenBlock := ast.Block(pos(1), false, thenLit)
	elseLit := ast.Lit(pos(1), value.NewInt(32, 2))
	elseBlock := ast.Block(pos(1), false, elseLit)
	e := ast.If(pos(1),
		ast.Condition{Condition: &cond, IfTrue: &thenBlock},
		ast.Condition{Condition: nil, IfTrue: &elseBlock},
	)
	got, err := ip.Eval(&e, vs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "1" {
		t.Fatalf("got %v, want 1", got)
	}
}

func TestSetOnUndeclaredNameErrors(t *testing.T) {
	ip := New(&bytes.Buffer{})
	vs := NewValueScope()
	val := ast.Lit(pos(1), value.NewInt(32, 1))
	e := ast.Set(pos(1), "nope", &val)
	_, err := ip.Eval(&e, vs)
	if err == nil {
		t.Fatalf("expected an error assigning to an undeclared name")
	}
}

func TestBlockReturnShortCircuits(t *testing.T) {
	ip := New(&bytes.Buffer{})
	vs := NewValueScope()
	retLit := ast.Lit(pos(1), value.NewInt(32, 1))
	retStmt := ast.Ret(pos(1), &retLit)
	unreachable := ast.Lit(pos(2), value.NewInt(32, 999))
	block := ast.Block(pos(1), false, retStmt, unreachable)
	got, err := ip.Eval(&block, vs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, ok := got.(value.Return)
	if !ok || r.Inner.String() != "1" {
		t.Fatalf("got %#v, want Return{1}", got)
	}
}
