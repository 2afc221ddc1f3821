// Package samples catalogues pre-built ast.Element programs. This stands
// in for parser output: lexing and parsing are out of scope (see
// SPEC_FULL.md §1), so cmd/zyxt's --demo flag selects one of these
// programs directly instead of reading and parsing source text.
package samples

import (
	"github.com/zyxtlang/zyxt-go/internal/ast"
	"github.com/zyxtlang/zyxt-go/internal/token"
	"github.com/zyxtlang/zyxt-go/internal/types"
	"github.com/zyxtlang/zyxt-go/internal/value"
)

// Program names every catalogued sample, used as the argument to Get and
// as the --demo flag's allowed values.
type Program struct {
	Name        string
	Description string
	Build       func() ast.Element
}

func p(line int) token.Position { return token.Position{File: "<demo>", Line: line, Column: 1} }

// arithmetic declares x: i32 = 2, y: i64 = 3, and returns y + x, an i64 —
// exercising the cast-RHS-to-LHS-kind arithmetic rule across a type
// boundary (the i32 right operand is cast to the i64 left operand's kind).
func arithmetic() ast.Element {
	xVal := ast.Lit(p(1), value.NewInt(32, 2))
	xDecl := ast.Declare(p(1), "x", nil, &xVal)
	yVal := ast.Lit(p(2), value.NewInt(64, 3))
	yDecl := ast.Declare(p(2), "y", nil, &yVal)
	xRef := ast.Var(p(3), "x")
	yRef := ast.Var(p(3), "y")
	sum := ast.BinOp(p(3), value.Plus, yRef, xRef)
	return ast.Block(p(1), true, xDecl, yDecl, sum)
}

// typecastOverflow declares a: i32 = 1000 then casts it down to i8,
// demonstrating the saturating TypeCast policy.
func typecastOverflow() ast.Element {
	aVal := ast.Lit(p(1), value.NewInt(32, 1000))
	aDecl := ast.Declare(p(1), "a", nil, &aVal)
	aRef := ast.Var(p(2), "a")
	cast := ast.UnOp(p(2), value.TypeCast, aRef)
	cast.VarType = types.FromName(types.I8)
	bDecl := ast.Declare(p(2), "b", types.FromName(types.I8), &cast)
	bRef := ast.Var(p(3), "b")
	return ast.Block(p(1), true, aDecl, bDecl, bRef)
}

// procedureReturn declares a function that doubles its argument and calls
// it, exercising Return unwrapping and call argument binding.
func procedureReturn() ast.Element {
	argRef := ast.Var(p(1), "n")
	two := ast.Lit(p(1), value.NewInt(32, 2))
	doubled := ast.BinOp(p(1), value.AstMult, argRef, two)
	retStmt := ast.Ret(p(1), &doubled)
	body := ast.Block(p(1), false, retStmt)
	proc := ast.Procedure(p(1), "double", []ast.Argument{{Name: "n", Type: types.FromName(types.I32)}}, types.FromName(types.I32), true, body)
	procDecl := ast.Declare(p(1), "double", nil, &proc)

	arg := ast.Lit(p(2), value.NewInt(32, 21))
	callee := ast.Var(p(2), "double")
	call := ast.Call(p(2), callee, arg)
	return ast.Block(p(1), true, procDecl, call)
}

// undefinedVariable references a name that was never declared, exercising
// error 3.0.
func undefinedVariable() ast.Element {
	return ast.Block(p(1), true, ast.Var(p(1), "ghost"))
}

// concatMixedKinds concatenates an i8 with a u64, exercising the Concat
// widening rule across signed/unsigned kinds of different widths.
func concatMixedKinds() ast.Element {
	lhs := ast.Lit(p(1), value.NewInt(8, 5))
	rhs := ast.Lit(p(1), value.NewUint(64, 3))
	return ast.Block(p(1), true, ast.BinOp(p(1), value.Concat, lhs, rhs))
}

// ifElse exercises the If element choosing between branches at runtime.
func ifElse() ast.Element {
	cond := ast.BinOp(p(1), value.Gt, ast.Lit(p(1), value.NewInt(32, 5)), ast.Lit(p(1), value.NewInt(32, 3)))
	thenLit := ast.Lit(p(2), value.Str{V: "bigger"})
	thenBlock := ast.Block(p(2), false, thenLit)
	elseLit := ast.Lit(p(3), value.Str{V: "smaller-or-equal"})
	elseBlock := ast.Block(p(3), false, elseLit)
	ifElem := ast.If(p(1),
		ast.Condition{Condition: &cond, IfTrue: &thenBlock},
		ast.Condition{Condition: nil, IfTrue: &elseBlock},
	)
	return ast.Block(p(1), true, ifElem)
}

var registry = []Program{
	{Name: "arithmetic", Description: "mixed-width arithmetic with an implicit cast", Build: arithmetic},
	{Name: "typecast-overflow", Description: "a saturating narrowing TypeCast", Build: typecastOverflow},
	{Name: "procedure-return", Description: "declaring and calling a procedure with a Return value", Build: procedureReturn},
	{Name: "undefined-variable", Description: "a reference to an undeclared name (error 3.0)", Build: undefinedVariable},
	{Name: "concat-mixed-kinds", Description: "Concat between differently-sized signed and unsigned integers", Build: concatMixedKinds},
	{Name: "if-else", Description: "an If element choosing between two branches", Build: ifElse},
}

// All returns every catalogued program, in a stable order.
func All() []Program {
	return registry
}

// Get returns the named program, or ok=false if no such program exists.
func Get(name string) (Program, bool) {
	for _, pr := range registry {
		if pr.Name == name {
			return pr, true
		}
	}
	return Program{}, false
}
