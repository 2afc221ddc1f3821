package ast

import (
	"github.com/zyxtlang/zyxt-go/internal/token"
	"github.com/zyxtlang/zyxt-go/internal/types"
	"github.com/zyxtlang/zyxt-go/internal/value"
)

// The constructors below exist so that internal/samples can assemble
// programs declaratively instead of hand-filling Element literals field by
// field; each fixes Pos to the given position and zeroes every field the
// variant doesn't use.

func Lit(pos token.Position, v value.Value) Element {
	return Element{Kind: KLiteral, Pos: pos, LitValue: v}
}

func Var(pos token.Position, name string) Element {
	return Element{Kind: KVariable, Pos: pos, Name: name}
}

func Declare(pos token.Position, name string, t types.Type, val *Element) Element {
	return Element{Kind: KDeclare, Pos: pos, Name: name, VarType: t, Val: val}
}

func Set(pos token.Position, name string, val *Element) Element {
	return Element{Kind: KSet, Pos: pos, Name: name, Val: val}
}

func BinOp(pos token.Position, opr OprKind, lhs, rhs Element) Element {
	return Element{Kind: KBinaryOpr, Pos: pos, Opr: opr, LHS: &lhs, RHS: &rhs}
}

func UnOp(pos token.Position, opr OprKind, operand Element) Element {
	return Element{Kind: KUnaryOpr, Pos: pos, Opr: opr, Operand: &operand}
}

func Call(pos token.Position, callee Element, args ...Element) Element {
	return Element{Kind: KCall, Pos: pos, Callee: &callee, Args: args}
}

func Block(pos token.Position, addScope bool, content ...Element) Element {
	return Element{Kind: KBlock, Pos: pos, AddScope: addScope, Content: content}
}

func If(pos token.Position, conds ...Condition) Element {
	return Element{Kind: KIf, Pos: pos, Conditions: conds}
}

func Ret(pos token.Position, val *Element) Element {
	return Element{Kind: KReturn, Pos: pos, Val: val}
}

func Delete(pos token.Position, names ...string) Element {
	return Element{Kind: KDelete, Pos: pos, Names: names}
}

func Comment(pos token.Position, text string) Element {
	return Element{Kind: KComment, Pos: pos, Text: text}
}

func Null(pos token.Position) Element {
	return Element{Kind: KNull, Pos: pos}
}

func Procedure(pos token.Position, name string, args []Argument, returnType types.Type, isFn bool, body Element) Element {
	return Element{
		Kind:       KProcedure,
		Pos:        pos,
		Name:       name,
		ProcArgs:   args,
		ReturnType: returnType,
		IsFn:       isFn,
		Body:       &body,
	}
}
