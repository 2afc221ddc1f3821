package value

import "github.com/zyxtlang/zyxt-go/internal/types"

// OprType enumerates every operator the evaluator and type checker know how
// to apply to a pair (or, for unary/Not, a single) of values. AstMult,
// DotMult and CrossMult are three distinct source spellings of
// multiplication (*, the middle-dot, and the cross sign) that share one
// implementation; they are kept separate here only because the AST needs to
// remember which glyph produced the node.
type OprType int

const (
	Plus OprType = iota
	Minus
	AstMult
	DotMult
	CrossMult
	Div
	FractDiv
	Modulo
	Concat
	TypeCast
	MinusSign
	PlusSign
	Not
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	And
	Or
)

func (o OprType) String() string {
	switch o {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case AstMult:
		return "*"
	case DotMult:
		return "·"
	case CrossMult:
		return "×"
	case Div:
		return "/"
	case FractDiv:
		return "÷"
	case Modulo:
		return "%"
	case Concat:
		return "~"
	case TypeCast:
		return "::"
	case MinusSign:
		return "-"
	case PlusSign:
		return "+"
	case Not:
		return "!"
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	case And:
		return "&&"
	case Or:
		return "||"
	default:
		return "?"
	}
}

// IsMult reports whether o is one of the three multiplication spellings.
func (o OprType) IsMult() bool {
	return o == AstMult || o == DotMult || o == CrossMult
}

// OprErrorKind classifies why an operator application failed.
type OprErrorKind int

const (
	NoImplForOpr OprErrorKind = iota
	TypecastErr
	ZeroDivision
	Overflow
)

// OprError is the error type every operator-application function returns.
// It is an ordinary Go error, returned rather than panicked, so that the
// checker and interpreter can thread it up to the error reporter through
// normal control flow (see SPEC_FULL.md §7).
type OprError struct {
	Kind     OprErrorKind
	AtType   types.Type // set for TypecastErr: the type the cast was to
	Opr      OprType
	LHS, RHS string // kind names, for message formatting
}

func (e *OprError) Error() string {
	switch e.Kind {
	case TypecastErr:
		return "cannot cast to type " + e.AtType.String()
	case ZeroDivision:
		return "division by zero"
	case Overflow:
		return "arithmetic overflow"
	default:
		return "no implementation for operator " + e.Opr.String() + " between " + e.LHS + " and " + e.RHS
	}
}

func errNoImpl(opr OprType, lhs, rhs Value) *OprError {
	return &OprError{Kind: NoImplForOpr, Opr: opr, LHS: lhs.Kind(), RHS: rhs.Kind()}
}

func errZeroDivision(opr OprType) *OprError {
	return &OprError{Kind: ZeroDivision, Opr: opr}
}

func errOverflow(opr OprType, lhs, rhs Value) *OprError {
	return &OprError{Kind: Overflow, Opr: opr, LHS: lhs.Kind(), RHS: rhs.Kind()}
}

func errTypecast(t types.Type) *OprError {
	return &OprError{Kind: TypecastErr, AtType: t}
}

// BinOpr applies a binary operator, unwrapping any Return sentinel on
// either operand first, mirroring the original interpreter recursing
// through Value::Return before every operation.
func BinOpr(opr OprType, lhs, rhs Value) (Value, error) {
	lhs, rhs = Unreturn(lhs), Unreturn(rhs)
	switch opr {
	case Plus:
		return add(lhs, rhs)
	case Minus:
		return sub(lhs, rhs)
	case AstMult, DotMult, CrossMult:
		return mul(lhs, rhs)
	case Div:
		return div(lhs, rhs)
	case FractDiv:
		return fractDiv(lhs, rhs)
	case Modulo:
		return modulo(lhs, rhs)
	case Concat:
		return concat(lhs, rhs)
	case Eq, Ne, Lt, Le, Gt, Ge:
		return compare(opr, lhs, rhs)
	case And:
		return logicalAnd(lhs, rhs)
	case Or:
		return logicalOr(lhs, rhs)
	default:
		return nil, errNoImpl(opr, lhs, rhs)
	}
}

// UnOpr applies a unary operator.
func UnOpr(opr OprType, v Value) (Value, error) {
	v = Unreturn(v)
	switch opr {
	case MinusSign:
		return negate(v)
	case PlusSign:
		return unaryPlus(v)
	case Not:
		return not(v)
	default:
		return nil, &OprError{Kind: NoImplForOpr, Opr: opr, LHS: v.Kind()}
	}
}
