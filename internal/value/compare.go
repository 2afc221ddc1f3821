package value

import (
	"github.com/zyxtlang/zyxt-go/internal/types"
)

// compare implements Eq/Ne/Lt/Le/Gt/Ge (§4.7 of the expanded spec: these
// six operators aren't in the original value algebra, which only defined
// arithmetic/Concat/TypeCast, so they're built fresh here in the same
// cast-RHS-to-LHS-kind style the rest of the arithmetic uses).
func compare(opr OprType, lhs, rhs Value) (Value, error) {
	if lhs.Kind() == types.Str || rhs.Kind() == types.Str {
		ls, lok := lhs.(Str)
		rs, rok := rhs.(Str)
		if !lok || !rok {
			if opr == Eq {
				return Bool{V: false}, nil
			}
			if opr == Ne {
				return Bool{V: true}, nil
			}
			return nil, errNoImpl(opr, lhs, rhs)
		}
		return boolResult(opr, compareStrings(ls.V, rs.V))
	}
	if lhs.Kind() == types.Bool || rhs.Kind() == types.Bool {
		lb, lok := lhs.(Bool)
		rb, rok := rhs.(Bool)
		if !lok || !rok {
			if opr == Eq {
				return Bool{V: false}, nil
			}
			if opr == Ne {
				return Bool{V: true}, nil
			}
			return nil, errNoImpl(opr, lhs, rhs)
		}
		cmp := 0
		if lb.V != rb.V {
			if lb.V {
				cmp = 1
			} else {
				cmp = -1
			}
		}
		return boolResult(opr, cmp)
	}
	if _, lhsIsNull := lhs.(Null); lhsIsNull && (opr == Eq || opr == Ne) {
		_, rhsIsNull := rhs.(Null)
		return Bool{V: rhsIsNull == (opr == Eq)}, nil
	}
	if !IsNumeric(lhs) || !IsNumeric(rhs) {
		if opr == Eq {
			return Bool{V: false}, nil
		}
		if opr == Ne {
			return Bool{V: true}, nil
		}
		return nil, errNoImpl(opr, lhs, rhs)
	}
	casted, err := Cast(rhs, types.FromName(lhs.Kind()))
	if err != nil {
		return nil, errNoImpl(opr, lhs, rhs)
	}
	var cmp int
	if xi, ok := asBigInt(lhs); ok {
		yi, _ := asBigInt(casted)
		cmp = xi.Cmp(yi)
	} else {
		xf, _ := asFloat64(lhs)
		yf, _ := asFloat64(casted)
		switch {
		case xf < yf:
			cmp = -1
		case xf > yf:
			cmp = 1
		default:
			cmp = 0
		}
	}
	return boolResult(opr, cmp)
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func boolResult(opr OprType, cmp int) (Value, error) {
	switch opr {
	case Eq:
		return Bool{V: cmp == 0}, nil
	case Ne:
		return Bool{V: cmp != 0}, nil
	case Lt:
		return Bool{V: cmp < 0}, nil
	case Le:
		return Bool{V: cmp <= 0}, nil
	case Gt:
		return Bool{V: cmp > 0}, nil
	case Ge:
		return Bool{V: cmp >= 0}, nil
	default:
		return nil, &OprError{Kind: NoImplForOpr, Opr: opr}
	}
}

func logicalAnd(lhs, rhs Value) (Value, error) {
	lb, lok := lhs.(Bool)
	rb, rok := rhs.(Bool)
	if !lok || !rok {
		return nil, errNoImpl(And, lhs, rhs)
	}
	return Bool{V: lb.V && rb.V}, nil
}

func logicalOr(lhs, rhs Value) (Value, error) {
	lb, lok := lhs.(Bool)
	rb, rok := rhs.(Bool)
	if !lok || !rok {
		return nil, errNoImpl(Or, lhs, rhs)
	}
	return Bool{V: lb.V || rb.V}, nil
}
