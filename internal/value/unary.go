package value

import "math/big"

// negate implements the MinusSign unary operator. Grounded on the
// original's un_opr: MinusSign is defined only for the signed numeric
// kinds (I8/I16/I32/I64/I128/Isize/Ibig/F16/F32/F64); unsigned kinds have
// no negation and report NoImplForOpr, matching the original.
func negate(v Value) (Value, error) {
	if i, ok := asBigInt(v); ok {
		kind := v.Kind()
		if !isSignedIntKind(kind) {
			return nil, &OprError{Kind: NoImplForOpr, Opr: MinusSign, LHS: kind}
		}
		neg := new(big.Int).Neg(i)
		result, fits := wrapIntKind(kind, neg)
		if !fits {
			return nil, &OprError{Kind: Overflow, Opr: MinusSign, LHS: kind}
		}
		return result, nil
	}
	if f, ok := asFloat64(v); ok {
		result, _ := wrapFloatKind(v.Kind(), -f)
		return result, nil
	}
	return nil, &OprError{Kind: NoImplForOpr, Opr: MinusSign, LHS: v.Kind()}
}

// unaryPlus implements PlusSign: identity over the same kind set as
// MinusSign, NoImplForOpr otherwise.
func unaryPlus(v Value) (Value, error) {
	if isSignedIntKind(v.Kind()) || isFloatKind(v.Kind()) {
		return v, nil
	}
	return nil, &OprError{Kind: NoImplForOpr, Opr: PlusSign, LHS: v.Kind()}
}

func not(v Value) (Value, error) {
	b, ok := v.(Bool)
	if !ok {
		return nil, &OprError{Kind: NoImplForOpr, Opr: Not, LHS: v.Kind()}
	}
	return Bool{V: !b.V}, nil
}

func isSignedIntKind(kind string) bool {
	info, ok := infoOf(kind)
	return ok && info.signed
}
