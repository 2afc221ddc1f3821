package value

import (
	"math/big"

	"github.com/zyxtlang/zyxt-go/internal/types"
)

// castRHSToLHSKind implements the rule demonstrated by the original's
// typecast_add!/typecast_mul! macros for every arithmetic operator: the
// right operand is cast to the left operand's kind before the host
// operation runs, and the result is wrapped back in that same kind.
func castRHSToLHSKind(opr OprType, lhs, rhs Value) (Value, error) {
	if !IsNumeric(rhs) {
		return nil, errNoImpl(opr, lhs, rhs)
	}
	casted, err := Cast(rhs, types.FromName(lhs.Kind()))
	if err != nil {
		return nil, errNoImpl(opr, lhs, rhs)
	}
	return casted, nil
}

func add(lhs, rhs Value) (Value, error) {
	if s, ok := lhs.(Str); ok {
		if _, rhsIsStr := rhs.(Str); rhsIsStr || IsNumeric(rhs) {
			return Str{V: s.V + rhs.String()}, nil
		}
		return nil, errNoImpl(Plus, lhs, rhs)
	}
	if !IsNumeric(lhs) {
		return nil, errNoImpl(Plus, lhs, rhs)
	}
	y, err := castRHSToLHSKind(Plus, lhs, rhs)
	if err != nil {
		return nil, err
	}
	return intOrFloatOp(Plus, lhs, y, func(a, b *big.Int) *big.Int {
		return new(big.Int).Add(a, b)
	}, func(a, b float64) float64 { return a + b })
}

func sub(lhs, rhs Value) (Value, error) {
	if !IsNumeric(lhs) {
		return nil, errNoImpl(Minus, lhs, rhs)
	}
	y, err := castRHSToLHSKind(Minus, lhs, rhs)
	if err != nil {
		return nil, err
	}
	return intOrFloatOp(Minus, lhs, y, func(a, b *big.Int) *big.Int {
		return new(big.Int).Sub(a, b)
	}, func(a, b float64) float64 { return a - b })
}

func mul(lhs, rhs Value) (Value, error) {
	if s, ok := lhs.(Str); ok {
		return mulStr(s.V, rhs)
	}
	if s, ok := rhs.(Str); ok {
		return mulStr(s.V, lhs)
	}
	if !IsNumeric(lhs) {
		return nil, errNoImpl(AstMult, lhs, rhs)
	}
	y, err := castRHSToLHSKind(AstMult, lhs, rhs)
	if err != nil {
		return nil, err
	}
	return intOrFloatOp(AstMult, lhs, y, func(a, b *big.Int) *big.Int {
		return new(big.Int).Mul(a, b)
	}, func(a, b float64) float64 { return a * b })
}

// mulStr implements the string-repeat rule: "ab" * 3 == "ababab". Only
// non-negative integer counts are allowed; a negative count is a typecast
// error the same way the original's mul_str reports one.
func mulStr(s string, count Value) (Value, error) {
	i, ok := asBigInt(count)
	if !ok {
		return nil, errNoImpl(AstMult, Str{V: s}, count)
	}
	if i.Sign() < 0 {
		return nil, errTypecast(types.FromName(types.Str))
	}
	if !i.IsInt64() || i.Int64() > 1<<20 {
		return nil, errOverflow(AstMult, Str{V: s}, count)
	}
	n := int(i.Int64())
	out := make([]byte, 0, len(s)*n)
	for j := 0; j < n; j++ {
		out = append(out, s...)
	}
	return Str{V: string(out)}, nil
}

func div(lhs, rhs Value) (Value, error) {
	if !IsNumeric(lhs) {
		return nil, errNoImpl(Div, lhs, rhs)
	}
	y, err := castRHSToLHSKind(Div, lhs, rhs)
	if err != nil {
		return nil, err
	}
	if yi, ok := asBigInt(y); ok && yi.Sign() == 0 {
		return nil, errZeroDivision(Div)
	}
	if yf, ok := asFloat64(y); ok && yf == 0 {
		return nil, errZeroDivision(Div)
	}
	return intOrFloatOp(Div, lhs, y, func(a, b *big.Int) *big.Int {
		return new(big.Int).Quo(a, b)
	}, func(a, b float64) float64 { return a / b })
}

// fractDiv always performs true (fractional) division, regardless of
// whether the operands are integer kinds, and always yields an f64 — the
// one arithmetic operator whose result kind is not the left operand's kind.
func fractDiv(lhs, rhs Value) (Value, error) {
	x, xok := asBigFloat(lhs)
	y, yok := asBigFloat(rhs)
	if !xok || !yok {
		return nil, errNoImpl(FractDiv, lhs, rhs)
	}
	if y.Sign() == 0 {
		return nil, errZeroDivision(FractDiv)
	}
	q := new(big.Float).Quo(x, y)
	f64, _ := q.Float64()
	return Float64{V: f64}, nil
}

func modulo(lhs, rhs Value) (Value, error) {
	if !IsNumeric(lhs) {
		return nil, errNoImpl(Modulo, lhs, rhs)
	}
	y, err := castRHSToLHSKind(Modulo, lhs, rhs)
	if err != nil {
		return nil, err
	}
	if yi, ok := asBigInt(y); ok && yi.Sign() == 0 {
		return nil, errZeroDivision(Modulo)
	}
	if yf, ok := asFloat64(y); ok && yf == 0 {
		return nil, errZeroDivision(Modulo)
	}
	return intOrFloatOp(Modulo, lhs, y, func(a, b *big.Int) *big.Int {
		return new(big.Int).Rem(a, b)
	}, func(a, b float64) float64 {
		_, frac := divmod(a, b)
		return frac
	})
}

func divmod(a, b float64) (float64, float64) {
	q := float64(int64(a / b))
	return q, a - q*b
}

// intOrFloatOp runs intOp or floatOp depending on lhs's representation, and
// wraps the result back into lhs's own kind, reporting Overflow if the
// integer result doesn't fit a fixed-width kind.
func intOrFloatOp(opr OprType, lhs, rhs Value, intOp func(a, b *big.Int) *big.Int, floatOp func(a, b float64) float64) (Value, error) {
	kind := lhs.Kind()
	if xi, ok := asBigInt(lhs); ok {
		yi, _ := asBigInt(rhs)
		result := intOp(xi, yi)
		wrapped, fits := wrapIntKind(kind, result)
		if !fits {
			return nil, errOverflow(opr, lhs, rhs)
		}
		return wrapped, nil
	}
	xf, _ := asFloat64(lhs)
	yf, _ := asFloat64(rhs)
	wrapped, _ := wrapFloatKind(kind, floatOp(xf, yf))
	return wrapped, nil
}
