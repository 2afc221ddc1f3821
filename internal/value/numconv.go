package value

import (
	"math/big"

	"github.com/zyxtlang/zyxt-go/internal/types"
)

// asBigInt extracts the integer value of v as a *big.Int, and reports
// whether v is one of the integer kinds (I8..I128/Isize/Ibig,
// U8..U128/Usize/Ubig).
func asBigInt(v Value) (*big.Int, bool) {
	switch vv := v.(type) {
	case Int[int8]:
		return big.NewInt(int64(vv.V)), true
	case Int[int16]:
		return big.NewInt(int64(vv.V)), true
	case Int[int32]:
		return big.NewInt(int64(vv.V)), true
	case Int[int64]:
		return big.NewInt(vv.V), true
	case Int[int]:
		return big.NewInt(int64(vv.V)), true
	case Uint[uint8]:
		return new(big.Int).SetUint64(uint64(vv.V)), true
	case Uint[uint16]:
		return new(big.Int).SetUint64(uint64(vv.V)), true
	case Uint[uint32]:
		return new(big.Int).SetUint64(uint64(vv.V)), true
	case Uint[uint64]:
		return new(big.Int).SetUint64(vv.V), true
	case Uint[uint]:
		return new(big.Int).SetUint64(uint64(vv.V)), true
	case BigInt:
		return vv.V, true
	default:
		return nil, false
	}
}

// asFloat64 extracts the floating-point value of v, and reports whether v
// is one of the float kinds.
func asFloat64(v Value) (float64, bool) {
	switch vv := v.(type) {
	case Float16:
		return float64(vv.ToFloat32()), true
	case Float32:
		return float64(vv.V), true
	case Float64:
		return vv.V, true
	default:
		return 0, false
	}
}

// IsNumeric reports whether v is any of the numeric kinds.
func IsNumeric(v Value) bool {
	_, isInt := asBigInt(v)
	if isInt {
		return true
	}
	_, isFloat := asFloat64(v)
	return isFloat
}

// asBigFloat widens any numeric value (integer or float) to a *big.Float,
// used by operators that must mix integer and floating operands
// (FractDiv).
func asBigFloat(v Value) (*big.Float, bool) {
	if i, ok := asBigInt(v); ok {
		return new(big.Float).SetInt(i), true
	}
	if f, ok := asFloat64(v); ok {
		return big.NewFloat(f), true
	}
	return nil, false
}

// wrapIntKind builds a Value of the given integer kind from a *big.Int,
// reporting whether v fits in that kind's range without overflowing
// (Ibig always fits, since it is unbounded; Ubig fits any non-negative v,
// since it is bounded only below).
func wrapIntKind(kind string, v *big.Int) (Value, bool) {
	min, max, bounded := bitWidthRange(kind)
	if bounded && !inRange(v, min, max) {
		return nil, false
	}
	if !bounded && kind == types.Ubig && v.Sign() < 0 {
		return nil, false
	}
	switch kind {
	case types.I8:
		return Int[int8]{V: int8(v.Int64())}, true
	case types.I16:
		return Int[int16]{V: int16(v.Int64())}, true
	case types.I32:
		return Int[int32]{V: int32(v.Int64())}, true
	case types.I64:
		return Int[int64]{V: v.Int64()}, true
	case types.Isize:
		return Int[int]{V: int(v.Int64())}, true
	case types.I128:
		return BigInt{V: new(big.Int).Set(v), KindKey: types.I128}, true
	case types.Ibig:
		return BigInt{V: new(big.Int).Set(v), KindKey: types.Ibig}, true
	case types.U8:
		return Uint[uint8]{V: uint8(v.Uint64())}, true
	case types.U16:
		return Uint[uint16]{V: uint16(v.Uint64())}, true
	case types.U32:
		return Uint[uint32]{V: uint32(v.Uint64())}, true
	case types.U64:
		return Uint[uint64]{V: v.Uint64()}, true
	case types.Usize:
		return Uint[uint]{V: uint(v.Uint64())}, true
	case types.U128:
		return BigInt{V: new(big.Int).Set(v), KindKey: types.U128}, true
	case types.Ubig:
		return BigInt{V: new(big.Int).Set(v), KindKey: types.Ubig}, true
	default:
		return nil, false
	}
}

// wrapFloatKind builds a Value of the given float kind from a float64.
func wrapFloatKind(kind string, f float64) (Value, bool) {
	switch kind {
	case types.F16:
		return NewFloat16(float32(f)), true
	case types.F32:
		return Float32{V: float32(f)}, true
	case types.F64:
		return Float64{V: f}, true
	default:
		return nil, false
	}
}

// isIntKind/isFloatKind classify a kind name, used by the operator
// functions to decide which representation ("cast RHS to LHS's kind") to
// perform the operation in.
func isIntKind(kind string) bool {
	_, _, ok := bitWidthRange(kind)
	return ok || kind == types.Ibig || kind == types.Ubig
}

func isFloatKind(kind string) bool {
	return kind == types.F16 || kind == types.F32 || kind == types.F64
}
