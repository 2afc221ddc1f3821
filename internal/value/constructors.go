package value

import (
	"math/big"

	"github.com/zyxtlang/zyxt-go/internal/types"
)

// NewInt builds a signed numeric value of the given width (8, 16, 32, 64)
// from an int64. Use NewBigInt directly for i128/ibig.
func NewInt(width int, v int64) Value {
	switch width {
	case 8:
		return Int[int8]{V: int8(v)}
	case 16:
		return Int[int16]{V: int16(v)}
	case 32:
		return Int[int32]{V: int32(v)}
	case 64:
		return Int[int64]{V: v}
	default:
		panic("value.NewInt: unsupported width")
	}
}

// NewIsize builds an isize value.
func NewIsize(v int64) Value { return Int[int]{V: int(v)} }

// NewUint builds an unsigned numeric value of the given width from a
// uint64. Use NewBigInt directly for u128/ubig.
func NewUint(width int, v uint64) Value {
	switch width {
	case 8:
		return Uint[uint8]{V: uint8(v)}
	case 16:
		return Uint[uint16]{V: uint16(v)}
	case 32:
		return Uint[uint32]{V: uint32(v)}
	case 64:
		return Uint[uint64]{V: v}
	default:
		panic("value.NewUint: unsupported width")
	}
}

// NewUsize builds a usize value.
func NewUsize(v uint64) Value { return Uint[uint]{V: uint(v)} }

// NewI128/NewU128/NewIbig/NewUbig are convenience wrappers over NewBigInt.
func NewI128(v int64) Value { return NewBigInt(types.I128, big.NewInt(v)) }
func NewU128(v uint64) Value {
	return NewBigInt(types.U128, new(big.Int).SetUint64(v))
}
func NewIbig(v *big.Int) Value { return NewBigInt(types.Ibig, v) }
func NewUbig(v *big.Int) Value { return NewBigInt(types.Ubig, v) }

// NewF32/NewF64 build the native-width float kinds.
func NewF32(v float32) Value { return Float32{V: v} }
func NewF64(v float64) Value { return Float64{V: v} }
