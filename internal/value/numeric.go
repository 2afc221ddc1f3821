package value

import (
	"math"
	"math/big"
	"strconv"

	"github.com/zyxtlang/zyxt-go/internal/types"
)

// signedNative is the set of Go integer types backing the fixed-width and
// pointer-width signed kinds (I8, I16, I32, I64, Isize). I128 is backed by
// BigInt instead, since Go has no native 128-bit integer.
type signedNative interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// unsignedNative is the unsigned equivalent of signedNative, backing U8,
// U16, U32, U64 and Usize.
type unsignedNative interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Int is the runtime representation shared by every native-width signed
// integer kind. Int[int8], Int[int16], ... are distinct Go types, so the
// type system still tells I8 and I16 values apart without an extra tag;
// Kind() recovers the primitive type name via a switch on the zero value,
// following this spec's guidance (§9: a generic pair-dispatch helper
// collapses what would otherwise be one hand-written struct per kind).
type Int[T signedNative] struct {
	V T
}

func (i Int[T]) Kind() string {
	var zero T
	switch any(zero).(type) {
	case int8:
		return types.I8
	case int16:
		return types.I16
	case int32:
		return types.I32
	case int64:
		return types.I64
	case int:
		return types.Isize
	default:
		return "" // unreachable: signedNative is closed to the cases above
	}
}

func (i Int[T]) String() string {
	return strconv.FormatInt(int64(i.V), 10)
}

// Uint is the unsigned counterpart of Int.
type Uint[T unsignedNative] struct {
	V T
}

func (u Uint[T]) Kind() string {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return types.U8
	case uint16:
		return types.U16
	case uint32:
		return types.U32
	case uint64:
		return types.U64
	case uint:
		return types.Usize
	default:
		return ""
	}
}

func (u Uint[T]) String() string {
	return strconv.FormatUint(uint64(u.V), 10)
}

// BigInt backs the four numeric kinds that need math/big: I128 and U128
// (because Go has no native 128-bit integer type) and Ibig/Ubig (because
// they are genuinely unbounded). KindKey records which of the four this
// value represents, since *big.Int alone can't distinguish them.
type BigInt struct {
	V       *big.Int
	KindKey string // types.I128, types.U128, types.Ibig, or types.Ubig
}

func (b BigInt) Kind() string { return b.KindKey }
func (b BigInt) String() string {
	return b.V.String()
}

// NewBigInt builds a BigInt of the given kind, saturating v into that
// kind's range (a no-op for Ibig, which is unbounded, and for Ubig, which
// is clamped only at zero).
func NewBigInt(kind string, v *big.Int) BigInt {
	min, max, _ := bitWidthRange(kind)
	return BigInt{V: saturate(new(big.Int).Set(v), min, max), KindKey: kind}
}

// Float32 is the runtime representation of F32.
type Float32 struct{ V float32 }

func (f Float32) Kind() string   { return types.F32 }
func (f Float32) String() string { return strconv.FormatFloat(float64(f.V), 'g', -1, 32) }

// Float64 is the runtime representation of F64.
type Float64 struct{ V float64 }

func (f Float64) Kind() string   { return types.F64 }
func (f Float64) String() string { return strconv.FormatFloat(f.V, 'g', -1, 64) }

// Float16 is the runtime representation of F16 (IEEE-754 binary16). No
// third-party half-precision library appears anywhere in the retrieved
// corpus (see DESIGN.md), so conversion to/from the wider float32 that
// arithmetic is actually performed in is implemented directly here with
// the standard library's bit-level float32 accessors.
type Float16 struct{ Bits uint16 }

func (f Float16) Kind() string   { return types.F16 }
func (f Float16) String() string { return strconv.FormatFloat(float64(f.ToFloat32()), 'g', -1, 32) }

// NewFloat16 converts a float32 to its nearest binary16 representation.
func NewFloat16(v float32) Float16 {
	return Float16{Bits: float32ToFloat16Bits(v)}
}

// ToFloat32 widens f back to float32 for arithmetic.
func (f Float16) ToFloat32() float32 {
	return float16BitsToFloat32(f.Bits)
}

// float32ToFloat16Bits implements IEEE-754 round-to-nearest-even binary32
// -> binary16 conversion.
func float32ToFloat16Bits(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16((bits >> 16) & 0x8000)
	exp := int32((bits>>23)&0xff) - 127 + 15
	mant := bits & 0x7fffff

	switch {
	case (bits>>23)&0xff == 0xff: // Inf or NaN
		if mant != 0 {
			return sign | 0x7e00 // NaN
		}
		return sign | 0x7c00 // Inf
	case exp >= 0x1f: // overflow -> Inf
		return sign | 0x7c00
	case exp <= 0: // subnormal or zero
		if exp < -10 {
			return sign
		}
		mant |= 0x800000
		shift := uint(14 - exp)
		rounded := mant >> shift
		rem := mant & (1<<shift - 1)
		half := uint32(1) << (shift - 1)
		if rem > half || (rem == half && rounded&1 != 0) {
			rounded++
		}
		return sign | uint16(rounded)
	default:
		rounded := mant >> 13
		rem := mant & 0x1fff
		if rem > 0x1000 || (rem == 0x1000 && rounded&1 != 0) {
			rounded++
		}
		// Adding (not OR-ing) lets a mantissa carry bump the exponent.
		return sign | (uint16(exp)<<10 + uint16(rounded))
	}
}

func float16BitsToFloat32(bits uint16) float32 {
	sign := uint32(bits&0x8000) << 16
	exp := (bits >> 10) & 0x1f
	mant := uint32(bits & 0x3ff)

	switch {
	case exp == 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		// subnormal: normalise by shifting the mantissa into place
		e := -1
		for mant&0x400 == 0 {
			mant <<= 1
			e--
		}
		mant &= 0x3ff
		return math.Float32frombits(sign | uint32(127+e-15)<<23 | mant<<13)
	case exp == 0x1f:
		if mant == 0 {
			return math.Float32frombits(sign | 0x7f800000)
		}
		return math.Float32frombits(sign | 0x7fc00000)
	default:
		return math.Float32frombits(sign | (uint32(exp)-15+127)<<23 | mant<<13)
	}
}
