package value

import (
	"math/big"

	"github.com/zyxtlang/zyxt-go/internal/types"
)

// bitWidthRange returns the inclusive [min, max] range for a fixed-width
// integer kind. Kinds with no fixed range report ok=false: Ibig returns
// (nil, nil, false), and Ubig returns (0, nil, false) since it is bounded
// below only. Isize/Usize are treated as 64-bit, matching Go's native
// int/uint on every platform this interpreter is expected to run on.
func bitWidthRange(kind string) (min, max *big.Int, ok bool) {
	switch kind {
	case types.I8:
		return bigPow2SignedRange(8)
	case types.I16:
		return bigPow2SignedRange(16)
	case types.I32:
		return bigPow2SignedRange(32)
	case types.I64, types.Isize:
		return bigPow2SignedRange(64)
	case types.I128:
		return bigPow2SignedRange(128)
	case types.U8:
		return bigPow2UnsignedRange(8)
	case types.U16:
		return bigPow2UnsignedRange(16)
	case types.U32:
		return bigPow2UnsignedRange(32)
	case types.U64, types.Usize:
		return bigPow2UnsignedRange(64)
	case types.U128:
		return bigPow2UnsignedRange(128)
	case types.Ibig:
		return nil, nil, false
	case types.Ubig:
		zero := big.NewInt(0)
		return zero, nil, false
	}
	return nil, nil, false
}

func bigPow2SignedRange(bits uint) (min, max *big.Int, ok bool) {
	max = new(big.Int).Lsh(big.NewInt(1), bits-1)
	min = new(big.Int).Neg(max)
	max.Sub(max, big.NewInt(1))
	return min, max, true
}

func bigPow2UnsignedRange(bits uint) (min, max *big.Int, ok bool) {
	max = new(big.Int).Lsh(big.NewInt(1), bits)
	max.Sub(max, big.NewInt(1))
	return big.NewInt(0), max, true
}

// saturate clamps v into [min, max] when both bounds are non-nil. A nil min
// means "no lower bound" (Ibig); a nil max with non-nil min means "no upper
// bound but never negative" (Ubig).
func saturate(v *big.Int, min, max *big.Int) *big.Int {
	if min != nil && v.Cmp(min) < 0 {
		return new(big.Int).Set(min)
	}
	if max != nil && v.Cmp(max) > 0 {
		return new(big.Int).Set(max)
	}
	return v
}

// inRange reports whether v fits within [min, max] without clamping.
func inRange(v, min, max *big.Int) bool {
	if min != nil && v.Cmp(min) < 0 {
		return false
	}
	if max != nil && v.Cmp(max) > 0 {
		return false
	}
	return true
}
