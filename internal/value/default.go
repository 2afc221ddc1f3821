package value

import (
	"math/big"

	"github.com/zyxtlang/zyxt-go/internal/types"
)

// Default builds the zero value for t: 0 for every numeric kind, "" for
// Str, false for Bool, Null{} for the null type. It panics on any other
// type, mirroring the original's default(), which does the same for class
// and procedure types — those have no meaningful zero value and a caller
// asking for one is an internal bug, not a user-facing error.
func Default(t types.Type) Value {
	inst, ok := t.(*types.Instance)
	if !ok {
		panic("value.Default: no default for type " + t.String())
	}
	if types.IsNull(inst) {
		return Null{}
	}
	switch {
	case isIntKind(inst.Name):
		v, _ := wrapIntKind(inst.Name, big.NewInt(0))
		return v
	case isFloatKind(inst.Name):
		v, _ := wrapFloatKind(inst.Name, 0)
		return v
	case inst.Name == types.Str:
		return Str{V: ""}
	case inst.Name == types.Bool:
		return Bool{V: false}
	default:
		panic("value.Default: no default for type " + t.String())
	}
}
