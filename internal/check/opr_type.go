package check

import (
	"github.com/zyxtlang/zyxt-go/internal/types"
	"github.com/zyxtlang/zyxt-go/internal/value"
)

// binOprReturnType/unOprReturnType determine the static result type of
// applying an operator to operand types, by constructing each type's
// default (zero) runtime value and actually running the operator against
// it — mirroring the original's bin_op_return_type/un_op_return_type,
// which probe via Variable::default before calling bin_opr/un_opr rather
// than maintaining a separate static type-level rule table.
func binOprReturnType(opr value.OprType, lhs, rhs types.Type) (types.Type, error) {
	lv := safeDefault(lhs)
	rv := safeDefault(rhs)
	if lv == nil || rv == nil {
		return nil, &value.OprError{Kind: value.NoImplForOpr, Opr: opr}
	}
	result, err := value.BinOpr(opr, lv, rv)
	if err != nil {
		return nil, err
	}
	return value.GetTypeObj(result), nil
}

func unOprReturnType(opr value.OprType, operand types.Type) (types.Type, error) {
	ov := safeDefault(operand)
	if ov == nil {
		return nil, &value.OprError{Kind: value.NoImplForOpr, Opr: opr}
	}
	result, err := value.UnOpr(opr, ov)
	if err != nil {
		return nil, err
	}
	return value.GetTypeObj(result), nil
}

// safeDefault wraps value.Default, converting its panic (raised for types
// with no zero value, e.g. class/procedure types) into a nil result so the
// probe can fail gracefully instead of crashing the type checker.
func safeDefault(t types.Type) (v value.Value) {
	defer func() {
		if recover() != nil {
			v = nil
		}
	}()
	return value.Default(t)
}
