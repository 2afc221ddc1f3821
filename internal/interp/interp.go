// Package interp implements the tree-walking evaluator: a single recursive
// Eval function mirroring the checker's GetType, but operating over runtime
// Values instead of static Types. Procedure calls bind arguments (by
// position, then by keyword) into a fresh scope frame captured from the
// procedure's closure, run its body, and unwrap any value.Return the body
// produced. Declared default argument values are not evaluated: a
// parameter filled neither by position nor by keyword is error 2.3.
package interp

import (
	"fmt"
	"io"

	"github.com/zyxtlang/zyxt-go/internal/ast"
	"github.com/zyxtlang/zyxt-go/internal/errors"
	"github.com/zyxtlang/zyxt-go/internal/scope"
	"github.com/zyxtlang/zyxt-go/internal/token"
	"github.com/zyxtlang/zyxt-go/internal/types"
	"github.com/zyxtlang/zyxt-go/internal/value"
)

// ValueScope is the interpreter's scope stack, over runtime Values.
type ValueScope = scope.ScopeStack[value.Value]

// NewValueScope returns a fresh global value scope.
func NewValueScope() *ValueScope {
	return scope.NewScopeStack[value.Value]()
}

// Interp holds the evaluator's output stream (trace lines are written here
// when Trace is set) — the same role os.Stdout plays in the teacher CLI's
// interp.New(os.Stdout).
type Interp struct {
	Out   io.Writer
	Trace bool
}

func New(out io.Writer) *Interp {
	return &Interp{Out: out}
}

// Eval walks e and returns its runtime value, or an error the moment one
// operation fails — unlike the checker, evaluation stops at the first
// error rather than accumulating, since a failed operation at runtime
// really does mean the rest of the program cannot meaningfully continue.
func (ip *Interp) Eval(e *ast.Element, vs *ValueScope) (value.Value, error) {
	if ip.Trace {
		fmt.Fprintf(ip.Out, "trace: %s at %s\n", kindName(e.Kind), e.Pos)
	}
	switch e.Kind {
	case ast.KComment, ast.KNull:
		return value.Null{}, nil

	case ast.KLiteral:
		return e.LitValue, nil

	case ast.KVariable:
		v, ok := vs.GetVal(e.Name)
		if !ok {
			return nil, errors.Undefined(e.Pos, e.Name)
		}
		return v, nil

	case ast.KBlock:
		return ip.evalBlock(e, vs, e.AddScope)

	case ast.KDeclare:
		return ip.evalDeclare(e, vs)

	case ast.KSet:
		return ip.evalSet(e, vs)

	case ast.KIf:
		return ip.evalIf(e, vs)

	case ast.KBinaryOpr:
		lv, err := ip.Eval(e.LHS, vs)
		if err != nil {
			return nil, err
		}
		rv, err := ip.Eval(e.RHS, vs)
		if err != nil {
			return nil, err
		}
		result, err := value.BinOpr(e.Opr, lv, rv)
		if err != nil {
			return nil, wrapOprError(e.Pos, false, err)
		}
		return result, nil

	case ast.KUnaryOpr:
		ov, err := ip.Eval(e.Operand, vs)
		if err != nil {
			return nil, err
		}
		if e.Opr == value.TypeCast {
			result, err := value.Cast(ov, e.VarType)
			if err != nil {
				return nil, wrapOprError(e.Pos, true, err)
			}
			return result, nil
		}
		result, err := value.UnOpr(e.Opr, ov)
		if err != nil {
			return nil, wrapOprError(e.Pos, true, err)
		}
		return result, nil

	case ast.KCall:
		return ip.evalCall(e, vs)

	case ast.KProcedure:
		return ip.makeProc(e, vs), nil

	case ast.KReturn:
		if e.Val == nil {
			return value.Return{Inner: value.Null{}}, nil
		}
		v, err := ip.Eval(e.Val, vs)
		if err != nil {
			return nil, err
		}
		return value.Return{Inner: v}, nil

	case ast.KDelete:
		for _, name := range e.Names {
			if !vs.HasVal(name) {
				return nil, errors.Undefined(e.Pos, name)
			}
		}
		return value.Null{}, nil

	default:
		return nil, errors.New(errors.Code0_0, e.Pos, "malformed AST node")
	}
}

func (ip *Interp) evalBlock(e *ast.Element, vs *ValueScope, addScope bool) (value.Value, error) {
	if addScope {
		vs.AddSet()
		defer vs.PopSet()
	}
	var last value.Value = value.Null{}
	for i := range e.Content {
		v, err := ip.Eval(&e.Content[i], vs)
		if err != nil {
			return nil, err
		}
		last = v
		if _, isReturn := v.(value.Return); isReturn {
			return last, nil
		}
	}
	return last, nil
}

func (ip *Interp) evalDeclare(e *ast.Element, vs *ValueScope) (value.Value, error) {
	var v value.Value = value.Null{}
	if e.Val != nil {
		var err error
		v, err = ip.Eval(e.Val, vs)
		if err != nil {
			return nil, err
		}
	} else if e.VarType != nil {
		v = value.Default(e.VarType)
	}
	vs.DeclareVal(e.Name, v)
	return v, nil
}

func (ip *Interp) evalSet(e *ast.Element, vs *ValueScope) (value.Value, error) {
	if !vs.HasVal(e.Name) {
		return nil, errors.Undefined(e.Pos, e.Name)
	}
	v, err := ip.Eval(e.Val, vs)
	if err != nil {
		return nil, err
	}
	vs.SetVal(e.Name, v)
	return v, nil
}

func (ip *Interp) evalIf(e *ast.Element, vs *ValueScope) (value.Value, error) {
	for _, cond := range e.Conditions {
		if cond.Condition == nil {
			return ip.Eval(cond.IfTrue, vs)
		}
		cv, err := ip.Eval(cond.Condition, vs)
		if err != nil {
			return nil, err
		}
		b, ok := cv.(value.Bool)
		if !ok {
			return nil, errors.RuntimeOpFailed(cond.Condition.Pos, true, "if condition must be bool, got "+cv.Kind())
		}
		if b.V {
			return ip.Eval(cond.IfTrue, vs)
		}
	}
	return value.Null{}, nil
}

func (ip *Interp) makeProc(e *ast.Element, vs *ValueScope) value.Value {
	argTypes := make([]types.Type, len(e.ProcArgs))
	argNames := make([]string, len(e.ProcArgs))
	for i, a := range e.ProcArgs {
		argTypes[i] = a.Type
		argNames[i] = a.Name
	}
	return value.Proc{
		ArgTypes:   argTypes,
		ArgNames:   argNames,
		ReturnType: e.ReturnType,
		Body:       e.Body,
		Closure:    vs,
		IsFn:       e.IsFn,
	}
}

func (ip *Interp) evalCall(e *ast.Element, vs *ValueScope) (value.Value, error) {
	callee, err := ip.Eval(e.Callee, vs)
	if err != nil {
		return nil, err
	}
	callee = value.Unreturn(callee)

	args := make([]value.Value, len(e.Args))
	for i := range e.Args {
		v, err := ip.Eval(&e.Args[i], vs)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if value.IsNumeric(callee) {
		if len(args) != 1 {
			return nil, errors.Arity(e.Pos, "juxtaposition call expects exactly one argument")
		}
		result, err := value.CallNumeric(callee, args[0])
		if err != nil {
			return nil, wrapOprError(e.Pos, false, err)
		}
		return result, nil
	}

	proc, ok := callee.(value.Proc)
	if !ok {
		return nil, errors.New(errors.Code2_2, e.Pos, "value is not callable")
	}
	return ip.callProc(e, proc, args, vs)
}

func (ip *Interp) callProc(e *ast.Element, proc value.Proc, args []value.Value, callerScope *ValueScope) (value.Value, error) {
	closure, ok := proc.Closure.(*ValueScope)
	if !ok {
		closure = callerScope
	}
	callScope := closure

	body, ok := proc.Body.(*ast.Element)
	if !ok {
		return nil, errors.New(errors.Code0_0, e.Pos, "procedure body is not a block")
	}

	if len(args) > len(proc.ArgNames) {
		return nil, errors.Arity(e.Pos, "too many arguments")
	}

	callScope.AddSet()
	defer callScope.PopSet()

	for i, name := range proc.ArgNames {
		if i < len(args) {
			callScope.DeclareVal(name, args[i])
			continue
		}
		if _, byKeyword := e.Kwargs[name]; byKeyword {
			continue
		}
		return nil, errors.Arity(e.Pos, "unfilled argument \""+name+"\"")
	}

	for name, expr := range e.Kwargs {
		if _, found := findArgIndex(proc.ArgNames, name); !found {
			return nil, errors.New(errors.Code2_1_1, e.Pos, "unknown keyword argument \""+name+"\"")
		}
		expr := expr
		v, err := ip.Eval(&expr, callScope)
		if err != nil {
			return nil, err
		}
		callScope.DeclareVal(name, v)
	}

	result, err := ip.evalBlock(body, callScope, false)
	if err != nil {
		return nil, err
	}
	return value.Unreturn(result), nil
}

func findArgIndex(names []string, name string) (int, bool) {
	for i, n := range names {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// wrapOprError reports a runtime value.OprError as error 4.1.0 (binary) or
// 4.1.1 (unary). Per spec §8 scenario 3, the code is chosen by the
// operator's arity alone, not by the OprErrorKind underneath it — a bad
// runtime TypeCast, a zero division, an overflow, and "no implementation"
// all surface the same way once they occur at runtime rather than during
// checking.
func wrapOprError(pos token.Position, unary bool, err error) error {
	oe, ok := err.(*value.OprError)
	if !ok {
		return err
	}
	return errors.RuntimeOpFailed(pos, unary, oe.Error())
}

func kindName(k ast.Kind) string {
	names := []string{
		"Comment", "Call", "UnaryOpr", "BinaryOpr", "Declare", "Set",
		"Literal", "Variable", "If", "Block", "Delete", "Return",
		"Procedure", "Null", "Token",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}
