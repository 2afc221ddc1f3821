// Package pipeline wires the checker and interpreter together the way
// run.go in the teacher CLI wires its parser, semantic analyzer and
// interpreter: type-check first (unless disabled), then evaluate, with
// errors from either stage reported the same way.
package pipeline

import (
	"fmt"

	"github.com/zyxtlang/zyxt-go/internal/ast"
	"github.com/zyxtlang/zyxt-go/internal/check"
	"github.com/zyxtlang/zyxt-go/internal/errors"
	"github.com/zyxtlang/zyxt-go/internal/interp"
)

// Result carries everything a caller (the CLI, or a test) might want to
// inspect after running a program.
type Result struct {
	CheckErrors []*errors.CodedError
	RuntimeErr  error
	Value       string // the final value's String(), empty if evaluation didn't run
}

// Run type-checks e (unless skipTypeCheck) and, if type-checking reported
// no errors, evaluates it. Evaluation still proceeds if skipTypeCheck is
// set even when the checker would have objected, matching the teacher
// CLI's own --type-check=false escape hatch.
func Run(e *ast.Element, ip *interp.Interp, skipTypeCheck bool) Result {
	var res Result

	if !skipTypeCheck {
		c := check.New()
		ts := check.NewTypeScope()
		c.GetType(e, ts)
		res.CheckErrors = c.Errors
		if len(c.Errors) > 0 {
			return res
		}
	}

	vs := interp.NewValueScope()
	v, err := ip.Eval(e, vs)
	if err != nil {
		res.RuntimeErr = err
		return res
	}
	res.Value = v.String()
	return res
}

// Report formats a Result as a human-readable summary, color-aware the
// same way the teacher CLI's error formatting is.
func Report(res Result, color bool, source, file string) string {
	if len(res.CheckErrors) > 0 {
		return errors.FormatAll(res.CheckErrors, color, source, file)
	}
	if res.RuntimeErr != nil {
		if ce, ok := res.RuntimeErr.(*errors.CodedError); ok {
			return ce.Format(color, source, file)
		}
		return res.RuntimeErr.Error()
	}
	return fmt.Sprintf("%s\n", res.Value)
}
