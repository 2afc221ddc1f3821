// Package debug renders an ast.Element tree or a value.Value as JSON for
// the --dump-ast=json flag, building the document with tidwall/sjson
// (rather than encoding/json) and exposing tidwall/gjson query helpers
// over the result for programmatic inspection, e.g. by tests that want to
// assert on a specific subtree without unmarshalling the whole document.
package debug

import (
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/zyxtlang/zyxt-go/internal/ast"
	"github.com/zyxtlang/zyxt-go/internal/value"
)

// DumpElement renders e as a JSON document describing its kind and
// position, plus a Literal's value, a Variable's name, a Comment's text, a
// Declare's name, type and value, a BinaryOpr's operator and operands, and
// a Block's content. Other kinds' children are not dumped.
func DumpElement(e *ast.Element) (string, error) {
	return dumpElement(e, "")
}

func dumpElement(e *ast.Element, doc string) (string, error) {
	var err error
	doc, err = sjson.Set(doc, "kind", kindName(e.Kind))
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "pos", e.Pos.String())
	if err != nil {
		return "", err
	}

	switch e.Kind {
	case ast.KLiteral:
		return sjson.Set(doc, "value", e.LitValue.String())
	case ast.KVariable:
		return sjson.Set(doc, "name", e.Name)
	case ast.KComment:
		return sjson.Set(doc, "text", e.Text)
	case ast.KDeclare:
		doc, err = sjson.Set(doc, "name", e.Name)
		if err != nil {
			return "", err
		}
		if e.VarType != nil {
			if doc, err = sjson.Set(doc, "type", e.VarType.String()); err != nil {
				return "", err
			}
		}
		if e.Val != nil {
			sub, err := dumpElement(e.Val, "")
			if err != nil {
				return "", err
			}
			return sjson.SetRaw(doc, "value", sub)
		}
		return doc, nil
	case ast.KBinaryOpr:
		doc, err = sjson.Set(doc, "opr", e.Opr.String())
		if err != nil {
			return "", err
		}
		lhs, err := dumpElement(e.LHS, "")
		if err != nil {
			return "", err
		}
		doc, err = sjson.SetRaw(doc, "lhs", lhs)
		if err != nil {
			return "", err
		}
		rhs, err := dumpElement(e.RHS, "")
		if err != nil {
			return "", err
		}
		return sjson.SetRaw(doc, "rhs", rhs)
	case ast.KBlock:
		doc, err = sjson.Set(doc, "content", []string{})
		if err != nil {
			return "", err
		}
		for i := range e.Content {
			sub, err := dumpElement(&e.Content[i], "")
			if err != nil {
				return "", err
			}
			if doc, err = sjson.SetRaw(doc, "content.-1", sub); err != nil {
				return "", err
			}
		}
		return doc, nil
	default:
		return doc, nil
	}
}

// DumpValue renders a runtime value as a small JSON document: its kind and
// display string.
func DumpValue(v value.Value) (string, error) {
	doc, err := sjson.Set("", "kind", v.Kind())
	if err != nil {
		return "", err
	}
	return sjson.Set(doc, "display", v.String())
}

// Get runs a gjson path query against a document produced by DumpElement
// or DumpValue.
func Get(doc, path string) gjson.Result {
	return gjson.Get(doc, path)
}

func kindName(k ast.Kind) string {
	switch k {
	case ast.KComment:
		return "comment"
	case ast.KCall:
		return "call"
	case ast.KUnaryOpr:
		return "unary_opr"
	case ast.KBinaryOpr:
		return "binary_opr"
	case ast.KDeclare:
		return "declare"
	case ast.KSet:
		return "set"
	case ast.KLiteral:
		return "literal"
	case ast.KVariable:
		return "variable"
	case ast.KIf:
		return "if"
	case ast.KBlock:
		return "block"
	case ast.KDelete:
		return "delete"
	case ast.KReturn:
		return "return"
	case ast.KProcedure:
		return "procedure"
	case ast.KNull:
		return "null"
	case ast.KToken:
		return "token"
	default:
		return "unknown"
	}
}
