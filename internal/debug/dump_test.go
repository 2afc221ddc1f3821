package debug

import (
	"testing"

	"github.com/zyxtlang/zyxt-go/internal/ast"
	"github.com/zyxtlang/zyxt-go/internal/token"
	"github.com/zyxtlang/zyxt-go/internal/value"
)

func TestDumpLiteral(t *testing.T) {
	e := ast.Lit(token.Position{Line: 1, Column: 1}, value.NewInt(32, 7))
	doc, err := DumpElement(&e)
	if err != nil {
		t.Fatalf("DumpElement: %v", err)
	}
	if Get(doc, "kind").String() != "literal" {
		t.Fatalf("kind = %s, want literal", Get(doc, "kind").String())
	}
	if Get(doc, "value").String() != "7" {
		t.Fatalf("value = %s, want 7", Get(doc, "value").String())
	}
}

func TestDumpBinaryOpr(t *testing.T) {
	lhs := ast.Lit(token.Position{Line: 1, Column: 1}, value.NewInt(32, 1))
	rhs := ast.Lit(token.Position{Line: 1, Column: 1}, value.NewInt(32, 2))
	e := ast.BinOp(token.Position{Line: 1, Column: 1}, value.Plus, lhs, rhs)
	doc, err := DumpElement(&e)
	if err != nil {
		t.Fatalf("DumpElement: %v", err)
	}
	if Get(doc, "lhs.value").String() != "1" || Get(doc, "rhs.value").String() != "2" {
		t.Fatalf("unexpected doc: %s", doc)
	}
}

func TestDumpValue(t *testing.T) {
	doc, err := DumpValue(value.Str{V: "hi"})
	if err != nil {
		t.Fatalf("DumpValue: %v", err)
	}
	if Get(doc, "display").String() != "hi" {
		t.Fatalf("unexpected doc: %s", doc)
	}
}
