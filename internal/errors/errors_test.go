package errors

import (
	"strings"
	"testing"

	"github.com/zyxtlang/zyxt-go/internal/token"
)

func TestNewFallsBackToDefaultMessage(t *testing.T) {
	e := New(Code3_0, token.Position{Line: 1, Column: 1}, "")
	if e.Message != messages[Code3_0] {
		t.Fatalf("got %q, want default message", e.Message)
	}
}

func TestUndefinedIncludesName(t *testing.T) {
	e := Undefined(token.Position{File: "f.zx", Line: 2, Column: 3}, "foo")
	if !strings.Contains(e.Message, "foo") {
		t.Fatalf("message %q should mention the undefined name", e.Message)
	}
	if e.Code != Code3_0 {
		t.Fatalf("got code %s, want 3.0", e.Code)
	}
}

func TestFormatIncludesCaretAtColumn(t *testing.T) {
	e := New(Code4_0_0, token.Position{File: "f.zx", Line: 1, Column: 5}, "no implementation for operator + between str and i32")
	out := e.Format(false, "1 + x", "f.zx")
	lines := strings.Split(out, "\n")
	var caretLine string
	for _, l := range lines {
		if strings.Contains(l, "^") {
			caretLine = l
			break
		}
	}
	if caretLine == "" {
		t.Fatalf("expected a caret line in output:\n%s", out)
	}
}

func TestFormatAllSingleError(t *testing.T) {
	e := New(Code3_0, token.Position{Line: 1, Column: 1}, "undefined name \"x\"")
	out := FormatAll([]*CodedError{e}, false, "", "")
	if !strings.Contains(out, "undefined name") {
		t.Fatalf("FormatAll output missing message: %s", out)
	}
	if strings.Contains(out, "error(s)") {
		t.Fatalf("single-error FormatAll should not print the batch header")
	}
}

func TestFormatAllMultipleErrorsHasBatchHeader(t *testing.T) {
	e1 := New(Code3_0, token.Position{Line: 1, Column: 1}, "")
	e2 := New(Code2_2, token.Position{Line: 2, Column: 1}, "")
	out := FormatAll([]*CodedError{e1, e2}, false, "", "")
	if !strings.Contains(out, "2 error(s)") {
		t.Fatalf("expected batch header mentioning 2 errors, got:\n%s", out)
	}
}
