package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/greyfold/toolbelt/internal/router"
)

func dispatch(t *testing.T, tokens ...string) (string, int) {
	t.Helper()
	var buf bytes.Buffer
	code := newRouter().Dispatch(&buf, tokens)
	return buf.String(), code
}

func TestExprEvaluates(t *testing.T) {
	out, code := dispatch(t, "expr", "1+2*3")
	if code != router.ExitOK || out != "7\n" {
		t.Fatalf("expr = %q, exit %d", out, code)
	}
}

func TestExprDivisionByZero(t *testing.T) {
	out, code := dispatch(t, "expr", "6/0")
	if code != router.ExitUsage {
		t.Fatalf("exit %d, want %d", code, router.ExitUsage)
	}
	if !strings.Contains(out, "Error: Division by zero is not allowed.") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestExprBadSyntax(t *testing.T) {
	out, code := dispatch(t, "expr", "1+")
	if code != router.ExitUsage || !strings.Contains(out, "Invalid expression") {
		t.Fatalf("expr = %q, exit %d", out, code)
	}
}

func TestExprArity(t *testing.T) {
	out, code := dispatch(t, "expr", "1+1", "2+2")
	if code != router.ExitUsage || !strings.Contains(out, "Usage: calc expr <expression>") {
		t.Fatalf("expr = %q, exit %d", out, code)
	}
}
