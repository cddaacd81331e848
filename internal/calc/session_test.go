package calc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/greyfold/toolbelt/internal/numparse"
)

func runSession(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	s := NewSession(strings.NewReader(input), &out, numparse.New(numparse.Dot), "")
	if err := s.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func TestSessionAddition(t *testing.T) {
	out := runSession(t, "2\n+\n3\nq\n")
	if !strings.Contains(out, "Result: 5\n") {
		t.Fatalf("missing result, got:\n%s", out)
	}
}

func TestSessionDivisionByZeroContinues(t *testing.T) {
	out := runSession(t, "6\n/\n0\n8\n/\n2\nq\n")
	if !strings.Contains(out, "Error: Division by zero is not allowed.\n") {
		t.Fatalf("missing domain message, got:\n%s", out)
	}
	// The loop survived the domain error and computed the next operation.
	if !strings.Contains(out, "Result: 4\n") {
		t.Fatalf("loop did not continue, got:\n%s", out)
	}
}

func TestSessionReprompsOnBadInput(t *testing.T) {
	out := runSession(t, "abc\n2\n%\n*\n4\nq\n")
	if !strings.Contains(out, "Invalid number. Please try again.") {
		t.Fatalf("missing number re-prompt, got:\n%s", out)
	}
	if !strings.Contains(out, "Invalid operator. Please try again.") {
		t.Fatalf("missing operator re-prompt, got:\n%s", out)
	}
	if !strings.Contains(out, "Result: 8\n") {
		t.Fatalf("missing result, got:\n%s", out)
	}
}

func TestSessionQuitIsCaseInsensitive(t *testing.T) {
	out := runSession(t, "Q\n")
	if strings.Contains(out, "Result:") {
		t.Fatalf("unexpected result after quit:\n%s", out)
	}
}

func TestSessionEndOfInputQuits(t *testing.T) {
	// No trailing sentinel; the scanner just runs out.
	out := runSession(t, "1\n+\n1\n")
	if !strings.Contains(out, "Result: 2\n") {
		t.Fatalf("missing result, got:\n%s", out)
	}
}

func TestSessionUsesPrompt(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("q\n"), &out, numparse.New(numparse.Dot), "calc> ")
	if err := s.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out.String(), "calc> ") {
		t.Fatalf("prompt missing, got:\n%s", out.String())
	}
}

func TestApply(t *testing.T) {
	cases := []struct {
		a, b float64
		op   string
		want float64
	}{
		{2, 3, "+", 5},
		{2, 3, "-", -1},
		{2, 3, "*", 6},
		{6, 3, "/", 2},
	}
	for _, c := range cases {
		got, err := Apply(c.a, c.op, c.b)
		if err != nil || got != c.want {
			t.Fatalf("Apply(%v %s %v) = %v, %v; want %v", c.a, c.op, c.b, got, err, c.want)
		}
	}
	if _, err := Apply(1, "/", 0); err != ErrDivisionByZero {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
	if _, err := Apply(1, "%", 2); err == nil {
		t.Fatalf("expected error for unknown operator")
	}
}
