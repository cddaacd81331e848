// Package calc implements the interactive arithmetic calculator and its
// non-interactive expression mode.
package calc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/greyfold/toolbelt/internal/numparse"
)

// ErrDivisionByZero reports a zero divisor. The REPL prints it and keeps
// going; argv mode maps it to a domain error.
var ErrDivisionByZero = errors.New("Error: Division by zero is not allowed.")

// quitSentinel ends the session at any prompt, case-insensitive.
const quitSentinel = "q"

// Session is one interactive calculator run over line-oriented stdin.
type Session struct {
	in     *bufio.Scanner
	out    io.Writer
	parser numparse.Parser
	prompt string
}

// NewSession wires a session to its streams. prompt may be empty.
func NewSession(r io.Reader, w io.Writer, parser numparse.Parser, prompt string) *Session {
	return &Session{
		in:     bufio.NewScanner(r),
		out:    w,
		parser: parser,
		prompt: prompt,
	}
}

// Run loops until the quit sentinel or end of input: first operand,
// operator, second operand, result. Invalid entries re-prompt; a zero
// divisor prints the domain message and the loop continues.
func (s *Session) Run() error {
	for {
		a, quit, err := s.readNumber("Enter the first number (or 'q' to quit): ")
		if err != nil || quit {
			return err
		}
		op, quit, err := s.readOperator()
		if err != nil || quit {
			return err
		}
		b, quit, err := s.readNumber("Enter the second number: ")
		if err != nil || quit {
			return err
		}

		result, err := Apply(a, op, b)
		if errors.Is(err, ErrDivisionByZero) {
			fmt.Fprintln(s.out, ErrDivisionByZero.Error())
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Result: %s\n", numparse.Format(result))
	}
}

// Apply evaluates a single binary operation. op is one of + - * /.
func Apply(a float64, op string, b float64) (float64, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("unknown operator: %q", op)
}

func (s *Session) readNumber(label string) (float64, bool, error) {
	for {
		line, quit, err := s.readLine(label)
		if err != nil || quit {
			return 0, quit, err
		}
		v, err := s.parser.Parse(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid number. Please try again.")
			continue
		}
		return v, false, nil
	}
}

func (s *Session) readOperator() (string, bool, error) {
	for {
		line, quit, err := s.readLine("Enter an operator (+, -, *, /): ")
		if err != nil || quit {
			return "", quit, err
		}
		switch line {
		case "+", "-", "*", "/":
			return line, false, nil
		}
		fmt.Fprintln(s.out, "Invalid operator. Please try again.")
	}
}

// readLine prompts and reads one trimmed line. The second return is true
// on the quit sentinel or end of input.
func (s *Session) readLine(label string) (string, bool, error) {
	fmt.Fprint(s.out, s.prompt+label)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", true, s.in.Err()
	}
	line := strings.TrimSpace(s.in.Text())
	if strings.EqualFold(line, quitSentinel) {
		return "", true, nil
	}
	return line, false, nil
}
