// Package numparse parses decimal literals under an ordered list of
// decimal conventions. The first convention that accepts the input wins;
// when all fail the caller gets a single aggregate error.
package numparse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Convention selects which decimal separator a parse pass accepts.
type Convention string

const (
	// Auto orders the passes by the environment locale, then retries
	// under the invariant dot convention.
	Auto Convention = "auto"
	// Dot accepts only dot-decimal input.
	Dot Convention = "dot"
	// Comma tries comma-decimal first, then retries dot-decimal.
	Comma Convention = "comma"
)

// ErrNotANumber is wrapped by all parse failures.
var ErrNotANumber = errors.New("not a number")

// Parser holds the ordered parse passes for a convention.
type Parser struct {
	passes []Convention
}

// New builds a Parser for the convention. Auto consults the process
// locale environment once, at construction.
func New(c Convention) Parser {
	switch c {
	case Comma:
		return Parser{passes: []Convention{Comma, Dot}}
	case Dot:
		return Parser{passes: []Convention{Dot}}
	default:
		if localeUsesCommaDecimal() {
			return Parser{passes: []Convention{Comma, Dot}}
		}
		return Parser{passes: []Convention{Dot}}
	}
}

// Parse returns the value of the literal under the first accepting pass.
// Inf and NaN spellings are rejected; arithmetic never starts from a
// non-finite operand.
func (p Parser) Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrNotANumber)
	}
	for _, pass := range p.passes {
		v, err := parseOne(s, pass)
		if err == nil {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
}

func parseOne(s string, c Convention) (float64, error) {
	switch c {
	case Comma:
		if strings.ContainsRune(s, '.') || strings.Count(s, ",") != 1 {
			return 0, ErrNotANumber
		}
		s = strings.Replace(s, ",", ".", 1)
	default:
		if strings.ContainsRune(s, ',') {
			return 0, ErrNotANumber
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrNotANumber
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNotANumber
	}
	return v, nil
}

// Format renders a value in trimmed decimal form: 5, not 5.000000.
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
