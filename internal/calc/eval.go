package calc

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// ErrBadExpression reports an expression the evaluator cannot accept,
// either syntactically or because it exceeds the sandbox budget.
var ErrBadExpression = errors.New("invalid expression")

const (
	evalTimeout     = time.Second
	evalBudgetBytes = 512
)

// Evaluate runs one arithmetic expression in a restricted Lua state and
// returns its numeric value. Only the base and math libraries are open;
// the state is bounded by a wall-clock budget. A non-finite result means
// a zero divisor somewhere in the expression.
func Evaluate(expr string) (float64, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, fmt.Errorf("%w: empty input", ErrBadExpression)
	}
	if exceedsBudget(expr) {
		return 0, fmt.Errorf("%w: expression too costly", ErrBadExpression)
	}

	L := newEvalState()
	defer L.Close()

	ctx, cancel := context.WithTimeout(context.Background(), evalTimeout)
	defer cancel()
	L.SetContext(ctx)

	fn, err := L.LoadString("return (" + expr + ")")
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrBadExpression, expr)
	}
	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		if isTimeout(err) {
			return 0, fmt.Errorf("%w: evaluation timed out", ErrBadExpression)
		}
		return 0, fmt.Errorf("%w: %s", ErrBadExpression, expr)
	}
	ret := L.Get(-1)
	L.Pop(1)

	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("%w: not a numeric expression", ErrBadExpression)
	}
	v := float64(n)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrDivisionByZero
	}
	return v, nil
}

func newEvalState() *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:     true,
		RegistrySize:     256,
		RegistryMaxSize:  1024,
		RegistryGrowStep: 0,
	})
	openLib := func(name string, f lua.LGFunction) {
		L.Push(L.NewFunction(f))
		L.Push(lua.LString(name))
		L.Call(1, 0)
	}
	openLib("base", lua.OpenBase)
	openLib("math", lua.OpenMath)
	return L
}

// exceedsBudget rejects inputs that cannot be a plain arithmetic
// expression: looping constructs and oversized text.
func exceedsBudget(expr string) bool {
	if len(expr) > evalBudgetBytes {
		return true
	}
	lower := strings.ToLower(expr)
	for _, kw := range []string{"while", "repeat", "for", "function", "goto"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadline") || strings.Contains(msg, "context canceled")
}
