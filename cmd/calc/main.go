// Command calc is an interactive arithmetic calculator. Run without
// arguments it prompts on stdin; with arguments it dispatches like the
// other toolbelt binaries (expr, version).
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/greyfold/toolbelt/internal/buildinfo"
	"github.com/greyfold/toolbelt/internal/calc"
	"github.com/greyfold/toolbelt/internal/config"
	"github.com/greyfold/toolbelt/internal/logging"
	"github.com/greyfold/toolbelt/internal/numparse"
	"github.com/greyfold/toolbelt/internal/router"
	"github.com/greyfold/toolbelt/internal/term"
)

func main() {
	logging.Setup()
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stdout, err)
		os.Exit(router.ExitUsage)
	}
	term.SetTitle(os.Stdout, settings.Title)

	if len(os.Args) == 1 {
		session := calc.NewSession(os.Stdin, os.Stdout, numparse.New(settings.Decimal), settings.Prompt)
		if err := session.Run(); err != nil {
			fmt.Fprintln(os.Stdout, "An unexpected error occurred.")
			os.Exit(router.ExitError)
		}
		return
	}
	os.Exit(newRouter().Dispatch(os.Stdout, os.Args[1:]))
}

func newRouter() *router.Router {
	r := router.New("calc", "arithmetic calculator")
	r.MustRegister(router.Command{
		Name:     "expr",
		Summary:  "Evaluate one arithmetic expression",
		Usage:    "expr <expression>",
		MinArity: 1,
		MaxArity: 1,
		Run:      expr,
	})
	r.MustRegister(router.Command{
		Name:     "version",
		Summary:  "Print the CLI version",
		Usage:    "version",
		MinArity: 0,
		MaxArity: 0,
		Run: func(w io.Writer, tail []string) error {
			_, err := fmt.Fprintf(w, "calc %s\n", buildinfo.Summary())
			return err
		},
	})
	return r
}

func expr(w io.Writer, tail []string) error {
	v, err := calc.Evaluate(tail[0])
	if errors.Is(err, calc.ErrDivisionByZero) {
		return router.Domainf("%s", calc.ErrDivisionByZero.Error())
	}
	if errors.Is(err, calc.ErrBadExpression) {
		return router.Usagef("Invalid expression: %s", strings.TrimSpace(tail[0]))
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, numparse.Format(v))
	return err
}
