// Command handy is a grab bag of small console commands: greet, add, now.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/greyfold/toolbelt/internal/buildinfo"
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
	os.Exit(newRouter(settings).Dispatch(os.Stdout, os.Args[1:]))
}

func newRouter(settings config.Settings) *router.Router {
	parser := numparse.New(settings.Decimal)

	r := router.New("handy", "everyday console helpers")
	r.MustRegister(router.Command{
		Name:     "greet",
		Summary:  "Print a greeting",
		Usage:    "greet [name]",
		MinArity: 0,
		MaxArity: 1,
		Run:      greet,
	})
	r.MustRegister(router.Command{
		Name:     "add",
		Summary:  "Add two numbers",
		Usage:    "add <a> <b>",
		MinArity: 2,
		MaxArity: 2,
		Run: func(w io.Writer, tail []string) error {
			return add(w, parser, tail)
		},
	})
	r.MustRegister(router.Command{
		Name:     "now",
		Summary:  "Print the current date and time",
		Usage:    "now",
		MinArity: 0,
		MaxArity: 0,
		Run:      now,
	})
	r.MustRegister(router.Command{
		Name:     "version",
		Summary:  "Print the CLI version",
		Usage:    "version",
		MinArity: 0,
		MaxArity: 0,
		Run: func(w io.Writer, tail []string) error {
			_, err := fmt.Fprintf(w, "handy %s\n", buildinfo.Summary())
			return err
		},
	})
	return r
}

func greet(w io.Writer, tail []string) error {
	name := "World"
	if len(tail) == 1 && tail[0] != "" {
		name = tail[0]
	}
	_, err := fmt.Fprintf(w, "Hello, %s!\n", name)
	return err
}

func add(w io.Writer, parser numparse.Parser, tail []string) error {
	a, err := parser.Parse(tail[0])
	if err != nil {
		return router.Usagef("Invalid number: %q", tail[0])
	}
	b, err := parser.Parse(tail[1])
	if err != nil {
		return router.Usagef("Invalid number: %q", tail[1])
	}
	_, err = fmt.Fprintln(w, numparse.Format(a+b))
	return err
}

func now(w io.Writer, tail []string) error {
	_, err := fmt.Fprintln(w, time.Now().Format("2006-01-02 15:04:05"))
	return err
}
