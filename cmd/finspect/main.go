// Command finspect inspects text files: stream them, count their
// contents, or print the leading lines.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/greyfold/toolbelt/internal/buildinfo"
	"github.com/greyfold/toolbelt/internal/config"
	"github.com/greyfold/toolbelt/internal/inspect"
	"github.com/greyfold/toolbelt/internal/logging"
	"github.com/greyfold/toolbelt/internal/report"
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
	os.Exit(newRouter().Dispatch(os.Stdout, os.Args[1:]))
}

func newRouter() *router.Router {
	r := router.New("finspect", "inspect text files")
	r.MustRegister(router.Command{
		Name:     "read",
		Summary:  "Print every line of a file",
		Usage:    "read <path>",
		MinArity: 1,
		MaxArity: 1,
		Run: func(w io.Writer, tail []string) error {
			return inspect.Read(w, tail[0])
		},
	})
	r.MustRegister(router.Command{
		Name:     "stats",
		Summary:  "Count bytes, lines and words",
		Usage:    "stats <path>",
		MinArity: 1,
		MaxArity: 1,
		Run: func(w io.Writer, tail []string) error {
			st, err := inspect.Stats(tail[0])
			if err != nil {
				return err
			}
			_, err = io.WriteString(w, report.Text(st))
			return err
		},
	})
	r.MustRegister(router.Command{
		Name:     "head",
		Summary:  "Print the first n lines of a file",
		Usage:    "head <path> <n>",
		MinArity: 2,
		MaxArity: 2,
		Run: func(w io.Writer, tail []string) error {
			n, err := strconv.Atoi(tail[1])
			if err != nil {
				return router.Usagef("Invalid line count: %q", tail[1])
			}
			return inspect.Head(w, tail[0], n)
		},
	})
	r.MustRegister(router.Command{
		Name:     "export",
		Summary:  "Write the stats of a file as a YAML report",
		Usage:    "export <path> <dest>",
		MinArity: 2,
		MaxArity: 2,
		Run: func(w io.Writer, tail []string) error {
			if err := inspect.Export(tail[0], tail[1]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Wrote %s\n", tail[1])
			return err
		},
	})
	r.MustRegister(router.Command{
		Name:     "version",
		Summary:  "Print the CLI version",
		Usage:    "version",
		MinArity: 0,
		MaxArity: 0,
		Run: func(w io.Writer, tail []string) error {
			_, err := fmt.Fprintf(w, "finspect %s\n", buildinfo.Summary())
			return err
		},
	})
	return r
}
