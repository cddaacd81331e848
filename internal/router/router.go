// Package router dispatches flat token sequences to named commands. The
// first token selects a command, the remaining tokens form its argument
// tail, and the tail length is validated against the command's registered
// arity bounds before the handler runs. Every dispatch resolves to exactly
// one process exit code.
package router

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Exit codes shared by all toolbelt binaries.
const (
	// ExitOK indicates successful execution.
	ExitOK = 0
	// ExitError indicates an unexpected runtime fault.
	ExitError = 1
	// ExitUsage indicates a usage or validation error.
	ExitUsage = 2
)

// ErrDuplicateCommand is returned by Register when a command name is
// already taken (comparison is case-insensitive).
var ErrDuplicateCommand = errors.New("duplicate command")

// Handler executes a command with its validated argument tail, writing
// human-readable output to w.
type Handler func(w io.Writer, tail []string) error

// Command describes a registered command. Descriptors are immutable once
// registered.
type Command struct {
	Name     string
	Summary  string
	Usage    string
	MinArity int
	MaxArity int
	Run      Handler
}

// Router maps normalized command names to descriptors.
type Router struct {
	name     string
	summary  string
	commands map[string]Command
	order    []string
}

// New creates an empty router for the named program.
func New(name, summary string) *Router {
	return &Router{
		name:     name,
		summary:  summary,
		commands: make(map[string]Command),
	}
}

// Register adds a command descriptor. It returns ErrDuplicateCommand when
// the normalized name is already registered.
func (r *Router) Register(c Command) error {
	name := normalize(c.Name)
	if name == "" {
		return errors.New("empty command name")
	}
	if c.Run == nil {
		return fmt.Errorf("command %s: nil handler", name)
	}
	if c.MinArity < 0 || c.MaxArity < c.MinArity {
		return fmt.Errorf("command %s: invalid arity bounds [%d, %d]", name, c.MinArity, c.MaxArity)
	}
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}
	c.Name = name
	r.commands[name] = c
	r.order = append(r.order, name)
	return nil
}

// MustRegister is Register for process-start wiring; it panics on error.
func (r *Router) MustRegister(c Command) {
	if err := r.Register(c); err != nil {
		panic(err)
	}
}

// Dispatch selects and runs a command for the token sequence and returns
// the process exit code. All output, including error messages, goes to w.
func (r *Router) Dispatch(w io.Writer, tokens []string) (code int) {
	if len(tokens) == 0 || isHelpToken(tokens[0]) {
		r.writeHelp(w)
		return ExitOK
	}

	name := normalize(tokens[0])
	cmd, ok := r.commands[name]
	if !ok {
		fmt.Fprintf(w, "Unknown command: %s\n", strings.TrimSpace(tokens[0]))
		fmt.Fprintf(w, "Run '%s --help' for a list of commands.\n", r.name)
		return ExitUsage
	}

	tail := tokens[1:]
	if len(tail) < cmd.MinArity || len(tail) > cmd.MaxArity {
		fmt.Fprintf(w, "Usage: %s %s\n", r.name, cmd.Usage)
		return ExitUsage
	}

	// A handler must never take the process down; recover and map the
	// fault to ExitError.
	defer func() {
		if rec := recover(); rec != nil {
			slog.Debug("handler panicked", "command", name, "panic", rec)
			fmt.Fprintln(w, "An unexpected error occurred.")
			code = ExitError
		}
	}()

	if err := cmd.Run(w, tail); err != nil {
		var ec interface{ ExitCode() int }
		if errors.As(err, &ec) {
			fmt.Fprintln(w, err.Error())
			return ec.ExitCode()
		}
		slog.Debug("handler failed", "command", name, "error", err)
		fmt.Fprintln(w, "An unexpected error occurred.")
		return ExitError
	}
	return ExitOK
}

func normalize(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

func isHelpToken(token string) bool {
	switch normalize(token) {
	case "--help", "-h", "/?":
		return true
	}
	return false
}
