package router

import (
	"fmt"
	"io"
)

// writeHelp renders the command overview in registration order.
func (r *Router) writeHelp(w io.Writer) {
	fmt.Fprintf(w, "%s - %s\n\n", r.name, r.summary)
	fmt.Fprintf(w, "Usage:\n  %s <command> [arguments]\n\n", r.name)
	fmt.Fprintln(w, "Commands:")

	width := 0
	for _, name := range r.order {
		if u := r.commands[name].Usage; len(u) > width {
			width = len(u)
		}
	}
	for _, name := range r.order {
		c := r.commands[name]
		fmt.Fprintf(w, "  %-*s  %s\n", width, c.Usage, c.Summary)
	}
	fmt.Fprintf(w, "\nHelp: %s --help\n", r.name)
}
