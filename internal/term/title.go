// Package term holds one-time console setup. There is no teardown; the
// window title is process-wide state with no invariant to maintain.
package term

import (
	"fmt"
	"io"
	"os"

	xterm "golang.org/x/term"
)

// SetTitle emits the OSC window-title escape when w is an interactive
// terminal. An empty title or a non-terminal writer is a no-op, so piped
// output never sees escape bytes.
func SetTitle(w io.Writer, title string) {
	if title == "" {
		return
	}
	f, ok := w.(*os.File)
	if !ok || !xterm.IsTerminal(int(f.Fd())) {
		return
	}
	fmt.Fprintf(w, "\x1b]0;%s\a", title)
}
