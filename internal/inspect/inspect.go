// Package inspect implements the finspect operations: streaming a file's
// lines, counting bytes/lines/words, and printing the leading lines.
// Every operation resolves its target to an absolute path and requires an
// existing regular file.
package inspect

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/greyfold/toolbelt/internal/report"
	"github.com/greyfold/toolbelt/internal/router"
)

// Lines longer than the bufio default are legal input; cap at 1 MiB.
const maxLineBytes = 1024 * 1024

// Resolve turns path into an absolute path to an existing regular file.
// Anything else is a usage error.
func Resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", router.Usagef("Invalid path: %s", path)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return "", router.Usagef("File not found: %s", path)
	}
	if !fi.Mode().IsRegular() {
		return "", router.Usagef("Not a regular file: %s", path)
	}
	return abs, nil
}

// Read streams every line of the file to w.
func Read(w io.Writer, path string) error {
	abs, err := Resolve(path)
	if err != nil {
		return err
	}
	f, err := os.Open(abs)
	if err != nil {
		return router.Usagef("File not found: %s", path)
	}
	defer f.Close()

	sc := newLineScanner(f)
	for sc.Scan() {
		if _, err := fmt.Fprintln(w, sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

// Stats counts bytes, lines and whitespace-delimited words. Byte count
// comes from the file metadata; lines and words from a single scan.
func Stats(path string) (report.Stats, error) {
	abs, err := Resolve(path)
	if err != nil {
		return report.Stats{}, err
	}
	f, err := os.Open(abs)
	if err != nil {
		return report.Stats{}, router.Usagef("File not found: %s", path)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return report.Stats{}, err
	}

	st := report.Stats{Path: abs, Bytes: fi.Size()}
	sc := newLineScanner(f)
	for sc.Scan() {
		st.Lines++
		st.Words += len(strings.Fields(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return report.Stats{}, err
	}
	return st, nil
}

// Head writes the first n lines of the file to w. A shorter file prints
// what exists.
func Head(w io.Writer, path string, n int) error {
	if n < 1 {
		return router.Usagef("Invalid line count: %d (must be at least 1)", n)
	}
	abs, err := Resolve(path)
	if err != nil {
		return err
	}
	f, err := os.Open(abs)
	if err != nil {
		return router.Usagef("File not found: %s", path)
	}
	defer f.Close()

	sc := newLineScanner(f)
	for printed := 0; printed < n && sc.Scan(); printed++ {
		if _, err := fmt.Fprintln(w, sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

// Export writes the stats of path as a canonical YAML report at dest.
func Export(path, dest string) error {
	st, err := Stats(path)
	if err != nil {
		return err
	}
	return report.Write(dest, st)
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	return sc
}
