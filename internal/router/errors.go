package router

import "fmt"

// codedError carries an explicit process exit code.
type codedError struct {
	code int
	msg  string
}

func (e codedError) Error() string { return e.msg }
func (e codedError) ExitCode() int { return e.code }

// Usagef builds a usage-grade error (bad literal, missing file, bad
// config). Dispatch maps it to ExitUsage.
func Usagef(format string, args ...any) error {
	return codedError{code: ExitUsage, msg: fmt.Sprintf(format, args...)}
}

// Domainf builds a domain error such as division by zero. It shares the
// usage channel and exit code.
func Domainf(format string, args ...any) error {
	return codedError{code: ExitUsage, msg: fmt.Sprintf(format, args...)}
}
