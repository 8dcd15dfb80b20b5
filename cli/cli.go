// Package cli holds the argument grammar of the dml command. It is kept free
// of I/O so the rules can be checked without spawning a process.
package cli

import "fmt"

// ExitUsage is the exit status for any invocation that does not match the
// grammar.
const ExitUsage = 2

// Action is what a valid invocation asks for.
type Action int

const (
	// ActionNone is returned alongside a usage error.
	ActionNone Action = iota
	// ActionVersion prints the core version.
	ActionVersion
)

// UsageError reports a malformed invocation. Its message is the usage line.
type UsageError struct {
	Prog string
}

func (e UsageError) Error() string { return Usage(e.Prog) }
func (e UsageError) ExitCode() int { return ExitUsage }

// Usage returns the usage line for prog.
func Usage(prog string) string {
	return fmt.Sprintf("usage: %s [--version|-V]", prog)
}

func isVersionFlag(s string) bool {
	return s == "--version" || s == "-V"
}

// Parse validates args (without the program name). The only accepted form is
// a single --version or -V.
func Parse(prog string, args []string) (Action, error) {
	if len(args) == 0 {
		return ActionNone, UsageError{Prog: prog}
	}
	if isVersionFlag(args[0]) {
		if len(args) != 1 {
			return ActionNone, UsageError{Prog: prog}
		}
		return ActionVersion, nil
	}
	return ActionNone, UsageError{Prog: prog}
}
