package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/flarebyte/daggerml/cli"
	"github.com/flarebyte/daggerml/cmd/dml/root"
)

type exitCoder interface {
	ExitCode() int
}

// reportError writes err to w and returns the process exit code. The usage
// line is written verbatim so argv[0] appears exactly as invoked; other
// errors are squeezed onto a single line.
func reportError(w io.Writer, err error) int {
	var ue cli.UsageError
	if errors.As(err, &ue) {
		_, _ = io.WriteString(w, ue.Error()+"\n")
		return ue.ExitCode()
	}
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		msg = "error"
	}
	_, _ = io.WriteString(w, msg+"\n")
	code := 1
	if ec, ok := err.(exitCoder); ok {
		if c := ec.ExitCode(); c != 0 {
			code = c
		}
	}
	return code
}

func main() {
	if err := root.Execute(os.Args[0], os.Args[1:]); err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}
