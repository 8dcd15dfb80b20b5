package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/flarebyte/daggerml/cli"
)

func TestReportErrorKeepsUsageVerbatim(t *testing.T) {
	for _, prog := range []string{"my  dml", "", "a\tb", "./build/dml"} {
		var buf bytes.Buffer
		code := reportError(&buf, cli.UsageError{Prog: prog})
		if code != cli.ExitUsage {
			t.Fatalf("%q: exit code %d", prog, code)
		}
		want := "usage: " + prog + " [--version|-V]\n"
		if buf.String() != want {
			t.Fatalf("%q: got %q want %q", prog, buf.String(), want)
		}
	}
}

func TestReportErrorWrappedUsage(t *testing.T) {
	var buf bytes.Buffer
	code := reportError(&buf, fmt.Errorf("run: %w", cli.UsageError{Prog: "x  y"}))
	if code != cli.ExitUsage || buf.String() != "usage: x  y [--version|-V]\n" {
		t.Fatalf("unexpected result %d %q", code, buf.String())
	}
}

func TestReportErrorOther(t *testing.T) {
	var buf bytes.Buffer
	code := reportError(&buf, errors.New("write  failed\n  broken pipe"))
	if code != 1 {
		t.Fatalf("exit code %d", code)
	}
	if buf.String() != "write failed broken pipe\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
