package cli

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want Action
		err  bool
	}{
		{name: "no args", args: nil, err: true},
		{name: "long flag", args: []string{"--version"}, want: ActionVersion},
		{name: "short flag", args: []string{"-V"}, want: ActionVersion},
		{name: "long flag extra", args: []string{"--version", "extra"}, err: true},
		{name: "short flag extra", args: []string{"-V", "-V"}, err: true},
		{name: "help", args: []string{"--help"}, err: true},
		{name: "short help", args: []string{"-h"}, err: true},
		{name: "lowercase v", args: []string{"-v"}, err: true},
		{name: "version word", args: []string{"version"}, err: true},
		{name: "flag with value", args: []string{"--version=1"}, err: true},
		{name: "empty string", args: []string{""}, err: true},
		{name: "extra before flag", args: []string{"x", "--version"}, err: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse("dml", tc.args)
			if tc.err {
				if err == nil {
					t.Fatalf("expected usage error")
				}
				var ue UsageError
				if !errors.As(err, &ue) {
					t.Fatalf("unexpected error type: %T", err)
				}
				if ue.ExitCode() != ExitUsage {
					t.Fatalf("exit code: got %d", ue.ExitCode())
				}
				if got != ActionNone {
					t.Fatalf("action: got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("action: got %v want %v", got, tc.want)
			}
		})
	}
}

func TestUsage(t *testing.T) {
	if got := Usage("./build/dml"); got != "usage: ./build/dml [--version|-V]" {
		t.Fatalf("unexpected usage: %q", got)
	}
	if got := (UsageError{Prog: "dml"}).Error(); got != Usage("dml") {
		t.Fatalf("error text: %q", got)
	}
}
