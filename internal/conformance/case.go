// Package conformance runs a built dml binary against its observable
// contract: exit codes, stdout and stderr for valid and invalid invocations.
package conformance

import (
	"github.com/flarebyte/daggerml"
	"github.com/flarebyte/daggerml/internal/config"
)

// UsageMarker must appear on stderr for every rejected invocation.
const UsageMarker = "usage:"

// Case is one invocation and its expected outcome.
type Case struct {
	Name     string
	Args     []string
	ExitCode int
	// Stdout is compared exactly when set; otherwise stdout must be empty.
	Stdout *string
	// StderrContains must be a substring of stderr. When empty, stderr must
	// be empty.
	StderrContains string
}

func strPtr(s string) *string { return &s }

func versionCase(name string, args ...string) Case {
	return Case{Name: name, Args: args, ExitCode: 0, Stdout: strPtr(daggerml.Version + "\n")}
}

func usageCase(name string, args ...string) Case {
	if args == nil {
		args = []string{}
	}
	return Case{Name: name, Args: args, ExitCode: 2, StderrContains: UsageMarker}
}

// BuiltinCases returns the fixed invocations every dml binary must satisfy.
func BuiltinCases() []Case {
	return []Case{
		usageCase("no-arguments"),
		versionCase("long-version-flag", "--version"),
		versionCase("short-version-flag", "-V"),
		usageCase("long-version-extra-argument", "--version", "extra"),
		usageCase("short-version-extra-argument", "-V", "extra"),
		usageCase("help-flag", "--help"),
		usageCase("completion-word", "completion"),
		usageCase("completion-bash", "completion", "bash"),
	}
}

// FromConfig converts suite file cases.
func FromConfig(in []config.Case) []Case {
	out := make([]Case, 0, len(in))
	for _, c := range in {
		args := c.Args
		if args == nil {
			args = []string{}
		}
		out = append(out, Case{
			Name:           c.Name,
			Args:           args,
			ExitCode:       c.ExitCode,
			Stdout:         c.Stdout,
			StderrContains: c.StderrContains,
		})
	}
	return out
}

// SuiteCases expands a suite into the full case list: built-ins, generated
// unknown arguments, then the suite's own cases.
func SuiteCases(s config.Suite) []Case {
	cases := BuiltinCases()
	cases = append(cases, Generate(s.Seed, s.Generated)...)
	cases = append(cases, FromConfig(s.Cases)...)
	return cases
}
