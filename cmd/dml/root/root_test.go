package root

import (
	"bytes"
	"testing"

	"github.com/flarebyte/daggerml"
	"github.com/flarebyte/daggerml/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd("dml")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := execute(cmd, "dml", args)
	return stdout.String(), stderr.String(), err
}

func TestVersionFlags(t *testing.T) {
	for _, flag := range []string{"--version", "-V"} {
		t.Run(flag, func(t *testing.T) {
			out, errOut, err := run(t, flag)
			require.NoError(t, err)
			assert.Equal(t, daggerml.Version+"\n", out)
			assert.Empty(t, errOut)
		})
	}
}

func TestUsageErrors(t *testing.T) {
	cases := [][]string{
		nil,
		{"--version", "extra"},
		{"-V", "extra"},
		{"--help"},
		{"-h"},
		{"help"},
		{"completion"},
		{"completion", "bash"},
		{"completion", "zsh", "--no-descriptions"},
		{"--"},
		{"__complete", ""},
		{"__completeNoDesc"},
		{"-"},
	}
	for _, args := range cases {
		out, errOut, err := run(t, args...)
		require.Error(t, err, "args=%q", args)
		var ue cli.UsageError
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, cli.ExitUsage, ue.ExitCode())
		assert.Equal(t, "usage: dml [--version|-V]", err.Error())
		assert.Empty(t, out, "args=%q", args)
		assert.Empty(t, errOut, "args=%q", args)
	}
}
