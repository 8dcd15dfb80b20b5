package conformance

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/flarebyte/daggerml"
	"github.com/flarebyte/daggerml/internal/ctxlog"
	"github.com/flarebyte/daggerml/internal/luabind"
)

// BinEnv names the environment variable holding the binary under test.
const BinEnv = "DML_BIN"

// DefaultBin is used when neither a flag nor BinEnv names a binary.
const DefaultBin = "build/check/dml"

// ParityCaseName is the result name of the cross-binding comparison.
const ParityCaseName = "binding-parity"

// ResolveBin picks the binary path: flag value, then env value, then DefaultBin.
func ResolveBin(flag, env string) string {
	if flag != "" {
		return flag
	}
	if env != "" {
		return env
	}
	return DefaultBin
}

// Runner executes cases against one binary.
type Runner struct {
	Bin     string
	Timeout time.Duration
}

type invocation struct {
	code     int
	stdout   string
	stderr   string
	timedOut bool
}

// invoke runs the binary once. Only the per-case deadline counts as a
// timeout; cancellation of the parent context is returned as an error.
func (r Runner) invoke(parent context.Context, args []string) (invocation, error) {
	ctx := parent
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(parent, r.Timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, r.Bin, args...)
	// Grandchildren may hold the output pipes open after a kill.
	cmd.WaitDelay = time.Second
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	inv := invocation{stdout: stdout.String(), stderr: stderr.String()}
	if err := parent.Err(); err != nil {
		return invocation{}, err
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		inv.timedOut = true
		inv.code = -1
		return inv, nil
	}
	if err != nil {
		var ee *exec.ExitError
		if !errors.As(err, &ee) {
			return invocation{}, fmt.Errorf("run %s: %w", r.Bin, err)
		}
		inv.code = ee.ExitCode()
	}
	return inv, nil
}

// check compares one invocation with its case and returns the failure
// messages.
func check(c Case, inv invocation) []string {
	var failures []string
	if inv.timedOut {
		return []string{"timeout"}
	}
	if inv.code != c.ExitCode {
		failures = append(failures, fmt.Sprintf("exit code: got %d want %d", inv.code, c.ExitCode))
	}
	if c.Stdout != nil {
		if inv.stdout != *c.Stdout {
			failures = append(failures, fmt.Sprintf("stdout: got %q want %q", inv.stdout, *c.Stdout))
		}
	} else if inv.stdout != "" {
		failures = append(failures, fmt.Sprintf("stdout: got %q want empty", inv.stdout))
	}
	if c.StderrContains != "" {
		if !strings.Contains(inv.stderr, c.StderrContains) {
			failures = append(failures, fmt.Sprintf("stderr: %q does not contain %q", inv.stderr, c.StderrContains))
		}
	} else if inv.stderr != "" {
		failures = append(failures, fmt.Sprintf("stderr: got %q want empty", inv.stderr))
	}
	return failures
}

// RunCase executes a single case.
func (r Runner) RunCase(ctx context.Context, c Case) (Result, error) {
	inv, err := r.invoke(ctx, c.Args)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Name:     c.Name,
		Args:     c.Args,
		ExitCode: inv.code,
		Failures: check(c, inv),
	}
	res.Passed = len(res.Failures) == 0
	return res, nil
}

// Parity checks that the CLI, the Lua module and the core constant report
// the same version.
func (r Runner) Parity(ctx context.Context) (Result, error) {
	res := Result{Name: ParityCaseName, Args: []string{"--version"}}
	inv, err := r.invoke(ctx, res.Args)
	if err != nil {
		return Result{}, err
	}
	res.ExitCode = inv.code
	cliVersion := strings.TrimRight(inv.stdout, "\n")
	luaVersion, err := luabind.Version(ctx)
	if err != nil {
		res.Failures = append(res.Failures, fmt.Sprintf("lua binding: %v", err))
	}
	if cliVersion != daggerml.Version {
		res.Failures = append(res.Failures, fmt.Sprintf("cli: got %q want %q", cliVersion, daggerml.Version))
	}
	if err == nil && luaVersion != daggerml.Version {
		res.Failures = append(res.Failures, fmt.Sprintf("lua binding: got %q want %q", luaVersion, daggerml.Version))
	}
	res.Passed = len(res.Failures) == 0
	return res, nil
}

// Run executes all cases in order followed by the parity check. A case that
// cannot be started at all aborts the run.
func (r Runner) Run(ctx context.Context, cases []Case) (Report, error) {
	logger := ctxlog.FromContext(ctx)
	rep := Report{Bin: r.Bin, Version: daggerml.Version}
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		res, err := r.RunCase(ctx, c)
		if err != nil {
			return Report{}, err
		}
		logger.Debug("case finished", "name", c.Name, "args", c.Args, "exit", res.ExitCode, "passed", res.Passed)
		rep.add(res)
	}
	res, err := r.Parity(ctx)
	if err != nil {
		return Report{}, err
	}
	logger.Debug("parity finished", "passed", res.Passed)
	rep.add(res)
	logger.Info("conformance run complete", "bin", r.Bin, "passed", rep.Passed, "failed", rep.Failed)
	return rep, nil
}
