package root

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/flarebyte/daggerml/internal/config"
	"github.com/flarebyte/daggerml/internal/conformance"
	"github.com/flarebyte/daggerml/internal/ctxlog"
	"github.com/flarebyte/daggerml/internal/gitinfo"
	"github.com/flarebyte/daggerml/internal/versioncmd"
	"github.com/spf13/cobra"
)

const progName = "dml-check"

type options struct {
	bin    string
	suite  string
	format string
	repo   string
	out    string
	noGit  bool
}

// NewRootCmd creates the root command for dml-check.
func NewRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           progName,
		Short:         "Check a dml binary against its command-line contract",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.bin, "bin", "", "Path to the dml binary (default $"+conformance.BinEnv+" or "+conformance.DefaultBin+")")
	cmd.Flags().StringVarP(&opts.suite, "suite", "s", "", "Path to a suite file (.cue)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", conformance.FormatYAML, "Report format: yaml or json")
	cmd.Flags().StringVar(&opts.repo, "repo", ".", "Directory whose git HEAD is recorded in the report")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Also write the report to this file")
	cmd.Flags().BoolVar(&opts.noGit, "no-git", false, "Do not record the git HEAD commit")
	cmd.AddCommand(versioncmd.New(progName))
	return cmd
}

func runCheck(cmd *cobra.Command, opts options) error {
	if opts.format != conformance.FormatYAML && opts.format != conformance.FormatJSON {
		return usageErr(fmt.Errorf("invalid --format %q: must be yaml or json", opts.format))
	}
	level, err := ctxlog.ParseLevel(os.Getenv(ctxlog.LevelEnv))
	if err != nil {
		return usageErr(err)
	}
	logger := ctxlog.New(cmd.ErrOrStderr(), level)
	ctx := ctxlog.WithLogger(cmd.Context(), logger)

	suite := config.DefaultSuite()
	if opts.suite != "" {
		suite, err = config.LoadSuite(opts.suite)
		if err != nil {
			return usageErr(err)
		}
	}

	runner := conformance.Runner{
		Bin:     conformance.ResolveBin(opts.bin, os.Getenv(conformance.BinEnv)),
		Timeout: time.Duration(suite.TimeoutMs) * time.Millisecond,
	}
	logger.Debug("starting conformance run", "bin", runner.Bin, "seed", suite.Seed, "generated", suite.Generated)
	rep, err := runner.Run(ctx, conformance.SuiteCases(suite))
	if err != nil {
		return checkExitError{code: exitCodeFailed, msg: err.Error()}
	}

	if !opts.noGit {
		commit, err := gitinfo.Head(opts.repo)
		switch {
		case err == nil:
			rep.Commit = commit
		case errors.Is(err, gitinfo.ErrNoRepository):
			logger.Debug("no git repository", "dir", opts.repo)
		default:
			logger.Warn("git HEAD unavailable", "dir", opts.repo, "err", err)
		}
	}

	if err := rep.Encode(cmd.OutOrStdout(), opts.format); err != nil {
		return err
	}
	if opts.out != "" {
		if err := rep.WriteFile(opts.out, opts.format); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	if !rep.OK() {
		return checkExitError{
			code: exitCodeFailed,
			msg:  fmt.Sprintf("conformance: %d of %d cases failed", rep.Failed, rep.Total),
		}
	}
	return nil
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
