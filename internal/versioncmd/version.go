// Package versioncmd provides the `version` subcommand shared by the DaggerML
// helper binaries.
package versioncmd

import (
	"fmt"
	"time"

	"github.com/flarebyte/daggerml/internal/buildinfo"
	"github.com/spf13/cobra"
)

type jsonOutput struct {
	buildinfo.Details
	Timestamp string `json:"timestamp"`
}

// New returns a `version` command that prints "<prog> <summary>".
func New(prog string) *cobra.Command {
	var (
		flagShort bool
		flagJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagShort {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.Version)
				return err
			}
			if !flagJSON {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", prog, buildinfo.Summary())
				return err
			}

			// JSON goes to stdout, a human line to stderr.
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s version: %s\n", prog, buildinfo.Summary())
			out := jsonOutput{
				Details:   buildinfo.Info(),
				Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
			}
			return encodeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")
	return cmd
}
