package root

import (
	"fmt"

	"github.com/flarebyte/daggerml/internal/adapter"
	"github.com/flarebyte/daggerml/internal/versioncmd"
	"github.com/spf13/cobra"
)

const progName = "dml-adapter-example"

// NewRootCmd creates the root command for the example adapter.
func NewRootCmd(reg *adapter.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:           progName,
		Short:         "DaggerML example adapter",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := reg.Lookup(adapter.ExampleName)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.Banner())
			return err
		},
	}
	cmd.AddCommand(versioncmd.New(progName))
	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd(adapter.Default)
	cmd.SetArgs(args)
	return cmd.Execute()
}
