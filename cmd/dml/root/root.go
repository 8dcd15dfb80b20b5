package root

import (
	"fmt"
	"strings"

	"github.com/flarebyte/daggerml"
	"github.com/flarebyte/daggerml/cli"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the dml command. prog is argv[0] as invoked and is echoed
// in the usage line.
func NewRootCmd(prog string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dml",
		Short: "DaggerML core CLI",
		// cobra must not see the arguments: --help, -h and unknown flags all
		// fall through to the usage error below.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := cli.Parse(prog, args)
			if err != nil {
				return err
			}
			switch action {
			case cli.ActionVersion:
				_, err := fmt.Fprintln(cmd.OutOrStdout(), daggerml.GetVersion())
				return err
			}
			return cli.UsageError{Prog: prog}
		},
	}
	return cmd
}

// Execute runs the dml command with provided args.
func Execute(prog string, args []string) error {
	return execute(NewRootCmd(prog), prog, args)
}

func execute(cmd *cobra.Command, prog string, args []string) error {
	// cobra injects a hidden __complete command when it is the first argument.
	if len(args) > 0 && strings.HasPrefix(args[0], cobra.ShellCompRequestCmd) {
		return cli.UsageError{Prog: prog}
	}
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.Execute()
}
