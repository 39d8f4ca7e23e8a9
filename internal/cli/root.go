package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// errReported marks a failure whose message has already been printed.
var errReported = errors.New("failure already reported")

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := New()
	root := NewRootCommand(a, version, commit)
	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintf(a.ErrWriter, "%s %v\n", a.paint(color.FgRed, "Error:"), err)
	}
	return err
}

// NewRootCommand builds the dxc command tree around a.
func NewRootCommand(a *App, version, commit string) *cobra.Command {
	root := &cobra.Command{
		Use:           "dxc",
		Short:         "Encode and decode DX strings",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.OutWriter = cmd.OutOrStdout()
			a.ErrWriter = cmd.ErrOrStderr()
			a.InReader = cmd.InOrStdin()

			if a.OutWriter != os.Stdout {
				a.ColorableOut = a.OutWriter
				a.Color = false
			}

			return a.InitConfig()
		},
	}

	root.PersistentFlags().StringVar(&a.CfgFile, "config", "", "config file (default is $HOME/.dxc/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.Verbose, "verbose", "v", false, "Log details to stderr")

	root.AddCommand(
		newEncodeCommand(a),
		newDecodeCommand(a),
		newCheckCommand(a),
		newVerifyCommand(a),
		newInspectCommand(a),
		newInfoCommand(a),
		newVersionCommand(version, commit),
	)
	return root
}
