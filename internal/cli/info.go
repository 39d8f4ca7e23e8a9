package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/logicossoftware/go-dxcode"
)

func newInfoCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the DX format parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := dxcode.GetInfo()
			w := a.ColorableOut
			key := func(s string) string { return a.paint(color.FgYellow, fmt.Sprintf("%-12s", s)) }

			fmt.Fprintln(w, a.paint(color.FgCyan, info.Name))
			fmt.Fprintln(w)
			fmt.Fprintf(w, "%s %s\n", key("Version:"), info.Version)
			fmt.Fprintf(w, "%s %s\n", key("Prefix:"), a.paint(color.FgGreen, info.Prefix))
			fmt.Fprintf(w, "%s 0x%02X (%d)\n", key("Magic:"), info.Magic, info.Magic)
			fmt.Fprintf(w, "%s %s\n", key("Padding:"), info.Padding)
			fmt.Fprintf(w, "%s %s\n", key("Checksum:"), info.Checksum)
			fmt.Fprintf(w, "%s %s (>= %d bytes)\n", key("Compression:"), info.Compression, info.CompressionThreshold)
			fmt.Fprintf(w, "%s %s\n", key("Alphabet:"), info.Alphabet)
			return nil
		},
	}
}

func newVersionCommand(version, commit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dxc version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dxc %s (%s), format %s\n", version, commit, dxcode.Version)
		},
	}
}
