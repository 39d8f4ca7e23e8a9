package cli

import (
	"github.com/spf13/cobra"

	"github.com/logicossoftware/go-dxcode"
)

func newEncodeCommand(a *App) *cobra.Command {
	var (
		file       string
		output     string
		noCompress bool
		ttl        uint32
	)
	cmd := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode text, a file or stdin as a DX string",
		Example: `  dxc encode "Hello, World"
  dxc encode -f image.png -o image.dx
  echo secret | dxc encode --ttl 3600`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.readInput(args, file)
			if err != nil {
				return err
			}

			compress := a.Cfg.CompressOr(true)
			if cmd.Flags().Changed("no-compress") {
				compress = !noCompress
			}
			opts := []dxcode.EncodeOption{dxcode.WithCompression(compress)}
			if cmd.Flags().Changed("ttl") {
				opts = append(opts, dxcode.WithTTL(ttl))
			} else if def, ok := a.Cfg.DefaultTTL(); ok {
				opts = append(opts, dxcode.WithTTL(def))
			}

			s, err := a.Codec.Encode(data, opts...)
			if err != nil {
				return err
			}
			a.Logger.Debug("encoded", "input_bytes", len(data), "output_chars", len(s), "compress", compress)
			return a.writeOutput([]byte(s), output, true)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read input from file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write output to file")
	cmd.Flags().BoolVar(&noCompress, "no-compress", false, "Never compress the payload")
	cmd.Flags().Uint32Var(&ttl, "ttl", 0, "Expire the data after this many seconds (0 never expires)")
	return cmd
}

func newDecodeCommand(a *App) *cobra.Command {
	var (
		file       string
		output     string
		noCheckTTL bool
	)
	cmd := &cobra.Command{
		Use:   "decode [text]",
		Short: "Decode a DX string",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.readEncoded(args, file)
			if err != nil {
				return err
			}

			checkTTL := a.Cfg.CheckTTLOr(true)
			if cmd.Flags().Changed("no-check-ttl") {
				checkTTL = !noCheckTTL
			}
			data, err := a.Codec.Decode(s, dxcode.WithCheckTTL(checkTTL))
			if err != nil {
				a.Logger.Debug("decode failed", "code", dxcode.Code(err), "input_chars", len(s))
				return err
			}
			a.Logger.Debug("decoded", "input_chars", len(s), "output_bytes", len(data), "check_ttl", checkTTL)
			return a.writeOutput(data, output, false)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read input from file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write output to file")
	cmd.Flags().BoolVar(&noCheckTTL, "no-check-ttl", false, "Decode even if the data has expired")
	return cmd
}
