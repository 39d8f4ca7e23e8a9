package cli

import (
	"fmt"
	"strings"
	"time"

	prettyjson "github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"

	"github.com/logicossoftware/go-dxcode"
)

func newCheckCommand(a *App) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "check [text]",
		Short: "Check whether the input is a well-formed DX string",
		Long:  "Check whether the input is a well-formed DX string. Exits with status 1 if it is not. The checksum and TTL are not examined.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.readInput(args, file)
			if err != nil {
				return err
			}
			if !dxcode.IsEncoded(strings.TrimSpace(string(b))) {
				a.fail("not a valid DX string")
				return errReported
			}
			a.ok("valid DX string")
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read input from file")
	return cmd
}

func newVerifyCommand(a *App) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "verify [text]",
		Short: "Verify the checksum of a DX string",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.readEncoded(args, file)
			if err != nil {
				return err
			}
			ok, err := a.Codec.Verify(s)
			if err != nil {
				return err
			}
			info, err := a.Codec.GetChecksumInfo(s)
			if err != nil {
				return err
			}
			if !ok {
				a.fail("checksum mismatch: stored 0x%04X, computed 0x%04X", info.Stored, info.Computed)
				return errReported
			}
			a.ok("checksum 0x%04X matches", info.Stored)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read input from file")
	return cmd
}

type inspectReport struct {
	Flags         string     `json:"flags"`
	Compressed    bool       `json:"compressed"`
	Checksum      string     `json:"checksum"`
	ChecksumMatch bool       `json:"checksum_match"`
	OriginalSize  int        `json:"original_size"`
	StoredSize    int        `json:"stored_size"`
	EncodedSize   int        `json:"encoded_size"`
	TTL           *ttlReport `json:"ttl"`
}

type ttlReport struct {
	CreatedAt  time.Time  `json:"created_at"`
	TTLSeconds uint32     `json:"ttl_seconds"`
	ExpiresAt  *time.Time `json:"expires_at"`
	Expired    bool       `json:"expired"`
}

func newInspectCommand(a *App) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "inspect [text]",
		Short: "Show the envelope of a DX string as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.readEncoded(args, file)
			if err != nil {
				return err
			}
			report, err := a.inspect(s)
			if err != nil {
				return err
			}

			f := prettyjson.NewFormatter()
			f.DisabledColor = !a.Color
			b, err := f.Marshal(report)
			if err != nil {
				return fmt.Errorf("unable to format report: %w", err)
			}
			_, err = fmt.Fprintln(a.ColorableOut, string(b))
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read input from file")
	return cmd
}

func (a *App) inspect(s string) (*inspectReport, error) {
	e, err := a.Codec.Inspect(s)
	if err != nil {
		return nil, err
	}
	sum, err := a.Codec.GetChecksumInfo(s)
	if err != nil {
		return nil, err
	}
	r := &inspectReport{
		Flags:         e.Flags.String(),
		Compressed:    e.Flags.Compressed(),
		Checksum:      fmt.Sprintf("0x%04X", e.Checksum),
		ChecksumMatch: sum.Match,
		OriginalSize:  len(e.Payload),
		StoredSize:    e.StoredSize,
		EncodedSize:   len(s),
	}
	ttl, err := a.Codec.TTL(s)
	if err != nil {
		return nil, err
	}
	if ttl != nil {
		r.TTL = &ttlReport{
			CreatedAt:  ttl.CreatedAt,
			TTLSeconds: e.TTLSeconds,
			Expired:    ttl.Expired,
		}
		if !ttl.ExpiresAt.IsZero() {
			exp := ttl.ExpiresAt
			r.TTL.ExpiresAt = &exp
		}
	}
	return r, nil
}
