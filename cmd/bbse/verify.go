package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/arloliu/bbse/encoding"
)

func (a *app) verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that every value of a range round-trips",
		Long: `Encode every value of [start, end), decode it back, check that no two values
share a path and report path length statistics.

Examples:
  bbse verify --end 1000000
  bbse verify --end 256 --midpoint 8`,
		Args: cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			codec, err := a.cfg.codec()
			if err != nil {
				return err
			}

			a.logger.Debug("verifying", "range", codec.Range(), "midpoint", codec.Midpoint(), "limit", a.cfg.Verify.Limit)

			report, err := encoding.Verify(codec, a.cfg.Verify.Limit)
			if err != nil {
				color.New(color.FgRed).Fprintf(cobraCmd.ErrOrStderr(), "verification failed\n")
				return err
			}

			return writeReport(cobraCmd.OutOrStdout(), report)
		},
	}

	addRangeFlags(cmd)
	cmd.Flags().Uint64("limit", defaultVerifyLimit, "largest range to walk")

	return cmd
}

func writeReport(w io.Writer, r encoding.Report) error {
	tbl := newTable()
	tbl.AppendRows([]table.Row{
		{"Range", r.Range.String()},
		{"First midpoint", r.Midpoint},
		{"Values", humanize.Comma(int64(r.Values))},
		{"Total bits", humanize.Comma(int64(r.TotalBits))},
		{"Mean bits", fmt.Sprintf("%.3f", r.MeanBits())},
		{"Min bits", r.MinBits},
		{"Max bits", r.MaxBits},
		{"Empty paths", r.Empty},
		{"Digest", fmt.Sprintf("%016x", r.Digest)},
	})

	if _, err := fmt.Fprintln(w, tbl.Render()); err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(w, "OK: all %s values round-trip with distinct paths\n", humanize.Comma(int64(r.Values)))

	return nil
}
