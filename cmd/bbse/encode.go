package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/arloliu/bbse/encoding"
	"github.com/arloliu/bbse/stack"
)

func (a *app) encodeCmd() *cobra.Command {
	var format string

	var packed bool

	cmd := &cobra.Command{
		Use:   "encode VALUE...",
		Short: "Encode values as binary search paths",
		Long: `Encode each value as the decisions a binary search over [start, end) takes to find it.

Examples:
  bbse encode --end 8 5                     # 10
  bbse encode --end 256 --midpoint 16 3 17  # bias toward small values
  bbse encode --end 1000 --packed 1 2 3     # pack all paths into one bit stream`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			values, err := parseValues(args)
			if err != nil {
				return err
			}

			codec, err := a.cfg.codec()
			if err != nil {
				return err
			}

			a.logger.Debug("encoding", "values", len(values), "range", codec.Range(), "midpoint", codec.Midpoint())

			if packed {
				return runPack(cobraCmd.OutOrStdout(), codec, values)
			}

			return runEncode(cobraCmd.OutOrStdout(), codec, values, format)
		},
	}

	addRangeFlags(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, table, json)")
	cmd.Flags().BoolVar(&packed, "packed", false, "write all paths into one MSB-first bit stream and print it as hex")

	return cmd
}

func runEncode(w io.Writer, codec *encoding.Codec, values []uint64, format string) error {
	records := make([]pathRecord, 0, len(values))
	for _, v := range values {
		p, err := codec.Encode(v)
		if err != nil {
			return err
		}
		records = append(records, newPathRecord(v, p))
	}

	return writeRecords(w, records, format, false)
}

// runPack prints the packed stream and the per-value bit lengths needed to read it back.
func runPack(w io.Writer, codec *encoding.Codec, values []uint64) error {
	s := stack.NewWithCapacity(len(values))
	for _, v := range values {
		p, err := codec.Encode(v)
		if err != nil {
			return err
		}
		s.Push(p)
	}

	packed, err := s.AppendPacked(nil)
	if err != nil {
		return err
	}

	lengths := make([]string, 0, s.Len())
	for _, n := range s.Lengths() {
		lengths = append(lengths, strconv.Itoa(n))
	}

	fmt.Fprintf(w, "packed:  %s\n", hex.EncodeToString(packed))
	fmt.Fprintf(w, "lengths: %s\n", strings.Join(lengths, ","))
	fmt.Fprintf(w, "size:    %s bits in %s bytes for %s values\n",
		humanize.Comma(int64(s.Bits())), humanize.Comma(int64(len(packed))), humanize.Comma(int64(s.Len())))

	return nil
}
