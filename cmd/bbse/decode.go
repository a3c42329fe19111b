package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arloliu/bbse/bitpath"
	"github.com/arloliu/bbse/encoding"
	"github.com/arloliu/bbse/stack"
)

func (a *app) decodeCmd() *cobra.Command {
	var (
		format  string
		packed  string
		lengths []int
	)

	cmd := &cobra.Command{
		Use:   "decode PATH...",
		Short: "Decode binary search paths back to values",
		Long: `Decode each path, written as 0 and 1 characters ("[]" or "-" for the empty path),
over the same range and midpoint it was encoded with.

Examples:
  bbse decode --end 8 10 000 []                         # 5 0 4
  bbse decode --end 1000 --packed 000080 --lengths 8,9  # 1 2`,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			codec, err := a.cfg.codec()
			if err != nil {
				return err
			}

			if packed != "" {
				return runUnpack(cobraCmd.OutOrStdout(), codec, packed, lengths, format)
			}

			if len(args) == 0 {
				return fmt.Errorf("%w: at least one path or --packed is required", ErrNoInput)
			}

			paths := make([]bitpath.Path, 0, len(args))
			for _, arg := range args {
				p, err := parsePathArg(arg)
				if err != nil {
					return err
				}
				paths = append(paths, p)
			}

			a.logger.Debug("decoding", "paths", len(paths), "range", codec.Range(), "midpoint", codec.Midpoint())

			return runDecode(cobraCmd.OutOrStdout(), codec, paths, format)
		},
	}

	addRangeFlags(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text, table, json)")
	cmd.Flags().StringVar(&packed, "packed", "", "hex encoded bit stream produced by 'encode --packed'")
	cmd.Flags().IntSliceVar(&lengths, "lengths", nil, "bit length of each path in the packed stream")

	return cmd
}

func runDecode(w io.Writer, codec *encoding.Codec, paths []bitpath.Path, format string) error {
	records := make([]pathRecord, 0, len(paths))
	for _, p := range paths {
		v, err := codec.Decode(p)
		if err != nil {
			return fmt.Errorf("path %q: %w", p, err)
		}
		records = append(records, newPathRecord(v, p))
	}

	return writeRecords(w, records, format, true)
}

func runUnpack(w io.Writer, codec *encoding.Codec, packed string, lengths []int, format string) error {
	raw, err := hex.DecodeString(packed)
	if err != nil {
		return fmt.Errorf("invalid packed stream: %w", err)
	}

	if len(lengths) == 0 {
		return fmt.Errorf("%w: --lengths is required with --packed", ErrNoInput)
	}

	s, err := stack.Unpack(raw, lengths)
	if err != nil {
		return err
	}

	paths := make([]bitpath.Path, 0, s.Len())
	for _, p := range s.All() {
		paths = append(paths, p)
	}

	return runDecode(w, codec, paths, format)
}
