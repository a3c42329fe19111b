package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/arloliu/bbse/encoding"
	"github.com/arloliu/bbse/stack"
)

func (a *app) stackCmd() *cobra.Command {
	var pop int

	var dump bool

	cmd := &cobra.Command{
		Use:   "stack VALUE...",
		Short: "Push values onto a path stack and decode it back",
		Long: `Encode every value over [start, end), push the paths onto a stack, optionally pop
some of them, and decode the remaining stack in storage order.

Examples:
  bbse stack --end 8 0 1 2 3 4 5 6 7
  bbse stack --end 8 --pop 2 --dump 3 1 4 1 5`,
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

			s := stack.NewWithCapacity(len(values))
			for _, v := range values {
				p, err := codec.Encode(v)
				if err != nil {
					return err
				}
				s.Push(p)
			}

			for range pop {
				p, ok := s.Pop()
				if !ok {
					a.logger.Warn("stack exhausted before all pops", "requested", pop)
					break
				}
				a.logger.Debug("popped", "path", p.String())
			}

			return runStack(cobraCmd.OutOrStdout(), s, codec, dump)
		},
	}

	addRangeFlags(cmd)
	cmd.Flags().IntVar(&pop, "pop", 0, "number of paths to pop before decoding")
	cmd.Flags().BoolVar(&dump, "dump", false, "print the raw stack entries")

	return cmd
}

func runStack(w io.Writer, s *stack.Stack, codec *encoding.Codec, dump bool) error {
	if dump {
		if err := s.Format(w); err != nil {
			return err
		}
	}

	values, err := s.DecodeAllWith(codec)
	if err != nil {
		return err
	}

	tbl := newTable()
	tbl.AppendHeader(table.Row{"#", "Path", "Bits", "Value"})
	for i, p := range s.All() {
		path := p.String()
		if p.IsEmpty() {
			path = emptyPath
		}
		tbl.AppendRow(table.Row{i, path, p.Len(), values[i]})
	}
	tbl.AppendFooter(table.Row{"", "Total", s.Bits(), humanize.Comma(int64(s.Len())) + " values"})

	_, err = fmt.Fprintln(w, tbl.Render())

	return err
}
