package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/arloliu/bbse/bitpath"
)

// Output formats.
const (
	formatText  = "text"
	formatTable = "table"
	formatJSON  = "json"
)

// emptyPath is how an empty path is shown and accepted on the command line.
const emptyPath = "[]"

// Sentinel errors for the CLI.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidValue      = errors.New("invalid value")
	ErrNoInput           = errors.New("no input")
)

// pathRecord is one value/path pair as printed by the commands.
type pathRecord struct {
	Value uint64 `json:"value"`
	Path  string `json:"path"`
	Bits  int    `json:"bits"`

	path bitpath.Path
}

func newPathRecord(v uint64, p bitpath.Path) pathRecord {
	return pathRecord{Value: v, Path: p.String(), Bits: p.Len(), path: p}
}

// renderPath renders a path with one color per decision.
func renderPath(p bitpath.Path) string {
	if p.IsEmpty() {
		return color.New(color.Faint).Sprint(emptyPath)
	}

	one := color.New(color.FgGreen)
	zero := color.New(color.FgCyan)

	var sb strings.Builder
	for bit := range p.All() {
		if bit {
			sb.WriteString(one.Sprint("1"))
		} else {
			sb.WriteString(zero.Sprint("0"))
		}
	}

	return sb.String()
}

func parsePathArg(arg string) (bitpath.Path, error) {
	if arg == emptyPath || arg == "-" {
		return bitpath.Path{}, nil
	}

	return bitpath.Parse(arg)
}

func parseValues(args []string) ([]uint64, error) {
	values := make([]uint64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidValue, arg, err)
		}
		values = append(values, v)
	}

	return values, nil
}

// writeRecords prints value/path pairs in the requested format.
// pathFirst selects the column order used by decode.
func writeRecords(w io.Writer, records []pathRecord, format string, pathFirst bool) error {
	switch format {
	case formatText:
		for _, r := range records {
			if pathFirst {
				fmt.Fprintf(w, "%s\t%d\n", renderPath(r.path), r.Value)
			} else {
				fmt.Fprintf(w, "%d\t%s\n", r.Value, renderPath(r.path))
			}
		}

		return nil
	case formatTable:
		tbl := newTable()
		if pathFirst {
			tbl.AppendHeader(table.Row{"Path", "Bits", "Value"})
		} else {
			tbl.AppendHeader(table.Row{"Value", "Path", "Bits"})
		}

		total := 0
		for _, r := range records {
			path := r.Path
			if path == "" {
				path = emptyPath
			}
			if pathFirst {
				tbl.AppendRow(table.Row{path, r.Bits, r.Value})
			} else {
				tbl.AppendRow(table.Row{r.Value, path, r.Bits})
			}
			total += r.Bits
		}
		tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d items, %d bits", len(records), total)})

		_, err := fmt.Fprintln(w, tbl.Render())

		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(records)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Footer = text.FormatDefault

	return tbl
}
