// Package main provides the bbse CLI entry point.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Build information, set via -ldflags.
var (
	version = "dev"     //nolint:gochecknoglobals // set by the linker
	commit  = "none"    //nolint:gochecknoglobals // set by the linker
	date    = "unknown" //nolint:gochecknoglobals // set by the linker
)

// flagKeys maps command flags to configuration keys.
var flagKeys = map[string]string{ //nolint:gochecknoglobals // static lookup table
	"start":    "range.start",
	"end":      "range.end",
	"midpoint": "range.midpoint",
	"limit":    "verify.limit",
}

// app holds state shared by all commands of one invocation.
type app struct {
	v       *viper.Viper
	cfg     *Config
	logger  *slog.Logger
	cfgFile string
	verbose bool
	noColor bool
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "bbse",
		Short: "Backward Binary Search Encoding tool",
		Long: `bbse encodes integers from a known range [start, end) as the left/right
decisions a binary search takes to find them, and decodes such paths back.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./bbse.yaml or $HOME/.config/bbse/bbse.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(a.encodeCmd())
	rootCmd.AddCommand(a.decodeCmd())
	rootCmd.AddCommand(a.stackCmd())
	rootCmd.AddCommand(a.verifyCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// setup configures logging and loads the configuration for the command being run.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %q: %w", name, err)
			}
		}
	}

	cfg, err := loadConfig(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.noColor || !cfg.Output.Color {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	a.logger.Debug("configuration loaded",
		"file", a.v.ConfigFileUsed(),
		"start", cfg.Range.Start,
		"end", cfg.Range.End,
		"midpoint", cfg.Range.Midpoint)

	return nil
}

func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64("start", defaultRangeStart, "first value of the range (inclusive)")
	cmd.Flags().Uint64("end", defaultRangeEnd, "end of the range (exclusive)")
	cmd.Flags().Uint64("midpoint", 0, "custom first split point, strictly inside (start, end); defaults to the arithmetic midpoint")
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bbse %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
