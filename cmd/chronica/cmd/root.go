// Package cmd implements the chronica command line interface.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/chronica/config"
	"github.com/sarchlab/chronica/core"
)

var (
	cfgFile   string
	inputPath string
	logLevel  string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "chronica",
	Short: "Simulator for the 4-register sample device",
	Long: `chronica parses capture files of before/instruction/after samples,
works out which numeric opcode hides which behavior, and runs the captured
program on a timed model of the device.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and reports errors on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile,
		"config", "c", "", "TOML configuration file")
	rootCmd.PersistentFlags().StringVarP(&inputPath,
		"input", "i", "input.txt", "sample capture file")
	rootCmd.PersistentFlags().StringVar(&logLevel,
		"log-level", "info", "log level (debug, info, trace)")
}

// setup assembles the effective configuration: file values over defaults,
// flag values over both.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.Default()

	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("input") || cfgFile == "" {
		cfg.Input = inputPath
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: level})))
	core.PrintToggle = cfg.LogLevel == "trace"

	return nil
}
