// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/H0llyW00dzZ/channel-logger/src/config"
	"github.com/H0llyW00dzZ/channel-logger/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/channel-logger/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/channel-logger/src/logger"
	"github.com/spf13/cobra"
)

// ErrUnknownChannel is returned when --channel names no logging channel.
var ErrUnknownChannel = errors.New("unknown channel")

// flags holds the command-line flags of the root command.
type flags struct {
	configFile      string
	loggerType      string
	channel         string
	verbose         bool
	timestamps      bool
	lineNumbers     bool
	firstLineNumber int
	indent          int
	prefix          string
	noSplit         bool
}

// channels maps --channel values to the logger method they call.
var channels = map[string]func(logger.Logger, ...string) error{
	logger.LevelInfo:    logger.Logger.LogInfo,
	logger.LevelError:   logger.Logger.LogError,
	logger.LevelWarning: logger.Logger.LogWarning,
	logger.LevelSection: logger.Logger.LogSection,
	logger.LevelVerbose: logger.Logger.LogVerbose,
}

// Execute runs the root command with the process arguments and standard streams.
func Execute(ctx context.Context, version string) error {
	rootCmd := NewRootCmd(version, os.Stdin, os.Stdout, os.Stderr)
	rootCmd.SetArgs(os.Args[1:])
	return rootCmd.ExecuteContext(ctx)
}

// NewRootCmd creates the logpipe command reading from in and writing to out and errOut.
func NewRootCmd(version string, in io.Reader, out, errOut io.Writer) *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   posix.GetExecutableName() + " [TEXT...]",
		Short: "Log text through a configurable channel logger",
		Long: `logpipe logs its arguments, or standard input when no arguments are given,
on a single channel. Output can be decorated with prefixes, indentation,
line numbers and timestamps, and formatted for Azure DevOps pipelines.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().StringVarP(&f.configFile, "config", "c", "", "load logger configuration from a JSON or YAML file")
	rootCmd.Flags().StringVarP(&f.loggerType, "type", "t", "", `logger type, "console" or "devops" (default from config)`)
	rootCmd.Flags().StringVarP(&f.channel, "channel", "l", logger.LevelInfo, "channel to log on: info, error, warning, section or verbose")
	rootCmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "enable the verbose channel")
	rootCmd.Flags().BoolVar(&f.timestamps, "timestamps", false, "prefix lines with the UTC time")
	rootCmd.Flags().BoolVarP(&f.lineNumbers, "line-numbers", "n", false, "number log calls")
	rootCmd.Flags().IntVar(&f.firstLineNumber, "first-line-number", 1, "number of the first log call")
	rootCmd.Flags().IntVarP(&f.indent, "indent", "i", 0, "indent lines by this many spaces")
	rootCmd.Flags().StringVarP(&f.prefix, "prefix", "p", "", "prefix every line with this text")
	rootCmd.Flags().BoolVar(&f.noSplit, "no-split", false, "log multi-line text as a single entry")

	return rootCmd
}

// applyFlags overrides the configuration with the flags given on the command line.
func applyFlags(cmd *cobra.Command, f *flags, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("type") {
		cfg.Type = f.loggerType
	}
	if changed("verbose") {
		cfg.Channels.Verbose = &f.verbose
	}
	if changed("timestamps") {
		cfg.Decorators.Timestamps = f.timestamps
	}
	if changed("line-numbers") {
		cfg.Decorators.LineNumbers = f.lineNumbers
	}
	if changed("first-line-number") {
		cfg.Decorators.FirstLineNumber = f.firstLineNumber
	}
	if changed("indent") {
		cfg.Decorators.Indent = f.indent
	}
	if changed("prefix") {
		cfg.Decorators.Prefix = f.prefix
	}
	if changed("no-split") {
		cfg.Decorators.SplitLines = !f.noSplit
	}
}

// run builds the logger and logs the input on the selected channel.
func run(cmd *cobra.Command, f *flags, args []string) error {
	logFn, ok := channels[strings.ToLower(f.channel)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownChannel, f.channel)
	}

	cfg, err := config.Load(f.configFile)
	if err != nil {
		return err
	}
	applyFlags(cmd, f, cfg)

	log, err := cfg.Build(logger.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	text := args
	if len(text) == 0 {
		input, err := readInput(cmd.InOrStdin())
		if err != nil {
			return err
		}
		if input == "" {
			return nil
		}
		text = []string{input}
	}

	if err := cmd.Context().Err(); err != nil {
		return err
	}
	return logFn(log, text...)
}

// readInput reads all of r without its final line break.
func readInput(r io.Reader) (string, error) {
	buf := gc.Default.Get()
	defer gc.Release(buf)

	if _, err := buf.ReadFrom(r); err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}

	input := buf.String()
	if trimmed, ok := strings.CutSuffix(input, "\n"); ok {
		input = strings.TrimSuffix(trimmed, "\r")
	}
	return input, nil
}
