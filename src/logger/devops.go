// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import "os"

// Azure Pipelines logging command markers.
const (
	ErrorMarker   = "##[error]"
	SectionMarker = "##[section]"
	WarningMarker = "##[warning]"
)

// DevOpsOptions configures [NewAzureDevOpsLogger].
type DevOpsOptions struct {
	Options

	// ToWrap receives the marked logs. When nil a console logger built from
	// Options is used.
	ToWrap Logger

	// Console is the sink of the default console logger. When nil standard
	// output and standard error are used.
	Console *Console
}

// NewAzureDevOpsLogger returns a Logger that prefixes error, warning and
// section logs with the Azure Pipelines markers. Info and verbose logs pass
// through unchanged.
//
// When no ToWrap logger is given, error logs are written to standard output
// unless opts.Error says otherwise, since the agent only parses markers from
// the output stream.
func NewAzureDevOpsLogger(opts DevOpsOptions) Logger {
	inner := opts.ToWrap
	if inner == nil {
		console := opts.Console
		if console == nil {
			console = NewConsole(os.Stdout, os.Stderr)
		}
		consoleOpts := opts.Options
		if !consoleOpts.Error.IsSet() {
			consoleOpts.Error = Custom(console.LogInfo)
		}
		inner = NewConsoleLoggerTo(console, consoleOpts)
	}

	channels := channelsOf(inner)
	return Wrap(inner, Options{
		Info:    Enabled(),
		Error:   Custom(prefixed(channels.Error, StaticPrefix(ErrorMarker))),
		Warning: Custom(prefixed(channels.Warning, StaticPrefix(WarningMarker))),
		Section: Custom(prefixed(channels.Section, StaticPrefix(SectionMarker))),
		Verbose: Enabled(),
	})
}
