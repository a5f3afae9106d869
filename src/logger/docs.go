// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides a five channel logging abstraction (info, error,
// warning, section and verbose) and a set of decorators that compose over it.
//
// A program starts from a sink that performs the actual output:
//
//   - [NewConsoleLogger] writes lines to standard output and standard error.
//   - [NewInMemoryLogger] records lines for assertions in tests.
//   - [NewJSONLogger] writes one JSON object per line.
//   - [NewSlogLogger] forwards lines to a [log/slog] logger.
//
// The sink can then be wrapped any number of times:
//
//	log := logger.NewConsoleLogger(logger.Options{Verbose: logger.Enabled()})
//	log = logger.Timestamps(logger.Indent(log))
//	log = logger.SplitLines(log)
//
//	_ = log.LogSection("Build")
//	_ = log.LogInfo("compiling...\ndone")
//
// Per channel behavior is configured with [Options]. Each [Channel] is either
// unset, [Enabled], [Disabled] or [Custom]. Verbose output is opt-in: an unset
// verbose channel is silent for every sink and for [Wrap].
//
// [NewAzureDevOpsLogger] prefixes errors, warnings and section headers with
// the Azure Pipelines logging markers, and [NewDefaultLogger] selects between
// the console and the Azure DevOps flavors.
package logger
