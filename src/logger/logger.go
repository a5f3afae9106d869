// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

// Logger defines the interface for logging operations.
// It provides one method per channel. Each method accepts a single string or
// a sequence of lines and returns once the text has been handled.
//
// Calling a method without any text is allowed; most loggers treat it as an
// empty batch and [SplitLines] does not forward it at all.
type Logger interface {
	// LogInfo logs the provided text as informational.
	LogInfo(text ...string) error
	// LogError logs the provided text as an error.
	LogError(text ...string) error
	// LogWarning logs the provided text as a warning.
	LogWarning(text ...string) error
	// LogSection logs the provided text as a section header.
	LogSection(text ...string) error
	// LogVerbose logs the provided text as a verbose log.
	LogVerbose(text ...string) error
}

// LogFunc is the behavior behind a single channel.
type LogFunc func(text ...string) error

// noop is the LogFunc of a disabled channel.
func noop(...string) error { return nil }

// Funcs implements Logger with one function per channel.
// A nil field makes its channel a no-op, so the zero value discards everything.
type Funcs struct {
	Info    LogFunc
	Error   LogFunc
	Warning LogFunc
	Section LogFunc
	Verbose LogFunc
}

func call(fn LogFunc, text []string) error {
	if fn == nil {
		return nil
	}
	return fn(text...)
}

// LogInfo calls f.Info.
func (f Funcs) LogInfo(text ...string) error { return call(f.Info, text) }

// LogError calls f.Error.
func (f Funcs) LogError(text ...string) error { return call(f.Error, text) }

// LogWarning calls f.Warning.
func (f Funcs) LogWarning(text ...string) error { return call(f.Warning, text) }

// LogSection calls f.Section.
func (f Funcs) LogSection(text ...string) error { return call(f.Section, text) }

// LogVerbose calls f.Verbose.
func (f Funcs) LogVerbose(text ...string) error { return call(f.Verbose, text) }

// Discard is a Logger that drops everything.
var Discard Logger = Funcs{}

var _ Logger = Funcs{}
