// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"slices"
	"sync"
)

// InMemoryLogger is a Logger that stores its logs in memory.
// It is meant for asserting on log output in tests.
//
// AllLogs holds every recorded line in call order, and each channel also
// records into its own list. InMemoryLogger is safe for concurrent use.
// A nil *InMemoryLogger records nothing and reports no logs.
type InMemoryLogger struct {
	funcs Funcs

	mu       sync.Mutex
	all      []string
	info     []string
	errors   []string
	warnings []string
	sections []string
	verbose  []string
}

// NewInMemoryLogger creates an empty InMemoryLogger.
// Every channel except verbose records by default.
func NewInMemoryLogger(opts Options) *InMemoryLogger {
	m := &InMemoryLogger{}
	m.funcs = resolve(opts, Funcs{
		Info:    m.recorder(&m.info),
		Error:   m.recorder(&m.errors),
		Warning: m.recorder(&m.warnings),
		Section: m.recorder(&m.sections),
		Verbose: m.recorder(&m.verbose),
	})
	return m
}

func (m *InMemoryLogger) recorder(channel *[]string) LogFunc {
	return func(text ...string) error {
		m.mu.Lock()
		defer m.mu.Unlock()

		m.all = append(m.all, text...)
		*channel = append(*channel, text...)
		return nil
	}
}

// channels returns the resolved channels. A nil logger records nothing.
func (m *InMemoryLogger) channels() Funcs {
	if m == nil {
		return Funcs{}
	}
	return m.funcs
}

func (m *InMemoryLogger) snapshot(pick func(m *InMemoryLogger) []string) []string {
	if m == nil {
		return []string{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	logs := pick(m)
	if logs == nil {
		return []string{}
	}
	return slices.Clone(logs)
}

// LogInfo records text as informational.
func (m *InMemoryLogger) LogInfo(text ...string) error { return m.channels().LogInfo(text...) }

// LogError records text as an error.
func (m *InMemoryLogger) LogError(text ...string) error { return m.channels().LogError(text...) }

// LogWarning records text as a warning.
func (m *InMemoryLogger) LogWarning(text ...string) error { return m.channels().LogWarning(text...) }

// LogSection records text as a section header.
func (m *InMemoryLogger) LogSection(text ...string) error { return m.channels().LogSection(text...) }

// LogVerbose records text as a verbose log.
func (m *InMemoryLogger) LogVerbose(text ...string) error { return m.channels().LogVerbose(text...) }

// AllLogs returns every recorded line in call order.
func (m *InMemoryLogger) AllLogs() []string {
	return m.snapshot(func(m *InMemoryLogger) []string { return m.all })
}

// InfoLogs returns the recorded informational lines.
func (m *InMemoryLogger) InfoLogs() []string {
	return m.snapshot(func(m *InMemoryLogger) []string { return m.info })
}

// ErrorLogs returns the recorded error lines.
func (m *InMemoryLogger) ErrorLogs() []string {
	return m.snapshot(func(m *InMemoryLogger) []string { return m.errors })
}

// WarningLogs returns the recorded warning lines.
func (m *InMemoryLogger) WarningLogs() []string {
	return m.snapshot(func(m *InMemoryLogger) []string { return m.warnings })
}

// SectionLogs returns the recorded section header lines.
func (m *InMemoryLogger) SectionLogs() []string {
	return m.snapshot(func(m *InMemoryLogger) []string { return m.sections })
}

// VerboseLogs returns the recorded verbose lines.
func (m *InMemoryLogger) VerboseLogs() []string {
	return m.snapshot(func(m *InMemoryLogger) []string { return m.verbose })
}

var _ Logger = (*InMemoryLogger)(nil)
