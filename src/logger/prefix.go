// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import "strings"

// Prefixer produces the prefix for a single log call.
// Prefix is called once per call, before any line is written.
type Prefixer interface {
	Prefix() string
}

// StaticPrefix is a Prefixer that always returns the same string.
type StaticPrefix string

// Prefix returns p.
func (p StaticPrefix) Prefix() string { return string(p) }

// PrefixerFunc adapts a function to a Prefixer.
// The function is evaluated again for every log call.
type PrefixerFunc func() string

// Prefix returns f().
func (f PrefixerFunc) Prefix() string { return f() }

// addPrefix returns a copy of text with prefix prepended to every line.
func addPrefix(text []string, prefix string) []string {
	lines := ToLines(text...)
	if prefix == "" {
		return lines
	}
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return lines
}

// prefixed returns a LogFunc that prefixes the lines before calling next.
// A call without text is forwarded as is and does not consult p.
func prefixed(next LogFunc, p Prefixer) LogFunc {
	return func(text ...string) error {
		if len(text) == 0 {
			return next()
		}
		return next(addPrefix(text, p.Prefix())...)
	}
}

// Prefix returns a Logger that adds p's prefix to each line logged through it.
func Prefix(toWrap Logger, p Prefixer) Logger {
	inner := channelsOf(toWrap)
	return Wrap(toWrap, Options{
		Info:    Custom(prefixed(inner.Info, p)),
		Error:   Custom(prefixed(inner.Error, p)),
		Warning: Custom(prefixed(inner.Warning, p)),
		Section: Custom(prefixed(inner.Section, p)),
		Verbose: Custom(prefixed(inner.Verbose, p)),
	})
}

// DefaultIndentation is used by [Indent].
const DefaultIndentation = "  "

// Indent returns a Logger that indents each line by two spaces.
func Indent(toWrap Logger) Logger {
	return IndentString(toWrap, DefaultIndentation)
}

// IndentSpaces returns a Logger that indents each line by n spaces.
// A non-positive n adds nothing.
func IndentSpaces(toWrap Logger, n int) Logger {
	return IndentString(toWrap, strings.Repeat(" ", max(n, 0)))
}

// IndentString returns a Logger that indents each line with indentation.
func IndentString(toWrap Logger, indentation string) Logger {
	return Prefix(toWrap, StaticPrefix(indentation))
}
