// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"io"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/channel-logger/src/internal/helper/gc"
)

// Console is the sink behind [NewConsoleLogger].
// Error logs go to the error writer and every other channel to the output
// writer, one line per element of the text.
//
// Console is safe for concurrent use by multiple goroutines. The lines of a
// single call are written with one Write, so calls never interleave.
// Logging to a nil *Console writes nothing.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
}

// NewConsole creates a Console writing to out and errOut.
// A nil writer discards its output.
func NewConsole(out, errOut io.Writer) *Console {
	c := &Console{}
	c.SetOutput(out, errOut)
	return c
}

// SetOutput replaces the destinations of the Console.
func (c *Console) SetOutput(out, errOut io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	c.out, c.errOut = out, errOut
}

// writeLines writes each line followed by a newline.
// Console output is treated as infallible, so write errors are dropped.
func (c *Console) writeLines(toErr bool, text []string) error {
	if c == nil || len(text) == 0 {
		return nil
	}

	buf := gc.Default.Get()
	defer gc.Release(buf)

	for _, line := range text {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	w := c.out
	if toErr {
		w = c.errOut
	}
	_, _ = buf.WriteTo(w)
	return nil
}

// LogInfo writes text to the output writer.
func (c *Console) LogInfo(text ...string) error { return c.writeLines(false, text) }

// LogError writes text to the error writer.
func (c *Console) LogError(text ...string) error { return c.writeLines(true, text) }

// LogWarning writes text to the output writer.
func (c *Console) LogWarning(text ...string) error { return c.writeLines(false, text) }

// LogSection writes text to the output writer.
func (c *Console) LogSection(text ...string) error { return c.writeLines(false, text) }

// LogVerbose writes text to the output writer.
func (c *Console) LogVerbose(text ...string) error { return c.writeLines(false, text) }

// NewConsoleLogger creates a Logger that writes to standard output and
// standard error. Verbose logs are dropped unless opts enables them.
func NewConsoleLogger(opts Options) Logger {
	return NewConsoleLoggerTo(NewConsole(os.Stdout, os.Stderr), opts)
}

// NewConsoleLoggerTo is like [NewConsoleLogger] but writes to c.
func NewConsoleLoggerTo(c *Console, opts Options) Logger {
	return Wrap(c, opts)
}

var _ Logger = (*Console)(nil)
