// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/H0llyW00dzZ/channel-logger/src/internal/helper/gc"
)

// Level names used by the structured sinks.
const (
	LevelInfo    = "info"
	LevelError   = "error"
	LevelWarning = "warning"
	LevelSection = "section"
	LevelVerbose = "verbose"
)

// jsonEntry is a single line written by the JSON sink.
type jsonEntry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// jsonSink writes one JSON object per line.
//
// jsonSink is safe for concurrent use by multiple goroutines.
type jsonSink struct {
	mu     sync.Mutex
	writer io.Writer
}

func (s *jsonSink) write(level string, text []string) error {
	if len(text) == 0 {
		return nil
	}

	buf := gc.Default.Get()
	defer gc.Release(buf)

	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	for _, line := range text {
		// Encoding a struct of two strings cannot fail.
		_ = enc.Encode(jsonEntry{Level: level, Message: line})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = buf.WriteTo(s.writer)
	return nil
}

func (s *jsonSink) level(name string) LogFunc {
	return func(text ...string) error { return s.write(name, text) }
}

// NewJSONLogger creates a Logger that writes each line to w as a JSON object
// of the form {"level":"warning","message":"..."}.
// A nil w discards the output. Verbose logs are dropped unless opts enables them.
func NewJSONLogger(w io.Writer, opts Options) Logger {
	if w == nil {
		w = io.Discard
	}
	s := &jsonSink{writer: w}
	return resolve(opts, Funcs{
		Info:    s.level(LevelInfo),
		Error:   s.level(LevelError),
		Warning: s.level(LevelWarning),
		Section: s.level(LevelSection),
		Verbose: s.level(LevelVerbose),
	})
}
