// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"context"
	"log/slog"
)

// slogSink forwards lines to a *slog.Logger.
type slogSink struct{ logger *slog.Logger }

func (s slogSink) level(level slog.Level, attrs ...slog.Attr) LogFunc {
	return func(text ...string) error {
		for _, line := range text {
			s.logger.LogAttrs(context.Background(), level, line, attrs...)
		}
		return nil
	}
}

// NewSlogLogger creates a Logger that emits one slog record per line.
//
// Info and section map to [slog.LevelInfo], with section records carrying a
// section=true attribute. Warning maps to [slog.LevelWarn], error to
// [slog.LevelError] and verbose to [slog.LevelDebug]. A nil l uses
// [slog.Default]. Verbose logs are dropped unless opts enables them.
func NewSlogLogger(l *slog.Logger, opts Options) Logger {
	if l == nil {
		l = slog.Default()
	}
	s := slogSink{logger: l}
	return resolve(opts, Funcs{
		Info:    s.level(slog.LevelInfo),
		Error:   s.level(slog.LevelError),
		Warning: s.level(slog.LevelWarn),
		Section: s.level(slog.LevelInfo, slog.Bool(LevelSection, true)),
		Verbose: s.level(slog.LevelDebug),
	})
}
