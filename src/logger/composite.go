// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"slices"

	"golang.org/x/sync/errgroup"
)

// composite fans each call out to all of its loggers.
type composite struct{ loggers []Logger }

// fanOut gives every logger its own copy of text, so a logger that edits
// its lines in place does not race with the others.
func (c composite) fanOut(pick func(Logger) LogFunc, text []string) error {
	var g errgroup.Group
	for _, l := range c.loggers {
		fn, lines := pick(l), slices.Clone(text)
		g.Go(func() error { return fn(lines...) })
	}
	return g.Wait()
}

func (c composite) LogInfo(text ...string) error {
	return c.fanOut(func(l Logger) LogFunc { return l.LogInfo }, text)
}

func (c composite) LogError(text ...string) error {
	return c.fanOut(func(l Logger) LogFunc { return l.LogError }, text)
}

func (c composite) LogWarning(text ...string) error {
	return c.fanOut(func(l Logger) LogFunc { return l.LogWarning }, text)
}

func (c composite) LogSection(text ...string) error {
	return c.fanOut(func(l Logger) LogFunc { return l.LogSection }, text)
}

func (c composite) LogVerbose(text ...string) error {
	return c.fanOut(func(l Logger) LogFunc { return l.LogVerbose }, text)
}

// Composite returns a Logger that logs to every non-nil logger in loggers.
// An interface holding a nil pointer is not nil and is kept; the sinks of
// this package ignore calls on a nil receiver.
//
// When exactly one non-nil logger is given it is returned unchanged. Otherwise
// each call runs on all loggers concurrently and returns once every one of
// them has finished, with the first error encountered. A failing logger does
// not stop the others.
func Composite(loggers ...Logger) Logger {
	defined := make([]Logger, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			defined = append(defined, l)
		}
	}
	if len(defined) == 1 {
		return defined[0]
	}
	return composite{loggers: defined}
}
