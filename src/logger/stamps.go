// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"strconv"
	"sync/atomic"
	"time"
)

// TimestampLayout is the ISO-8601 layout used by [Timestamps], always in UTC
// with millisecond precision, e.g. 2024-01-02T03:04:05.678Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// clockPrefix prefixes lines with the time read from now.
type clockPrefix struct{ now func() time.Time }

func (c clockPrefix) Prefix() string {
	return c.now().UTC().Format(TimestampLayout) + ": "
}

// Timestamps returns a Logger that prefixes each line with the current UTC time.
func Timestamps(l Logger) Logger {
	return TimestampsWithClock(l, time.Now)
}

// TimestampsWithClock is like [Timestamps] but reads the time from now.
func TimestampsWithClock(l Logger, now func() time.Time) Logger {
	return Prefix(l, clockPrefix{now: now})
}

// lineCounter numbers log calls across every channel of one logger.
type lineCounter struct{ next atomic.Int64 }

func (c *lineCounter) Prefix() string {
	n := c.next.Add(1) - 1
	return strconv.FormatInt(n, 10) + ". "
}

// LineNumbers returns a Logger that prefixes log calls with "1. ", "2. ", ...
// The counter is shared by all channels and advances once per call.
func LineNumbers(l Logger) Logger {
	return LineNumbersFrom(l, 1)
}

// LineNumbersFrom is like [LineNumbers] but starts counting at first.
func LineNumbersFrom(l Logger, first int) Logger {
	c := &lineCounter{}
	c.next.Store(int64(first))
	return Prefix(l, c)
}
