// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"strings"
	"testing"
	"time"

	"github.com/H0llyW00dzZ/channel-logger/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamps(t *testing.T) {
	t.Run("Clock", func(t *testing.T) {
		mem := logger.NewInMemoryLogger(logger.Options{})
		berlin := time.FixedZone("CET", 60*60)
		ticks := []time.Time{
			time.Date(2024, 1, 2, 3, 4, 5, 678_000_000, time.UTC),
			time.Date(2024, 1, 2, 4, 4, 6, 0, berlin),
		}
		now := func() time.Time {
			next := ticks[0]
			ticks = ticks[1:]
			return next
		}
		log := logger.TimestampsWithClock(mem, now)

		require.NoError(t, log.LogInfo("a", "b"))
		require.NoError(t, log.LogError("c"))

		assert.Equal(t, []string{
			"2024-01-02T03:04:05.678Z: a",
			"2024-01-02T03:04:05.678Z: b",
			"2024-01-02T03:04:06.000Z: c",
		}, mem.AllLogs())
	})

	t.Run("Now", func(t *testing.T) {
		mem := logger.NewInMemoryLogger(logger.Options{})
		before := time.Now().UTC().Truncate(time.Millisecond)

		require.NoError(t, logger.Timestamps(mem).LogInfo("hello"))

		logs := mem.InfoLogs()
		require.Len(t, logs, 1)
		stamp, rest, ok := strings.Cut(logs[0], ": ")
		require.True(t, ok)
		assert.Equal(t, "hello", rest)

		parsed, err := time.Parse(logger.TimestampLayout, stamp)
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(stamp, "Z"), "timestamp must be UTC")
		assert.False(t, parsed.Before(before))
	})
}

func TestLineNumbers(t *testing.T) {
	t.Run("SharedAcrossChannels", func(t *testing.T) {
		mem := logger.NewInMemoryLogger(logger.Options{Verbose: logger.Enabled()})
		logEachChannel(t, logger.LineNumbers(mem), mem, [5]string{"1. a", "2. b", "3. c", "4. d", "5. e"})
	})

	t.Run("FirstLineNumber", func(t *testing.T) {
		mem := logger.NewInMemoryLogger(logger.Options{Verbose: logger.Enabled()})
		logEachChannel(t, logger.LineNumbersFrom(mem, 9), mem, [5]string{"9. a", "10. b", "11. c", "12. d", "13. e"})
	})

	t.Run("OncePerCall", func(t *testing.T) {
		mem := logger.NewInMemoryLogger(logger.Options{})
		log := logger.LineNumbers(mem)

		require.NoError(t, log.LogInfo("a", "b"))
		require.NoError(t, log.LogInfo("c"))
		assert.Equal(t, []string{"1. a", "1. b", "2. c"}, mem.InfoLogs())
	})

	t.Run("IndependentCounters", func(t *testing.T) {
		mem := logger.NewInMemoryLogger(logger.Options{})
		first := logger.LineNumbers(mem)
		second := logger.LineNumbers(mem)

		require.NoError(t, first.LogInfo("a"))
		require.NoError(t, second.LogInfo("b"))
		require.NoError(t, first.LogInfo("c"))
		assert.Equal(t, []string{"1. a", "1. b", "2. c"}, mem.InfoLogs())
	})

	t.Run("EmptyCallKeepsNumber", func(t *testing.T) {
		mem := logger.NewInMemoryLogger(logger.Options{})
		log := logger.LineNumbers(mem)

		require.NoError(t, log.LogInfo("a"))
		require.NoError(t, log.LogWarning())
		require.NoError(t, log.LogInfo("b"))
		assert.Equal(t, []string{"1. a", "2. b"}, mem.AllLogs())
	})
}
