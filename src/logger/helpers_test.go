// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"testing"

	"github.com/H0llyW00dzZ/channel-logger/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorded is the expected content of an InMemoryLogger.
type recorded struct {
	all, info, errors, warnings, sections, verbose []string
}

func assertRecorded(t *testing.T, mem *logger.InMemoryLogger, want recorded) {
	t.Helper()

	orEmpty := func(s []string) []string {
		if s == nil {
			return []string{}
		}
		return s
	}
	assert.Equal(t, orEmpty(want.all), mem.AllLogs(), "all logs")
	assert.Equal(t, orEmpty(want.info), mem.InfoLogs(), "info logs")
	assert.Equal(t, orEmpty(want.errors), mem.ErrorLogs(), "error logs")
	assert.Equal(t, orEmpty(want.warnings), mem.WarningLogs(), "warning logs")
	assert.Equal(t, orEmpty(want.sections), mem.SectionLogs(), "section logs")
	assert.Equal(t, orEmpty(want.verbose), mem.VerboseLogs(), "verbose logs")
}

// logEachChannel logs a to e on info, error, warning, section and verbose in
// that order, checking the recorded state after every call.
func logEachChannel(t *testing.T, log logger.Logger, mem *logger.InMemoryLogger, want [5]string) {
	t.Helper()

	require.NoError(t, log.LogInfo("a"))
	assertRecorded(t, mem, recorded{
		all:  want[:1],
		info: want[0:1],
	})

	require.NoError(t, log.LogError("b"))
	assertRecorded(t, mem, recorded{
		all:    want[:2],
		info:   want[0:1],
		errors: want[1:2],
	})

	require.NoError(t, log.LogWarning("c"))
	assertRecorded(t, mem, recorded{
		all:      want[:3],
		info:     want[0:1],
		errors:   want[1:2],
		warnings: want[2:3],
	})

	require.NoError(t, log.LogSection("d"))
	assertRecorded(t, mem, recorded{
		all:      want[:4],
		info:     want[0:1],
		errors:   want[1:2],
		warnings: want[2:3],
		sections: want[3:4],
	})

	require.NoError(t, log.LogVerbose("e"))
	assertRecorded(t, mem, recorded{
		all:      want[:5],
		info:     want[0:1],
		errors:   want[1:2],
		warnings: want[2:3],
		sections: want[3:4],
		verbose:  want[4:5],
	})
}
