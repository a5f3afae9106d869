// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/H0llyW00dzZ/channel-logger/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntries(t *testing.T, data string) []map[string]string {
	t.Helper()

	var entries []map[string]string
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]string
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "invalid JSON line %q", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestJSONLogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Levels",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, logger.Options{Verbose: logger.Enabled()})

				require.NoError(t, log.LogInfo("i"))
				require.NoError(t, log.LogError("e"))
				require.NoError(t, log.LogWarning("w"))
				require.NoError(t, log.LogSection("s"))
				require.NoError(t, log.LogVerbose("v"))

				assert.Equal(t, []map[string]string{
					{"level": "info", "message": "i"},
					{"level": "error", "message": "e"},
					{"level": "warning", "message": "w"},
					{"level": "section", "message": "s"},
					{"level": "verbose", "message": "v"},
				}, decodeEntries(t, buf.String()))
			},
		},
		{
			name: "OneObjectPerLine",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, logger.Options{})

				require.NoError(t, log.LogInfo("a", "<b> & \"c\""))
				assert.Equal(t, []map[string]string{
					{"level": "info", "message": "a"},
					{"level": "info", "message": "<b> & \"c\""},
				}, decodeEntries(t, buf.String()))
				assert.Contains(t, buf.String(), "<b> &", "HTML must not be escaped")
			},
		},
		{
			name: "VerboseOffByDefault",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, logger.Options{})

				require.NoError(t, log.LogVerbose("v"))
				assert.Equal(t, 0, buf.Len())
			},
		},
		{
			name: "NilWriter",
			testFunc: func(t *testing.T) {
				log := logger.NewJSONLogger(nil, logger.Options{})
				assert.NoError(t, log.LogInfo("discarded"))
			},
		},
		{
			name: "ConcurrentUsage",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, logger.Options{})

				const goroutines = 50

				var wg sync.WaitGroup
				wg.Add(goroutines)
				for range goroutines {
					go func() {
						defer wg.Done()
						_ = log.LogWarning("concurrent")
					}()
				}
				wg.Wait()

				assert.Len(t, decodeEntries(t, buf.String()), goroutines)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}
