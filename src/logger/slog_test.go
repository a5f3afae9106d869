// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/H0llyW00dzZ/channel-logger/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	log := logger.NewSlogLogger(slog.New(handler), logger.Options{Verbose: logger.Enabled()})

	require.NoError(t, log.LogInfo("i1", "i2"))
	require.NoError(t, log.LogError("e"))
	require.NoError(t, log.LogWarning("w"))
	require.NoError(t, log.LogSection("s"))
	require.NoError(t, log.LogVerbose("v"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)

	type record struct {
		Level   string `json:"level"`
		Msg     string `json:"msg"`
		Section bool   `json:"section"`
	}
	want := []record{
		{Level: "INFO", Msg: "i1"},
		{Level: "INFO", Msg: "i2"},
		{Level: "ERROR", Msg: "e"},
		{Level: "WARN", Msg: "w"},
		{Level: "INFO", Msg: "s", Section: true},
		{Level: "DEBUG", Msg: "v"},
	}
	for i, line := range lines {
		var got record
		require.NoError(t, json.Unmarshal([]byte(line), &got))
		assert.Equal(t, want[i], got, "record %d", i)
	}
}

func TestSlogLoggerDefaults(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	log := logger.NewSlogLogger(slog.New(handler), logger.Options{})

	require.NoError(t, log.LogVerbose("hidden"))
	assert.Empty(t, buf.String(), "verbose is opt-in")

	assert.NotNil(t, logger.NewSlogLogger(nil, logger.Options{}))
}
