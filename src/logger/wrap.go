// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

// Wrap returns a Logger that applies opts on top of toWrap.
//
// Unset info, error, warning and section channels forward to toWrap. An unset
// verbose channel is silent; pass [Enabled] to forward verbose logs.
func Wrap(toWrap Logger, opts Options) Logger {
	return resolve(opts, channelsOf(toWrap))
}

// channelsOf exposes the channels of l as plain functions.
func channelsOf(l Logger) Funcs {
	return Funcs{
		Info:    l.LogInfo,
		Error:   l.LogError,
		Warning: l.LogWarning,
		Section: l.LogSection,
		Verbose: l.LogVerbose,
	}
}
