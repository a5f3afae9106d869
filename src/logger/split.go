// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

// splitting returns a LogFunc that splits every element of the text into
// lines and forwards them to next as one call. A call without text is dropped.
func splitting(next LogFunc) LogFunc {
	return func(text ...string) error {
		if len(text) == 0 {
			return nil
		}
		lines := make([]string, 0, len(text))
		for _, element := range text {
			lines = append(lines, GetLines(element)...)
		}
		return next(lines...)
	}
}

// SplitLines returns a Logger that breaks multi-line text into individual
// lines before handing it to l.
func SplitLines(l Logger) Logger {
	inner := channelsOf(l)
	return Wrap(l, Options{
		Info:    Custom(splitting(inner.Info)),
		Error:   Custom(splitting(inner.Error)),
		Warning: Custom(splitting(inner.Warning)),
		Section: Custom(splitting(inner.Section)),
		Verbose: Custom(splitting(inner.Verbose)),
	})
}
