// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import "strings"

// ToLines returns the provided text as a slice the caller owns.
func ToLines(text ...string) []string {
	lines := make([]string, len(text))
	copy(lines, text)
	return lines
}

// JoinLines joins the provided text with "\n".
func JoinLines(text ...string) string {
	return strings.Join(text, "\n")
}

// GetLines splits text on "\n" and "\r\n" line breaks.
// The empty string yields a single empty line.
func GetLines(text string) []string {
	lines := strings.Split(text, "\n")
	// Only a "\r" directly before a "\n" is part of the line break.
	for i := range len(lines) - 1 {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}
