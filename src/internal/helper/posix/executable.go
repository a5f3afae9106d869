// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultExecutableName is returned when the program name is unavailable.
const DefaultExecutableName = "logpipe"

// GetExecutableName returns the name the program was invoked as, taken from
// os.Args, without directories or a .exe extension.
func GetExecutableName() string {
	return ExecutableName(os.Args, DefaultExecutableName)
}

// ExecutableName returns the clean program name from an argument vector.
// It returns fallback when args is empty or its first element is empty.
func ExecutableName(args []string, fallback string) string {
	if len(args) == 0 || args[0] == "" {
		return fallback
	}

	name := filepath.Base(args[0])

	// filepath.Base only knows the separator of the current OS; a Windows
	// path seen on Unix (or the reverse) still needs splitting.
	if strings.ContainsAny(name, `/\`) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) == 0 {
			return fallback
		}
		name = parts[len(parts)-1]
	}

	return strings.TrimSuffix(name, ".exe")
}
