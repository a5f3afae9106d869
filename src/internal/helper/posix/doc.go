// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides helpers for presenting the running program the same
// way on every operating system.
//
// logpipe uses [GetExecutableName] for its usage line, so a renamed or
// Windows build still prints the name it was invoked as:
//
//   - Linux/macOS: "/usr/local/bin/logpipe" → "logpipe"
//   - Windows: "C:\tools\logpipe.exe" → "logpipe"
//   - Fallback: empty args → "logpipe"
package posix
