// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Type selects the flavor of [NewDefaultLogger].
type Type string

const (
	// TypeConsole writes plain lines to the console. It is the zero value's meaning.
	TypeConsole Type = "console"
	// TypeDevOps writes Azure Pipelines markers, see [NewAzureDevOpsLogger].
	TypeDevOps Type = "devops"
)

// ErrUnknownType is returned by [ParseType] for unsupported logger types.
var ErrUnknownType = errors.New("unknown logger type")

// ParseType parses a logger type name. The empty string is [TypeConsole].
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case "", TypeConsole:
		return TypeConsole, nil
	case TypeDevOps:
		return TypeDevOps, nil
	default:
		return "", fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownType, s, TypeConsole, TypeDevOps)
	}
}

// DefaultOptions configures [NewDefaultLogger].
type DefaultOptions struct {
	Options

	// Type selects the logger flavor. Anything but TypeDevOps means console.
	Type Type

	// Console is the sink used by either flavor. When nil standard output
	// and standard error are used.
	Console *Console
}

// NewDefaultLogger returns an Azure DevOps logger when opts.Type is
// [TypeDevOps] and a console logger otherwise.
func NewDefaultLogger(opts DefaultOptions) Logger {
	console := opts.Console
	if console == nil {
		console = NewConsole(os.Stdout, os.Stderr)
	}
	if opts.Type == TypeDevOps {
		return NewAzureDevOpsLogger(DevOpsOptions{Options: opts.Options, Console: console})
	}
	return NewConsoleLoggerTo(console, opts.Options)
}
