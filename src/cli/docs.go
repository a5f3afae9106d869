// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface of logpipe.
// It implements a Cobra-based command that reads text from its arguments or
// standard input and logs it on one channel through a logger built from a
// configuration file and flags, so shell scripts and CI steps get the same
// prefixes, timestamps and Azure DevOps markers as Go programs using the
// logger package.
package cli
