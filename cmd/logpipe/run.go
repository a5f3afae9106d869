// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/H0llyW00dzZ/channel-logger/src/cli"
	"github.com/H0llyW00dzZ/channel-logger/src/logger"
	verpkg "github.com/H0llyW00dzZ/channel-logger/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	log := logger.NewConsoleLogger(logger.Options{})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, version); err != nil {
		if errors.Is(err, context.Canceled) {
			_ = log.LogError("Operation cancelled by signal. Exiting...")
			os.Exit(130) // Standard exit code for SIGINT
		}
		_ = log.LogError("Error: " + err.Error())
		os.Exit(1)
	}
}
