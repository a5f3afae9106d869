// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads logger configuration from JSON or YAML files and builds
// the configured [logger.Logger] from it.
//
// A YAML configuration looks like:
//
//	type: devops
//	channels:
//	  verbose: true
//	  warning: false
//	decorators:
//	  timestamps: true
//	  lineNumbers: true
//	  firstLineNumber: 1
//	  prefix: "[build] "
//	  indent: 2
//	  splitLines: true
//
// Decorators are applied so that a logged line reads, from left to right:
// timestamp, line number, prefix, indentation, text.
package config
