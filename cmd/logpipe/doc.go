// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// logpipe logs text through the channel logger so shell scripts and CI steps
// share the output conventions of Go programs using the logger package.
//
// # Installation
//
//	go install github.com/H0llyW00dzZ/channel-logger/cmd/logpipe@latest
//
// # Usage
//
//	logpipe [FLAGS] [TEXT...]
//
// Without TEXT arguments, standard input is read and logged as one call.
//
// # Flags
//
//	-c, --config             JSON or YAML configuration file
//	-t, --type               Logger type: console or devops
//	-l, --channel            info, error, warning, section or verbose (default: info)
//	-v, --verbose            Enable the verbose channel
//	    --timestamps         Prefix lines with the UTC time
//	-n, --line-numbers       Number log calls
//	    --first-line-number  Number of the first log call (default: 1)
//	-i, --indent             Indent lines by N spaces
//	-p, --prefix             Prefix every line with text
//	    --no-split           Log multi-line input as a single entry
//
// # Examples
//
// Emit an Azure Pipelines warning:
//
//	logpipe -t devops -l warning "disk almost full"
//
// Indent and number the output of a build step:
//
//	make 2>&1 | logpipe -n -i 2
package main
