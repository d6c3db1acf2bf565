// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bureau-foundation/boardsync/cmd/boardsync/cli"
	"github.com/bureau-foundation/boardsync/cmd/boardsync/commands"
)

func main() {
	if err := run(); err != nil {
		// run failures were already reported as ::error:: lines and
		// carry their exit code.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	level, err := cli.ParseLevel(logLevel(os.Getenv))
	if err != nil {
		return err
	}
	return commands.Root().Execute(ctx, os.Args[1:], cli.NewCommandLogger(level))
}

// logLevel picks the log level name. BOARDSYNC_LOG_LEVEL wins; a job
// re-run with debug logging enabled sets RUNNER_DEBUG=1.
func logLevel(getenv func(string) string) string {
	if level := getenv("BOARDSYNC_LOG_LEVEL"); level != "" {
		return level
	}
	if getenv("RUNNER_DEBUG") == "1" {
		return "debug"
	}
	return ""
}
