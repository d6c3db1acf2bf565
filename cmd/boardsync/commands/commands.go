// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the boardsync command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/boardsync/cmd/boardsync/cli"
	"github.com/bureau-foundation/boardsync/lib/version"
)

// Root builds and returns the complete boardsync command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "boardsync",
		Description: `boardsync: classic project board automation.

Files new issues into a project board column and moves their cards
between columns as labels are added, following a list of label rules.`,
		Subcommands: []*cli.Command{
			RunCommand(),
			RulesCommand(),
			TokenCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
					fmt.Printf("boardsync %s\n", version.Current())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Handle the current issue event inside a GitHub Actions job",
				Command:     "boardsync run",
			},
			{
				Description: "Replay a saved event payload against a board",
				Command:     "boardsync run --repo octocat/hello --project Sprint --event event.json --config boardsync.yaml",
			},
			{
				Description: "Check a rules file and list its rules",
				Command:     "boardsync rules --config boardsync.yaml",
			},
			{
				Description: "Store a token for local runs in the system keychain",
				Command:     "boardsync token set",
			},
		},
	}
}
