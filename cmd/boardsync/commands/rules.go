// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/boardsync/cmd/boardsync/cli"
	"github.com/bureau-foundation/boardsync/lib/boardsync"
	"github.com/bureau-foundation/boardsync/lib/config"
)

type rulesParams struct {
	cli.JSONOutput
	configParams
}

// rulesResult is the --json form of "boardsync rules".
type rulesResult struct {
	Digest        string            `json:"digest"`
	InitialColumn string            `json:"initial_column"`
	MissingCard   string            `json:"missing_card"`
	ConfigFile    string            `json:"config_file,omitempty"`
	Rules         boardsync.RuleSet `json:"rules"`
	Duplicates    []string          `json:"duplicates,omitempty"`
}

// RulesCommand returns the "rules" command: resolve, validate, and
// list the configured rules.
func RulesCommand() *cli.Command {
	return rulesCommand(os.Getenv, os.Stdout)
}

func rulesCommand(getenv func(string) string, stdout io.Writer) *cli.Command {
	var params rulesParams
	return &cli.Command{
		Name:    "rules",
		Summary: "Validate and list the label rules",
		Description: `Resolve the configuration the way "run" does, validate the label
rules, and list them in resolution order. The first rule matching a
label wins; later rules with the same label are reported as shadowed.`,
		Usage: "boardsync rules [flags]",
		Flags: func() *pflag.FlagSet {
			params = rulesParams{}
			params.Stdout = stdout
			flagSet := pflag.NewFlagSet("rules", pflag.ContinueOnError)
			params.configParams.addFlags(flagSet)
			params.AddFlag(flagSet)
			return flagSet
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			cfg, err := config.Resolve(config.Sources{
				Flags:      params.flags,
				ConfigFile: params.configFile,
				DotEnv:     params.dotEnv,
				Getenv:     getenv,
				Logger:     logger,
			})
			if err != nil {
				return err
			}

			result := rulesResult{
				Digest:        cfg.Rules.Digest(),
				InitialColumn: cfg.InitialColumn,
				MissingCard:   string(cfg.MissingCard),
				ConfigFile:    cfg.ConfigFile,
				Rules:         cfg.Rules,
				Duplicates:    config.DuplicateLabels(cfg.Rules),
			}
			if done, err := params.EmitJSON(result); done {
				return err
			}
			return printRules(stdout, result)
		},
	}
}

func printRules(w io.Writer, result rulesResult) error {
	if len(result.Rules) == 0 {
		fmt.Fprintf(w, "No rules configured. New issues go to %q.\n", result.InitialColumn)
		return nil
	}

	renderer := lipgloss.NewRenderer(w)
	if !isTerminal(w) {
		renderer.SetColorProfile(termenv.Ascii)
	}
	headerStyle := renderer.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := renderer.NewStyle().Padding(0, 1)
	shadowedStyle := cellStyle.Faint(true)

	shadowed := make(map[int]bool)
	seen := make(map[string]bool)
	rows := make([][]string, 0, len(result.Rules))
	for index, rule := range result.Rules {
		key := strings.ToLower(rule.Label)
		if seen[key] {
			shadowed[index] = true
		}
		seen[key] = true
		rows = append(rows, []string{
			fmt.Sprint(index + 1),
			rule.Label,
			rule.Column,
			strings.Join(rule.Remove, ", "),
		})
	}

	rulesTable := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(renderer.NewStyle().Faint(true)).
		Headers("#", "LABEL", "COLUMN", "REMOVE").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case shadowed[row]:
				return shadowedStyle
			default:
				return cellStyle
			}
		})

	fmt.Fprintln(w, rulesTable.Render())
	fmt.Fprintf(w, "initial column: %s\n", result.InitialColumn)
	fmt.Fprintf(w, "missing card:   %s\n", result.MissingCard)
	fmt.Fprintf(w, "digest:         %s\n", result.Digest)
	for _, label := range result.Duplicates {
		fmt.Fprintf(w, "warning: label %q has more than one rule; only the first applies\n", label)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
