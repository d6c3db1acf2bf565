// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/boardsync/cmd/boardsync/cli"
	"github.com/bureau-foundation/boardsync/lib/actionenv"
	"github.com/bureau-foundation/boardsync/lib/boardsync"
	"github.com/bureau-foundation/boardsync/lib/config"
	"github.com/bureau-foundation/boardsync/lib/github"
	"github.com/bureau-foundation/boardsync/lib/keychain"
)

// runDeps are the process-level collaborators of the run command.
type runDeps struct {
	runtime       *actionenv.Runtime
	httpClient    *http.Client
	keychainToken func() (string, error)
}

type runParams struct {
	cli.JSONOutput
	configParams

	eventPath  string
	repository string
}

// RunCommand returns the "run" command: handle one issue event.
func RunCommand() *cli.Command {
	return runCommand(runDeps{
		runtime:       actionenv.Default(),
		keychainToken: keychain.Token,
	})
}

func runCommand(deps runDeps) *cli.Command {
	var params runParams
	return &cli.Command{
		Name:    "run",
		Summary: "Apply one issue event to the project board",
		Description: `Apply one issue event to the project board.

Inside a GitHub Actions job the event, repository, and inputs come from
the runner. Outside Actions, pass the event payload with --event and the
repository with --repo.

The outcome is published as the step output "message". Failures are
reported with an ::error:: workflow command and exit status 1.`,
		Usage: "boardsync run [flags]",
		Flags: func() *pflag.FlagSet {
			params = runParams{}
			params.Stdout = deps.runtime.Stdout
			flagSet := pflag.NewFlagSet("run", pflag.ContinueOnError)
			params.configParams.addFlags(flagSet)
			params.AddFlag(flagSet)
			flagSet.StringVar(&params.eventPath, "event", "", "webhook payload file (defaults to $GITHUB_EVENT_PATH)")
			flagSet.StringVar(&params.repository, "repo", "", "repository as owner/name (defaults to $GITHUB_REPOSITORY)")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q", args[0])
			}
			return runSync(ctx, deps, &params, logger)
		},
	}
}

func runSync(ctx context.Context, deps runDeps, params *runParams, logger *slog.Logger) error {
	runtime := deps.runtime

	if name := runtime.Getenv("GITHUB_EVENT_NAME"); params.eventPath == "" && name != "" && name != "issues" {
		message := fmt.Sprintf("Irrelevant event: %s", name)
		logger.Info("irrelevant event", "event_name", name)
		return runtime.SetOutput("message", message)
	}

	var keychainToken func() (string, error)
	if !runtime.InActions() {
		keychainToken = deps.keychainToken
	}
	cfg, err := config.Resolve(config.Sources{
		Inputs:        actionInputs(runtime),
		Flags:         params.flags,
		ConfigFile:    params.configFile,
		DotEnv:        params.dotEnv,
		Getenv:        runtime.Getenv,
		KeychainToken: keychainToken,
		Logger:        logger,
	})
	if err != nil {
		return fail(runtime, logger, err)
	}
	if err := cfg.Validate(); err != nil {
		return fail(runtime, logger, err)
	}

	owner, repo, event, err := loadEvent(runtime, params)
	if err != nil {
		return fail(runtime, logger, err)
	}

	logger = logger.With("repository", owner+"/"+repo, "issue_number", event.IssueNumber)
	logger.Info("configuration resolved",
		"project", cfg.Project,
		"initial_column", cfg.InitialColumn,
		"missing_card", cfg.MissingCard,
		"rules", len(cfg.Rules),
		"rules_digest", cfg.Rules.Digest(),
		"config_file", cfg.ConfigFile,
	)

	client, err := github.NewClient(github.Config{
		BaseURL:    cfg.APIURL,
		Token:      cfg.Token,
		HTTPClient: deps.httpClient,
		Logger:     logger,
	})
	if err != nil {
		return fail(runtime, logger, err)
	}

	syncer, err := boardsync.NewSyncer(boardsync.NewGitHubAPI(client), boardsync.Config{
		Owner:         owner,
		Repo:          repo,
		Board:         cfg.Project,
		InitialColumn: cfg.InitialColumn,
		Rules:         cfg.Rules,
		MissingCard:   cfg.MissingCard,
		Logger:        logger,
	})
	if err != nil {
		return fail(runtime, logger, err)
	}

	outcome, err := syncer.Handle(ctx, event)
	if err != nil {
		return fail(runtime, logger, err)
	}

	logger.Info(outcome.Message,
		"action", outcome.Action,
		"column", outcome.Column,
		"card_id", outcome.CardID,
	)
	if err := runtime.SetOutput("message", outcome.Message); err != nil {
		return fail(runtime, logger, err)
	}
	if _, err := params.EmitJSON(outcome); err != nil {
		return err
	}
	return nil
}

// loadEvent reads the repository and the issue event, preferring the
// --repo and --event flags over the Actions context.
func loadEvent(runtime *actionenv.Runtime, params *runParams) (owner, repo string, event boardsync.Event, err error) {
	if params.eventPath == "" {
		actionContext, err := runtime.LoadContext()
		if err != nil {
			return "", "", boardsync.Event{}, err
		}
		owner, repo = actionContext.Owner, actionContext.Repo
		if params.repository != "" {
			owner, repo, err = actionenv.SplitRepository(params.repository)
		}
		return owner, repo, actionContext.Event, err
	}

	repository := params.repository
	if repository == "" {
		repository = runtime.Getenv("GITHUB_REPOSITORY")
	}
	owner, repo, err = actionenv.SplitRepository(repository)
	if err != nil {
		return "", "", boardsync.Event{}, err
	}
	event, err = actionenv.ReadEvent(params.eventPath)
	return owner, repo, event, err
}

// fail reports err through the Actions runtime and returns an
// ExitError so main exits 1 without printing it again.
func fail(runtime *actionenv.Runtime, logger *slog.Logger, err error) error {
	logger.Error("boardsync failed", "error", err)
	runtime.Fail(err.Error())
	return &cli.ExitError{Code: 1}
}
