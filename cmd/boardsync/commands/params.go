// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/boardsync/lib/actionenv"
	"github.com/bureau-foundation/boardsync/lib/config"
)

// configParams are the flags shared by every command that resolves
// the configuration.
type configParams struct {
	flags      config.Values
	configFile string
	dotEnv     string
}

func (p *configParams) addFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&p.configFile, "config", "", "config file (.yaml, .toml, or .jsonc); defaults to $BOARDSYNC_CONFIG")
	flagSet.StringVar(&p.dotEnv, "env-file", ".env", "dotenv file with fallback environment variables")
	flagSet.StringVar(&p.flags.Token, "token", "", "GitHub token (defaults to $GITHUB_TOKEN, then the keychain)")
	flagSet.StringVar(&p.flags.Project, "project", "", "project board name (defaults to $PROJECT_NAME)")
	flagSet.StringVar(&p.flags.Rules, "rules", "", `label rules as JSON, e.g. '[{"label":"done","column":"Done"}]'`)
	flagSet.StringVar(&p.flags.InitialColumn, "initial-column", "", `column for new issues (default "To do")`)
	flagSet.StringVar(&p.flags.MissingCard, "missing-card", "", `what a labeled issue without a card does: "create" or "ignore"`)
	flagSet.StringVar(&p.flags.APIURL, "api-url", "", "GitHub API base URL (defaults to $GITHUB_API_URL)")
}

// actionInputs reads the action inputs of the current job.
func actionInputs(runtime *actionenv.Runtime) config.Values {
	return config.Values{
		Token:         runtime.Input("token"),
		Project:       runtime.Input("project"),
		Rules:         runtime.Input("rules"),
		InitialColumn: runtime.Input("initialColumn"),
		MissingCard:   runtime.Input("missingCard"),
	}
}
