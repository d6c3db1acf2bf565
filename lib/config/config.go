// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/bureau-foundation/boardsync/lib/boardsync"
)

// Config is the resolved configuration of one invocation. It is built
// once by Resolve and not modified afterwards.
type Config struct {
	// Token authenticates against the GitHub API.
	Token string

	// Project is the name of the classic project board.
	Project string

	// InitialColumn is where cards for new issues go.
	InitialColumn string

	// MissingCard decides what happens when a labeled issue has no
	// card on the board.
	MissingCard boardsync.MissingCardPolicy

	// APIURL is the GitHub API base URL. Empty selects api.github.com.
	APIURL string

	// Rules map labels to columns.
	Rules boardsync.RuleSet

	// ConfigFile is the path of the config file that was read, if any.
	ConfigFile string
}

// Values is one layer of settings as raw strings. Empty fields are
// unset. Rules holds the JSON rule list.
type Values struct {
	Token         string
	Project       string
	Rules         string
	InitialColumn string
	MissingCard   string
	APIURL        string
}

// Sources lists where Resolve looks for settings.
type Sources struct {
	// Inputs are the action inputs. Highest precedence.
	Inputs Values

	// Flags are command-line flags.
	Flags Values

	// ConfigFile is the config file path. When empty, the
	// BOARDSYNC_CONFIG environment variable is consulted.
	ConfigFile string

	// DotEnv is the path of a .env file. A missing file is not an
	// error. Empty skips .env loading.
	DotEnv string

	// Getenv looks up environment variables. Defaults to os.Getenv.
	Getenv func(string) string

	// KeychainToken returns a stored token, or "" when none is stored.
	// Consulted only when no other source supplies a token. Nil skips
	// the keychain.
	KeychainToken func() (string, error)

	// Logger receives warnings about the rules. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Resolve builds a Config from the given sources. Rules are parsed and
// validated; the token and project are not required here (see
// Validate), so commands that only inspect rules work without them.
func Resolve(sources Sources) (*Config, error) {
	logger := sources.Logger
	if logger == nil {
		logger = slog.Default()
	}

	getenv, err := environment(sources.Getenv, sources.DotEnv)
	if err != nil {
		return nil, err
	}

	configPath := sources.ConfigFile
	if configPath == "" {
		configPath = getenv("BOARDSYNC_CONFIG")
	}
	file := &File{}
	if configPath != "" {
		file, err = LoadFile(configPath)
		if err != nil {
			return nil, err
		}
	}

	inputs, flags := sources.Inputs, sources.Flags
	config := &Config{
		Token:         first(inputs.Token, flags.Token, file.Token, getenv("GITHUB_TOKEN")),
		Project:       first(inputs.Project, flags.Project, file.Project, getenv("PROJECT_NAME")),
		InitialColumn: first(inputs.InitialColumn, flags.InitialColumn, file.InitialColumn, boardsync.DefaultInitialColumn),
		APIURL:        first(flags.APIURL, file.APIURL, getenv("GITHUB_API_URL")),
		ConfigFile:    configPath,
	}

	config.MissingCard, err = boardsync.ParseMissingCardPolicy(first(inputs.MissingCard, flags.MissingCard, file.MissingCard))
	if err != nil {
		return nil, err
	}

	switch {
	case inputs.Rules != "":
		config.Rules, err = ParseRules(inputs.Rules)
	case flags.Rules != "":
		config.Rules, err = ParseRules(flags.Rules)
	case file.Rules != nil:
		config.Rules = file.Rules
	default:
		config.Rules = boardsync.RuleSet{}
	}
	if err != nil {
		return nil, err
	}

	for _, label := range DuplicateLabels(config.Rules) {
		logger.Warn("several rules match the same label; only the first applies", "label", label)
	}

	if config.Token == "" && sources.KeychainToken != nil {
		token, err := sources.KeychainToken()
		if err != nil {
			logger.Warn("reading token from keychain failed", "error", err)
		}
		config.Token = token
	}

	return config, nil
}

// Validate checks the settings needed to sync a board.
func (c *Config) Validate() error {
	var errs []error
	if c.Token == "" {
		errs = append(errs, fmt.Errorf("token is required (set the token input, --token, or GITHUB_TOKEN)"))
	}
	if c.Project == "" {
		errs = append(errs, fmt.Errorf("project is required (set the project input, --project, or PROJECT_NAME)"))
	}
	if c.InitialColumn == "" {
		errs = append(errs, fmt.Errorf("initial column must not be empty"))
	}
	if err := ValidateRules(c.Rules); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// environment returns a lookup that consults getenv first and then the
// variables of the .env file at dotEnvPath.
func environment(getenv func(string) string, dotEnvPath string) (func(string) string, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if dotEnvPath == "" {
		return getenv, nil
	}

	dotEnv, err := godotenv.Read(dotEnvPath)
	if errors.Is(err, fs.ErrNotExist) {
		return getenv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dotEnvPath, err)
	}

	return func(key string) string {
		if value := getenv(key); value != "" {
			return value
		}
		return dotEnv[key]
	}, nil
}

// first returns the first non-empty value.
func first(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
