// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/boardsync/lib/boardsync"
)

// File is the content of a boardsync config file. Every field is
// optional; unset fields fall through to lower-precedence sources.
type File struct {
	Token         string            `yaml:"token" toml:"token" json:"token"`
	Project       string            `yaml:"project" toml:"project" json:"project"`
	InitialColumn string            `yaml:"initial_column" toml:"initial_column" json:"initial_column"`
	MissingCard   string            `yaml:"missing_card" toml:"missing_card" json:"missing_card"`
	APIURL        string            `yaml:"api_url" toml:"api_url" json:"api_url"`
	Rules         boardsync.RuleSet `yaml:"rules" toml:"rules" json:"rules"`
}

// LoadFile reads a config file. The format follows the extension:
// .yaml/.yml, .toml, or .json/.jsonc. Unknown keys are errors so that
// a misspelled setting does not silently fall back to a default.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var file File
	switch extension := strings.ToLower(filepath.Ext(path)); extension {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".toml":
		metadata, err := toml.Decode(string(data), &file)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parsing %s: unknown key %q", path, undecoded[0].String())
		}
	case ".json", ".jsonc":
		decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&file); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config file %s: unsupported extension %q (want .yaml, .toml, or .jsonc)", path, extension)
	}

	if err := ValidateRules(file.Rules); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &file, nil
}
