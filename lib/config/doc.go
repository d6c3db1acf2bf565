// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config resolves boardsync's configuration into one immutable
// [Config] record at invocation start.
//
// Each setting is taken from the first source that supplies it:
//
//  1. action inputs (INPUT_TOKEN, INPUT_PROJECT, INPUT_RULES, ...)
//  2. command-line flags
//  3. a config file named by --config or BOARDSYNC_CONFIG (YAML, TOML,
//     or JSON with comments, chosen by extension)
//  4. environment variables (GITHUB_TOKEN, PROJECT_NAME, GITHUB_API_URL),
//     including those defined in a .env file; variables already set in
//     the process take precedence over the .env file
//  5. for the token only, the system keychain
//
// Rules are a JSON list of {"label", "column", "remove"} objects. Comments
// and trailing commas are accepted. Malformed or incomplete rules are
// reported as [ErrInvalidRules].
package config
