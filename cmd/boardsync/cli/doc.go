// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command framework behind the boardsync
// binary: a tree of [Command] values with pflag parsing, help output,
// typo suggestions for commands and flags, [ExitError] for handled
// non-zero exits, and --json output through [JSONOutput].
package cli
