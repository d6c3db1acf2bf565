// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Boardsync keeps a classic GitHub project board in step with issue
// labels. It runs as a GitHub Actions step on "issues" events: opened
// issues get a card in the initial column, and labeled issues have
// their card moved to the column a label rule names.
//
// Usage:
//
//	boardsync run                  Handle the current issue event
//	boardsync rules                Validate and list the label rules
//	boardsync token set|clear      Manage the keychain token for local runs
//	boardsync version              Print version information
//
// Run "boardsync <command> --help" for flags and examples.
package main
