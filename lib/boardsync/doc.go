// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package boardsync keeps a classic GitHub project board in step with
// the issues of a repository.
//
// A [Syncer] handles one issue event at a time:
//
//   - "opened" creates a card for the issue in the configured initial
//     column.
//   - "labeled" resolves the [Rule] for the added label, moves the
//     issue's card to the bottom of the rule's column, and strips the
//     rule's remove labels from the issue.
//   - every other action is reported as irrelevant and changes nothing.
//
// The board and its columns are fetched once per event and passed to
// each step. The remote API offers no transactions: a move that
// succeeds followed by a label write that fails leaves the board
// updated and the labels untouched. Callers report the error; nothing
// is rolled back.
//
// Label stripping re-reads the issue immediately before overwriting its
// label set. Label edits made by someone else between that read and the
// write are lost (last writer wins).
package boardsync
