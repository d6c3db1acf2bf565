// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package actionenv reads and writes the GitHub Actions runtime
// environment: action inputs (INPUT_* variables), the workflow context
// (GITHUB_REPOSITORY, GITHUB_EVENT_NAME, GITHUB_EVENT_PATH), step
// outputs ($GITHUB_OUTPUT) and workflow commands (::error::).
//
// All access goes through a [Runtime] so tests can substitute the
// environment and capture stdout. [Default] binds to the process.
package actionenv
