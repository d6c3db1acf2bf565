// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package github provides a typed Go client for the parts of the GitHub
// REST API that board automation touches: classic project boards
// (projects, columns, cards) and issues (fetch, replace labels).
//
// The client authenticates with a personal access token or the
// workflow's GITHUB_TOKEN. It handles rate limiting (X-RateLimit-*
// headers with automatic backoff), pagination (RFC 5988 Link headers),
// conditional requests (ETags), retry of idempotent reads on transient
// failures, and structured error mapping.
//
// All requests are made over HTTPS. The client refuses non-HTTPS base URLs.
package github
