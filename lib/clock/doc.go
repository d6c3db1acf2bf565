// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides the injectable time source used by the GitHub
// client for rate-limit waits and read-retry backoff.
//
// Production code passes Real(). Tests pass Fake(), whose time moves
// only when Advance is called:
//
//	fakeClock := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	go func() { done <- client.GetIssue(ctx, owner, repo, 42) }()
//	fakeClock.WaitForTimers(1)         // the client is backing off
//	fakeClock.Advance(30 * time.Second) // release it
package clock
