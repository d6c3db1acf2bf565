// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardsync

// Issue event actions that drive the board. GitHub sends many more
// (edited, closed, assigned, ...); those are irrelevant here.
const (
	ActionOpened    = "opened"
	ActionLabeled   = "labeled"
	ActionUnlabeled = "unlabeled"
)

// Event is one issue event, reduced to the fields the syncer reads.
type Event struct {
	// Action is the webhook action: "opened", "labeled", etc.
	Action string

	// IssueNumber is the number of the issue the event is about.
	IssueNumber int

	// Label is the label added or removed. Empty for actions that do
	// not concern a label.
	Label string
}
