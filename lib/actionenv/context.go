// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package actionenv

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/bureau-foundation/boardsync/lib/boardsync"
)

// Context is the workflow context of the current job.
type Context struct {
	Owner     string
	Repo      string
	EventName string

	// Event is the issue event decoded from the payload file.
	Event boardsync.Event
}

// eventPayload is the subset of an issues webhook payload the syncer
// needs.
type eventPayload struct {
	Action string `json:"action"`
	Issue  *struct {
		Number int `json:"number"`
	} `json:"issue"`
	Label *struct {
		Name string `json:"name"`
	} `json:"label"`
}

// LoadContext reads GITHUB_REPOSITORY, GITHUB_EVENT_NAME and the event
// payload at GITHUB_EVENT_PATH.
func (runtime *Runtime) LoadContext() (*Context, error) {
	owner, repo, err := SplitRepository(runtime.Getenv("GITHUB_REPOSITORY"))
	if err != nil {
		return nil, err
	}

	path := runtime.Getenv("GITHUB_EVENT_PATH")
	if path == "" {
		return nil, fmt.Errorf("GITHUB_EVENT_PATH is not set")
	}
	event, err := ReadEvent(path)
	if err != nil {
		return nil, err
	}

	return &Context{
		Owner:     owner,
		Repo:      repo,
		EventName: runtime.Getenv("GITHUB_EVENT_NAME"),
		Event:     event,
	}, nil
}

// SplitRepository splits "owner/name".
func SplitRepository(repository string) (owner, repo string, err error) {
	owner, repo, found := strings.Cut(repository, "/")
	if !found || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("invalid repository %q (want owner/name)", repository)
	}
	return owner, repo, nil
}

// ReadEvent decodes the issue event in a webhook payload file.
func ReadEvent(path string) (boardsync.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return boardsync.Event{}, fmt.Errorf("reading event payload: %w", err)
	}
	return ParseEvent(data)
}

// ParseEvent decodes the issue event in a webhook payload. A payload
// without an issue is rejected: boardsync only runs on issues events.
func ParseEvent(data []byte) (boardsync.Event, error) {
	var payload eventPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return boardsync.Event{}, fmt.Errorf("decoding event payload: %w", err)
	}
	if payload.Issue == nil {
		return boardsync.Event{}, fmt.Errorf("event payload has no issue (action %q)", payload.Action)
	}

	event := boardsync.Event{
		Action:      payload.Action,
		IssueNumber: payload.Issue.Number,
	}
	if payload.Label != nil {
		event.Label = payload.Label.Name
	}
	return event, nil
}
