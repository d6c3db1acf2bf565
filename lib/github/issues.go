// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"fmt"
)

// GetIssue retrieves a single issue by number.
func (client *Client) GetIssue(ctx context.Context, owner, repo string, number int) (*Issue, error) {
	var issue Issue
	path := fmt.Sprintf("/repos/%s/%s/issues/%d", owner, repo, number)
	if err := client.get(ctx, path, &issue); err != nil {
		return nil, fmt.Errorf("getting issue %s/%s#%d: %w", owner, repo, number, err)
	}
	return &issue, nil
}

// ReplaceIssueLabels overwrites the full label set of an issue. An
// empty slice removes every label. Returns the labels GitHub reports
// after the write.
func (client *Client) ReplaceIssueLabels(ctx context.Context, owner, repo string, number int, labels []string) ([]Label, error) {
	if labels == nil {
		labels = []string{}
	}
	request := struct {
		Labels []string `json:"labels"`
	}{Labels: labels}

	var result []Label
	path := fmt.Sprintf("/repos/%s/%s/issues/%d/labels", owner, repo, number)
	if err := client.put(ctx, path, request, &result); err != nil {
		return nil, fmt.Errorf("replacing labels on %s/%s#%d: %w", owner, repo, number, err)
	}
	return result, nil
}
