// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"fmt"
)

// Card positions accepted by MoveProjectCard. A position can also be
// "after:<card_id>".
const (
	CardPositionTop    = "top"
	CardPositionBottom = "bottom"
)

// CreateCardRequest contains the fields for creating an issue card.
type CreateCardRequest struct {
	ContentID   int64  `json:"content_id"`
	ContentType string `json:"content_type"` // "Issue" or "PullRequest"
}

// MoveCardRequest moves a card within or across columns.
type MoveCardRequest struct {
	Position string `json:"position"`
	ColumnID int64  `json:"column_id,omitempty"`
}

// ListRepoProjects returns a paginated iterator over the classic
// project boards of a repository.
func (client *Client) ListRepoProjects(ctx context.Context, owner, repo string) *PageIterator[Project] {
	return list[Project](client, fmt.Sprintf("/repos/%s/%s/projects?per_page=100", owner, repo))
}

// ListProjectColumns returns a paginated iterator over a board's
// columns, in board order.
func (client *Client) ListProjectColumns(ctx context.Context, projectID int64) *PageIterator[ProjectColumn] {
	return list[ProjectColumn](client, fmt.Sprintf("/projects/%d/columns?per_page=100", projectID))
}

// ListColumnCards returns a paginated iterator over the cards of a
// column, top to bottom.
func (client *Client) ListColumnCards(ctx context.Context, columnID int64) *PageIterator[ProjectCard] {
	return list[ProjectCard](client, fmt.Sprintf("/projects/columns/%d/cards?per_page=100", columnID))
}

// CreateProjectCard creates a card in a column.
func (client *Client) CreateProjectCard(ctx context.Context, columnID int64, request CreateCardRequest) (*ProjectCard, error) {
	var card ProjectCard
	path := fmt.Sprintf("/projects/columns/%d/cards", columnID)
	if err := client.post(ctx, path, request, &card); err != nil {
		return nil, fmt.Errorf("creating card in column %d: %w", columnID, err)
	}
	return &card, nil
}

// MoveProjectCard moves a card to a position, optionally in another
// column.
func (client *Client) MoveProjectCard(ctx context.Context, cardID int64, request MoveCardRequest) error {
	path := fmt.Sprintf("/projects/columns/cards/%d/moves", cardID)
	if err := client.post(ctx, path, request, nil); err != nil {
		return fmt.Errorf("moving card %d to column %d: %w", cardID, request.ColumnID, err)
	}
	return nil
}
