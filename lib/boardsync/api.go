// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardsync

import (
	"context"

	"github.com/bureau-foundation/boardsync/lib/github"
)

// API is the slice of the GitHub REST API the syncer drives. List
// methods return every page. [NewGitHubAPI] adapts a *github.Client;
// tests substitute an in-memory board.
type API interface {
	ListProjects(ctx context.Context, owner, repo string) ([]github.Project, error)
	ListColumns(ctx context.Context, projectID int64) ([]github.ProjectColumn, error)
	ListCards(ctx context.Context, columnID int64) ([]github.ProjectCard, error)
	CreateCard(ctx context.Context, columnID int64, request github.CreateCardRequest) (*github.ProjectCard, error)
	MoveCard(ctx context.Context, cardID int64, request github.MoveCardRequest) error
	GetIssue(ctx context.Context, owner, repo string, number int) (*github.Issue, error)
	ReplaceLabels(ctx context.Context, owner, repo string, number int, labels []string) ([]github.Label, error)
}

// NewGitHubAPI returns an API backed by client.
func NewGitHubAPI(client *github.Client) API {
	return &clientAPI{client: client}
}

type clientAPI struct {
	client *github.Client
}

func (api *clientAPI) ListProjects(ctx context.Context, owner, repo string) ([]github.Project, error) {
	return api.client.ListRepoProjects(ctx, owner, repo).Collect(ctx)
}

func (api *clientAPI) ListColumns(ctx context.Context, projectID int64) ([]github.ProjectColumn, error) {
	return api.client.ListProjectColumns(ctx, projectID).Collect(ctx)
}

func (api *clientAPI) ListCards(ctx context.Context, columnID int64) ([]github.ProjectCard, error) {
	return api.client.ListColumnCards(ctx, columnID).Collect(ctx)
}

func (api *clientAPI) CreateCard(ctx context.Context, columnID int64, request github.CreateCardRequest) (*github.ProjectCard, error) {
	return api.client.CreateProjectCard(ctx, columnID, request)
}

func (api *clientAPI) MoveCard(ctx context.Context, cardID int64, request github.MoveCardRequest) error {
	return api.client.MoveProjectCard(ctx, cardID, request)
}

func (api *clientAPI) GetIssue(ctx context.Context, owner, repo string, number int) (*github.Issue, error) {
	return api.client.GetIssue(ctx, owner, repo, number)
}

func (api *clientAPI) ReplaceLabels(ctx context.Context, owner, repo string, number int, labels []string) ([]github.Label, error) {
	return api.client.ReplaceIssueLabels(ctx, owner, repo, number, labels)
}
