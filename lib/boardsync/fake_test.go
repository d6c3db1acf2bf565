// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardsync

import (
	"context"
	"fmt"
	"slices"

	"github.com/bureau-foundation/boardsync/lib/github"
)

// fakeBoard is an in-memory API holding one repository's boards and
// issues. Mutations update the state so tests can assert where cards
// ended up, and every call is recorded by method name.
type fakeBoard struct {
	projects []github.Project
	columns  map[int64][]github.ProjectColumn
	cards    map[int64][]github.ProjectCard
	issues   map[int]*github.Issue

	nextCardID int64
	calls      []string

	created  []createCall
	moves    []moveCall
	replaced [][]string

	// failOn makes the named method return the error.
	failOn map[string]error

	// beforeIssueRead runs before every GetIssue with the number of
	// reads already served.
	beforeIssueRead func(reads int)
	issueReads      int
}

type createCall struct {
	columnID int64
	request  github.CreateCardRequest
}

type moveCall struct {
	cardID  int64
	request github.MoveCardRequest
}

// newSprintBoard returns the board used throughout the tests: "Sprint"
// with columns "To do" (1) and "Done" (2), and issue #42 carded in
// "To do".
func newSprintBoard() *fakeBoard {
	return &fakeBoard{
		projects: []github.Project{
			{ID: 10, Name: "Roadmap"},
			{ID: 11, Name: "Sprint"},
		},
		columns: map[int64][]github.ProjectColumn{
			11: {
				{ID: 1, Name: "To do"},
				{ID: 2, Name: "Done"},
			},
		},
		cards: map[int64][]github.ProjectCard{
			1: {
				{ID: 100, Note: "planning notes"},
				{ID: 101, ContentURL: issueURL(42)},
			},
			2: {
				{ID: 200, ContentURL: issueURL(7)},
			},
		},
		issues: map[int]*github.Issue{
			42: {ID: 4200, Number: 42, URL: issueURL(42)},
		},
		nextCardID: 500,
	}
}

func issueURL(number int) string {
	return fmt.Sprintf("https://api.github.com/repos/octocat/hello/issues/%d", number)
}

func labelList(names ...string) []github.Label {
	labels := make([]github.Label, len(names))
	for i, name := range names {
		labels[i] = github.Label{Name: name}
	}
	return labels
}

// mutated reports whether any call changed the board or an issue.
func (f *fakeBoard) mutated() bool {
	return len(f.created) > 0 || len(f.moves) > 0 || len(f.replaced) > 0
}

func (f *fakeBoard) record(method string) error {
	f.calls = append(f.calls, method)
	return f.failOn[method]
}

func (f *fakeBoard) ListProjects(ctx context.Context, owner, repo string) ([]github.Project, error) {
	if err := f.record("ListProjects"); err != nil {
		return nil, err
	}
	return f.projects, nil
}

func (f *fakeBoard) ListColumns(ctx context.Context, projectID int64) ([]github.ProjectColumn, error) {
	if err := f.record("ListColumns"); err != nil {
		return nil, err
	}
	return f.columns[projectID], nil
}

func (f *fakeBoard) ListCards(ctx context.Context, columnID int64) ([]github.ProjectCard, error) {
	if err := f.record("ListCards"); err != nil {
		return nil, err
	}
	return slices.Clone(f.cards[columnID]), nil
}

func (f *fakeBoard) CreateCard(ctx context.Context, columnID int64, request github.CreateCardRequest) (*github.ProjectCard, error) {
	if err := f.record("CreateCard"); err != nil {
		return nil, err
	}
	f.created = append(f.created, createCall{columnID: columnID, request: request})

	card := github.ProjectCard{ID: f.nextCardID}
	f.nextCardID++
	for _, issue := range f.issues {
		if issue.ID == request.ContentID {
			card.ContentURL = issue.URL
		}
	}
	f.cards[columnID] = append(f.cards[columnID], card)
	return &card, nil
}

func (f *fakeBoard) MoveCard(ctx context.Context, cardID int64, request github.MoveCardRequest) error {
	if err := f.record("MoveCard"); err != nil {
		return err
	}
	f.moves = append(f.moves, moveCall{cardID: cardID, request: request})

	var moving github.ProjectCard
	for columnID, cards := range f.cards {
		for i, card := range cards {
			if card.ID == cardID {
				moving = card
				f.cards[columnID] = slices.Delete(cards, i, i+1)
				break
			}
		}
	}
	f.cards[request.ColumnID] = append(f.cards[request.ColumnID], moving)
	return nil
}

func (f *fakeBoard) GetIssue(ctx context.Context, owner, repo string, number int) (*github.Issue, error) {
	if err := f.record("GetIssue"); err != nil {
		return nil, err
	}
	if f.beforeIssueRead != nil {
		f.beforeIssueRead(f.issueReads)
	}
	f.issueReads++

	issue, ok := f.issues[number]
	if !ok {
		return nil, &github.APIError{StatusCode: 404, Message: "Not Found"}
	}
	copied := *issue
	copied.Labels = slices.Clone(issue.Labels)
	return &copied, nil
}

func (f *fakeBoard) ReplaceLabels(ctx context.Context, owner, repo string, number int, labels []string) ([]github.Label, error) {
	if err := f.record("ReplaceLabels"); err != nil {
		return nil, err
	}
	f.replaced = append(f.replaced, slices.Clone(labels))
	f.issues[number].Labels = labelList(labels...)
	return labelList(labels...), nil
}
