// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import "time"

// User is a GitHub user reference.
type User struct {
	Login string `json:"login"`
	ID    int64  `json:"id"`
}

// Label is a GitHub issue label.
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Issue is a GitHub issue. ID is the global numeric identifier that
// project cards reference; Number is the per-repository number used in
// issue URLs. URL is the API URL, which is what a card's ContentURL
// points at.
type Issue struct {
	ID        int64     `json:"id"`
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	State     string    `json:"state"` // "open" or "closed"
	URL       string    `json:"url"`
	HTMLURL   string    `json:"html_url"`
	User      User      `json:"user"`
	Labels    []Label   `json:"labels"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LabelNames returns the issue's label names in their listed order.
func (issue *Issue) LabelNames() []string {
	names := make([]string, len(issue.Labels))
	for i, label := range issue.Labels {
		names[i] = label.Name
	}
	return names
}

// Project is a classic repository project board.
type Project struct {
	ID         int64  `json:"id"`
	Number     int    `json:"number"`
	Name       string `json:"name"`
	State      string `json:"state"` // "open" or "closed"
	URL        string `json:"url"`
	HTMLURL    string `json:"html_url"`
	ColumnsURL string `json:"columns_url"`
}

// ProjectColumn is a named lane of a project board.
type ProjectColumn struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	CardsURL string `json:"cards_url"`
}

// ProjectCard is an entry in a project column. Issue cards carry the
// issue's API URL in ContentURL; note cards leave it empty.
type ProjectCard struct {
	ID         int64  `json:"id"`
	Note       string `json:"note,omitempty"`
	Archived   bool   `json:"archived"`
	ColumnURL  string `json:"column_url"`
	ContentURL string `json:"content_url,omitempty"`
	URL        string `json:"url"`
}
