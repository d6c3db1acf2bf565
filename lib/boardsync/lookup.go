// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardsync

import "github.com/bureau-foundation/boardsync/lib/github"

// FindColumn returns the column named exactly name. When a board has
// several columns with the same name the first one in listing order
// wins.
func FindColumn(columns []github.ProjectColumn, name string) (github.ProjectColumn, bool) {
	for _, column := range columns {
		if column.Name == name {
			return column, true
		}
	}
	return github.ProjectColumn{}, false
}

// FindProject returns the board named exactly name, first match wins.
func FindProject(projects []github.Project, name string) (github.Project, bool) {
	for _, project := range projects {
		if project.Name == name {
			return project, true
		}
	}
	return github.Project{}, false
}

// findCard returns the first card whose content URL is contentURL.
// Note cards have no content URL and never match.
func findCard(cards []github.ProjectCard, contentURL string) (github.ProjectCard, bool) {
	if contentURL == "" {
		return github.ProjectCard{}, false
	}
	for _, card := range cards {
		if card.ContentURL == contentURL {
			return card, true
		}
	}
	return github.ProjectCard{}, false
}
