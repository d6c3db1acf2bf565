// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bureau-foundation/boardsync/lib/github"
)

// DefaultInitialColumn is the column new issues are filed into when no
// initial column is configured.
const DefaultInitialColumn = "To do"

// ErrBoardNotFound is returned by [Syncer.Handle] when the repository
// has no board with the configured name. Nothing has been mutated when
// it is returned.
var ErrBoardNotFound = errors.New("project board not found")

// MissingCardPolicy decides what a labeled event does when the issue
// has no card anywhere on the board.
type MissingCardPolicy string

const (
	// MissingCardCreate creates the card directly in the rule's column.
	MissingCardCreate MissingCardPolicy = "create"

	// MissingCardIgnore leaves the board alone.
	MissingCardIgnore MissingCardPolicy = "ignore"
)

// ParseMissingCardPolicy parses a policy name. The empty string selects
// MissingCardCreate.
func ParseMissingCardPolicy(value string) (MissingCardPolicy, error) {
	switch MissingCardPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case "", MissingCardCreate:
		return MissingCardCreate, nil
	case MissingCardIgnore:
		return MissingCardIgnore, nil
	default:
		return "", fmt.Errorf("unknown missing card policy %q (want %q or %q)", value, MissingCardCreate, MissingCardIgnore)
	}
}

// Config holds what a Syncer needs to handle events for one board.
type Config struct {
	// Owner and Repo name the repository whose issues and boards are
	// synced. Both required.
	Owner string
	Repo  string

	// Board is the exact name of the classic project board. Required.
	Board string

	// InitialColumn is the column "opened" events file new cards into.
	// Defaults to DefaultInitialColumn.
	InitialColumn string

	// Rules map labels to columns.
	Rules RuleSet

	// MissingCard is the policy for labeled issues without a card.
	// Defaults to MissingCardCreate.
	MissingCard MissingCardPolicy

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Outcome describes what handling one event did.
type Outcome struct {
	// Action is the event action that was handled.
	Action string `json:"action"`

	// Message is the human-readable summary published as the action's
	// "message" output.
	Message string `json:"message"`

	// Board is the name of the board that was examined, empty when the
	// event was irrelevant.
	Board string `json:"board,omitempty"`

	// Column is the name of the column the card was created in or
	// moved to. Empty when no column was involved or it was absent.
	Column string `json:"column,omitempty"`

	// CardID is the card created or moved, zero if none.
	CardID int64 `json:"card_id,omitempty"`

	Created bool `json:"created"`
	Moved   bool `json:"moved"`

	// Labels is the issue's label set after stripping. Nil when the
	// matched rule strips nothing.
	Labels []string `json:"labels,omitempty"`
}

// Syncer applies issue events to a project board. A Syncer holds no
// state between events; Handle may be called repeatedly but not
// concurrently for the same issue.
type Syncer struct {
	api    API
	config Config
	logger *slog.Logger
}

// NewSyncer validates config and returns a Syncer that drives api.
func NewSyncer(api API, config Config) (*Syncer, error) {
	if api == nil {
		return nil, fmt.Errorf("boardsync: API is required")
	}
	if config.Owner == "" || config.Repo == "" {
		return nil, fmt.Errorf("boardsync: repository owner and name are required")
	}
	if config.Board == "" {
		return nil, fmt.Errorf("boardsync: board name is required")
	}
	if config.InitialColumn == "" {
		config.InitialColumn = DefaultInitialColumn
	}
	policy, err := ParseMissingCardPolicy(string(config.MissingCard))
	if err != nil {
		return nil, fmt.Errorf("boardsync: %w", err)
	}
	config.MissingCard = policy

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Syncer{
		api:    api,
		config: config,
		logger: logger.With("repository", config.Owner+"/"+config.Repo, "board", config.Board),
	}, nil
}

// boardState is the board and issue fetched once per event and passed
// to every step that needs them.
type boardState struct {
	project github.Project
	columns []github.ProjectColumn
	issue   *github.Issue
}

// Handle applies one event to the board. Irrelevant actions return an
// outcome without calling the API. Errors from the remote API are
// returned wrapped; mutations made before the failure are not undone.
func (s *Syncer) Handle(ctx context.Context, event Event) (Outcome, error) {
	switch event.Action {
	case ActionOpened, ActionLabeled:
	default:
		s.logger.Info("irrelevant action", "action", event.Action)
		return Outcome{
			Action:  event.Action,
			Message: fmt.Sprintf("Irrelevant action: %s", event.Action),
		}, nil
	}

	state, err := s.load(ctx, event.IssueNumber)
	if err != nil {
		return Outcome{Action: event.Action}, err
	}

	if event.Action == ActionOpened {
		return s.handleOpened(ctx, state)
	}
	return s.handleLabeled(ctx, state, event.Label)
}

// load fetches the board, its columns and the issue.
func (s *Syncer) load(ctx context.Context, issueNumber int) (*boardState, error) {
	s.logger.Info("getting project")
	projects, err := s.api.ListProjects(ctx, s.config.Owner, s.config.Repo)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	project, found := FindProject(projects, s.config.Board)
	if !found {
		return nil, fmt.Errorf("%w: %q in %s/%s", ErrBoardNotFound, s.config.Board, s.config.Owner, s.config.Repo)
	}

	s.logger.Info("getting project columns", "project_id", project.ID, "columns_url", project.ColumnsURL)
	columns, err := s.api.ListColumns(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("listing columns of board %q: %w", project.Name, err)
	}

	issue, err := s.api.GetIssue(ctx, s.config.Owner, s.config.Repo, issueNumber)
	if err != nil {
		return nil, fmt.Errorf("getting issue #%d: %w", issueNumber, err)
	}

	return &boardState{project: project, columns: columns, issue: issue}, nil
}

func (s *Syncer) handleOpened(ctx context.Context, state *boardState) (Outcome, error) {
	outcome := Outcome{Action: ActionOpened, Board: state.project.Name}

	column, found := FindColumn(state.columns, s.config.InitialColumn)
	if !found {
		s.logger.Warn("initial column not found", "column", s.config.InitialColumn)
		outcome.Message = fmt.Sprintf("Initial column %q not found on board %q", s.config.InitialColumn, state.project.Name)
		return outcome, nil
	}

	card, err := s.createCard(ctx, state.issue, column)
	if err != nil {
		return outcome, err
	}

	outcome.Column = column.Name
	outcome.CardID = card.ID
	outcome.Created = true
	outcome.Message = fmt.Sprintf("New issue card added to %s", column.Name)
	return outcome, nil
}

func (s *Syncer) handleLabeled(ctx context.Context, state *boardState, label string) (Outcome, error) {
	outcome := Outcome{Action: ActionLabeled, Board: state.project.Name}

	rule, found := s.config.Rules.Resolve(label)
	if !found {
		s.logger.Info("no rule matches label", "label", label)
		outcome.Message = fmt.Sprintf("(!) No matching column found for %s", label)
		return outcome, nil
	}

	column, columnFound := FindColumn(state.columns, rule.Column)
	var summary string
	if columnFound {
		var err error
		summary, err = s.place(ctx, state, column, &outcome)
		if err != nil {
			return outcome, err
		}
	} else {
		s.logger.Warn("rule column not found", "label", rule.Label, "column", rule.Column)
	}

	if len(rule.Remove) > 0 {
		labels, err := s.stripLabels(ctx, state.issue.Number, rule.Remove)
		if err != nil {
			return outcome, err
		}
		outcome.Labels = labels
		if columnFound {
			outcome.Message = fmt.Sprintf("%s, with labels %s", summary, strings.Join(labels, ", "))
		} else {
			outcome.Message = fmt.Sprintf("Column %q not found, labels now %s", rule.Column, strings.Join(labels, ", "))
		}
		return outcome, nil
	}

	if columnFound {
		outcome.Message = summary
	} else {
		outcome.Message = fmt.Sprintf("Column %q not found on board %q", rule.Column, state.project.Name)
	}
	return outcome, nil
}

// place puts the issue's card at the bottom of column, creating it
// when the issue has no card and the policy allows. Returns the
// summary used for the outcome message.
func (s *Syncer) place(ctx context.Context, state *boardState, column github.ProjectColumn, outcome *Outcome) (string, error) {
	card, found, err := s.locateCard(ctx, state.columns, state.issue.URL)
	if err != nil {
		return "", err
	}

	if found {
		s.logger.Info("moving issue card",
			"card_id", card.ID,
			"column", column.Name,
			"column_id", column.ID,
		)
		err := s.api.MoveCard(ctx, card.ID, github.MoveCardRequest{
			Position: github.CardPositionBottom,
			ColumnID: column.ID,
		})
		if err != nil {
			return "", fmt.Errorf("moving card %d to column %q: %w", card.ID, column.Name, err)
		}
		outcome.Column = column.Name
		outcome.CardID = card.ID
		outcome.Moved = true
		return fmt.Sprintf("Issue moved to %s", column.Name), nil
	}

	if s.config.MissingCard == MissingCardIgnore {
		s.logger.Info("issue has no card, leaving board unchanged", "issue_url", state.issue.URL)
		return fmt.Sprintf("No card found for issue #%d", state.issue.Number), nil
	}

	created, err := s.createCard(ctx, state.issue, column)
	if err != nil {
		return "", err
	}
	outcome.Column = column.Name
	outcome.CardID = created.ID
	outcome.Created = true
	return fmt.Sprintf("New issue card added to %s", column.Name), nil
}

// locateCard scans the board's columns in listing order for the card
// referencing issueURL. Each column's cards are listed at most once.
func (s *Syncer) locateCard(ctx context.Context, columns []github.ProjectColumn, issueURL string) (github.ProjectCard, bool, error) {
	for _, column := range columns {
		cards, err := s.api.ListCards(ctx, column.ID)
		if err != nil {
			return github.ProjectCard{}, false, fmt.Errorf("listing cards of column %q: %w", column.Name, err)
		}
		if card, found := findCard(cards, issueURL); found {
			return card, true, nil
		}
	}
	return github.ProjectCard{}, false, nil
}

func (s *Syncer) createCard(ctx context.Context, issue *github.Issue, column github.ProjectColumn) (*github.ProjectCard, error) {
	s.logger.Info("creating issue card",
		"issue_number", issue.Number,
		"column", column.Name,
		"column_id", column.ID,
	)
	card, err := s.api.CreateCard(ctx, column.ID, github.CreateCardRequest{
		ContentID:   issue.ID,
		ContentType: "Issue",
	})
	if err != nil {
		return nil, fmt.Errorf("creating card for issue #%d in column %q: %w", issue.Number, column.Name, err)
	}
	return card, nil
}

// stripLabels re-reads the issue and overwrites its labels without the
// ones in remove. The write is skipped when nothing would change.
func (s *Syncer) stripLabels(ctx context.Context, number int, remove []string) ([]string, error) {
	s.logger.Info("removing labels", "labels", remove, "issue_number", number)

	fresh, err := s.api.GetIssue(ctx, s.config.Owner, s.config.Repo, number)
	if err != nil {
		return nil, fmt.Errorf("re-reading issue #%d before label write: %w", number, err)
	}

	current := fresh.LabelNames()
	labels := StripLabels(current, remove)
	if sameLabels(current, labels) {
		s.logger.Debug("labels already stripped, skipping write", "issue_number", number)
		return labels, nil
	}

	if _, err := s.api.ReplaceLabels(ctx, s.config.Owner, s.config.Repo, number, labels); err != nil {
		return nil, fmt.Errorf("replacing labels on issue #%d: %w", number, err)
	}
	return labels, nil
}
