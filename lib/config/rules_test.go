// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"slices"
	"testing"

	"github.com/bureau-foundation/boardsync/lib/boardsync"
)

func TestParseRules(t *testing.T) {
	rules, err := ParseRules(`[
		// Closed work goes last.
		{"label": "done", "column": "Done"},
		/* Bugs land in triage. */
		{"label": "bug", "column": "Triage", "remove": ["needs-triage"]},
	]`)
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}

	want := boardsync.RuleSet{
		{Label: "done", Column: "Done"},
		{Label: "bug", Column: "Triage", Remove: []string{"needs-triage"}},
	}
	if len(rules) != len(want) {
		t.Fatalf("got %d rules, want %d", len(rules), len(want))
	}
	for i := range want {
		if rules[i].Label != want[i].Label || rules[i].Column != want[i].Column || !slices.Equal(rules[i].Remove, want[i].Remove) {
			t.Errorf("rule %d = %+v, want %+v", i, rules[i], want[i])
		}
	}
}

func TestParseRules_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "malformed", input: `[{"label": "done"`},
		{name: "not a list", input: `{"label": "done", "column": "Done"}`},
		{name: "unknown field", input: `[{"label": "done", "colum": "Done"}]`},
		{name: "missing column", input: `[{"label": "done"}]`},
		{name: "missing label", input: `[{"column": "Done"}]`},
		{name: "blank remove entry", input: `[{"label": "done", "column": "Done", "remove": [""]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRules(tt.input)
			if !errors.Is(err, ErrInvalidRules) {
				t.Errorf("ParseRules(%s) = %v, want ErrInvalidRules", tt.input, err)
			}
		})
	}
}

func TestParseRules_Empty(t *testing.T) {
	for _, input := range []string{"", "  ", "[]", "null"} {
		rules, err := ParseRules(input)
		if err != nil {
			t.Errorf("ParseRules(%q): %v", input, err)
			continue
		}
		if rules == nil || len(rules) != 0 {
			t.Errorf("ParseRules(%q) = %v, want empty non-nil", input, rules)
		}
	}
}

func TestDuplicateLabels(t *testing.T) {
	rules := boardsync.RuleSet{
		{Label: "Bug", Column: "Triage"},
		{Label: "done", Column: "Done"},
		{Label: "bug", Column: "Later"},
		{Label: "BUG", Column: "Never"},
	}
	got := DuplicateLabels(rules)
	if !slices.Equal(got, []string{"Bug"}) {
		t.Errorf("DuplicateLabels = %v, want [Bug]", got)
	}

	if got := DuplicateLabels(boardsync.RuleSet{{Label: "a", Column: "A"}}); got != nil {
		t.Errorf("DuplicateLabels = %v, want nil", got)
	}
}
