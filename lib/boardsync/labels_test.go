// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardsync

import (
	"slices"
	"testing"
)

func TestStripLabels(t *testing.T) {
	tests := []struct {
		name    string
		current []string
		remove  []string
		want    []string
	}{
		{
			name:    "triage scenario",
			current: []string{"bug", "needs-triage", "p1"},
			remove:  []string{"needs-triage"},
			want:    []string{"bug", "p1"},
		},
		{
			name:    "several removed",
			current: []string{"a", "x", "b", "y", "c"},
			remove:  []string{"x", "y"},
			want:    []string{"a", "b", "c"},
		},
		{
			name:    "exact match only",
			current: []string{"Needs-Triage", "bug"},
			remove:  []string{"needs-triage"},
			want:    []string{"Needs-Triage", "bug"},
		},
		{
			name:    "nothing to remove",
			current: []string{"bug"},
			remove:  []string{"wontfix"},
			want:    []string{"bug"},
		},
		{
			name:    "duplicates collapse",
			current: []string{"bug", "p1", "bug"},
			remove:  []string{"p1"},
			want:    []string{"bug"},
		},
		{
			name:    "everything removed",
			current: []string{"a", "b"},
			remove:  []string{"b", "a"},
			want:    []string{},
		},
		{
			name:    "no labels",
			current: nil,
			remove:  []string{"a"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripLabels(tt.current, tt.remove)
			if got == nil {
				t.Fatal("StripLabels returned nil")
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("StripLabels(%v, %v) = %v, want %v", tt.current, tt.remove, got, tt.want)
			}
		})
	}
}

func TestStripLabels_DoesNotModifyInput(t *testing.T) {
	current := []string{"bug", "needs-triage"}
	StripLabels(current, []string{"bug"})
	if !slices.Equal(current, []string{"bug", "needs-triage"}) {
		t.Errorf("input modified: %v", current)
	}
}
