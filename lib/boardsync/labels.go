// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardsync

// StripLabels returns current without any label named in remove.
// Matching is exact. The result keeps the order of current and drops
// repeated names, so the label set handed back to GitHub never gains
// duplicates. The result is never nil.
func StripLabels(current, remove []string) []string {
	removed := make(map[string]bool, len(remove))
	for _, name := range remove {
		removed[name] = true
	}

	seen := make(map[string]bool, len(current))
	result := make([]string, 0, len(current))
	for _, name := range current {
		if removed[name] || seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}

// sameLabels reports whether two label lists are identical, in order.
func sameLabels(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
