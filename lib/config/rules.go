// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/boardsync/lib/boardsync"
)

// ErrInvalidRules is wrapped by every error about the rule list.
var ErrInvalidRules = errors.New("invalid label rules")

// ParseRules decodes a JSON rule list. Comments and trailing commas are
// stripped first. An empty or blank input is an empty rule set.
func ParseRules(data string) (boardsync.RuleSet, error) {
	if strings.TrimSpace(data) == "" {
		return boardsync.RuleSet{}, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON([]byte(data))))
	decoder.DisallowUnknownFields()

	var rules boardsync.RuleSet
	if err := decoder.Decode(&rules); err != nil {
		return nil, fmt.Errorf("%w: label rules could not be parsed: %v", ErrInvalidRules, err)
	}
	if rules == nil {
		rules = boardsync.RuleSet{}
	}
	if err := ValidateRules(rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// ValidateRules checks that every rule names a label and a column.
func ValidateRules(rules boardsync.RuleSet) error {
	var errs []error
	for i, rule := range rules {
		if strings.TrimSpace(rule.Label) == "" {
			errs = append(errs, fmt.Errorf("%w: rule %d: label is required", ErrInvalidRules, i))
		}
		if strings.TrimSpace(rule.Column) == "" {
			errs = append(errs, fmt.Errorf("%w: rule %d (%q): column is required", ErrInvalidRules, i, rule.Label))
		}
		for _, name := range rule.Remove {
			if strings.TrimSpace(name) == "" {
				errs = append(errs, fmt.Errorf("%w: rule %d (%q): remove list has an empty label", ErrInvalidRules, i, rule.Label))
				break
			}
		}
	}
	return errors.Join(errs...)
}

// DuplicateLabels returns the labels that more than one rule matches,
// compared case-insensitively, in the spelling of their first rule.
// Only the first of those rules can ever fire.
func DuplicateLabels(rules boardsync.RuleSet) []string {
	first := make(map[string]string, len(rules))
	reported := make(map[string]bool)
	var duplicates []string
	for _, rule := range rules {
		key := strings.ToLower(rule.Label)
		original, seen := first[key]
		if !seen {
			first[key] = rule.Label
			continue
		}
		if !reported[key] {
			reported[key] = true
			duplicates = append(duplicates, original)
		}
	}
	return duplicates
}
