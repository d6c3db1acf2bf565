// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardsync

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/zeebo/blake3"
)

// Rule maps a label to the column its issues belong in. Remove lists
// labels to strip from the issue once the rule has fired.
type Rule struct {
	Label  string   `json:"label" yaml:"label" toml:"label"`
	Column string   `json:"column" yaml:"column" toml:"column"`
	Remove []string `json:"remove,omitempty" yaml:"remove,omitempty" toml:"remove,omitempty"`
}

// RuleSet is an ordered list of rules. Order matters: resolution is
// first-match, not best-match.
type RuleSet []Rule

// Resolve returns the first rule whose label equals label under
// case-insensitive comparison.
func (rules RuleSet) Resolve(label string) (Rule, bool) {
	for _, rule := range rules {
		if strings.EqualFold(rule.Label, label) {
			return rule, true
		}
	}
	return Rule{}, false
}

// rulesDigestKey is the BLAKE3 key for rule set fingerprints, so a
// digest can never collide with a plain hash of the same bytes.
var rulesDigestKey = func() [32]byte {
	var key [32]byte
	copy(key[:], "boardsync rules digest v1")
	return key
}()

// Digest returns a hex BLAKE3 fingerprint of the rule set. Two rule
// sets have the same digest exactly when they have the same rules in
// the same order. The digest is logged at startup so a run can be tied
// to the rule revision that drove it.
func (rules RuleSet) Digest() string {
	// Canonical form: a JSON array with a nil slice encoded as [].
	canonical := rules
	if canonical == nil {
		canonical = RuleSet{}
	}
	encoded, err := json.Marshal(canonical)
	if err != nil {
		// Rules hold only strings; Marshal cannot fail on them.
		panic("boardsync: encoding rules for digest: " + err.Error())
	}

	hasher, err := blake3.NewKeyed(rulesDigestKey[:])
	if err != nil {
		panic("boardsync: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(encoded)
	return hex.EncodeToString(hasher.Sum(nil))
}
