// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/boardsync/lib/boardsync"
)

const rulesYAML = `project: Sprint
initial_column: Backlog
rules:
  - label: bug
    column: Triage
    remove: [needs-triage]
  - label: done
    column: Done
  - label: BUG
    column: Later
`

func executeRules(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	command := rulesCommand(func(string) string { return "" }, &stdout)
	err := command.Execute(context.Background(), append([]string{"--env-file="}, args...), testLogger())
	return stdout.String(), err
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRules_Table(t *testing.T) {
	path := writeConfig(t, "boardsync.yaml", rulesYAML)

	stdout, err := executeRules(t, "--config", path)
	if err != nil {
		t.Fatalf("rules: %v", err)
	}

	for _, want := range []string{
		"LABEL", "COLUMN", "REMOVE",
		"Triage", "needs-triage", "Done",
		"initial column: Backlog",
		"digest:",
		`warning: label "bug" has more than one rule`,
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "\x1b[") {
		t.Errorf("output to a buffer contains ANSI escapes:\n%s", stdout)
	}
}

func TestRules_JSON(t *testing.T) {
	path := writeConfig(t, "boardsync.yaml", rulesYAML)

	stdout, err := executeRules(t, "--config", path, "--json")
	if err != nil {
		t.Fatalf("rules: %v", err)
	}

	var result rulesResult
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("decoding %q: %v", stdout, err)
	}
	if len(result.Rules) != 3 || result.Rules[0].Column != "Triage" {
		t.Errorf("rules = %+v", result.Rules)
	}
	if result.InitialColumn != "Backlog" || result.MissingCard != string(boardsync.MissingCardCreate) {
		t.Errorf("result = %+v", result)
	}
	if result.Digest != result.Rules.Digest() {
		t.Errorf("digest = %q, want %q", result.Digest, result.Rules.Digest())
	}
	if len(result.Duplicates) != 1 {
		t.Errorf("duplicates = %v, want one", result.Duplicates)
	}
}

func TestRules_FlagRules(t *testing.T) {
	stdout, err := executeRules(t, "--rules", `[{"label": "wip", "column": "In progress"}]`, "--json")
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	if !strings.Contains(stdout, `"In progress"`) {
		t.Errorf("output = %s", stdout)
	}
}

func TestRules_NoneConfigured(t *testing.T) {
	stdout, err := executeRules(t)
	if err != nil {
		t.Fatalf("rules: %v", err)
	}
	if !strings.Contains(stdout, `No rules configured. New issues go to "To do".`) {
		t.Errorf("output = %q", stdout)
	}
}

func TestRules_Malformed(t *testing.T) {
	if _, err := executeRules(t, "--rules", `{"label": "bug"}`); err == nil {
		t.Fatal("expected an error for a rules object instead of a list")
	}
}
