// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package actionenv

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Runtime is a view of the Actions process environment.
type Runtime struct {
	// Getenv looks up an environment variable.
	Getenv func(string) string

	// Stdout receives workflow commands.
	Stdout io.Writer
}

// Default returns a Runtime bound to the process environment and
// stdout.
func Default() *Runtime {
	return &Runtime{Getenv: os.Getenv, Stdout: os.Stdout}
}

// InActions reports whether the process runs inside a GitHub Actions
// job.
func (runtime *Runtime) InActions() bool {
	return runtime.Getenv("GITHUB_ACTIONS") == "true"
}

// Input returns the trimmed value of the named action input, or ""
// when it was not supplied. Names are matched the way the runner
// exports them: upper-cased, with spaces replaced by underscores.
func (runtime *Runtime) Input(name string) string {
	key := "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
	return strings.TrimSpace(runtime.Getenv(key))
}

// SetOutput publishes a step output. The value is appended to the
// $GITHUB_OUTPUT file using a heredoc with a random delimiter, so
// multi-line values survive intact. Without $GITHUB_OUTPUT the legacy
// ::set-output command is written to stdout.
func (runtime *Runtime) SetOutput(name, value string) error {
	path := runtime.Getenv("GITHUB_OUTPUT")
	if path == "" {
		_, err := fmt.Fprintf(runtime.Stdout, "::set-output name=%s::%s\n", escapeProperty(name), escapeData(value))
		return err
	}

	delimiter := "ghadelimiter_" + uuid.NewString()
	if strings.Contains(name, delimiter) || strings.Contains(value, delimiter) {
		return fmt.Errorf("output %q contains its own delimiter", name)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}
	_, err = fmt.Fprintf(file, "%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("writing output %q: %w", name, err)
	}
	return nil
}

// Fail writes an ::error:: workflow command so the runner annotates the
// job. The caller exits non-zero.
func (runtime *Runtime) Fail(message string) {
	fmt.Fprintf(runtime.Stdout, "::error::%s\n", escapeData(message))
}

// Warning writes a ::warning:: workflow command.
func (runtime *Runtime) Warning(message string) {
	fmt.Fprintf(runtime.Stdout, "::warning::%s\n", escapeData(message))
}

// escapeData escapes a workflow command message.
func escapeData(value string) string {
	value = strings.ReplaceAll(value, "%", "%25")
	value = strings.ReplaceAll(value, "\r", "%0D")
	return strings.ReplaceAll(value, "\n", "%0A")
}

// escapeProperty escapes a workflow command property value.
func escapeProperty(value string) string {
	value = escapeData(value)
	value = strings.ReplaceAll(value, ":", "%3A")
	return strings.ReplaceAll(value, ",", "%2C")
}
