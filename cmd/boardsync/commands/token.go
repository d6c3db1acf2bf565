// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/bureau-foundation/boardsync/cmd/boardsync/cli"
	"github.com/bureau-foundation/boardsync/lib/keychain"
)

// tokenStore is where "token set" and "token clear" keep the token.
type tokenStore struct {
	set   func(token string) error
	clear func() error
}

// TokenCommand returns the "token" command group.
func TokenCommand() *cli.Command {
	return tokenCommand(tokenStore{set: keychain.SetToken, clear: keychain.ClearToken}, os.Stdin, os.Stderr)
}

func tokenCommand(store tokenStore, stdin io.Reader, prompt io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "token",
		Summary: "Manage the GitHub token used for local runs",
		Description: `Store or remove the GitHub token in the system keychain.

Local runs fall back to the stored token when neither --token, the
config file, nor GITHUB_TOKEN supplies one. Runs inside GitHub Actions
never read the keychain.`,
		Subcommands: []*cli.Command{
			{
				Name:    "set",
				Summary: "Store a token in the keychain",
				Usage:   "boardsync token set",
				Description: `Read a token from the terminal (without echo) or from standard
input, and store it in the system keychain.`,
				Examples: []cli.Example{
					{Description: "Store the token of the gh CLI", Command: "gh auth token | boardsync token set"},
				},
				Run: func(_ context.Context, args []string, logger *slog.Logger) error {
					if len(args) > 0 {
						return fmt.Errorf("unexpected argument %q", args[0])
					}
					token, err := readToken(stdin, prompt)
					if err != nil {
						return err
					}
					if err := store.set(token); err != nil {
						return err
					}
					logger.Info("token stored in keychain")
					return nil
				},
			},
			{
				Name:    "clear",
				Summary: "Remove the stored token",
				Usage:   "boardsync token clear",
				Run: func(_ context.Context, args []string, logger *slog.Logger) error {
					if len(args) > 0 {
						return fmt.Errorf("unexpected argument %q", args[0])
					}
					if err := store.clear(); err != nil {
						return err
					}
					logger.Info("token removed from keychain")
					return nil
				},
			},
		},
	}
}

// readToken reads the token with echo disabled when stdin is a
// terminal, and the first line of stdin otherwise.
func readToken(stdin io.Reader, prompt io.Writer) (string, error) {
	if file, ok := stdin.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		fmt.Fprint(prompt, "GitHub token: ")
		tokenBytes, err := term.ReadPassword(int(file.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("reading token: %w", err)
		}
		return validToken(string(tokenBytes))
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading token: %w", err)
	}
	return validToken(line)
}

func validToken(raw string) (string, error) {
	token := strings.TrimSpace(raw)
	if token == "" {
		return "", fmt.Errorf("no token given")
	}
	if strings.ContainsAny(token, " \t") {
		return "", fmt.Errorf("token contains whitespace")
	}
	return token, nil
}
