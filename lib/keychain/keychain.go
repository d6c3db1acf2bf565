// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package keychain stores the GitHub token used for local runs in the
// operating system's credential store (macOS Keychain, Windows
// Credential Manager, or the Secret Service on Linux).
//
// Inside GitHub Actions the token always comes from the workflow; the
// keychain is only a fallback for running boardsync from a workstation.
package keychain

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const (
	service  = "boardsync"
	tokenKey = "github-token"
)

// Token returns the stored token, or "" when none is stored.
func Token() (string, error) {
	token, err := keyring.Get(service, tokenKey)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading token from keychain: %w", err)
	}
	return token, nil
}

// SetToken stores token, replacing any stored token.
func SetToken(token string) error {
	if token == "" {
		return fmt.Errorf("refusing to store an empty token")
	}
	if err := keyring.Set(service, tokenKey, token); err != nil {
		return fmt.Errorf("storing token in keychain: %w", err)
	}
	return nil
}

// ClearToken removes the stored token. Clearing when nothing is stored
// is not an error.
func ClearToken() error {
	err := keyring.Delete(service, tokenKey)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("removing token from keychain: %w", err)
	}
	return nil
}
