// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// APIError is a non-2xx response from the REST API, decoded from
// GitHub's JSON error body.
type APIError struct {
	StatusCode       int
	Message          string
	DocumentationURL string

	// Errors is set on 422 responses, e.g. when a board already has a
	// card for the issue being added.
	Errors []ValidationError
}

// ValidationError is one field-level failure of a 422 response.
type ValidationError struct {
	Resource string `json:"resource"`
	Code     string `json:"code"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}

func (v ValidationError) detail() string {
	if v.Message != "" {
		return v.Message
	}
	return v.Code
}

func (err *APIError) Error() string {
	parts := []string{fmt.Sprintf("github: HTTP %d: %s", err.StatusCode, err.Message)}
	for _, validation := range err.Errors {
		parts = append(parts, fmt.Sprintf("%s.%s: %s", validation.Resource, validation.Field, validation.detail()))
	}
	return strings.Join(parts, "; ")
}

// rateLimited distinguishes an exhausted rate limit from a permission
// failure. Both arrive as 403; only the message tells them apart.
func (err *APIError) rateLimited() bool {
	switch err.StatusCode {
	case http.StatusTooManyRequests:
		return true
	case http.StatusForbidden:
		message := strings.ToLower(err.Message)
		return strings.Contains(message, "rate limit") || strings.Contains(message, "abuse detection")
	}
	return false
}

func asAPIError(err error) (*APIError, bool) {
	var apiError *APIError
	ok := errors.As(err, &apiError)
	return apiError, ok
}

func hasStatus(err error, status int) bool {
	apiError, ok := asAPIError(err)
	return ok && apiError.StatusCode == status
}

// IsNotFound reports whether err is a 404 response. GitHub also
// answers 404 when the token cannot see the resource.
func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

// IsValidationFailed reports whether err is a 422 response.
func IsValidationFailed(err error) bool { return hasStatus(err, http.StatusUnprocessableEntity) }

// IsConflict reports whether err is a 409 response.
func IsConflict(err error) bool { return hasStatus(err, http.StatusConflict) }

// IsRateLimited reports whether err is a primary (403) or secondary
// (429) rate limit response.
func IsRateLimited(err error) bool {
	apiError, ok := asAPIError(err)
	return ok && apiError.rateLimited()
}

// IsRetryable reports whether repeating the request may succeed: 5xx
// responses, rate limits, and transport failures. Cancellation is never
// retryable.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if apiError, ok := asAPIError(err); ok {
		return apiError.StatusCode >= 500 || apiError.rateLimited()
	}
	var transportError *url.Error
	return errors.As(err, &transportError)
}
