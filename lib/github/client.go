// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bureau-foundation/boardsync/lib/clock"
)

// githubAPIVersion is the GitHub REST API version header. Pinning the
// version ensures consistent behavior as GitHub evolves the API.
const githubAPIVersion = "2022-11-28"

// defaultBaseURL is the base URL for the public GitHub API.
const defaultBaseURL = "https://api.github.com"

// maxResponseSize bounds response body reads. Board and issue payloads
// are a few kilobytes; the bound only guards against a misbehaving
// server.
const maxResponseSize int64 = 32 << 20

// Config holds configuration for creating a GitHub API Client.
type Config struct {
	// BaseURL is the root URL for API requests. Defaults to
	// "https://api.github.com". Must use HTTPS. GitHub Enterprise
	// installations use "https://<host>/api/v3".
	BaseURL string

	// Token is a personal access token, fine-grained token, or the
	// workflow's GITHUB_TOKEN. Required.
	Token string

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// MaxReadRetries is how many times a GET request failing with a
	// retryable error (see IsRetryable) is retried. Zero selects
	// defaultMaxReadRetries; a negative value disables read retries.
	// Mutations are never retried.
	MaxReadRetries int

	// Clock provides time operations. Defaults to clock.Real().
	// Inject clock.Fake() in tests for deterministic behavior.
	Clock clock.Clock

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client is a typed GitHub REST API client with token authentication,
// rate limiting, pagination, ETag caching, read retries, and structured
// error handling.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	authorization  string
	maxReadRetries int
	rateLimit      *rateLimitTracker
	etagCache      *etagCache
	clock          clock.Clock
	logger         *slog.Logger
}

// NewClient creates a GitHub API client from the given configuration.
// Returns an error if the configuration is invalid (missing token,
// non-HTTPS URL).
func NewClient(config Config) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	if !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("github: API client requires HTTPS (got %q)", baseURL)
	}
	if config.Token == "" {
		return nil, fmt.Errorf("github: no authentication configured (set Token)")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	clk := config.Clock
	if clk == nil {
		clk = clock.Real()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	maxReadRetries := config.MaxReadRetries
	switch {
	case maxReadRetries == 0:
		maxReadRetries = defaultMaxReadRetries
	case maxReadRetries < 0:
		maxReadRetries = 0
	}

	return &Client{
		baseURL:        baseURL,
		httpClient:     httpClient,
		authorization:  "Bearer " + config.Token,
		maxReadRetries: maxReadRetries,
		rateLimit:      newRateLimitTracker(clk),
		etagCache:      newETagCache(),
		clock:          clk,
		logger:         logger,
	}, nil
}

// do executes an authenticated GitHub API request. Handles rate limit
// waiting, ETag caching, read retries, and error parsing. The path
// should be relative to the base URL (e.g., "/repos/owner/repo/issues").
//
// Returns the response body as raw bytes. On non-2xx responses,
// returns an *APIError.
func (client *Client) do(ctx context.Context, method, path string, requestBody any) ([]byte, http.Header, error) {
	url := client.baseURL + path
	if method != http.MethodGet {
		return client.doWithRateLimitRetry(ctx, method, url, requestBody, false)
	}

	var body []byte
	var header http.Header
	err := client.retryRead(ctx, url, func() error {
		var err error
		body, header, err = client.doWithRateLimitRetry(ctx, method, url, nil, false)
		return err
	})
	return body, header, err
}

// doWithRateLimitRetry performs one request, retrying once after the
// advertised backoff when GitHub answers with a rate-limit response.
// Only one retry is attempted so persistent rate limiting surfaces as
// an error instead of looping.
func (client *Client) doWithRateLimitRetry(ctx context.Context, method, url string, requestBody any, isRetry bool) ([]byte, http.Header, error) {
	response, err := client.doRaw(ctx, method, url, requestBody)
	if err != nil {
		return nil, nil, err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotModified {
		if cached := client.etagCache.body(url); cached != nil {
			return cached, response.Header, nil
		}
	}

	body, err := readResponse(response.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("github: reading response body: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		apiError := parseAPIErrorFromBody(response.StatusCode, body)
		if !isRetry && apiError.rateLimited() {
			retryDuration := client.rateLimit.retryAfter(response.Header)
			if retryDuration > 0 {
				client.logger.Info("rate limited, backing off",
					"duration", retryDuration,
					"method", method,
					"url", url,
				)

				select {
				case <-client.clock.After(retryDuration):
				case <-ctx.Done():
					return nil, nil, ctx.Err()
				}

				return client.doWithRateLimitRetry(ctx, method, url, requestBody, true)
			}
		}
		return nil, nil, apiError
	}

	if method == http.MethodGet {
		if etag := response.Header.Get("ETag"); etag != "" {
			client.etagCache.put(url, etag, body)
		}
	}

	return body, response.Header, nil
}

// doRaw executes an HTTP request with authentication and rate limit
// waiting, but without response parsing. The caller closes the body.
//
// Used by doWithRateLimitRetry and by PageIterator, which needs the
// Link header before parsing the body.
func (client *Client) doRaw(ctx context.Context, method, url string, requestBody any) (*http.Response, error) {
	if err := client.rateLimit.wait(ctx); err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("github: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("github: creating request: %w", err)
	}

	request.Header.Set("Authorization", client.authorization)
	request.Header.Set("Accept", "application/vnd.github+json")
	request.Header.Set("X-GitHub-Api-Version", githubAPIVersion)
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	if method == http.MethodGet {
		if etag := client.etagCache.get(url); etag != "" {
			request.Header.Set("If-None-Match", etag)
		}
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("github: %s %s: %w", method, url, err)
	}

	client.rateLimit.update(response.Header)

	return response, nil
}

// get decodes the JSON body of a GET request into result.
func (client *Client) get(ctx context.Context, path string, result any) error {
	body, _, err := client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, result)
}

// post sends a JSON POST request. result may be nil when the response
// body is not needed (card moves answer with an empty object).
func (client *Client) post(ctx context.Context, path string, requestBody any, result any) error {
	body, _, err := client.do(ctx, http.MethodPost, path, requestBody)
	if err != nil {
		return err
	}
	if result != nil {
		return json.Unmarshal(body, result)
	}
	return nil
}

// put sends a JSON PUT request and decodes the response into result.
func (client *Client) put(ctx context.Context, path string, requestBody any, result any) error {
	body, _, err := client.do(ctx, http.MethodPut, path, requestBody)
	if err != nil {
		return err
	}
	if result != nil {
		return json.Unmarshal(body, result)
	}
	return nil
}

// list creates a PageIterator for a paginated GET endpoint.
func list[T any](client *Client, path string) *PageIterator[T] {
	return &PageIterator[T]{
		client:  client,
		nextURL: client.baseURL + path,
	}
}

// readResponse reads a response body up to maxResponseSize bytes.
func readResponse(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, maxResponseSize))
}

// parseAPIErrorFromBody parses a GitHub API error from a status code
// and response body.
func parseAPIErrorFromBody(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode}

	var wireError struct {
		Message          string            `json:"message"`
		DocumentationURL string            `json:"documentation_url"`
		Errors           []ValidationError `json:"errors"`
	}
	if json.Unmarshal(body, &wireError) == nil && wireError.Message != "" {
		apiError.Message = wireError.Message
		apiError.DocumentationURL = wireError.DocumentationURL
		apiError.Errors = wireError.Errors
	} else {
		apiError.Message = string(body)
	}

	return apiError
}
