// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"strings"
)

// PageIterator lazily fetches pages of results from a paginated GitHub
// API endpoint. Each call to Next fetches the next page and returns the
// items. Returns nil, nil when all pages have been consumed.
//
// The iterator is not safe for concurrent use.
type PageIterator[T any] struct {
	client  *Client
	nextURL string
	done    bool
}

// Next fetches the next page of results. Returns nil, nil when no more
// pages are available. Page fetches are reads, so they get the same
// rate limiting and retry treatment as any other GET.
func (iterator *PageIterator[T]) Next(ctx context.Context) ([]T, error) {
	if iterator.done || iterator.nextURL == "" {
		return nil, nil
	}

	var items []T
	var next string
	err := iterator.client.retryRead(ctx, iterator.nextURL, func() error {
		response, err := iterator.client.doRaw(ctx, http.MethodGet, iterator.nextURL, nil)
		if err != nil {
			return err
		}
		defer response.Body.Close()

		body, err := readResponse(response.Body)
		if err != nil {
			return err
		}
		if response.StatusCode != http.StatusOK {
			return parseAPIErrorFromBody(response.StatusCode, body)
		}

		items = nil
		if err := json.Unmarshal(body, &items); err != nil {
			return err
		}
		next = parseLinkNext(response.Header.Get("Link"))
		return nil
	})
	if err != nil {
		return nil, err
	}

	iterator.nextURL = next
	if iterator.nextURL == "" {
		iterator.done = true
	}

	// An empty page still counts as a page; report it as an empty,
	// non-nil slice so callers don't mistake it for the end.
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Collect fetches all remaining pages and returns all items concatenated.
func (iterator *PageIterator[T]) Collect(ctx context.Context) ([]T, error) {
	var all []T
	for {
		items, err := iterator.Next(ctx)
		if err != nil {
			return all, err
		}
		if items == nil {
			return all, nil
		}
		all = append(all, items...)
	}
}

// parseLinkNext returns the rel="next" target of a Link header, or ""
// on the last page:
//
//	<https://api.github.com/projects/columns/1/cards?page=2>; rel="next", <...>; rel="last"
func parseLinkNext(header string) string {
	for link := range strings.SplitSeq(header, ",") {
		target, params, ok := strings.Cut(strings.TrimSpace(link), ";")
		if !ok || !slices.Contains(strings.Fields(strings.ReplaceAll(params, ";", " ")), `rel="next"`) {
			continue
		}
		target = strings.TrimSpace(target)
		if inner, found := strings.CutPrefix(target, "<"); found {
			if inner, found = strings.CutSuffix(inner, ">"); found {
				return inner
			}
		}
	}
	return ""
}
