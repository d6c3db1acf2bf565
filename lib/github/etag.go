// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import "sync"

type etagEntry struct {
	etag string
	body []byte
}

// etagCache remembers the ETag and body of GET responses so repeated
// reads of the same resource (the issue is fetched once for dispatch
// and again right before a label overwrite) are sent as conditional
// requests. A 304 answer does not count against the rate limit and the
// cached body is returned in its place. Every read still reaches
// GitHub, so the cache never serves stale data.
//
// Entries live as long as the Client; one invocation touches a handful
// of URLs.
type etagCache struct {
	mu      sync.Mutex
	entries map[string]etagEntry
}

func newETagCache() *etagCache {
	return &etagCache{entries: make(map[string]etagEntry)}
}

// get returns the cached ETag for a URL, or "" if none.
func (cache *etagCache) get(url string) string {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	return cache.entries[url].etag
}

// body returns the cached response body for a URL, or nil if none.
func (cache *etagCache) body(url string) []byte {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	return cache.entries[url].body
}

func (cache *etagCache) put(url string, etag string, body []byte) {
	if etag == "" {
		return
	}
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.entries[url] = etagEntry{etag: etag, body: body}
}
