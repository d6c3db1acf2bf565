// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"time"
)

// defaultMaxReadRetries is the number of extra attempts a GET request
// gets after a retryable failure.
const defaultMaxReadRetries = 2

// readRetryBaseDelay is the backoff before the first read retry. Each
// later retry doubles it.
const readRetryBaseDelay = time.Second

// retryRead runs attempt until it succeeds, fails with an error that
// IsRetryable rejects, or the retry budget is spent. Only idempotent
// reads go through here: a repeated GET cannot duplicate a card or
// clobber labels.
func (client *Client) retryRead(ctx context.Context, url string, attempt func() error) error {
	delay := readRetryBaseDelay
	for retry := 0; ; retry++ {
		err := attempt()
		if err == nil {
			return nil
		}
		if retry >= client.maxReadRetries || !IsRetryable(err) || ctx.Err() != nil {
			return err
		}

		client.logger.Warn("transient read failure, retrying",
			"url", url,
			"attempt", retry+1,
			"delay", delay,
			"error", err,
		)

		select {
		case <-client.clock.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay *= 2
	}
}
