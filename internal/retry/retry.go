// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package retry re-invokes a remote operation a fixed number of times with a
// fixed delay between attempts.
//
// The delay is constant: no exponential growth and no jitter. Every failure
// is retried, whether it is a transient network error or a rejection by the
// backend, and the final failure is always returned to the caller.
package retry

import (
	"context"
	"errors"
	"time"

	goretry "github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-admin-sync/internal/logger"
	"github.com/MKhiriev/go-admin-sync/models"
)

const (
	DefaultMaxAttempts = 3
	DefaultDelay       = time.Second
)

// Operation is a single remote attempt.
type Operation[T any] func(ctx context.Context) models.Result[T]

// Policy groups the attempt budget and the inter-attempt delay.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultPolicy returns 3 attempts spaced by one second.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: DefaultMaxAttempts, Delay: DefaultDelay}
}

// Run is Do with the attempt budget and delay taken from p.
func Run[T any](ctx context.Context, p Policy, op Operation[T]) models.Result[T] {
	return Do(ctx, op, p.MaxAttempts, p.Delay)
}

// Do invokes op up to maxAttempts times, sleeping delay between attempts,
// and returns the first successful result or the last failed one.
// Non-positive maxAttempts or delay fall back to the defaults.
//
// If ctx is cancelled while waiting, the loop ends early and the last
// failure is returned; if no attempt was made the failure carries ctx.Err().
func Do[T any](ctx context.Context, op Operation[T], maxAttempts int, delay time.Duration) models.Result[T] {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if delay <= 0 {
		delay = DefaultDelay
	}

	if err := ctx.Err(); err != nil {
		return models.Fail[T](err)
	}

	log := logger.FromContext(ctx)
	backoff := goretry.WithMaxRetries(uint64(maxAttempts-1), goretry.NewConstant(delay))

	var (
		last    models.Result[T]
		attempt int
	)
	err := goretry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		last = op(ctx)
		if last.OK {
			return nil
		}

		log.Debug().
			Str("func", "retry.Do").
			Int("attempt", attempt).
			Int("max_attempts", maxAttempts).
			Str("error", last.Error).
			Msg("operation attempt failed")
		return goretry.RetryableError(errors.New(last.Error))
	})
	if err == nil {
		return last
	}

	if attempt == 0 {
		return models.Fail[T](err)
	}
	return last
}
