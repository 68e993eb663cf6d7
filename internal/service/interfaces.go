// SPDX-License-Identifier: Apache-2.0

// Package service contains the sync engine: the batching downloader that
// walks a collection page by page with durable cursor state, the mirror
// orchestrator that drives the downloader and applies batches to storage,
// and the synchronizer facade that checks preconditions and reports a
// terminal result.
package service

import (
	"context"

	"github.com/MKhiriev/go-mirror-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// GreenLight is consulted by the orchestrator before every page fetch.
// Returning false aborts the run gracefully: no error, no partial apply of
// records fetched in the current step. Cancellation is cooperative only — a
// fetch already in flight runs to completion first.
type GreenLight func() bool

// ReadyChecker is the delegated "reason to not sync" precondition (auth
// state, rate limiting, backoff). It belongs to the embedding sync-session
// layer; the facade only consults it.
type ReadyChecker interface {
	// ReasonToDefer returns a human-readable reason to skip this sync
	// attempt, or the empty string when syncing may proceed.
	ReasonToDefer(ctx context.Context) string
}

// ProgressListener observes batch application. Listeners are non-owning:
// the orchestrator never closes or otherwise manages them, and the owner must
// remove a listener before tearing it down.
type ProgressListener interface {
	// BatchApplied is called after each successful apply step with the
	// number of mirror items that survived projection.
	BatchApplied(collection string, applied int)
}

// BatchDownloader is the downloader contract the orchestrator drives.
// [BatchingDownloader] is the production implementation.
type BatchDownloader interface {
	// Go performs at most one page fetch and classifies the outcome. See
	// [BatchingDownloader.Go] for the exact cursor semantics.
	Go(ctx context.Context, info models.ServerInfo, limit int) (models.EndState, error)

	// Retrieve drains the accumulation buffer. Must be called exactly once
	// between a Go call and the corresponding apply step, never concurrently
	// with an in-flight fetch.
	Retrieve() []models.Record

	// Reset zeroes all cursor state and clears the buffer.
	Reset(ctx context.Context) error
}
