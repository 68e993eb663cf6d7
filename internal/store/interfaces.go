// SPDX-License-Identifier: Apache-2.0

// Package store provides the client's local persistence: the durable
// per-collection cursor state that makes batched downloads resumable, and the
// apply-side contract of the bookmark mirror.
//
// The cursor store ships two implementations: an SQLite-backed one for real
// deployments and an in-memory one for tests and for embedders that persist
// cursor state through their own preference layer. The mirror itself is an
// external collaborator; this package only defines the interface the
// orchestrator applies batches through, plus an in-memory reference
// implementation.
package store

import (
	"context"

	"github.com/MKhiriev/go-mirror-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CursorStore persists the download progress of one collection. The triple
// (baseTimestamp, nextOffset, lastModified) is sufficient to resume a batch
// sequence after an arbitrary process restart.
//
// Every setter must be durable before it returns: the downloader writes
// cursor state after each successful page fetch and before the next fetch
// begins, so a crash mid-sequence resumes from the last recorded page
// boundary, never mid-page.
//
// Implementations do not need internal locking beyond what their backend
// requires; the design assumes a single writer per collection.
type CursorStore interface {
	// NextOffset returns the opaque continuation token of the in-progress
	// page sequence, or the empty string when the next fetch should start a
	// fresh sequence from the base timestamp.
	NextOffset(ctx context.Context) (string, error)

	// SetNextOffset durably records the continuation token returned by the
	// last successful page fetch.
	SetNextOffset(ctx context.Context, offset string) error

	// ClearNextOffset durably removes the continuation token. Called when a
	// page sequence completes or when a server-side mutation invalidated the
	// offset.
	ClearNextOffset(ctx context.Context) error

	// BaseTimestamp returns the low-water-mark: the lower bound for the next
	// fetch. Zero means "from the beginning of time".
	BaseTimestamp(ctx context.Context) (models.Timestamp, error)

	// SetBaseTimestamp durably records a new low-water-mark.
	SetBaseTimestamp(ctx context.Context, ts models.Timestamp) error

	// LastModified returns the server's collection-wide modification
	// timestamp as of the last fully completed batch run. Zero means no run
	// has ever completed.
	LastModified(ctx context.Context) (models.Timestamp, error)

	// SetLastModified durably records the collection-wide modification
	// timestamp after a page sequence completes.
	SetLastModified(ctx context.Context, ts models.Timestamp) error

	// Reset durably zeroes all three cursor fields. Called when the server
	// signals a wipe or a storage format change; a full re-download from
	// zero follows naturally.
	Reset(ctx context.Context) error
}

// MirrorStorage is the apply-side contract of the local bookmark mirror. The
// mirror is a read-only replica of server state, distinct from any
// user-edited local structure; merging the two is the embedding
// application's concern.
type MirrorStorage interface {
	// Version reports the schema version of the mirror. The synchronizer
	// refuses to run against a mirror whose version it does not expect.
	Version() int

	// ApplyBatch atomically merges a batch of projected records into the
	// mirror. The merge must be idempotent: applying the same item (same
	// GUID, same server-modified timestamp) twice leaves the mirror in the
	// same state as applying it once.
	ApplyBatch(ctx context.Context, items []models.MirrorItem) error
}
