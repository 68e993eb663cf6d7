// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-mirror-sync/internal/adapter"
	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/store"
	"github.com/MKhiriev/go-mirror-sync/models"
)

// BatchingDownloader walks one collection page by page over the limit/offset
// protocol, persisting cursor state after every page so that a crash or an
// aborted run resumes at the last page boundary.
//
// One instance serves one collection for one run sequence. The instance is
// not safe for concurrent use; the orchestrator calls Go and Retrieve
// strictly in alternation.
type BatchingDownloader struct {
	client     adapter.CollectionClient
	cursors    store.CursorStore
	collection string
	buffer     []models.Record
	log        *logger.Logger
}

// NewBatchingDownloader wires a downloader for collection on top of the given
// transport client and cursor store.
func NewBatchingDownloader(client adapter.CollectionClient, cursors store.CursorStore, collection string, log *logger.Logger) *BatchingDownloader {
	return &BatchingDownloader{
		client:     client,
		cursors:    cursors,
		collection: collection,
		log:        log.WithCollection(collection),
	}
}

// Go performs at most one page fetch and classifies the outcome.
//
// Cursor semantics, in order:
//   - info carries no entry for the collection, or the server's collection
//     timestamp equals the stored lastModified: nothing changed since the
//     last completed run, no network call is made, EndStateNoNewData.
//   - The fetch uses since = baseTimestamp and, when present, the persisted
//     continuation offset, so an interrupted sequence resumes mid-stream.
//   - A 412 from the server means a concurrent write invalidated the offset:
//     the offset is cleared durably and the step ends EndStateInterrupted
//     with a nil error. Records already buffered remain valid server state.
//   - On success the page is appended to the buffer, the new offset (or its
//     absence) is persisted, and the base timestamp is advanced to just below
//     the oldest record seen, so a restart never re-reads a full page it
//     already applied.
//   - An empty continuation offset ends the sequence: lastModified is set to
//     the server timestamp captured from info and the step ends
//     EndStateComplete; otherwise EndStateIncomplete.
//
// Any transport or storage error other than the 412 case is returned as-is
// with the cursor untouched, so the same step can be retried.
func (d *BatchingDownloader) Go(ctx context.Context, info models.ServerInfo, limit int) (models.EndState, error) {
	serverModified, ok := info.Modified(d.collection)
	if !ok {
		d.log.Debug().Msg("collection absent from server info, nothing to fetch")
		return models.EndStateNoNewData, nil
	}

	lastModified, err := d.cursors.LastModified(ctx)
	if err != nil {
		return models.EndStateUnknown, fmt.Errorf("read lastModified: %w", err)
	}
	if serverModified == lastModified {
		d.log.Debug().Uint64("server_modified", uint64(serverModified)).Msg("collection unchanged since last run")
		return models.EndStateNoNewData, nil
	}

	since, err := d.cursors.BaseTimestamp(ctx)
	if err != nil {
		return models.EndStateUnknown, fmt.Errorf("read baseTimestamp: %w", err)
	}
	offset, err := d.cursors.NextOffset(ctx)
	if err != nil {
		return models.EndStateUnknown, fmt.Errorf("read nextOffset: %w", err)
	}

	resp, err := d.client.FetchSince(ctx, d.collection, since, limit, offset)
	if errors.Is(err, adapter.ErrPreconditionFailed) {
		d.log.Warn().Str("offset", offset).Msg("continuation offset invalidated by concurrent server write")
		if clearErr := d.cursors.ClearNextOffset(ctx); clearErr != nil {
			return models.EndStateUnknown, fmt.Errorf("clear invalidated offset: %w", clearErr)
		}
		return models.EndStateInterrupted, nil
	}
	if err != nil {
		return models.EndStateUnknown, fmt.Errorf("fetch page of %s: %w", d.collection, err)
	}

	d.buffer = append(d.buffer, resp.Records...)

	if resp.NextOffset != "" {
		if err := d.cursors.SetNextOffset(ctx, resp.NextOffset); err != nil {
			return models.EndStateUnknown, fmt.Errorf("persist nextOffset: %w", err)
		}
	} else if offset != "" {
		if err := d.cursors.ClearNextOffset(ctx); err != nil {
			return models.EndStateUnknown, fmt.Errorf("clear nextOffset: %w", err)
		}
	}

	// Records arrive newest first, so the last record of the page is the
	// oldest seen so far. Advancing the low-water-mark to just below it keeps
	// a restarted sequence from re-fetching already-consumed pages. The mark
	// only ever moves forward.
	if n := len(resp.Records); n > 0 {
		if last := resp.Records[n-1].Modified; last > 0 {
			if newBase := last - 1; newBase > since {
				if err := d.cursors.SetBaseTimestamp(ctx, newBase); err != nil {
					return models.EndStateUnknown, fmt.Errorf("advance baseTimestamp: %w", err)
				}
			}
		}
	}

	if resp.NextOffset != "" {
		d.log.Debug().Int("records", len(resp.Records)).Str("next_offset", resp.NextOffset).Msg("page fetched, sequence continues")
		return models.EndStateIncomplete, nil
	}

	if err := d.cursors.SetLastModified(ctx, serverModified); err != nil {
		return models.EndStateUnknown, fmt.Errorf("persist lastModified: %w", err)
	}

	d.log.Debug().Int("records", len(resp.Records)).Uint64("last_modified", uint64(serverModified)).Msg("page sequence complete")
	return models.EndStateComplete, nil
}

// Retrieve hands over everything accumulated since the previous Retrieve and
// empties the buffer.
func (d *BatchingDownloader) Retrieve() []models.Record {
	records := d.buffer
	d.buffer = nil
	return records
}

// Reset durably zeroes the cursor triple and discards buffered records.
// Called when the server signals a wipe or a storage format change; the next
// run re-downloads the collection from scratch.
func (d *BatchingDownloader) Reset(ctx context.Context) error {
	d.buffer = nil
	if err := d.cursors.Reset(ctx); err != nil {
		return fmt.Errorf("reset cursor state of %s: %w", d.collection, err)
	}
	d.log.Info().Msg("cursor state reset, next run starts from scratch")
	return nil
}
