// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mirror-sync/internal/crypto"
	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/store"
	"github.com/MKhiriev/go-mirror-sync/models"
)

// MirrorOrchestrator drives a [BatchDownloader] to completion for one
// collection and applies each accumulated batch to the mirror. Batches are
// applied incrementally between page fetches, so memory stays bounded by the
// batch limit and an aborted run leaves every applied batch durable.
type MirrorOrchestrator struct {
	downloader BatchDownloader
	storage    store.MirrorStorage
	codec      crypto.Codec
	greenLight GreenLight
	listeners  []ProgressListener
	collection string
	batchLimit int
	log        *logger.Logger
}

// NewMirrorOrchestrator wires an orchestrator for collection. greenLight may
// be nil, in which case the run never aborts voluntarily.
func NewMirrorOrchestrator(downloader BatchDownloader, storage store.MirrorStorage, codec crypto.Codec, greenLight GreenLight, collection string, batchLimit int, log *logger.Logger) *MirrorOrchestrator {
	if greenLight == nil {
		greenLight = func() bool { return true }
	}
	return &MirrorOrchestrator{
		downloader: downloader,
		storage:    storage,
		codec:      codec,
		greenLight: greenLight,
		collection: collection,
		batchLimit: batchLimit,
		log:        log.WithCollection(collection),
	}
}

// AddListener registers a progress listener. Not safe to call while a run is
// in flight.
func (o *MirrorOrchestrator) AddListener(l ProgressListener) {
	o.listeners = append(o.listeners, l)
}

// RemoveListener unregisters a previously added listener.
func (o *MirrorOrchestrator) RemoveListener(l ProgressListener) {
	for i, existing := range o.listeners {
		if existing == l {
			o.listeners = append(o.listeners[:i], o.listeners[i+1:]...)
			return
		}
	}
}

// Run executes the fetch/apply loop until the downloader reports a terminal
// state, the green light goes out, or ctx is cancelled.
//
// Outcomes per downloader step:
//   - NoNewData: return nil without touching the mirror.
//   - Complete: apply the final batch, return nil.
//   - Interrupted: apply what was buffered before the conflict, then return
//     nil. The records are valid server state and applying them is
//     idempotent; the next run finishes the job against the fresh snapshot.
//   - Incomplete: apply the batch and loop for the next page.
//
// The loop is iterative on purpose: a large first sync may take hundreds of
// steps and must not grow the stack with them.
func (o *MirrorOrchestrator) Run(ctx context.Context, info models.ServerInfo) error {
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("sync of %s cancelled: %w", o.collection, err)
		}
		if !o.greenLight() {
			o.log.Info().Msg("green light withdrawn, aborting run")
			return nil
		}

		state, err := o.downloader.Go(ctx, info, o.batchLimit)
		if err != nil {
			return fmt.Errorf("download step for %s: %w", o.collection, err)
		}

		switch state {
		case models.EndStateNoNewData:
			o.log.Debug().Msg("no new data")
			return nil
		case models.EndStateComplete:
			return o.applyBuffered(ctx)
		case models.EndStateInterrupted:
			o.log.Warn().Msg("sequence interrupted by concurrent server write, applying buffered records and stopping")
			return o.applyBuffered(ctx)
		case models.EndStateIncomplete:
			if err := o.applyBuffered(ctx); err != nil {
				return err
			}
		default:
			return fmt.Errorf("downloader returned unexpected state %s for %s", state, o.collection)
		}
	}
}

// applyBuffered drains the downloader's buffer, projects each record into a
// mirror item and merges the batch into the mirror. Records that fail to
// decode or validate are logged and skipped; one broken record must never
// abort a run.
func (o *MirrorOrchestrator) applyBuffered(ctx context.Context) error {
	records := o.downloader.Retrieve()
	if len(records) == 0 {
		return nil
	}

	items := make([]models.MirrorItem, 0, len(records))
	for _, rec := range records {
		payload, err := o.codec.DecodePayload(rec)
		if err != nil {
			o.log.Warn().Err(err).Str("record_id", rec.ID).Msg("skipping undecodable record")
			continue
		}

		item, err := models.NewMirrorItem(payload, rec.Modified)
		if err != nil {
			o.log.Warn().Err(err).Str("record_id", rec.ID).Msg("skipping invalid record")
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	if err := o.storage.ApplyBatch(ctx, items); err != nil {
		return fmt.Errorf("apply batch of %d items to %s mirror: %w", len(items), o.collection, err)
	}

	o.log.Debug().Int("applied", len(items)).Int("skipped", len(records)-len(items)).Msg("batch applied")
	for _, l := range o.listeners {
		l.BatchApplied(o.collection, len(items))
	}
	return nil
}

// OnStorageFormatChanged reacts to a server-side storage format migration:
// all cursor state is discarded so the next run re-downloads everything.
func (o *MirrorOrchestrator) OnStorageFormatChanged(ctx context.Context) error {
	return o.downloader.Reset(ctx)
}

// OnWipeApplied reacts to a server-side wipe of the collection. Same cursor
// consequence as a format change; clearing the mirror itself is the storage
// owner's concern.
func (o *MirrorOrchestrator) OnWipeApplied(ctx context.Context) error {
	return o.downloader.Reset(ctx)
}
