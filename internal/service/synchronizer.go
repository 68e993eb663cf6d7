// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mirror-sync/internal/adapter"
	"github.com/MKhiriev/go-mirror-sync/internal/crypto"
	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/store"
	"github.com/MKhiriev/go-mirror-sync/models"
)

// MirrorSchemaVersion is the mirror schema generation this engine produces.
// A mirror reporting any other version must be migrated (or rebuilt) before
// syncing; the synchronizer refuses to write into it.
const MirrorSchemaVersion = 2

// Synchronizer is the top-level facade for one collection: it checks
// preconditions, builds a fresh downloader and orchestrator per attempt and
// folds the outcome into a [models.SyncResult].
//
// Building per attempt keeps the engine free of cross-run state beyond what
// the cursor store persists, which is exactly the state that must survive.
type Synchronizer struct {
	client     adapter.CollectionClient
	cursors    store.CursorStore
	storage    store.MirrorStorage
	codec      crypto.Codec
	ready      ReadyChecker
	greenLight GreenLight
	listeners  []ProgressListener
	collection string
	batchLimit int
	log        *logger.Logger
}

// NewSynchronizer wires a synchronizer for collection. ready and greenLight
// may be nil; a nil ready never defers and a nil greenLight never aborts.
func NewSynchronizer(client adapter.CollectionClient, cursors store.CursorStore, storage store.MirrorStorage, codec crypto.Codec, ready ReadyChecker, greenLight GreenLight, collection string, batchLimit int, log *logger.Logger) *Synchronizer {
	return &Synchronizer{
		client:     client,
		cursors:    cursors,
		storage:    storage,
		codec:      codec,
		ready:      ready,
		greenLight: greenLight,
		collection: collection,
		batchLimit: batchLimit,
		log:        log.WithCollection(collection),
	}
}

// AddListener registers a progress listener for subsequent runs.
func (s *Synchronizer) AddListener(l ProgressListener) {
	s.listeners = append(s.listeners, l)
}

// Run performs one full sync attempt against the server state described by
// info and classifies the outcome.
//
// The attempt does not start at all — SyncNotStarted — when the mirror
// schema version is unexpected or the ready checker names a reason to defer.
// A started attempt ends SyncCompleted or SyncFailed; an attempt the
// orchestrator abandoned because the green light went out still counts as
// completed, because everything applied so far is durable and consistent.
func (s *Synchronizer) Run(ctx context.Context, info models.ServerInfo) models.SyncResult {
	if v := s.storage.Version(); v != MirrorSchemaVersion {
		reason := fmt.Sprintf("mirror schema version %d, expected %d", v, MirrorSchemaVersion)
		s.log.Warn().Str("reason", reason).Msg("sync not started")
		return models.SyncNotStartedResult(reason)
	}

	if s.ready != nil {
		if reason := s.ready.ReasonToDefer(ctx); reason != "" {
			s.log.Info().Str("reason", reason).Msg("sync deferred")
			return models.SyncNotStartedResult(reason)
		}
	}

	downloader := NewBatchingDownloader(s.client, s.cursors, s.collection, s.log)
	orchestrator := NewMirrorOrchestrator(downloader, s.storage, s.codec, s.greenLight, s.collection, s.batchLimit, s.log)
	for _, l := range s.listeners {
		orchestrator.AddListener(l)
	}

	if err := orchestrator.Run(ctx, info); err != nil {
		s.log.Error().Err(err).Msg("sync failed")
		return models.SyncFailedResult(err)
	}

	s.log.Info().Msg("sync completed")
	return models.SyncCompletedResult()
}

// OnStorageFormatChanged discards all cursor state for the collection so the
// next run re-downloads from scratch.
func (s *Synchronizer) OnStorageFormatChanged(ctx context.Context) error {
	return NewBatchingDownloader(s.client, s.cursors, s.collection, s.log).Reset(ctx)
}

// OnWipeApplied discards all cursor state after a server-side wipe.
func (s *Synchronizer) OnWipeApplied(ctx context.Context) error {
	return NewBatchingDownloader(s.client, s.cursors, s.collection, s.log).Reset(ctx)
}
