// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-mirror-sync/internal/adapter"
	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/models"
)

// SyncRunner is the slice of the synchronizer the periodic job needs.
type SyncRunner interface {
	Run(ctx context.Context, info models.ServerInfo) models.SyncResult
}

// SyncJob periodically refreshes the server's collection summary and hands it
// to a synchronizer. The job is idle until Start is called.
type SyncJob struct {
	client       adapter.CollectionClient
	synchronizer SyncRunner
	log          *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a SyncJob driving synchronizer off the given client.
func NewSyncJob(client adapter.CollectionClient, synchronizer SyncRunner, log *logger.Logger) *SyncJob {
	return &SyncJob{client: client, synchronizer: synchronizer, log: log}
}

// Start stops any previously running job, then launches a background
// goroutine that syncs every interval. If interval is zero or negative it
// defaults to 5 minutes. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *SyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.syncOnce(jobCtx)
			}
		}
	}()
}

// syncOnce performs one tick: fetch the collection summary, run the
// synchronizer, log the outcome. Errors never stop the job; the next tick
// retries from scratch.
func (j *SyncJob) syncOnce(ctx context.Context) {
	info, err := j.client.InfoCollections(ctx)
	if err != nil {
		j.log.Warn().Err(err).Msg("collection summary fetch failed, will retry next tick")
		return
	}

	result := j.synchronizer.Run(ctx, info)
	switch result.Status {
	case models.SyncFailed:
		j.log.Warn().Err(result.Err).Msg("periodic sync failed")
	case models.SyncNotStarted:
		j.log.Info().Str("reason", result.Reason).Msg("periodic sync skipped")
	default:
		j.log.Debug().Msg("periodic sync completed")
	}
}

// Stop cancels the background goroutine's context and blocks until it has
// fully exited. Safe to call when the job is not running.
func (j *SyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
