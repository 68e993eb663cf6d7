// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/mock"
	"github.com/MKhiriev/go-mirror-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// spySyncRunner counts Run calls and returns a fixed result.
type spySyncRunner struct {
	calls  atomic.Int64
	result models.SyncResult
}

func (s *spySyncRunner) Run(_ context.Context, _ models.ServerInfo) models.SyncResult {
	s.calls.Add(1)
	return s.result
}

func newTickingJob(t *testing.T, runner SyncRunner) *SyncJob {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mock.NewMockCollectionClient(ctrl)
	client.EXPECT().InfoCollections(gomock.Any()).
		Return(serverInfo(1000), nil).AnyTimes()
	return NewSyncJob(client, runner, logger.Nop())
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestSyncJob_Start_RunsPeriodically(t *testing.T) {
	spy := &spySyncRunner{result: models.SyncCompletedResult()}
	job := newTickingJob(t, spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "expected several ticks, got %d", got)
}

func TestSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncRunner{result: models.SyncCompletedResult()}
	job := newTickingJob(t, spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no ticks after Stop")
}

func TestSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := newTickingJob(t, &spySyncRunner{})
	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := newTickingJob(t, &spySyncRunner{})
	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()
	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_Start_DefaultInterval(t *testing.T) {
	spy := &spySyncRunner{result: models.SyncCompletedResult()}
	job := newTickingJob(t, spy)
	ctx, cancel := context.WithCancel(context.Background())

	// interval <= 0 falls back to 5 minutes, so 20ms sees no ticks.
	job.Start(ctx, 0)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Zero(t, spy.calls.Load())
}

func TestSyncJob_ContextCancel_StopsJob(t *testing.T) {
	spy := &spySyncRunner{result: models.SyncCompletedResult()}
	job := newTickingJob(t, spy)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

// ── error resilience ─────────────────────────────────────────────────────────

func TestSyncJob_SyncFailure_DoesNotStopJob(t *testing.T) {
	spy := &spySyncRunner{result: models.SyncFailedResult(errors.New("boom"))}
	job := newTickingJob(t, spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "failed runs must not stop the ticker: %d", got)
}

func TestSyncJob_InfoCollectionsFailure_SkipsTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockCollectionClient(ctrl)
	client.EXPECT().InfoCollections(gomock.Any()).
		Return(models.ServerInfo{}, errors.New("server unavailable")).AnyTimes()

	spy := &spySyncRunner{}
	job := NewSyncJob(client, spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	job.Stop()

	assert.Zero(t, spy.calls.Load(), "the synchronizer must not run without a collection summary")
}

func TestSyncJob_Restart_KeepsTicking(t *testing.T) {
	spy := &spySyncRunner{result: models.SyncCompletedResult()}
	job := newTickingJob(t, spy)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	require.Greater(t, callsBefore, int64(0))

	// Start again on the same job; the previous goroutine is stopped first.
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore)
}
