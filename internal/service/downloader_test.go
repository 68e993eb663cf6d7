// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-mirror-sync/internal/adapter"
	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/mock"
	"github.com/MKhiriev/go-mirror-sync/internal/store"
	"github.com/MKhiriev/go-mirror-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCollection = "bookmarks"

func serverInfo(modified models.Timestamp) models.ServerInfo {
	return models.ServerInfo{Collections: map[string]models.Timestamp{testCollection: modified}}
}

// wireRecord builds a plain-JSON bookmark record with the given GUID and
// modification timestamp.
func wireRecord(guid string, modified models.Timestamp) models.Record {
	payload := fmt.Sprintf(`{"id":%q,"type":"bookmark","parentid":"toolbar","title":%q,"bmkUri":"https://example.org/%s"}`, guid, guid, guid)
	return models.Record{
		ID:         guid,
		Collection: testCollection,
		Payload:    json.RawMessage(payload),
		Modified:   modified,
	}
}

func newDownloader(t *testing.T) (*BatchingDownloader, *mock.MockCollectionClient, *store.MemoryCursorStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mock.NewMockCollectionClient(ctrl)
	cursors := store.NewMemoryCursorStore()
	return NewBatchingDownloader(client, cursors, testCollection, logger.Nop()), client, cursors
}

// ── no new data ──────────────────────────────────────────────────────────────

func TestBatchingDownloader_Go_CollectionAbsent(t *testing.T) {
	d, _, _ := newDownloader(t)

	state, err := d.Go(context.Background(), models.ServerInfo{Collections: map[string]models.Timestamp{"history": 100}}, 100)

	require.NoError(t, err)
	assert.Equal(t, models.EndStateNoNewData, state)
	assert.Empty(t, d.Retrieve())
}

func TestBatchingDownloader_Go_UnchangedCollection_NoNetworkCall(t *testing.T) {
	d, _, cursors := newDownloader(t)
	require.NoError(t, cursors.SetLastModified(context.Background(), 2000))

	// No FetchSince expectation: any network call fails the test.
	state, err := d.Go(context.Background(), serverInfo(2000), 100)

	require.NoError(t, err)
	assert.Equal(t, models.EndStateNoNewData, state)
}

// ── single page ──────────────────────────────────────────────────────────────

func TestBatchingDownloader_Go_SinglePageComplete(t *testing.T) {
	d, client, cursors := newDownloader(t)
	ctx := context.Background()

	client.EXPECT().
		FetchSince(ctx, testCollection, models.Timestamp(0), 100, "").
		Return(&models.FetchResponse{
			Records:      []models.Record{wireRecord("b", 2000), wireRecord("a", 1500)},
			LastModified: 2000,
		}, nil)

	state, err := d.Go(ctx, serverInfo(2000), 100)

	require.NoError(t, err)
	assert.Equal(t, models.EndStateComplete, state)

	records := d.Retrieve()
	require.Len(t, records, 2)
	assert.Equal(t, "b", records[0].ID)

	lastModified, err := cursors.LastModified(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Timestamp(2000), lastModified)

	// Low-water-mark sits just below the oldest record of the page.
	base, err := cursors.BaseTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Timestamp(1499), base)

	offset, err := cursors.NextOffset(ctx)
	require.NoError(t, err)
	assert.Empty(t, offset)
}

func TestBatchingDownloader_Retrieve_DrainsBuffer(t *testing.T) {
	d, client, _ := newDownloader(t)
	ctx := context.Background()

	client.EXPECT().
		FetchSince(ctx, testCollection, models.Timestamp(0), 100, "").
		Return(&models.FetchResponse{Records: []models.Record{wireRecord("a", 1000)}, LastModified: 1000}, nil)

	_, err := d.Go(ctx, serverInfo(1000), 100)
	require.NoError(t, err)

	assert.Len(t, d.Retrieve(), 1)
	assert.Empty(t, d.Retrieve(), "second drain must be empty")
}

// ── multi page ───────────────────────────────────────────────────────────────

func TestBatchingDownloader_Go_MultiPage_PersistsOffsetBetweenSteps(t *testing.T) {
	d, client, cursors := newDownloader(t)
	ctx := context.Background()

	client.EXPECT().
		FetchSince(ctx, testCollection, models.Timestamp(0), 2, "").
		Return(&models.FetchResponse{
			Records:      []models.Record{wireRecord("d", 4000), wireRecord("c", 3000)},
			LastModified: 4000,
			NextOffset:   "3000:2",
		}, nil)

	state, err := d.Go(ctx, serverInfo(4000), 2)
	require.NoError(t, err)
	assert.Equal(t, models.EndStateIncomplete, state)

	offset, err := cursors.NextOffset(ctx)
	require.NoError(t, err)
	assert.Equal(t, "3000:2", offset)

	// lastModified must not be touched before the sequence completes.
	lastModified, err := cursors.LastModified(ctx)
	require.NoError(t, err)
	assert.Zero(t, lastModified)

	// The next step continues from the same since with the stored offset.
	client.EXPECT().
		FetchSince(ctx, testCollection, models.Timestamp(2999), 2, "3000:2").
		Return(&models.FetchResponse{
			Records:      []models.Record{wireRecord("b", 2000), wireRecord("a", 1000)},
			LastModified: 4000,
		}, nil)

	state, err = d.Go(ctx, serverInfo(4000), 2)
	require.NoError(t, err)
	assert.Equal(t, models.EndStateComplete, state)

	offset, err = cursors.NextOffset(ctx)
	require.NoError(t, err)
	assert.Empty(t, offset)

	lastModified, err = cursors.LastModified(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Timestamp(4000), lastModified)
}

func TestBatchingDownloader_Go_ResumesFromPersistedCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockCollectionClient(ctrl)
	cursors := store.NewMemoryCursorStore()
	ctx := context.Background()

	// Cursor state left behind by a previous process.
	require.NoError(t, cursors.SetBaseTimestamp(ctx, 1234))
	require.NoError(t, cursors.SetNextOffset(ctx, "5000:4"))

	client.EXPECT().
		FetchSince(ctx, testCollection, models.Timestamp(1234), 100, "5000:4").
		Return(&models.FetchResponse{Records: []models.Record{wireRecord("a", 1300)}, LastModified: 5000}, nil)

	d := NewBatchingDownloader(client, cursors, testCollection, logger.Nop())
	state, err := d.Go(ctx, serverInfo(5000), 100)

	require.NoError(t, err)
	assert.Equal(t, models.EndStateComplete, state)
}

// ── interruption and errors ──────────────────────────────────────────────────

func TestBatchingDownloader_Go_PreconditionFailed_ClearsOffset(t *testing.T) {
	d, client, cursors := newDownloader(t)
	ctx := context.Background()

	require.NoError(t, cursors.SetNextOffset(ctx, "stale"))

	client.EXPECT().
		FetchSince(ctx, testCollection, models.Timestamp(0), 100, "stale").
		Return(nil, fmt.Errorf("fetch: %w", adapter.ErrPreconditionFailed))

	state, err := d.Go(ctx, serverInfo(9000), 100)

	require.NoError(t, err, "a 412 is an outcome, not an error")
	assert.Equal(t, models.EndStateInterrupted, state)

	offset, err := cursors.NextOffset(ctx)
	require.NoError(t, err)
	assert.Empty(t, offset)
}

func TestBatchingDownloader_Go_TransportError_LeavesCursorUntouched(t *testing.T) {
	d, client, cursors := newDownloader(t)
	ctx := context.Background()

	require.NoError(t, cursors.SetNextOffset(ctx, "2000:2"))
	require.NoError(t, cursors.SetBaseTimestamp(ctx, 500))

	client.EXPECT().
		FetchSince(ctx, testCollection, models.Timestamp(500), 100, "2000:2").
		Return(nil, errors.New("connection refused"))

	state, err := d.Go(ctx, serverInfo(9000), 100)

	require.Error(t, err)
	assert.Equal(t, models.EndStateUnknown, state)

	offset, _ := cursors.NextOffset(ctx)
	assert.Equal(t, "2000:2", offset, "failed step must be retryable from the same cursor")
	base, _ := cursors.BaseTimestamp(ctx)
	assert.Equal(t, models.Timestamp(500), base)
}

// ── base timestamp monotonicity ──────────────────────────────────────────────

func TestBatchingDownloader_Go_BaseTimestampNeverMovesBackwards(t *testing.T) {
	d, client, cursors := newDownloader(t)
	ctx := context.Background()

	require.NoError(t, cursors.SetBaseTimestamp(ctx, 5000))

	// A page whose oldest record is older than the current mark must not
	// lower it.
	client.EXPECT().
		FetchSince(ctx, testCollection, models.Timestamp(5000), 100, "").
		Return(&models.FetchResponse{Records: []models.Record{wireRecord("a", 4000)}, LastModified: 9000}, nil)

	_, err := d.Go(ctx, serverInfo(9000), 100)
	require.NoError(t, err)

	base, err := cursors.BaseTimestamp(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Timestamp(5000), base)
}

func TestBatchingDownloader_Go_EmptyPageComplete(t *testing.T) {
	d, client, cursors := newDownloader(t)
	ctx := context.Background()

	client.EXPECT().
		FetchSince(ctx, testCollection, models.Timestamp(0), 100, "").
		Return(&models.FetchResponse{LastModified: 7000}, nil)

	state, err := d.Go(ctx, serverInfo(7000), 100)

	require.NoError(t, err)
	assert.Equal(t, models.EndStateComplete, state)
	assert.Empty(t, d.Retrieve())

	lastModified, err := cursors.LastModified(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Timestamp(7000), lastModified)
}

// ── Reset ────────────────────────────────────────────────────────────────────

func TestBatchingDownloader_Reset(t *testing.T) {
	d, client, cursors := newDownloader(t)
	ctx := context.Background()

	client.EXPECT().
		FetchSince(ctx, testCollection, models.Timestamp(0), 100, "").
		Return(&models.FetchResponse{
			Records:    []models.Record{wireRecord("a", 1000)},
			NextOffset: "1000:1",
		}, nil)

	_, err := d.Go(ctx, serverInfo(1000), 100)
	require.NoError(t, err)

	require.NoError(t, d.Reset(ctx))

	assert.Empty(t, d.Retrieve(), "buffered records are discarded")
	offset, _ := cursors.NextOffset(ctx)
	assert.Empty(t, offset)
	base, _ := cursors.BaseTimestamp(ctx)
	assert.Zero(t, base)
	lastModified, _ := cursors.LastModified(ctx)
	assert.Zero(t, lastModified)
}
