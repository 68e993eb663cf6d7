// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-mirror-sync/models"
)

// MemoryCursorStore is a [CursorStore] that lives entirely in memory. It is
// used in tests and by embedders that persist cursor state through their own
// preference layer. The mutex is not required by the single-writer design but
// keeps concurrent reads from other collections' goroutines safe for free.
type MemoryCursorStore struct {
	mu            sync.RWMutex
	nextOffset    string
	baseTimestamp models.Timestamp
	lastModified  models.Timestamp
}

// NewMemoryCursorStore returns an empty in-memory cursor store.
func NewMemoryCursorStore() *MemoryCursorStore {
	return &MemoryCursorStore{}
}

func (s *MemoryCursorStore) NextOffset(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextOffset, nil
}

func (s *MemoryCursorStore) SetNextOffset(_ context.Context, offset string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextOffset = offset
	return nil
}

func (s *MemoryCursorStore) ClearNextOffset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextOffset = ""
	return nil
}

func (s *MemoryCursorStore) BaseTimestamp(_ context.Context) (models.Timestamp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseTimestamp, nil
}

func (s *MemoryCursorStore) SetBaseTimestamp(_ context.Context, ts models.Timestamp) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseTimestamp = ts
	return nil
}

func (s *MemoryCursorStore) LastModified(_ context.Context) (models.Timestamp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastModified, nil
}

func (s *MemoryCursorStore) SetLastModified(_ context.Context, ts models.Timestamp) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastModified = ts
	return nil
}

func (s *MemoryCursorStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextOffset = ""
	s.baseTimestamp = 0
	s.lastModified = 0
	return nil
}
