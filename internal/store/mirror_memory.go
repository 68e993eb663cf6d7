// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-mirror-sync/models"
)

// MemoryMirrorStorage is an in-memory [MirrorStorage]. It implements the
// idempotent merge contract and is used by tests and by the demo binary;
// production embedders supply their own mirror table.
type MemoryMirrorStorage struct {
	version int

	mu      sync.RWMutex
	items   map[string]models.MirrorItem
	applies int
}

// NewMemoryMirrorStorage returns an empty mirror reporting the given schema
// version.
func NewMemoryMirrorStorage(version int) *MemoryMirrorStorage {
	return &MemoryMirrorStorage{
		version: version,
		items:   make(map[string]models.MirrorItem),
	}
}

// Version implements [MirrorStorage].
func (m *MemoryMirrorStorage) Version() int {
	return m.version
}

// ApplyBatch implements [MirrorStorage]. An incoming item replaces the stored
// one only when its server-modified timestamp is not older, which makes
// duplicate redelivery after a resume or conflict retry a no-op.
func (m *MemoryMirrorStorage) ApplyBatch(_ context.Context, items []models.MirrorItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.applies++
	for _, item := range items {
		existing, ok := m.items[item.GUID]
		if ok && existing.ServerModified > item.ServerModified {
			continue
		}
		m.items[item.GUID] = item
	}

	return nil
}

// Get returns the stored item for guid, if any.
func (m *MemoryMirrorStorage) Get(guid string) (models.MirrorItem, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.items[guid]
	return item, ok
}

// Len reports the number of stored items.
func (m *MemoryMirrorStorage) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Applies reports how many ApplyBatch calls the mirror has received.
func (m *MemoryMirrorStorage) Applies() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.applies
}

// Items returns a copy of the stored items keyed by GUID.
func (m *MemoryMirrorStorage) Items() map[string]models.MirrorItem {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]models.MirrorItem, len(m.items))
	for guid, item := range m.items {
		out[guid] = item
	}
	return out
}
