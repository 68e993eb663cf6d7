// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/models"
)

// Group fans one server summary out to the registered per-collection syncers.
type Group struct {
	syncers map[string]Syncer
	log     *logger.Logger
}

// NewGroup returns an empty group.
func NewGroup(log *logger.Logger) *Group {
	return &Group{syncers: make(map[string]Syncer), log: log}
}

// Add registers the syncer responsible for collection, replacing any previous
// registration. Not safe to call concurrently with RunAll.
func (g *Group) Add(collection string, s Syncer) {
	g.syncers[collection] = s
}

// RunAll runs every registered syncer concurrently against info and returns
// the outcomes keyed by collection. A failed collection never prevents the
// others from syncing; the caller inspects the result map for failures.
func (g *Group) RunAll(ctx context.Context, info models.ServerInfo) map[string]models.SyncResult {
	results := make(map[string]models.SyncResult, len(g.syncers))

	var mu sync.Mutex
	var wg sync.WaitGroup
	for collection, syncer := range g.syncers {
		wg.Add(1)
		go func(collection string, syncer Syncer) {
			defer wg.Done()
			result := syncer.Run(ctx, info)
			if result.Status == models.SyncFailed {
				g.log.Warn().Err(result.Err).Str("collection", collection).Msg("collection sync failed")
			}

			mu.Lock()
			results[collection] = result
			mu.Unlock()
		}(collection, syncer)
	}
	wg.Wait()

	return results
}
