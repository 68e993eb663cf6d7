// Package workers runs the synchronizers of several independent collections
// as a unit. Collections share no cursor state, so their syncs run
// concurrently; the group exists to fan a single server summary out to all of
// them and collect the per-collection outcomes.
package workers

import (
	"context"

	"github.com/MKhiriev/go-mirror-sync/models"
)

// Syncer performs one sync attempt for one collection against the server
// state described by info. The service package's Synchronizer satisfies it.
type Syncer interface {
	Run(ctx context.Context, info models.ServerInfo) models.SyncResult
}
