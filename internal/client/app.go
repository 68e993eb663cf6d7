// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-mirror-sync/internal/adapter"
	"github.com/MKhiriev/go-mirror-sync/internal/config"
	"github.com/MKhiriev/go-mirror-sync/internal/crypto"
	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/internal/service"
	"github.com/MKhiriev/go-mirror-sync/internal/store"
	"github.com/MKhiriev/go-mirror-sync/internal/workers"
	"github.com/MKhiriev/go-mirror-sync/models"
)

// App is the demo mirror process: it downloads the configured collections
// into in-memory mirrors and keeps them fresh until interrupted. Production
// embedders wire the engine against their own mirror tables instead.
type App struct {
	cfg     *config.ClientConfig
	log     *logger.Logger
	db      *store.DB
	client  adapter.CollectionClient
	group   *workers.Group
	job     *service.SyncJob
	mirrors map[string]*store.MemoryMirrorStorage
}

// NewApp assembles the full engine from configuration: SQLite-backed cursor
// stores, payload codec, HTTP collection client and one synchronizer per
// configured collection.
func NewApp() (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewLogger("mirror-client")
	// The instance ID separates interleaved runs in a shared log sink.
	log = &logger.Logger{Logger: log.With().Str("instance", uuid.NewString()).Logger()}

	ctx := context.Background()
	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("open cursor database: %w", err)
	}
	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate cursor database: %w", err)
	}

	codec, err := buildCodec(cfg.App.SyncKey)
	if err != nil {
		return nil, err
	}

	collectionClient, err := adapter.NewHTTPCollectionClient(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("build collection client: %w", err)
	}

	app := &App{
		cfg:     cfg,
		log:     log,
		db:      db,
		client:  collectionClient,
		group:   workers.NewGroup(log),
		mirrors: make(map[string]*store.MemoryMirrorStorage),
	}

	for _, collection := range splitCollections(cfg.Sync.Collection) {
		mirror := store.NewMemoryMirrorStorage(service.MirrorSchemaVersion)
		cursors := store.NewSQLCursorStore(db, collection, log)
		sync := service.NewSynchronizer(collectionClient, cursors, mirror, codec,
			nil, nil, collection, cfg.Sync.BatchLimit, log)
		sync.AddListener(&logListener{log: log})

		app.mirrors[collection] = mirror
		app.group.Add(collection, sync)
	}

	app.job = service.NewSyncJob(collectionClient, &groupRunner{app: app}, log)

	return app, nil
}

// Run performs an initial sync of every collection, then keeps syncing on the
// configured interval until the process receives SIGINT or SIGTERM.
func (a *App) Run() error {
	defer a.db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	info, err := a.client.InfoCollections(ctx)
	if err != nil {
		return fmt.Errorf("initial collection summary: %w", err)
	}
	a.reportResults(a.group.RunAll(ctx, info))

	a.job.Start(ctx, a.cfg.Sync.Interval)
	defer a.job.Stop()

	<-ctx.Done()
	a.log.Info().Msg("shutting down")
	return nil
}

// groupRunner adapts the collection group to [service.SyncRunner] for the
// periodic job: it fans the summary out to all collections and folds the
// outcomes into one result.
type groupRunner struct {
	app *App
}

func (r *groupRunner) Run(ctx context.Context, info models.ServerInfo) models.SyncResult {
	results := r.app.group.RunAll(ctx, info)
	r.app.reportResults(results)

	for _, result := range results {
		if result.Status == models.SyncFailed {
			return result
		}
	}
	return models.SyncCompletedResult()
}

func (a *App) reportResults(results map[string]models.SyncResult) {
	for collection, result := range results {
		event := a.log.Info()
		if result.Status == models.SyncFailed {
			event = a.log.Warn().Err(result.Err)
		}
		event.
			Str("collection", collection).
			Str("status", result.Status.String()).
			Int("mirror_size", a.mirrors[collection].Len()).
			Msg("sync finished")
	}
}

// buildCodec selects the payload codec: a hex sync key enables encrypted
// records, an empty key selects plain JSON.
func buildCodec(syncKey string) (crypto.Codec, error) {
	if syncKey == "" {
		return crypto.NewPlainCodec(), nil
	}

	key, err := hex.DecodeString(syncKey)
	if err != nil {
		return nil, fmt.Errorf("sync key is not hex: %w", err)
	}
	codec, err := crypto.NewKeyBundleCodec(key)
	if err != nil {
		return nil, fmt.Errorf("build key bundle codec: %w", err)
	}
	return codec, nil
}

// splitCollections parses the comma-separated collection list from config.
func splitCollections(raw string) []string {
	parts := strings.Split(raw, ",")
	collections := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			collections = append(collections, p)
		}
	}
	return collections
}

// logListener logs apply progress; the demo has no UI to drive.
type logListener struct {
	log *logger.Logger
}

func (l *logListener) BatchApplied(collection string, applied int) {
	l.log.Debug().Str("collection", collection).Int("applied", applied).Msg("batch applied")
}
