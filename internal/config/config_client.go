// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"time"
)

// Defaults applied by GetClientConfig when the merged configuration leaves a
// sync setting unset.
const (
	DefaultCollection   = "bookmarks"
	DefaultBatchLimit   = 100
	DefaultSyncInterval = 5 * time.Minute
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// SyncKey is the hex-encoded account sync key; empty selects the plain
	// JSON codec.
	SyncKey string
	// Version is the library version string.
	Version string
}

// ClientAdapter holds network settings used by the collection client.
type ClientAdapter struct {
	// HTTPAddress is the storage server base address.
	HTTPAddress string
	// Token is the bearer token for outbound requests.
	Token string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path used for cursor-state persistence.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync contains download-loop settings.
type ClientSync struct {
	// Collection is the server-side collection to mirror.
	Collection string
	// BatchLimit is the page size for batched downloads.
	BatchLimit int
	// Interval defines how often the background sync job runs.
	Interval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains local storage settings.
	Storage ClientStorage
	// Sync contains download-loop settings.
	Sync ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the sync runtime, fills in defaults for unset sync settings,
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			SyncKey: cfg.App.SyncKey,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			Token:          cfg.Adapter.Token,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Sync: ClientSync{
			Collection: cfg.Sync.Collection,
			BatchLimit: cfg.Sync.BatchLimit,
			Interval:   cfg.Sync.Interval,
		},
	}

	if clientCfg.Sync.Collection == "" {
		clientCfg.Sync.Collection = DefaultCollection
	}
	if clientCfg.Sync.BatchLimit == 0 {
		clientCfg.Sync.BatchLimit = DefaultBatchLimit
	}
	if clientCfg.Sync.Interval == 0 {
		clientCfg.Sync.Interval = DefaultSyncInterval
	}

	return clientCfg, clientCfg.validate()
}
