package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a storage server address in format [scheme://]host[:port]
//	-d local database DSN (SQLite path for cursor state)
//	-c/-config json file path with configs
//	-token bearer token for outbound requests
//	-sync-key hex-encoded account sync key
//	-collection collection name to mirror
//	-batch-limit page size for batched downloads
//	-sync-interval background sync interval (e.g., "5m")
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var jsonConfigPath string
	var token string
	var syncKey string
	var collection string
	var batchLimit int
	var syncInterval time.Duration
	var requestTimeout time.Duration

	flag.StringVar(&serverAddress, "a", "", "Storage server address")
	flag.StringVar(&databaseDSN, "d", "", "Local database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&token, "token", "", "Bearer token")
	flag.StringVar(&syncKey, "sync-key", "", "Hex-encoded account sync key")
	flag.StringVar(&collection, "collection", "", "Collection name to mirror")
	flag.IntVar(&batchLimit, "batch-limit", 0, "Page size for batched downloads")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SyncKey: syncKey,
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			Token:          token,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Sync: Sync{
			Collection: collection,
			BatchLimit: batchLimit,
			Interval:   syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
