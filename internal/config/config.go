// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// mirror-sync library and its demo binary. It aggregates all
// sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the account sync key and
	// the library version string.
	App App `envPrefix:"APP_"`

	// Adapter holds network address and timeout settings for the outbound
	// collection client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local persistence backends,
	// currently the SQLite database that stores downloader cursor state.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds settings for the download loop itself: which collection to
	// mirror, the page limit, and the background sync interval.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SyncKey is the hex-encoded account sync key from which the record
	// codec derives its encryption key. Empty means records are stored in
	// plain JSON and the passthrough codec is used.
	// Env: APP_SYNC_KEY
	SyncKey string `env:"SYNC_KEY"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Sent in the User-Agent of outbound requests.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds network settings for the outbound collection client.
type Adapter struct {
	// HTTPAddress is the base address of the storage server, in
	// "[scheme://]host[:port]" format.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Token is the bearer token attached to outbound requests. Token
	// acquisition and refresh belong to the embedding application; the
	// library only forwards what it is given.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains local database connection settings.
type DB struct {
	// DSN is the SQLite file path (or connection string) for the database
	// that persists downloader cursor state.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sync holds settings that shape the download loop.
type Sync struct {
	// Collection is the name of the server-side collection to mirror.
	// Env: SYNC_COLLECTION
	Collection string `env:"COLLECTION"`

	// BatchLimit is the maximum number of records requested per page fetch.
	// Env: SYNC_BATCH_LIMIT
	BatchLimit int `env:"BATCH_LIMIT"`

	// Interval defines how often the background sync job runs.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (the first source to set a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
