package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{Sync: Sync{Collection: "bookmarks"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "bookmarks", cfg.Sync.Collection)
}

// TestBuild_FirstNonZeroFieldWins verifies mergo's merge semantics: a field
// already set by an earlier source is not overwritten by a later one.
func TestBuild_FirstNonZeroFieldWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "from-env"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "from-flags", RequestTimeout: time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

// ── withEnv / withJSON ────────────────────────────────────────────────────────

// TestWithEnv_AppendsConfig verifies that withEnv appends a config parsed
// from environment variables.
func TestWithEnv_AppendsConfig(t *testing.T) {
	t.Setenv("SYNC_COLLECTION", "history")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "history", b.configs[0].Sync.Collection)
}

// TestWithJSON_NoPathIsNoop verifies that withJSON does nothing when no
// earlier source specified a JSON path.
func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_ParsesAndAppends verifies that a JSON path set by an earlier
// source causes the file to be parsed and appended.
func TestWithJSON_ParsesAndAppends(t *testing.T) {
	jsonCfg := StructuredJSONConfig{}
	jsonCfg.Sync.Collection = "bookmarks"
	jsonCfg.Sync.BatchLimit = 50
	path := writeTempJSONConfig(t, jsonCfg)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "bookmarks", b.configs[1].Sync.Collection)
	assert.Equal(t, 50, b.configs[1].Sync.BatchLimit)
}

// TestWithJSON_BadFileSetsError verifies that an unreadable JSON path is
// recorded on the builder instead of panicking.
func TestWithJSON_BadFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── ClientConfig validation ──────────────────────────────────────────────────

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{},
		Adapter: ClientAdapter{
			HTTPAddress:    "sync.example.org",
			RequestTimeout: 30 * time.Second,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: "/tmp/state.db"}},
		Sync: ClientSync{
			Collection: DefaultCollection,
			BatchLimit: DefaultBatchLimit,
			Interval:   DefaultSyncInterval,
		},
	}
}

func TestClientConfigValidate_OK(t *testing.T) {
	assert.NoError(t, validClientConfig().validate())
}

func TestClientConfigValidate_EmptyDSN(t *testing.T) {
	cfg := validClientConfig()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestClientConfigValidate_MemoryDSNRejected(t *testing.T) {
	cfg := validClientConfig()
	cfg.Storage.DB.DSN = ":memory:"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestClientConfigValidate_MissingAddress(t *testing.T) {
	cfg := validClientConfig()
	cfg.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}

func TestClientConfigValidate_BadBatchLimit(t *testing.T) {
	cfg := validClientConfig()
	cfg.Sync.BatchLimit = -1
	assert.ErrorIs(t, cfg.validate(), ErrInvalidSyncConfigs)
}
