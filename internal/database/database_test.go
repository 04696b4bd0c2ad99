package database

import (
	"path/filepath"
	"testing"

	"orgchart/config"
	client "orgchart/internal/database/client"
	"orgchart/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStore(t *testing.T, conf *config.Configuration) (TreeStore, error) {
	t.Helper()
	logger := zap.NewNop()
	sqlClient, sqlCleanup, err := client.NewSQLClient(logger, conf)
	require.NoError(t, err)
	t.Cleanup(sqlCleanup)
	mongoClient, mongoCleanup, err := client.NewMongoClient(logger, conf)
	require.NoError(t, err)
	t.Cleanup(mongoCleanup)
	badgerClient, badgerCleanup, err := client.NewBadgerClient(logger, conf)
	require.NoError(t, err)
	t.Cleanup(badgerCleanup)
	return NewTreeStore(conf, logger, telemetry.NewNoopTrace(), sqlClient, mongoClient, badgerClient)
}

func TestNewTreeStore(t *testing.T) {
	tests := []struct {
		name    string
		conf    *config.Configuration
		backend string
	}{
		{
			name:    "file",
			conf:    &config.Configuration{Storage: config.Storage{Driver: "file", FilePath: filepath.Join(t.TempDir(), "tree.json")}},
			backend: "file",
		},
		{
			name: "sqlite",
			conf: &config.Configuration{
				Storage:  config.Storage{Driver: "sql"},
				Database: config.Database{Driver: "sqlite", DSN: ":memory:"},
			},
			backend: "sqlite",
		},
		{
			name: "badger",
			conf: &config.Configuration{
				Storage: config.Storage{Driver: "badger"},
				Badger:  config.Badger{InMemory: true},
			},
			backend: "badger",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := newStore(t, tt.conf)
			require.NoError(t, err)
			assert.Equal(t, tt.backend, store.Backend())

			root, err := store.Load(t.Context())
			require.NoError(t, err)
			assert.True(t, root.IsVirtual())
		})
	}
}

func TestNewTreeStore_UnknownDriver(t *testing.T) {
	_, err := newStore(t, &config.Configuration{Storage: config.Storage{Driver: "cassandra"}})
	assert.ErrorContains(t, err, "unsupported storage driver")
}
