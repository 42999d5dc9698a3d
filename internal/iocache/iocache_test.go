package iocache

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/huangsam/crs/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetGlobals() {
	initOnce = sync.Once{}  // Reset for test
	closeOnce = sync.Once{} // Reset for test
	Manager = &ProfileStoreManager{}
}

func TestStores(t *testing.T) {
	ctx := context.Background()

	t.Run("sqlite setup", func(t *testing.T) {
		resetGlobals()
		path := filepath.Join(t.TempDir(), "crs", "profiles.db")

		require.NoError(t, InitStores(ctx, schema.SQLiteBackend, path))
		assert.NotNil(t, Manager.GetProfileStore())
		CloseStores()

		_, err := os.Stat(path)
		assert.NoError(t, err, "Database file should be created")
	})

	t.Run("idempotent setup", func(t *testing.T) {
		resetGlobals()
		assert.NoError(t, InitStores(ctx, schema.NoneBackend, ""))
		first := Manager.GetProfileStore()
		assert.NoError(t, InitStores(ctx, schema.NoneBackend, ""))
		assert.Same(t, first, Manager.GetProfileStore())

		CloseStores()
		CloseStores()
	})

	t.Run("failed setup", func(t *testing.T) {
		resetGlobals()
		err := InitStores(ctx, schema.DatabaseBackend("oracle"), "")
		assert.ErrorContains(t, err, "failed to initialize profile store")
		assert.Nil(t, Manager.GetProfileStore())
	})
}

func TestClearStore(t *testing.T) {
	ctx := context.Background()

	t.Run("sqlite removes file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "profiles.db")
		store, err := NewSQLProfileStore(schema.SQLiteBackend, path)
		require.NoError(t, err)
		require.NoError(t, store.Close())

		require.NoError(t, ClearStore(ctx, schema.SQLiteBackend, path, ""))
		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))

		// Clearing twice is fine.
		assert.NoError(t, ClearStore(ctx, schema.SQLiteBackend, path, ""))
	})

	t.Run("sqlite requires a path", func(t *testing.T) {
		assert.Error(t, ClearStore(ctx, schema.SQLiteBackend, "", ""))
	})

	t.Run("none is a no-op", func(t *testing.T) {
		assert.NoError(t, ClearStore(ctx, schema.NoneBackend, "", ""))
	})

	t.Run("unknown backend", func(t *testing.T) {
		assert.Error(t, ClearStore(ctx, schema.DatabaseBackend("oracle"), "", ""))
	})
}

func TestPrintStoreStatus(t *testing.T) {
	var buf bytes.Buffer
	PrintStoreStatus(&buf, schema.StoreStatus{Backend: "redis", Connected: false})
	assert.Equal(t, "Store Backend: redis\nConnected: false\n", buf.String())

	buf.Reset()
	PrintStoreStatus(&buf, schema.StoreStatus{
		Backend:       "sqlite",
		Connected:     true,
		Location:      "/tmp/profiles.db",
		TotalProfiles: 3,
		LastUpdated:   time.Date(2025, 3, 25, 10, 0, 0, 0, time.Local),
		SizeBytes:     8192,
		SchemaVersion: 2,
		RuleSet:       schema.RuleSetVersion,
	})
	out := buf.String()
	assert.Contains(t, out, "Location: /tmp/profiles.db")
	assert.Contains(t, out, "Total Profiles: 3")
	assert.Contains(t, out, "Last Updated: 2025-03-25 10:00:00")
	assert.Contains(t, out, "Rule Set: 2025-03")
	assert.Contains(t, out, "Schema Version: 2")
	assert.Contains(t, out, "Store Size: 8192 bytes")
}
