package iocache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/huangsam/crs/internal/contract"
	"github.com/huangsam/crs/schema"
	"go.uber.org/zap"
)

// Global Manager instance for main logic.
var (
	Manager   = &ProfileStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitStores initializes the global manager with the configured profile store.
func InitStores(ctx context.Context, backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		store, err := NewProfileStore(ctx, backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize profile store: %w", err)
			return
		}
		Manager.Lock()
		Manager.profiles = store
		Manager.Unlock()
		contract.Logger().Debug("profile store ready", zap.String("backend", string(backend)))
	})

	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.profiles != nil {
			if err := Manager.profiles.Close(); err != nil {
				contract.LogWarn("Failed to close profile store", err)
			}
		}
	})
}

// ClearStore removes all persisted profile data for the backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the tables.
// For Redis, it deletes the profiles key.
// For NoneBackend, it does nothing.
func ClearStore(ctx context.Context, backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearSQLTables(ctx, "mysql", connStr)

	case schema.PostgreSQLBackend:
		return clearSQLTables(ctx, "pgx", connStr)

	case schema.RedisBackend:
		return clearRedisKey(ctx, connStr)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported store backend for clearing: %s", backend)
	}
}

// clearSQLTables connects to the SQL database and drops every store table, migration history included.
func clearSQLTables(ctx context.Context, driverName, connStr string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	for _, table := range []string{profilesTable, metaTable, migrateTable} {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s", table)
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}
