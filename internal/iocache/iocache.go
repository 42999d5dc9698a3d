// Package iocache persists the profile comparison set across sessions.
package iocache

import (
	"context"
	"fmt"
	"sync"

	"github.com/huangsam/crs/internal/contract"
	"github.com/huangsam/crs/schema"
)

// ProfileStoreManager holds the process-wide ProfileStore.
type ProfileStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	profiles     contract.ProfileStore
}

var _ contract.StoreManager = &ProfileStoreManager{} // Compile-time check

// GetProfileStore returns the configured ProfileStore.
func (mgr *ProfileStoreManager) GetProfileStore() contract.ProfileStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.profiles
}

// NewProfileStore initializes and returns a new ProfileStore based on the backend type.
func NewProfileStore(ctx context.Context, backend schema.DatabaseBackend, connStr string) (contract.ProfileStore, error) {
	switch backend {
	case schema.SQLiteBackend, schema.MySQLBackend, schema.PostgreSQLBackend:
		return NewSQLProfileStore(backend, connStr)
	case schema.RedisBackend:
		return NewRedisProfileStore(ctx, connStr)
	case schema.NoneBackend:
		return NewMemoryProfileStore(), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, postgresql, redis, or none", backend)
	}
}
