package iocache

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/huangsam/crs/internal/contract"
	"github.com/huangsam/crs/schema"
)

// MemoryProfileStore keeps the comparison set for the lifetime of the process.
// It backs the "none" backend.
type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles []schema.ProfileInput
	updated  time.Time
}

var _ contract.ProfileStore = &MemoryProfileStore{} // Compile-time check

// NewMemoryProfileStore returns an empty in-process store.
func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{}
}

// Load returns a copy of the held profiles, or the defaults.
func (ms *MemoryProfileStore) Load(_ context.Context) ([]schema.ProfileInput, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	if len(ms.profiles) == 0 {
		return schema.DefaultProfileInputs(), nil
	}
	return slices.Clone(ms.profiles), nil
}

// Save replaces the held profiles.
func (ms *MemoryProfileStore) Save(_ context.Context, profiles []schema.ProfileInput) error {
	if err := schema.ValidateProfileSet(profiles); err != nil {
		return err
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.profiles = slices.Clone(profiles)
	ms.updated = time.Now()
	return nil
}

// Reset drops the held profiles.
func (ms *MemoryProfileStore) Reset(_ context.Context) ([]schema.ProfileInput, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.profiles = nil
	ms.updated = time.Time{}
	return schema.DefaultProfileInputs(), nil
}

// GetStatus reports the in-process state.
func (ms *MemoryProfileStore) GetStatus(_ context.Context) (schema.StoreStatus, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	status := schema.StoreStatus{
		Backend:       string(schema.NoneBackend),
		Connected:     true,
		Location:      "memory",
		TotalProfiles: len(ms.profiles),
		LastUpdated:   ms.updated,
	}
	if len(ms.profiles) > 0 {
		status.RuleSet = schema.RuleSetVersion
	}
	return status, nil
}

// Close is a no-op.
func (ms *MemoryProfileStore) Close() error {
	return nil
}
