// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/huangsam/crs/schema"
)

// StoreManager defines the interface for reaching the profile store.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetProfileStore() ProfileStore
}

// ProfileStore persists the ordered comparison set of named applicant inputs.
// Only raw inputs are stored; scores are always recomputed by the caller.
type ProfileStore interface {
	// Load returns the last saved set, or the default profiles when nothing is stored.
	Load(ctx context.Context) ([]schema.ProfileInput, error)

	// Save replaces the whole persisted set.
	Save(ctx context.Context, profiles []schema.ProfileInput) error

	// Reset clears persisted state and returns the default profiles.
	Reset(ctx context.Context) ([]schema.ProfileInput, error)

	// GetStatus returns status information about the store.
	GetStatus(ctx context.Context) (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}
