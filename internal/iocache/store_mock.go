package iocache

import (
	"context"

	"github.com/huangsam/crs/internal/contract"
	"github.com/huangsam/crs/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetProfileStore implements the StoreManager interface.
func (m *MockStoreManager) GetProfileStore() contract.ProfileStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.ProfileStore)
	return store
}

// MockProfileStore is a mock implementation of ProfileStore for testing.
type MockProfileStore struct {
	mock.Mock
}

var _ contract.ProfileStore = &MockProfileStore{} // Compile-time check

// Load implements the ProfileStore interface.
func (m *MockProfileStore) Load(ctx context.Context) ([]schema.ProfileInput, error) {
	args := m.Called(ctx)
	profiles, _ := args.Get(0).([]schema.ProfileInput)
	return profiles, args.Error(1)
}

// Save implements the ProfileStore interface.
func (m *MockProfileStore) Save(ctx context.Context, profiles []schema.ProfileInput) error {
	args := m.Called(ctx, profiles)
	return args.Error(0)
}

// Reset implements the ProfileStore interface.
func (m *MockProfileStore) Reset(ctx context.Context) ([]schema.ProfileInput, error) {
	args := m.Called(ctx)
	profiles, _ := args.Get(0).([]schema.ProfileInput)
	return profiles, args.Error(1)
}

// GetStatus implements the ProfileStore interface.
func (m *MockProfileStore) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the ProfileStore interface.
func (m *MockProfileStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
