package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/huangsam/crs/internal/contract"
	"github.com/huangsam/crs/internal/iocache"
	"github.com/huangsam/crs/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newMemoryManager returns a mock manager backed by a real in-memory store.
func newMemoryManager(t *testing.T) (*iocache.MockStoreManager, *iocache.MemoryProfileStore) {
	t.Helper()
	store := iocache.NewMemoryProfileStore()
	mgr := &iocache.MockStoreManager{}
	mgr.On("GetProfileStore").Return(store)
	return mgr, store
}

func names(profiles []schema.Profile) []string {
	out := make([]string, len(profiles))
	for i, p := range profiles {
		out[i] = p.Name
	}
	return out
}

func TestBuildProfile(t *testing.T) {
	p := BuildProfile(schema.ProfileInput{Name: "A", Inputs: schema.DefaultApplicantInput()})
	assert.Equal(t, "A", p.Name)
	assert.Equal(t, 411, p.TotalScore)
	assert.Equal(t, p.Scores.Sum(), p.TotalScore)
}

func TestLoadProfilesDefaults(t *testing.T) {
	mgr, _ := newMemoryManager(t)

	profiles, err := LoadProfiles(context.Background(), mgr)
	require.NoError(t, err)
	assert.Equal(t, schema.DefaultProfileNames, names(profiles))
	for _, p := range profiles {
		assert.Equal(t, 411, p.TotalScore)
	}
}

func TestLoadProfilesNoStore(t *testing.T) {
	_, err := LoadProfiles(context.Background(), nil)
	assert.ErrorIs(t, err, errNoStore)

	mgr := &iocache.MockStoreManager{}
	mgr.On("GetProfileStore").Return(nil)
	_, err = LoadProfiles(context.Background(), mgr)
	assert.ErrorIs(t, err, errNoStore)
}

func TestSelectProfiles(t *testing.T) {
	profiles := EvaluateProfiles(schema.DefaultProfileInputs())

	all, err := SelectProfiles(profiles, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	picked, err := SelectProfiles(profiles, []string{"profile 3", "Profile 1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Profile 3", "Profile 1"}, names(picked))

	_, err = SelectProfiles(profiles, []string{"Nobody"})
	assert.ErrorIs(t, err, schema.ErrProfileNotFound)
}

func TestSetProfileFields(t *testing.T) {
	ctx := context.Background()
	mgr, store := newMemoryManager(t)

	p, err := SetProfileFields(ctx, mgr, "Profile 2", [][2]string{
		{"provincialNomination", "yes"},
		{"age", "31"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Profile 2", p.Name)
	assert.True(t, p.Inputs.ProvincialNomination)
	assert.Equal(t, 99+120+136+50+600, p.TotalScore)

	stored, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 31, stored[1].Inputs.Age)
	assert.Equal(t, 30, stored[0].Inputs.Age, "other profiles are untouched")
}

func TestSetProfileFieldsRejectsWithoutSaving(t *testing.T) {
	ctx := context.Background()
	mgr, store := newMemoryManager(t)

	_, err := SetProfileFields(ctx, mgr, "Profile 1", [][2]string{
		{"age", "40"},
		{"bogus", "1"},
	})
	assert.ErrorIs(t, err, schema.ErrUnknownField)

	status, err := store.GetStatus(ctx)
	require.NoError(t, err)
	assert.Zero(t, status.TotalProfiles, "nothing was saved")

	_, err = UpdateProfile(ctx, mgr, "Nobody", "age", "40")
	assert.ErrorIs(t, err, schema.ErrProfileNotFound)
}

func TestSetProfileFieldsSaveFailure(t *testing.T) {
	ctx := context.Background()
	store := &iocache.MockProfileStore{}
	store.On("Load", ctx).Return(schema.DefaultProfileInputs(), nil)
	store.On("Save", ctx, mock.Anything).Return(errors.New("disk full"))
	mgr := &iocache.MockStoreManager{}
	mgr.On("GetProfileStore").Return(store)

	_, err := UpdateProfile(ctx, mgr, "Profile 1", "age", "25")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	store.AssertExpectations(t)
}

func TestRenameProfile(t *testing.T) {
	ctx := context.Background()
	mgr, _ := newMemoryManager(t)

	profiles, err := RenameProfile(ctx, mgr, "Profile 1", "  Express Entry ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Express Entry", "Profile 2", "Profile 3"}, names(profiles))

	_, err = RenameProfile(ctx, mgr, "Profile 2", "express entry")
	assert.ErrorIs(t, err, schema.ErrDuplicateProfile)

	_, err = RenameProfile(ctx, mgr, "Profile 2", " ")
	assert.ErrorIs(t, err, schema.ErrEmptyProfileName)
}

func TestAddAndRemoveProfile(t *testing.T) {
	ctx := context.Background()
	mgr, _ := newMemoryManager(t)

	_, err := AddProfile(ctx, mgr, "Fourth")
	assert.ErrorIs(t, err, schema.ErrTooManyProfiles)

	profiles, err := RemoveProfile(ctx, mgr, "Profile 2")
	require.NoError(t, err)
	assert.Equal(t, []string{"Profile 1", "Profile 3"}, names(profiles))

	profiles, err = AddProfile(ctx, mgr, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Profile 1", "Profile 3", "Profile 2"}, names(profiles))

	_, err = RemoveProfile(ctx, mgr, "Nobody")
	assert.ErrorIs(t, err, schema.ErrProfileNotFound)
}

func TestRemoveLastProfile(t *testing.T) {
	ctx := context.Background()
	mgr, store := newMemoryManager(t)
	require.NoError(t, store.Save(ctx, []schema.ProfileInput{{Name: "Only", Inputs: schema.DefaultApplicantInput()}}))

	_, err := RemoveProfile(ctx, mgr, "Only")
	assert.Error(t, err)
}

func TestResetProfiles(t *testing.T) {
	ctx := context.Background()
	mgr, _ := newMemoryManager(t)

	_, err := RenameProfile(ctx, mgr, "Profile 1", "Custom")
	require.NoError(t, err)

	profiles, err := ResetProfiles(ctx, mgr)
	require.NoError(t, err)
	assert.Equal(t, schema.DefaultProfileNames, names(profiles))

	loaded, err := LoadProfiles(ctx, mgr)
	require.NoError(t, err)
	assert.Equal(t, schema.DefaultProfileNames, names(loaded))
}

func TestImportProfiles(t *testing.T) {
	ctx := context.Background()
	mgr, _ := newMemoryManager(t)

	path := filepath.Join(t.TempDir(), "set.yaml")
	doc := `profiles:
  - name: Couple
    inputs:
      hasSpouse: true
      age: 29
      spouseEducationLevel: masters
  - name: Solo
    inputs:
      provincialNomination: true
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	profiles, err := ImportProfiles(ctx, mgr, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Couple", "Solo"}, names(profiles))
	assert.Equal(t, 1011, profiles[1].TotalScore)

	loaded, err := LoadProfiles(ctx, mgr)
	require.NoError(t, err)
	assert.Equal(t, profiles, loaded)
}

func TestImportProfilesErrors(t *testing.T) {
	ctx := context.Background()
	mgr, _ := newMemoryManager(t)
	dir := t.TempDir()

	_, err := ImportProfiles(ctx, mgr, filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"profiles": []}`), 0o644))
	_, err = ImportProfiles(ctx, mgr, empty)
	assert.ErrorContains(t, err, "has no profiles")
}

// slowLoadStore widens the window between Load and Save.
type slowLoadStore struct {
	*iocache.MemoryProfileStore
}

func (s slowLoadStore) Load(ctx context.Context) ([]schema.ProfileInput, error) {
	time.Sleep(time.Millisecond)
	return s.MemoryProfileStore.Load(ctx)
}

var _ contract.ProfileStore = slowLoadStore{}

func TestConcurrentUpdatesKeepEveryEdit(t *testing.T) {
	ctx := context.Background()

	for trial := range 20 {
		store := slowLoadStore{iocache.NewMemoryProfileStore()}
		mgr := &iocache.MockStoreManager{}
		mgr.On("GetProfileStore").Return(store)

		var wg sync.WaitGroup
		for i := range 3 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := UpdateProfile(ctx, mgr, schema.DefaultProfileNames[i], "age", strconv.Itoa(20+i))
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		profiles, err := LoadProfiles(ctx, mgr)
		require.NoError(t, err)
		for i, p := range profiles {
			assert.Equal(t, 20+i, p.Inputs.Age, "trial %d: edit of %s was lost", trial, p.Name)
		}
	}
}
