package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/huangsam/crs/core/algo"
	"github.com/huangsam/crs/internal/contract"
	"github.com/huangsam/crs/internal/profiledoc"
	"github.com/huangsam/crs/schema"
	"go.uber.org/zap"
)

// errNoStore is returned when no profile store has been initialized.
var errNoStore = errors.New("profile store is not initialized")

// writeMu serializes every load-modify-save of the stored set. MCP tool calls
// run on a worker pool, and store Load and Save are only atomic one at a time.
var writeMu sync.Mutex

// BuildProfile evaluates a named input.
func BuildProfile(in schema.ProfileInput) schema.Profile {
	scores := algo.Evaluate(in.Inputs)
	return schema.Profile{
		Name:       in.Name,
		Inputs:     in.Inputs,
		Scores:     scores,
		TotalScore: scores.Total,
	}
}

// EvaluateProfiles evaluates every input, keeping the order.
func EvaluateProfiles(inputs []schema.ProfileInput) []schema.Profile {
	profiles := make([]schema.Profile, len(inputs))
	for i, in := range inputs {
		profiles[i] = BuildProfile(in)
	}
	return profiles
}

// profileInputs drops the derived scores before persisting.
func profileInputs(profiles []schema.Profile) []schema.ProfileInput {
	inputs := make([]schema.ProfileInput, len(profiles))
	for i, p := range profiles {
		inputs[i] = p.ToInput()
	}
	return inputs
}

func getStore(mgr contract.StoreManager) (contract.ProfileStore, error) {
	if mgr == nil {
		return nil, errNoStore
	}
	store := mgr.GetProfileStore()
	if store == nil {
		return nil, errNoStore
	}
	return store, nil
}

// LoadProfiles loads the stored set and recomputes every breakdown.
func LoadProfiles(ctx context.Context, mgr contract.StoreManager) ([]schema.Profile, error) {
	store, err := getStore(mgr)
	if err != nil {
		return nil, err
	}
	inputs, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	return EvaluateProfiles(inputs), nil
}

// SelectProfiles picks profiles by name in the requested order. No names selects all.
func SelectProfiles(profiles []schema.Profile, names []string) ([]schema.Profile, error) {
	if len(names) == 0 {
		return profiles, nil
	}
	selected := make([]schema.Profile, 0, len(names))
	for _, name := range names {
		idx := schema.FindProfile(profiles, name)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", schema.ErrProfileNotFound, name)
		}
		selected = append(selected, profiles[idx])
	}
	return selected, nil
}

// mutateProfiles loads the set, applies fn to a copy and saves the result.
// The loaded slice is never modified, so a failed save leaves nothing half-applied.
func mutateProfiles(ctx context.Context, mgr contract.StoreManager, fn func([]schema.Profile) ([]schema.Profile, error)) ([]schema.Profile, error) {
	writeMu.Lock()
	defer writeMu.Unlock()

	store, err := getStore(mgr)
	if err != nil {
		return nil, err
	}
	inputs, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}

	updated, err := fn(EvaluateProfiles(inputs))
	if err != nil {
		return nil, err
	}
	if err := store.Save(ctx, profileInputs(updated)); err != nil {
		return nil, fmt.Errorf("failed to save profiles: %w", err)
	}
	return updated, nil
}

// SetProfileFields applies field assignments to one profile and persists the set.
// Assignments are applied in order; the first invalid one aborts without saving.
func SetProfileFields(ctx context.Context, mgr contract.StoreManager, name string, assignments [][2]string) (schema.Profile, error) {
	var result schema.Profile
	_, err := mutateProfiles(ctx, mgr, func(profiles []schema.Profile) ([]schema.Profile, error) {
		idx := schema.FindProfile(profiles, name)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", schema.ErrProfileNotFound, name)
		}
		in := profiles[idx].Inputs
		for _, kv := range assignments {
			next, err := in.SetField(kv[0], kv[1])
			if err != nil {
				return nil, err
			}
			in = next
		}
		updated := slices.Clone(profiles)
		updated[idx] = BuildProfile(schema.ProfileInput{Name: profiles[idx].Name, Inputs: in})
		result = updated[idx]
		return updated, nil
	})
	if err != nil {
		return schema.Profile{}, err
	}
	contract.Logger().Debug("updated profile", zap.String("name", result.Name), zap.Int("fields", len(assignments)), zap.Int("total", result.TotalScore))
	return result, nil
}

// UpdateProfile sets a single field on a stored profile.
func UpdateProfile(ctx context.Context, mgr contract.StoreManager, name, key, value string) (schema.Profile, error) {
	return SetProfileFields(ctx, mgr, name, [][2]string{{key, value}})
}

// RenameProfile changes the name of a stored profile.
func RenameProfile(ctx context.Context, mgr contract.StoreManager, oldName, newName string) ([]schema.Profile, error) {
	newName = strings.TrimSpace(newName)
	return mutateProfiles(ctx, mgr, func(profiles []schema.Profile) ([]schema.Profile, error) {
		idx := schema.FindProfile(profiles, oldName)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", schema.ErrProfileNotFound, oldName)
		}
		updated := slices.Clone(profiles)
		updated[idx].Name = newName
		if err := schema.ValidateProfileSet(profileInputs(updated)); err != nil {
			return nil, err
		}
		return updated, nil
	})
}

// nextProfileName returns the first "Profile N" name not taken in the set.
func nextProfileName(profiles []schema.Profile) string {
	for n := 1; ; n++ {
		name := fmt.Sprintf("Profile %d", n)
		if schema.FindProfile(profiles, name) < 0 {
			return name
		}
	}
}

// AddProfile appends a profile with default inputs. An empty name picks the next free default name.
func AddProfile(ctx context.Context, mgr contract.StoreManager, name string) ([]schema.Profile, error) {
	return mutateProfiles(ctx, mgr, func(profiles []schema.Profile) ([]schema.Profile, error) {
		if len(profiles) >= schema.MaxProfiles {
			return nil, schema.ErrTooManyProfiles
		}
		if strings.TrimSpace(name) == "" {
			name = nextProfileName(profiles)
		}
		updated := append(slices.Clone(profiles), BuildProfile(schema.ProfileInput{
			Name:   strings.TrimSpace(name),
			Inputs: schema.DefaultApplicantInput(),
		}))
		if err := schema.ValidateProfileSet(profileInputs(updated)); err != nil {
			return nil, err
		}
		return updated, nil
	})
}

// RemoveProfile deletes a profile from the set. The last profile cannot be removed.
func RemoveProfile(ctx context.Context, mgr contract.StoreManager, name string) ([]schema.Profile, error) {
	return mutateProfiles(ctx, mgr, func(profiles []schema.Profile) ([]schema.Profile, error) {
		idx := schema.FindProfile(profiles, name)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s", schema.ErrProfileNotFound, name)
		}
		if len(profiles) == 1 {
			return nil, fmt.Errorf("cannot remove %q: a comparison set needs at least one profile", profiles[idx].Name)
		}
		return slices.Delete(slices.Clone(profiles), idx, idx+1), nil
	})
}

// ResetProfiles clears the store and returns the evaluated default profiles.
func ResetProfiles(ctx context.Context, mgr contract.StoreManager) ([]schema.Profile, error) {
	writeMu.Lock()
	defer writeMu.Unlock()

	store, err := getStore(mgr)
	if err != nil {
		return nil, err
	}
	inputs, err := store.Reset(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reset profiles: %w", err)
	}
	return EvaluateProfiles(inputs), nil
}

// readProfileDocument decodes a JSON, YAML or TOML profile document from disk.
func readProfileDocument(path string) ([]schema.ProfileInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile document: %w", err)
	}
	inputs, err := profiledoc.Decode(path, data)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("profile document %s has no profiles", path)
	}
	return inputs, nil
}

// ImportProfiles replaces the stored set with the profiles of a document.
func ImportProfiles(ctx context.Context, mgr contract.StoreManager, path string) ([]schema.Profile, error) {
	inputs, err := readProfileDocument(path)
	if err != nil {
		return nil, err
	}
	writeMu.Lock()
	defer writeMu.Unlock()

	store, err := getStore(mgr)
	if err != nil {
		return nil, err
	}
	if err := store.Save(ctx, inputs); err != nil {
		return nil, fmt.Errorf("failed to save profiles: %w", err)
	}
	return EvaluateProfiles(inputs), nil
}
