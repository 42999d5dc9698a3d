package algo

import (
	"testing"

	"github.com/huangsam/crs/schema"
	"github.com/stretchr/testify/assert"
)

func TestRankProfiles(t *testing.T) {
	profiles := []schema.Profile{
		{Name: "Low", TotalScore: 380},
		{Name: "Nominated", TotalScore: 1011},
		{Name: "TieA", TotalScore: 450},
		{Name: "TieB", TotalScore: 450},
	}

	ranked := RankProfiles(profiles)
	names := make([]string, len(ranked))
	for i, p := range ranked {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"Nominated", "TieA", "TieB", "Low"}, names)

	// The input order is untouched.
	assert.Equal(t, "Low", profiles[0].Name)
}

func TestRankProfilesEmpty(t *testing.T) {
	assert.Empty(t, RankProfiles(nil))
}
