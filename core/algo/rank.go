package algo

import (
	"slices"

	"github.com/huangsam/crs/schema"
)

// RankProfiles returns a copy of the profiles sorted by total score in descending order.
// Profiles with equal totals keep their original relative order.
func RankProfiles(profiles []schema.Profile) []schema.Profile {
	ranked := slices.Clone(profiles)
	slices.SortStableFunc(ranked, func(a, b schema.Profile) int {
		return b.TotalScore - a.TotalScore
	})
	return ranked
}
