package garden

import (
	"cmp"
	"context"
	"slices"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

// Leaderboard ranks the plants of a group
func (s *service) Leaderboard(ctx context.Context, groupID string, limit int) ([]domain.LeaderboardEntry, error) {
	defer s.track()()

	plants, err := s.listGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return Rank(plants, limit), nil
}

// Rank orders plants by height descending with user ID ascending as tie-break,
// then truncates to limit. A non-positive limit uses the default; limits above the maximum are capped.
func Rank(plants []domain.PlantRecord, limit int) []domain.LeaderboardEntry {
	limit = NormalizeLimit(limit)

	sorted := slices.Clone(plants)
	slices.SortFunc(sorted, func(a, b domain.PlantRecord) int {
		if c := cmp.Compare(b.Height, a.Height); c != 0 {
			return c
		}
		return cmp.Compare(a.UserID, b.UserID)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	entries := make([]domain.LeaderboardEntry, 0, len(sorted))
	for i, p := range sorted {
		entries = append(entries, domain.LeaderboardEntry{
			Rank:        i + 1,
			UserID:      p.UserID,
			DisplayName: p.DisplayName,
			Variety:     p.Variety,
			Height:      p.Height,
			Stage:       Stage(p.Height),
		})
	}
	return entries
}

// NormalizeLimit applies the default and maximum leaderboard sizes
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return domain.DefaultLeaderboardLimit
	}
	return min(limit, domain.MaxLeaderboardLimit)
}
