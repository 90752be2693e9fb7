// Package trends flags keywords trending up in recent job descriptions.
package trends

import "github.com/GOPIVARDHAN1965/resumes/internal/types"

const (
	// minRecentCount is the minimum recent-window occurrence count for a
	// term to qualify as emerging.
	minRecentCount = 2

	// maxEmerging caps the report length.
	maxEmerging = 10
)

// Emerging returns the terms that appear at least twice in the recent
// window and not at all in the older window. Input order is preserved;
// callers supply stats pre-sorted by frequency.
func Emerging(recent, older []types.KeywordStat) []types.KeywordStat {
	olderSet := make(map[string]struct{}, len(older))
	for _, stat := range older {
		olderSet[stat.Term] = struct{}{}
	}

	var emerging []types.KeywordStat
	for _, stat := range recent {
		if stat.Count < minRecentCount {
			continue
		}
		if _, ok := olderSet[stat.Term]; ok {
			continue
		}
		emerging = append(emerging, stat)
		if len(emerging) == maxEmerging {
			break
		}
	}
	return emerging
}
