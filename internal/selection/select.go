// Package selection ranks bullets within each job or project and keeps the
// top N per entity.
package selection

import (
	"sort"

	"github.com/GOPIVARDHAN1965/resumes/internal/match"
	"github.com/GOPIVARDHAN1965/resumes/internal/scoring"
	"github.com/GOPIVARDHAN1965/resumes/internal/types"
)

// Recency multipliers by sibling position. The most recent role or project
// is the strongest relevance signal regardless of textual content.
const (
	recencyMostRecent = 1.15
	recencySecond     = 1.00
	recencyOlder      = 0.85
)

// RecencyMultiplier returns the fixed weighting factor for an entity at the
// given sibling position (0 = most recent).
func RecencyMultiplier(position int) float64 {
	switch position {
	case 0:
		return recencyMostRecent
	case 1:
		return recencySecond
	default:
		return recencyOlder
	}
}

// TopBullets scores every bullet within each entity independently, keeps
// the topN highest per entity, and returns the annotated entities along
// with the flat list of selected bullet ids for performance tracking.
//
// The sort is stable: ties resolve to original authored order. With an
// empty skill set every bullet scores zero, so selection degrades to a
// first-N truncation in authored order. Entities with no bullets pass
// through with an empty selection. The input slice is not mutated.
func TopBullets(entities []types.Entity, skills types.SkillSet, topN int, m *match.Matcher, opts scoring.Options) ([]types.Entity, []int64) {
	result := make([]types.Entity, len(entities))
	var selectedIDs []int64

	for i, entity := range entities {
		result[i] = entity
		if len(entity.Bullets) == 0 {
			result[i].Selected = nil
			continue
		}

		recency := RecencyMultiplier(i)
		scored := make([]types.ScoredBullet, len(entity.Bullets))
		for j, b := range entity.Bullets {
			res := scoring.ScoreBullet(b, skills, recency, m, opts)
			scored[j] = types.ScoredBullet{
				Bullet:        b,
				Score:         res.Score,
				MatchedSkills: res.MatchedSkills,
			}
		}

		sort.SliceStable(scored, func(a, b int) bool {
			return scored[a].Score > scored[b].Score
		})

		keep := topN
		if keep > len(scored) {
			keep = len(scored)
		}
		if keep < 0 {
			keep = 0
		}
		result[i].Selected = scored[:keep]

		for _, sb := range result[i].Selected {
			if sb.Bullet.ID != 0 {
				selectedIDs = append(selectedIDs, sb.Bullet.ID)
			}
		}
	}

	return result, selectedIDs
}
