package scoring

import (
	"testing"

	"github.com/GOPIVARDHAN1965/resumes/internal/match"
	"github.com/GOPIVARDHAN1965/resumes/internal/types"
	"github.com/stretchr/testify/assert"
)

func plainMatcher() *match.Matcher {
	return match.NewMatcher(nil)
}

func TestScoreBullet_CoverageRatioWithoutWeights(t *testing.T) {
	b := types.Bullet{Text: "Built Python ETL pipelines into SQL Server"}
	skills := types.NewSkillSet("python", "sql", "power bi")

	res := ScoreBullet(b, skills, 1.0, plainMatcher(), Options{})

	// python and sql match: 2/3 coverage.
	assert.InDelta(t, 0.6667, res.Score, 1e-4)
	assert.Equal(t, []string{"python", "sql"}, res.MatchedSkills)
}

func TestScoreBullet_TagStringIsMatchable(t *testing.T) {
	b := types.Bullet{Text: "Automated invoice processing", Keywords: "python, selenium"}
	skills := types.NewSkillSet("python")

	res := ScoreBullet(b, skills, 1.0, plainMatcher(), Options{})

	assert.InDelta(t, 1.0, res.Score, 1e-9)
}

func TestScoreBullet_WeightedScore(t *testing.T) {
	b := types.Bullet{Text: "Python dashboards"}
	skills := types.NewSkillSet("python", "sql")
	opts := Options{Weights: types.Weights{"python": 0.6, "sql": 0.4}}

	res := ScoreBullet(b, skills, 1.0, plainMatcher(), opts)

	// weightedSum(0.6) * coverage(0.5) = 0.3
	assert.InDelta(t, 0.3, res.Score, 1e-9)
}

func TestScoreBullet_SynonymMatch(t *testing.T) {
	m := match.NewMatcher(map[string][]string{
		"business intelligence": {"power bi", "dashboards"},
	})
	b := types.Bullet{Text: "Delivered executive dashboards for leadership"}
	skills := types.NewSkillSet("power bi")

	res := ScoreBullet(b, skills, 1.0, m, Options{})

	assert.InDelta(t, 1.0, res.Score, 1e-9)
	assert.Equal(t, []string{"power bi"}, res.MatchedSkills)
}

func TestScoreBullet_EmptySkillSetScoresZero(t *testing.T) {
	b := types.Bullet{Text: "Anything at all"}

	res := ScoreBullet(b, types.SkillSet{}, 1.15, plainMatcher(), Options{})

	assert.Zero(t, res.Score)
	assert.Empty(t, res.MatchedSkills)
}

func TestScoreBullet_RecencyRatio(t *testing.T) {
	b := types.Bullet{Text: "python"}
	skills := types.NewSkillSet("python")

	recent := ScoreBullet(b, skills, 1.15, plainMatcher(), Options{})
	older := ScoreBullet(b, skills, 0.85, plainMatcher(), Options{})

	assert.InDelta(t, 1.15, recent.Score, 1e-9)
	assert.InDelta(t, 0.85, older.Score, 1e-9)
	assert.InDelta(t, 1.15/0.85, recent.Score/older.Score, 1e-9)
}

func TestScoreBullet_PerformanceRequiresStableID(t *testing.T) {
	skills := types.NewSkillSet("python")
	perf := map[int64]types.PerformanceRecord{
		7: {TimesSelected: 10, TimesInterview: 3},
	}

	anonymous := ScoreBullet(types.Bullet{Text: "python"}, skills, 1.0, plainMatcher(), Options{Performance: perf})
	identified := ScoreBullet(types.Bullet{ID: 7, Text: "python"}, skills, 1.0, plainMatcher(), Options{Performance: perf})

	assert.InDelta(t, 1.0, anonymous.Score, 1e-9)
	assert.InDelta(t, 1.3, identified.Score, 1e-9)
}

func TestPerformanceMultiplier(t *testing.T) {
	tests := []struct {
		name string
		rec  types.PerformanceRecord
		want float64
	}{
		{"below selection gate", types.PerformanceRecord{TimesSelected: 1, TimesInterview: 5}, 1.0},
		{"high score rate", types.PerformanceRecord{TimesSelected: 4, TimesHighScore: 2}, 1.075},
		{"interviews capped at 3", types.PerformanceRecord{TimesSelected: 2, TimesInterview: 5}, 1.3},
		{"offers capped at 2", types.PerformanceRecord{TimesSelected: 2, TimesOffer: 4}, 1.4},
		{"overall cap at 1.5", types.PerformanceRecord{TimesSelected: 2, TimesHighScore: 2, TimesInterview: 3, TimesOffer: 2}, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PerformanceMultiplier(tt.rec), 1e-9)
		})
	}
}

func TestScoreBullet_RoundsToFourDecimals(t *testing.T) {
	b := types.Bullet{Text: "python"}
	skills := types.NewSkillSet("python", "sql", "airflow")

	res := ScoreBullet(b, skills, 1.0, plainMatcher(), Options{})

	assert.InDelta(t, 0.3333, res.Score, 1e-9)
}
