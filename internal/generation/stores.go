package generation

import (
	"context"

	"github.com/GOPIVARDHAN1965/resumes/internal/types"
)

// ProfileStore supplies the pre-authored resume content. The engine only
// reads from it.
type ProfileStore interface {
	PersonalInfo(ctx context.Context) (types.PersonalInfo, error)
	WorkExperience(ctx context.Context) ([]types.Entity, error)
	Projects(ctx context.Context) ([]types.Entity, error)
	Skills(ctx context.Context) ([]types.Skill, error)
}

// AnalyticsStore owns the historical counters the engine reads before
// scoring and increments after each generation. Values are passed by value
// per call; the engine holds no long-lived snapshot.
type AnalyticsStore interface {
	KeywordFrequencies(ctx context.Context) ([]types.KeywordStat, error)
	TotalDocuments(ctx context.Context) (int, error)
	RoleKeywordCounts(ctx context.Context, role string) (map[string]int, error)
	BulletPerformance(ctx context.Context) (map[int64]types.PerformanceRecord, error)

	// RecordIngestion increments keyword-frequency and role-keyword
	// counters once for a newly ingested job description.
	RecordIngestion(ctx context.Context, terms []string, role string) error

	// RecordSelection increments per-bullet performance counters for the
	// bullets selected into a document with the given ATS percentage.
	RecordSelection(ctx context.Context, bulletIDs []int64, atsPercentage float64) error
}
