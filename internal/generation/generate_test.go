package generation

import (
	"context"
	"testing"

	"github.com/GOPIVARDHAN1965/resumes/internal/types"
	"github.com/GOPIVARDHAN1965/resumes/internal/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfile struct {
	experience []types.Entity
	projects   []types.Entity
	skills     []types.Skill
}

func (f *fakeProfile) PersonalInfo(context.Context) (types.PersonalInfo, error) {
	return types.PersonalInfo{Name: "Test User"}, nil
}
func (f *fakeProfile) WorkExperience(context.Context) ([]types.Entity, error) {
	return f.experience, nil
}
func (f *fakeProfile) Projects(context.Context) ([]types.Entity, error) { return f.projects, nil }
func (f *fakeProfile) Skills(context.Context) ([]types.Skill, error)    { return f.skills, nil }

type fakeAnalytics struct {
	stats      []types.KeywordStat
	totalDocs  int
	roleCounts map[string]int
	perf       map[int64]types.PerformanceRecord

	ingestedTerms []string
	ingestedRole  string
	selectedIDs   []int64
	selectedATS   float64
}

func (f *fakeAnalytics) KeywordFrequencies(context.Context) ([]types.KeywordStat, error) {
	return f.stats, nil
}
func (f *fakeAnalytics) TotalDocuments(context.Context) (int, error) { return f.totalDocs, nil }
func (f *fakeAnalytics) RoleKeywordCounts(_ context.Context, _ string) (map[string]int, error) {
	return f.roleCounts, nil
}
func (f *fakeAnalytics) BulletPerformance(context.Context) (map[int64]types.PerformanceRecord, error) {
	return f.perf, nil
}
func (f *fakeAnalytics) RecordIngestion(_ context.Context, terms []string, role string) error {
	f.ingestedTerms = terms
	f.ingestedRole = role
	return nil
}
func (f *fakeAnalytics) RecordSelection(_ context.Context, ids []int64, atsPct float64) error {
	f.selectedIDs = ids
	f.selectedATS = atsPct
	return nil
}

func singleJobProfile() *fakeProfile {
	return &fakeProfile{
		experience: []types.Entity{{
			Kind: types.KindJob,
			Bullets: []types.Bullet{
				{ID: 1, Text: "Built Python ETL pipelines"},
				{ID: 2, Text: "Managed AP/AR invoices"},
				{ID: 3, Text: "Power BI dashboards for leadership"},
			},
		}},
	}
}

// Vocabulary limited to the three skills of the end-to-end scenario keeps
// acronym noise out of the assertions.
func scenarioVocab() *vocab.Vocabulary {
	return &vocab.Vocabulary{
		Skills: []string{"python", "sql", "power bi"},
	}
}

func TestGenerate_EndToEndScenario(t *testing.T) {
	gen := New(singleJobProfile(), &fakeAnalytics{}, scenarioVocab())

	res, err := gen.Generate(context.Background(), "Looking for python, sql and power bi skills", Options{TopN: 2})

	require.NoError(t, err)
	assert.Equal(t, []string{"power bi", "python", "sql"}, res.SkillSet)

	require.Len(t, res.Experience, 1)
	require.Len(t, res.Experience[0].Selected, 2)
	texts := []string{
		res.Experience[0].Selected[0].Bullet.Text,
		res.Experience[0].Selected[1].Bullet.Text,
	}
	assert.ElementsMatch(t, []string{"Built Python ETL pipelines", "Power BI dashboards for leadership"}, texts)

	assert.Equal(t, []string{"sql"}, res.ATS.Missing)
	assert.InDelta(t, 66.7, res.ATS.Percentage, 1e-9)
	assert.NotEmpty(t, res.RunID)
}

func TestGenerate_TrackRecordsCounters(t *testing.T) {
	analytics := &fakeAnalytics{totalDocs: 4}
	gen := New(singleJobProfile(), analytics, scenarioVocab())

	res, err := gen.Generate(context.Background(), "python and power bi", Options{TopN: 2, Track: true})

	require.NoError(t, err)
	assert.Equal(t, []string{"power bi", "python"}, analytics.ingestedTerms)
	assert.Equal(t, "Other", analytics.ingestedRole)
	assert.ElementsMatch(t, []int64{1, 3}, analytics.selectedIDs)
	assert.Equal(t, res.ATS.Percentage, analytics.selectedATS)
}

func TestGenerate_NoTrackNoWrites(t *testing.T) {
	analytics := &fakeAnalytics{}
	gen := New(singleJobProfile(), analytics, scenarioVocab())

	_, err := gen.Generate(context.Background(), "python please", Options{})

	require.NoError(t, err)
	assert.Empty(t, analytics.ingestedTerms)
	assert.Empty(t, analytics.selectedIDs)
}

func TestGenerate_BlankJDFallsBackToAuthoredOrder(t *testing.T) {
	analytics := &fakeAnalytics{}
	gen := New(singleJobProfile(), analytics, scenarioVocab())

	res, err := gen.Generate(context.Background(), "   ", Options{TopN: 2, Track: true})

	require.NoError(t, err)
	assert.Equal(t, "Other", res.Role)
	assert.Empty(t, res.SkillSet)
	assert.Zero(t, res.ATS.Percentage)

	require.Len(t, res.Experience[0].Selected, 2)
	assert.Equal(t, int64(1), res.Experience[0].Selected[0].Bullet.ID)
	assert.Equal(t, int64(2), res.Experience[0].Selected[1].Bullet.ID)

	// Blank input must not touch the counters even with tracking on.
	assert.Empty(t, analytics.ingestedTerms)
	assert.Empty(t, analytics.selectedIDs)
}

func TestGenerate_ProjectsCappedAtMax(t *testing.T) {
	profile := &fakeProfile{
		projects: []types.Entity{
			{Kind: types.KindProject, Name: "p1", Bullets: []types.Bullet{{ID: 10, Text: "python"}}},
			{Kind: types.KindProject, Name: "p2", Bullets: []types.Bullet{{ID: 11, Text: "python"}}},
			{Kind: types.KindProject, Name: "p3", Bullets: []types.Bullet{{ID: 12, Text: "python"}}},
			{Kind: types.KindProject, Name: "p4", Bullets: []types.Bullet{{ID: 13, Text: "python"}}},
		},
	}
	gen := New(profile, &fakeAnalytics{}, scenarioVocab())

	res, err := gen.Generate(context.Background(), "python", Options{})

	require.NoError(t, err)
	assert.Len(t, res.Projects, 3)
	assert.NotContains(t, res.SelectedBulletIDs, int64(13))
}

func TestGenerate_RoleClassified(t *testing.T) {
	gen := New(singleJobProfile(), &fakeAnalytics{}, vocab.Default())

	res, err := gen.Generate(context.Background(),
		"ETL pipelines with Airflow and Spark, data warehouse ingestion via Kafka", Options{})

	require.NoError(t, err)
	assert.Equal(t, "Data Engineer", res.Role)
}

func TestGenerate_SkillFilterKeepsRelevantCategories(t *testing.T) {
	profile := singleJobProfile()
	profile.skills = []types.Skill{
		{Name: "Python", Category: "Languages"},
		{Name: "Power BI", Category: "BI & Analytics"},
		{Name: "Docker", Category: "Cloud & DevOps"},
	}
	gen := New(profile, &fakeAnalytics{}, vocab.Default())

	res, err := gen.Generate(context.Background(), "Power BI dashboards and python reporting", Options{})

	require.NoError(t, err)
	var categories []string
	for _, s := range res.Skills {
		categories = append(categories, s.Category)
	}
	assert.Contains(t, categories, "Languages")
	assert.Contains(t, categories, "BI & Analytics")
	assert.NotContains(t, categories, "Cloud & DevOps")
}

func TestGenerate_PerformanceBreaksTie(t *testing.T) {
	profile := &fakeProfile{
		experience: []types.Entity{{
			Kind: types.KindJob,
			Bullets: []types.Bullet{
				{ID: 1, Text: "python reporting"},
				{ID: 2, Text: "python reporting"},
			},
		}},
	}
	analytics := &fakeAnalytics{
		totalDocs: 5,
		perf: map[int64]types.PerformanceRecord{
			2: {TimesSelected: 4, TimesInterview: 2},
		},
	}
	gen := New(profile, analytics, scenarioVocab())

	res, err := gen.Generate(context.Background(), "python", Options{TopN: 1, Track: true})

	require.NoError(t, err)
	require.Len(t, res.Experience[0].Selected, 1)
	assert.Equal(t, int64(2), res.Experience[0].Selected[0].Bullet.ID)
}
