// Package generation orchestrates one tailoring run: keyword extraction,
// role classification, weighting, bullet selection, ATS aggregation, and
// the counter updates that feed future runs.
package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/GOPIVARDHAN1965/resumes/internal/ats"
	"github.com/GOPIVARDHAN1965/resumes/internal/extract"
	"github.com/GOPIVARDHAN1965/resumes/internal/match"
	"github.com/GOPIVARDHAN1965/resumes/internal/roles"
	"github.com/GOPIVARDHAN1965/resumes/internal/scoring"
	"github.com/GOPIVARDHAN1965/resumes/internal/selection"
	"github.com/GOPIVARDHAN1965/resumes/internal/types"
	"github.com/GOPIVARDHAN1965/resumes/internal/vocab"
	"github.com/GOPIVARDHAN1965/resumes/internal/weights"
	"github.com/google/uuid"
)

// Defaults for selection limits.
const (
	DefaultTopN        = 5
	DefaultProjectTopN = 3
	DefaultMaxProjects = 3

	// maxSectionBullets bounds how many scored bullets feed the
	// experience section average.
	maxSectionBullets = 10
)

// Options controls one generation call.
type Options struct {
	// TopN is the number of bullets kept per job. Zero means DefaultTopN.
	TopN int

	// ProjectTopN is the number of bullets kept per project. Zero means
	// DefaultProjectTopN.
	ProjectTopN int

	// MaxProjects caps the number of projects in the document. Zero
	// means DefaultMaxProjects.
	MaxProjects int

	// Track enables the counter side effects (keyword frequency, role
	// keywords, bullet performance).
	Track bool
}

// Generator runs the tailoring pipeline against the supplied stores. It
// never holds a live database handle; stores are collaborators injected at
// construction.
type Generator struct {
	profile   ProfileStore
	analytics AnalyticsStore
	vocab     *vocab.Vocabulary
	matcher   *match.Matcher
}

// New builds a Generator, deriving the synonym matcher from the vocabulary.
func New(profile ProfileStore, analytics AnalyticsStore, v *vocab.Vocabulary) *Generator {
	return &Generator{
		profile:   profile,
		analytics: analytics,
		vocab:     v,
		matcher:   match.NewMatcher(v.Synonyms),
	}
}

// Matcher exposes the generator's synonym matcher for collaborators that
// need the same matching rules (rendering, standalone ATS checks).
func (g *Generator) Matcher() *match.Matcher {
	return g.matcher
}

// Generate runs the full pipeline for one job description. A blank job
// description is not an error: it degrades to an empty skill set, zero
// scores, a first-N truncation in authored order, and no counter writes.
func (g *Generator) Generate(ctx context.Context, jobDescription string, opts Options) (*types.GenerateResult, error) {
	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	projectTopN := opts.ProjectTopN
	if projectTopN <= 0 {
		projectTopN = DefaultProjectTopN
	}
	maxProjects := opts.MaxProjects
	if maxProjects <= 0 {
		maxProjects = DefaultMaxProjects
	}

	experience, err := g.profile.WorkExperience(ctx)
	if err != nil {
		return nil, fmt.Errorf("load work experience: %w", err)
	}
	projects, err := g.profile.Projects(ctx)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	allSkills, err := g.profile.Skills(ctx)
	if err != nil {
		return nil, fmt.Errorf("load skills: %w", err)
	}

	skillSet := extract.Keywords(jobDescription, g.vocab)
	role := roles.DefaultLabel
	if strings.TrimSpace(jobDescription) != "" {
		role = roles.Classify(jobDescription, g.vocab)
	}

	scoringOpts := scoring.Options{}
	track := opts.Track && len(skillSet) > 0
	if track {
		stats, err := g.analytics.KeywordFrequencies(ctx)
		if err != nil {
			return nil, fmt.Errorf("load keyword frequencies: %w", err)
		}
		freq := make(map[string]int, len(stats))
		for _, stat := range stats {
			freq[stat.Term] = stat.Count
		}
		totalDocs, err := g.analytics.TotalDocuments(ctx)
		if err != nil {
			return nil, fmt.Errorf("load document count: %w", err)
		}
		scoringOpts.Weights = weights.Compute(freq, totalDocs)

		if err := g.analytics.RecordIngestion(ctx, skillSet.Sorted(), role); err != nil {
			return nil, fmt.Errorf("record ingestion: %w", err)
		}

		scoringOpts.RoleCounts, err = g.analytics.RoleKeywordCounts(ctx, role)
		if err != nil {
			return nil, fmt.Errorf("load role keyword counts: %w", err)
		}
		scoringOpts.Performance, err = g.analytics.BulletPerformance(ctx)
		if err != nil {
			return nil, fmt.Errorf("load bullet performance: %w", err)
		}
	}

	selectedExperience, expIDs := selection.TopBullets(experience, skillSet, topN, g.matcher, scoringOpts)
	selectedProjects, projIDs := selection.TopBullets(projects, skillSet, projectTopN, g.matcher, scoringOpts)
	if len(selectedProjects) > maxProjects {
		selectedProjects = selectedProjects[:maxProjects]
		projIDs = collectIDs(selectedProjects)
	}
	selectedIDs := append(expIDs, projIDs...)

	docSkills := allSkills
	if len(skillSet) > 0 {
		docSkills = filterSkillsByRelevance(allSkills, skillSet, g.vocab)
	}

	report := ats.Score(skillSet, ats.Document{
		Experience: selectedExperience,
		Projects:   selectedProjects,
		Skills:     docSkills,
	}, g.matcher)

	if track && len(selectedIDs) > 0 {
		if err := g.analytics.RecordSelection(ctx, selectedIDs, report.Percentage); err != nil {
			return nil, fmt.Errorf("record selection: %w", err)
		}
	}

	expBullets := flattenSelected(selectedExperience)
	if len(expBullets) > maxSectionBullets {
		expBullets = expBullets[:maxSectionBullets]
	}
	sectionScores := ats.SectionScores(
		expBullets,
		flattenSelected(selectedProjects),
		countMatchedSkills(docSkills, skillSet),
		len(docSkills),
	)

	return &types.GenerateResult{
		RunID:             uuid.New().String(),
		Role:              role,
		SkillSet:          skillSet.Sorted(),
		Experience:        selectedExperience,
		Projects:          selectedProjects,
		Skills:            docSkills,
		ATS:               report,
		SectionScores:     sectionScores,
		SelectedBulletIDs: selectedIDs,
	}, nil
}

// filterSkillsByRelevance keeps only skill categories whose keywords appear
// in the extracted skill set. Languages always stay; when nothing is
// relevant the full list passes through untouched.
func filterSkillsByRelevance(skills []types.Skill, skillSet types.SkillSet, v *vocab.Vocabulary) []types.Skill {
	if len(v.Categories) == 0 {
		return skills
	}

	jdText := strings.Join(skillSet.Sorted(), " ")
	relevant := make(map[string]bool)
	for _, cat := range v.Categories {
		for _, kw := range cat.Keywords {
			if strings.Contains(jdText, kw) {
				relevant[cat.Name] = true
				break
			}
		}
	}
	if len(relevant) == 0 {
		return skills
	}
	relevant["Languages"] = true

	filtered := make([]types.Skill, 0, len(skills))
	for _, s := range skills {
		if relevant[s.Category] {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func flattenSelected(entities []types.Entity) []types.ScoredBullet {
	var out []types.ScoredBullet
	for _, e := range entities {
		out = append(out, e.Selected...)
	}
	return out
}

func countMatchedSkills(skills []types.Skill, skillSet types.SkillSet) int {
	count := 0
	for _, s := range skills {
		if skillSet.Has(strings.ToLower(s.Name)) {
			count++
		}
	}
	return count
}

func collectIDs(entities []types.Entity) []int64 {
	var ids []int64
	for _, e := range entities {
		for _, sb := range e.Selected {
			if sb.Bullet.ID != 0 {
				ids = append(ids, sb.Bullet.ID)
			}
		}
	}
	return ids
}
