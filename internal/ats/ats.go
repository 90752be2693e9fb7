// Package ats computes the aggregate match between a job description's
// skill set and the finally assembled resume document.
package ats

import (
	"math"
	"strings"

	"github.com/GOPIVARDHAN1965/resumes/internal/match"
	"github.com/GOPIVARDHAN1965/resumes/internal/types"
)

// Document is the assembled content the skill set is checked against:
// the selected bullets of both sections plus the skills list.
type Document struct {
	Experience []types.Entity
	Projects   []types.Entity
	Skills     []types.Skill
}

// Score partitions the skill set into matched and missing terms against the
// document's combined text and returns the match percentage (1 decimal).
// An empty skill set yields 0 percent, not an error.
func Score(skills types.SkillSet, doc Document, m *match.Matcher) types.ATSReport {
	blob := assembleText(doc)

	var matched, missing []string
	for _, skill := range skills.Sorted() {
		if m.SkillInText(skill, blob) {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	total := len(skills)
	pct := 0.0
	if total > 0 {
		pct = round1(float64(len(matched)) / float64(total) * 100)
	}

	return types.ATSReport{
		Percentage:   pct,
		Matched:      matched,
		Missing:      missing,
		TotalSkills:  total,
		TotalMatched: len(matched),
	}
}

// assembleText concatenates the text and tag strings of every selected
// bullet across both sections, plus all skill names, lower-cased.
func assembleText(doc Document) string {
	var sb strings.Builder
	appendEntities := func(entities []types.Entity) {
		for _, e := range entities {
			for _, selected := range e.Selected {
				sb.WriteString(selected.Bullet.Text)
				sb.WriteString(" ")
				sb.WriteString(selected.Bullet.Keywords)
				sb.WriteString(" ")
			}
		}
	}
	appendEntities(doc.Experience)
	appendEntities(doc.Projects)
	for _, skill := range doc.Skills {
		sb.WriteString(skill.Name)
		sb.WriteString(" ")
	}
	return strings.ToLower(sb.String())
}

// SectionScores computes the independent per-section views: average bullet
// score x100 for experience and projects, and the skills match ratio x100.
func SectionScores(experience, projects []types.ScoredBullet, skillsMatched, skillsTotal int) types.SectionScores {
	var scores types.SectionScores

	if len(experience) > 0 {
		sum := 0.0
		for _, sb := range experience {
			sum += sb.Score
		}
		scores.Experience = round1(sum / float64(len(experience)) * 100)
	}

	if len(projects) > 0 {
		sum := 0.0
		for _, sb := range projects {
			sum += sb.Score
		}
		scores.Projects = round1(sum / float64(len(projects)) * 100)
	}

	if skillsTotal > 0 {
		scores.Skills = round1(float64(skillsMatched) / float64(skillsTotal) * 100)
	}

	return scores
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
