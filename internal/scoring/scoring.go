// Package scoring scores individual resume bullets against an extracted
// job-description skill set.
package scoring

import (
	"math"
	"strings"

	"github.com/GOPIVARDHAN1965/resumes/internal/match"
	"github.com/GOPIVARDHAN1965/resumes/internal/types"
	"github.com/GOPIVARDHAN1965/resumes/internal/weights"
)

// Options carries the optional historical inputs for scoring. Any field
// may be nil, in which case the corresponding signal is skipped.
type Options struct {
	Weights     types.Weights
	RoleCounts  map[string]int
	Performance map[int64]types.PerformanceRecord
}

// Result is the outcome of scoring one bullet.
type Result struct {
	Score         float64
	MatchedSkills []string
}

// ScoreBullet scores a bullet against the skill set. The bullet's matchable
// text is its display text plus tag string, lower-cased; each skill is
// tested with the literal-or-synonym rule. An empty skill set scores zero.
func ScoreBullet(b types.Bullet, skills types.SkillSet, recency float64, m *match.Matcher, opts Options) Result {
	if len(skills) == 0 {
		return Result{Score: 0}
	}

	text := strings.ToLower(b.Text + " " + b.Keywords)
	var matched []string
	for _, skill := range skills.Sorted() {
		if m.SkillInText(skill, text) {
			matched = append(matched, skill)
		}
	}

	coverage := float64(len(matched)) / float64(len(skills))

	var base float64
	if opts.Weights != nil && len(matched) > 0 {
		weighted := 0.0
		for _, skill := range matched {
			weighted += weights.Lookup(skill, opts.Weights, opts.RoleCounts)
		}
		base = weighted * coverage
	} else {
		base = coverage
	}

	perf := 1.0
	if b.ID != 0 && opts.Performance != nil {
		if rec, ok := opts.Performance[b.ID]; ok {
			perf = PerformanceMultiplier(rec)
		}
	}

	return Result{
		Score:         round4(base * recency * perf),
		MatchedSkills: matched,
	}
}

const (
	minSelectionsForPerf = 2
	highScoreRateBonus   = 0.15
	interviewBonus       = 0.10
	maxInterviewCredit   = 3
	offerBonus           = 0.20
	maxOfferCredit       = 2
	maxPerfMultiplier    = 1.5
)

// PerformanceMultiplier converts a bullet's historical track record into a
// score multiplier. Bullets selected fewer than two times get no adjustment
// to avoid overfitting to noise; the multiplier is capped at 1.5.
func PerformanceMultiplier(rec types.PerformanceRecord) float64 {
	if rec.TimesSelected < minSelectionsForPerf {
		return 1.0
	}

	mult := 1.0
	mult += float64(rec.TimesHighScore) / float64(rec.TimesSelected) * highScoreRateBonus
	if rec.TimesInterview > 0 {
		mult += interviewBonus * float64(min(rec.TimesInterview, maxInterviewCredit))
	}
	if rec.TimesOffer > 0 {
		mult += offerBonus * float64(min(rec.TimesOffer, maxOfferCredit))
	}

	return math.Min(mult, maxPerfMultiplier)
}

func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}
