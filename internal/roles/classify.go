// Package roles assigns a coarse role label to a job description by
// counting role-indicative keyword hits.
package roles

import (
	"strings"

	"github.com/GOPIVARDHAN1965/resumes/internal/vocab"
)

// DefaultLabel is returned when no role keyword set scores above zero.
const DefaultLabel = "Other"

// Classify picks the role whose keyword set has the strictly highest number
// of case-insensitive substring hits in the job description. Ties keep the
// earlier role in the vocabulary's order.
func Classify(jdText string, v *vocab.Vocabulary) string {
	jdLower := strings.ToLower(jdText)

	best := DefaultLabel
	bestScore := 0
	for _, role := range v.Roles {
		score := 0
		for _, kw := range role.Keywords {
			if strings.Contains(jdLower, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = role.Label
		}
	}
	return best
}
