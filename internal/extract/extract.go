// Package extract turns free-text job descriptions into normalized skill sets.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/GOPIVARDHAN1965/resumes/internal/match"
	"github.com/GOPIVARDHAN1965/resumes/internal/types"
	"github.com/GOPIVARDHAN1965/resumes/internal/vocab"
)

// acronymRE finds runs of 2-6 consecutive uppercase letters in the
// original-case text. This is a separate, case-sensitive pass from the
// whitelist scan so domain acronyms outside the vocabulary still surface.
var acronymRE = regexp.MustCompile(`\b[A-Z]{2,6}\b`)

// Keywords extracts the skill set for a job description: the union of
// whitelist hits over the lower-cased text and acronym hits over the
// original-case text. Empty or whitespace-only input yields an empty set.
func Keywords(text string, v *vocab.Vocabulary) types.SkillSet {
	skills := types.SkillSet{}
	if strings.TrimSpace(text) == "" {
		return skills
	}

	lower := strings.ToLower(text)
	for _, term := range longestFirst(v.Skills) {
		if match.TermInText(term, lower) {
			skills.Add(term)
		}
	}

	for _, acronym := range acronymRE.FindAllString(text, -1) {
		skills.Add(strings.ToLower(acronym))
	}

	return skills
}

// longestFirst orders whitelist terms longest first so specific multi-word
// phrases win over their substrings, with a lexicographic tie break for
// determinism.
func longestFirst(terms []string) []string {
	sorted := make([]string, len(terms))
	copy(sorted, terms)
	sort.SliceStable(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}
