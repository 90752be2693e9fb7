// Package weights converts historical keyword-frequency counts into
// normalized importance weights with an optional role-conditioned boost.
package weights

import (
	"math"
	"strings"

	"github.com/GOPIVARDHAN1965/resumes/internal/types"
)

const (
	// defaultWeight is assigned to terms with no frequency history so
	// unseen-but-relevant skills are not silently discarded.
	defaultWeight = 0.01

	// roleBoostFactor scales the per-role occurrence count into a
	// multiplicative boost.
	roleBoostFactor = 0.2

	// saturationThreshold is the term frequency above which a term is
	// considered near-ubiquitous and down-weighted.
	saturationThreshold = 0.8

	// saturationPenalty scales the down-weighting of near-ubiquitous terms.
	saturationPenalty = 0.3
)

// Compute derives a normalized weight distribution from cumulative keyword
// frequencies. For each term: tf = count/totalDocs, idf = ln(1+count), and
// a uniqueness penalty applies once tf exceeds the saturation threshold.
// The result sums to 1 across all terms.
func Compute(freq map[string]int, totalDocs int) types.Weights {
	if totalDocs < 1 {
		totalDocs = 1
	}

	raw := make(types.Weights, len(freq))
	total := 0.0
	for term, count := range freq {
		tf := float64(count) / float64(totalDocs)
		idf := math.Log(1 + float64(count))
		uniqueness := 1.0
		if tf > saturationThreshold {
			uniqueness = 1.0 - tf*saturationPenalty
		}
		w := tf * idf * uniqueness
		raw[term] = w
		total += w
	}

	if total == 0 {
		total = 1
	}
	normalized := make(types.Weights, len(raw))
	for term, w := range raw {
		normalized[term] = w / total
	}
	return normalized
}

// Lookup returns the effective weight for a term: the normalized weight
// (or the default for unseen terms), boosted when the term has co-occurred
// with the current role historically. Terms with no role history get no
// boost.
func Lookup(term string, w types.Weights, roleCounts map[string]int) float64 {
	base, ok := w[strings.ToLower(term)]
	if !ok {
		base = defaultWeight
	}

	if roleCounts != nil {
		if count, ok := roleCounts[strings.ToLower(term)]; ok {
			base *= 1 + float64(count)*roleBoostFactor
		}
	}
	return base
}
