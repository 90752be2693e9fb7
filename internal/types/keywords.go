package types

import "sort"

// SkillSet is a set of normalized (lower-cased) skill terms extracted from
// one piece of text.
type SkillSet map[string]struct{}

// NewSkillSet builds a SkillSet from the given terms.
func NewSkillSet(terms ...string) SkillSet {
	s := make(SkillSet, len(terms))
	for _, t := range terms {
		s[t] = struct{}{}
	}
	return s
}

// Add inserts a term into the set.
func (s SkillSet) Add(term string) {
	s[term] = struct{}{}
}

// Has reports whether the set contains term.
func (s SkillSet) Has(term string) bool {
	_, ok := s[term]
	return ok
}

// Sorted returns the members in lexicographic order for deterministic iteration.
func (s SkillSet) Sorted() []string {
	terms := make([]string, 0, len(s))
	for t := range s {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}

// KeywordStat is the cumulative frequency record for one skill term: how
// many job descriptions it has appeared in, and when.
type KeywordStat struct {
	Term      string `json:"term"`
	Count     int    `json:"count"`
	FirstSeen string `json:"first_seen,omitempty"`
	LastSeen  string `json:"last_seen,omitempty"`
}

// Weights maps skill terms to normalized importance weights summing to 1.
type Weights map[string]float64
