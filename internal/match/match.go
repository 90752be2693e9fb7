// Package match implements the lexical matching rules shared by the
// extractor, the bullet scorer, and the ATS aggregator: word-boundary-aware
// term containment and synonym-group equivalence.
package match

import "strings"

// TermInText reports whether term appears in text. Terms of one or two
// characters require word-boundary matching so e.g. "r" does not match
// inside "recovery"; longer terms use plain substring containment. Both
// arguments are expected to be lower-cased already.
func TermInText(term, text string) bool {
	if term == "" {
		return false
	}
	if len(term) <= 2 {
		return containsWord(text, term)
	}
	return strings.Contains(text, term)
}

// containsWord reports whether term appears in text delimited by non-word
// characters (or the ends of the string) on both sides.
func containsWord(text, term string) bool {
	for start := 0; start <= len(text)-len(term); {
		i := strings.Index(text[start:], term)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(term)
		boundedLeft := i == 0 || !isWordByte(text[i-1])
		boundedRight := end == len(text) || !isWordByte(text[end])
		if boundedLeft && boundedRight {
			return true
		}
		start = i + 1
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// Matcher answers synonym-aware skill containment queries. Synonym groups
// are collapsed into equivalence classes once at construction, so same-group
// lookups are O(1) instead of scanning the synonym map per query.
type Matcher struct {
	groupOf map[string]int
	members [][]string
}

// NewMatcher builds a Matcher from a canonical-to-alternates synonym map.
// Groups sharing a member are merged into one equivalence class.
func NewMatcher(synonyms map[string][]string) *Matcher {
	parent := make(map[string]string)

	var find func(string) string
	find = func(t string) string {
		p, ok := parent[t]
		if !ok {
			parent[t] = t
			return t
		}
		if p == t {
			return t
		}
		root := find(p)
		parent[t] = root
		return root
	}
	union := func(a, b string) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[rb] = ra
		}
	}

	for canonical, alts := range synonyms {
		c := strings.ToLower(canonical)
		find(c)
		for _, alt := range alts {
			union(c, strings.ToLower(alt))
		}
	}

	m := &Matcher{groupOf: make(map[string]int, len(parent))}
	rootIndex := make(map[string]int)
	terms := make([]string, 0, len(parent))
	for t := range parent {
		terms = append(terms, t)
	}
	// Deterministic group numbering is not required, but collapse every
	// term to its root before assigning indices.
	for _, t := range terms {
		root := find(t)
		idx, ok := rootIndex[root]
		if !ok {
			idx = len(m.members)
			rootIndex[root] = idx
			m.members = append(m.members, nil)
		}
		m.groupOf[t] = idx
		m.members[idx] = append(m.members[idx], t)
	}
	return m
}

// SameGroup reports whether two terms belong to the same synonym
// equivalence class. Terms outside any group are only equivalent to
// themselves.
func (m *Matcher) SameGroup(a, b string) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if a == b {
		return true
	}
	ga, ok := m.groupOf[a]
	if !ok {
		return false
	}
	gb, ok := m.groupOf[b]
	return ok && ga == gb
}

// Synonyms returns the co-members of term's equivalence class, excluding
// term itself. Returns nil for terms outside any group.
func (m *Matcher) Synonyms(term string) []string {
	idx, ok := m.groupOf[strings.ToLower(term)]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(m.members[idx])-1)
	for _, t := range m.members[idx] {
		if t != term {
			out = append(out, t)
		}
	}
	return out
}

// SkillInText reports whether skill appears in text either literally or via
// any co-member of its synonym group. The rule is symmetric: matching never
// has to route through a canonical term. Text is expected lower-cased.
func (m *Matcher) SkillInText(skill, text string) bool {
	skill = strings.ToLower(skill)
	if TermInText(skill, text) {
		return true
	}
	idx, ok := m.groupOf[skill]
	if !ok {
		return false
	}
	for _, member := range m.members[idx] {
		if member == skill {
			continue
		}
		if TermInText(member, text) {
			return true
		}
	}
	return false
}
