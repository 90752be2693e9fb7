// Package vocab holds the controlled vocabulary the engine matches against:
// the skills whitelist, synonym groups, role keyword sets, and skill display
// categories. All four are carried together so the extractor, role
// classifier, and skill filter read from a single source.
package vocab

// RoleKeywords pairs a role label with its indicative keyword set.
// Roles are ordered: classification ties keep the earliest entry.
type RoleKeywords struct {
	Label    string   `json:"label"`
	Keywords []string `json:"keywords"`
}

// CategoryKeywords pairs a skill display category with the terms that make
// it relevant to a job description.
type CategoryKeywords struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Vocabulary is the static, configured matching vocabulary.
type Vocabulary struct {
	// Skills is the whitelist of matchable skill terms and phrases.
	Skills []string `json:"skills"`

	// Synonyms maps a canonical term to its alternate surface forms.
	// Matching one member of a group counts as matching any other.
	Synonyms map[string][]string `json:"synonyms"`

	// Roles are the candidate role labels with their keyword sets.
	Roles []RoleKeywords `json:"roles"`

	// Categories drive the relevance filter over the skills section.
	Categories []CategoryKeywords `json:"categories,omitempty"`
}
