package types

// EntityKind distinguishes the two kinds of scored entities.
type EntityKind string

// Entity kinds.
const (
	KindJob     EntityKind = "job"
	KindProject EntityKind = "project"
)

// Entity is a job or project holding an ordered sequence of bullets.
// Sibling position is implied by slice order: index 0 is the most recent
// entry and drives the recency multiplier, so callers must keep entities
// in reverse-chronological order.
type Entity struct {
	ID          int64      `json:"id,omitempty"`
	Kind        EntityKind `json:"kind"`
	Company     string     `json:"company,omitempty"`
	Title       string     `json:"title,omitempty"`
	Name        string     `json:"name,omitempty"`
	Description string     `json:"description,omitempty"`
	Location    string     `json:"location,omitempty"`
	URL         string     `json:"url,omitempty"`
	StartDate   string     `json:"start_date,omitempty"`
	EndDate     string     `json:"end_date,omitempty"`

	// Bullets is the full authored sequence, read-only to the engine.
	Bullets []Bullet `json:"bullets"`

	// Selected is populated by the selector: the kept bullets in rank
	// order, each with its score and matched skills.
	Selected []ScoredBullet `json:"selected,omitempty"`
}

// Skill is a named resume skill with an optional display category.
type Skill struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Proficiency string `json:"proficiency,omitempty"`
}

// PersonalInfo is the contact block rendered at the top of a resume.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Location string `json:"location,omitempty"`
	Summary  string `json:"summary,omitempty"`
}
