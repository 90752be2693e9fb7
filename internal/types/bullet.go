// Package types provides type definitions for structured data used throughout the resume tailoring system.
package types

// Bullet is one line of resume content tied to a job or project.
// ID is zero when the bullet has never been persisted; such bullets still
// participate in scoring but are excluded from performance tracking.
type Bullet struct {
	ID       int64  `json:"id,omitempty"`
	Text     string `json:"text"`
	Keywords string `json:"keywords,omitempty"`
}

// ScoredBullet pairs a bullet with its relevance score and the subset of
// job-description skills it matched.
type ScoredBullet struct {
	Bullet        Bullet   `json:"bullet"`
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matched_skills,omitempty"`
}

// PerformanceRecord tracks how a bullet has fared in previously generated resumes.
type PerformanceRecord struct {
	TimesSelected  int `json:"times_selected"`
	TimesHighScore int `json:"times_high_score"`
	TimesInterview int `json:"times_interview"`
	TimesOffer     int `json:"times_offer"`
}
