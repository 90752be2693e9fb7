package types

// SectionScores holds independent per-section match percentages.
type SectionScores struct {
	Experience float64 `json:"experience"`
	Projects   float64 `json:"projects"`
	Skills     float64 `json:"skills"`
}

// ATSReport is the aggregate match result between a job description's
// skill set and the finally assembled document.
type ATSReport struct {
	Percentage   float64  `json:"percentage"`
	Matched      []string `json:"matched"`
	Missing      []string `json:"missing"`
	TotalSkills  int      `json:"total_skills"`
	TotalMatched int      `json:"total_matched"`
}

// GenerateResult is the outcome of one tailoring run.
type GenerateResult struct {
	RunID             string        `json:"run_id"`
	Role              string        `json:"role"`
	SkillSet          []string      `json:"skill_set"`
	Experience        []Entity      `json:"experience"`
	Projects          []Entity      `json:"projects"`
	Skills            []Skill       `json:"skills"`
	ATS               ATSReport     `json:"ats"`
	SectionScores     SectionScores `json:"section_scores"`
	SelectedBulletIDs []int64       `json:"selected_bullet_ids"`
}
