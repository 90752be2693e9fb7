package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermInText_ShortTermsRequireBoundaries(t *testing.T) {
	assert.False(t, TermInText("r", "disaster recovery experience"))
	assert.True(t, TermInText("r", "python, r, and sql"))
	assert.True(t, TermInText("r", "r is required"))
	assert.True(t, TermInText("bi", "modern bi stack"))
	assert.False(t, TermInText("bi", "ambitious team"))
	assert.True(t, TermInText("s3", "store files in s3 buckets"))
}

func TestTermInText_LongTermsUseSubstring(t *testing.T) {
	assert.True(t, TermInText("sql", "postgresql experience"))
	assert.True(t, TermInText("power bi", "power bi dashboards"))
	assert.False(t, TermInText("airflow", "air flow"))
	assert.False(t, TermInText("", "anything"))
}

func TestSameGroup_Transitive(t *testing.T) {
	m := NewMatcher(map[string][]string{
		"business intelligence": {"power bi", "dashboards"},
		"etl":                   {"data pipeline", "airflow"},
	})

	assert.True(t, m.SameGroup("power bi", "dashboards"))
	assert.True(t, m.SameGroup("dashboards", "business intelligence"))
	assert.False(t, m.SameGroup("power bi", "airflow"))
	assert.True(t, m.SameGroup("kafka", "kafka"))
	assert.False(t, m.SameGroup("kafka", "etl"))
}

func TestSameGroup_MergesOverlappingGroups(t *testing.T) {
	m := NewMatcher(map[string][]string{
		"visualization": {"power bi", "tableau"},
		"power bi":      {"powerbi", "bi dashboard"},
	})

	assert.True(t, m.SameGroup("tableau", "powerbi"))
}

func TestSkillInText_LiteralMatch(t *testing.T) {
	m := NewMatcher(nil)
	assert.True(t, m.SkillInText("python", "built python etl pipelines"))
	assert.False(t, m.SkillInText("sql", "managed ap/ar invoices"))
}

func TestSkillInText_SynonymSymmetry(t *testing.T) {
	m := NewMatcher(map[string][]string{
		"business intelligence": {"power bi", "dashboards"},
	})

	// "power bi" and "dashboards" are co-members; matching must not
	// require going through the canonical term.
	assert.True(t, m.SkillInText("power bi", "built executive dashboards"))
	assert.True(t, m.SkillInText("dashboards", "power bi reports for leadership"))
	assert.False(t, m.SkillInText("power bi", "managed invoices"))
}

func TestSynonyms(t *testing.T) {
	m := NewMatcher(map[string][]string{
		"etl": {"data pipeline"},
	})

	assert.ElementsMatch(t, []string{"data pipeline"}, m.Synonyms("etl"))
	assert.Nil(t, m.Synonyms("kafka"))
}
