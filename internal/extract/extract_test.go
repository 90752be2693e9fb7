package extract

import (
	"testing"

	"github.com/GOPIVARDHAN1965/resumes/internal/vocab"
	"github.com/stretchr/testify/assert"
)

func TestKeywords_WhitelistMatching(t *testing.T) {
	v := vocab.Default()
	jd := "We are looking for a developer with Python, SQL, and Power BI experience."

	skills := Keywords(jd, v)

	assert.True(t, skills.Has("python"))
	assert.True(t, skills.Has("sql"))
	assert.True(t, skills.Has("power bi"))
	assert.False(t, skills.Has("kafka"))
}

func TestKeywords_ShortTermBoundary(t *testing.T) {
	v := vocab.Default()

	// "r" must not match inside "recovery".
	skills := Keywords("disaster recovery planning", v)
	assert.False(t, skills.Has("r"))
	assert.True(t, skills.Has("disaster recovery"))

	skills = Keywords("experience with r and python", v)
	assert.True(t, skills.Has("r"))
}

func TestKeywords_AcronymDetection(t *testing.T) {
	v := vocab.Default()
	jd := "Familiarity with HMGP and the FLAIR system; exposure to SAP preferred."

	skills := Keywords(jd, v)

	assert.True(t, skills.Has("hmgp"))
	assert.True(t, skills.Has("flair"))
	// SAP is not whitelisted but is a 3-letter uppercase acronym.
	assert.True(t, skills.Has("sap"))
}

func TestKeywords_AcronymsAreCaseSensitive(t *testing.T) {
	v := vocab.Default()

	skills := Keywords("we sap productivity daily", v)
	assert.False(t, skills.Has("sap"))
}

func TestKeywords_EmptyInput(t *testing.T) {
	v := vocab.Default()

	assert.Empty(t, Keywords("", v))
	assert.Empty(t, Keywords("   \n\t  ", v))
}

func TestKeywords_Idempotent(t *testing.T) {
	v := vocab.Default()
	jd := "Python and SQL with Power BI dashboards on Azure."

	first := Keywords(jd, v)
	second := Keywords(jd, v)

	assert.Equal(t, first.Sorted(), second.Sorted())
}

func TestKeywords_PrefersLongerPhrases(t *testing.T) {
	v := vocab.Default()
	jd := "Experience with Azure Blob Storage required."

	skills := Keywords(jd, v)

	assert.True(t, skills.Has("azure blob storage"))
	// The shorter substring term still matches on its own merit.
	assert.True(t, skills.Has("azure"))
}
