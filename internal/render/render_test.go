package render

import (
	"bytes"
	"testing"

	"github.com/GOPIVARDHAN1965/resumes/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoldTerms_MaxTwo(t *testing.T) {
	got := string(BoldTerms(
		"Built Python and SQL pipelines with Airflow and Docker on AWS infrastructure",
		[]string{"python", "sql", "airflow", "docker", "aws"},
	))

	assert.Contains(t, got, "<strong>Python</strong>")
	assert.Contains(t, got, "<strong>SQL</strong>")
	assert.NotContains(t, got, "<strong>Docker</strong>")
	assert.NotContains(t, got, "<strong>AWS</strong>")
}

func TestBoldTerms_FirstHalfOnly(t *testing.T) {
	// "Python" sits past the midpoint, so nothing qualifies.
	got := string(BoldTerms(
		"Wrote quarterly reports for the finance team and later some Python",
		[]string{"python"},
	))

	assert.NotContains(t, got, "<strong>")
}

func TestBoldTerms_SkipsLeadershipBullets(t *testing.T) {
	got := string(BoldTerms(
		"Collaborated with Python engineers across three teams",
		[]string{"python"},
	))

	assert.NotContains(t, got, "<strong>")
}

func TestBoldTerms_NeverBoldList(t *testing.T) {
	got := string(BoldTerms(
		"Automated Excel and Git workflows for reporting",
		[]string{"excel", "git"},
	))

	assert.NotContains(t, got, "<strong>")
}

func TestBoldTerms_LongestTermWins(t *testing.T) {
	got := string(BoldTerms(
		"Migrated SQL Server databases to the cloud over six months",
		[]string{"sql server"},
	))

	assert.Contains(t, got, "<strong>SQL Server</strong>")
	assert.NotContains(t, got, "<strong>SQL</strong> Server")
}

func TestBoldTerms_EscapesHTML(t *testing.T) {
	got := string(BoldTerms("Parsed <tags> in Python for nightly reporting jobs", []string{"python"}))

	assert.Contains(t, got, "&lt;tags&gt;")
	assert.Contains(t, got, "<strong>Python</strong>")
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Mar 2024", FormatDate("2024-03"))
	assert.Equal(t, "Jan 2022", FormatDate("2022-01-15"))
	assert.Equal(t, "Present", FormatDate(""))
	assert.Equal(t, "2024", FormatDate("2024"))
}

func TestHTML_RendersSections(t *testing.T) {
	doc := Document{
		Personal: types.PersonalInfo{Name: "Ada Lovelace", Email: "ada@example.com", Phone: "555-0100"},
		Experience: []types.Entity{{
			Kind: types.KindJob, Company: "Acme", Title: "Data Analyst",
			StartDate: "2023-06",
			Selected: []types.ScoredBullet{{
				Bullet:        types.Bullet{Text: "Built Python ETL pipelines"},
				Score:         1.5,
				MatchedSkills: []string{"python", "etl"},
			}},
		}},
		Projects: []types.Entity{{
			Kind: types.KindProject, Name: "Tracker", URL: "https://example.com",
			Selected: []types.ScoredBullet{{
				Bullet: types.Bullet{Text: "Shipped a Flask dashboard"},
			}},
		}},
		Skills: []types.Skill{
			{Name: "Python", Category: "Languages"},
			{Name: "SQL", Category: "Languages"},
			{Name: "Airflow", Category: "Tools"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, doc))
	out := buf.String()

	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "ada@example.com | 555-0100")
	assert.Contains(t, out, "Data Analyst, Acme")
	assert.Contains(t, out, "Jun 2023 - Present")
	assert.Contains(t, out, "<strong>Python</strong> ETL pipelines")
	assert.Contains(t, out, "Tracker")
	assert.Contains(t, out, "Languages:</strong> Python, SQL")
	assert.Contains(t, out, "Tools:</strong> Airflow")
}

func TestGroupSkills_PreservesOrder(t *testing.T) {
	groups := groupSkills([]types.Skill{
		{Name: "Python", Category: "Languages"},
		{Name: "Airflow", Category: "Tools"},
		{Name: "SQL", Category: "Languages"},
		{Name: "Pandas"},
	})

	require.Len(t, groups, 3)
	assert.Equal(t, "Languages", groups[0].Category)
	assert.Equal(t, []string{"Python", "SQL"}, groups[0].Names)
	assert.Equal(t, "Tools", groups[1].Category)
	assert.Equal(t, "Other", groups[2].Category)
}
