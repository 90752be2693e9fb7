package observability

import (
	"bytes"
	"testing"

	"github.com/GOPIVARDHAN1965/resumes/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintExtraction(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	skills := types.NewSkillSet("python", "sql", "airflow")
	p.PrintExtraction("Data Engineer", skills)
	output := buf.String()

	assert.Contains(t, output, "JOB DESCRIPTION ANALYSIS")
	assert.Contains(t, output, "Data Engineer")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "Keywords:  3")
}

func TestPrintSelectedBullets(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	entities := []types.Entity{{
		Selected: []types.ScoredBullet{{
			Bullet:        types.Bullet{Text: "Built Python ETL pipelines"},
			Score:         1.2345,
			MatchedSkills: []string{"python", "etl"},
		}},
	}}

	p.PrintSelectedBullets("experience", entities)
	output := buf.String()

	assert.Contains(t, output, "EXPERIENCE BULLETS")
	assert.Contains(t, output, "Built Python ETL pipelines")
	assert.Contains(t, output, "1.2345")
	assert.Contains(t, output, "python, etl")
}

func TestPrintSelectedBullets_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSelectedBullets("experience", nil)

	assert.Empty(t, buf.String())
}

func TestPrintATSReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintATSReport(types.ATSReport{
		Percentage:   66.7,
		Missing:      []string{"snowflake"},
		TotalSkills:  3,
		TotalMatched: 2,
	})
	output := buf.String()

	assert.Contains(t, output, "ATS COVERAGE")
	assert.Contains(t, output, "66.7%")
	assert.Contains(t, output, "snowflake")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSummary(&types.GenerateResult{
		RunID: "run-1",
		Role:  "Data Analyst",
		ATS:   types.ATSReport{Percentage: 80.0},
		SectionScores: types.SectionScores{
			Experience: 75.0, Projects: 50.0, Skills: 100.0,
		},
	})
	output := buf.String()

	assert.Contains(t, output, "GENERATION SUMMARY")
	assert.Contains(t, output, "Data Analyst")
	assert.Contains(t, output, "80.0%")
	assert.Contains(t, output, "100.0%")
}

func TestPrintSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSummary(nil)

	assert.Empty(t, buf.String())
}
