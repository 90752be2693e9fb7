// Package render produces the HTML version of a tailored resume.
// Keyword bolding happens here, at presentation time, never in the
// scoring engine.
package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/GOPIVARDHAN1965/resumes/internal/types"
)

//go:embed resume.html.tmpl
var resumeTemplate string

const maxBoldsPerBullet = 2

// priorityBold lists the terms worth emphasizing when they match the job
// description. Order does not matter; candidates are re-sorted by length.
var priorityBold = []string{
	"Azure Blob Storage", "Azure", "Power BI", "Power Query", "Power Automate",
	"Python", "SQL", "DAX", "MySQL", "ETL",
	"FLAIR", "FOCUS", "HMGP", "FEMA", "ARIMA", "Prophet",
	"Flask", "MongoDB", "Selenium", "Scikit-learn", "LangChain",
	"Snowflake", "PostgreSQL", "SQL Server", "Spark", "Airflow",
	"Databricks", "GCP", "AWS", "Docker", "REST API", "FastAPI",
}

// neverBold holds terms too generic or too noisy to emphasize even when
// they match.
var neverBold = map[string]struct{}{
	"SHA-256": {}, "KPIs": {}, "SLA": {}, "CSRF": {}, ".NET": {}, "VBA": {},
	"Git": {}, "GitHub": {}, "SharePoint": {}, "OneDrive": {},
	"Windows Task Scheduler": {}, "Excel": {}, "JSON": {}, "CSV": {}, "XML": {},
}

// skipLeadershipStarts lists bullet openings that read better without any
// bolding. Soft-skill bullets stay plain.
var skipLeadershipStarts = []string{
	"Collaborated", "Onboarded", "Trained", "Presented", "Authored",
	"Led a", "Worked with", "Partnered",
}

// Document is the fully assembled input to the renderer.
type Document struct {
	Personal   types.PersonalInfo
	Experience []types.Entity
	Projects   []types.Entity
	Skills     []types.Skill
}

// page is the data handed to the template.
type page struct {
	Personal     types.PersonalInfo
	ContactParts []string
	Experience   []types.Entity
	Projects     []types.Entity
	SkillGroups  []skillGroup
}

type skillGroup struct {
	Category string
	Names    []string
}

var tmpl = template.Must(template.New("resume").Funcs(template.FuncMap{
	"join":       strings.Join,
	"formatDate": FormatDate,
	"boldTerms":  BoldTerms,
}).Parse(resumeTemplate))

// HTML renders the document and writes it to w.
func HTML(w io.Writer, doc Document) error {
	p := page{
		Personal:     doc.Personal,
		ContactParts: contactParts(doc.Personal),
		Experience:   doc.Experience,
		Projects:     doc.Projects,
		SkillGroups:  groupSkills(doc.Skills),
	}
	if err := tmpl.Execute(w, p); err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}
	return nil
}

func contactParts(info types.PersonalInfo) []string {
	var parts []string
	for _, part := range []string{info.Email, info.Phone, info.LinkedIn, info.GitHub, info.Location} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// groupSkills buckets skills by category, preserving first-appearance
// order of both categories and names.
func groupSkills(skills []types.Skill) []skillGroup {
	var groups []skillGroup
	index := make(map[string]int)
	for _, skill := range skills {
		category := skill.Category
		if category == "" {
			category = "Other"
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, skillGroup{Category: category})
		}
		groups[i].Names = append(groups[i].Names, skill.Name)
	}
	return groups
}

// FormatDate turns a YYYY-MM date into "Jan 2006". An empty date means
// the position is current.
func FormatDate(date string) string {
	if date == "" {
		return "Present"
	}
	parts := strings.SplitN(date, "-", 3)
	if len(parts) >= 2 {
		month, err := strconv.Atoi(parts[1])
		if err == nil && month >= 1 && month <= 12 {
			months := []string{
				"Jan", "Feb", "Mar", "Apr", "May", "Jun",
				"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
			}
			return months[month-1] + " " + parts[0]
		}
	}
	return date
}

// BoldTerms wraps up to two priority terms in <strong>, restricted to the
// first half of the bullet so emphasis lands where recruiters start
// reading. Bullets opening with a leadership phrase are left untouched.
func BoldTerms(text string, matched []string) template.HTML {
	if text == "" {
		return ""
	}
	trimmed := strings.TrimSpace(text)
	for _, prefix := range skipLeadershipStarts {
		if strings.HasPrefix(trimmed, prefix) {
			return template.HTML(template.HTMLEscapeString(text))
		}
	}

	terms := candidateTerms(matched)

	// Collect every in-range candidate, then keep the earliest ones.
	// Longer terms were sorted first, so "SQL Server" claims its span
	// before "SQL" can.
	midpoint := len(text) / 2
	lower := strings.ToLower(text)
	var spans []span
	for _, term := range terms {
		idx := strings.Index(lower, strings.ToLower(term))
		if idx < 0 || idx >= midpoint {
			continue
		}
		if overlaps(spans, idx, idx+len(term)) {
			continue
		}
		spans = append(spans, span{idx, idx + len(term)})
	}
	if len(spans) == 0 {
		return template.HTML(template.HTMLEscapeString(text))
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	if len(spans) > maxBoldsPerBullet {
		spans = spans[:maxBoldsPerBullet]
	}

	var sb strings.Builder
	prev := 0
	for _, sp := range spans {
		sb.WriteString(template.HTMLEscapeString(text[prev:sp.start]))
		sb.WriteString("<strong>")
		sb.WriteString(template.HTMLEscapeString(text[sp.start:sp.end]))
		sb.WriteString("</strong>")
		prev = sp.end
	}
	sb.WriteString(template.HTMLEscapeString(text[prev:]))
	return template.HTML(sb.String())
}

// candidateTerms filters the priority list down to terms related to the
// matched keywords, longest first so "SQL Server" wins over "SQL". With
// no matches every priority term is eligible.
func candidateTerms(matched []string) []string {
	var terms []string
	for _, term := range priorityBold {
		if _, banned := neverBold[term]; banned {
			continue
		}
		if len(matched) == 0 || relatedToAny(term, matched) {
			terms = append(terms, term)
		}
	}
	sort.SliceStable(terms, func(i, j int) bool { return len(terms[i]) > len(terms[j]) })
	return terms
}

func relatedToAny(term string, matched []string) bool {
	lowTerm := strings.ToLower(term)
	for _, kw := range matched {
		lowKw := strings.ToLower(kw)
		if strings.Contains(lowTerm, lowKw) || strings.Contains(lowKw, lowTerm) {
			return true
		}
	}
	return false
}

type span struct{ start, end int }

func overlaps(spans []span, start, end int) bool {
	for _, sp := range spans {
		if start < sp.end && end > sp.start {
			return true
		}
	}
	return false
}
