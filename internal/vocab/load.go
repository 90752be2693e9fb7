package vocab

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON string

// LoadFile reads a vocabulary override from a JSON file, validating it
// against the embedded schema before unmarshaling. Skill terms are
// lower-cased on load so matching stays case-insensitive regardless of how
// the file was authored.
func LoadFile(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates and unmarshals vocabulary JSON content.
func Parse(data []byte) (*Vocabulary, error) {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("failed to validate vocabulary: %w", err)
	}
	if !result.Valid() {
		var sb strings.Builder
		sb.WriteString("invalid vocabulary:")
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			fmt.Fprintf(&sb, " %s: %s;", field, desc.Description())
		}
		return nil, fmt.Errorf("%s", strings.TrimSuffix(sb.String(), ";"))
	}

	var v Vocabulary
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary JSON: %w", err)
	}
	v.normalize()
	return &v, nil
}

// normalize lower-cases every term in place.
func (v *Vocabulary) normalize() {
	for i, s := range v.Skills {
		v.Skills[i] = strings.ToLower(strings.TrimSpace(s))
	}
	if v.Synonyms != nil {
		normalized := make(map[string][]string, len(v.Synonyms))
		for canonical, alts := range v.Synonyms {
			lowered := make([]string, len(alts))
			for i, a := range alts {
				lowered[i] = strings.ToLower(strings.TrimSpace(a))
			}
			normalized[strings.ToLower(strings.TrimSpace(canonical))] = lowered
		}
		v.Synonyms = normalized
	}
	for i := range v.Roles {
		for j, kw := range v.Roles[i].Keywords {
			v.Roles[i].Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
		}
	}
	for i := range v.Categories {
		for j, kw := range v.Categories[i].Keywords {
			v.Categories[i].Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
		}
	}
}
