package weights

import (
	"math"
	"testing"

	"github.com/GOPIVARDHAN1965/resumes/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestCompute_NormalizesToOne(t *testing.T) {
	w := Compute(map[string]int{"python": 8, "sql": 5, "airflow": 1}, 10)

	sum := 0.0
	for _, v := range w {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Greater(t, w["python"], w["airflow"])
}

func TestCompute_SaturationPenalty(t *testing.T) {
	// tf = 0.9 > 0.8, so uniqueness = 1 - 0.9*0.3 = 0.73.
	w := Compute(map[string]int{"sql": 9}, 10)

	raw := 0.9 * math.Log(10) * 0.73
	// Single term normalizes to 1 regardless, so check via two terms.
	assert.InDelta(t, 1.0, w["sql"], 1e-9)

	w = Compute(map[string]int{"sql": 9, "python": 5}, 10)
	rawPython := 0.5 * math.Log(6)
	assert.InDelta(t, raw/(raw+rawPython), w["sql"], 1e-9)
}

func TestCompute_FloorsTotalDocs(t *testing.T) {
	assert.NotPanics(t, func() {
		w := Compute(map[string]int{"python": 1}, 0)
		assert.InDelta(t, 1.0, w["python"], 1e-9)
	})
}

func TestCompute_EmptyFrequencyMap(t *testing.T) {
	assert.Empty(t, Compute(nil, 5))
}

func TestLookup_DefaultForUnseenTerm(t *testing.T) {
	w := types.Weights{"python": 0.7}

	assert.InDelta(t, 0.01, Lookup("kafka", w, nil), 1e-9)
	assert.InDelta(t, 0.7, Lookup("python", w, nil), 1e-9)
	assert.InDelta(t, 0.7, Lookup("Python", w, nil), 1e-9)
}

func TestLookup_RoleBoost(t *testing.T) {
	w := types.Weights{"power bi": 0.5}
	roleCounts := map[string]int{"power bi": 3}

	// 0.5 * (1 + 3*0.2) = 0.8
	assert.InDelta(t, 0.8, Lookup("power bi", w, roleCounts), 1e-9)

	// No role history means no boost.
	assert.InDelta(t, 0.5, Lookup("power bi", w, map[string]int{"sql": 4}), 1e-9)
}
