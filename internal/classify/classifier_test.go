package classify

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"recruiter-pro/internal/domain/match"
	"recruiter-pro/internal/features"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportJSON(t *testing.T, order []string) []byte {
	t.Helper()

	n := len(order)
	coef := func(idx int, w float64) []float64 {
		out := make([]float64, n)
		if idx >= 0 && idx < n {
			out[idx] = w
		}
		return out
	}

	exp := map[string]any{
		"feature_order": order,
		"classes":       []string{"Low", "Medium", "High"},
		"coefficients": map[string][]float64{
			"Low":    coef(features.IdxUnderqualified, 2.0),
			"Medium": coef(features.IdxExperienceMatch, 1.0),
			"High":   coef(features.IdxSkillOverlapRatio, 3.0),
		},
		"intercepts": map[string]float64{"Low": 0, "Medium": 0, "High": 0},
	}
	b, err := json.Marshal(exp)
	require.NoError(t, err)
	return b
}

func TestParseModelValidExport(t *testing.T) {
	m, err := ParseModel(exportJSON(t, features.Order()))
	require.NoError(t, err)
	require.NotNil(t, m)
}

func TestParseModelRejectsReorderedFeatures(t *testing.T) {
	order := features.Order()
	order[0], order[1] = order[1], order[0]

	_, err := ParseModel(exportJSON(t, order))
	assert.ErrorIs(t, err, ErrModelContract)
}

func TestParseModelRejectsShortOrder(t *testing.T) {
	_, err := ParseModel(exportJSON(t, features.Order()[:3]))
	assert.ErrorIs(t, err, ErrModelContract)
}

func TestLoadModelMissingFile(t *testing.T) {
	_, err := LoadModel(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestPredictProbaSumsToOne(t *testing.T) {
	m, err := ParseModel(exportJSON(t, features.Order()))
	require.NoError(t, err)

	var v features.Vector
	v[features.IdxSkillOverlapRatio] = 0.9
	v[features.IdxExperienceMatch] = 1

	probs, err := m.PredictProba(v)
	require.NoError(t, err)
	require.Len(t, probs, 3)

	var sum float64
	for _, p := range probs {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestPredictProbaFavorsDominantFeature(t *testing.T) {
	m, err := ParseModel(exportJSON(t, features.Order()))
	require.NoError(t, err)

	var v features.Vector
	v[features.IdxSkillOverlapRatio] = 1.0

	probs, err := m.PredictProba(v)
	require.NoError(t, err)
	assert.Greater(t, probs[match.LabelHigh], probs[match.LabelMedium])
	assert.Greater(t, probs[match.LabelHigh], probs[match.LabelLow])
}

func TestPredictProbaNilModel(t *testing.T) {
	var m *LogisticModel
	_, err := m.PredictProba(features.Vector{})
	assert.ErrorIs(t, err, ErrModelUnavailable)
}
