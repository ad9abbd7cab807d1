package classify

import (
	"testing"

	"recruiter-pro/internal/domain/match"
	"recruiter-pro/internal/features"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func probs(low, medium, high float64) map[match.Label]float64 {
	return map[match.Label]float64{
		match.LabelLow:    low,
		match.LabelMedium: medium,
		match.LabelHigh:   high,
	}
}

func TestSmoothHighAboveFloorKeepsLabel(t *testing.T) {
	res := Smooth(probs(0.09, 0.30, 0.61), features.Vector{}, DefaultThresholds())

	assert.Equal(t, match.LabelHigh, res.Label)
	assert.Equal(t, match.LabelHigh, res.RawLabel)
	assert.InDelta(t, 0.61, res.Confidence, 1e-9)
	assert.NotContains(t, res.SmoothingFlags, "downgrade_high_to_medium")
}

func TestSmoothDowngradesWeakHigh(t *testing.T) {
	res := Smooth(probs(0.10, 0.35, 0.55), features.Vector{}, DefaultThresholds())

	assert.Equal(t, match.LabelMedium, res.Label)
	assert.Equal(t, match.LabelHigh, res.RawLabel)
	assert.Contains(t, res.SmoothingFlags, "downgrade_high_to_medium")
}

func TestSmoothDowngradesWeakMedium(t *testing.T) {
	res := Smooth(probs(0.33, 0.34, 0.33), features.Vector{}, DefaultThresholds())

	assert.Equal(t, match.LabelLow, res.Label)
	assert.Contains(t, res.SmoothingFlags, "downgrade_medium_to_low")
	assert.Contains(t, res.SmoothingFlags, "ambiguous_prediction")
}

func TestSmoothUpgradesStrongOverlapLow(t *testing.T) {
	var v features.Vector
	v[features.IdxSkillOverlapRatio] = 0.8
	v[features.IdxExperienceMatch] = 1

	res := Smooth(probs(0.50, 0.30, 0.20), v, DefaultThresholds())

	assert.Equal(t, match.LabelMedium, res.Label)
	assert.Contains(t, res.SmoothingFlags, "upgrade_low_to_medium")
}

func TestSmoothHighConfidenceWinsOverLaterRules(t *testing.T) {
	var v features.Vector
	v[features.IdxUnderqualified] = 1

	res := Smooth(probs(0.02, 0.08, 0.90), v, DefaultThresholds())

	assert.Equal(t, match.LabelHigh, res.Label)
	assert.Contains(t, res.SmoothingFlags, "high_confidence_enforced")
	assert.Contains(t, res.SmoothingFlags, "downgrade_overqualified_high")
}

func TestSmoothDowngradesUnderqualifiedHigh(t *testing.T) {
	var v features.Vector
	v[features.IdxUnderqualified] = 1

	res := Smooth(probs(0.10, 0.20, 0.70), v, DefaultThresholds())

	assert.Equal(t, match.LabelMedium, res.Label)
	assert.Contains(t, res.SmoothingFlags, "downgrade_overqualified_high")
}

func TestSmoothIdempotent(t *testing.T) {
	p := probs(0.10, 0.35, 0.55)
	first := Smooth(p, features.Vector{}, DefaultThresholds())
	second := Smooth(first.Probabilities, features.Vector{}, DefaultThresholds())

	assert.Equal(t, first.Label, second.Label)
	assert.Equal(t, first.RawLabel, second.RawLabel)
}

func TestSmootherNilClassifierDegrades(t *testing.T) {
	s := NewSmoother(nil, DefaultThresholds(), nil)

	res, err := s.Score(features.Vector{})
	require.ErrorIs(t, err, ErrModelUnavailable)
	assert.Nil(t, res)
}
