package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.InDelta(t, 0.40, cfg.Scoring.KeywordWeight, 1e-9)
	assert.InDelta(t, 0.30, cfg.Scoring.SkillWeight, 1e-9)
	assert.InDelta(t, 0.20, cfg.Scoring.ExperienceWeight, 1e-9)
	assert.InDelta(t, 0.10, cfg.Scoring.EducationWeight, 1e-9)
	assert.InDelta(t, 0.5, cfg.Scoring.MLWeight, 1e-9)
	assert.InDelta(t, 75.0, cfg.Scoring.AcceptThreshold, 1e-9)
	assert.InDelta(t, 50.0, cfg.Scoring.ReviewThreshold, 1e-9)
	assert.InDelta(t, 0.85, cfg.Smoothing.HighConfidence, 1e-9)
	assert.Equal(t, 10, cfg.Scoring.TopK)
	assert.Equal(t, 8, cfg.Scoring.Workers)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  http_port: "9090"
scoring:
  top_k: 25
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.App.HTTPPort)
	assert.Equal(t, 25, cfg.Scoring.TopK)
}

func TestValidateRejectsBadSubWeights(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Scoring.KeywordWeight = 0.9
	err = cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidateRejectsBadBlend(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Scoring.MLWeight = 0.9
	err = cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidateRejectsInvertedThresholds(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Scoring.AcceptThreshold = 40
	err = cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidateRejectsOutOfRangeSmoothing(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Smoothing.MediumFloor = 1.5
	err = cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
