package extract

import (
	"testing"

	"recruiter-pro/internal/domain/profile"
	"recruiter-pro/internal/skills"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExtractor(t *testing.T) *Extractor {
	t.Helper()
	lex := skills.NewLexicon(skills.DefaultCanonicalSkills(), skills.DefaultAliases())
	return New(lex, nil)
}

const sampleResume = `John Smith
john.smith@example.com
+1 (555) 123-4567
Senior Backend Engineer with 6 years of experience in Python, Django and PostgreSQL.
Master of Science in Computer Science`

func TestProfileExtraction(t *testing.T) {
	e := newExtractor(t)

	p, err := e.Profile(sampleResume)
	require.NoError(t, err)

	assert.Equal(t, "John Smith", p.Name)
	assert.Equal(t, "john.smith@example.com", p.Email)
	assert.NotEmpty(t, p.Phone)
	assert.Equal(t, 6.0, p.YearsExperience)
	assert.Equal(t, profile.EducationMaster, p.Education)
	assert.Equal(t, profile.SenioritySenior, p.Seniority)
	assert.Contains(t, p.Skills, "python")
	assert.Contains(t, p.Skills, "django")
	assert.Contains(t, p.Skills, "postgresql")
	assert.False(t, p.LowConfidence)
}

func TestProfileEmptyInput(t *testing.T) {
	e := newExtractor(t)

	p, err := e.Profile("   ")
	require.ErrorIs(t, err, ErrEmptyInput)
	assert.True(t, p.LowConfidence)
	assert.Empty(t, p.Skills)
}

func TestProfileSparseInputLowConfidence(t *testing.T) {
	e := newExtractor(t)

	p, err := e.Profile("Looking for opportunities in a fast paced environment.")
	require.NoError(t, err)
	assert.True(t, p.LowConfidence)
}

func TestProfileNameFallbackRejectsLocations(t *testing.T) {
	e := newExtractor(t)

	p, err := e.Profile("Jakarta Indonesia\nworked with python for 3 years of experience")
	require.NoError(t, err)
	assert.Empty(t, p.Name)
}

func TestJobExtraction(t *testing.T) {
	e := newExtractor(t)

	raw := `Title: Backend Engineer
Requires 2 - 5 yrs of backend work.
Bachelor degree required.
Stack: Go, PostgreSQL, Docker.`

	j, err := e.Job("JOB-42", raw)
	require.NoError(t, err)

	assert.Equal(t, "JOB-42", j.JobID)
	assert.Equal(t, "Backend Engineer", j.Title)
	assert.Equal(t, 2.0, j.MinExperienceYears)
	require.NotNil(t, j.MaxExperienceYears)
	assert.Equal(t, 5.0, *j.MaxExperienceYears)
	require.NotNil(t, j.EducationRequired)
	assert.Equal(t, profile.EducationBachelor, *j.EducationRequired)
	assert.Contains(t, j.RequiredSkills, "go")
	assert.Contains(t, j.RequiredSkills, "postgresql")
	assert.Contains(t, j.RequiredSkills, "docker")
	assert.False(t, j.LowConfidence)
}

func TestJobSingleBoundWidensRange(t *testing.T) {
	e := newExtractor(t)

	j, err := e.Job("JOB-7", "Position: Senior Python Developer\n5+ yrs with python required")
	require.NoError(t, err)

	assert.Equal(t, 5.0, j.MinExperienceYears)
	require.NotNil(t, j.MaxExperienceYears)
	assert.Equal(t, 8.0, *j.MaxExperienceYears)
}

func TestJobDateFragmentIsNotExperienceRange(t *testing.T) {
	e := newExtractor(t)

	raw := `Title: Backend Engineer
Apply by Dec 12 - 17.
Go and PostgreSQL required.`

	j, err := e.Job("JOB-9", raw)
	require.NoError(t, err)

	assert.Equal(t, 0.0, j.MinExperienceYears)
	assert.Nil(t, j.MaxExperienceYears)
}

func TestJobEmptyInput(t *testing.T) {
	e := newExtractor(t)

	j, err := e.Job("JOB-0", "")
	require.ErrorIs(t, err, ErrEmptyInput)
	assert.True(t, j.LowConfidence)
	assert.Equal(t, "JOB-0", j.JobID)
}

func TestExperienceYearsTakesMaximumPlausible(t *testing.T) {
	got := extractExperienceYears("3 years of experience in python, 7 years of experience total")
	assert.Equal(t, 7.0, got)
}

func TestExperienceYearsIgnoresImplausible(t *testing.T) {
	got := extractExperienceYears("99 years of experience")
	assert.Equal(t, 0.0, got)
}

func TestExperienceYearsFromDateSpan(t *testing.T) {
	got := extractExperienceYears("Acme Corp 2015 - 2020 backend developer")
	assert.Equal(t, 5.0, got)
}

func TestSeniorityTitleBeatsYears(t *testing.T) {
	assert.Equal(t, profile.SeniorityEntry, deriveSeniority("junior developer", 9))
	assert.Equal(t, profile.SeniorityExecutive, deriveSeniority("director of engineering", 1))
}

func TestSeniorityFromYearsTable(t *testing.T) {
	assert.Equal(t, profile.SeniorityEntry, seniorityFromYears(1))
	assert.Equal(t, profile.SeniorityMid, seniorityFromYears(3))
	assert.Equal(t, profile.SenioritySenior, seniorityFromYears(6))
	assert.Equal(t, profile.SeniorityLead, seniorityFromYears(10))
	assert.Equal(t, profile.SeniorityManager, seniorityFromYears(15))
}
