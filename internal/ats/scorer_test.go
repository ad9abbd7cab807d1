package ats

import (
	"testing"

	"recruiter-pro/internal/domain/job"
	"recruiter-pro/internal/domain/profile"
	"recruiter-pro/internal/features"
	"recruiter-pro/internal/skills"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func set(items ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, s := range items {
		out[s] = struct{}{}
	}
	return out
}

func newScorer() *Scorer {
	return NewScorer(DefaultWeights(), features.SkillTiers{}, skills.NewSynonymTable(skills.DefaultSynonymGroups()))
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	w := DefaultWeights()
	assert.InDelta(t, 1.0, w.Keyword+w.Skill+w.Experience+w.Education, 1e-9)
}

func TestScorePerfectMatch(t *testing.T) {
	s := newScorer()
	maxY := 8.0

	p := profile.CandidateProfile{
		Skills:          set("python", "django"),
		YearsExperience: 6,
		Education:       profile.EducationBachelor,
		RawText:         "senior python developer with django experience",
	}
	j := job.Requirement{
		Title:              "Python Developer",
		RequiredSkills:     set("python", "django"),
		MinExperienceYears: 5,
		MaxExperienceYears: &maxY,
	}

	assert.InDelta(t, 100.0, s.Score(p, j), 1e-9)
}

func TestScoreUntitledJobKeywordDefaultsToSkillOverlap(t *testing.T) {
	s := newScorer()
	maxY := 10.0

	p := profile.CandidateProfile{
		Skills:          set("python", "django", "postgresql"),
		YearsExperience: 6,
		RawText:         "python django postgresql",
	}
	j := job.Requirement{
		RequiredSkills:     set("python", "django", "postgresql", "docker"),
		MinExperienceYears: 5,
		MaxExperienceYears: &maxY,
	}

	b := s.ScoreBreakdown(p, j)
	assert.InDelta(t, b.Skill, b.Keyword, 1e-9)

	got := s.Score(p, j)
	assert.GreaterOrEqual(t, got, 70.0)
	assert.InDelta(t, 82.5, got, 1e-9)
}

func TestKeywordScoreMatchesWholeWordsOnly(t *testing.T) {
	s := newScorer()

	p := profile.CandidateProfile{RawText: "javascript developer"}
	j := job.Requirement{Title: "Java Developer", RequiredSkills: set("java")}

	b := s.ScoreBreakdown(p, j)
	assert.InDelta(t, 50.0, b.Keyword, 1e-9)
}

func TestScoreBoundsOnEmptyInputs(t *testing.T) {
	s := newScorer()

	got := s.Score(profile.CandidateProfile{}, job.Requirement{})

	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 100.0)
}

func TestScoreBreakdownComponents(t *testing.T) {
	s := newScorer()
	maxY := 5.0

	p := profile.CandidateProfile{
		Skills:          set("go"),
		YearsExperience: 1,
		Education:       profile.EducationBachelor,
		RawText:         "go developer",
	}
	edu := profile.EducationMaster
	j := job.Requirement{
		Title:              "Go Engineer",
		RequiredSkills:     set("go", "kubernetes"),
		MinExperienceYears: 3,
		MaxExperienceYears: &maxY,
		EducationRequired:  &edu,
	}

	b := s.ScoreBreakdown(p, j)

	assert.InDelta(t, 50.0, b.Skill, 1e-9)
	assert.InDelta(t, 60.0, b.Experience, 1e-9)
	assert.InDelta(t, 0.0, b.Education, 1e-9)
}

func TestExperienceDecayPerYearOutside(t *testing.T) {
	s := newScorer()
	maxY := 5.0
	j := job.Requirement{MinExperienceYears: 2, MaxExperienceYears: &maxY}

	inRange := s.ScoreBreakdown(profile.CandidateProfile{YearsExperience: 3}, j)
	oneOver := s.ScoreBreakdown(profile.CandidateProfile{YearsExperience: 6}, j)
	farUnder := s.ScoreBreakdown(profile.CandidateProfile{YearsExperience: 0}, j)

	assert.InDelta(t, 100.0, inRange.Experience, 1e-9)
	assert.InDelta(t, 80.0, oneOver.Experience, 1e-9)
	assert.InDelta(t, 60.0, farUnder.Experience, 1e-9)
}

func TestEducationGate(t *testing.T) {
	s := newScorer()
	edu := profile.EducationMaster
	j := job.Requirement{EducationRequired: &edu}

	meets := s.ScoreBreakdown(profile.CandidateProfile{Education: profile.EducationPhD}, j)
	misses := s.ScoreBreakdown(profile.CandidateProfile{Education: profile.EducationBachelor}, j)
	noReq := s.ScoreBreakdown(profile.CandidateProfile{}, job.Requirement{})

	assert.InDelta(t, 100.0, meets.Education, 1e-9)
	assert.InDelta(t, 0.0, misses.Education, 1e-9)
	assert.InDelta(t, 100.0, noReq.Education, 1e-9)
}

func TestSkillScoreUsesSynonyms(t *testing.T) {
	s := newScorer()

	p := profile.CandidateProfile{Skills: set("js")}
	j := job.Requirement{RequiredSkills: set("javascript")}

	b := s.ScoreBreakdown(p, j)
	assert.InDelta(t, 100.0, b.Skill, 1e-9)
}

func TestSkillScoreTierWeighting(t *testing.T) {
	tiers := features.SkillTiers{Critical: set("python")}
	s := NewScorer(DefaultWeights(), tiers, skills.NewSynonymTable(nil))

	p := profile.CandidateProfile{Skills: set("python")}
	j := job.Requirement{RequiredSkills: set("python", "docker")}

	b := s.ScoreBreakdown(p, j)
	assert.InDelta(t, 75.0, b.Skill, 1e-9)
}

func TestScoreMonotonicInSkills(t *testing.T) {
	s := newScorer()
	j := job.Requirement{
		Title:          "Backend Engineer",
		RequiredSkills: set("go", "postgresql", "docker"),
	}

	fewer := profile.CandidateProfile{Skills: set("go")}
	more := profile.CandidateProfile{Skills: set("go", "postgresql")}

	require.LessOrEqual(t, s.Score(fewer, j), s.Score(more, j))
}
