package features

import (
	"testing"

	"recruiter-pro/internal/domain/job"
	"recruiter-pro/internal/domain/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderIsStable(t *testing.T) {
	order := Order()

	require.Len(t, order, Count())
	assert.Equal(t, "skill_overlap_count", order[0])
	assert.Equal(t, "skill_overlap_ratio", order[1])
	assert.Equal(t, "text_similarity", order[len(order)-1])
}

func set(items ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, s := range items {
		out[s] = struct{}{}
	}
	return out
}

func TestGenerateWeightedOverlap(t *testing.T) {
	tiers := SkillTiers{
		Critical:  set("python"),
		Important: set("django"),
	}
	g := NewGenerator(tiers, FitVectorizer(ReferenceCorpus()))

	maxY := 5.0
	p := profile.CandidateProfile{
		Skills:          set("python", "django", "postgresql"),
		YearsExperience: 6,
		Seniority:       profile.SenioritySenior,
	}
	j := job.Requirement{
		RequiredSkills:     set("python", "django", "aws"),
		MinExperienceYears: 2,
		MaxExperienceYears: &maxY,
		Seniority:          profile.SenioritySenior,
	}

	v := g.Generate(p, j)

	assert.Equal(t, 2.0, v[IdxSkillOverlapCount])
	assert.InDelta(t, 5.0/6.0, v[IdxSkillOverlapRatio], 1e-9)
	assert.InDelta(t, 0.5, v[IdxJaccardSimilarity], 1e-9)
	assert.Equal(t, 3.0, v[IdxProfileSkillCount])
	assert.Equal(t, 3.0, v[IdxJobSkillCount])
	assert.Equal(t, 4.0, v[IdxExperienceDelta])
	assert.Equal(t, 1.0, v[IdxSeniorityMatch])
}

func TestGenerateExperienceFlagsMutuallyExclusive(t *testing.T) {
	g := NewGenerator(SkillTiers{}, FitVectorizer(ReferenceCorpus()))
	maxY := 5.0

	cases := []struct {
		name  string
		years float64
		match float64
		over  float64
		under float64
	}{
		{"in range", 3, 1, 0, 0},
		{"at lower bound", 2, 1, 0, 0},
		{"at upper bound", 5, 1, 0, 0},
		{"over", 9, 0, 1, 0},
		{"under", 1, 0, 0, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := profile.CandidateProfile{Skills: set("go"), YearsExperience: tc.years}
			j := job.Requirement{
				RequiredSkills:     set("go"),
				MinExperienceYears: 2,
				MaxExperienceYears: &maxY,
			}
			v := g.Generate(p, j)

			assert.Equal(t, tc.match, v[IdxExperienceMatch])
			assert.Equal(t, tc.over, v[IdxOverqualified])
			assert.Equal(t, tc.under, v[IdxUnderqualified])
			assert.Equal(t, 1.0, v[IdxExperienceMatch]+v[IdxOverqualified]+v[IdxUnderqualified])
		})
	}
}

func TestGenerateNoMinimumUsesUnitDenominator(t *testing.T) {
	g := NewGenerator(SkillTiers{}, FitVectorizer(ReferenceCorpus()))

	p := profile.CandidateProfile{Skills: set("go"), YearsExperience: 4}
	j := job.Requirement{RequiredSkills: set("go")}

	v := g.Generate(p, j)
	assert.Equal(t, 4.0, v[IdxExperienceRatio])
}

func TestGenerateEmptyJobSkills(t *testing.T) {
	g := NewGenerator(SkillTiers{}, FitVectorizer(ReferenceCorpus()))

	p := profile.CandidateProfile{Skills: set("go")}
	j := job.Requirement{}

	v := g.Generate(p, j)
	assert.Equal(t, 0.0, v[IdxSkillOverlapRatio])
	assert.Equal(t, 0.0, v[IdxSkillOverlapCount])
}
