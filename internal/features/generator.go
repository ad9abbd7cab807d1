package features

import (
	"recruiter-pro/internal/domain/job"
	"recruiter-pro/internal/domain/profile"
)

// SkillTiers assigns overlap weights per skill: critical x3, important x2,
// everything else x1. Tier membership is configuration, canonicalized at
// load time.
type SkillTiers struct {
	Critical  map[string]struct{}
	Important map[string]struct{}
}

func (t SkillTiers) Weight(skill string) float64 {
	if _, ok := t.Critical[skill]; ok {
		return 3
	}
	if _, ok := t.Important[skill]; ok {
		return 2
	}
	return 1
}

// Generator combines one profile and one job into a feature vector. Pure
// function of its inputs plus the read-only corpus-fit text model.
type Generator struct {
	tiers SkillTiers
	model *Vectorizer
}

func NewGenerator(tiers SkillTiers, model *Vectorizer) *Generator {
	return &Generator{tiers: tiers, model: model}
}

func (g *Generator) Generate(p profile.CandidateProfile, j job.Requirement) Vector {
	var v Vector

	jobSkills := j.AllSkills()
	overlap := 0
	var matchedWeight, totalWeight float64
	for s := range jobSkills {
		w := g.tiers.Weight(s)
		totalWeight += w
		if p.HasSkill(s) {
			overlap++
			matchedWeight += w
		}
	}

	v[IdxSkillOverlapCount] = float64(overlap)
	if totalWeight > 0 {
		v[IdxSkillOverlapRatio] = matchedWeight / totalWeight
	}
	v[IdxJaccardSimilarity] = jaccard(p.Skills, jobSkills)
	v[IdxProfileSkillCount] = float64(len(p.Skills))
	v[IdxJobSkillCount] = float64(len(jobSkills))

	minY := j.MinExperienceYears
	maxY := j.MaxYearsOrDefault()
	v[IdxExperienceDelta] = p.YearsExperience - minY
	switch {
	case p.YearsExperience >= minY && p.YearsExperience <= maxY:
		v[IdxExperienceMatch] = 1
	case p.YearsExperience > maxY:
		v[IdxOverqualified] = 1
	default:
		v[IdxUnderqualified] = 1
	}
	denom := minY
	if denom < 1 {
		denom = 1
	}
	v[IdxExperienceRatio] = p.YearsExperience / denom

	if p.Seniority == j.Seniority {
		v[IdxSeniorityMatch] = 1
	}
	v[IdxTextSimilarity] = g.model.Similarity(p.RawText, j.Description)

	return v
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for s := range a {
		if _, ok := b[s]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
