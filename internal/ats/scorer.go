package ats

import (
	"strings"

	"recruiter-pro/internal/domain/job"
	"recruiter-pro/internal/domain/profile"
	"recruiter-pro/internal/features"
	"recruiter-pro/internal/skills"
)

// Weights are the sub-score shares. They must sum to 1; config validation
// enforces that at startup.
type Weights struct {
	Keyword    float64
	Skill      float64
	Experience float64
	Education  float64
}

func DefaultWeights() Weights {
	return Weights{Keyword: 0.40, Skill: 0.30, Experience: 0.20, Education: 0.10}
}

// experienceDecayPerYear is how many points the experience sub-score loses
// for every year outside the job's range.
const experienceDecayPerYear = 20.0

// Scorer is the rule-based ATS scorer. Purely arithmetic, independent of the
// classifier, always available.
type Scorer struct {
	weights  Weights
	tiers    features.SkillTiers
	synonyms *skills.SynonymTable
}

func NewScorer(weights Weights, tiers features.SkillTiers, synonyms *skills.SynonymTable) *Scorer {
	return &Scorer{weights: weights, tiers: tiers, synonyms: synonyms}
}

// Score returns a value in [0,100]. Total function: empty sets, zero
// experience and missing optional fields all have defined results.
func (s *Scorer) Score(p profile.CandidateProfile, j job.Requirement) float64 {
	total := s.weights.Keyword*s.keywordScore(p, j) +
		s.weights.Skill*s.skillScore(p, j) +
		s.weights.Experience*s.experienceScore(p, j) +
		s.weights.Education*s.educationScore(p, j)

	if total < 0 {
		return 0
	}
	if total > 100 {
		return 100
	}
	return total
}

// Breakdown exposes the sub-scores for explanations and audit.
type Breakdown struct {
	Keyword    float64
	Skill      float64
	Experience float64
	Education  float64
}

func (s *Scorer) ScoreBreakdown(p profile.CandidateProfile, j job.Requirement) Breakdown {
	return Breakdown{
		Keyword:    s.keywordScore(p, j),
		Skill:      s.skillScore(p, j),
		Experience: s.experienceScore(p, j),
		Education:  s.educationScore(p, j),
	}
}

func (s *Scorer) keywordScore(p profile.CandidateProfile, j job.Requirement) float64 {
	tokens := titleTokens(j.Title)
	if len(tokens) == 0 {
		// An untitled job falls back to the skill overlap; missing
		// optional fields default neutral, same as education.
		return s.skillScore(p, j)
	}

	matched := 0
	for _, t := range tokens {
		if p.HasSkill(t) || skills.ContainsToken(p.RawText, t) {
			matched++
		}
	}
	return 100 * float64(matched) / float64(len(tokens))
}

func (s *Scorer) skillScore(p profile.CandidateProfile, j job.Requirement) float64 {
	jobSkills := j.AllSkills()
	if len(jobSkills) == 0 {
		return 0
	}

	expanded := s.synonyms.Expand(p.Skills)
	var matchedWeight, totalWeight float64
	for skill := range jobSkills {
		w := s.tiers.Weight(skill)
		totalWeight += w
		if skillMatches(skill, expanded, s.synonyms) {
			matchedWeight += w
		}
	}
	if totalWeight == 0 {
		return 0
	}
	return 100 * matchedWeight / totalWeight
}

// skillMatches treats a job skill as covered when the skill itself or any of
// its synonyms appears in the expanded profile set.
func skillMatches(skill string, expandedProfile map[string]struct{}, table *skills.SynonymTable) bool {
	if _, ok := expandedProfile[skill]; ok {
		return true
	}
	for _, syn := range table.Synonyms(skill) {
		if _, ok := expandedProfile[syn]; ok {
			return true
		}
	}
	return false
}

func (s *Scorer) experienceScore(p profile.CandidateProfile, j job.Requirement) float64 {
	minY := j.MinExperienceYears
	maxY := j.MaxYearsOrDefault()
	years := p.YearsExperience

	if years >= minY && years <= maxY {
		return 100
	}

	distance := minY - years
	if years > maxY {
		distance = years - maxY
	}
	score := 100 - experienceDecayPerYear*distance
	if score < 0 {
		return 0
	}
	return score
}

func (s *Scorer) educationScore(p profile.CandidateProfile, j job.Requirement) float64 {
	if j.EducationRequired == nil {
		return 100
	}
	if p.Education >= *j.EducationRequired {
		return 100
	}
	return 0
}

var titleStopwords = map[string]struct{}{
	"and": {}, "of": {}, "for": {}, "the": {}, "with": {}, "in": {},
	"to": {}, "a": {}, "an": {}, "at": {},
}

func titleTokens(title string) []string {
	fields := strings.Fields(strings.ToLower(title))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,()-/")
		if len(f) < 2 {
			continue
		}
		if _, stop := titleStopwords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}
