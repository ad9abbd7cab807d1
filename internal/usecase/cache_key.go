package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"recruiter-pro/internal/domain/job"
	"recruiter-pro/internal/domain/profile"
	"recruiter-pro/internal/features"
)

// matchCacheKeyInput is everything the pipeline reads from a pair. Two calls
// with the same canonical inputs hash to the same key, so a memoized hit is
// guaranteed to equal a recomputation.
type matchCacheKeyInput struct {
	ProfileSkills []string `json:"profile_skills"`
	Years         float64  `json:"years"`
	Education     string   `json:"education"`
	Seniority     string   `json:"seniority"`
	RawTextHash   string   `json:"raw_text_hash"`

	JobID        string   `json:"job_id"`
	JobTitle     string   `json:"job_title"`
	JobSkills    []string `json:"job_skills"`
	MinYears     float64  `json:"min_years"`
	MaxYears     *float64 `json:"max_years"`
	JobSeniority string   `json:"job_seniority"`
	JobEducation string   `json:"job_education"`
	DescHash     string   `json:"desc_hash"`

	FeatureOrder []string `json:"feature_order"`
}

func hashText(s string) string {
	s = strings.Join(strings.Fields(strings.ToLower(s)), " ")
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func MatchCacheKey(p profile.CandidateProfile, j job.Requirement) string {
	edu := ""
	if j.EducationRequired != nil {
		edu = j.EducationRequired.String()
	}

	in := matchCacheKeyInput{
		ProfileSkills: p.SortedSkills(),
		Years:         p.YearsExperience,
		Education:     p.Education.String(),
		Seniority:     p.Seniority.String(),
		RawTextHash:   hashText(p.RawText),

		JobID:        j.JobID,
		JobTitle:     strings.ToLower(strings.TrimSpace(j.Title)),
		JobSkills:    j.SortedSkills(),
		MinYears:     j.MinExperienceYears,
		MaxYears:     j.MaxExperienceYears,
		JobSeniority: j.Seniority.String(),
		JobEducation: edu,
		DescHash:     hashText(j.Description),

		FeatureOrder: features.Order(),
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "match:pair:" + hex.EncodeToString(sum[:])
}
