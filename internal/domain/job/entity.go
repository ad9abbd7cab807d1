package job

import (
	"sort"

	"recruiter-pro/internal/domain/profile"
)

// Requirement is loaded from the job catalog and shared read-only across
// concurrent match computations.
type Requirement struct {
	JobID              string
	Title              string
	RequiredSkills     map[string]struct{}
	PreferredSkills    map[string]struct{}
	MinExperienceYears float64
	MaxExperienceYears *float64
	Seniority          profile.Seniority
	EducationRequired  *profile.EducationLevel
	Description        string
	LowConfidence      bool
}

func (r Requirement) AllSkills() map[string]struct{} {
	out := make(map[string]struct{}, len(r.RequiredSkills)+len(r.PreferredSkills))
	for s := range r.RequiredSkills {
		out[s] = struct{}{}
	}
	for s := range r.PreferredSkills {
		out[s] = struct{}{}
	}
	return out
}

func (r Requirement) SortedSkills() []string {
	all := r.AllSkills()
	out := make([]string, 0, len(all))
	for s := range all {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

const maxYearsUnbounded = 1e9

// MaxYearsOrDefault treats an unset upper bound as unbounded.
func (r Requirement) MaxYearsOrDefault() float64 {
	if r.MaxExperienceYears == nil {
		return maxYearsUnbounded
	}
	return *r.MaxExperienceYears
}
