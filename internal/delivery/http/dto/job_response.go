package dto

type JobResponse struct {
	JobID              string   `json:"job_id"`
	Title              string   `json:"title"`
	RequiredSkills     []string `json:"required_skills"`
	PreferredSkills    []string `json:"preferred_skills"`
	MinExperienceYears float64  `json:"min_experience_years"`
	MaxExperienceYears *float64 `json:"max_experience_years,omitempty"`
	Seniority          string   `json:"seniority"`
	EducationRequired  *string  `json:"education_required,omitempty"`
	Description        string   `json:"description"`
}

type JobListResponse struct {
	Jobs []JobResponse `json:"jobs"`
}
