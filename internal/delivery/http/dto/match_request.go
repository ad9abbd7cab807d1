package dto

// CandidateRequest accepts either a raw resume or a structured profile.
type CandidateRequest struct {
	CandidateRef    string   `json:"candidate_ref" validate:"omitempty,max=128"`
	ResumeText      string   `json:"resume_text" validate:"omitempty,max=100000"`
	Skills          []string `json:"skills" validate:"omitempty,dive,min=1,max=64"`
	YearsExperience *float64 `json:"years_experience" validate:"omitempty,gte=0,lte=60"`
	Education       string   `json:"education" validate:"omitempty,max=32"`
	Seniority       string   `json:"seniority" validate:"omitempty,max=32"`
}

type MatchRequest struct {
	Candidate CandidateRequest `json:"candidate" validate:"required"`
	JobID     string           `json:"job_id" validate:"required,max=64"`
}

type BatchMatchRequest struct {
	Candidate CandidateRequest `json:"candidate" validate:"required"`
	TopK      int              `json:"top_k" validate:"omitempty,gte=1,lte=100"`
}
