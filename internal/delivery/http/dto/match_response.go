package dto

type ClassifierResponse struct {
	Label          string             `json:"label"`
	RawLabel       string             `json:"raw_label"`
	Probabilities  map[string]float64 `json:"probabilities"`
	Confidence     float64            `json:"confidence"`
	SmoothingFlags []string           `json:"smoothing_flags"`
}

type BreakdownResponse struct {
	Keyword    float64 `json:"keyword"`
	Skill      float64 `json:"skill"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
}

type MatchResponse struct {
	CandidateRef  string              `json:"candidate_ref,omitempty"`
	JobID         string              `json:"job_id"`
	JobTitle      string              `json:"job_title"`
	Classifier    *ClassifierResponse `json:"classifier"`
	ATSScore      float64             `json:"ats_score"`
	Breakdown     *BreakdownResponse  `json:"breakdown,omitempty"`
	FinalScore    float64             `json:"final_score"`
	Status        string              `json:"status"`
	Rank          int                 `json:"rank,omitempty"`
	LowConfidence bool                `json:"low_confidence"`
}

type BatchMatchResponse struct {
	CandidateRef string          `json:"candidate_ref,omitempty"`
	TotalJobs    int             `json:"total_jobs"`
	Matches      []MatchResponse `json:"matches"`
}
