package dto

type HistoryEntryResponse struct {
	JobID         string   `json:"job_id"`
	JobTitle      string   `json:"job_title"`
	Label         *string  `json:"label"`
	Confidence    *float64 `json:"confidence"`
	ATSScore      float64  `json:"ats_score"`
	FinalScore    float64  `json:"final_score"`
	Status        string   `json:"status"`
	LowConfidence bool     `json:"low_confidence"`
	ScoredAt      string   `json:"scored_at"`
}

type HistoryResponse struct {
	CandidateRef string                 `json:"candidate_ref"`
	Entries      []HistoryEntryResponse `json:"entries"`
}
