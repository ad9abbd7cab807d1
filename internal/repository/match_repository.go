package repository

import (
	"context"
	"time"

	"recruiter-pro/internal/database"
)

// MatchRow is a persisted scoring outcome. One row per (candidate, job):
// rescoring the same pair replaces the previous row.
type MatchRow struct {
	CandidateRef   string
	JobID          string
	JobTitle       string
	Label          *string
	Confidence     *float64
	ATSScore       float64
	FinalScore     float64
	Status         string
	SmoothingFlags []string
	LowConfidence  bool
	ScoredAt       time.Time
}

type MatchRepository interface {
	Upsert(ctx context.Context, row MatchRow) error
	ListByCandidate(ctx context.Context, candidateRef string, limit int) ([]MatchRow, error)
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) Upsert(ctx context.Context, row MatchRow) error {
	if row.SmoothingFlags == nil {
		row.SmoothingFlags = []string{}
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO match_history (candidate_ref, job_id, job_title, label, confidence,
		                            ats_score, final_score, status, smoothing_flags,
		                            low_confidence, scored_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		 ON CONFLICT (candidate_ref, job_id) DO UPDATE SET
		        job_title = EXCLUDED.job_title,
		        label = EXCLUDED.label,
		        confidence = EXCLUDED.confidence,
		        ats_score = EXCLUDED.ats_score,
		        final_score = EXCLUDED.final_score,
		        status = EXCLUDED.status,
		        smoothing_flags = EXCLUDED.smoothing_flags,
		        low_confidence = EXCLUDED.low_confidence,
		        scored_at = NOW()`,
		row.CandidateRef, row.JobID, row.JobTitle, row.Label, row.Confidence,
		row.ATSScore, row.FinalScore, row.Status, row.SmoothingFlags,
		row.LowConfidence,
	)
	return err
}

func (r *PostgresMatchRepository) ListByCandidate(ctx context.Context, candidateRef string, limit int) ([]MatchRow, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	rows, err := r.db.Query(ctx,
		`SELECT candidate_ref, job_id, COALESCE(job_title, ''), label, confidence,
		        ats_score, final_score, status, smoothing_flags, low_confidence, scored_at
		 FROM match_history
		 WHERE candidate_ref = $1
		 ORDER BY final_score DESC, ats_score DESC, job_id ASC
		 LIMIT $2`,
		candidateRef, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MatchRow, 0)
	for rows.Next() {
		var m MatchRow
		if err := rows.Scan(
			&m.CandidateRef, &m.JobID, &m.JobTitle, &m.Label, &m.Confidence,
			&m.ATSScore, &m.FinalScore, &m.Status, &m.SmoothingFlags,
			&m.LowConfidence, &m.ScoredAt,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
