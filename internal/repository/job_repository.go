package repository

import (
	"context"
	"errors"

	"recruiter-pro/internal/database"

	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

// JobRow is the catalog row as stored. Skill lists stay raw strings here;
// canonicalization against the lexicon happens in the usecase layer.
type JobRow struct {
	JobID              string
	Title              string
	RequiredSkills     []string
	PreferredSkills    []string
	MinExperienceYears float64
	MaxExperienceYears *float64
	Seniority          string
	EducationRequired  *string
	Description        string
}

type JobRepository interface {
	FindByID(ctx context.Context, jobID string) (JobRow, error)
	ListActive(ctx context.Context, limit, offset int) ([]JobRow, error)
	CountActive(ctx context.Context) (int, error)
	Upsert(ctx context.Context, row JobRow) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) FindByID(ctx context.Context, jobID string) (JobRow, error) {
	row := r.db.QueryRow(ctx,
		`SELECT job_id, COALESCE(title, ''), required_skills, preferred_skills,
		        min_experience_years, max_experience_years, COALESCE(seniority, ''),
		        education_required, COALESCE(description, '')
		 FROM jobs
		 WHERE job_id = $1 AND active`,
		jobID,
	)

	var j JobRow
	err := row.Scan(
		&j.JobID, &j.Title, &j.RequiredSkills, &j.PreferredSkills,
		&j.MinExperienceYears, &j.MaxExperienceYears, &j.Seniority,
		&j.EducationRequired, &j.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return JobRow{}, ErrJobNotFound
		}
		return JobRow{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ListActive(ctx context.Context, limit, offset int) ([]JobRow, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT job_id, COALESCE(title, ''), required_skills, preferred_skills,
		        min_experience_years, max_experience_years, COALESCE(seniority, ''),
		        education_required, COALESCE(description, '')
		 FROM jobs
		 WHERE active
		 ORDER BY job_id ASC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobRow, 0)
	for rows.Next() {
		var j JobRow
		if err := rows.Scan(
			&j.JobID, &j.Title, &j.RequiredSkills, &j.PreferredSkills,
			&j.MinExperienceYears, &j.MaxExperienceYears, &j.Seniority,
			&j.EducationRequired, &j.Description,
		); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) CountActive(ctx context.Context) (int, error) {
	var n int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE active`)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresJobRepository) Upsert(ctx context.Context, row JobRow) error {
	if row.RequiredSkills == nil {
		row.RequiredSkills = []string{}
	}
	if row.PreferredSkills == nil {
		row.PreferredSkills = []string{}
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (job_id, title, required_skills, preferred_skills,
		                   min_experience_years, max_experience_years, seniority,
		                   education_required, description, active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, NOW())
		 ON CONFLICT (job_id) DO UPDATE SET
		        title = EXCLUDED.title,
		        required_skills = EXCLUDED.required_skills,
		        preferred_skills = EXCLUDED.preferred_skills,
		        min_experience_years = EXCLUDED.min_experience_years,
		        max_experience_years = EXCLUDED.max_experience_years,
		        seniority = EXCLUDED.seniority,
		        education_required = EXCLUDED.education_required,
		        description = EXCLUDED.description,
		        active = TRUE`,
		row.JobID, row.Title, row.RequiredSkills, row.PreferredSkills,
		row.MinExperienceYears, row.MaxExperienceYears, row.Seniority,
		row.EducationRequired, row.Description,
	)
	return err
}
