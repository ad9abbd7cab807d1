package repository

import (
	"context"
	"errors"

	"recruiter-pro/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrRecruiterNotFound = errors.New("recruiter not found")

type Recruiter struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
}

type RecruiterRepository interface {
	FindByEmail(ctx context.Context, email string) (Recruiter, error)
	Create(ctx context.Context, rec Recruiter) error
}

type PostgresRecruiterRepository struct {
	db database.DB
}

func NewPostgresRecruiterRepository(db database.DB) *PostgresRecruiterRepository {
	return &PostgresRecruiterRepository{db: db}
}

func (r *PostgresRecruiterRepository) FindByEmail(ctx context.Context, email string) (Recruiter, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, COALESCE(name, ''), password_hash
		 FROM recruiters
		 WHERE LOWER(email) = LOWER($1)`,
		email,
	)

	var rec Recruiter
	if err := row.Scan(&rec.ID, &rec.Email, &rec.Name, &rec.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Recruiter{}, ErrRecruiterNotFound
		}
		return Recruiter{}, err
	}
	return rec, nil
}

func (r *PostgresRecruiterRepository) Create(ctx context.Context, rec Recruiter) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO recruiters (id, email, name, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 ON CONFLICT (email) DO NOTHING`,
		rec.ID, rec.Email, rec.Name, rec.PasswordHash,
	)
	return err
}
