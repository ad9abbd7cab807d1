package seeder

import (
	"context"
	"os"
	"strings"

	"recruiter-pro/internal/database"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type RecruiterSeeder struct{}

func (RecruiterSeeder) Name() string { return "recruiters" }

func (RecruiterSeeder) Run(ctx context.Context, db database.DB) error {
	if err := ensureTableColumns(ctx, db, "recruiters",
		"id", "email", "name", "password_hash", "created_at",
	); err != nil {
		return err
	}

	email := strings.TrimSpace(os.Getenv("RECRUITER_ADMIN_EMAIL"))
	if email == "" {
		email = "admin@recruiter-pro.local"
	}
	password := os.Getenv("RECRUITER_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx,
		`INSERT INTO recruiters (id, email, name, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 ON CONFLICT (email) DO NOTHING`,
		uuid.New(), email, "Administrator", string(hash),
	)
	return err
}
