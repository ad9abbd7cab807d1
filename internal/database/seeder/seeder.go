package seeder

import (
	"context"

	"recruiter-pro/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
