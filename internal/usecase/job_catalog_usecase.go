package usecase

import (
	"context"
	"errors"

	"recruiter-pro/internal/repository"
)

type JobCatalogUsecase interface {
	List(ctx context.Context, limit, offset int) ([]repository.JobRow, error)
	Get(ctx context.Context, jobID string) (repository.JobRow, error)
}

type JobCatalog struct {
	jobs repository.JobRepository
}

func NewJobCatalogUsecase(jobs repository.JobRepository) *JobCatalog {
	return &JobCatalog{jobs: jobs}
}

func (u *JobCatalog) List(ctx context.Context, limit, offset int) ([]repository.JobRow, error) {
	rows, err := u.jobs.ListActive(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return rows, nil
}

func (u *JobCatalog) Get(ctx context.Context, jobID string) (repository.JobRow, error) {
	row, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return repository.JobRow{}, ErrJobNotFound
		}
		return repository.JobRow{}, ErrInternal
	}
	return row, nil
}
