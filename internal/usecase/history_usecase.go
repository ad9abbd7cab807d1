package usecase

import (
	"context"
	"strings"

	"recruiter-pro/internal/repository"
)

type HistoryUsecase interface {
	ListByCandidate(ctx context.Context, candidateRef string, limit int) ([]repository.MatchRow, error)
}

type History struct {
	matches repository.MatchRepository
}

func NewHistoryUsecase(matches repository.MatchRepository) *History {
	return &History{matches: matches}
}

func (u *History) ListByCandidate(ctx context.Context, candidateRef string, limit int) ([]repository.MatchRow, error) {
	candidateRef = strings.TrimSpace(candidateRef)
	if candidateRef == "" {
		return nil, ErrInvalidInput
	}

	rows, err := u.matches.ListByCandidate(ctx, candidateRef, limit)
	if err != nil {
		return nil, ErrInternal
	}
	return rows, nil
}
