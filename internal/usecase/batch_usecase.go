package usecase

import (
	"context"
	"sync"

	"recruiter-pro/internal/domain/match"
	"recruiter-pro/internal/repository"

	"go.uber.org/zap"
)

// ProgressNotifier receives batch progress events. Implementations must not
// block; the scoring loop calls them inline.
type ProgressNotifier interface {
	BatchProgress(candidateRef string, done, total int)
	BatchCompleted(candidateRef string, total int)
}

type BatchResult struct {
	CandidateRef string
	TotalJobs    int
	Records      []match.Record
}

type BatchUsecase interface {
	MatchCatalog(ctx context.Context, in CandidateInput, topK int) (BatchResult, error)
}

// BatchMatcher scores one candidate against the whole active catalog with a
// bounded worker pool, then ranks the outcomes.
type BatchMatcher struct {
	matcher  *Matcher
	jobs     repository.JobRepository
	workers  int
	topK     int
	notifier ProgressNotifier
	logger   *zap.Logger
}

func NewBatchMatcher(matcher *Matcher, jobs repository.JobRepository, workers, topK int, notifier ProgressNotifier, logger *zap.Logger) *BatchMatcher {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BatchMatcher{
		matcher:  matcher,
		jobs:     jobs,
		workers:  workers,
		topK:     topK,
		notifier: notifier,
		logger:   logger,
	}
}

func (u *BatchMatcher) MatchCatalog(ctx context.Context, in CandidateInput, topK int) (BatchResult, error) {
	if topK <= 0 {
		topK = u.topK
	}

	p, err := u.matcher.resolveProfile(in)
	if err != nil {
		return BatchResult{}, err
	}

	rows, err := u.jobs.ListActive(ctx, 500, 0)
	if err != nil {
		return BatchResult{}, ErrInternal
	}
	total := len(rows)
	if total == 0 {
		return BatchResult{CandidateRef: in.CandidateRef}, nil
	}

	var (
		mu      sync.Mutex
		records = make([]match.Record, 0, total)
		done    int
	)

	pool := NewWorkerPool(u.workers, total)
	out := pool.Run(ctx)

	for _, row := range rows {
		row := row
		pool.Submit(func(taskCtx context.Context) error {
			j := RequirementFromRow(u.matcher.lexicon, row)
			outcome := u.matcher.scorePair(taskCtx, p, j, in.CandidateRef)

			mu.Lock()
			records = append(records, outcome.Record)
			done++
			n := done
			mu.Unlock()

			if u.notifier != nil {
				u.notifier.BatchProgress(in.CandidateRef, n, total)
			}
			return nil
		})
	}
	pool.Close()

	for range out {
	}
	if err := ctx.Err(); err != nil {
		return BatchResult{}, err
	}

	ranked := match.Rank(records, topK)

	for _, rec := range ranked {
		if err := u.matcher.persist(ctx, rec); err != nil {
			u.logger.Warn("batch history upsert failed",
				zap.String("candidate_ref", in.CandidateRef),
				zap.String("job_id", rec.JobRef),
				zap.Error(err),
			)
		}
	}

	if u.notifier != nil {
		u.notifier.BatchCompleted(in.CandidateRef, total)
	}

	u.logger.Info("batch match completed",
		zap.String("candidate_ref", in.CandidateRef),
		zap.Int("jobs_scored", total),
		zap.Int("returned", len(ranked)),
	)

	return BatchResult{
		CandidateRef: in.CandidateRef,
		TotalJobs:    total,
		Records:      ranked,
	}, nil
}
