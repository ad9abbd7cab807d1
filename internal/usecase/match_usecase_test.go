package usecase

import (
	"context"
	"sync"
	"testing"

	"recruiter-pro/internal/ats"
	"recruiter-pro/internal/classify"
	"recruiter-pro/internal/domain/job"
	"recruiter-pro/internal/domain/match"
	"recruiter-pro/internal/domain/profile"
	"recruiter-pro/internal/extract"
	"recruiter-pro/internal/features"
	"recruiter-pro/internal/repository"
	"recruiter-pro/internal/skills"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJobRepo struct {
	rows []repository.JobRow
}

func (f *fakeJobRepo) FindByID(_ context.Context, jobID string) (repository.JobRow, error) {
	for _, r := range f.rows {
		if r.JobID == jobID {
			return r, nil
		}
	}
	return repository.JobRow{}, repository.ErrJobNotFound
}

func (f *fakeJobRepo) ListActive(_ context.Context, _, _ int) ([]repository.JobRow, error) {
	return f.rows, nil
}

func (f *fakeJobRepo) CountActive(_ context.Context) (int, error) {
	return len(f.rows), nil
}

func (f *fakeJobRepo) Upsert(_ context.Context, row repository.JobRow) error {
	f.rows = append(f.rows, row)
	return nil
}

type fakeMatchRepo struct {
	mu      sync.Mutex
	upserts []repository.MatchRow
}

func (f *fakeMatchRepo) Upsert(_ context.Context, row repository.MatchRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, row)
	return nil
}

func (f *fakeMatchRepo) ListByCandidate(_ context.Context, candidateRef string, _ int) ([]repository.MatchRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]repository.MatchRow, 0)
	for _, r := range f.upserts {
		if r.CandidateRef == candidateRef {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeNotifier struct {
	mu        sync.Mutex
	progress  int
	completed int
}

func (f *fakeNotifier) BatchProgress(_ string, _, _ int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.progress++
}

func (f *fakeNotifier) BatchCompleted(_ string, _ int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed++
}

func catalogRows() []repository.JobRow {
	five := 5.0
	eight := 8.0
	return []repository.JobRow{
		{
			JobID: "JOB-001", Title: "Backend Engineer (Go)",
			RequiredSkills:     []string{"go", "postgresql"},
			MinExperienceYears: 2, MaxExperienceYears: &five,
			Seniority:   "mid",
			Description: "Go services with PostgreSQL and Redis.",
		},
		{
			JobID: "JOB-002", Title: "Senior Python Developer",
			RequiredSkills:     []string{"python", "django"},
			MinExperienceYears: 5, MaxExperienceYears: &eight,
			Seniority:   "senior",
			Description: "Python and Django backend services.",
		},
		{
			JobID: "JOB-003", Title: "Mobile Developer",
			RequiredSkills:     []string{"kotlin", "android"},
			MinExperienceYears: 2, MaxExperienceYears: &five,
			Seniority:   "mid",
			Description: "Android development in Kotlin.",
		},
	}
}

func newTestMatcher(jobs repository.JobRepository, matches repository.MatchRepository) *Matcher {
	lexicon := skills.NewLexicon(skills.DefaultCanonicalSkills(), skills.DefaultAliases())
	synonyms := skills.NewSynonymTable(skills.DefaultSynonymGroups())
	tiers := features.SkillTiers{}
	generator := features.NewGenerator(tiers, features.FitVectorizer(features.ReferenceCorpus()))
	smoother := classify.NewSmoother(nil, classify.DefaultThresholds(), nil)
	scorer := ats.NewScorer(ats.DefaultWeights(), tiers, synonyms)
	extractor := extract.New(lexicon, nil)

	return NewMatcher(
		extractor, lexicon, generator, smoother, scorer,
		match.DefaultAggregateConfig(), jobs, matches, nil, nil,
	)
}

func goCandidate() CandidateInput {
	years := 3.0
	return CandidateInput{
		CandidateRef:    "CAND-1",
		Skills:          []string{"go", "postgresql", "docker"},
		YearsExperience: &years,
		Seniority:       "mid",
	}
}

func TestMatchPairDegradedClassifierUsesRuleScore(t *testing.T) {
	matches := &fakeMatchRepo{}
	m := newTestMatcher(&fakeJobRepo{rows: catalogRows()}, matches)

	out, err := m.MatchPair(context.Background(), goCandidate(), "JOB-001")
	require.NoError(t, err)

	assert.Nil(t, out.Record.ML)
	assert.InDelta(t, out.Record.ATSScore, out.Record.FinalScore, 1e-9)
	assert.Greater(t, out.Record.FinalScore, 0.0)
	assert.Equal(t, "JOB-001", out.Record.JobRef)
}

func TestMatchPairPersistsHistory(t *testing.T) {
	matches := &fakeMatchRepo{}
	m := newTestMatcher(&fakeJobRepo{rows: catalogRows()}, matches)

	_, err := m.MatchPair(context.Background(), goCandidate(), "JOB-001")
	require.NoError(t, err)

	require.Len(t, matches.upserts, 1)
	assert.Equal(t, "CAND-1", matches.upserts[0].CandidateRef)
	assert.Equal(t, "JOB-001", matches.upserts[0].JobID)
}

func TestMatchPairAnonymousCandidateSkipsHistory(t *testing.T) {
	matches := &fakeMatchRepo{}
	m := newTestMatcher(&fakeJobRepo{rows: catalogRows()}, matches)

	in := goCandidate()
	in.CandidateRef = ""
	_, err := m.MatchPair(context.Background(), in, "JOB-001")
	require.NoError(t, err)
	assert.Empty(t, matches.upserts)
}

func TestMatchPairUnknownJob(t *testing.T) {
	m := newTestMatcher(&fakeJobRepo{rows: catalogRows()}, &fakeMatchRepo{})

	_, err := m.MatchPair(context.Background(), goCandidate(), "JOB-404")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestMatchPairEmptyCandidate(t *testing.T) {
	m := newTestMatcher(&fakeJobRepo{rows: catalogRows()}, &fakeMatchRepo{})

	_, err := m.MatchPair(context.Background(), CandidateInput{}, "JOB-001")
	assert.ErrorIs(t, err, ErrEmptyProfile)
}

func TestMatchPairResumeTextResolvesProfile(t *testing.T) {
	m := newTestMatcher(&fakeJobRepo{rows: catalogRows()}, &fakeMatchRepo{})

	in := CandidateInput{
		CandidateRef: "CAND-2",
		ResumeText:   "Jane Doe\njane@example.com\n4 years of experience with Go, PostgreSQL and Docker.",
	}
	out, err := m.MatchPair(context.Background(), in, "JOB-001")
	require.NoError(t, err)
	assert.Greater(t, out.Breakdown.Skill, 0.0)
}

func TestMatchCacheKeyDeterministic(t *testing.T) {
	p := profile.CandidateProfile{
		Skills:          map[string]struct{}{"go": {}, "docker": {}},
		YearsExperience: 3,
	}
	j := job.Requirement{JobID: "JOB-001", RequiredSkills: map[string]struct{}{"go": {}}}

	assert.Equal(t, MatchCacheKey(p, j), MatchCacheKey(p, j))
}

func TestMatchCacheKeySensitiveToInputs(t *testing.T) {
	p := profile.CandidateProfile{Skills: map[string]struct{}{"go": {}}, YearsExperience: 3}
	j := job.Requirement{JobID: "JOB-001", RequiredSkills: map[string]struct{}{"go": {}}}

	base := MatchCacheKey(p, j)

	p2 := p
	p2.YearsExperience = 4
	assert.NotEqual(t, base, MatchCacheKey(p2, j))

	j2 := j
	j2.JobID = "JOB-002"
	assert.NotEqual(t, base, MatchCacheKey(p, j2))
}

func TestBatchMatchCatalogRanksAndTruncates(t *testing.T) {
	matches := &fakeMatchRepo{}
	jobs := &fakeJobRepo{rows: catalogRows()}
	notifier := &fakeNotifier{}
	m := newTestMatcher(jobs, matches)
	batch := NewBatchMatcher(m, jobs, 4, 10, notifier, nil)

	res, err := batch.MatchCatalog(context.Background(), goCandidate(), 2)
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalJobs)
	require.Len(t, res.Records, 2)
	assert.Equal(t, 1, res.Records[0].Rank)
	assert.Equal(t, 2, res.Records[1].Rank)
	assert.GreaterOrEqual(t, res.Records[0].FinalScore, res.Records[1].FinalScore)
	assert.Equal(t, "JOB-001", res.Records[0].JobRef)

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	assert.Equal(t, 3, notifier.progress)
	assert.Equal(t, 1, notifier.completed)
}

func TestBatchMatchCatalogEmpty(t *testing.T) {
	m := newTestMatcher(&fakeJobRepo{}, &fakeMatchRepo{})
	batch := NewBatchMatcher(m, &fakeJobRepo{}, 2, 10, nil, nil)

	res, err := batch.MatchCatalog(context.Background(), goCandidate(), 5)
	require.NoError(t, err)
	assert.Empty(t, res.Records)
}

func TestBatchMatchCatalogPersistsRankedRecords(t *testing.T) {
	matches := &fakeMatchRepo{}
	jobs := &fakeJobRepo{rows: catalogRows()}
	m := newTestMatcher(jobs, matches)
	batch := NewBatchMatcher(m, jobs, 2, 10, nil, nil)

	_, err := batch.MatchCatalog(context.Background(), goCandidate(), 0)
	require.NoError(t, err)
	assert.Len(t, matches.upserts, 3)
}
