package usecase

import (
	"context"
	"errors"
	"strings"

	"recruiter-pro/internal/ats"
	"recruiter-pro/internal/cache"
	"recruiter-pro/internal/classify"
	"recruiter-pro/internal/domain/job"
	"recruiter-pro/internal/domain/match"
	"recruiter-pro/internal/domain/profile"
	"recruiter-pro/internal/extract"
	"recruiter-pro/internal/features"
	"recruiter-pro/internal/repository"
	"recruiter-pro/internal/skills"

	"go.uber.org/zap"
)

// CandidateInput is either a raw resume text or a structured profile.
// Raw text wins when both are present.
type CandidateInput struct {
	CandidateRef    string
	ResumeText      string
	Skills          []string
	YearsExperience *float64
	Education       string
	Seniority       string
}

// MatchOutcome pairs the scored record with the ATS sub-score breakdown.
type MatchOutcome struct {
	Record    match.Record  `json:"record"`
	Breakdown ats.Breakdown `json:"breakdown"`
}

type MatchUsecase interface {
	MatchPair(ctx context.Context, in CandidateInput, jobID string) (MatchOutcome, error)
}

type Matcher struct {
	extractor *extract.Extractor
	lexicon   *skills.Lexicon
	generator *features.Generator
	smoother  *classify.Smoother
	scorer    *ats.Scorer
	aggCfg    match.AggregateConfig

	jobs    repository.JobRepository
	matches repository.MatchRepository
	cache   *cache.Redis
	logger  *zap.Logger
}

func NewMatcher(
	extractor *extract.Extractor,
	lexicon *skills.Lexicon,
	generator *features.Generator,
	smoother *classify.Smoother,
	scorer *ats.Scorer,
	aggCfg match.AggregateConfig,
	jobs repository.JobRepository,
	matches repository.MatchRepository,
	memo *cache.Redis,
	logger *zap.Logger,
) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{
		extractor: extractor,
		lexicon:   lexicon,
		generator: generator,
		smoother:  smoother,
		scorer:    scorer,
		aggCfg:    aggCfg,
		jobs:      jobs,
		matches:   matches,
		cache:     memo,
		logger:    logger,
	}
}

func (u *Matcher) MatchPair(ctx context.Context, in CandidateInput, jobID string) (MatchOutcome, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return MatchOutcome{}, ErrJobNotFound
	}

	row, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return MatchOutcome{}, ErrJobNotFound
		}
		return MatchOutcome{}, ErrInternal
	}
	j := RequirementFromRow(u.lexicon, row)

	p, err := u.resolveProfile(in)
	if err != nil {
		return MatchOutcome{}, err
	}

	out := u.scorePair(ctx, p, j, in.CandidateRef)

	if err := u.persist(ctx, out.Record); err != nil {
		u.logger.Warn("match history upsert failed", zap.String("job_id", jobID), zap.Error(err))
	}
	return out, nil
}

// scorePair runs the memoized pipeline for one resolved pair. It never
// fails: a degraded classifier falls back to the rule score alone.
func (u *Matcher) scorePair(ctx context.Context, p profile.CandidateProfile, j job.Requirement, candidateRef string) MatchOutcome {
	key := MatchCacheKey(p, j)

	var cached MatchOutcome
	if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		cached.Record.CandidateRef = candidateRef
		return cached
	}

	v := u.generator.Generate(p, j)

	ml, err := u.smoother.Score(v)
	if err != nil {
		if errors.Is(err, classify.ErrModelUnavailable) {
			u.logger.Debug("classifier unavailable, rule score only", zap.String("job_id", j.JobID))
		} else {
			u.logger.Warn("classifier failed, rule score only", zap.String("job_id", j.JobID), zap.Error(err))
		}
		ml = nil
	}

	atsScore := u.scorer.Score(p, j)
	rec := match.Aggregate(ml, atsScore, p, j, candidateRef, u.aggCfg)

	out := MatchOutcome{Record: rec, Breakdown: u.scorer.ScoreBreakdown(p, j)}
	_ = u.cache.SetJSON(ctx, key, out)
	return out
}

func (u *Matcher) resolveProfile(in CandidateInput) (profile.CandidateProfile, error) {
	if strings.TrimSpace(in.ResumeText) != "" {
		p, err := u.extractor.Profile(in.ResumeText)
		if err != nil {
			if errors.Is(err, extract.ErrEmptyInput) {
				return profile.CandidateProfile{}, ErrEmptyProfile
			}
			return profile.CandidateProfile{}, ErrInvalidInput
		}
		return p, nil
	}

	if len(in.Skills) == 0 {
		return profile.CandidateProfile{}, ErrEmptyProfile
	}

	p := profile.CandidateProfile{
		Skills:    u.lexicon.CanonicalSet(in.Skills),
		Education: profile.ParseEducationLevel(in.Education),
		Seniority: profile.ParseSeniority(in.Seniority),
		RawText:   strings.ToLower(strings.Join(in.Skills, " ")),
	}
	if in.YearsExperience != nil && *in.YearsExperience > 0 {
		p.YearsExperience = *in.YearsExperience
	}
	return p, nil
}

func (u *Matcher) persist(ctx context.Context, rec match.Record) error {
	if u.matches == nil || strings.TrimSpace(rec.CandidateRef) == "" {
		return nil
	}

	row := repository.MatchRow{
		CandidateRef:  rec.CandidateRef,
		JobID:         rec.JobRef,
		JobTitle:      rec.JobTitle,
		ATSScore:      rec.ATSScore,
		FinalScore:    rec.FinalScore,
		Status:        string(rec.Status),
		LowConfidence: rec.LowConfidence,
	}
	if rec.ML != nil {
		label := rec.ML.Label.String()
		conf := rec.ML.Confidence
		row.Label = &label
		row.Confidence = &conf
		row.SmoothingFlags = rec.ML.SmoothingFlags
	}
	return u.matches.Upsert(ctx, row)
}

// RequirementFromRow canonicalizes a stored catalog row against the lexicon.
func RequirementFromRow(lexicon *skills.Lexicon, row repository.JobRow) job.Requirement {
	var edu *profile.EducationLevel
	if row.EducationRequired != nil && strings.TrimSpace(*row.EducationRequired) != "" {
		lvl := profile.ParseEducationLevel(*row.EducationRequired)
		edu = &lvl
	}

	return job.Requirement{
		JobID:              row.JobID,
		Title:              row.Title,
		RequiredSkills:     lexicon.CanonicalSet(row.RequiredSkills),
		PreferredSkills:    lexicon.CanonicalSet(row.PreferredSkills),
		MinExperienceYears: row.MinExperienceYears,
		MaxExperienceYears: row.MaxExperienceYears,
		Seniority:          profile.ParseSeniority(row.Seniority),
		EducationRequired:  edu,
		Description:        row.Description,
	}
}
