package app

import (
	"context"
	"errors"
	"time"

	"recruiter-pro/internal/ats"
	"recruiter-pro/internal/cache"
	"recruiter-pro/internal/classify"
	"recruiter-pro/internal/config"
	"recruiter-pro/internal/database"
	"recruiter-pro/internal/database/migration"
	dbpostgres "recruiter-pro/internal/database/postgres"
	"recruiter-pro/internal/domain/match"
	"recruiter-pro/internal/extract"
	"recruiter-pro/internal/features"
	"recruiter-pro/internal/pkg/jwt"
	"recruiter-pro/internal/repository"
	"recruiter-pro/internal/skills"
	"recruiter-pro/internal/usecase"
	"recruiter-pro/internal/ws"

	"go.uber.org/zap"
)

// Container wires configuration, storage and the scoring engine together.
// Construction fails fast on anything that would silently change scoring
// semantics; a missing classifier weight file is the one tolerated absence.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	DB    database.DB
	Cache *cache.Redis

	Lexicon   *skills.Lexicon
	Extractor *extract.Extractor
	Smoother  *classify.Smoother

	Jobs       repository.JobRepository
	Matches    repository.MatchRepository
	Recruiters repository.RecruiterRepository

	Matcher *usecase.Matcher
	Batch   *usecase.BatchMatcher
	Catalog *usecase.JobCatalog
	History *usecase.History
	Auth    *usecase.Auth

	JWT jwt.Service
	Hub *ws.Hub
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{Dir: "migrations"}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	memo := cache.NewRedis(cfg.Redis, logger)

	jobs := repository.NewPostgresJobRepository(db)
	matches := repository.NewPostgresMatchRepository(db)
	recruiters := repository.NewPostgresRecruiterRepository(db)

	engine, err := BuildEngine(ctx, cfg, jobs, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	matcher := usecase.NewMatcher(
		engine.Extractor, engine.Lexicon, engine.Generator, engine.Smoother,
		engine.Scorer, engine.AggregateConfig, jobs, matches, memo, logger,
	)

	hub := ws.NewHub(logger)
	notifier := ws.NewNotifier(hub, logger)

	batch := usecase.NewBatchMatcher(matcher, jobs, cfg.Scoring.Workers, cfg.Scoring.TopK, notifier, logger)

	jwtSvc := jwt.NewHMACService(
		cfg.Auth.AccessSecret,
		cfg.Auth.RefreshSecret,
		time.Duration(cfg.Auth.AccessTTLMinutes)*time.Minute,
		time.Duration(cfg.Auth.RefreshTTLHours)*time.Hour,
	)

	return &Container{
		Config: cfg,
		Logger: logger,

		DB:    db,
		Cache: memo,

		Lexicon:   engine.Lexicon,
		Extractor: engine.Extractor,
		Smoother:  engine.Smoother,

		Jobs:       jobs,
		Matches:    matches,
		Recruiters: recruiters,

		Matcher: matcher,
		Batch:   batch,
		Catalog: usecase.NewJobCatalogUsecase(jobs),
		History: usecase.NewHistoryUsecase(matches),
		Auth:    usecase.NewAuthUsecase(recruiters, jwtSvc),

		JWT: jwtSvc,
		Hub: hub,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// Engine bundles the pure scoring components. It has no storage or transport
// dependencies, so the CLI reuses it without a container.
type Engine struct {
	Lexicon         *skills.Lexicon
	Synonyms        *skills.SynonymTable
	Extractor       *extract.Extractor
	Generator       *features.Generator
	Smoother        *classify.Smoother
	Scorer          *ats.Scorer
	AggregateConfig match.AggregateConfig
}

// BuildEngine assembles the scoring pipeline. The vectorizer fits once over
// the active catalog descriptions, falling back to the reference corpus when
// the catalog is empty. A missing weight file degrades the classifier; a
// malformed one is fatal.
func BuildEngine(ctx context.Context, cfg config.Config, jobs repository.JobRepository, logger *zap.Logger) (Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	lexicon := skills.NewLexicon(skills.DefaultCanonicalSkills(), skills.DefaultAliases())
	synonyms := skills.NewSynonymTable(skills.DefaultSynonymGroups())

	tiers := features.SkillTiers{
		Critical:  lexicon.CanonicalSet(cfg.Skills.Critical),
		Important: lexicon.CanonicalSet(cfg.Skills.Important),
	}

	corpus := make([]string, 0)
	if jobs != nil {
		rows, err := jobs.ListActive(ctx, 500, 0)
		if err != nil {
			return Engine{}, err
		}
		for _, row := range rows {
			corpus = append(corpus, row.Title+" "+row.Description)
		}
	}
	if len(corpus) == 0 {
		logger.Warn("empty job catalog, fitting vectorizer on reference corpus")
		corpus = features.ReferenceCorpus()
	}
	vectorizer := features.FitVectorizer(corpus)

	var cls classify.Classifier
	model, err := classify.LoadModel(cfg.Model.Path)
	switch {
	case err == nil:
		cls = model
	case errors.Is(err, classify.ErrModelUnavailable):
		logger.Warn("classifier weights unavailable, running rule score only",
			zap.String("path", cfg.Model.Path), zap.Error(err))
	default:
		return Engine{}, err
	}

	thresholds := classify.Thresholds{
		HighConfidence: cfg.Smoothing.HighConfidence,
		HighFloor:      cfg.Smoothing.HighFloor,
		MediumFloor:    cfg.Smoothing.MediumFloor,
		UpgradeOverlap: cfg.Smoothing.UpgradeOverlap,
		AmbiguityGap:   cfg.Smoothing.AmbiguityGap,
	}

	weights := ats.Weights{
		Keyword:    cfg.Scoring.KeywordWeight,
		Skill:      cfg.Scoring.SkillWeight,
		Experience: cfg.Scoring.ExperienceWeight,
		Education:  cfg.Scoring.EducationWeight,
	}

	aggCfg := match.AggregateConfig{
		MLWeight:        cfg.Scoring.MLWeight,
		ATSWeight:       cfg.Scoring.ATSWeight,
		AcceptThreshold: cfg.Scoring.AcceptThreshold,
		ReviewThreshold: cfg.Scoring.ReviewThreshold,
	}

	return Engine{
		Lexicon:         lexicon,
		Synonyms:        synonyms,
		Extractor:       extract.New(lexicon, logger),
		Generator:       features.NewGenerator(tiers, vectorizer),
		Smoother:        classify.NewSmoother(cls, thresholds, logger),
		Scorer:          ats.NewScorer(weights, tiers, synonyms),
		AggregateConfig: aggCfg,
	}, nil
}
