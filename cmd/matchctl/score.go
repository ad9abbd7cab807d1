package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"recruiter-pro/internal/app"
	"recruiter-pro/internal/config"
	dbpostgres "recruiter-pro/internal/database/postgres"
	"recruiter-pro/internal/domain/match"
	"recruiter-pro/internal/pkg/logger"
	"recruiter-pro/internal/repository"
	"recruiter-pro/internal/usecase"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	profilePath string
	jobPath     string
	jobID       string
	scoreTopK   int
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a candidate profile against one job or the whole catalog",
	Long:  "Reads a resume text file and scores it. With --job it scores against that job description file and prints JSON; without it, it scores against the active catalog and prints the ranked table.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		zlog, err := logger.New(false, cfg.App.Debug)
		if err != nil {
			return err
		}
		defer func() {
			_ = zlog.Sync()
		}()

		rawProfile, err := os.ReadFile(profilePath)
		if err != nil {
			return fmt.Errorf("read profile: %w", err)
		}

		if jobPath != "" {
			return scorePair(cmd.Context(), cfg, zlog, string(rawProfile))
		}
		return scoreCatalog(cmd.Context(), cfg, zlog, string(rawProfile))
	},
}

func scorePair(ctx context.Context, cfg config.Config, zlog *zap.Logger, rawProfile string) error {
	engine, err := app.BuildEngine(ctx, cfg, nil, zlog)
	if err != nil {
		return err
	}

	rawJob, err := os.ReadFile(jobPath)
	if err != nil {
		return fmt.Errorf("read job: %w", err)
	}

	p, err := engine.Extractor.Profile(rawProfile)
	if err != nil {
		return err
	}

	id := jobID
	if id == "" {
		id = "JOB-CLI"
	}
	j, err := engine.Extractor.Job(id, string(rawJob))
	if err != nil {
		return err
	}

	v := engine.Generator.Generate(p, j)

	ml, err := engine.Smoother.Score(v)
	if err != nil {
		zlog.Warn("classifier unavailable, rule score only")
		ml = nil
	}

	atsScore := engine.Scorer.Score(p, j)
	rec := match.Aggregate(ml, atsScore, p, j, p.Email, engine.AggregateConfig)
	breakdown := engine.Scorer.ScoreBreakdown(p, j)

	out := map[string]any{
		"job_id":      rec.JobRef,
		"job_title":   rec.JobTitle,
		"ats_score":   rec.ATSScore,
		"final_score": rec.FinalScore,
		"status":      rec.Status,
		"breakdown": map[string]float64{
			"keyword":    breakdown.Keyword,
			"skill":      breakdown.Skill,
			"experience": breakdown.Experience,
			"education":  breakdown.Education,
		},
		"low_confidence": rec.LowConfidence,
	}
	if rec.ML != nil {
		out["classifier"] = map[string]any{
			"label":           rec.ML.Label.String(),
			"raw_label":       rec.ML.RawLabel.String(),
			"confidence":      rec.ML.Confidence,
			"probabilities":   rec.ML.ClassProbabilities(),
			"smoothing_flags": rec.ML.SmoothingFlags,
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func scoreCatalog(ctx context.Context, cfg config.Config, zlog *zap.Logger, rawProfile string) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	jobs := repository.NewPostgresJobRepository(db)
	engine, err := app.BuildEngine(ctx, cfg, jobs, zlog)
	if err != nil {
		return err
	}

	matcher := usecase.NewMatcher(
		engine.Extractor, engine.Lexicon, engine.Generator, engine.Smoother,
		engine.Scorer, engine.AggregateConfig, jobs, nil, nil, zlog,
	)
	batch := usecase.NewBatchMatcher(matcher, jobs, cfg.Scoring.Workers, cfg.Scoring.TopK, nil, zlog)

	res, err := batch.MatchCatalog(ctx, usecase.CandidateInput{ResumeText: rawProfile}, scoreTopK)
	if err != nil {
		return err
	}
	if len(res.Records) == 0 {
		fmt.Println("no active jobs in the catalog")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tJOB\tTITLE\tFINAL\tATS\tLABEL\tSTATUS")
	for _, rec := range res.Records {
		label := "-"
		if rec.ML != nil {
			label = rec.ML.Label.String()
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\t%.1f\t%s\t%s\n",
			rec.Rank, rec.JobRef, rec.JobTitle, rec.FinalScore, rec.ATSScore, label, rec.Status)
	}
	return w.Flush()
}

func init() {
	scoreCmd.Flags().StringVar(&profilePath, "profile", "", "path to a resume text file")
	scoreCmd.Flags().StringVar(&jobPath, "job", "", "path to a job description text file; omit to score against the catalog")
	scoreCmd.Flags().StringVar(&jobID, "job-id", "", "identifier to attach to the job")
	scoreCmd.Flags().IntVar(&scoreTopK, "top-k", 0, "limit catalog results (0 uses the configured default)")
	_ = scoreCmd.MarkFlagRequired("profile")
}
