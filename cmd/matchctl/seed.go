package main

import (
	"context"
	"time"

	"recruiter-pro/internal/config"
	"recruiter-pro/internal/database/migration"
	dbpostgres "recruiter-pro/internal/database/postgres"
	"recruiter-pro/internal/database/seeder"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Apply migrations and seed the job catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer func() {
			_ = db.Close()
		}()

		if err := (migration.Runner{Dir: "migrations"}).Run(ctx, db); err != nil {
			return err
		}

		runner := seeder.Runner{Seeders: []seeder.Seeder{
			seeder.JobSeeder{},
			seeder.RecruiterSeeder{},
		}}
		return runner.Run(ctx, db)
	},
}
