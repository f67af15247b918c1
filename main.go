package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"locationseed/config"
	"locationseed/migrations"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type seedOptions struct {
	configPath string
	file       string
	countries  []string
	dryRun     bool
	debug      bool
}

func newRootCmd() *cobra.Command {
	var opts seedOptions

	cmd := &cobra.Command{
		Use:   "locationseed",
		Short: "Seed the country, state and city tables from the countries+states+cities dataset",
		Long: `Reads the countries+states+cities JSON dataset, keeps the allow-listed
countries and inserts them with their states and cities, one transaction
per country. Seeding is not idempotent: running it against a populated
database fails on the first duplicate key.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML config file")
	cmd.Flags().StringVar(&opts.file, "file", "", "Dataset path (overrides SEED_FILE)")
	cmd.Flags().StringSliceVar(&opts.countries, "countries", nil, "Comma separated allow-list (overrides SEED_COUNTRIES)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Load and filter only, do not connect to the database")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Log every SQL statement")

	return cmd
}

func runSeed(cmd *cobra.Command, opts seedOptions) error {
	runID := uuid.NewString()
	log.SetPrefix(fmt.Sprintf("[seed %s] ", runID[:8]))

	// load environment variables, .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env file: %w", err)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("file") {
		cfg.SeedFile = opts.file
	}
	if cmd.Flags().Changed("countries") {
		cfg.Countries = opts.countries
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *gorm.DB
	if !opts.dryRun {
		level := logger.Silent
		if opts.debug {
			level = logger.Info
		}

		db, err = config.ConnectDatabase(cfg.Database, level)
		if err != nil {
			return err
		}
		defer config.CloseDatabase(db)
	}

	startTime := time.Now()
	stats, err := migrations.Run(ctx, db, migrations.Options{
		File:      cfg.SeedFile,
		Countries: cfg.Countries,
		DryRun:    opts.dryRun,
		Out:       cmd.OutOrStdout(),
	})
	if err != nil {
		if errors.Is(err, migrations.ErrAlreadySeeded) {
			log.Println("Database already holds seeded rows; seeding only runs against empty tables")
		}
		log.Printf("Stopped after %d countries, %d states, %d cities\n", stats.Countries, stats.States, stats.Cities)
		return err
	}

	verb := "Seeded"
	if opts.dryRun {
		verb = "Would seed"
	}
	log.Printf("%s %d countries, %d states, %d cities in %v\n",
		verb, stats.Countries, stats.States, stats.Cities, time.Since(startTime))

	if db != nil && opts.debug {
		dbStats := config.GetDBStats(db)
		log.Printf("Connections opened: %d, wait count: %d\n", dbStats.OpenConnections, dbStats.WaitCount)
	}
	return nil
}

func main() {
	// set timezone to utc
	time.Local = time.UTC

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
