package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"locationseed/config"
	"locationseed/migrations"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm/logger"
)

// Manual check against a live database: prints how many rows the seeder left
// in each table and whether any state or city points at a missing parent.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg, err := config.Load(os.Getenv("SEED_CONFIG"))
	if err != nil {
		return err
	}

	db, err := config.ConnectDatabase(cfg.Database, logger.Silent)
	if err != nil {
		return err
	}
	defer config.CloseDatabase(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	report, err := migrations.Verify(ctx, db)
	if err != nil {
		return err
	}

	fmt.Printf("country: %d\n", report.Countries)
	fmt.Printf("state:   %d (orphans: %d)\n", report.States, report.OrphanStates)
	fmt.Printf("city:    %d (orphans: %d)\n", report.Cities, report.OrphanCities)

	if !report.Consistent() {
		return errors.New("referential integrity check failed")
	}
	return nil
}
