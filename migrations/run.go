package migrations

import (
	"context"
	"io"
	"log"
	"strings"

	"gorm.io/gorm"
)

type Options struct {
	File      string
	Countries []string
	DryRun    bool
	Out       io.Writer
}

// Run loads the dataset, filters it and seeds the result. The file is fully
// parsed before the first insert, so a malformed dataset never reaches db.
// db may be nil for a dry run.
func Run(ctx context.Context, db *gorm.DB, opts Options) (Stats, error) {
	if db == nil && !opts.DryRun {
		return Stats{}, ErrNoDatabase
	}

	countries, err := LoadCountries(opts.File)
	if err != nil {
		return Stats{}, err
	}

	allow := NewAllowList(opts.Countries)
	selected := allow.Filter(countries)
	log.Printf("Loaded %d countries, %d selected by allow-list of %d\n", len(countries), len(selected), allow.Len())
	if missing := allow.Unmatched(countries); len(missing) > 0 {
		log.Printf("Allow-list entries without a match: %s\n", strings.Join(missing, ", "))
	}

	seeder := NewSeeder(db, opts.Out)
	seeder.DryRun = opts.DryRun
	return seeder.Seed(ctx, selected)
}
