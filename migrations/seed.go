package migrations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"locationseed/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

var (
	// ErrAlreadySeeded means a row with the same primary or unique key exists.
	// Seeding is not idempotent, so a second run against a populated database
	// stops here.
	ErrAlreadySeeded = errors.New("row already exists")
	ErrMissingParent = errors.New("referenced row does not exist")
	ErrNoDatabase    = errors.New("no database connection")
)

type Stats struct {
	Countries int
	States    int
	Cities    int
}

func (s *Stats) add(o Stats) {
	s.Countries += o.Countries
	s.States += o.States
	s.Cities += o.Cities
}

func countRows(country SourceCountry) Stats {
	stats := Stats{Countries: 1, States: len(country.States)}
	for _, state := range country.States {
		stats.Cities += len(state.Cities)
	}
	return stats
}

type Seeder struct {
	db  *gorm.DB
	out io.Writer

	// DryRun reports what would be inserted without touching the database.
	DryRun bool
}

func NewSeeder(db *gorm.DB, out io.Writer) *Seeder {
	if out == nil {
		out = io.Discard
	}
	return &Seeder{db: db, out: out}
}

// Seed inserts each country with its states and cities, one transaction per
// country. It stops at the first failure; countries committed before it stay.
func (s *Seeder) Seed(ctx context.Context, countries []SourceCountry) (Stats, error) {
	if s.db == nil && !s.DryRun {
		return Stats{}, ErrNoDatabase
	}

	var stats Stats
	for _, country := range countries {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		phoneCode := country.PhoneCode.Text
		if !country.PhoneCode.Valid {
			phoneCode = "null"
		}
		fmt.Fprintf(s.out, "%s %s\n", foldName(country.Name), phoneCode)

		if s.DryRun {
			stats.add(countRows(country))
			continue
		}

		inserted, err := s.seedCountry(ctx, country)
		if err != nil {
			return stats, err
		}
		stats.add(inserted)
	}
	return stats, nil
}

func (s *Seeder) seedCountry(ctx context.Context, country SourceCountry) (stats Stats, err error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return Stats{}, fmt.Errorf("begin transaction for country %d: %w", country.ID, tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
		if err != nil {
			tx.Rollback()
		}
	}()

	row := models.Country{
		ID:        country.ID,
		Name:      country.Name,
		Iso3:      country.Iso3,
		Iso2:      country.Iso2,
		PhoneCode: country.PhoneCode,
	}
	if err = tx.Create(&row).Error; err != nil {
		return Stats{}, insertError("country", country.ID, err)
	}
	stats.Countries++

	for _, state := range country.States {
		stateRow := models.State{
			ID:        state.ID,
			Name:      state.Name,
			StateCode: state.StateCode,
			CountryID: country.ID,
		}
		if err = tx.Create(&stateRow).Error; err != nil {
			return Stats{}, insertError("state", state.ID, err)
		}
		stats.States++

		for _, city := range state.Cities {
			cityRow := models.City{
				ID:        city.ID,
				Name:      city.Name,
				Latitude:  city.Latitude,
				Longitude: city.Longitude,
				StateID:   state.ID,
			}
			if err = tx.Create(&cityRow).Error; err != nil {
				return Stats{}, insertError("city", city.ID, err)
			}
			stats.Cities++
		}
	}

	if err = tx.Commit().Error; err != nil {
		return Stats{}, fmt.Errorf("commit country %d (%s): %w", country.ID, country.Name, err)
	}
	return stats, nil
}

func insertError(table string, id int, err error) error {
	return fmt.Errorf("insert %s %d: %w", table, id, classify(err))
}

func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case uniqueViolation:
		return fmt.Errorf("%w: %w", ErrAlreadySeeded, err)
	case foreignKeyViolation:
		return fmt.Errorf("%w: %w", ErrMissingParent, err)
	}
	return err
}
