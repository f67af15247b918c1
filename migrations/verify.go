package migrations

import (
	"context"
	"fmt"
	"locationseed/models"

	"gorm.io/gorm"
)

// Report summarizes what a seeded database holds.
type Report struct {
	Countries int64
	States    int64
	Cities    int64

	OrphanStates int64 // states whose countryId has no country row
	OrphanCities int64 // cities whose stateId has no state row
}

func (r Report) Consistent() bool {
	return r.OrphanStates == 0 && r.OrphanCities == 0
}

func Verify(ctx context.Context, db *gorm.DB) (Report, error) {
	var r Report
	db = db.WithContext(ctx)

	counts := []struct {
		model any
		dst   *int64
	}{
		{&models.Country{}, &r.Countries},
		{&models.State{}, &r.States},
		{&models.City{}, &r.Cities},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dst).Error; err != nil {
			return Report{}, fmt.Errorf("count rows: %w", err)
		}
	}

	err := db.Raw(`SELECT count(*) FROM state s LEFT JOIN country c ON c.id = s."countryId" WHERE c.id IS NULL`).
		Scan(&r.OrphanStates).Error
	if err != nil {
		return Report{}, fmt.Errorf("count orphan states: %w", err)
	}

	err = db.Raw(`SELECT count(*) FROM city ci LEFT JOIN state s ON s.id = ci."stateId" WHERE s.id IS NULL`).
		Scan(&r.OrphanCities).Error
	if err != nil {
		return Report{}, fmt.Errorf("count orphan cities: %w", err)
	}
	return r, nil
}
