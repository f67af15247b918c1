package migrations

import (
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const sampleDataset = `[
  {
    "id": 101, "name": "India", "iso3": "IND", "iso2": "IN", "phone_code": "91",
    "capital": "New Delhi", "currency": "INR",
    "states": [
      {"id": 4008, "name": "Maharashtra", "state_code": "MH", "cities": []}
    ]
  },
  {
    "id": 31, "name": "Brazil", "iso3": "BRA", "iso2": "BR", "phone_code": "55",
    "states": [
      {"id": 2012, "name": "Bahia", "state_code": "BA", "cities": [
        {"id": 10001, "name": "Salvador", "latitude": "-12.97111", "longitude": "-38.51083"}
      ]}
    ]
  },
  {
    "id": 153, "name": "Nepal", "iso3": "NPL", "iso2": "NP", "phone_code": 977,
    "states": []
  },
  {
    "id": 15, "name": "Austria", "iso3": "AUT", "iso2": "AT", "phone_code": "43",
    "states": [
      {"id": 2062, "name": "Vienna", "state_code": "9", "cities": [
        {"id": 8260, "name": "Wien", "latitude": "48.20849", "longitude": "16.37208"}
      ]},
      {"id": 2057, "name": "Tyrol", "state_code": null, "cities": [
        {"id": 8120, "name": "Innsbruck", "latitude": 47.26266, "longitude": 11.39454},
        {"id": 8121, "name": "Kufstein", "latitude": null, "longitude": null}
      ]}
    ]
  }
]`

// schema mirrors the tables the profile service creates.
var schema = []string{
	`CREATE TABLE country (
		id integer PRIMARY KEY,
		name varchar(50) NOT NULL UNIQUE,
		iso3 varchar(3) NOT NULL UNIQUE,
		iso2 varchar(2) NOT NULL UNIQUE,
		"phoneCode" varchar(20)
	)`,
	`CREATE TABLE state (
		id integer PRIMARY KEY,
		name varchar(60) NOT NULL,
		"stateCode" varchar(10),
		"countryId" integer NOT NULL REFERENCES country(id)
	)`,
	`CREATE TABLE city (
		id integer PRIMARY KEY,
		name varchar(90) NOT NULL,
		latitude float8,
		longitude float8,
		"stateId" integer NOT NULL REFERENCES state(id)
	)`,
}

func openTestDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// every connection to :memory: is its own database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			return nil, err
		}
	}
	return db, nil
}

func writeDataset(dir, content string) (string, error) {
	path := filepath.Join(dir, "countries+states+cities.json")
	return path, os.WriteFile(path, []byte(content), 0o600)
}
