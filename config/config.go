package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const DefaultSeedFile = "../countries-states-cities-database-master/countries+states+cities.json"

// DefaultCountries is the allow-list the profile service was launched with.
var DefaultCountries = []string{
	"india", "canada", "united states", "argentina", "chile",
	"australia", "new zealand",
	"finland", "sweden", "denmark", "norway",
	"united kingdom", "portugal", "spain", "france", "germany", "netherlands the", "switzerland", "austria",
	"belgium", "czech republic", "ireland", "poland", "russia",
	"brunei", "oman", "qatar", "saudi arabia", "south africa", "united arab emirates",
	"china", "nepal", "japan", "korea south", "singapore",
}

type Database struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

type Config struct {
	Database  Database `yaml:"database"`
	SeedFile  string   `yaml:"file"`
	Countries []string `yaml:"countries"`
}

func Default() Config {
	return Config{
		Database: Database{
			Host:    "localhost",
			Port:    5432,
			User:    "developer",
			Name:    "telegram",
			SSLMode: "disable",
		},
		SeedFile:  DefaultSeedFile,
		Countries: append([]string(nil), DefaultCountries...),
	}
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in increasing order of precedence.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := Init(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening config %q: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("parsing config %q: %w", path, err)
	}
	return nil
}

// Init overrides cfg with any DB_* and SEED_* environment variables that are set.
func Init(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	setString("DB_HOST", &cfg.Database.Host)
	setString("DB_USER", &cfg.Database.User)
	setString("DB_PASSWORD", &cfg.Database.Password)
	setString("DB_NAME", &cfg.Database.Name)
	setString("DB_SSLMODE", &cfg.Database.SSLMode)
	setString("SEED_FILE", &cfg.SeedFile)

	if v, ok := os.LookupEnv("DB_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DB_PORT value: %w", err)
		}
		cfg.Database.Port = port
	}

	if v, ok := os.LookupEnv("SEED_COUNTRIES"); ok {
		cfg.Countries = SplitList(v)
	}
	return nil
}

// SplitList parses a comma separated list, dropping blank entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
		d.Host,
		d.User,
		d.Password,
		d.Name,
		d.Port,
		d.SSLMode,
	)
}

// ConnectDatabase opens a single-connection pool; every insert of a run goes
// through the same session in document order.
func ConnectDatabase(d Database, level logger.LogLevel) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(d.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return database, nil
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}

func GetDBStats(db *gorm.DB) sql.DBStats {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return sql.DBStats{}
	}
	return sqlDB.Stats()
}
