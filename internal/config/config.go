package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Boleteiro"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"boleteiro"`
	}

	Ingest struct {
		// strict, pair or none; see boleto.DedupPolicy.
		DedupPolicy string `envconfig:"INGEST_DEDUP_POLICY" default:"strict"`
	}

	Query struct {
		// Boletos due earlier than now minus this many days are hidden
		// from CPF lookups. 0 disables the window.
		DueWindowDays int `envconfig:"QUERY_DUE_WINDOW_DAYS" default:"20"`
	}

	Backup struct {
		Dir           string `envconfig:"BACKUP_DIR" default:"backups"`
		RetentionDays int    `envconfig:"BACKUP_RETENTION_DAYS" default:"90"`
		CronSpec      string `envconfig:"BACKUP_CRON" default:"0 3 * * *"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	// Local development convenience; absence of a .env file is fine.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
