package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/vineland/vsms-api/internal/domain/catalog"
)

const (
	StoreSheets   = "sheets"
	StorePostgres = "postgres"
)

type Config struct {
	Port                string   `mapstructure:"PORT"`
	Env                 string   `mapstructure:"ENV"`
	StoreBackend        string   `mapstructure:"STORE_BACKEND"`
	ScoringScheme       string   `mapstructure:"SCORING_SCHEME"`
	SheetsURL           string   `mapstructure:"SHEETS_URL"`
	SheetsFireAndForget bool     `mapstructure:"SHEETS_FIRE_AND_FORGET"`
	DatabaseURL         string   `mapstructure:"DATABASE_URL"`
	DBMaxConns          int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns          int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins         []string `mapstructure:"CORS_ORIGINS"`
	ClinicName          string   `mapstructure:"CLINIC_NAME"`
	ClinicAddress1      string   `mapstructure:"CLINIC_ADDRESS1"`
	ClinicAddress2      string   `mapstructure:"CLINIC_ADDRESS2"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("STORE_BACKEND", StoreSheets)
	v.SetDefault("SCORING_SCHEME", string(catalog.SchemeFlat))
	v.SetDefault("SHEETS_FIRE_AND_FORGET", false)
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("CLINIC_NAME", "OCCUPATIONAL THERAPY FOUNDATION")
	v.SetDefault("CLINIC_ADDRESS1", "36/7, AGILMEDU STREET - 4")
	v.SetDefault("CLINIC_ADDRESS2", "SAIT COLONY, ERODE - 638001")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("STORE_BACKEND")
	v.BindEnv("SCORING_SCHEME")
	v.BindEnv("SHEETS_URL")
	v.BindEnv("SHEETS_FIRE_AND_FORGET")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("CLINIC_NAME")
	v.BindEnv("CLINIC_ADDRESS1")
	v.BindEnv("CLINIC_ADDRESS2")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Scheme returns the configured catalog weighting scheme.
func (c *Config) Scheme() catalog.Scheme {
	return catalog.Scheme(c.ScoringScheme)
}

// Validate checks that the configuration is safe to run: a known store
// backend with its address or DSN present, and a known scoring scheme.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreSheets:
		if c.SheetsURL == "" {
			return fmt.Errorf("SHEETS_URL is required when STORE_BACKEND is %q", StoreSheets)
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_BACKEND is %q", StorePostgres)
		}
	default:
		return fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", StoreSheets, StorePostgres, c.StoreBackend)
	}

	if _, err := catalog.New(c.Scheme()); err != nil {
		return fmt.Errorf("SCORING_SCHEME: %w", err)
	}
	return nil
}
