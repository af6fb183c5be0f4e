// Package config reads the service settings from the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverStatic   = "static"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	AssetsPassthrough = "passthrough"
	AssetsUpload      = "upload"
)

type Config struct {
	App            string `mapstructure:"app"`
	Port           int    `mapstructure:"port"`
	StoreDriver    string `mapstructure:"store_driver"`
	DBPath         string `mapstructure:"db_path"`
	PostgresDSN    string `mapstructure:"postgres_dsn"`
	MigrationsDir  string `mapstructure:"migrations_dir"`
	SeedSQLStore   bool   `mapstructure:"seed_sql_store"`
	LogLevel       string `mapstructure:"log_level"`
	DisplayLocale  string `mapstructure:"display_locale"`
	AssetMode      string `mapstructure:"asset_mode"`
	AssetBaseURL   string `mapstructure:"asset_base_url"`
	AllowedOrigins string `mapstructure:"cors_allowed_origins"`
	LambdaFunction string `mapstructure:"aws_lambda_function_name"`
}

var defaults = map[string]any{
	"app":                      "prod",
	"port":                     8080,
	"store_driver":             "",
	"db_path":                  "",
	"postgres_dsn":             "",
	"migrations_dir":           "",
	"seed_sql_store":           true,
	"log_level":                "info",
	"display_locale":           "en",
	"asset_mode":               AssetsPassthrough,
	"asset_base_url":           "https://cdn.clubhub.app/uploads",
	"cors_allowed_origins":     "*",
	"aws_lambda_function_name": "",
}

// Load reads .env files when running locally, then the environment.
func Load() (*Config, error) {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") == "" {
		_ = godotenv.Load(".env", ".env.local")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalise()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalise() {
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	c.DisplayLocale = strings.ToLower(strings.TrimSpace(c.DisplayLocale))
	c.AssetMode = strings.ToLower(strings.TrimSpace(c.AssetMode))
	c.DBPath = strings.TrimSpace(c.DBPath)
	c.PostgresDSN = strings.TrimSpace(c.PostgresDSN)
	if c.StoreDriver == "" {
		switch {
		case c.PostgresDSN != "":
			c.StoreDriver = DriverPostgres
		case c.DBPath != "":
			c.StoreDriver = DriverSQLite
		default:
			c.StoreDriver = DriverStatic
		}
	}
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case DriverStatic:
	case DriverSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("DB_PATH is required for the %s store", c.StoreDriver)
		}
	case DriverPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required for the %s store", c.StoreDriver)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.DisplayLocale != "en" && c.DisplayLocale != "ar" {
		return fmt.Errorf("unsupported DISPLAY_LOCALE %q", c.DisplayLocale)
	}
	if c.AssetMode != AssetsPassthrough && c.AssetMode != AssetsUpload {
		return fmt.Errorf("unknown ASSET_MODE %q", c.AssetMode)
	}
	return nil
}

func (c *Config) IsDev() bool {
	return strings.EqualFold(c.App, "dev")
}

func (c *Config) InLambda() bool {
	return c.LambdaFunction != ""
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
