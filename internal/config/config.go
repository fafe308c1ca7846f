package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	ierr "github.com/guardbill/guardbill/internal/errors"
)

// Configuration is the root application configuration, loaded from
// config files and environment variables.
type Configuration struct {
	Deployment DeploymentConfig `mapstructure:"deployment"`
	Server     ServerConfig     `mapstructure:"server"`
	Postgres   PostgresConfig   `mapstructure:"postgres"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Billing    BillingConfig    `mapstructure:"billing"`
}

type DeploymentConfig struct {
	Mode string `mapstructure:"mode"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxConns int    `mapstructure:"max_conns"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type BillingConfig struct {
	// ShiftMarginMinutes is the grace window within which a clock-in/out is
	// snapped to the scheduled shift boundary when computing actual hours.
	ShiftMarginMinutes int `mapstructure:"shift_margin_minutes"`
}

// DSN builds the Postgres connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

// NewConfig loads configuration from ./config/config.yaml (if present) with
// environment variable overrides (GUARDBILL_SECTION_KEY). A local .env file
// is loaded first for development convenience.
func NewConfig() (*Configuration, error) {
	// Best effort; production deployments configure via real env vars.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvPrefix("GUARDBILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, ierr.WithError(err).
				WithMessage("failed to read config file").
				Mark(ierr.ErrInternal)
		}
	}

	cfg := &Configuration{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to unmarshal config").
			Mark(ierr.ErrInternal)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", "api")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "guardbill")
	v.SetDefault("postgres.dbname", "guardbill")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("billing.shift_margin_minutes", 15)
}

// Validate checks configuration invariants at startup.
func (c *Configuration) Validate() error {
	if c.Server.Address == "" {
		return ierr.NewError("server address is required").
			WithHint("Set server.address or GUARDBILL_SERVER_ADDRESS").
			Mark(ierr.ErrValidation)
	}
	if c.Billing.ShiftMarginMinutes < 0 {
		return ierr.NewError("shift margin minutes must be non negative").
			WithHint("billing.shift_margin_minutes must be >= 0").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// GetDefaultConfig returns a configuration usable by tests and scripts
// without any config file or environment present.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: "local"},
		Server:     ServerConfig{Address: ":8080"},
		Postgres: PostgresConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "guardbill",
			DBName:   "guardbill",
			SSLMode:  "disable",
			MaxConns: 10,
		},
		Logging: LoggingConfig{Level: "debug"},
		Billing: BillingConfig{ShiftMarginMinutes: 15},
	}
}
