package config

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Database
	DBDriver    string `mapstructure:"DB_DRIVER"` // postgres | sqlite | memory
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis is optional; when empty the metrics cache is disabled.
	RedisURL string `mapstructure:"REDIS_URL"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`

	// Seed admin account
	AdminUsername string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	// Business
	TaxRate string `mapstructure:"TAX_RATE"` // fixed percentage applied to every sale subtotal
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_URL", "lavapos.db")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 8)
	viper.SetDefault("ADMIN_USERNAME", "DENNIS CASTILLO")
	viper.SetDefault("ADMIN_PASSWORD", "742211010338")
	viper.SetDefault("TAX_RATE", "0.15")

	// Optional .env file for local development, does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if _, err := decimal.NewFromString(cfg.TaxRate); err != nil {
		return nil, err
	}
	return cfg, nil
}

// TaxRateDecimal returns the configured tax rate as an exact decimal.
// Load already validated the string, so parsing cannot fail here.
func (c *Config) TaxRateDecimal() decimal.Decimal {
	d, _ := decimal.NewFromString(c.TaxRate)
	return d
}
