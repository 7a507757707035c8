package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Shop    ShopConfig
	Logging LoggingConfig
}

// ShopConfig holds the rental shop's identity and presentation options.
type ShopConfig struct {
	ID        string
	Currency  string
	FleetSeed int64
}

// LoggingConfig controls where structured logs go. Logs are kept away
// from stdout so they do not interleave with the interactive prompt.
type LoggingConfig struct {
	Path string
}

// Load reads environment variables (optionally from the provided file)
// and materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	fleetSeed, err := strconv.ParseInt(getenvWithDefault("FLEET_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("FLEET_SEED must be an integer: %w", err)
	}

	cfg := &Config{
		Shop: ShopConfig{
			ID:        getenvWithDefault("SHOP_ID", "main-street"),
			Currency:  getenvWithDefault("CURRENCY_SYMBOL", "£"),
			FleetSeed: fleetSeed,
		},
		Logging: LoggingConfig{
			Path: getenvWithDefault("LOG_PATH", "stderr"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Shop.ID == "" {
		return errors.New("SHOP_ID must not be empty")
	}

	if c.Shop.Currency == "" {
		return errors.New("CURRENCY_SYMBOL must not be empty")
	}

	if c.Logging.Path == "" {
		return errors.New("LOG_PATH must not be empty")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
