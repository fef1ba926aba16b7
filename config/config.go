package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Env              string `env:"ENV" envDefault:"development"`
	Port             string `env:"PORT" envDefault:"8080"`
	DBURL            string `env:"DB_URL,required,notEmpty"`
	TokenSecret      string `env:"TOKEN_SECRET,required,notEmpty"`
	TokenExpiryMin   int    `env:"TOKEN_EXPIRY_MINUTES" envDefault:"30"`
	BcryptCost       int    `env:"BCRYPT_COST" envDefault:"10"`
	DefaultPageLimit int    `env:"DEFAULT_PAGE_LIMIT" envDefault:"20"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from the environment, with an optional .env file
// for development.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return cfg, nil
}
