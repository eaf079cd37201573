package config

import (
	"fmt"
	"net/url"
	"readerscout/internal/core/domain/models"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	APIKey string `env:"READWISE_API_KEY"`

	AuthURL string `env:"READWISE_AUTH_URL" envDefault:"https://readwise.io/api/v2/auth/"`
	ListURL string `env:"READWISE_LIST_URL" envDefault:"https://readwise.io/api/v3/list/"`

	// Zero leaves requests without a client-side deadline.
	HTTPTimeout time.Duration `env:"READWISE_HTTP_TIMEOUT" envDefault:"0s"`
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return models.ErrMissingAPIKey
	}

	for name, raw := range map[string]string{"READWISE_AUTH_URL": c.AuthURL, "READWISE_LIST_URL": c.ListURL} {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, raw)
		}
	}

	if c.HTTPTimeout < 0 {
		return fmt.Errorf("READWISE_HTTP_TIMEOUT cannot be negative")
	}

	return nil
}

// Load reads a .env file from the working directory if one exists, then the
// process environment. Variables already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
