package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the process-wide configuration, parsed once at startup and
// injected into the components that need it.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8000"`
	MongoURI        string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase   string        `env:"MONGO_DATABASE" envDefault:"headphone-store"`
	JWTSecret       string        `env:"JWT_SECRET,required,notEmpty"`
	JWTExpiresIn    time.Duration `env:"JWT_EXPIRES_IN" envDefault:"24h"`
	CookieExpiresIn time.Duration `env:"JWT_COOKIE_EXPIRES_IN" envDefault:"24h"`
	PostmarkToken   string        `env:"POSTMARK_API_TOKEN"`
	EmailSender     string        `env:"EMAIL_SENDER"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
}

// Parse reads the configuration from environment variables.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Production reports whether the service runs in production mode.
func (c *Config) Production() bool {
	return c.Environment == "production"
}
