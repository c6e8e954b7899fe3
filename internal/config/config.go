package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Required: the server refuses to start without a database and an
	// admin credential rather than serve broken endpoints.
	DatabaseURL   string `envconfig:"DATABASE_URL" required:"true"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" required:"true"`

	AdminEmail string `envconfig:"ADMIN_EMAIL" default:"admin@selamhomes.com"`
	JWTSecret  string `envconfig:"JWT_SECRET" default:"changeme"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ServerPort     string   `envconfig:"SERVER_PORT" default:"8080"`

	// Optional; leaving it unset disables the read cache entirely.
	RedisURL string `envconfig:"REDIS_URL"`
}

func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
