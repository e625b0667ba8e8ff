package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StoragePostgres = "postgres"
	StorageFile     = "file"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Fiado"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Storage struct {
		// Driver selects the persistence backend: "postgres" or "file".
		Driver string `envconfig:"STORAGE_DRIVER" default:"postgres"`
		// Path of the JSON ledger file when Driver is "file".
		Path string `envconfig:"STORAGE_PATH" default:"fiado.json"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"fiado"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		// AccessCode gates the API when non-empty. Single shared code,
		// not a user system.
		AccessCode string        `envconfig:"ACCESS_CODE"`
		Secret     string        `envconfig:"AUTH_SECRET"`
		TokenTTL   time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"12h"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
