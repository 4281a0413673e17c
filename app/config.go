package app

import (
	"github.com/osahenru/atlas/app/countries"
	"github.com/osahenru/atlas/app/database"
	"github.com/osahenru/atlas/internal/conf"
)

type Config struct {
	DB        database.Config
	Countries countries.Config

	AppHost  string `env:"APP_HOST" env-default:"localhost"`
	AppPort  string `env:"APP_PORT" env-default:"8080"`
	Env      string `env:"APP_ENV" env-default:"development"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

// LoadConfig loads the application configuration from environment variables or
// an env file.
func LoadConfig() (*Config, error) {
	c := &Config{}
	if err := conf.NewLoader().Load(c); err != nil {
		return nil, err
	}
	if err := c.Countries.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
