package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gLogger "gorm.io/gorm/logger"

	"github.com/osahenru/atlas/models"

	// import necessary for gorm to recognize the postgres driver
	_ "github.com/lib/pq"
)

const (
	maxIdleConns    = 10
	maxOpenConns    = 25
	connMaxLifetime = time.Hour
)

type Config struct {
	Host        string `env:"DB_HOST"`
	Port        string `env:"DB_PORT" env-default:"5432"`
	User        string `env:"DB_USER"`
	Password    string `env:"DB_PASSWORD"`
	Database    string `env:"DB_NAME"`
	UseSSL      bool   `env:"DB_SSL_MODE"`
	LogQuery    bool   `env:"DB_LOG_QUERY"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE"`
}

func (c *Config) Validate() error {
	if c.Host == "" ||
		c.Password == "" || c.Database == "" || c.User == "" {
		return models.ErrDatabaseCredentialNotConfigured
	}
	return nil
}

func New(c *Config) (*gorm.DB, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	SSLMode := "disable"
	if c.UseSSL {
		SSLMode = "require"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Database, c.Port, SSLMode)

	cfg := &gorm.Config{}
	if !c.LogQuery {
		cfg.Logger = gLogger.Discard
	}

	db, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	// Deployments without the migrate CLI can let gorm manage the two tables.
	if c.AutoMigrate {
		if err := db.AutoMigrate(&models.Country{}, &models.Status{}); err != nil {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}

	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	return db, nil
}
