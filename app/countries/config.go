package countries

import (
	"time"

	"github.com/osahenru/atlas/internal/cache"
	"github.com/osahenru/atlas/internal/feeds"
	"github.com/osahenru/atlas/models"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.3"

// Config represents the configuration for the countries module
type Config struct {
	CountriesURL string        `env:"COUNTRIES_FEED_URL" env-default:"https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies"`
	RatesURL     string        `env:"RATES_FEED_URL" env-default:"https://open.er-api.com/v6/latest/USD"`
	UserAgent    string        `env:"FEED_USER_AGENT"`
	FetchTimeout time.Duration `env:"FEED_FETCH_TIMEOUT" env-default:"10s"`
	RetryMax     int           `env:"FEED_RETRY_MAX" env-default:"5"`
	RetryWaitMin time.Duration `env:"FEED_RETRY_WAIT_MIN" env-default:"100ms"`

	ImagePath     string        `env:"SUMMARY_IMAGE_PATH" env-default:"cache/summary.png"`
	TopCountries  int           `env:"SUMMARY_TOP_COUNTRIES" env-default:"5"`
	ImageCacheTTL time.Duration `env:"SUMMARY_IMAGE_CACHE_TTL"`

	CacheBackend  string `env:"CACHE_BACKEND" env-default:"memory"`
	RedisAddr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`
}

// Validate validates the countries module configuration
func (c *Config) Validate() error {
	if c.CountriesURL == "" || c.RatesURL == "" {
		return models.ErrInvalidFeedURL
	}
	if c.FetchTimeout <= 0 {
		return models.ErrInvalidFetchTimeout
	}
	if c.RetryMax < 0 || c.RetryWaitMin <= 0 {
		return models.ErrInvalidRetryPolicy
	}
	if c.ImagePath == "" {
		return models.ErrInvalidImagePath
	}
	if c.TopCountries <= 0 {
		return models.ErrInvalidTopCount
	}
	if c.CacheBackend != cache.MemoryBackend && c.CacheBackend != cache.RedisBackend {
		return models.ErrInvalidCacheBackend
	}
	return nil
}

// FeedOptions maps the config onto feed client options.
func (c *Config) FeedOptions() feeds.Options {
	userAgent := c.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return feeds.Options{
		CountriesURL: c.CountriesURL,
		RatesURL:     c.RatesURL,
		UserAgent:    userAgent,
		Timeout:      c.FetchTimeout,
		RetryMax:     c.RetryMax,
		RetryWaitMin: c.RetryWaitMin,
	}
}

// RedisOptions maps the config onto cache options for the redis backend.
func (c *Config) RedisOptions() *cache.RedisOptions {
	return &cache.RedisOptions{
		Addr:     c.RedisAddr,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	}
}
