package models

import "errors"

var (
	ErrInvalidCountryName   = errors.New("invalid country name")
	ErrInvalidExchangeRate  = errors.New("exchange rate must be positive when set")
	ErrInvalidEstimatedGDP  = errors.New("estimated GDP cannot be negative")
	ErrNegativePopulation   = errors.New("population cannot be negative")
	ErrInvalidStatusCount   = errors.New("total countries cannot be negative")

	ErrExternalSource = errors.New("external data source unavailable")
	ErrImageNotFound  = errors.New("summary image not found")

	ErrInvalidFeedURL      = errors.New("feed URL not configured")
	ErrInvalidFetchTimeout = errors.New("fetch timeout must be positive")
	ErrInvalidRetryPolicy  = errors.New("invalid retry policy")
	ErrInvalidImagePath    = errors.New("summary image path not configured")
	ErrInvalidTopCount     = errors.New("top countries count must be positive")
	ErrInvalidCacheBackend = errors.New("unknown cache backend")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")

	ErrRecordNotFound = errors.New("record not found")
)
