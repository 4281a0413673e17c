package countries

import (
	"context"

	"github.com/osahenru/atlas/internal/feeds"
	"github.com/osahenru/atlas/internal/render"
	"github.com/osahenru/atlas/models"
)

// CountryFilter narrows List results. Region and Currency are case-insensitive
// exact matches; empty fields are ignored.
type CountryFilter struct {
	Region    string
	Currency  string
	SortByGDP bool
}

// Repository defines the interface for country data access
type Repository interface {
	UpsertAll(ctx context.Context, countries []models.Country) error
	List(ctx context.Context, filter CountryFilter) ([]models.Country, error)
	GetByName(ctx context.Context, name string) (*models.Country, error)
	DeleteByName(ctx context.Context, name string) error
	Count(ctx context.Context) (int64, error)
	TopByGDP(ctx context.Context, limit int) ([]models.Country, error)
}

// StatusRepository manages the refresh-status singleton row.
type StatusRepository interface {
	GetOrCreate(ctx context.Context) (*models.Status, error)
	RecordRefresh(ctx context.Context, count int64) (*models.Status, error)
}

// FeedClient fetches the two upstream payloads a refresh cycle needs.
type FeedClient interface {
	FetchCountries(ctx context.Context) ([]feeds.CountryRecord, error)
	FetchRates(ctx context.Context) (map[string]float64, error)
}

// SummaryRenderer turns a summary into an encoded image.
type SummaryRenderer interface {
	Render(s render.Summary) ([]byte, error)
}

// ImageStore holds the cached summary image artifact.
type ImageStore interface {
	Put(ctx context.Context, data []byte) error
	Get(ctx context.Context) ([]byte, error)
}

// Refresher runs one full refresh cycle and reports how many countries it
// processed.
type Refresher interface {
	Refresh(ctx context.Context) (int, error)
}

// Service defines the interface for country business logic
type Service interface {
	RefreshCountries(ctx context.Context) (int, error)
	ListCountries(ctx context.Context, filter CountryFilter) ([]CountryResponse, error)
	GetCountryByName(ctx context.Context, name string) (*CountryResponse, error)
	DeleteCountry(ctx context.Context, name string) error
	GetStatus(ctx context.Context) (*StatusResponse, error)
	GetSummaryImage(ctx context.Context) ([]byte, error)
}
