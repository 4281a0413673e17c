package countries

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osahenru/atlas/internal/feeds"
	"github.com/osahenru/atlas/internal/render"
	"github.com/osahenru/atlas/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) UpsertAll(ctx context.Context, countries []models.Country) error {
	args := m.Called(ctx, countries)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context, filter CountryFilter) ([]models.Country, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Country), args.Error(1)
}

func (m *MockRepository) GetByName(ctx context.Context, name string) (*models.Country, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Country), args.Error(1)
}

func (m *MockRepository) DeleteByName(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) TopByGDP(ctx context.Context, limit int) ([]models.Country, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Country), args.Error(1)
}

type MockStatusRepository struct {
	mock.Mock
}

func (m *MockStatusRepository) GetOrCreate(ctx context.Context) (*models.Status, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Status), args.Error(1)
}

func (m *MockStatusRepository) RecordRefresh(ctx context.Context, count int64) (*models.Status, error) {
	args := m.Called(ctx, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Status), args.Error(1)
}

type MockFeedClient struct {
	mock.Mock
}

func (m *MockFeedClient) FetchCountries(ctx context.Context) ([]feeds.CountryRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]feeds.CountryRecord), args.Error(1)
}

func (m *MockFeedClient) FetchRates(ctx context.Context) (map[string]float64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

type MockSummaryRenderer struct {
	mock.Mock
}

func (m *MockSummaryRenderer) Render(s render.Summary) ([]byte, error) {
	args := m.Called(s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Put(ctx context.Context, data []byte) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockImageStore) Get(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockRefresher struct {
	mock.Mock
}

func (m *MockRefresher) Refresh(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockService struct {
	mock.Mock
}

func (m *MockService) RefreshCountries(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockService) ListCountries(ctx context.Context, filter CountryFilter) ([]CountryResponse, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CountryResponse), args.Error(1)
}

func (m *MockService) GetCountryByName(ctx context.Context, name string) (*CountryResponse, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CountryResponse), args.Error(1)
}

func (m *MockService) DeleteCountry(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockService) GetStatus(ctx context.Context) (*StatusResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StatusResponse), args.Error(1)
}

func (m *MockService) GetSummaryImage(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
