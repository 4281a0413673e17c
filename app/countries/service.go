package countries

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/osahenru/atlas/models"
)

// service implements the Service interface
type service struct {
	repo       Repository
	statusRepo StatusRepository
	refresher  Refresher
	images     ImageStore
}

// NewService creates a new country service
func NewService(repo Repository, statusRepo StatusRepository, refresher Refresher, images ImageStore) Service {
	return &service{
		repo:       repo,
		statusRepo: statusRepo,
		refresher:  refresher,
		images:     images,
	}
}

// RefreshCountries runs a full refresh cycle.
func (s *service) RefreshCountries(ctx context.Context) (int, error) {
	return s.refresher.Refresh(ctx)
}

// ListCountries returns countries matching the filter.
func (s *service) ListCountries(ctx context.Context, filter CountryFilter) ([]CountryResponse, error) {
	countries, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToCountryResponseList(countries), nil
}

// GetCountryByName returns a single country by its exact name.
func (s *service) GetCountryByName(ctx context.Context, name string) (*CountryResponse, error) {
	country, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, err
	}
	return ToCountryResponse(country), nil
}

// DeleteCountry removes a single country by name.
func (s *service) DeleteCountry(ctx context.Context, name string) error {
	err := s.repo.DeleteByName(ctx, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrRecordNotFound
	}
	return err
}

// GetStatus returns the refresh-status singleton, creating it on first
// access.
func (s *service) GetStatus(ctx context.Context) (*StatusResponse, error) {
	status, err := s.statusRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	return ToStatusResponse(status), nil
}

// GetSummaryImage returns the cached summary image bytes.
func (s *service) GetSummaryImage(ctx context.Context) ([]byte, error) {
	return s.images.Get(ctx)
}
