package countries

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/osahenru/atlas/models"
)

// upsertColumns are the non-key fields replaced when a name already exists.
var upsertColumns = []string{
	"capital",
	"region",
	"population",
	"currency_code",
	"exchange_rate",
	"estimated_gdp",
	"flag_url",
	"last_refreshed_at",
}

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new country repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// UpsertAll replaces all non-key fields of every record, keyed by name.
func (r *repository) UpsertAll(ctx context.Context, countries []models.Country) error {
	if len(countries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns(upsertColumns),
	}).Create(&countries).Error
}

// List returns countries matching the filter.
func (r *repository) List(ctx context.Context, filter CountryFilter) ([]models.Country, error) {
	q := r.db.WithContext(ctx).Model(&models.Country{})
	if filter.Region != "" {
		q = q.Where("LOWER(region) = LOWER(?)", filter.Region)
	}
	if filter.Currency != "" {
		q = q.Where("LOWER(currency_code) = LOWER(?)", filter.Currency)
	}
	if filter.SortByGDP {
		q = q.Order("estimated_gdp DESC")
	}

	var countries []models.Country
	err := q.Find(&countries).Error
	return countries, err
}

// GetByName returns a country by its exact name.
func (r *repository) GetByName(ctx context.Context, name string) (*models.Country, error) {
	var country models.Country
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&country).Error
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// DeleteByName removes a country; deleting an unknown name is an error.
func (r *repository) DeleteByName(ctx context.Context, name string) error {
	res := r.db.WithContext(ctx).Where("name = ?", name).Delete(&models.Country{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the store cardinality.
func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Country{}).Count(&count).Error
	return count, err
}

// TopByGDP returns up to limit countries ordered descending by the derived
// metric. Tie order follows store iteration order and is unspecified.
func (r *repository) TopByGDP(ctx context.Context, limit int) ([]models.Country, error) {
	var countries []models.Country
	err := r.db.WithContext(ctx).
		Order("estimated_gdp DESC").
		Limit(limit).
		Find(&countries).Error
	return countries, err
}
