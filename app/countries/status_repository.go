package countries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/osahenru/atlas/models"
)

// statusRepository implements StatusRepository on the single-row statuses
// table.
type statusRepository struct {
	db *gorm.DB
}

// NewStatusRepository creates a new status repository
func NewStatusRepository(db *gorm.DB) StatusRepository {
	return &statusRepository{
		db: db,
	}
}

// GetOrCreate returns the singleton, creating it with defaults on first
// access.
func (r *statusRepository) GetOrCreate(ctx context.Context) (*models.Status, error) {
	status := models.Status{ID: models.StatusID}
	err := r.db.WithContext(ctx).
		Where(models.Status{ID: models.StatusID}).
		FirstOrCreate(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// RecordRefresh stamps the singleton after a completed cycle. Callers invoke
// it only once every country upsert has committed.
func (r *statusRepository) RecordRefresh(ctx context.Context, count int64) (*models.Status, error) {
	status, err := r.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	err = r.db.WithContext(ctx).Model(status).Updates(map[string]interface{}{
		"last_refreshed_at": now,
		"total_countries":   count,
	}).Error
	if err != nil {
		return nil, err
	}

	status.LastRefreshed = &now
	status.TotalCountries = count
	return status, nil
}
