package models

import "time"

// StatusID is the fixed primary key of the singleton status row.
const StatusID int64 = 1

// Status tracks the outcome of the most recent refresh cycle. Exactly one row
// exists per deployment; it is lazily created on first access.
type Status struct {
	ID             int64      `gorm:"primaryKey" json:"-"`
	LastRefreshed  *time.Time `gorm:"column:last_refreshed_at" json:"last_refreshed_at"`
	TotalCountries int64      `gorm:"not null;default:0" json:"total_countries"`
}

// TableName specifies the table name for Status model
func (*Status) TableName() string {
	return "statuses"
}

// Validate performs validation on the status model
func (s *Status) Validate() error {
	if s.TotalCountries < 0 {
		return ErrInvalidStatusCount
	}
	return nil
}
