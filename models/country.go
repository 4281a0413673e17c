package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Country holds the latest known attributes for a single country. Records are
// replaced wholesale on every refresh cycle; name is the upsert key.
type Country struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null;unique" json:"name"`
	Capital       *string   `gorm:"type:varchar(255)" json:"capital"`
	Region        *string   `gorm:"type:varchar(255)" json:"region"`
	Population    int64     `gorm:"not null" json:"population"`
	CurrencyCode  *string   `gorm:"type:varchar(10)" json:"currency_code"` // ISO 4217, first entry in the feed's currency list
	ExchangeRate  *float64  `json:"exchange_rate"`                         // local currency per 1 USD
	EstimatedGDP  float64   `gorm:"not null;default:0" json:"estimated_gdp"`
	FlagURL       *string   `gorm:"type:varchar(2048)" json:"flag_url"`
	LastRefreshed time.Time `gorm:"column:last_refreshed_at;autoUpdateTime" json:"last_refreshed_at"`
}

// TableName specifies the table name for Country model
func (*Country) TableName() string {
	return "countries"
}

// BeforeCreate sets up the model before creation
func (c *Country) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// HasExchangeRate reports whether a usable (strictly positive) rate is present.
func (c *Country) HasExchangeRate() bool {
	return c.ExchangeRate != nil && *c.ExchangeRate > 0
}

// Validate performs validation on the country model
func (c *Country) Validate() error {
	if c.Name == "" {
		return ErrInvalidCountryName
	}
	if c.Population < 0 {
		return ErrNegativePopulation
	}
	if c.ExchangeRate != nil && *c.ExchangeRate <= 0 {
		return ErrInvalidExchangeRate
	}
	if c.EstimatedGDP < 0 {
		return ErrInvalidEstimatedGDP
	}
	return nil
}
