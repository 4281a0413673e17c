package countries

import (
	"time"

	"github.com/google/uuid"
	"github.com/osahenru/atlas/models"
)

// ListCountriesQuery captures the supported list filters.
type ListCountriesQuery struct {
	Region   string `form:"region"`
	Currency string `form:"currency"`
	Sort     string `form:"sort"`
}

// SortGDPDesc is the only recognized sort token; anything else leaves the
// store's natural order.
const SortGDPDesc = "gdp_desc"

// Filter converts the query into a repository filter.
func (q *ListCountriesQuery) Filter() CountryFilter {
	return CountryFilter{
		Region:    q.Region,
		Currency:  q.Currency,
		SortByGDP: q.Sort == SortGDPDesc,
	}
}

// CountryResponse represents the response for country data
type CountryResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Capital       *string   `json:"capital"`
	Region        *string   `json:"region"`
	Population    int64     `json:"population"`
	CurrencyCode  *string   `json:"currency_code"`
	ExchangeRate  *float64  `json:"exchange_rate"`
	EstimatedGDP  float64   `json:"estimated_gdp"`
	FlagURL       *string   `json:"flag_url"`
	LastRefreshed time.Time `json:"last_refreshed_at"`
}

// StatusResponse represents the refresh-status singleton
type StatusResponse struct {
	LastRefreshed  *time.Time `json:"last_refreshed_at"`
	TotalCountries int64      `json:"total_countries"`
}

// RefreshResponse acknowledges a completed refresh cycle
type RefreshResponse struct {
	Count int `json:"count"`
}

// ToCountryResponse converts a models.Country to CountryResponse
func ToCountryResponse(country *models.Country) *CountryResponse {
	return &CountryResponse{
		ID:            country.ID,
		Name:          country.Name,
		Capital:       country.Capital,
		Region:        country.Region,
		Population:    country.Population,
		CurrencyCode:  country.CurrencyCode,
		ExchangeRate:  country.ExchangeRate,
		EstimatedGDP:  country.EstimatedGDP,
		FlagURL:       country.FlagURL,
		LastRefreshed: country.LastRefreshed,
	}
}

// ToCountryResponseList converts a slice of models.Country to CountryResponse
func ToCountryResponseList(countries []models.Country) []CountryResponse {
	responses := make([]CountryResponse, len(countries))
	for i := range countries {
		responses[i] = *ToCountryResponse(&countries[i])
	}
	return responses
}

// ToStatusResponse converts a models.Status to StatusResponse
func ToStatusResponse(status *models.Status) *StatusResponse {
	return &StatusResponse{
		LastRefreshed:  status.LastRefreshed,
		TotalCountries: status.TotalCountries,
	}
}
