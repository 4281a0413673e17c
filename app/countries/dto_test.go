package countries

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/osahenru/atlas/models"
)

func TestListCountriesQuery_Filter(t *testing.T) {
	tests := []struct {
		name  string
		query ListCountriesQuery
		want  CountryFilter
	}{
		{
			name:  "empty query",
			query: ListCountriesQuery{},
			want:  CountryFilter{},
		},
		{
			name:  "region and currency",
			query: ListCountriesQuery{Region: "Africa", Currency: "NGN"},
			want:  CountryFilter{Region: "Africa", Currency: "NGN"},
		},
		{
			name:  "gdp sort",
			query: ListCountriesQuery{Sort: SortGDPDesc},
			want:  CountryFilter{SortByGDP: true},
		},
		{
			name:  "unknown sort token",
			query: ListCountriesQuery{Sort: "name_asc"},
			want:  CountryFilter{},
		},
		{
			name:  "sort token is case sensitive",
			query: ListCountriesQuery{Sort: "GDP_DESC"},
			want:  CountryFilter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.Filter())
		})
	}
}

func TestToCountryResponse(t *testing.T) {
	capital := "Abuja"
	region := "Africa"
	code := "NGN"
	rate := 1600.5
	flag := "https://example.com/ng.png"
	now := time.Now().UTC()

	country := &models.Country{
		ID:            uuid.New(),
		Name:          "Nigeria",
		Capital:       &capital,
		Region:        &region,
		Population:    200_000_000,
		CurrencyCode:  &code,
		ExchangeRate:  &rate,
		EstimatedGDP:  1.5e11,
		FlagURL:       &flag,
		LastRefreshed: now,
	}

	resp := ToCountryResponse(country)

	assert.Equal(t, country.ID, resp.ID)
	assert.Equal(t, "Nigeria", resp.Name)
	assert.Equal(t, &capital, resp.Capital)
	assert.Equal(t, &region, resp.Region)
	assert.Equal(t, int64(200_000_000), resp.Population)
	assert.Equal(t, &code, resp.CurrencyCode)
	assert.Equal(t, &rate, resp.ExchangeRate)
	assert.Equal(t, 1.5e11, resp.EstimatedGDP)
	assert.Equal(t, &flag, resp.FlagURL)
	assert.Equal(t, now, resp.LastRefreshed)
}

func TestToCountryResponseList(t *testing.T) {
	countries := []models.Country{
		{ID: uuid.New(), Name: "Nigeria"},
		{ID: uuid.New(), Name: "Ghana"},
	}

	responses := ToCountryResponseList(countries)

	assert.Len(t, responses, 2)
	assert.Equal(t, "Nigeria", responses[0].Name)
	assert.Equal(t, "Ghana", responses[1].Name)

	assert.Empty(t, ToCountryResponseList(nil))
}

func TestToStatusResponse(t *testing.T) {
	t.Run("refreshed", func(t *testing.T) {
		now := time.Now().UTC()
		status := &models.Status{ID: models.StatusID, LastRefreshed: &now, TotalCountries: 250}

		resp := ToStatusResponse(status)

		assert.Equal(t, &now, resp.LastRefreshed)
		assert.Equal(t, int64(250), resp.TotalCountries)
	})

	t.Run("never refreshed", func(t *testing.T) {
		status := &models.Status{ID: models.StatusID}

		resp := ToStatusResponse(status)

		assert.Nil(t, resp.LastRefreshed)
		assert.Zero(t, resp.TotalCountries)
	})
}
