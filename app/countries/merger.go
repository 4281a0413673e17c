package countries

import (
	"math/rand/v2"

	"github.com/osahenru/atlas/internal/feeds"
	"github.com/osahenru/atlas/internal/sanitizer"
	"github.com/osahenru/atlas/models"
)

// GDP multiplier bounds. The directory feed carries no real GDP figure, so a
// noisy proxy is derived per country, per cycle. The value is not stable
// across refreshes and must not be treated as an economic figure.
const (
	gdpMultiplierMin = 1000
	gdpMultiplierMax = 2000
)

// Merger joins raw country records with the exchange-rate mapping and derives
// one store-ready record per distinct country name.
type Merger struct {
	stripper   sanitizer.TextStripperer
	multiplier func() int
}

// NewMerger creates a merger. Feed text passes through the stripper before it
// is persisted.
func NewMerger(stripper sanitizer.TextStripperer) *Merger {
	return &Merger{
		stripper: stripper,
		multiplier: func() int {
			return gdpMultiplierMin + rand.IntN(gdpMultiplierMax-gdpMultiplierMin+1)
		},
	}
}

// Merge produces upsert-ready records. Records without a usable name or
// failing model validation are dropped; a later record with a duplicate name
// replaces the earlier one within the same cycle.
func (m *Merger) Merge(records []feeds.CountryRecord, rates map[string]float64) []models.Country {
	merged := make([]models.Country, 0, len(records))
	seen := make(map[string]int, len(records))

	for i := range records {
		country := m.mergeOne(&records[i], rates)
		if country == nil {
			continue
		}
		if err := country.Validate(); err != nil {
			continue
		}
		if idx, ok := seen[country.Name]; ok {
			merged[idx] = *country
			continue
		}
		seen[country.Name] = len(merged)
		merged = append(merged, *country)
	}

	return merged
}

func (m *Merger) mergeOne(record *feeds.CountryRecord, rates map[string]float64) *models.Country {
	name := m.stripper.StripText(record.Name)
	if name == "" {
		return nil
	}

	country := &models.Country{
		Name:         name,
		Capital:      m.optionalText(record.Capital),
		Region:       m.optionalText(record.Region),
		FlagURL:      optional(record.Flag),
		CurrencyCode: firstCurrencyCode(record.Currencies),
	}

	if record.Population != nil {
		country.Population = *record.Population
	}

	if country.CurrencyCode != nil {
		// Non-positive rates are discarded rather than stored: a zero rate
		// must suppress the GDP computation, not divide by zero.
		if rate, ok := rates[*country.CurrencyCode]; ok && rate > 0 {
			country.ExchangeRate = &rate
		}
	}

	if record.Population != nil && *record.Population >= 0 && country.HasExchangeRate() {
		country.EstimatedGDP = float64(*record.Population) * float64(m.multiplier()) / *country.ExchangeRate
	}

	return country
}

func (m *Merger) optionalText(s string) *string {
	return optional(m.stripper.StripText(s))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// firstCurrencyCode returns the code of the first entry in the feed's
// currency list. The feed's ordering is preserved verbatim; no "primary
// currency" heuristic is applied.
func firstCurrencyCode(currencies []feeds.Currency) *string {
	if len(currencies) == 0 {
		return nil
	}
	return optional(currencies[0].Code)
}
