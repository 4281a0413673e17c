package countries

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osahenru/atlas/internal/feeds"
	"github.com/osahenru/atlas/internal/sanitizer"
)

func newTestMerger(multiplier int) *Merger {
	m := NewMerger(sanitizer.NewTextStripper())
	m.multiplier = func() int { return multiplier }
	return m
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestMerger_Merge(t *testing.T) {
	t.Run("Full Record With Rate", func(t *testing.T) {
		m := newTestMerger(1500)

		records := []feeds.CountryRecord{
			{
				Name:       "Test Country",
				Capital:    "Test City",
				Region:     "Test Region",
				Population: int64Ptr(1000),
				Currencies: []feeds.Currency{{Code: "TCC"}},
				Flag:       "https://example.com/flag.png",
			},
		}
		rates := map[string]float64{"TCC": 1.5}

		merged := m.Merge(records, rates)

		assert.Len(t, merged, 1)
		country := merged[0]
		assert.Equal(t, "Test Country", country.Name)
		assert.Equal(t, "Test City", *country.Capital)
		assert.Equal(t, "Test Region", *country.Region)
		assert.Equal(t, int64(1000), country.Population)
		assert.Equal(t, "TCC", *country.CurrencyCode)
		assert.Equal(t, 1.5, *country.ExchangeRate)
		assert.Equal(t, "https://example.com/flag.png", *country.FlagURL)
		assert.InDelta(t, 1_000_000, country.EstimatedGDP, 0.001)
	})

	t.Run("No Currencies", func(t *testing.T) {
		m := newTestMerger(1500)

		records := []feeds.CountryRecord{
			{Name: "Moonland", Population: int64Ptr(500)},
		}

		merged := m.Merge(records, map[string]float64{"USD": 1})

		assert.Len(t, merged, 1)
		country := merged[0]
		assert.Nil(t, country.CurrencyCode)
		assert.Nil(t, country.ExchangeRate)
		assert.Zero(t, country.EstimatedGDP)
		assert.Equal(t, int64(500), country.Population)
	})

	t.Run("Unknown Currency Code", func(t *testing.T) {
		m := newTestMerger(1500)

		records := []feeds.CountryRecord{
			{
				Name:       "Atlantis",
				Population: int64Ptr(500),
				Currencies: []feeds.Currency{{Code: "ATL"}},
			},
		}

		merged := m.Merge(records, map[string]float64{"USD": 1})

		assert.Len(t, merged, 1)
		country := merged[0]
		assert.Equal(t, "ATL", *country.CurrencyCode)
		assert.Nil(t, country.ExchangeRate)
		assert.Zero(t, country.EstimatedGDP)
	})

	t.Run("Non-Positive Rate Discarded", func(t *testing.T) {
		m := newTestMerger(1500)

		records := []feeds.CountryRecord{
			{
				Name:       "Zeroland",
				Population: int64Ptr(500),
				Currencies: []feeds.Currency{{Code: "ZRO"}},
			},
		}

		merged := m.Merge(records, map[string]float64{"ZRO": 0})

		assert.Len(t, merged, 1)
		assert.Nil(t, merged[0].ExchangeRate)
		assert.Zero(t, merged[0].EstimatedGDP)
	})

	t.Run("First Currency Wins", func(t *testing.T) {
		m := newTestMerger(1500)

		records := []feeds.CountryRecord{
			{
				Name:       "Twincurrency",
				Population: int64Ptr(100),
				Currencies: []feeds.Currency{{Code: "AAA"}, {Code: "BBB"}},
			},
		}

		merged := m.Merge(records, map[string]float64{"AAA": 2, "BBB": 4})

		assert.Len(t, merged, 1)
		assert.Equal(t, "AAA", *merged[0].CurrencyCode)
		assert.Equal(t, 2.0, *merged[0].ExchangeRate)
	})

	t.Run("Missing Population", func(t *testing.T) {
		m := newTestMerger(1500)

		records := []feeds.CountryRecord{
			{
				Name:       "Ghost Town",
				Currencies: []feeds.Currency{{Code: "USD"}},
			},
		}

		merged := m.Merge(records, map[string]float64{"USD": 1})

		assert.Len(t, merged, 1)
		assert.Zero(t, merged[0].Population)
		assert.Equal(t, 1.0, *merged[0].ExchangeRate)
		assert.Zero(t, merged[0].EstimatedGDP)
	})

	t.Run("Negative Population Dropped", func(t *testing.T) {
		m := newTestMerger(1500)

		records := []feeds.CountryRecord{
			{Name: "Antimatter", Population: int64Ptr(-5)},
			{Name: "Kept", Population: int64Ptr(5)},
		}

		merged := m.Merge(records, nil)

		assert.Len(t, merged, 1)
		assert.Equal(t, "Kept", merged[0].Name)
	})

	t.Run("Blank Name Dropped", func(t *testing.T) {
		m := newTestMerger(1500)

		records := []feeds.CountryRecord{
			{Name: "   ", Population: int64Ptr(10)},
			{Name: "Kept", Population: int64Ptr(10)},
		}

		merged := m.Merge(records, nil)

		assert.Len(t, merged, 1)
		assert.Equal(t, "Kept", merged[0].Name)
	})

	t.Run("HTML Stripped From Text", func(t *testing.T) {
		m := newTestMerger(1500)

		records := []feeds.CountryRecord{
			{
				Name:    "<b>France</b>",
				Capital: "<script>alert(1)</script>Paris",
			},
		}

		merged := m.Merge(records, nil)

		assert.Len(t, merged, 1)
		assert.Equal(t, "France", merged[0].Name)
		assert.Equal(t, "Paris", *merged[0].Capital)
	})

	t.Run("Duplicate Name Last Wins", func(t *testing.T) {
		m := newTestMerger(1500)

		records := []feeds.CountryRecord{
			{Name: "Dupe", Population: int64Ptr(1)},
			{Name: "Other", Population: int64Ptr(2)},
			{Name: "Dupe", Population: int64Ptr(3)},
		}

		merged := m.Merge(records, nil)

		assert.Len(t, merged, 2)
		assert.Equal(t, "Dupe", merged[0].Name)
		assert.Equal(t, int64(3), merged[0].Population)
		assert.Equal(t, "Other", merged[1].Name)
	})

	t.Run("Empty Input", func(t *testing.T) {
		m := newTestMerger(1500)

		merged := m.Merge(nil, nil)

		assert.Empty(t, merged)
	})
}

func TestMerger_MultiplierBounds(t *testing.T) {
	m := NewMerger(sanitizer.NewTextStripper())

	for i := 0; i < 100; i++ {
		v := m.multiplier()
		assert.GreaterOrEqual(t, v, gdpMultiplierMin)
		assert.LessOrEqual(t, v, gdpMultiplierMax)
	}
}
