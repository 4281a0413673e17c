// Package feeds contains the HTTP clients for the upstream country directory
// and exchange-rate feeds. All retry behaviour lives here; callers never retry.
package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// Currency is a single entry in a country's currency list.
type Currency struct {
	Code string `json:"code"`
}

// CountryRecord is one raw country as returned by the directory feed.
// Population is a pointer so a missing value can be told apart from zero.
type CountryRecord struct {
	Name       string     `json:"name"`
	Capital    string     `json:"capital"`
	Region     string     `json:"region"`
	Population *int64     `json:"population"`
	Currencies []Currency `json:"currencies"`
	Flag       string     `json:"flag"`
}

// ratesEnvelope is the exchange-rate feed response, base currency USD.
type ratesEnvelope struct {
	Rates map[string]float64 `json:"rates"`
}

// Options configures the feed client.
type Options struct {
	CountriesURL string
	RatesURL     string
	UserAgent    string
	Timeout      time.Duration // per-attempt deadline; retries each get a fresh one
	RetryMax     int           // transient-error retries after the first attempt
	RetryWaitMin time.Duration // backoff base, doubled per retry
}

// Client fetches both upstream feeds with a shared retrying HTTP client.
type Client struct {
	http      *retryablehttp.Client
	userAgent string

	countriesURL string
	ratesURL     string
}

// NewClient builds a Client. Retries apply to connection failures and
// server-class statuses only; 4xx responses fail immediately. The timeout
// bounds each attempt separately so a slow upstream cannot starve the retry
// budget.
func NewClient(opts Options) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = opts.RetryMax
	rc.RetryWaitMin = opts.RetryWaitMin
	rc.RetryWaitMax = opts.RetryWaitMin << uint(opts.RetryMax)
	rc.HTTPClient.Timeout = opts.Timeout
	rc.Logger = nil // zerolog owns logging; the default retry logger is noise

	return &Client{
		http:         rc,
		userAgent:    opts.UserAgent,
		countriesURL: opts.CountriesURL,
		ratesURL:     opts.RatesURL,
	}
}

// FetchCountries returns the raw country list from the directory feed.
func (c *Client) FetchCountries(ctx context.Context) ([]CountryRecord, error) {
	var records []CountryRecord
	if err := c.getJSON(ctx, c.countriesURL, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FetchRates returns the currency-code → rate mapping, base USD.
func (c *Client) FetchRates(ctx context.Context) (map[string]float64, error) {
	var envelope ratesEnvelope
	if err := c.getJSON(ctx, c.ratesURL, &envelope); err != nil {
		return nil, err
	}
	return envelope.Rates, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", url, err)
	}
	// Some public feeds reject default client agents.
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", url, err)
	}
	return nil
}
