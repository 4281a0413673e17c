package feeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testUserAgent = "Mozilla/5.0 (test)"

func newTestClient(countriesURL, ratesURL string) *Client {
	return NewClient(Options{
		CountriesURL: countriesURL,
		RatesURL:     ratesURL,
		UserAgent:    testUserAgent,
		Timeout:      2 * time.Second,
		RetryMax:     2,
		RetryWaitMin: time.Millisecond,
	})
}

func TestFetchCountries_Success(t *testing.T) {
	var gotAgent atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent.Store(r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":"Test Country","capital":"Test Capital","region":"Test Region",
			 "population":1000000,"currencies":[{"code":"TC"}],"flag":"https://flag.co/test.svg"},
			{"name":"Bare Country"}
		]`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	records, err := c.FetchCountries(context.Background())

	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "Test Country", records[0].Name)
	assert.NotNil(t, records[0].Population)
	assert.EqualValues(t, 1000000, *records[0].Population)
	assert.Equal(t, "TC", records[0].Currencies[0].Code)
	assert.Nil(t, records[1].Population)
	assert.Empty(t, records[1].Currencies)
	assert.Equal(t, testUserAgent, gotAgent.Load())
}

func TestFetchRates_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base_code":"USD","rates":{"TC":1.5,"NGN":1600.25}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	rates, err := c.FetchRates(context.Background())

	assert.NoError(t, err)
	assert.Len(t, rates, 2)
	assert.InDelta(t, 1.5, rates["TC"], 1e-9)
}

func TestFetch_RetriesTransientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"rates":{"TC":1.5}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	rates, err := c.FetchRates(context.Background())

	assert.NoError(t, err)
	assert.InDelta(t, 1.5, rates["TC"], 1e-9)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestFetch_GivesUpAfterRetryBudget(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	_, err := c.FetchCountries(context.Background())

	assert.Error(t, err)
	// initial attempt + RetryMax retries
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestFetch_ClientErrorIsNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	_, err := c.FetchCountries(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestFetch_SlowAttemptIsRetriedWithFreshDeadline(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			// Outlasts the per-attempt timeout; the retry must still get its
			// own full deadline instead of inheriting an exhausted one.
			time.Sleep(150 * time.Millisecond)
		}
		_, _ = w.Write([]byte(`{"rates":{"TC":1.5}}`))
	}))
	defer srv.Close()

	c := NewClient(Options{
		CountriesURL: srv.URL,
		RatesURL:     srv.URL,
		UserAgent:    testUserAgent,
		Timeout:      50 * time.Millisecond,
		RetryMax:     2,
		RetryWaitMin: time.Millisecond,
	})

	rates, err := c.FetchRates(context.Background())

	assert.NoError(t, err)
	assert.InDelta(t, 1.5, rates["TC"], 1e-9)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestFetch_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, srv.URL)
	_, err := c.FetchCountries(context.Background())
	assert.Error(t, err)
}
