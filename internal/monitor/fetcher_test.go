package monitor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketwatch/internal/common"
	"ticketwatch/internal/config"
	"ticketwatch/internal/models"
)

func newTestFetcher(timeout time.Duration) *Fetcher {
	cfg := config.NewDefaultWatchConfig()
	cfg.HTTPTimeoutSeconds = int(timeout / time.Second)
	if cfg.HTTPTimeoutSeconds < 1 {
		cfg.HTTPTimeoutSeconds = 1
	}
	client := &http.Client{Timeout: timeout}
	return NewFetcher(client, zerolog.Nop(), &cfg)
}

func TestFetch_SuccessCarriesValidatorsAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, config.DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("ETag", `"v1"`)
		w.Header().Set("Last-Modified", "Mon, 02 Jan 2006 15:04:05 GMT")
		_, _ = w.Write([]byte("<html><body>tickets</body></html>"))
	}))
	defer server.Close()

	f := newTestFetcher(5 * time.Second)
	outcome, err := f.Fetch(context.Background(), server.URL, models.Validators{})
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeFetched, outcome.Kind)
	assert.Equal(t, `"v1"`, outcome.Validators.ETag)
	assert.Equal(t, "Mon, 02 Jan 2006 15:04:05 GMT", outcome.Validators.LastModified)
	assert.Contains(t, outcome.RawBody, "tickets")
	assert.Equal(t, 200, outcome.HTTPStatusCode)
}

func TestFetch_SendsConditionalHeaders(t *testing.T) {
	var gotETag, gotModified string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotETag = r.Header.Get("If-None-Match")
		gotModified = r.Header.Get("If-Modified-Since")
		w.WriteHeader(http.StatusNotModified)
	}))
	defer server.Close()

	f := newTestFetcher(5 * time.Second)
	prior := models.Validators{ETag: `"v1"`, LastModified: "Mon, 02 Jan 2006 15:04:05 GMT"}
	outcome, err := f.Fetch(context.Background(), server.URL, prior)
	require.NoError(t, err)

	assert.Equal(t, `"v1"`, gotETag)
	assert.Equal(t, "Mon, 02 Jan 2006 15:04:05 GMT", gotModified)
	assert.Equal(t, models.OutcomeUnchanged, outcome.Kind)
	// A 304 outcome keeps the prior validators.
	assert.Equal(t, prior, outcome.Validators)
}

func TestFetch_NotFoundIsAbsentNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	f := newTestFetcher(5 * time.Second)
	outcome, err := f.Fetch(context.Background(), server.URL, models.Validators{})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeAbsent, outcome.Kind)
	assert.Equal(t, 404, outcome.HTTPStatusCode)
}

func TestFetch_GoneIsAbsent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer server.Close()

	f := newTestFetcher(5 * time.Second)
	outcome, err := f.Fetch(context.Background(), server.URL, models.Validators{})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeAbsent, outcome.Kind)
}

func TestFetch_ServerErrorAborts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	f := newTestFetcher(5 * time.Second)
	_, err := f.Fetch(context.Background(), server.URL, models.Validators{})
	require.Error(t, err)

	var httpErr *common.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
}

func TestFetch_RedirectReportsFinalURL(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new", http.StatusMovedPermanently)
	})
	mux.HandleFunc("/new", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("moved here"))
	})

	f := newTestFetcher(5 * time.Second)
	outcome, err := f.Fetch(context.Background(), server.URL+"/old", models.Validators{})
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeFetched, outcome.Kind)
	assert.Equal(t, server.URL+"/new", outcome.FinalURL)
	assert.Equal(t, server.URL+"/old", outcome.URL)
}

func TestFetch_TimeoutIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	f := newTestFetcher(time.Second)
	_, err := f.Fetch(context.Background(), server.URL, models.Validators{})
	require.Error(t, err)

	var netErr *common.NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestFetch_ContentTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(make([]byte, 4096))
	}))
	defer server.Close()

	cfg := config.NewDefaultWatchConfig()
	cfg.MaxContentSize = 1024
	f := NewFetcher(&http.Client{Timeout: 5 * time.Second}, zerolog.Nop(), &cfg)

	_, err := f.Fetch(context.Background(), server.URL, models.Validators{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content too large")
}
