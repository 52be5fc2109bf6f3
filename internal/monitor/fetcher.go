package monitor

import (
	"context"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"ticketwatch/internal/common"
	"ticketwatch/internal/config"
	"ticketwatch/internal/models"
)

// Fetcher performs one conditional GET per watched URL and classifies the
// HTTP outcome. A 304 is reported as Unchanged, a 404/410 as Absent and a
// 2xx as Fetched; every other status, a timeout or a transport failure is
// an error that aborts the whole run.
type Fetcher struct {
	httpClient *http.Client
	logger     zerolog.Logger
	cfg        *config.WatchConfig
}

// NewFetcher creates a new Fetcher. The client must carry the configured
// timeout and follow redirects; the final URL is taken from the response.
func NewFetcher(client *http.Client, logger zerolog.Logger, cfg *config.WatchConfig) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: cfg.HTTPTimeout()}
	}
	return &Fetcher{
		httpClient: client,
		logger:     logger.With().Str("component", "Fetcher").Logger(),
		cfg:        cfg,
	}
}

// Fetch sends a GET with the prior cache validators replayed as
// If-None-Match / If-Modified-Since.
func (f *Fetcher) Fetch(ctx context.Context, url string, prior models.Validators) (*models.FetchOutcome, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, common.WrapErrorf(err, "creating request for %s", url)
	}

	req.Header.Set("User-Agent", f.cfg.UserAgent)
	if prior.ETag != "" {
		req.Header.Set("If-None-Match", prior.ETag)
	}
	if prior.LastModified != "" {
		req.Header.Set("If-Modified-Since", prior.LastModified)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.logger.Error().Err(err).Str("url", url).Msg("HTTP request failed")
		return nil, common.NewNetworkError(url, "HTTP request failed", err)
	}
	defer resp.Body.Close()

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	outcome := &models.FetchOutcome{
		URL:            url,
		FinalURL:       finalURL,
		HTTPStatusCode: resp.StatusCode,
		Validators: models.Validators{
			ETag:         resp.Header.Get("ETag"),
			LastModified: resp.Header.Get("Last-Modified"),
		},
	}

	switch {
	case resp.StatusCode == http.StatusNotModified:
		f.logger.Debug().Str("url", url).Msg("Content not modified (304)")
		outcome.Kind = models.OutcomeUnchanged
		// The caller keeps the stored validators; the ones on a 304
		// response are not authoritative.
		outcome.Validators = prior
		return outcome, nil

	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		f.logger.Info().Str("url", url).Int("status_code", resp.StatusCode).Msg("Watched page is absent")
		outcome.Kind = models.OutcomeAbsent
		return outcome, nil

	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		body, err := io.ReadAll(io.LimitReader(resp.Body, int64(f.cfg.MaxContentSize)+1))
		if err != nil {
			return nil, common.WrapErrorf(err, "reading response body for %s", url)
		}
		if len(body) > f.cfg.MaxContentSize {
			return nil, common.NewError("content too large for %s: more than %d bytes", url, f.cfg.MaxContentSize)
		}
		outcome.Kind = models.OutcomeFetched
		outcome.RawBody = string(body)
		f.logger.Debug().Str("url", url).Str("final_url", finalURL).Int("size", len(body)).Msg("Page fetched")
		return outcome, nil

	default:
		f.logger.Warn().Str("url", url).Int("status_code", resp.StatusCode).Msg("Received unexpected HTTP status")
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, common.NewHTTPError(url, resp.StatusCode, string(body))
	}
}
