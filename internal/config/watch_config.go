package config

import "time"

// WatchConfig defines the watched pages and fetch behavior.
type WatchConfig struct {
	LandingURL         string   `json:"landing_url" yaml:"landing_url" validate:"required,url"`
	TicketsURL         string   `json:"tickets_url" yaml:"tickets_url" validate:"required,url"`
	ExtraURLs          []string `json:"extra_urls,omitempty" yaml:"extra_urls,omitempty" validate:"omitempty,dive,url"`
	HTTPTimeoutSeconds int      `json:"http_timeout_seconds,omitempty" yaml:"http_timeout_seconds,omitempty" validate:"omitempty,min=1"`
	UserAgent          string   `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	MaxContentSize     int      `json:"max_content_size,omitempty" yaml:"max_content_size,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultWatchConfig creates default watch configuration
func NewDefaultWatchConfig() WatchConfig {
	return WatchConfig{
		LandingURL:         DefaultLandingURL,
		TicketsURL:         DefaultTicketsURL,
		HTTPTimeoutSeconds: DefaultHTTPTimeoutSeconds,
		UserAgent:          DefaultUserAgent,
		MaxContentSize:     DefaultMaxContentSize,
	}
}

// Targets returns the ordered list of watched URLs: landing first, tickets
// second, then any extras. Later classification relies on this order.
func (wc WatchConfig) Targets() []string {
	targets := []string{wc.LandingURL, wc.TicketsURL}
	return append(targets, wc.ExtraURLs...)
}

// HTTPTimeout returns the per-fetch wall-clock timeout.
func (wc WatchConfig) HTTPTimeout() time.Duration {
	if wc.HTTPTimeoutSeconds <= 0 {
		return time.Duration(DefaultHTTPTimeoutSeconds) * time.Second
	}
	return time.Duration(wc.HTTPTimeoutSeconds) * time.Second
}
