package monitor

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"ticketwatch/internal/config"
	"ticketwatch/internal/models"
	"ticketwatch/internal/normalizer"
)

// FingerprintText returns the SHA-256 hex digest of a normalized text body.
func FingerprintText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return fmt.Sprintf("%x", sum)
}

// FingerprintLinks fingerprints a link set: deduplicated, sorted
// lexicographically and joined with newlines before hashing, so that link
// order alone never registers as a change.
func FingerprintLinks(links []string) string {
	unique := dedupeSorted(links)
	return FingerprintText(strings.Join(unique, "\n"))
}

func dedupeSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	unique := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}
	sort.Strings(unique)
	return unique
}

// ContentProcessor turns a fetch outcome into the normalized update that
// the page state store applies: plain text, extracted links, fingerprints
// and the diagnostic excerpt.
type ContentProcessor struct {
	logger zerolog.Logger
	cfg    *config.SignalConfig
}

// NewContentProcessor creates a new ContentProcessor.
func NewContentProcessor(logger zerolog.Logger, cfg *config.SignalConfig) *ContentProcessor {
	return &ContentProcessor{
		logger: logger.With().Str("component", "ContentProcessor").Logger(),
		cfg:    cfg,
	}
}

// Process builds a PageUpdate from a Fetched or Absent outcome. Unchanged
// outcomes never reach the processor; the stored state survives them
// untouched.
func (cp *ContentProcessor) Process(outcome *models.FetchOutcome) *models.PageUpdate {
	update := &models.PageUpdate{
		URL:            outcome.URL,
		FinalURL:       outcome.FinalURL,
		HTTPStatusCode: outcome.HTTPStatusCode,
		Validators:     outcome.Validators,
	}

	if outcome.Kind == models.OutcomeAbsent {
		update.Status = models.StatusAbsent
		update.ContentFingerprint = FingerprintText("")
		update.LinksFingerprint = FingerprintLinks(nil)
		return update
	}

	text := normalizer.NormalizeHTML(outcome.RawBody)
	links := normalizer.ExtractLinks(outcome.RawBody)

	update.Status = models.StatusFetched
	update.NormalizedText = text
	update.Links = links
	update.ContentFingerprint = FingerprintText(text)
	update.LinksFingerprint = FingerprintLinks(links)
	update.Excerpt = normalizer.ExcerptAround(text, cp.cfg.MarkerPhrase, 160)

	cp.logger.Debug().
		Str("url", outcome.URL).
		Str("content_fingerprint", update.ContentFingerprint).
		Int("links", len(links)).
		Msg("Content processed")
	return update
}

// Changed reports whether a page update differs from the prior stored
// state: status class changed, content fingerprint changed or links
// fingerprint changed. A first-ever observation counts as changed; the
// coordinator excludes it from signal notifications on the first run.
func Changed(prior *models.CachedPageState, update *models.PageUpdate) bool {
	if prior == nil {
		return true
	}
	return prior.LastStatus != update.Status ||
		prior.ContentFingerprint != update.ContentFingerprint ||
		prior.LinksFingerprint != update.LinksFingerprint
}

// ApplyUpdate builds the new stored state for a page from an update.
func ApplyUpdate(update *models.PageUpdate) *models.CachedPageState {
	return &models.CachedPageState{
		Validators:         update.Validators,
		LastStatus:         update.Status,
		HTTPStatusCode:     update.HTTPStatusCode,
		ContentFingerprint: update.ContentFingerprint,
		LinksFingerprint:   update.LinksFingerprint,
		Excerpt:            update.Excerpt,
	}
}
