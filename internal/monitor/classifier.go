package monitor

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"ticketwatch/internal/config"
	"ticketwatch/internal/models"
	"ticketwatch/internal/urlhandler"
)

// SignalClassifier turns raw page-state changes into business signals.
// All rules are data-driven predicates over the configured marker phrase
// and keyword sets; the classifier holds no per-site logic of its own.
type SignalClassifier struct {
	cfg    *config.SignalConfig
	logger zerolog.Logger
}

// NewSignalClassifier creates a new SignalClassifier.
func NewSignalClassifier(logger zerolog.Logger, cfg *config.SignalConfig) *SignalClassifier {
	return &SignalClassifier{
		cfg:    cfg,
		logger: logger.With().Str("component", "SignalClassifier").Logger(),
	}
}

// ClassifyTickets evaluates the reappearance and phrase-and-marker rules
// for the tickets target. Both rules require the page to have changed this
// run; the rules are independent and may both fire from one run.
func (sc *SignalClassifier) ClassifyTickets(prior *models.CachedPageState, update *models.PageUpdate, changed bool) []models.Signal {
	if !changed {
		return nil
	}

	var signals []models.Signal

	if sc.reappeared(prior, update) {
		sc.logger.Info().Str("url", update.URL).Msg("Tickets page reappeared")
		signals = append(signals, models.Signal{
			Kind: models.SignalReappeared,
			URL:  update.FinalURL,
		})
	}

	if update.Status == models.StatusFetched && sc.saleLikelyOpen(update.NormalizedText) {
		sc.logger.Info().Str("url", update.URL).Msg("Ticket sale looks open")
		signals = append(signals, models.Signal{
			Kind: models.SignalSaleOpen,
			URL:  update.FinalURL,
		})
	}

	return signals
}

// reappeared is true on a transition from never-seen or absent to a
// successful fetch. Content fingerprints play no part: the page coming
// back online is itself the signal.
func (sc *SignalClassifier) reappeared(prior *models.CachedPageState, update *models.PageUpdate) bool {
	if update.Status != models.StatusFetched {
		return false
	}
	return prior == nil || prior.LastStatus == models.StatusAbsent || prior.LastStatus == models.StatusNeverSeen
}

// saleLikelyOpen requires the marker phrase to be gone AND at least
// MinKeywordHits distinct purchase-intent keywords to be present. A single
// keyword hit never fires; nor does the phrase disappearing alone.
func (sc *SignalClassifier) saleLikelyOpen(normalizedText string) bool {
	text := strings.ToLower(normalizedText)

	if sc.cfg.MarkerPhrase != "" && strings.Contains(text, strings.ToLower(sc.cfg.MarkerPhrase)) {
		return false
	}

	hits := 0
	for _, keyword := range sc.cfg.PurchaseKeywords {
		if strings.Contains(text, strings.ToLower(keyword)) {
			hits++
		}
	}
	return hits >= sc.cfg.MinKeywordHits
}

// ClassifyLanding evaluates the new-link rule for the landing target: the
// page changed this run and at least one extracted link, resolved against
// the landing URL, matches a ticket-related keyword. The signal is strong
// when the marker phrase has also disappeared from the landing text.
func (sc *SignalClassifier) ClassifyLanding(update *models.PageUpdate, changed bool) *models.Signal {
	if !changed || update.Status != models.StatusFetched {
		return nil
	}

	candidates := sc.ticketLinks(update.URL, update.Links)
	if len(candidates) == 0 {
		return nil
	}

	markerGone := sc.cfg.MarkerPhrase != "" &&
		!strings.Contains(strings.ToLower(update.NormalizedText), strings.ToLower(sc.cfg.MarkerPhrase))

	sc.logger.Info().
		Str("url", update.URL).
		Int("candidate_links", len(candidates)).
		Bool("strong", markerGone).
		Msg("Ticket-looking links found on landing page")

	return &models.Signal{
		Kind:   models.SignalNewTicketLinks,
		URL:    update.FinalURL,
		Links:  candidates,
		Strong: markerGone,
	}
}

// ticketLinks resolves, filters, deduplicates, sorts and caps the
// candidate ticket links for notification purposes.
func (sc *SignalClassifier) ticketLinks(baseURL string, links []string) []string {
	seen := make(map[string]struct{})
	var candidates []string
	for _, href := range links {
		resolved := urlhandler.ResolveURL(baseURL, href)
		lower := strings.ToLower(resolved)
		for _, keyword := range sc.cfg.TicketLinkKeywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				if _, ok := seen[resolved]; !ok {
					seen[resolved] = struct{}{}
					candidates = append(candidates, resolved)
				}
				break
			}
		}
	}
	sort.Strings(candidates)

	max := sc.cfg.MaxReportedLinks
	if max > 0 && len(candidates) > max {
		candidates = candidates[:max]
	}
	return candidates
}
