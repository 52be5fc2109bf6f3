package monitor

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketwatch/internal/config"
	"ticketwatch/internal/models"
)

const testMarker = "exact date to be announced later"

func newTestClassifier() *SignalClassifier {
	cfg := config.SignalConfig{
		MarkerPhrase:       testMarker,
		PurchaseKeywords:   []string{"cart", "checkout", "buy", "time slot", "select", "book your slot"},
		MinKeywordHits:     2,
		TicketLinkKeywords: []string{"ticket", "billet", "booking", "reservation", "checkout", "shop"},
		MaxReportedLinks:   10,
	}
	return NewSignalClassifier(zerolog.Nop(), &cfg)
}

func fetchedUpdate(text string, links ...string) *models.PageUpdate {
	return &models.PageUpdate{
		URL:                "https://example.com/fr/",
		FinalURL:           "https://example.com/fr/",
		Status:             models.StatusFetched,
		HTTPStatusCode:     200,
		NormalizedText:     text,
		Links:              links,
		ContentFingerprint: FingerprintText(text),
		LinksFingerprint:   FingerprintLinks(links),
	}
}

func TestSaleOpenRule_MarkerAndKeywordConjunction(t *testing.T) {
	sc := newTestClassifier()
	prior := &models.CachedPageState{LastStatus: models.StatusFetched, ContentFingerprint: "old"}

	tests := []struct {
		name  string
		text  string
		fires bool
	}{
		{"marker present, many keywords", testMarker + " cart checkout buy", false},
		{"marker gone, zero keywords", "welcome to the greenhouses", false},
		{"marker gone, one keyword", "put it in your cart", false},
		{"marker gone, two keywords", "add to cart then checkout", true},
		{"marker gone, three keywords", "buy now, pick a time slot, checkout", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			update := fetchedUpdate(tc.text)
			signals := sc.ClassifyTickets(prior, update, true)

			var saleOpen bool
			for _, s := range signals {
				if s.Kind == models.SignalSaleOpen {
					saleOpen = true
				}
			}
			assert.Equal(t, tc.fires, saleOpen)
		})
	}
}

func TestSaleOpenRule_NotEvaluatedWhenUnchanged(t *testing.T) {
	sc := newTestClassifier()
	update := fetchedUpdate("add to cart then checkout")
	assert.Empty(t, sc.ClassifyTickets(nil, update, false))
}

func TestReappearanceRule(t *testing.T) {
	sc := newTestClassifier()
	update := fetchedUpdate("nothing interesting here")

	t.Run("absent to fetched fires", func(t *testing.T) {
		prior := &models.CachedPageState{LastStatus: models.StatusAbsent}
		signals := sc.ClassifyTickets(prior, update, true)
		require.Len(t, signals, 1)
		assert.Equal(t, models.SignalReappeared, signals[0].Kind)
	})

	t.Run("never seen to fetched fires", func(t *testing.T) {
		signals := sc.ClassifyTickets(nil, update, true)
		require.Len(t, signals, 1)
		assert.Equal(t, models.SignalReappeared, signals[0].Kind)
	})

	t.Run("fetched to fetched does not fire", func(t *testing.T) {
		prior := &models.CachedPageState{LastStatus: models.StatusFetched, ContentFingerprint: "old"}
		for _, s := range sc.ClassifyTickets(prior, update, true) {
			assert.NotEqual(t, models.SignalReappeared, s.Kind)
		}
	})

	t.Run("fetched to absent does not fire", func(t *testing.T) {
		prior := &models.CachedPageState{LastStatus: models.StatusFetched}
		absent := &models.PageUpdate{Status: models.StatusAbsent, HTTPStatusCode: 404}
		assert.Empty(t, sc.ClassifyTickets(prior, absent, true))
	})
}

func TestReappearanceAndSaleOpenFromSameRun(t *testing.T) {
	sc := newTestClassifier()
	prior := &models.CachedPageState{LastStatus: models.StatusAbsent}
	update := fetchedUpdate("book your slot and proceed to checkout")

	signals := sc.ClassifyTickets(prior, update, true)
	require.Len(t, signals, 2)

	kinds := []models.SignalKind{signals[0].Kind, signals[1].Kind}
	assert.Contains(t, kinds, models.SignalReappeared)
	assert.Contains(t, kinds, models.SignalSaleOpen)
}

func TestNewLinkRule_WeakAndStrong(t *testing.T) {
	sc := newTestClassifier()

	t.Run("marker still present gives weak signal", func(t *testing.T) {
		update := fetchedUpdate("some text "+testMarker+" more text", "/fr/tickets-billetterie", "/fr/about")
		signal := sc.ClassifyLanding(update, true)
		require.NotNil(t, signal)
		assert.Equal(t, models.SignalNewTicketLinks, signal.Kind)
		assert.False(t, signal.Strong)
		assert.Equal(t, []string{"https://example.com/fr/tickets-billetterie"}, signal.Links)
	})

	t.Run("marker gone gives strong signal", func(t *testing.T) {
		update := fetchedUpdate("new season open", "/fr/tickets-billetterie")
		signal := sc.ClassifyLanding(update, true)
		require.NotNil(t, signal)
		assert.True(t, signal.Strong)
	})

	t.Run("no ticket-looking links gives no signal", func(t *testing.T) {
		update := fetchedUpdate("changed text", "/fr/about", "/fr/history")
		assert.Nil(t, sc.ClassifyLanding(update, true))
	})

	t.Run("unchanged page gives no signal", func(t *testing.T) {
		update := fetchedUpdate("text", "/fr/tickets-billetterie")
		assert.Nil(t, sc.ClassifyLanding(update, false))
	})
}

func TestNewLinkRule_DedupeSortCap(t *testing.T) {
	sc := newTestClassifier()

	var links []string
	for i := 14; i >= 0; i-- {
		links = append(links, fmt.Sprintf("/tickets/%02d", i))
	}
	links = append(links, "/tickets/00") // duplicate

	update := fetchedUpdate("text", links...)
	signal := sc.ClassifyLanding(update, true)
	require.NotNil(t, signal)
	assert.Len(t, signal.Links, 10)
	assert.Equal(t, "https://example.com/tickets/00", signal.Links[0])
	assert.Equal(t, "https://example.com/tickets/09", signal.Links[9])
}
