package models

// SignalKind identifies a business-meaningful conclusion drawn from a
// page-state change, distinct from the raw change detection itself.
type SignalKind string

const (
	// SignalSaleOpen fires when the marker phrase disappeared from the
	// tickets page and enough purchase-intent keywords appeared.
	SignalSaleOpen SignalKind = "sale_open"
	// SignalReappeared fires when the tickets page transitions from
	// absent (or never seen) back to a successful fetch.
	SignalReappeared SignalKind = "reappeared"
	// SignalNewTicketLinks fires when the landing page changed and now
	// carries ticket-looking outbound links.
	SignalNewTicketLinks SignalKind = "new_ticket_links"
)

// Signal is one classifier verdict for one URL in one run.
type Signal struct {
	Kind SignalKind
	URL  string
	// Links holds the resolved candidate ticket links for
	// SignalNewTicketLinks, deduplicated, sorted and capped.
	Links []string
	// Strong marks a new-link signal where the marker phrase has also
	// disappeared from the landing page text.
	Strong bool
	// DiffSummary is a compact description of the text change, attached
	// for diagnostics only.
	DiffSummary string
}
