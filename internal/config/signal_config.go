package config

import "time"

// SignalConfig parameterizes the signal classifier and heartbeat gate.
// The keyword rules are data-driven predicates; nothing in the classifier
// hardcodes a phrase or keyword.
type SignalConfig struct {
	MarkerPhrase             string   `json:"marker_phrase,omitempty" yaml:"marker_phrase,omitempty"`
	PurchaseKeywords         []string `json:"purchase_keywords,omitempty" yaml:"purchase_keywords,omitempty"`
	MinKeywordHits           int      `json:"min_keyword_hits,omitempty" yaml:"min_keyword_hits,omitempty" validate:"omitempty,min=1"`
	TicketLinkKeywords       []string `json:"ticket_link_keywords,omitempty" yaml:"ticket_link_keywords,omitempty"`
	MaxReportedLinks         int      `json:"max_reported_links,omitempty" yaml:"max_reported_links,omitempty" validate:"omitempty,min=1"`
	HeartbeatIntervalSeconds int      `json:"heartbeat_interval_seconds,omitempty" yaml:"heartbeat_interval_seconds,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultSignalConfig creates default signal configuration
func NewDefaultSignalConfig() SignalConfig {
	return SignalConfig{
		MarkerPhrase: DefaultMarkerPhrase,
		PurchaseKeywords: []string{
			"billetterie",
			"ajouter au panier",
			"panier",
			"cart",
			"checkout",
			"paiement",
			"acheter",
			"achat",
			"buy",
			"ticket",
			"créneau",
			"time slot",
			"horaire",
			"sélectionnez",
			"choisissez",
			"select",
		},
		MinKeywordHits: DefaultMinKeywordHits,
		TicketLinkKeywords: []string{
			"ticket",
			"billet",
			"booking",
			"reservation",
			"checkout",
			"shop",
		},
		MaxReportedLinks:         DefaultMaxReportedLinks,
		HeartbeatIntervalSeconds: DefaultHeartbeatIntervalSeconds,
	}
}

// HeartbeatInterval returns the liveness ping interval.
func (sc SignalConfig) HeartbeatInterval() time.Duration {
	if sc.HeartbeatIntervalSeconds <= 0 {
		return time.Duration(DefaultHeartbeatIntervalSeconds) * time.Second
	}
	return time.Duration(sc.HeartbeatIntervalSeconds) * time.Second
}
