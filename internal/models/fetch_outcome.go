package models

// OutcomeKind tags the result of one conditional fetch. Transport
// failures, timeouts and unexpected status codes are reported as errors by
// the fetcher, not as an outcome kind, so a FetchOutcome always describes
// a legitimate page state.
type OutcomeKind string

const (
	// OutcomeUnchanged is a 304; the caller must not touch the stored
	// state for this URL this run.
	OutcomeUnchanged OutcomeKind = "unchanged"
	// OutcomeAbsent is a 404/410: a disappeared page, a first-class state
	// feeding the reappearance rule, not a fetch failure.
	OutcomeAbsent OutcomeKind = "absent"
	// OutcomeFetched is a 2xx with a body.
	OutcomeFetched OutcomeKind = "fetched"
)

// FetchOutcome is the ephemeral result of fetching one watched URL.
type FetchOutcome struct {
	Kind           OutcomeKind
	URL            string
	FinalURL       string // post-redirect URL, equal to URL when no redirect occurred
	HTTPStatusCode int
	Validators     Validators
	RawBody        string
}

// PageUpdate is the processed form of a Fetched or Absent outcome: the
// normalized text, extracted links and fingerprints used to update the
// stored page state.
type PageUpdate struct {
	URL                string
	FinalURL           string
	Status             PageStatus
	HTTPStatusCode     int
	Validators         Validators
	NormalizedText     string
	Links              []string
	ContentFingerprint string
	LinksFingerprint   string
	Excerpt            string
}
