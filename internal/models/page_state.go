package models

// PageStatus is the coarse status class recorded for a watched page.
// A 304 never overwrites the stored status; 404/410 collapse into
// StatusAbsent and any 2xx into StatusFetched.
type PageStatus string

const (
	// StatusNeverSeen means no prior observation exists for the URL.
	StatusNeverSeen PageStatus = ""
	// StatusFetched means the last non-304 fetch returned a 2xx.
	StatusFetched PageStatus = "fetched"
	// StatusAbsent means the last non-304 fetch returned 404 or 410.
	StatusAbsent PageStatus = "absent"
)

// Validators holds the HTTP cache-validation tokens carried between runs
// and replayed as If-None-Match / If-Modified-Since on the next poll.
type Validators struct {
	ETag         string `json:"etag,omitempty"`
	LastModified string `json:"last_modified,omitempty"`
}

// IsZero reports whether no validator is present.
func (v Validators) IsZero() bool {
	return v.ETag == "" && v.LastModified == ""
}

// CachedPageState is the persisted per-URL record. It is only overwritten
// when a fetch returns non-"unchanged" information; a 304 leaves it as-is.
type CachedPageState struct {
	Validators         Validators `json:"headers"`
	LastStatus         PageStatus `json:"last_status"`
	HTTPStatusCode     int        `json:"http_status_code,omitempty"`
	ContentFingerprint string     `json:"content_fingerprint,omitempty"`
	LinksFingerprint   string     `json:"links_fingerprint,omitempty"`
	// Excerpt is a short diagnostic window of normalized text around the
	// marker phrase. Never used for change or signal logic.
	Excerpt string `json:"excerpt,omitempty"`
}

// RunState is the process-wide persisted aggregate: loaded once at start,
// mutated in memory during the run, saved exactly once before exit.
type RunState struct {
	Pages           map[string]*CachedPageState `json:"pages"`
	LastHeartbeatTS int64                       `json:"last_heartbeat_ts"`
}

// NewRunState creates an empty run state.
func NewRunState() *RunState {
	return &RunState{
		Pages: make(map[string]*CachedPageState),
	}
}

// Page returns the stored state for url, or nil when the URL was never
// observed before.
func (rs *RunState) Page(url string) *CachedPageState {
	if rs.Pages == nil {
		return nil
	}
	return rs.Pages[url]
}

// SetPage replaces the stored state for url.
func (rs *RunState) SetPage(url string, state *CachedPageState) {
	if rs.Pages == nil {
		rs.Pages = make(map[string]*CachedPageState)
	}
	rs.Pages[url] = state
}
