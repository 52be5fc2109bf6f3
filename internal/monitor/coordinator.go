package monitor

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"ticketwatch/internal/config"
	"ticketwatch/internal/datastore"
	"ticketwatch/internal/differ"
	"ticketwatch/internal/models"
	"ticketwatch/internal/notifier"
)

// RunCoordinator orchestrates one poll cycle: load state, fetch every
// target in order, classify changes, gate the heartbeat, save state once,
// then dispatch the fired signals. Any fetch, storage or notification
// error aborts the run; the external scheduler owns retries.
type RunCoordinator struct {
	cfg        *config.GlobalConfig
	logger     zerolog.Logger
	fetcher    *Fetcher
	processor  *ContentProcessor
	classifier *SignalClassifier
	heartbeat  *HeartbeatGate
	differ     *differ.ContentDiffer
	notifier   notifier.Notifier
	stateStore *datastore.StateStore
	history    *datastore.HistoryStore
	now        func() time.Time
}

// NewRunCoordinator wires the per-run pipeline. history may be nil when
// the check-history database is disabled.
func NewRunCoordinator(
	cfg *config.GlobalConfig,
	logger zerolog.Logger,
	n notifier.Notifier,
	stateStore *datastore.StateStore,
	history *datastore.HistoryStore,
) *RunCoordinator {
	httpClient := &http.Client{Timeout: cfg.WatchConfig.HTTPTimeout()}
	return &RunCoordinator{
		cfg:        cfg,
		logger:     logger.With().Str("component", "RunCoordinator").Logger(),
		fetcher:    NewFetcher(httpClient, logger, &cfg.WatchConfig),
		processor:  NewContentProcessor(logger, &cfg.SignalConfig),
		classifier: NewSignalClassifier(logger, &cfg.SignalConfig),
		heartbeat:  NewHeartbeatGate(cfg.SignalConfig.HeartbeatInterval()),
		differ:     differ.NewContentDiffer(),
		notifier:   n,
		stateStore: stateStore,
		history:    history,
		now:        time.Now,
	}
}

// Run executes one poll cycle. State is persisted after the fetch loop and
// the heartbeat gate, before signal dispatch: a notification failure after
// that point exits non-zero but does not refire the signal on the next run,
// since the fingerprints have already stabilized.
func (rc *RunCoordinator) Run(ctx context.Context) error {
	state, firstRun, err := rc.stateStore.Load()
	if err != nil {
		return err
	}

	runID := fmt.Sprintf("watch-%s", rc.now().Format("20060102-150405"))
	rc.logger.Info().Str("run_id", runID).Bool("first_run", firstRun).Msg("Poll cycle starting")

	if firstRun {
		startup := notifier.FormatStartupMessage(rc.cfg.WatchConfig.Targets(), rc.cfg.SignalConfig.HeartbeatInterval(), rc.now())
		if err := rc.notifier.Send(ctx, startup); err != nil {
			return err
		}
		state.LastHeartbeatTS = rc.now().Unix()
	}

	var signals []models.Signal
	for _, url := range rc.cfg.WatchConfig.Targets() {
		fired, err := rc.processTarget(ctx, runID, url, state, firstRun)
		if err != nil {
			return err
		}
		signals = append(signals, fired...)
	}

	if rc.heartbeat.ShouldBeat(state.LastHeartbeatTS, rc.now()) {
		if err := rc.notifier.Send(ctx, notifier.FormatHeartbeatMessage(rc.now())); err != nil {
			return err
		}
		state.LastHeartbeatTS = rc.now().Unix()
	}

	if err := rc.stateStore.Save(state); err != nil {
		return err
	}

	for _, signal := range signals {
		if err := rc.notifier.Send(ctx, notifier.FormatSignalMessage(signal)); err != nil {
			return err
		}
	}

	rc.logger.Info().Str("run_id", runID).Int("signals", len(signals)).Msg("Poll cycle finished")
	return nil
}

// processTarget fetches one URL, applies the state update rule and runs
// the classifier rules that apply to this target.
func (rc *RunCoordinator) processTarget(ctx context.Context, runID, url string, state *models.RunState, firstRun bool) ([]models.Signal, error) {
	prior := state.Page(url)
	var priorValidators models.Validators
	if prior != nil {
		priorValidators = prior.Validators
	}

	outcome, err := rc.fetcher.Fetch(ctx, url, priorValidators)
	if err != nil {
		return nil, err
	}

	if outcome.Kind == models.OutcomeUnchanged {
		rc.logger.Debug().Str("url", url).Msg("Unchanged (304); stored state untouched")
		return nil, rc.recordUnchanged(runID, url, prior)
	}

	update := rc.processor.Process(outcome)
	changed := Changed(prior, update)

	var diffSummary string
	if changed && prior != nil {
		diffSummary = rc.differ.Summarize(prior.Excerpt, update.Excerpt)
	}

	var fired []models.Signal
	if changed && !firstRun {
		switch url {
		case rc.cfg.WatchConfig.TicketsURL:
			fired = rc.classifier.ClassifyTickets(prior, update, changed)
		case rc.cfg.WatchConfig.LandingURL:
			if s := rc.classifier.ClassifyLanding(update, changed); s != nil {
				fired = append(fired, *s)
			}
		}
		for i := range fired {
			fired[i].DiffSummary = diffSummary
		}
	}

	state.SetPage(url, ApplyUpdate(update))

	if changed {
		rc.logger.Info().Str("url", url).Str("status", string(update.Status)).Int("fired_signals", len(fired)).Msg("Page changed")
	}
	return fired, rc.recordCheck(runID, update, changed, fired)
}

func (rc *RunCoordinator) recordUnchanged(runID, url string, prior *models.CachedPageState) error {
	if rc.history == nil {
		return nil
	}
	rec := datastore.CheckRecord{
		RunID:      runID,
		CheckedAt:  rc.now(),
		URL:        url,
		FinalURL:   url,
		HTTPStatus: http.StatusNotModified,
	}
	if prior != nil {
		rec.Status = prior.LastStatus
		rec.ContentHash = prior.ContentFingerprint
		rec.LinksHash = prior.LinksFingerprint
	}
	return rc.history.RecordCheck(rec)
}

func (rc *RunCoordinator) recordCheck(runID string, update *models.PageUpdate, changed bool, fired []models.Signal) error {
	if rc.history == nil {
		return nil
	}
	kinds := make([]string, 0, len(fired))
	for _, s := range fired {
		kinds = append(kinds, string(s.Kind))
	}
	return rc.history.RecordCheck(datastore.CheckRecord{
		RunID:       runID,
		CheckedAt:   rc.now(),
		URL:         update.URL,
		FinalURL:    update.FinalURL,
		Status:      update.Status,
		HTTPStatus:  update.HTTPStatusCode,
		ContentHash: update.ContentFingerprint,
		LinksHash:   update.LinksFingerprint,
		Changed:     changed,
		Signals:     strings.Join(kinds, ","),
	})
}
