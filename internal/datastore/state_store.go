package datastore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"ticketwatch/internal/common"
	"ticketwatch/internal/models"
)

// StateStore persists the process-wide run state as a single JSON
// document. Absence of the file is the meaningful "first run" state, not
// an error; any other read failure is fatal and must never be mistaken for
// a first run.
type StateStore struct {
	path   string
	logger zerolog.Logger
}

// NewStateStore creates a store for the given state file path.
func NewStateStore(path string, logger zerolog.Logger) *StateStore {
	return &StateStore{
		path:   path,
		logger: logger.With().Str("component", "StateStore").Logger(),
	}
}

// Load reads the persisted run state. The second return value reports a
// first run: no state file exists yet.
func (ss *StateStore) Load() (*models.RunState, bool, error) {
	data, err := os.ReadFile(ss.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			ss.logger.Info().Str("path", ss.path).Msg("No prior state file; this is a first run")
			return models.NewRunState(), true, nil
		}
		return nil, false, common.WrapErrorf(err, "failed to read state file '%s'", ss.path)
	}

	state := models.NewRunState()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, false, common.WrapErrorf(err, "failed to parse state file '%s'", ss.path)
	}
	if state.Pages == nil {
		state.Pages = make(map[string]*models.CachedPageState)
	}
	return state, false, nil
}

// Save writes the run state atomically relative to process crashes:
// marshal to a temporary file next to the target, then rename.
func (ss *StateStore) Save(state *models.RunState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return common.WrapError(err, "failed to marshal run state")
	}

	dir := filepath.Dir(ss.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return common.WrapErrorf(err, "failed to create state directory '%s'", dir)
		}
	}

	tmpPath := ss.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return common.WrapErrorf(err, "failed to write temporary state file '%s'", tmpPath)
	}
	if err := os.Rename(tmpPath, ss.path); err != nil {
		os.Remove(tmpPath)
		return common.WrapErrorf(err, "failed to replace state file '%s'", ss.path)
	}

	ss.logger.Debug().Str("path", ss.path).Int("pages", len(state.Pages)).Msg("Run state saved")
	return nil
}
