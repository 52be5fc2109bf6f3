package datastore

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"ticketwatch/internal/common"
	"ticketwatch/internal/models"
)

// HistoryStore appends one row per processed URL per run to a sqlite
// database, for offline inspection of the watcher's behavior. It is
// optional; the watcher runs without it when no path is configured.
type HistoryStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// CheckRecord is one check-history row.
type CheckRecord struct {
	RunID       string
	CheckedAt   time.Time
	URL         string
	FinalURL    string
	Status      models.PageStatus
	HTTPStatus  int
	ContentHash string
	LinksHash   string
	Changed     bool
	Signals     string
}

// NewHistoryStore opens (and if necessary creates) the history database.
func NewHistoryStore(dataSourceName string, logger zerolog.Logger) (*HistoryStore, error) {
	dbDir := filepath.Dir(dataSourceName)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, common.WrapErrorf(err, "failed to create history database directory %s", dbDir)
	}

	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, common.WrapErrorf(err, "sql.Open failed for %s", dataSourceName)
	}

	store := &HistoryStore{
		db:     db,
		logger: logger.With().Str("component", "HistoryStore").Logger(),
	}
	if err := store.initSchema(); err != nil {
		store.Close()
		return nil, common.WrapError(err, "failed to initialize history schema")
	}
	return store, nil
}

// Close closes the database connection.
func (hs *HistoryStore) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}

func (hs *HistoryStore) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS check_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		checked_at DATETIME NOT NULL,
		url TEXT NOT NULL,
		final_url TEXT,
		status TEXT NOT NULL,
		http_status INTEGER,
		content_hash TEXT,
		links_hash TEXT,
		changed INTEGER NOT NULL DEFAULT 0,
		signals TEXT
	);
	`
	_, err := hs.db.Exec(query)
	return err
}

// RecordCheck inserts one check-history row.
func (hs *HistoryStore) RecordCheck(rec CheckRecord) error {
	query := `INSERT INTO check_history
		(run_id, checked_at, url, final_url, status, http_status, content_hash, links_hash, changed, signals)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := hs.db.Exec(query,
		rec.RunID, rec.CheckedAt, rec.URL, rec.FinalURL, string(rec.Status),
		rec.HTTPStatus, rec.ContentHash, rec.LinksHash, rec.Changed, rec.Signals)
	if err != nil {
		return common.WrapErrorf(err, "failed to record check for %s", rec.URL)
	}
	return nil
}

// RecentChecks returns up to limit rows for a URL, newest first.
func (hs *HistoryStore) RecentChecks(url string, limit int) ([]CheckRecord, error) {
	query := `SELECT run_id, checked_at, url, final_url, status, http_status, content_hash, links_hash, changed, signals
		FROM check_history WHERE url = ? ORDER BY id DESC LIMIT ?`
	rows, err := hs.db.Query(query, url, limit)
	if err != nil {
		return nil, common.WrapErrorf(err, "failed to query check history for %s", url)
	}
	defer rows.Close()

	var records []CheckRecord
	for rows.Next() {
		var rec CheckRecord
		var status string
		if err := rows.Scan(&rec.RunID, &rec.CheckedAt, &rec.URL, &rec.FinalURL, &status,
			&rec.HTTPStatus, &rec.ContentHash, &rec.LinksHash, &rec.Changed, &rec.Signals); err != nil {
			return nil, common.WrapError(err, "failed to scan check history row")
		}
		rec.Status = models.PageStatus(status)
		records = append(records, rec)
	}
	return records, rows.Err()
}
