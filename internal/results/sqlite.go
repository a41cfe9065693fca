package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"singsync/internal/logging"
	"singsync/internal/lyrics"
)

// schemaVersion is bumped on any results table change. A mismatched database
// must be cleared rather than migrated in place.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database was created by a different
// version of the results schema.
var ErrSchemaMismatch = errors.New("results schema version mismatch")

const schemaSQL = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS lyric_results (
    media_id   TEXT PRIMARY KEY,
    payload    TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`

// SQLiteStore keeps all results in one database file. Useful when a deployment
// wants queryable history instead of per-media JSON files.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// OpenSQLite initializes or connects to the results database.
func OpenSQLite(path string, logger *slog.Logger) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure results dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open results db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &SQLiteStore{
		db:     db,
		path:   path,
		logger: logging.NewComponentLogger(logger, "results"),
	}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create results schema: %w", err)
	}
	var version int
	err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := s.db.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case version != schemaVersion:
		return fmt.Errorf("%w: database has %d, expected %d", ErrSchemaMismatch, version, schemaVersion)
	}
	return nil
}

// Get loads the persisted result for a media id.
func (s *SQLiteStore) Get(ctx context.Context, mediaID string) (lyrics.Result, bool) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM lyric_results WHERE media_id = ?", mediaID).Scan(&payload)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("result query failed",
				logging.String("media_id", mediaID),
				logging.Error(err))
		}
		return lyrics.Result{}, false
	}
	var result lyrics.Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		s.logger.Warn("discarding malformed result row",
			logging.String("media_id", mediaID),
			logging.Error(err))
		return lyrics.Result{}, false
	}
	return result, true
}

// Put upserts the result for a media id.
func (s *SQLiteStore) Put(ctx context.Context, result lyrics.Result) error {
	if result.MediaID == "" {
		return fmt.Errorf("store result: empty media id")
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("store result: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO lyric_results (media_id, payload, updated_at) VALUES (?, ?, ?)
         ON CONFLICT(media_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		result.MediaID,
		string(payload),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("store result: %w", err)
	}
	return nil
}
