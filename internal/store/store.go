// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/tuistat/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for editing session history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			include_spaces INTEGER NOT NULL,
			char_limit INTEGER NOT NULL,
			raw_length INTEGER NOT NULL,
			char_count INTEGER NOT NULL,
			word_count INTEGER NOT NULL,
			sentence_count INTEGER NOT NULL,
			limit_exceeded INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS session_letter_stats (
			session_id INTEGER NOT NULL,
			letter TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (session_id, letter)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_ended_at ON sessions(ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertSession stores a finished session and its letter counts.
func (s *Store) InsertSession(ctx context.Context, stats model.SessionStats, letters []model.LetterCount) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO sessions (started_at, ended_at, include_spaces, char_limit, raw_length, char_count, word_count, sentence_count, limit_exceeded)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		stats.StartedAt.UTC().Format(time.RFC3339Nano),
		stats.EndedAt.UTC().Format(time.RFC3339Nano),
		boolToInt(stats.IncludeSpaces),
		stats.CharLimit,
		stats.RawLength,
		stats.CharacterCount,
		stats.WordCount,
		stats.SentenceCount,
		boolToInt(stats.LimitExceeded),
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(letters) > 0 {
		stmt, perr := tx.PrepareContext(ctx,
			`INSERT INTO session_letter_stats (session_id, letter, count) VALUES (?, ?, ?)`)
		if perr != nil {
			err = perr
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for _, lc := range letters {
			if _, err = stmt.ExecContext(ctx, id, lc.Letter, lc.Count); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListSessions returns session aggregates filtered by history config.
func (s *Store) ListSessions(ctx context.Context, cfg model.HistoryConfig) ([]model.SessionAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cfg.Since.UTC().Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, ended_at, char_limit, raw_length, char_count, word_count, sentence_count, limit_exceeded
		FROM sessions
		WHERE %s
		ORDER BY ended_at ASC, id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var sessions []model.SessionAggregate
	for rows.Next() {
		var agg model.SessionAggregate
		var endedAt string
		var exceeded int
		if err := rows.Scan(&agg.SessionID, &endedAt, &agg.CharLimit, &agg.RawLength, &agg.CharacterCount, &agg.WordCount, &agg.SentenceCount, &exceeded); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		agg.EndedAt = parsed
		agg.LimitExceeded = exceeded != 0
		sessions = append(sessions, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListLetterAggregates sums letter counts across the given sessions.
func (s *Store) ListLetterAggregates(ctx context.Context, sessionIDs []int64) ([]model.LetterAggregate, error) {
	if len(sessionIDs) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(sessionIDs))
	args := make([]any, len(sessionIDs))
	for i, id := range sessionIDs {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT letter, SUM(count) AS count
		FROM session_letter_stats
		WHERE session_id IN (%s)
		GROUP BY letter
		ORDER BY letter`, strings.Join(placeholders, ","))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.LetterAggregate
	for rows.Next() {
		var agg model.LetterAggregate
		if err := rows.Scan(&agg.Letter, &agg.Count); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
