// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package clipboard

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultHistoryLimit is the number of entries kept when no limit is given.
const DefaultHistoryLimit = 100

const historySchema = `
CREATE TABLE IF NOT EXISTS entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp INTEGER NOT NULL,       -- UnixNano
    content TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_timestamp ON entries(timestamp);
`

// Entry is one recorded clipboard write.
type Entry struct {
	ID      int64
	Time    time.Time
	Content string
}

// History records clipboard writes in a SQLite database. When it wraps
// another Clipboard, writes go to both and reads prefer the wrapped one.
type History struct {
	db    *sql.DB
	next  Clipboard
	limit int
	now   func() time.Time
}

// OpenHistory opens or creates the history database at path. next may be
// nil, in which case the newest entry is the clipboard content.
func OpenHistory(path string, limit int, next Clipboard) (*History, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &History{db: db, next: next, limit: limit, now: time.Now}, nil
}

// ReadText implements Clipboard.
func (h *History) ReadText() (string, error) {
	if h.next != nil {
		text, err := h.next.ReadText()
		if err == nil {
			return text, nil
		}
		if !errors.Is(err, ErrEmpty) {
			return "", err
		}
	}
	entries, err := h.Entries(1)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", ErrEmpty
	}
	return entries[0].Content, nil
}

// WriteText implements Clipboard. The entry is recorded even when the
// wrapped clipboard fails, and that failure is returned.
func (h *History) WriteText(text string) error {
	var nextErr error
	if h.next != nil {
		nextErr = h.next.WriteText(text)
	}

	tx, err := h.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("INSERT INTO entries (timestamp, content) VALUES (?, ?)",
		h.now().UnixNano(), text); err != nil {
		return fmt.Errorf("failed to record entry: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM entries WHERE id NOT IN (
		SELECT id FROM entries ORDER BY id DESC LIMIT ?)`, h.limit); err != nil {
		return fmt.Errorf("failed to trim history: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit entry: %w", err)
	}
	return nextErr
}

// Entries returns up to limit entries, newest first. A limit of zero or less
// returns everything kept.
func (h *History) Entries(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = h.limit
	}
	rows, err := h.db.Query(
		"SELECT id, timestamp, content FROM entries ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e  Entry
			ts int64
		)
		if err := rows.Scan(&e.ID, &ts, &e.Content); err != nil {
			return nil, err
		}
		e.Time = time.Unix(0, ts)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the database.
func (h *History) Close() error {
	return h.db.Close()
}
