// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

type HistoryEntry struct {
	ID        int64
	Args      string
	Result    string
	System    string
	CreatedAt time.Time
}

// History records evaluations in a SQLite database.
type History struct {
	db *sql.DB
}

// openHistory opens or creates the history database at path
func openHistory(path string) (*History, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrap(err, "failed to create history directory")
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	schema := `
	CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		args TEXT NOT NULL,
		result TEXT NOT NULL,
		system TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_created_at ON history(created_at);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to create schema")
	}

	return &History{db: db}, nil
}

func (h *History) Close() error {
	return h.db.Close()
}

// save records the arguments of one evaluation and the stack it produced
func (h *History) save(ctx context.Context, args []string, result string, system string) (int64, error) {
	query := `
	INSERT INTO history (args, result, system) VALUES (?, ?, ?)
	`

	res, err := h.db.ExecContext(ctx, query, strings.Join(args, " "), result, system)
	if err != nil {
		return 0, errors.Wrap(err, "failed to save history")
	}
	return res.LastInsertId()
}

// recent returns up to limit entries, newest first
func (h *History) recent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	query := `
	SELECT id, args, result, system, created_at
	FROM history
	ORDER BY id DESC
	LIMIT ?
	`

	rows, err := h.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read history")
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var entry HistoryEntry
		if err := rows.Scan(&entry.ID, &entry.Args, &entry.Result, &entry.System, &entry.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "failed to read history")
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
