// Package storage persists the preferred panel width per panel type.
//
// The store is a small string-keyed/string-valued table in sqlite: one
// row per panel type, holding the relative width scalar. Everything
// else about panel geometry is re-derived from defaults at startup, so
// this is deliberately the only thing written to disk.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DB handles panel width persistence
type DB struct {
	db *sql.DB
}

// Open opens or creates the width database at the given path
func Open(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	wdb := &DB{db: db}
	if err := wdb.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return wdb, nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS panel_widths (
		panel_type TEXT PRIMARY KEY,
		relative_width TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`

	_, err := d.db.Exec(schema)
	return err
}

// Save upserts the relative width for a panel type. The value is
// stored as a string; the store is a plain key/value surface.
func (d *DB) Save(panelType string, relativeWidth float64) error {
	_, err := d.db.Exec(`
		INSERT INTO panel_widths (panel_type, relative_width, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(panel_type) DO UPDATE SET
			relative_width = excluded.relative_width,
			updated_at = excluded.updated_at
	`, panelType, strconv.FormatFloat(relativeWidth, 'f', -1, 64), time.Now())
	return err
}

// Load returns the persisted relative width for a panel type. The
// second return is false when no usable value exists: missing rows,
// non-numeric values, and out-of-range values are all treated as
// absent, never as errors.
func (d *DB) Load(panelType string) (float64, bool) {
	var raw string
	err := d.db.QueryRow(`
		SELECT relative_width FROM panel_widths WHERE panel_type = ?
	`, panelType).Scan(&raw)
	if err != nil {
		return 0, false
	}

	w, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	if w <= 0 || w > 1 {
		return 0, false
	}
	return w, true
}
