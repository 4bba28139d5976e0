// Package sqlite provides a SQLite-backed catalog store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cristianoliveira/velvetpour/internal/catalog"
	_ "modernc.org/sqlite"
)

// Store persists one catalog: the site content as a JSON document and the
// carousel items as ordered rows.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Summary describes the stored catalog without loading it.
type Summary struct {
	Brand     string
	Cocktails int
	UpdatedAt time.Time
}

// Open creates or opens the store at dbPath and applies migrations.
func Open(dbPath string) (*Store, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite catalog: %w", ErrEmptyPath)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite catalog: create db directory: %w", err)
	}
	if err := migrateUp(dbPath); err != nil {
		return nil, fmt.Errorf("sqlite catalog: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite catalog: open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite catalog: set busy timeout: %w", err)
	}
	return &Store{db: db, path: dbPath, now: time.Now}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveCatalog replaces the stored catalog in a single transaction.
func (s *Store) SaveCatalog(ctx context.Context, c catalog.Catalog) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("sqlite catalog: %w", err)
	}
	content := c
	content.Menu = nil
	doc, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("sqlite catalog: encode content: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite catalog: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM menu_items`); err != nil {
		return fmt.Errorf("sqlite catalog: clear menu: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO catalog (id, brand, content, updated_at) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET brand = excluded.brand, content = excluded.content, updated_at = excluded.updated_at`,
		c.Brand, string(doc), s.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("sqlite catalog: save content: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO menu_items (position, id, name, image, title, description) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("sqlite catalog: prepare menu insert: %w", err)
	}
	defer stmt.Close()
	for i, item := range c.Menu {
		if _, err := stmt.ExecContext(ctx, i, item.ID, item.Name, item.Image, item.Title, item.Description); err != nil {
			return fmt.Errorf("sqlite catalog: save menu item %q: %w", item.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite catalog: commit: %w", err)
	}
	return nil
}

// LoadCatalog returns the stored catalog with its menu in saved order.
func (s *Store) LoadCatalog(ctx context.Context) (catalog.Catalog, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT content FROM catalog WHERE id = 1`).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Catalog{}, fmt.Errorf("sqlite catalog: %w", ErrCatalogNotFound)
	}
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("sqlite catalog: load content: %w", err)
	}

	var c catalog.Catalog
	if err := json.Unmarshal([]byte(doc), &c); err != nil {
		return catalog.Catalog{}, fmt.Errorf("sqlite catalog: decode content: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, image, title, description FROM menu_items ORDER BY position`)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("sqlite catalog: load menu: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item catalog.Cocktail
		if err := rows.Scan(&item.ID, &item.Name, &item.Image, &item.Title, &item.Description); err != nil {
			return catalog.Catalog{}, fmt.Errorf("sqlite catalog: scan menu item: %w", err)
		}
		c.Menu = append(c.Menu, item)
	}
	if err := rows.Err(); err != nil {
		return catalog.Catalog{}, fmt.Errorf("sqlite catalog: load menu: %w", err)
	}
	return c, nil
}

// Summary reports the brand, item count and last update of the stored catalog.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	var (
		sum     Summary
		updated string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT brand, updated_at, (SELECT COUNT(*) FROM menu_items) FROM catalog WHERE id = 1`).
		Scan(&sum.Brand, &updated, &sum.Cocktails)
	if errors.Is(err, sql.ErrNoRows) {
		return Summary{}, fmt.Errorf("sqlite catalog: %w", ErrCatalogNotFound)
	}
	if err != nil {
		return Summary{}, fmt.Errorf("sqlite catalog: summary: %w", err)
	}
	sum.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated)
	if err != nil {
		return Summary{}, fmt.Errorf("sqlite catalog: parse updated_at: %w", err)
	}
	return sum, nil
}
