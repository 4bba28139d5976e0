package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cristianoliveira/velvetpour/internal/catalog"
	"github.com/cristianoliveira/velvetpour/internal/config"
	"github.com/cristianoliveira/velvetpour/internal/logging"
	"github.com/cristianoliveira/velvetpour/internal/storage/sqlite"
)

// catalogSource decides where the running command reads its catalog from.
// The configuration is read on every call since it is only loaded once the
// root command has parsed its flags.
type catalogSource struct {
	open func(path string) (catalogStore, error)
}

// catalogStore is the part of the SQLite store the commands use.
type catalogStore interface {
	SaveCatalog(ctx context.Context, c catalog.Catalog) error
	LoadCatalog(ctx context.Context) (catalog.Catalog, error)
	Summary(ctx context.Context) (sqlite.Summary, error)
	Close() error
}

var coreClient = &catalogSource{
	open: func(path string) (catalogStore, error) { return sqlite.Open(path) },
}

// CatalogPath returns the configured catalog file, or "" for none.
func (s *catalogSource) CatalogPath() string {
	return strings.TrimSpace(config.Get(config.KeyCatalogPath, ""))
}

// DBPath returns the configured catalog database path.
func (s *catalogSource) DBPath() string {
	return strings.TrimSpace(config.Get(config.KeyDBPath, ""))
}

// Catalog returns the catalog file when one is configured, else the stored
// catalog when the database exists, else the built-in catalog.
func (s *catalogSource) Catalog(ctx context.Context) (catalog.Catalog, error) {
	if path := s.CatalogPath(); path != "" {
		return catalog.Load(path)
	}

	dbPath := s.DBPath()
	if dbPath == "" {
		return catalog.Default(), nil
	}
	if _, err := os.Stat(dbPath); err != nil {
		return catalog.Default(), nil
	}
	var c catalog.Catalog
	err := s.withStore(func(st catalogStore) error {
		var err error
		c, err = st.LoadCatalog(ctx)
		return err
	})
	if errors.Is(err, sqlite.ErrCatalogNotFound) {
		logging.Debug("no stored catalog, using built-in", "db", dbPath)
		return catalog.Default(), nil
	}
	if err != nil {
		return catalog.Catalog{}, err
	}
	return c, nil
}

// Import validates the catalog file at path and stores it.
func (s *catalogSource) Import(ctx context.Context, path string) (catalog.Catalog, error) {
	c, err := catalog.Load(path)
	if err != nil {
		return catalog.Catalog{}, err
	}
	err = s.withStore(func(st catalogStore) error {
		return st.SaveCatalog(ctx, c)
	})
	if err != nil {
		return catalog.Catalog{}, err
	}
	return c, nil
}

// Export loads the stored catalog.
func (s *catalogSource) Export(ctx context.Context) (catalog.Catalog, error) {
	var c catalog.Catalog
	err := s.withStore(func(st catalogStore) error {
		var err error
		c, err = st.LoadCatalog(ctx)
		return err
	})
	return c, err
}

// Summary describes the stored catalog.
func (s *catalogSource) Summary(ctx context.Context) (sqlite.Summary, error) {
	var sum sqlite.Summary
	err := s.withStore(func(st catalogStore) error {
		var err error
		sum, err = st.Summary(ctx)
		return err
	})
	return sum, err
}

func (s *catalogSource) withStore(fn func(catalogStore) error) error {
	dbPath := s.DBPath()
	if dbPath == "" {
		return fmt.Errorf("sqlite catalog: %w", sqlite.ErrEmptyPath)
	}
	st, err := s.open(dbPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logging.Warn("close catalog store", "error", cerr)
		}
	}()
	return fn(st)
}
