package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cristianoliveira/velvetpour/internal/catalog"
	"github.com/cristianoliveira/velvetpour/internal/config"
	"github.com/cristianoliveira/velvetpour/internal/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStoreClient struct {
	stored   *catalog.Catalog
	imported string
	updated  time.Time
}

func (f *fakeStoreClient) Import(ctx context.Context, path string) (catalog.Catalog, error) {
	c, err := catalog.Load(path)
	if err != nil {
		return catalog.Catalog{}, err
	}
	f.imported = path
	f.stored = &c
	return c, nil
}

func (f *fakeStoreClient) Export(ctx context.Context) (catalog.Catalog, error) {
	if f.stored == nil {
		return catalog.Catalog{}, sqlite.ErrCatalogNotFound
	}
	return *f.stored, nil
}

func (f *fakeStoreClient) Summary(ctx context.Context) (sqlite.Summary, error) {
	if f.stored == nil {
		return sqlite.Summary{}, sqlite.ErrCatalogNotFound
	}
	return sqlite.Summary{Brand: f.stored.Brand, Cocktails: len(f.stored.Menu), UpdatedAt: f.updated}, nil
}

func (f *fakeStoreClient) DBPath() string { return "/tmp/catalog.db" }

func writeCatalogFile(t *testing.T, name string, c catalog.Catalog) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, catalog.Encode(f, c, catalog.FormatForPath(path)))
	return path
}

func TestCatalogImport(t *testing.T) {
	console := captureConsole(t)
	store := &fakeStoreClient{}
	path := writeCatalogFile(t, "bar.toml", catalog.Default())

	_, err := execute(t, NewCatalogCmd(store), "import", path)

	require.NoError(t, err)
	assert.Equal(t, path, store.imported)
	assert.Contains(t, console.String(), `Imported "Velvet Pour"`)
	assert.Contains(t, console.String(), "4 cocktails")
}

func TestCatalogImportRejectsInvalidFile(t *testing.T) {
	store := &fakeStoreClient{}
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("brand = \"Empty\"\n"), 0o644))

	_, err := execute(t, NewCatalogCmd(store), "import", path)

	assert.ErrorIs(t, err, catalog.ErrNoCocktails)
	assert.Nil(t, store.stored)
}

func TestCatalogExport(t *testing.T) {
	stored := catalog.Default()
	stored.Brand = "Stored Bar"
	store := &fakeStoreClient{stored: &stored}

	out, err := execute(t, NewCatalogCmd(store), "export", "--format", "yaml")
	require.NoError(t, err)
	got, err := catalog.Decode([]byte(out), catalog.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "Stored Bar", got.Brand)

	out, err = execute(t, NewCatalogCmd(store), "export", "--builtin")
	require.NoError(t, err)
	got, err = catalog.Decode([]byte(out), catalog.FormatTOML)
	require.NoError(t, err)
	assert.Equal(t, "Velvet Pour", got.Brand)
}

func TestCatalogExportErrors(t *testing.T) {
	_, err := execute(t, NewCatalogCmd(&fakeStoreClient{}), "export")
	assert.ErrorIs(t, err, sqlite.ErrCatalogNotFound)

	_, err = execute(t, NewCatalogCmd(&fakeStoreClient{}), "export", "--builtin", "--format", "xml")
	assert.ErrorContains(t, err, "unsupported catalog format")
}

func TestCatalogShow(t *testing.T) {
	stored := catalog.Default()
	store := &fakeStoreClient{stored: &stored, updated: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}

	out, err := execute(t, NewCatalogCmd(store), "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Database:  /tmp/catalog.db")
	assert.Contains(t, out, "Brand:     Velvet Pour")
	assert.Contains(t, out, "Cocktails: 4")
	assert.Contains(t, out, "Updated:   2026-03-01")
}

// loadTestConfig points the global configuration at a temporary home.
func loadTestConfig(t *testing.T, env map[string]string) {
	t.Helper()
	// Registered first so it reloads after the environment is restored.
	t.Cleanup(func() { config.Load() })
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv(config.EnvConfigPath, "")
	for k, v := range env {
		t.Setenv(k, v)
	}
	config.Load()
}

func TestCatalogSourceFallsBackToBuiltin(t *testing.T) {
	loadTestConfig(t, nil)

	c, err := coreClient.Catalog(context.Background())

	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Names(), c.Names())
	assert.True(t, strings.HasSuffix(coreClient.DBPath(), filepath.Join("velvetpour", "catalog.db")))
}

func TestCatalogSourcePrefersCatalogFile(t *testing.T) {
	custom := catalog.Default()
	custom.Brand = "File Bar"
	path := writeCatalogFile(t, "bar.yaml", custom)
	loadTestConfig(t, map[string]string{"VELVETPOUR_CATALOG_PATH": path})

	c, err := coreClient.Catalog(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "File Bar", c.Brand)
	assert.Equal(t, path, coreClient.CatalogPath())
}

func TestCatalogSourceRoundTripsThroughStore(t *testing.T) {
	custom := catalog.Default()
	custom.Brand = "Stored Bar"
	custom.Menu = custom.Menu[:2]
	path := writeCatalogFile(t, "bar.toml", custom)
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	loadTestConfig(t, map[string]string{"VELVETPOUR_DB_PATH": dbPath})
	ctx := context.Background()

	_, err := coreClient.Summary(ctx)
	assert.ErrorIs(t, err, sqlite.ErrCatalogNotFound)

	_, err = coreClient.Import(ctx, path)
	require.NoError(t, err)

	c, err := coreClient.Catalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Stored Bar", c.Brand)
	assert.Equal(t, custom.Names(), c.Names())

	sum, err := coreClient.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Cocktails)
}
