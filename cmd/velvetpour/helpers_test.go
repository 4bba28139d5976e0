package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/cristianoliveira/velvetpour/internal/catalog"
	"github.com/cristianoliveira/velvetpour/internal/colors"
	"github.com/spf13/cobra"
)

type fakeCatalogClient struct {
	catalog catalog.Catalog
	path    string
	err     error
}

func (f *fakeCatalogClient) Catalog(ctx context.Context) (catalog.Catalog, error) {
	if f.err != nil {
		return catalog.Catalog{}, f.err
	}
	return f.catalog, nil
}

func (f *fakeCatalogClient) CatalogPath() string {
	return f.path
}

func newFakeCatalogClient() *fakeCatalogClient {
	return &fakeCatalogClient{catalog: catalog.Default()}
}

// execute runs c with args and returns what it printed.
func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

// captureConsole redirects internal/colors output for the duration of the test.
func captureConsole(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	colors.SetOutput(&buf, &buf)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })
	return &buf
}
