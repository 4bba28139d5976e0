package main

import (
	"context"
	"fmt"
	"time"

	"github.com/cristianoliveira/velvetpour/cmd"
	"github.com/cristianoliveira/velvetpour/internal/catalog"
	"github.com/cristianoliveira/velvetpour/internal/colors"
	"github.com/cristianoliveira/velvetpour/internal/storage/sqlite"
	"github.com/spf13/cobra"
)

type storeClient interface {
	Import(ctx context.Context, path string) (catalog.Catalog, error)
	Export(ctx context.Context) (catalog.Catalog, error)
	Summary(ctx context.Context) (sqlite.Summary, error)
	DBPath() string
}

const (
	catalogCommandLong = `Move catalogs in and out of the local catalog database.

USAGE:
    velvetpour catalog <subcommand>

SUBCOMMANDS:
    import PATH   Validate a catalog file and store it
    export        Print the stored catalog
    show          Describe the stored catalog

EXAMPLES:
    # Start from the built-in catalog
    velvetpour catalog export --builtin > bar.toml

    # Store an edited catalog, browse uses it from now on
    velvetpour catalog import bar.toml`
	exportCommandLong = `Print the stored catalog.

USAGE:
    velvetpour catalog export [OPTIONS]

OPTIONS:
    --format FORMAT   toml (default) or yaml
    --builtin         Print the built-in catalog instead
    -h, --help        Show this help`
)

// NewCatalogCmd creates the catalog command with explicit dependencies.
func NewCatalogCmd(client storeClient) *cobra.Command {
	if client == nil {
		panic("NewCatalogCmd: client dependency cannot be nil")
	}

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Import, export and show the stored catalog",
		Long:  catalogCommandLong,
	}

	catalogCmd.AddCommand(newImportCmd(client))
	catalogCmd.AddCommand(newExportCmd(client))
	catalogCmd.AddCommand(newShowCmd(client))

	return catalogCmd
}

func newImportCmd(client storeClient) *cobra.Command {
	return &cobra.Command{
		Use:   "import PATH",
		Short: "Validate a catalog file and store it",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cat, err := client.Import(commandContext(c), args[0])
			if err != nil {
				return err
			}
			colors.Success(fmt.Sprintf("Imported %q: %d cocktails into %s", cat.Brand, len(cat.Menu), client.DBPath()))
			return nil
		},
	}
}

func newExportCmd(client storeClient) *cobra.Command {
	var (
		format  string
		builtin bool
	)
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Print the stored catalog",
		Long:  exportCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			f, err := catalog.ParseFormat(format)
			if err != nil {
				return err
			}
			cat := catalog.Default()
			if !builtin {
				if cat, err = client.Export(commandContext(c)); err != nil {
					return err
				}
			}
			return catalog.Encode(c.OutOrStdout(), cat, f)
		},
	}
	exportCmd.Flags().StringVar(&format, "format", "toml", "output format: toml or yaml")
	exportCmd.Flags().BoolVar(&builtin, "builtin", false, "print the built-in catalog")
	return exportCmd
}

func newShowCmd(client storeClient) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Describe the stored catalog",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			sum, err := client.Summary(commandContext(c))
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			fmt.Fprintf(out, "Database:  %s\n", client.DBPath())
			fmt.Fprintf(out, "Brand:     %s\n", sum.Brand)
			fmt.Fprintf(out, "Cocktails: %d\n", sum.Cocktails)
			fmt.Fprintf(out, "Updated:   %s\n", sum.UpdatedAt.Local().Format(time.RFC3339))
			return nil
		},
	}
}

var catalogCmd = NewCatalogCmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(catalogCmd)
}
