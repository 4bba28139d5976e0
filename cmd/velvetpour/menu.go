package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cristianoliveira/velvetpour/cmd"
	"github.com/cristianoliveira/velvetpour/internal/catalog"
	"github.com/cristianoliveira/velvetpour/internal/formatter"
	"github.com/spf13/cobra"
)

type catalogClient interface {
	Catalog(ctx context.Context) (catalog.Catalog, error)
}

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#C9A227"))

const menuCommandLong = `Print the drink listings: the most popular cocktails and the most
loved mocktails.

USAGE:
    velvetpour menu [OPTIONS]

OPTIONS:
    --json            Print the listings as JSON
    --format FORMAT   One line per listing: a preset (compact, detailed, csv,
                      names) or a template such as "${name} ${price}"
    -h, --help        Show this help

VARIABLES:
    ${name} ${price} ${country} ${detail} ${kind} ${index} ${number}`

type menuListing struct {
	Cocktails []catalog.Listing `json:"cocktails"`
	Mocktails []catalog.Listing `json:"mocktails"`
}

// NewMenuCmd creates the menu command with explicit dependencies.
func NewMenuCmd(client catalogClient) *cobra.Command {
	if client == nil {
		panic("NewMenuCmd: client dependency cannot be nil")
	}

	var (
		asJSON bool
		format string
	)

	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the drink listings",
		Long:  menuCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cat, err := client.Catalog(commandContext(c))
			if err != nil {
				return err
			}
			if asJSON && format != "" {
				return errors.New("--json and --format cannot be used together")
			}
			if format != "" {
				return printFormatted(c.OutOrStdout(), cat, format)
			}
			if asJSON {
				enc := json.NewEncoder(c.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(menuListing{Cocktails: cat.Cocktails, Mocktails: cat.Mocktails})
			}
			printListings(c.OutOrStdout(), "Most popular cocktails", cat.Cocktails)
			fmt.Fprintln(c.OutOrStdout())
			printListings(c.OutOrStdout(), "Most loved mocktails", cat.Mocktails)
			return nil
		},
	}
	menuCmd.Flags().BoolVar(&asJSON, "json", false, "print the listings as JSON")
	menuCmd.Flags().StringVar(&format, "format", "", "preset name or ${variable} template")

	return menuCmd
}

func printFormatted(w io.Writer, cat catalog.Catalog, format string) error {
	template, err := formatter.Resolve(formatter.NewPresetRegistry(), format)
	if err != nil {
		return err
	}
	lines, err := formatter.Render(formatter.NewTemplateEngine(), template, cat)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return nil
}

func printListings(w io.Writer, heading string, listings []catalog.Listing) {
	fmt.Fprintln(w, headingStyle.Render(heading))
	if len(listings) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	nameWidth := 0
	for _, l := range listings {
		nameWidth = max(nameWidth, lipgloss.Width(l.Name))
	}
	for _, l := range listings {
		line := fmt.Sprintf("  %-*s  %s", nameWidth, l.Name, l.Price)
		if l.Country != "" {
			line += "  " + l.Country
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
		if l.Detail != "" {
			fmt.Fprintf(w, "  %s\n", l.Detail)
		}
	}
}

// commandContext returns the command context, or Background outside Execute.
func commandContext(c *cobra.Command) context.Context {
	if ctx := c.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

var menuCmd = NewMenuCmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(menuCmd)
}
