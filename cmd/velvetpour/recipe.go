package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/velvetpour/cmd"
	"github.com/cristianoliveira/velvetpour/internal/catalog"
	"github.com/cristianoliveira/velvetpour/internal/config"
	"github.com/cristianoliveira/velvetpour/internal/search"
	"github.com/cristianoliveira/velvetpour/internal/tui/render"
	"github.com/spf13/cobra"
)

const recipeCommandLong = `Print one recipe from the menu.

NAME is matched loosely against the cocktail names. INDEX counts from 0 and
wraps around the menu, so -1 is the last cocktail.

USAGE:
    velvetpour recipe NAME|INDEX [OPTIONS]

OPTIONS:
    --offset N      Walk N cocktails forward (negative walks back) from the match
    --style STYLE   Markdown style for the description (default: detect)
    -h, --help      Show this help

EXAMPLES:
    velvetpour recipe violet
    velvetpour recipe -- -1
    velvetpour recipe mojito --offset 1`

// NewRecipeCmd creates the recipe command with explicit dependencies.
func NewRecipeCmd(client catalogClient) *cobra.Command {
	if client == nil {
		panic("NewRecipeCmd: client dependency cannot be nil")
	}

	var (
		offset int
		style  string
	)

	recipeCmd := &cobra.Command{
		Use:   "recipe NAME|INDEX",
		Short: "Print one recipe",
		Long:  recipeCommandLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			cat, err := client.Catalog(commandContext(c))
			if err != nil {
				return err
			}
			item, err := findRecipe(cat, strings.Join(args, " "), offset)
			if err != nil {
				return err
			}
			width := config.GetInt(config.KeyWrapWidth, 72)
			printRecipe(c.OutOrStdout(), item, render.NewMarkdown(style), width)
			return nil
		},
	}
	recipeCmd.Flags().IntVar(&offset, "offset", 0, "walk N cocktails from the match")
	recipeCmd.Flags().StringVar(&style, "style", "", "markdown style for the description")

	return recipeCmd
}

// findRecipe resolves query on the menu carousel and walks offset items from it.
func findRecipe(cat catalog.Catalog, query string, offset int) (catalog.Cocktail, error) {
	ctrl, err := cat.Carousel()
	if err != nil {
		return catalog.Cocktail{}, err
	}
	defer ctrl.Close()

	idx, err := search.NewMatcher().Resolve(query, cat.Names())
	if err != nil {
		return catalog.Cocktail{}, fmt.Errorf("recipe %q: %w", query, err)
	}
	ctrl.GoToIndex(idx)
	ctrl.Advance(offset)
	return ctrl.Current(), nil
}

func printRecipe(w io.Writer, item catalog.Cocktail, md *render.Markdown, width int) {
	fmt.Fprintln(w, headingStyle.Render(item.Name))
	if item.Title != "" {
		fmt.Fprintln(w, item.Title)
	}
	if item.Image != "" {
		fmt.Fprintf(w, "[%s]\n", item.Image)
	}
	if item.Description != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, strings.TrimRight(md.Render(item.Description, width), "\n"))
	}
}

var recipeCmd = NewRecipeCmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(recipeCmd)
}
