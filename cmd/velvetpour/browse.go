package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/velvetpour/cmd"
	"github.com/cristianoliveira/velvetpour/internal/catalog"
	"github.com/cristianoliveira/velvetpour/internal/config"
	"github.com/cristianoliveira/velvetpour/internal/logging"
	"github.com/cristianoliveira/velvetpour/internal/scope"
	"github.com/cristianoliveira/velvetpour/internal/tui/state"
	"github.com/cristianoliveira/velvetpour/internal/watch"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type browseClient interface {
	Catalog(ctx context.Context) (catalog.Catalog, error)
	CatalogPath() string
}

// programRunner runs the model until the user quits. watchPath is empty when
// no catalog file should be watched.
type programRunner func(ctx context.Context, model *state.Model, watchPath string) error

const browseCommandLong = `Browse the bar: hero, drink listings, about, art, the recipe carousel
and contact details on one scrolling page.

USAGE:
    velvetpour browse [OPTIONS]

OPTIONS:
    --section NAME    Section to open at (hero, cocktails, about, art, menu, contact)
    --cocktail NAME   Cocktail to show in the recipe carousel, by name or index
    --watch           Reload the catalog file when it changes
    -h, --help        Show this help

KEYS:
    j/k, pgup/pgdown  Scroll          tab/shift+tab  Next/previous section
    h/l, [/]          Previous/next cocktail        1-9  Jump to a cocktail
    /                 Search a cocktail              :    Command
    ?                 Help                           q    Quit`

// NewBrowseCmd creates the browse command with explicit dependencies.
func NewBrowseCmd(client browseClient, run programRunner) *cobra.Command {
	if client == nil {
		panic("NewBrowseCmd: client dependency cannot be nil")
	}
	if run == nil {
		panic("NewBrowseCmd: run dependency cannot be nil")
	}

	var (
		section  string
		cocktail string
		watchOn  bool
	)

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the bar in the terminal",
		Long:  browseCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := commandContext(c)

			cat, err := client.Catalog(ctx)
			if err != nil {
				return err
			}

			start := section
			if start == "" {
				start = config.Get(config.KeyStartSection, state.SectionHero)
			}
			model, err := state.NewModel(state.Options{
				Catalog:          cat,
				StartSection:     start,
				StartCocktail:    cocktail,
				RevealFrames:     config.GetInt(config.KeyRevealFrames, 0),
				RevealInterval:   config.GetDuration(config.KeyRevealInterval, 0),
				TextReadyTimeout: config.GetDuration(config.KeyTextReadyTimeout, 0),
				WrapWidth:        config.GetInt(config.KeyWrapWidth, 0),
			})
			if err != nil {
				return err
			}

			watchPath := ""
			if watchOn || config.GetBool(config.KeyWatch, false) {
				watchPath = client.CatalogPath()
				if watchPath == "" {
					model.Close()
					return errors.New("--watch needs a catalog file, set --catalog or catalog_path")
				}
			}
			return run(ctx, model, watchPath)
		},
	}

	// section and watch are also bound to configuration keys by the root command.
	browseCmd.Flags().StringVar(&section, "section", "", "section to open at")
	browseCmd.Flags().StringVar(&cocktail, "cocktail", "", "cocktail to show, by name or index")
	browseCmd.Flags().BoolVar(&watchOn, "watch", false, "reload the catalog file when it changes")

	return browseCmd
}

// runProgram runs the TUI next to the optional catalog watcher. Everything the
// view started is released through one scope when the program ends.
func runProgram(ctx context.Context, model *state.Model, watchPath string) (err error) {
	sc := scope.New()
	defer func() {
		err = errors.Join(err, sc.Close())
	}()
	sc.AddFunc(model.Close)

	ctx, cancel := context.WithCancel(ctx)
	sc.AddFunc(cancel)

	g, gctx := errgroup.WithContext(ctx)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(gctx),
	)

	if watchPath != "" {
		w, werr := watch.New(watchPath, watch.Options{
			OnReload: func(c catalog.Catalog) {
				program.Send(state.CatalogReloadedMsg{Catalog: c})
			},
			OnError: func(err error) {
				program.Send(state.CatalogErrorMsg{Err: err})
			},
		})
		if werr != nil {
			return werr
		}
		sc.AddFunc(w.Stop)
		g.Go(func() error {
			if err := w.Run(gctx); err != nil && !errors.Is(err, watch.ErrStopped) {
				return err
			}
			return nil
		})
	}

	g.Go(func() error {
		defer cancel()
		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("run browser: %w", err)
		}
		return nil
	})

	logging.Info("browser started", "watch", watchPath)
	return g.Wait()
}

var browseCmd = NewBrowseCmd(coreClient, runProgram)

func init() {
	cmd.RootCmd.AddCommand(browseCmd)

	// The bare command browses too.
	cmd.RootCmd.Flags().AddFlagSet(browseCmd.Flags())
	cmd.RootCmd.RunE = browseCmd.RunE
}
