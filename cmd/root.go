// Package cmd holds the root command shared by the velvetpour subcommands.
package cmd

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/velvetpour/internal/colors"
	"github.com/cristianoliveira/velvetpour/internal/config"
	"github.com/cristianoliveira/velvetpour/internal/logging"
	"github.com/cristianoliveira/velvetpour/internal/version"
	"github.com/spf13/cobra"
)

// Persistent flag names bound to configuration keys.
const (
	FlagCatalog = "catalog"
	FlagDB      = "db"
	FlagDebug   = "debug"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "velvetpour",
	Short: "The Velvet Pour cocktail bar, in your terminal.",
	Long: `The Velvet Pour cocktail bar, in your terminal.

Run without a command to browse the bar. The other commands print parts of
the catalog or move catalogs in and out of the local store.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logging.ShutdownGlobal()
	},
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.SetVersionTemplate("{{.Name}} version {{.Version}}\n")

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	flags := RootCmd.PersistentFlags()
	flags.String(FlagCatalog, "", "catalog file (toml or yaml)")
	flags.String(FlagDB, "", "catalog database path")
	flags.Bool(FlagDebug, false, "print debug output")

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != RootCmd {
			fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
			return
		}
		printHelpText(cmd)
	})
}

// setup loads configuration with flags overriding files and environment,
// then starts the file logger for the running command.
func setup(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	config.Load(
		config.WithFlag(config.KeyCatalogPath, flags.Lookup(FlagCatalog)),
		config.WithFlag(config.KeyDBPath, flags.Lookup(FlagDB)),
		config.WithFlag(config.KeyDebug, flags.Lookup(FlagDebug)),
		config.WithFlag(config.KeyWatch, flags.Lookup("watch")),
		config.WithFlag(config.KeyStartSection, flags.Lookup("section")),
	)
	colors.SetDebug(config.GetBool(config.KeyDebug, false))

	if err := logging.InitGlobal(cmd.Name()); err != nil {
		colors.Warning(fmt.Sprintf("logging disabled: %v", err))
	}
	logging.Debug("command started", "command", cmd.CommandPath(), "args", len(args))
	return nil
}

func printHelpText(cmd *cobra.Command) {
	commandOrder := []string{
		"browse",
		"menu",
		"recipe",
		"hours",
		"catalog",
		"config",
		"version",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-24s %s", found.Use, found.Short))
	}

	helpText := fmt.Sprintf(`velvetpour v%s

%s

USAGE:
    velvetpour [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    --catalog PATH  Catalog file (toml or yaml)
    --db PATH       Catalog database path
    --debug         Print debug output
    -h, --help      Show help message
`, version.String(), cmd.Short, strings.Join(cmdLines, "\n"))
	fmt.Fprint(cmd.OutOrStdout(), helpText)
}
