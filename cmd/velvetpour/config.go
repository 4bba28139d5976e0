package main

import (
	"fmt"

	"github.com/cristianoliveira/velvetpour/cmd"
	"github.com/cristianoliveira/velvetpour/internal/colors"
	"github.com/cristianoliveira/velvetpour/internal/config"
	"github.com/spf13/cobra"
)

type configClient interface {
	Path() string
	WriteSample(path string) (bool, error)
	All() map[string]string
	Keys() []string
}

// globalConfig serves the config commands from the loaded configuration.
type globalConfig struct{}

func (globalConfig) Path() string                          { return config.DefaultPath() }
func (globalConfig) WriteSample(path string) (bool, error) { return config.WriteSample(path) }
func (globalConfig) All() map[string]string                { return config.All() }
func (globalConfig) Keys() []string                        { return config.Keys() }

const configCommandLong = `Inspect and create the configuration file.

Values are read from defaults, then the config file, then VELVETPOUR_*
environment variables, then command line flags.

USAGE:
    velvetpour config <subcommand>

SUBCOMMANDS:
    init    Write a config file with the defaults, unless one exists
    show    Print the effective configuration`

// NewConfigCmd creates the config command with explicit dependencies.
func NewConfigCmd(client configClient) *cobra.Command {
	if client == nil {
		panic("NewConfigCmd: client dependency cannot be nil")
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and create the configuration file",
		Long:  configCommandLong,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a config file with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			path := client.Path()
			written, err := client.WriteSample(path)
			if err != nil {
				return err
			}
			if !written {
				colors.Warning(fmt.Sprintf("Config file already exists: %s", path))
				return nil
			}
			colors.Success(fmt.Sprintf("Wrote %s", path))
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			out := c.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", client.Path())
			all := client.All()
			for _, key := range client.Keys() {
				fmt.Fprintf(out, "%s = %q\n", key, all[key])
			}
			return nil
		},
	})

	return configCmd
}

var configCmd = NewConfigCmd(globalConfig{})

func init() {
	cmd.RootCmd.AddCommand(configCmd)
}
