package main

import (
	"fmt"

	"github.com/cristianoliveira/velvetpour/cmd"
	"github.com/cristianoliveira/velvetpour/internal/version"
	"github.com/spf13/cobra"
)

type versionClient interface {
	Banner() string
}

type buildInfo struct{}

func (buildInfo) Banner() string { return version.Banner() }

// NewVersionCmd creates the version command with explicit dependencies.
func NewVersionCmd(client versionClient) *cobra.Command {
	if client == nil {
		panic("NewVersionCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of velvetpour.`,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			fmt.Fprintln(c.OutOrStdout(), client.Banner())
			return nil
		},
	}
}

var versionCmd = NewVersionCmd(buildInfo{})

func init() {
	cmd.RootCmd.AddCommand(versionCmd)
}
