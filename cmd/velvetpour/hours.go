package main

import (
	"fmt"

	"github.com/cristianoliveira/velvetpour/cmd"
	"github.com/cristianoliveira/velvetpour/internal/tui/render"
	"github.com/spf13/cobra"
)

// NewHoursCmd creates the hours command with explicit dependencies.
func NewHoursCmd(client catalogClient) *cobra.Command {
	if client == nil {
		panic("NewHoursCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "hours",
		Short: "Print contact details and opening hours",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cat, err := client.Catalog(commandContext(c))
			if err != nil {
				return err
			}
			out := c.OutOrStdout()
			contact := cat.Contact

			fmt.Fprintln(out, headingStyle.Render(contact.Heading))
			for _, line := range []string{contact.Address, contact.Phone, contact.Email} {
				if line != "" {
					fmt.Fprintln(out, line)
				}
			}
			if len(contact.Hours) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, headingStyle.Render("Open Every Day"))
				for _, line := range render.Hours(contact.Hours) {
					fmt.Fprintln(out, line)
				}
			}
			if len(contact.Socials) > 0 {
				fmt.Fprintln(out)
				for _, s := range contact.Socials {
					fmt.Fprintf(out, "%s: %s\n", s.Name, s.URL)
				}
			}
			return nil
		},
	}
}

var hoursCmd = NewHoursCmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(hoursCmd)
}
