package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse the journey in the terminal",
		Long: `Browse the journey's nodes, notes and outgoing edges.

The interactive browser is used when stdout is a terminal; otherwise, or
with --plain, a table is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := c.loadJourney(cmd.Context())
			if err != nil {
				return err
			}

			if plain || !interactive(c.Out) {
				_, err := fmt.Fprintln(c.Out, journeyTable(j))
				return err
			}

			p := tea.NewProgram(NewJourneyModel(j), tea.WithContext(cmd.Context()), tea.WithOutput(c.Out))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print a table instead of the interactive browser")
	return cmd
}
