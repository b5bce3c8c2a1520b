package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/musicmap/pkg/diagram"
)

// dotCommand creates the dot command, which prints the DOT source that
// render hands to Graphviz.
func (c *CLI) dotCommand() *cobra.Command {
	var legend bool

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Print the journey as Graphviz DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := c.loadJourney(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(c.Out, diagram.ToDOT(j, diagram.Options{Legend: legend}))
			return err
		},
	}

	cmd.Flags().BoolVar(&legend, "legend", false, "add a status legend")
	return cmd
}
