package cli

import (
	"errors"

	"github.com/spf13/cobra"

	mmerrors "github.com/matzehuels/musicmap/pkg/errors"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a journey file for duplicate nodes and dangling edges",
		Long: `Check a journey file and report every problem found.

With no argument the --journey file is checked, or the built-in history
when --journey is not set. Exits non-zero when the journey is invalid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				c.journeyPath = args[0]
			}
			source := c.journeyPath
			if source == "" {
				source = "built-in history"
			}

			j, err := c.loadJourney(cmd.Context())
			if err != nil {
				list := problems(err)
				printError(c.Out, "%s: %d problem(s)", source, len(list))
				for _, p := range list {
					printDetail(c.Out, "%s", p)
				}
				return mmerrors.Wrap(mmerrors.ErrCodeInvalidJourney, err, "invalid journey")
			}

			for _, n := range j.Nodes() {
				if !n.Status.Known() {
					printWarning(c.Out, "node %q has unknown status %q, drawn as backlog", n.ID, string(n.Status))
				}
			}
			printSuccess(c.Out, "%s is valid", source)
			printDetail(c.Out, "%d nodes · %d edges", j.NodeCount(), j.EdgeCount())
			return nil
		},
	}
}

// problems flattens the first joined error found in err's chain.
// Errors that are not joined are returned as a single problem.
func problems(err error) []error {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if joined, ok := e.(interface{ Unwrap() []error }); ok {
			return joined.Unwrap()
		}
	}
	return []error{err}
}
