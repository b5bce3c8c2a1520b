// Package cli implements the musicmap command-line interface.
//
// Running `musicmap` with no arguments renders the built-in journey to
// music_journey.png in the working directory. Subcommands:
//   - render: render with a chosen format, engine, output path and cache
//   - dot: print the DOT source
//   - validate: check a journey file
//   - list: browse the journey in the terminal
//   - serve: local preview server with Prometheus metrics
//   - cache: manage the rendered-artifact cache
//
// All commands support --verbose (-v) for debug-level logging and
// --journey to replace the built-in history with a TOML file.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/musicmap/pkg/buildinfo"
	"github.com/matzehuels/musicmap/pkg/journey"
)

const (
	// appName is the application name used for directories and display.
	appName = "musicmap"

	// defaultOutput is the output basename; the format is appended.
	defaultOutput = "music_journey"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives user-facing result lines; Err receives the spinner.
	Out io.Writer
	Err io.Writer

	journeyPath string
}

// New creates a CLI logging to w. Results go to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		Err:    os.Stderr,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself renders with default settings.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "musicmap renders a music-discovery journey as a diagram",
		Long:         `musicmap draws the path from one artist to the next as a left-to-right Graphviz diagram, colored by listening status.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), defaultRenderOpts())
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.journeyPath, "journey", "", "TOML journey file (default: built-in history)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadJourney returns the journey selected by --journey.
func (c *CLI) loadJourney(ctx context.Context) (*journey.Journey, error) {
	logger := loggerFromContext(ctx)
	if c.journeyPath == "" {
		logger.Debug("Using built-in history")
		return journey.History(), nil
	}
	j, err := journey.Load(c.journeyPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded journey", "path", c.journeyPath, "nodes", j.NodeCount(), "edges", j.EdgeCount())
	return j, nil
}

// interactive reports whether w is a terminal.
func interactive(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// cacheDir returns the cache directory using XDG standard (~/.cache/musicmap/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
