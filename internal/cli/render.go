package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/musicmap/pkg/cache"
	"github.com/matzehuels/musicmap/pkg/diagram"
	mmerrors "github.com/matzehuels/musicmap/pkg/errors"
)

// redisURLEnv is consulted when --redis-url is not given.
const redisURLEnv = "MUSICMAP_REDIS_URL"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string        // output basename; ".<format>" is appended
	format   string        // png, svg, jpg or dot
	engine   string        // wasm or dot
	dotPath  string        // dot binary for the dot engine
	legend   bool          // add a status legend cluster
	useCache bool          // cache artifacts in the XDG cache dir
	cacheDir string        // cache artifacts in this directory
	redisURL string        // cache artifacts in Redis
	cacheTTL time.Duration // artifact expiry; 0 keeps forever
}

func defaultRenderOpts() *renderOpts {
	return &renderOpts{
		output: defaultOutput,
		format: string(diagram.FormatPNG),
		engine: diagram.EngineWASM,
	}
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := defaultRenderOpts()

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the journey to an image file",
		Long: `Render the journey to <output>.<format> in the working directory.

A rendering failure is reported with an installation hint and does not
change the exit status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output path without extension")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: png, svg, jpg, dot")
	addEngineFlags(cmd, opts)

	return cmd
}

// runRender renders the journey and reports the result on c.Out.
// Only invalid flags, unreadable journeys and cache setup failures are
// returned as errors; rendering failures are printed and swallowed.
func (c *CLI) runRender(ctx context.Context, opts *renderOpts) error {
	format, err := diagram.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if err := mmerrors.ValidateOutputBase(opts.output); err != nil {
		return err
	}

	j, err := c.loadJourney(ctx)
	if err != nil {
		return err
	}

	engine, err := diagram.NewEngine(opts.engine, opts.dotPath)
	if err != nil {
		return err
	}
	store, err := c.openCache(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close()
	cached := false
	engine = withCache(engine, store, opts.cacheTTL, func(string) { cached = true })

	logger, _ := withRenderID(loggerFromContext(ctx))
	logger.Debug("Rendering", "nodes", j.NodeCount(), "edges", j.EdgeCount(), "format", format, "engine", engine.Name())
	prog := newProgress(logger)

	r := diagram.Renderer{Engine: engine, Options: diagram.Options{Legend: opts.legend}}

	var spin *Spinner
	if interactive(c.Err) {
		spin = newSpinner(ctx, c.Err, "Rendering "+opts.output+"."+string(format))
		spin.Start()
	}
	path, err := r.WriteFile(ctx, j, opts.output, format)
	if spin != nil {
		spin.Stop()
	}

	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logger.Debug("Render failed", "err", err)
		printError(c.Out, "Error rendering graph: %s", mmerrors.UserMessage(err))
		printDetail(c.Out, "%s", diagram.Hint(engine.Name()))
		return nil
	}

	prog.done("Rendered", "path", path, "cached", cached)
	printSuccess(c.Out, "Map updated: %s", displayPath(path))
	printStats(c.Out, j.NodeCount(), j.EdgeCount(), string(format), engine.Name(), cached)
	return nil
}

// addEngineFlags registers the engine, legend and cache flags shared by
// render and serve.
func addEngineFlags(cmd *cobra.Command, opts *renderOpts) {
	cmd.Flags().StringVar(&opts.engine, "engine", opts.engine, "graphviz engine: wasm (embedded), dot (installed binary)")
	cmd.Flags().StringVar(&opts.dotPath, "dot-path", "", "path to the dot binary (engine dot)")
	cmd.Flags().BoolVar(&opts.legend, "legend", false, "add a status legend")
	cmd.Flags().BoolVar(&opts.useCache, "cache", false, "cache rendered artifacts in the user cache directory")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "cache rendered artifacts in this directory")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", "", "cache rendered artifacts in Redis (env "+redisURLEnv+")")
	cmd.Flags().DurationVar(&opts.cacheTTL, "cache-ttl", 0, "expiry of cached artifacts (0 keeps them)")
}

// withCache wraps engine with store unless store is a NullCache.
func withCache(engine diagram.Engine, store cache.Cache, ttl time.Duration, onHit func(string)) diagram.Engine {
	if _, isNull := store.(cache.NullCache); isNull {
		return engine
	}
	return diagram.Cached{
		Engine: engine,
		Cache:  store,
		Keyer:  cache.Keyer{Prefix: appName + ":"},
		TTL:    ttl,
		OnHit:  onHit,
	}
}

// displayPath resolves path against the working directory.
func displayPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	return filepath.Join(wd, path)
}

// openCache returns the artifact cache selected by opts, or a NullCache.
// A Redis server that cannot be reached is skipped with a warning and the
// file cache, if configured, is used instead.
func (c *CLI) openCache(ctx context.Context, opts *renderOpts) (cache.Cache, error) {
	logger := loggerFromContext(ctx)

	url := opts.redisURL
	if url == "" {
		url = os.Getenv(redisURLEnv)
	}
	if url != "" {
		if err := mmerrors.ValidateRedisURL(url); err != nil {
			return nil, err
		}
		rc, err := cache.NewRedisCache(ctx, url)
		if err == nil {
			logger.Debug("Using Redis cache")
			return rc, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.Warn("Redis cache unavailable, rendering without it", "err", err)
	}

	dir := opts.cacheDir
	if dir == "" && opts.useCache {
		var err error
		if dir, err = cacheDir(); err != nil {
			return nil, fmt.Errorf("get cache dir: %w", err)
		}
	}
	if dir == "" {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, mmerrors.Wrap(mmerrors.ErrCodeCache, err, "open file cache")
	}
	logger.Debug("Using file cache", "dir", dir)
	return fc, nil
}
