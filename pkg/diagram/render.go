package diagram

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	mmerrors "github.com/matzehuels/musicmap/pkg/errors"
	"github.com/matzehuels/musicmap/pkg/journey"
	"github.com/matzehuels/musicmap/pkg/observability"
)

// Renderer turns journeys into image files.
// The zero value renders with the embedded Graphviz engine and default options.
type Renderer struct {
	Engine  Engine
	Options Options
}

func (r *Renderer) engine() Engine {
	if r.Engine == nil {
		return Graphviz{}
	}
	return r.Engine
}

// EngineName returns the name of the engine in use.
func (r *Renderer) EngineName() string { return r.engine().Name() }

// DOT returns the DOT source for j.
func (r *Renderer) DOT(j *journey.Journey) string {
	return ToDOT(j, r.Options)
}

// Bytes renders j in the given format. FormatDOT returns the DOT source
// without running an engine.
//
// Errors carry a code from package errors: ENGINE_UNAVAILABLE when the
// engine cannot run, INVALID_FORMAT for formats it cannot produce, and
// RENDER_FAILED otherwise.
func (r *Renderer) Bytes(ctx context.Context, j *journey.Journey, format Format) ([]byte, error) {
	dot := []byte(r.DOT(j))
	if format == FormatDOT {
		return dot, nil
	}

	e := r.engine()
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, e.Name(), string(format))
	start := time.Now()

	data, err := e.Render(ctx, dot, format)
	hooks.OnRenderComplete(ctx, e.Name(), string(format), len(data), time.Since(start), err)
	if err != nil {
		return nil, classify(err, e.Name(), format)
	}
	return data, nil
}

func classify(err error, engine string, format Format) error {
	if mmerrors.GetCode(err) != "" {
		return err
	}
	code := mmerrors.ErrCodeRenderFailed
	if errors.Is(err, ErrEngineUnavailable) {
		code = mmerrors.ErrCodeEngineUnavailable
	}
	return mmerrors.Wrap(code, err, "render %s with %s engine", format, engine)
}

// WriteFile renders j and writes it to "<base>.<format>", returning that
// path. The file is written to a temporary name in the same directory and
// renamed into place, so a failed render leaves no output file.
func (r *Renderer) WriteFile(ctx context.Context, j *journey.Journey, base string, format Format) (string, error) {
	if err := mmerrors.ValidateOutputBase(base); err != nil {
		return "", err
	}
	path := base + "." + string(format)

	data, err := r.Bytes(ctx, j, format)
	if err != nil {
		return "", err
	}
	if err := writeAtomic(path, data); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".musicmap-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
