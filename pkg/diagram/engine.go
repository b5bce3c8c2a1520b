package diagram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/goccy/go-graphviz"

	mmerrors "github.com/matzehuels/musicmap/pkg/errors"
)

// Format is an output format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatJPG Format = "jpg"
	FormatDOT Format = "dot" // DOT source, no engine involved
)

// Formats lists the supported formats, default first.
var Formats = []Format{FormatPNG, FormatSVG, FormatJPG, FormatDOT}

// ParseFormat validates a format name. "jpeg" is accepted as "jpg".
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(s, ".")))
	if f == "jpeg" {
		f = FormatJPG
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", mmerrors.New(mmerrors.ErrCodeInvalidFormat,
		"unsupported format %q (must be png, svg, jpg or dot)", s)
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatSVG:
		return "image/svg+xml"
	case FormatJPG:
		return "image/jpeg"
	default:
		return "text/vnd.graphviz; charset=utf-8"
	}
}

// ErrEngineUnavailable is returned when an engine cannot run at all,
// e.g. the dot binary is not installed.
var ErrEngineUnavailable = errors.New("graphviz engine unavailable")

// Engine lays out and rasterizes DOT source.
type Engine interface {
	// Name identifies the engine in logs, metrics and cache keys.
	Name() string
	// Render converts dot into the given image format.
	Render(ctx context.Context, dot []byte, format Format) ([]byte, error)
}

// Engine names accepted by [NewEngine].
const (
	EngineWASM = "wasm"
	EngineDot  = "dot"
)

// NewEngine returns the engine with the given name. binary is only used by
// the dot engine and may be empty to search PATH.
func NewEngine(name, binary string) (Engine, error) {
	switch name {
	case "", EngineWASM:
		return Graphviz{}, nil
	case EngineDot:
		return Exec{Binary: binary}, nil
	default:
		return nil, mmerrors.New(mmerrors.ErrCodeInvalidEngine, "unknown engine %q (must be wasm or dot)", name)
	}
}

// =============================================================================
// Embedded Graphviz
// =============================================================================

// Graphviz renders in-process with the WASM build of Graphviz.
type Graphviz struct{}

// Name returns "wasm".
func (Graphviz) Name() string { return EngineWASM }

// Render parses dot and renders it with the dot layout.
func (Graphviz) Render(ctx context.Context, dot []byte, format Format) ([]byte, error) {
	gvFormat, err := graphvizFormat(format)
	if err != nil {
		return nil, err
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: init graphviz: %v", ErrEngineUnavailable, err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, gvFormat, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

func graphvizFormat(f Format) (graphviz.Format, error) {
	switch f {
	case FormatPNG:
		return graphviz.PNG, nil
	case FormatSVG:
		return graphviz.SVG, nil
	case FormatJPG:
		return graphviz.JPG, nil
	default:
		return "", mmerrors.New(mmerrors.ErrCodeInvalidFormat, "engine cannot produce %q", f)
	}
}

// =============================================================================
// External dot binary
// =============================================================================

// Exec renders by running the Graphviz dot binary.
type Exec struct {
	// Binary is the dot executable; empty means "dot" from PATH.
	Binary string
}

// Name returns "dot".
func (Exec) Name() string { return EngineDot }

// Render pipes dot through `dot -T<format>`.
func (e Exec) Render(ctx context.Context, dot []byte, format Format) ([]byte, error) {
	if format == FormatDOT {
		return nil, mmerrors.New(mmerrors.ErrCodeInvalidFormat, "engine cannot produce %q", format)
	}

	bin := e.Binary
	if bin == "" {
		bin = "dot"
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found", ErrEngineUnavailable, bin)
	}

	cmd := exec.CommandContext(ctx, path, "-T"+string(format))
	cmd.Stdin = bytes.NewReader(dot)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %v: %s", bin, err, strings.TrimSpace(errBuf.String()))
	}
	return out.Bytes(), nil
}

// Hint returns the remediation shown next to a rendering error.
func Hint(engine string) string {
	const install = "apt install graphviz (Debian/Ubuntu), brew install graphviz (macOS), sudo emerge media-gfx/graphviz (Gentoo)"
	if engine == EngineDot {
		return "Ensure graphviz is installed: " + install
	}
	return "The embedded Graphviz engine failed; install graphviz and retry with --engine=dot: " + install
}
