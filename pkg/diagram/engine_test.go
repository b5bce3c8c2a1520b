package diagram

import (
	"context"
	"errors"
	"strings"
	"testing"

	mmerrors "github.com/matzehuels/musicmap/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{".svg", FormatSVG, false},
		{"jpeg", FormatJPG, false},
		{"dot", FormatDOT, false},
		{"bmp", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !mmerrors.Is(err, mmerrors.ErrCodeInvalidFormat) {
				t.Errorf("ParseFormat(%q) code = %v", tt.in, mmerrors.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewEngine(t *testing.T) {
	for name, want := range map[string]string{"": EngineWASM, "wasm": EngineWASM, "dot": EngineDot} {
		e, err := NewEngine(name, "")
		if err != nil {
			t.Fatalf("NewEngine(%q) error: %v", name, err)
		}
		if e.Name() != want {
			t.Errorf("NewEngine(%q).Name() = %q, want %q", name, e.Name(), want)
		}
	}

	if _, err := NewEngine("neato", ""); !mmerrors.Is(err, mmerrors.ErrCodeInvalidEngine) {
		t.Errorf("NewEngine(neato) = %v, want INVALID_ENGINE", err)
	}
}

func TestGraphvizRender(t *testing.T) {
	svg, err := Graphviz{}.Render(context.Background(), []byte(`digraph G { a -> b; }`), FormatSVG)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("Render() output missing <svg> tag")
	}
}

func TestGraphvizRender_InvalidDOT(t *testing.T) {
	if _, err := (Graphviz{}).Render(context.Background(), []byte(`not valid DOT {{{`), FormatSVG); err == nil {
		t.Error("Render() should return error for invalid DOT")
	}
}

func TestExecRender_MissingBinary(t *testing.T) {
	e := Exec{Binary: "musicmap-no-such-dot-binary"}
	_, err := e.Render(context.Background(), []byte(`digraph G { a -> b; }`), FormatPNG)
	if !errors.Is(err, ErrEngineUnavailable) {
		t.Errorf("Render() = %v, want ErrEngineUnavailable", err)
	}
}

func TestContentType(t *testing.T) {
	if FormatSVG.ContentType() != "image/svg+xml" {
		t.Errorf("svg content type = %q", FormatSVG.ContentType())
	}
	if FormatPNG.ContentType() != "image/png" {
		t.Errorf("png content type = %q", FormatPNG.ContentType())
	}
}

func TestHint(t *testing.T) {
	for _, engine := range []string{EngineWASM, EngineDot} {
		h := Hint(engine)
		if !strings.Contains(h, "install graphviz") {
			t.Errorf("Hint(%q) = %q, want an install instruction", engine, h)
		}
	}
}
