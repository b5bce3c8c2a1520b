package diagram

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mmerrors "github.com/matzehuels/musicmap/pkg/errors"
	"github.com/matzehuels/musicmap/pkg/journey"
)

func TestWriteFile_PNG(t *testing.T) {
	dir := t.TempDir()
	r := Renderer{}

	path, err := r.WriteFile(context.Background(), journey.History(), filepath.Join(dir, "music_journey"), FormatPNG)
	if err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	if filepath.Base(path) != "music_journey.png" {
		t.Errorf("WriteFile() path = %q, want music_journey.png", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("WriteFile() left %d files, want exactly 1", len(entries))
	}
}

func TestWriteFile_Idempotent(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "music_journey")
	r := Renderer{}

	first, err := r.WriteFile(context.Background(), journey.History(), base, FormatPNG)
	if err != nil {
		t.Fatalf("first WriteFile() error: %v", err)
	}
	a, _ := os.ReadFile(first)

	second, err := r.WriteFile(context.Background(), journey.History(), base, FormatPNG)
	if err != nil {
		t.Fatalf("second WriteFile() error: %v", err)
	}
	b, _ := os.ReadFile(second)

	if !bytes.Equal(a, b) {
		t.Error("rendering identical input twice should produce identical bytes")
	}
}

func TestWriteFile_EngineMissingLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	r := Renderer{Engine: Exec{Binary: "musicmap-no-such-dot-binary"}}

	_, err := r.WriteFile(context.Background(), journey.History(), filepath.Join(dir, "music_journey"), FormatPNG)
	if err == nil {
		t.Fatal("WriteFile() should fail without the dot binary")
	}
	if !mmerrors.Is(err, mmerrors.ErrCodeEngineUnavailable) {
		t.Errorf("WriteFile() code = %v, want ENGINE_UNAVAILABLE", mmerrors.GetCode(err))
	}
	if !errors.Is(err, ErrEngineUnavailable) {
		t.Error("WriteFile() error should wrap ErrEngineUnavailable")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("failed render left %d files behind", len(entries))
	}
}

func TestWriteFile_DOT(t *testing.T) {
	dir := t.TempDir()
	r := Renderer{Engine: failingEngine{}}

	path, err := r.WriteFile(context.Background(), journey.History(), filepath.Join(dir, "map"), FormatDOT)
	if err != nil {
		t.Fatalf("WriteFile(dot) error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "digraph") {
		t.Error("dot output should contain the DOT source")
	}
}

func TestWriteFile_InvalidBase(t *testing.T) {
	r := Renderer{}
	_, err := r.WriteFile(context.Background(), journey.History(), "", FormatPNG)
	if !mmerrors.Is(err, mmerrors.ErrCodeInvalidPath) {
		t.Errorf("WriteFile(\"\") = %v, want INVALID_PATH", err)
	}
}

func TestBytes_RenderFailed(t *testing.T) {
	r := Renderer{Engine: failingEngine{}}
	_, err := r.Bytes(context.Background(), journey.History(), FormatSVG)
	if !mmerrors.Is(err, mmerrors.ErrCodeRenderFailed) {
		t.Errorf("Bytes() = %v, want RENDER_FAILED", err)
	}
	if !strings.Contains(err.Error(), "layout exploded") {
		t.Errorf("Bytes() lost the cause: %v", err)
	}
}

func TestEngineName(t *testing.T) {
	if got := (&Renderer{}).EngineName(); got != EngineWASM {
		t.Errorf("zero Renderer engine = %q, want wasm", got)
	}
}

type failingEngine struct{}

func (failingEngine) Name() string { return "failing" }

func (failingEngine) Render(context.Context, []byte, Format) ([]byte, error) {
	return nil, errors.New("layout exploded")
}
