package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/musicmap/pkg/journey"
)

func press(m tea.Model, key string) tea.Model {
	var msg tea.KeyMsg
	switch key {
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next
}

func TestJourneyModel_Navigation(t *testing.T) {
	var m tea.Model = NewJourneyModel(journey.History())

	m = press(m, "up")
	if got := m.(JourneyModel).Cursor; got != 0 {
		t.Errorf("cursor after up at top = %d, want 0", got)
	}

	for range 10 {
		m = press(m, "down")
	}
	if got := m.(JourneyModel).Cursor; got != 6 {
		t.Errorf("cursor after overscrolling = %d, want 6", got)
	}

	m = press(m, "g")
	if got := m.(JourneyModel).Cursor; got != 0 {
		t.Errorf("cursor after g = %d, want 0", got)
	}
	m = press(m, "G")
	if got := m.(JourneyModel).Cursor; got != 6 {
		t.Errorf("cursor after G = %d, want 6", got)
	}
}

func TestJourneyModel_Scrolls(t *testing.T) {
	var m tea.Model = NewJourneyModel(journey.History())
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	if got := m.(JourneyModel).Height; got != 3 {
		t.Fatalf("Height = %d, want minimum 3", got)
	}

	for range 4 {
		m = press(m, "j")
	}
	jm := m.(JourneyModel)
	if jm.Cursor != 4 || jm.Offset != 2 {
		t.Errorf("cursor/offset = %d/%d, want 4/2", jm.Cursor, jm.Offset)
	}
}

func TestJourneyModel_Quit(t *testing.T) {
	m := NewJourneyModel(journey.History())
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Error("q should return tea.Quit")
	}
}

func TestJourneyModel_View(t *testing.T) {
	var m tea.Model = NewJourneyModel(journey.History())
	m = press(m, "j") // Clapton

	view := m.View()
	for _, want := range []string{"Music Journey", "Derek And The Dominos", "The Roots", "Mayall", "Where did he come from?", "[2/7]"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestJourneyModel_EmptyView(t *testing.T) {
	m := NewJourneyModel(journey.New())
	if !strings.Contains(m.View(), "empty journey") {
		t.Error("empty journey should say so")
	}
}

func TestOneLine(t *testing.T) {
	if got, want := oneLine("a\nb"), "a / b"; got != want {
		t.Errorf("oneLine() = %q, want %q", got, want)
	}
}

func TestStatusSwatch(t *testing.T) {
	tests := []struct {
		status journey.Status
		want   string
	}{
		{journey.StatusDone, "done"},
		{"", "backlog"},
	}
	for _, tt := range tests {
		if got := statusSwatch(tt.status); !strings.HasSuffix(got, tt.want) {
			t.Errorf("statusSwatch(%q) = %q, want suffix %q", tt.status, got, tt.want)
		}
	}
}
