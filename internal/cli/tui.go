package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/musicmap/pkg/journey"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// JourneyModel - Interactive journey browser
// =============================================================================

// JourneyModel is the bubbletea model for browsing a journey node by node.
// The selected node's note and outgoing edges are shown below the table.
type JourneyModel struct {
	Journey *journey.Journey
	Nodes   []journey.Node
	Cursor  int
	Height  int
	Offset  int
}

// NewJourneyModel creates a new journey browser model.
func NewJourneyModel(j *journey.Journey) JourneyModel {
	return JourneyModel{
		Journey: j,
		Nodes:   j.Nodes(),
		Height:  10,
	}
}

func (m JourneyModel) Init() tea.Cmd {
	return nil
}

func (m JourneyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Nodes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = len(m.Nodes) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		// Leave room for the title, help line and detail pane.
		m.Height = msg.Height - 14
		if m.Height < 3 {
			m.Height = 3
		}
	}
	return m, nil
}

func (m JourneyModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Music Journey"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	if len(m.Nodes) == 0 {
		b.WriteString(listDimStyle.Render("  (empty journey)"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Nodes))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		n := m.Nodes[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, n.ID, n.Label, statusSwatch(n.Status), fmt.Sprint(len(m.Journey.Outgoing(n.ID)))})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Artist", "Status", "Out").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			if m.Offset+row == m.Cursor && col != 3 {
				return listSelectedStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(m.detail(m.Nodes[m.Cursor]))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Nodes))))

	return b.String()
}

// detail renders the note and outgoing edges of n.
func (m JourneyModel) detail(n journey.Node) string {
	var b strings.Builder
	b.WriteString("  " + styleHighlight.Render(n.Label) + "\n")
	if n.Note != "" {
		for _, line := range strings.Split(n.Note, "\n") {
			b.WriteString("  " + listDimStyle.Render(line) + "\n")
		}
	}
	for _, e := range m.Journey.Outgoing(n.ID) {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			listDimStyle.Render(iconArrow), styleValue.Render(e.To), listDimStyle.Render(e.Label)))
	}
	return b.String()
}

// =============================================================================
// Plain table
// =============================================================================

// journeyTable renders every node of j as a static table, one row per
// node with its outgoing questions folded into a single cell.
func journeyTable(j *journey.Journey) string {
	rows := [][]string{}
	for _, n := range j.Nodes() {
		var next []string
		for _, e := range j.Outgoing(n.ID) {
			next = append(next, e.To+" ("+e.Label+")")
		}
		rows = append(rows, []string{n.ID, n.Label, statusSwatch(n.Status), oneLine(n.Note), strings.Join(next, "\n")})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Artist", "Status", "Note", "Leads to").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
