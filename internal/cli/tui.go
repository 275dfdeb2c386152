package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/floretscan/floret/pkg/scan"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// SequenceModel is the bubbletea model for stepping through a generated
// acquisition order, one (position, angle) pair at a time, the way the
// microscope would visit them.
type SequenceModel struct {
	Sequence scan.Sequence
	Cursor   int
	Height   int
	Offset   int
}

// NewSequenceModel creates a sequence preview model.
func NewSequenceModel(seq scan.Sequence) SequenceModel {
	return SequenceModel{
		Sequence: seq,
		Height:   15,
	}
}

func (m SequenceModel) Init() tea.Cmd {
	return nil
}

func (m SequenceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		case "down", "j", "enter", " ":
			if m.Cursor < m.Sequence.Len()-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "g", "home":
			m.Cursor, m.Offset = 0, 0
		case "G", "end":
			m.Cursor = m.Sequence.Len() - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m SequenceModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Acquisition Preview"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ step  g/G jump  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > m.Sequence.Len() {
		end = m.Sequence.Len()
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%g", m.Sequence.Positions[i]),
			fmt.Sprintf("%g°", m.Sequence.Angles[i]),
			angleBar(m.Sequence.Angles[i]),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Step", "Position", "Angle", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, m.Sequence.Len())))

	return b.String()
}

// angleBar renders a tiny fixed-width gauge of the tilt within [-90, 90).
func angleBar(angle float64) string {
	const width = 19 // odd, so zero tilt lands on the centre cell
	pos := int((angle + 90) / 180 * width)
	if pos < 0 {
		pos = 0
	}
	if pos >= width {
		pos = width - 1
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		switch i {
		case pos:
			b.WriteString("●")
		case width / 2:
			b.WriteString("┼")
		default:
			b.WriteString("─")
		}
	}
	return b.String()
}
