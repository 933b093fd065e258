// Package materials implements the lesson browser: a card list of topics and
// a full-screen reader for the selected one. At most one topic is open at a
// time; Esc closes the reader before it leaves the screen.
package materials

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nasywa/karsa/internal/content"
	"github.com/nasywa/karsa/internal/router"
	"github.com/nasywa/karsa/internal/screen"
	"github.com/nasywa/karsa/internal/ui/layout"
	"github.com/nasywa/karsa/internal/ui/theme"
)

// MaterialsScreen lists the lesson topics.
type MaterialsScreen struct {
	catalog      *content.Catalog
	cursor       int
	opened       *content.Topic
	scrollOffset int
}

var _ screen.Screen = (*MaterialsScreen)(nil)
var _ screen.KeyHintProvider = (*MaterialsScreen)(nil)

// New creates a MaterialsScreen over the given catalog.
func New(catalog *content.Catalog) *MaterialsScreen {
	return &MaterialsScreen{catalog: catalog}
}

func (m *MaterialsScreen) Init() tea.Cmd {
	return nil
}

func (m *MaterialsScreen) Title() string {
	if m.opened != nil {
		return m.opened.Title
	}
	return "Materi Pembelajaran"
}

func (m *MaterialsScreen) KeyHints() []layout.KeyHint {
	if m.opened != nil {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Gulir"},
			{Key: "Esc", Description: "Tutup materi"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Pilih"},
		{Key: "Enter", Description: "Buka"},
		{Key: "Esc", Description: "Kembali"},
	}
}

func (m *MaterialsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.opened != nil {
		return m.updateReader(kmsg)
	}
	return m.updateList(kmsg)
}

func (m *MaterialsScreen) updateList(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.catalog.Topics)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(m.catalog.Topics) {
			m.opened = &m.catalog.Topics[m.cursor]
			m.scrollOffset = 0
		}
	case "esc":
		return m, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return m, nil
}

func (m *MaterialsScreen) updateReader(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	case "down", "j":
		m.scrollOffset++
	case "pgup":
		m.scrollOffset -= 10
		if m.scrollOffset < 0 {
			m.scrollOffset = 0
		}
	case "pgdown":
		m.scrollOffset += 10
	case "esc":
		m.opened = nil
		m.scrollOffset = 0
	}
	return m, nil
}

func (m *MaterialsScreen) View(width, height int) string {
	if m.opened != nil {
		return m.viewReader(width, height)
	}
	return m.viewList(width, height)
}

func (m *MaterialsScreen) viewList(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("Materi Pembelajaran"))
	sections = append(sections, theme.Subtitle.Render("Pilih topik yang ingin kamu pelajari"))
	sections = append(sections, "")

	cardWidth := width - 20
	if cardWidth > 64 {
		cardWidth = 64
	}
	if cardWidth < 30 {
		cardWidth = 30
	}

	for i, topic := range m.catalog.Topics {
		label := fmt.Sprintf("%s  %s", topic.Category.Icon(), topic.Title)
		body := label + "\n" + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("   "+topic.Description)

		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Text).
			Width(cardWidth).
			Padding(0, 1)
		if i == m.cursor {
			card = card.BorderForeground(theme.Primary).Bold(true)
		}
		sections = append(sections, card.Render(body))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (m *MaterialsScreen) viewReader(width, height int) string {
	bodyWidth := width - 12
	if bodyWidth > 76 {
		bodyWidth = 76
	}
	if bodyWidth < 20 {
		bodyWidth = 20
	}

	header := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(m.opened.Category.Icon() + "  " + m.opened.Title)

	wrapped := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(bodyWidth).
		Render(m.opened.Body)
	lines := strings.Split(wrapped, "\n")

	// Header, divider, and a scroll marker line take up four rows.
	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	maxOffset := len(lines) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.scrollOffset > maxOffset {
		m.scrollOffset = maxOffset
	}

	end := m.scrollOffset + visible
	if end > len(lines) {
		end = len(lines)
	}
	body := strings.Join(lines[m.scrollOffset:end], "\n")

	marker := ""
	if end < len(lines) {
		marker = theme.Hint.Render("▼ lanjut")
	}

	divider := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", bodyWidth))

	content := lipgloss.JoinVertical(lipgloss.Left, header, divider, body, marker)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}
