package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nasywa/karsa/internal/ui/theme"
)

// ToastDuration is how long a toast stays visible.
const ToastDuration = 2500 * time.Millisecond

// ToastExpiredMsg is emitted when a toast's display time is up.
type ToastExpiredMsg struct{ ID int }

// Toast is a transient notification banner. Showing a new toast replaces the
// previous one; the expiry message carries an ID so a stale timer cannot
// dismiss a newer toast.
type Toast struct {
	Title   string
	Body    string
	IsError bool

	id      int
	visible bool
}

// Show replaces the toast content and returns the expiry command.
func (t *Toast) Show(title, body string, isError bool) tea.Cmd {
	t.Title = title
	t.Body = body
	t.IsError = isError
	t.id++
	t.visible = true

	id := t.id
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// Update dismisses the toast when its own expiry message arrives.
func (t *Toast) Update(msg tea.Msg) {
	if m, ok := msg.(ToastExpiredMsg); ok && m.ID == t.id {
		t.visible = false
	}
}

// Visible reports whether the toast is currently shown.
func (t *Toast) Visible() bool {
	return t.visible
}

// View renders the toast banner, or an empty string when hidden.
func (t *Toast) View() string {
	if !t.visible {
		return ""
	}

	borderColor := theme.Primary
	if t.IsError {
		borderColor = theme.Error
	}

	content := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(t.Title)
	if t.Body != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Body)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 2).
		Render(content)
}
