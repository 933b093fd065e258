// Package chatscreen hosts the Tanya Karsa conversation: the transcript, a
// text input, and a typing indicator while a reply is on its way. One
// question is in flight at a time; the input stays visible but submissions
// are ignored until the reply (or the fallback) lands.
package chatscreen

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nasywa/karsa/internal/chat"
	"github.com/nasywa/karsa/internal/router"
	"github.com/nasywa/karsa/internal/screen"
	"github.com/nasywa/karsa/internal/ui/components"
	"github.com/nasywa/karsa/internal/ui/layout"
	"github.com/nasywa/karsa/internal/ui/theme"
)

const (
	requestTimeout  = 30 * time.Second
	spinnerInterval = 150 * time.Millisecond
	inputCharLimit  = 280
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

type spinnerTickMsg time.Time

// replyMsg carries the finished exchange back to the UI loop.
type replyMsg struct {
	Result chat.Result
}

// ChatScreen implements screen.Screen for the assistant conversation.
type ChatScreen struct {
	assistant    *chat.Assistant
	input        components.TextInput
	toast        components.Toast
	scrollOffset int
	pinned       bool // learner scrolled away from the newest message
	spinnerFrame int
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.InputCapturer = (*ChatScreen)(nil)

// New creates a ChatScreen over a shared Assistant.
func New(assistant *chat.Assistant) *ChatScreen {
	return &ChatScreen{
		assistant: assistant,
		input:     components.NewTextInput("Ketik pertanyaanmu...", inputCharLimit),
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{c.input.Init()}
	if c.assistant.Awaiting() {
		cmds = append(cmds, tickSpinner())
	}
	return tea.Batch(cmds...)
}

func tickSpinner() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (c *ChatScreen) Title() string {
	return "Tanya Karsa"
}

func (c *ChatScreen) CapturingInput() bool {
	return true
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Kirim"},
		{Key: "↑↓", Description: "Gulir"},
		{Key: "Esc", Description: "Kembali"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTickMsg:
		if !c.assistant.Awaiting() {
			return c, nil
		}
		c.spinnerFrame = (c.spinnerFrame + 1) % len(spinnerFrames)
		return c, tickSpinner()

	case replyMsg:
		c.assistant.Finish(msg.Result)
		c.pinned = false
		cmds := []tea.Cmd{c.input.SetEnabled(true)}
		if msg.Result.Err != nil {
			cmds = append(cmds, c.toast.Show("Gagal menghubungi Karsa", "Silakan coba lagi nanti", true))
		}
		return c, tea.Batch(cmds...)

	case components.ToastExpiredMsg:
		c.toast.Update(msg)
		return c, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			return c.submit()
		case "up":
			if c.scrollOffset > 0 {
				c.scrollOffset--
			}
			c.pinned = true
			return c, nil
		case "down":
			c.scrollOffset++
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// submit admits the typed question through the assistant's gate and kicks
// off the provider request. Rejected submissions (blank text, request
// already in flight) leave everything unchanged. The input stays blurred
// until the reply lands.
func (c *ChatScreen) submit() (screen.Screen, tea.Cmd) {
	text := c.input.Value()
	if !c.assistant.Submit(text) {
		return c, nil
	}

	c.input.Reset()
	_ = c.input.SetEnabled(false)
	c.pinned = false

	question := strings.TrimSpace(text)
	assistant := c.assistant
	return c, tea.Batch(
		tickSpinner(),
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			return replyMsg{Result: assistant.Request(ctx, question)}
		},
	)
}

func (c *ChatScreen) View(width, height int) string {
	chatWidth := width - 12
	if chatWidth > 76 {
		chatWidth = 76
	}
	if chatWidth < 24 {
		chatWidth = 24
	}

	var lines []string
	for _, m := range c.assistant.Messages() {
		lines = append(lines, renderBubble(m, chatWidth)...)
		lines = append(lines, "")
	}

	if c.assistant.Awaiting() {
		typing := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render(spinnerFrames[c.spinnerFrame] + " Karsa sedang mengetik...")
		lines = append(lines, typing, "")
	}

	if c.toast.Visible() {
		lines = append(lines, strings.Split(c.toast.View(), "\n")...)
		lines = append(lines, "")
	}

	// Input row and its divider take three rows of the content area.
	visible := height - 3
	if visible < 1 {
		visible = 1
	}
	maxOffset := len(lines) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	// Scrolling back to the newest message re-enables auto-follow.
	if c.scrollOffset >= maxOffset {
		c.scrollOffset = maxOffset
		c.pinned = false
	}
	if !c.pinned {
		c.scrollOffset = maxOffset
	}
	end := c.scrollOffset + visible
	if end > len(lines) {
		end = len(lines)
	}

	transcript := strings.Join(lines[c.scrollOffset:end], "\n")

	divider := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", chatWidth))

	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Height(visible).Render(transcript),
		divider,
		c.input.View(),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, body)
}

// renderBubble renders one transcript message: assistant bubbles on the
// left, the learner's on the right.
func renderBubble(m chat.Message, chatWidth int) []string {
	bubbleWidth := chatWidth * 3 / 4
	textWidth := lipgloss.Width(m.Text)
	if textWidth > bubbleWidth {
		textWidth = bubbleWidth
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text).
		Padding(0, 1).
		Width(textWidth + 2)
	if m.Role == chat.RoleUser {
		style = style.BorderForeground(theme.Primary)
	}

	bubble := style.Render(m.Text)
	if m.Role == chat.RoleUser {
		bubble = lipgloss.PlaceHorizontal(chatWidth, lipgloss.Right, bubble)
	}

	return strings.Split(bubble, "\n")
}
