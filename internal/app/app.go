package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nasywa/karsa/internal/audio"
	"github.com/nasywa/karsa/internal/chat"
	"github.com/nasywa/karsa/internal/llm"
	"github.com/nasywa/karsa/internal/router"
	"github.com/nasywa/karsa/internal/screen"
	"github.com/nasywa/karsa/internal/screens/home"
	"github.com/nasywa/karsa/internal/screens/welcome"
	"github.com/nasywa/karsa/internal/ui/layout"
)

// Options carries the dependencies the TUI needs. A nil LLMProvider is
// allowed: the chat then answers every question with its fallback message.
type Options struct {
	LLMProvider llm.Provider
	Ambient     *audio.Player
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	ambient *audio.Player
	width   int
	height  int
}

// newAppModel creates an AppModel starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	assistant := chat.New(opts.LLMProvider)
	welcomeScreen := welcome.New(func() screen.Screen {
		return home.New(assistant)
	})

	ambient := opts.Ambient
	if ambient == nil {
		ambient = audio.NewPlayer("")
	}

	return AppModel{
		router:  router.New(welcomeScreen),
		ambient: ambient,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case audio.StartAmbientMsg:
		m.ambient.Start()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.ambient.Close()
			return m, tea.Quit
		case "m", "M":
			// The music toggle yields to screens that capture typing.
			if !m.activeCapturesInput() {
				m.ambient.ToggleMute()
				return m, nil
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) activeCapturesInput() bool {
	if capturer, ok := m.router.Active().(screen.InputCapturer); ok {
		return capturer.CapturingInput()
	}
	return false
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The welcome splash renders without header or footer.
	if m.router.Depth() == 1 && title == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(title, m.ambient.Muted(), m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Kembali"},
			{Key: "Ctrl+C", Description: "Keluar"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Pilih"},
			{Key: "Enter", Description: "Buka"},
			{Key: "Ctrl+C", Description: "Keluar"},
		}
	}
	if !m.activeCapturesInput() {
		footerHints = append(footerHints, layout.KeyHint{Key: "M", Description: "Musik"})
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
