package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nasywa/karsa/internal/chat"
	"github.com/nasywa/karsa/internal/content"
	"github.com/nasywa/karsa/internal/router"
	"github.com/nasywa/karsa/internal/screen"
	"github.com/nasywa/karsa/internal/screens/chatscreen"
	"github.com/nasywa/karsa/internal/screens/materials"
	"github.com/nasywa/karsa/internal/screens/quizscreen"
	"github.com/nasywa/karsa/internal/ui/components"
	"github.com/nasywa/karsa/internal/ui/theme"
)

// HomeScreen is the main navigation screen of the application.
type HomeScreen struct {
	menu      components.Menu
	catalog   *content.Catalog
	assistant *chat.Assistant
	loadErr   error
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. The assistant is shared across visits to the
// chat screen so the transcript survives navigation.
func New(assistant *chat.Assistant) *HomeScreen {
	catalog, err := content.Load()

	items := []components.MenuItem{
		{
			Label: "Materi Pembelajaran",
			Desc:  "Pilih topik yang ingin kamu pelajari",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: materials.New(catalog)}
				}
			},
			Disabled: err != nil,
		},
		{
			Label: "Uji Pemahaman",
			Desc:  "Seberapa paham kamu tentang APBN? Coba kuis ini!",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: quizscreen.New(catalog.Questions)}
				}
			},
			Disabled: err != nil,
		},
		{
			Label: "Tanya Karsa",
			Desc:  "Ngobrol dengan teman belajarmu",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: chatscreen.New(assistant)}
				}
			},
		},
		{
			Label: "Keluar",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		catalog:   catalog,
		assistant: assistant,
		loadErr:   err,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return h, tea.Quit
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render("Belajar APBN bersama Karsa")
	sections = append(sections, title)

	subtitle := theme.Subtitle.Render("Anggaran Pendapatan dan Belanja Negara, dijelaskan dengan santai")
	sections = append(sections, subtitle, "")

	if h.loadErr != nil {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("Materi tidak dapat dimuat: "+h.loadErr.Error()), "")
	}

	sections = append(sections, h.menu.View())

	footer := theme.Hint.Render("Dibuat oleh Nasywa Aura Adiba")
	sections = append(sections, footer)

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	card := theme.Card.Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.TrimRight(card, "\n"))
}

func (h *HomeScreen) Title() string {
	return "Beranda"
}
