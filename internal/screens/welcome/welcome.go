package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nasywa/karsa/internal/audio"
	"github.com/nasywa/karsa/internal/router"
	"github.com/nasywa/karsa/internal/screen"
	"github.com/nasywa/karsa/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 400 * time.Millisecond
	phase2End    = 1200 * time.Millisecond
)

const emblemArt = `      ✧
   ╭─────╮
  ╱ ░░░░░ ╲
 │  ░ Rp ░  │
  ╲ ░░░░░ ╱
   ╰─────╯
      ✧`

// sparkle frames cycle around the emblem
var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen shows the hero splash before transitioning to the home
// screen. The first keypress also starts the ambient music, so sound never
// plays before the learner interacts.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		w.elapsed += tickInterval
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		// Only transition once the full splash has played.
		if w.elapsed >= phase2End {
			return w, w.transition()
		}
		return w, nil
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return tea.Batch(
		func() tea.Msg { return audio.StartAmbientMsg{} },
		func() tea.Msg { return router.ReplaceScreenMsg{Screen: homeScreen} },
	)
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	emblemStyle := lipgloss.NewStyle().Foreground(theme.Primary)

	// Phase 1+: emblem
	rendered := emblemStyle.Render(emblemArt)

	// Phase 2+: sparkles around emblem
	if w.elapsed >= phase1End {
		frame := w.tickCount % len(sparkleFrames)
		sparkle := sparkleFrames[frame]

		accentStyle := lipgloss.NewStyle().Foreground(theme.Accent)
		secondaryStyle := lipgloss.NewStyle().Foreground(theme.Secondary)

		s1 := accentStyle.Render(sparkle)
		s2 := secondaryStyle.Render(sparkle)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[1] = s1 + "  " + lines[1] + "  " + s2
		}
		if len(lines) > 3 {
			lines[3] = s2 + "  " + lines[3] + "  " + s1
		}
		if len(lines) > 5 {
			lines[5] = s1 + "  " + lines[5] + "  " + s2
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	// Phase 3+: title + tagline + start hint
	if w.elapsed >= phase2End {
		sections = append(sections, "")

		title := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Belajar APBN bersama ") +
			lipgloss.NewStyle().
				Foreground(theme.Accent).
				Bold(true).
				Render("Karsa")
		sections = append(sections, title)
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Pelajari Anggaran Pendapatan dan Belanja Negara\ndengan cara yang interaktif dan menenangkan")
		sections = append(sections, tagline)

		sections = append(sections, "")
		hint := theme.Hint.Render("✦ tekan tombol apa saja untuk Mulai Belajar ✦")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
