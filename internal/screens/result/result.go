// Package result shows the quiz outcome: an encouragement tier for ordinary
// scores, and the full celebration for a perfect one, confetti included,
// with the certificate download.
package result

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nasywa/karsa/internal/celebration"
	"github.com/nasywa/karsa/internal/certificate"
	"github.com/nasywa/karsa/internal/quiz"
	"github.com/nasywa/karsa/internal/router"
	"github.com/nasywa/karsa/internal/screen"
	"github.com/nasywa/karsa/internal/ui/components"
	"github.com/nasywa/karsa/internal/ui/layout"
	"github.com/nasywa/karsa/internal/ui/theme"
)

const confettiTick = 50 * time.Millisecond

type confettiTickMsg time.Time

// certificateSavedMsg reports the outcome of the async certificate write.
type certificateSavedMsg struct {
	Path string
	Err  error
}

// ResultScreen implements screen.Screen for the quiz outcome.
type ResultScreen struct {
	session  *quiz.Session
	retry    func() screen.Screen
	confetti *celebration.Model
	toast    components.Toast
	saving   bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. retry produces a fresh quiz screen for the
// "Coba Lagi" action.
func New(session *quiz.Session, retry func() screen.Screen) *ResultScreen {
	return &ResultScreen{
		session:  session,
		retry:    retry,
		confetti: celebration.New(80, 20),
	}
}

func (r *ResultScreen) Init() tea.Cmd {
	if !r.session.Perfect() {
		return nil
	}
	r.confetti.Start()
	return tickConfetti()
}

func tickConfetti() tea.Cmd {
	return tea.Tick(confettiTick, func(t time.Time) tea.Msg {
		return confettiTickMsg(t)
	})
}

func (r *ResultScreen) Title() string {
	return "Hasil Kuis"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Coba Lagi"},
	}
	if r.session.Perfect() {
		hints = append(hints, layout.KeyHint{Key: "D", Description: "Unduh Sertifikat"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Kembali"})
	return hints
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case confettiTickMsg:
		r.confetti.Tick(confettiTick)
		if r.confetti.Active() {
			return r, tickConfetti()
		}
		return r, nil

	case certificateSavedMsg:
		r.saving = false
		if msg.Err != nil {
			return r, r.toast.Show("Gagal mengunduh sertifikat", "Silakan coba lagi", true)
		}
		return r, r.toast.Show("Sertifikat Berhasil Diunduh! 🎉", "Tersimpan di "+msg.Path, false)

	case components.ToastExpiredMsg:
		r.toast.Update(msg)
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			next := r.retry()
			return r, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: next}
			}
		case "d", "D":
			if r.session.Perfect() && !r.saving {
				return r, r.saveCertificate()
			}
		case "esc":
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return r, nil
}

func (r *ResultScreen) saveCertificate() tea.Cmd {
	r.saving = true
	cert := certificate.New(r.session.Score(), r.session.Total())
	return func() tea.Msg {
		path, err := cert.SavePNG("")
		return certificateSavedMsg{Path: path, Err: err}
	}
}

func (r *ResultScreen) View(width, height int) string {
	r.confetti.Resize(width, height)

	if r.session.Perfect() {
		return r.viewPerfect(width, height)
	}
	return r.viewOrdinary(width, height)
}

func (r *ResultScreen) viewOrdinary(width, height int) string {
	score := fmt.Sprintf("Skor Anda: %d dari %d (%d%%)",
		r.session.Score(), r.session.Total(), r.session.Percentage())

	var encouragement string
	switch r.session.ResultTier() {
	case quiz.TierGreat:
		encouragement = lipgloss.NewStyle().Foreground(theme.Success).
			Render("🎉 Luar biasa! Anda sangat memahami APBN!")
	case quiz.TierGood:
		encouragement = lipgloss.NewStyle().Foreground(theme.Primary).
			Render("👍 Bagus! Terus tingkatkan pemahaman Anda!")
	default:
		encouragement = lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("💪 Tetap semangat! Coba pelajari materinya lagi!")
	}

	card := theme.Card.Render(lipgloss.JoinVertical(lipgloss.Center,
		theme.Title.Render("Hasil Kuis"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Render(score),
		"",
		encouragement,
		"",
		components.NewButton("Coba Lagi", true, nil).View(),
	))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (r *ResultScreen) viewPerfect(width, height int) string {
	sections := []string{
		theme.Title.Render("Sempurna! 🌟"),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render(fmt.Sprintf("Skor: %d/%d (100%%)", r.session.Score(), r.session.Total())),
		"",
		lipgloss.NewStyle().Foreground(theme.Text).
			Render("🎉 Luar biasa sekali! Anda telah menguasai materi APBN dengan sempurna!"),
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Sebagai apresiasi, silakan unduh sertifikat pencapaian Anda di bawah ini."),
		"",
		components.NewButton("Unduh Sertifikat (D)", true, nil).View(),
	}

	if r.toast.Visible() {
		sections = append(sections, "", r.toast.View())
	}

	card := theme.Card.Render(lipgloss.JoinVertical(lipgloss.Center, sections...))
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)

	// Confetti renders behind the card: card rows replace confetti rows.
	if r.confetti.Active() {
		placed = overlayCenter(r.confetti.View(), placed)
	}
	return placed
}

// overlayCenter lays the foreground over the background, keeping background
// rows where the foreground row is blank.
func overlayCenter(background, foreground string) string {
	bg := splitLines(background)
	fg := splitLines(foreground)

	out := make([]string, 0, len(fg))
	for i, line := range fg {
		if isBlank(line) && i < len(bg) {
			out = append(out, bg[i])
		} else {
			out = append(out, line)
		}
	}
	return joinLines(out)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}
