// Package quizscreen drives a quiz session: five multiple-choice questions,
// locked answers with explanations, sound cues, and the final hand-off to
// the result screen.
package quizscreen

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nasywa/karsa/internal/audio"
	"github.com/nasywa/karsa/internal/content"
	"github.com/nasywa/karsa/internal/quiz"
	"github.com/nasywa/karsa/internal/router"
	"github.com/nasywa/karsa/internal/screen"
	"github.com/nasywa/karsa/internal/screens/result"
	"github.com/nasywa/karsa/internal/ui/components"
	"github.com/nasywa/karsa/internal/ui/layout"
	"github.com/nasywa/karsa/internal/ui/theme"
)

// QuizScreen implements screen.Screen for the running quiz.
type QuizScreen struct {
	session *quiz.Session
	choice  components.MultiChoice
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over the given questions.
func New(questions []content.Question) *QuizScreen {
	s := &QuizScreen{session: quiz.NewSession(questions)}
	s.loadQuestion()
	return s
}

func (s *QuizScreen) loadQuestion() {
	q, _ := s.session.Current()
	s.choice = components.NewMultiChoice(q.Prompt, q.Options, q.Answer)
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Kuis APBN"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.session.Answered() {
		label := "Pertanyaan berikutnya"
		if s.onLastQuestion() {
			label = "Lihat hasil"
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: label},
			{Key: "Esc", Description: "Kembali"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Jawab"},
		{Key: "↑↓ Enter", Description: "Pilih"},
		{Key: "Esc", Description: "Kembali"},
	}
}

func (s *QuizScreen) onLastQuestion() bool {
	_, idx := s.session.Current()
	return idx == s.session.Total()-1
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.session.Answered() {
		if kmsg.String() == "enter" {
			return s.advance()
		}
		return s, nil
	}

	wasSubmitted := s.choice.Submitted
	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if !wasSubmitted && s.choice.Submitted {
		return s.lockAnswer()
	}
	return s, cmd
}

// lockAnswer records the submitted option and fires the matching sound cue.
func (s *QuizScreen) lockAnswer() (screen.Screen, tea.Cmd) {
	if !s.session.SubmitAnswer(s.choice.ChosenIndex) {
		return s, nil
	}

	correct := s.session.LastCorrect()
	return s, func() tea.Msg {
		if correct {
			audio.PlayCorrect()
		} else {
			audio.PlayWrong()
		}
		return nil
	}
}

func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	last := s.onLastQuestion()
	s.session.Advance()

	if last {
		session := s.session
		res := result.New(session, func() screen.Screen {
			session.Reset()
			retry := &QuizScreen{session: session}
			retry.loadQuestion()
			return retry
		})
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: res}
		}
	}

	s.loadQuestion()
	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	_, idx := s.session.Current()

	contentWidth := width - 16
	if contentWidth > 72 {
		contentWidth = 72
	}
	if contentWidth < 30 {
		contentWidth = 30
	}
	s.choice.Width = contentWidth

	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Pertanyaan %d dari %d", idx+1, s.session.Total()))

	bar := components.NewProgressBar("", float64(idx)/float64(s.session.Total()), false, contentWidth)

	sections := []string{
		counter,
		bar.View(),
		"",
		s.choice.View(),
	}

	if s.session.Answered() {
		q, _ := s.session.Current()

		var verdict string
		if s.session.LastCorrect() {
			verdict = theme.Correct.Render("Benar!")
		} else {
			verdict = theme.Incorrect.Render("Belum tepat.")
		}
		sections = append(sections, verdict)

		explanation := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(contentWidth).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1).
			Render(q.Explanation)
		sections = append(sections, explanation)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
