package quiz

import "github.com/nasywa/karsa/internal/content"

// NoSelection marks a question that has not been answered yet.
const NoSelection = -1

// Tier buckets the final percentage into encouragement levels.
type Tier int

const (
	TierGreat Tier = iota // >= 80%
	TierGood              // >= 60%
	TierKeep              // below 60%
)

// Session drives a linear pass over a fixed question list.
//
// States are InProgress(index) and Result. SubmitAnswer records a selection
// without leaving the current question; Advance moves forward or, from the
// last question, enters Result. Result is terminal until Reset.
type Session struct {
	questions []content.Question

	current  int
	selected int
	score    int
	answered []bool
	showing  bool // result flag
}

// NewSession creates a session over the given questions, at question 0.
func NewSession(questions []content.Question) *Session {
	return &Session{
		questions: questions,
		selected:  NoSelection,
		answered:  make([]bool, len(questions)),
	}
}

// SubmitAnswer records the selection for the current question. It reports
// whether the submission was accepted: a question that already has an answer
// locks further submissions until Reset.
func (s *Session) SubmitAnswer(optionIndex int) bool {
	if s.showing || s.answered[s.current] {
		return false
	}
	if optionIndex < 0 || optionIndex >= len(s.questions[s.current].Options) {
		return false
	}

	s.selected = optionIndex
	s.answered[s.current] = true
	if optionIndex == s.questions[s.current].Answer {
		s.score++
	}
	return true
}

// Advance moves to the next question, clearing the selection, or enters the
// result state when the last question has been shown. No-op once in Result.
func (s *Session) Advance() {
	if s.showing {
		return
	}
	if s.current < len(s.questions)-1 {
		s.current++
		s.selected = NoSelection
		return
	}
	s.showing = true
}

// Reset returns the session to its initial state.
func (s *Session) Reset() {
	s.current = 0
	s.selected = NoSelection
	s.score = 0
	s.answered = make([]bool, len(s.questions))
	s.showing = false
}

// Current returns the active question and its 0-based index.
func (s *Session) Current() (content.Question, int) {
	return s.questions[s.current], s.current
}

// Total returns the number of questions.
func (s *Session) Total() int { return len(s.questions) }

// Score returns the cumulative score.
func (s *Session) Score() int { return s.score }

// Selected returns the selection for the active question, or NoSelection.
func (s *Session) Selected() int { return s.selected }

// Answered reports whether the active question has been answered.
func (s *Session) Answered() bool { return s.answered[s.current] }

// LastCorrect reports whether the recorded selection matches the correct
// answer. Only meaningful when Answered is true.
func (s *Session) LastCorrect() bool {
	return s.selected == s.questions[s.current].Answer
}

// Finished reports whether the session has entered the result state.
func (s *Session) Finished() bool { return s.showing }

// Perfect reports whether every question was answered correctly.
func (s *Session) Perfect() bool { return s.score == len(s.questions) }

// Percentage returns the score as a whole percentage of the total.
func (s *Session) Percentage() int {
	if len(s.questions) == 0 {
		return 0
	}
	return s.score * 100 / len(s.questions)
}

// ResultTier buckets the final percentage. Bounds are inclusive on the lower
// edge of each tier.
func (s *Session) ResultTier() Tier {
	switch p := s.Percentage(); {
	case p >= 80:
		return TierGreat
	case p >= 60:
		return TierGood
	default:
		return TierKeep
	}
}
