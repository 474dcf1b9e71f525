// Package progression tracks per-exercise session state: attempts, hint
// reveals and completion, with variant-specific partial-credit scoring for
// the structured exercise kinds (sequence, match, categorize).
package progression

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/learnloop/engine/internal/domain"
)

// Session is the mutable state for one mounted exercise instance. It is
// owned by exactly one exercise at a time; the engine never shares it
// across callers, so no locking is needed.
type Session struct {
	ID            string                 `json:"id"`
	Kind          domain.ExerciseKind    `json:"kind"`
	Skill         domain.SkillLevel      `json:"skill"`
	Attempts      int                    `json:"attempts"`
	HintsRevealed int                    `json:"hints_revealed"`
	Completed     bool                   `json:"completed"`
	LastFeedback  []domain.FeedbackIssue `json:"last_feedback,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`

	key    domain.AnswerKey
	hints  []string
	logger *slog.Logger
}

// NewSession creates session state for a freshly mounted exercise.
// A nil logger falls back to the default slog logger.
func NewSession(kind domain.ExerciseKind, skill domain.SkillLevel, key domain.AnswerKey, hints []string, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	now := time.Now()
	return &Session{
		ID:        uuid.New().String(),
		Kind:      kind,
		Skill:     skill,
		CreatedAt: now,
		UpdatedAt: now,
		key:       key,
		hints:     hints,
		logger:    logger,
	}
}

// Submit scores a candidate answer. Attempts increments exactly once per
// call regardless of outcome. A fully correct answer transitions the
// session to completed and returns no issues; anything else leaves the
// session active with a single warning summarizing the partial score.
// Completion is monotonic: once completed, only Reset clears it.
func (s *Session) Submit(answer Answer) []domain.FeedbackIssue {
	s.Attempts++
	s.UpdatedAt = time.Now()

	correct, total := Score(answer, s.key)
	if total == 0 {
		// Authoring fault: missing or mismatched answer key. Logged for
		// operators, never surfaced to the learner as their error.
		s.logger.Error("exercise is unscoreable",
			"session_id", s.ID,
			"kind", s.Kind,
			"err", domain.ErrNoAnswerKey)
		s.LastFeedback = []domain.FeedbackIssue{{
			Kind:    domain.KindWarning,
			Message: "This exercise can't be scored right now.",
		}}
		return s.LastFeedback
	}

	if correct == total {
		s.Completed = true
		s.LastFeedback = nil
		return nil
	}

	issue := domain.FeedbackIssue{
		Kind:    domain.KindWarning,
		Message: fmt.Sprintf("%d of %d correct", correct, total),
	}
	if s.HintsRevealed > 0 && len(s.hints) > 0 {
		idx := s.HintsRevealed - 1
		if idx >= len(s.hints) {
			idx = len(s.hints) - 1
		}
		issue.Hint = s.hints[idx]
	}
	s.LastFeedback = []domain.FeedbackIssue{issue}
	return s.LastFeedback
}

// RevealHint reveals the next hint, clamped at the skill's hint budget.
// Calls past the ceiling are no-ops, so a jittery UI cannot overrun it.
func (s *Session) RevealHint() {
	maxHints := domain.ProfileFor(s.Skill).MaxHints
	if len(s.hints) < maxHints {
		maxHints = len(s.hints)
	}
	if s.HintsRevealed >= maxHints {
		return
	}
	s.HintsRevealed++
	s.UpdatedAt = time.Now()
}

// RevealedHints returns the hints revealed so far, in order
func (s *Session) RevealedHints() []string {
	if s.HintsRevealed > len(s.hints) {
		return s.hints
	}
	return s.hints[:s.HintsRevealed]
}

// Reset returns the session to a fresh active state. Reshuffling the
// presented items is the caller's job, not the engine's.
func (s *Session) Reset() {
	s.Attempts = 0
	s.HintsRevealed = 0
	s.Completed = false
	s.LastFeedback = nil
	s.UpdatedAt = time.Now()
}
