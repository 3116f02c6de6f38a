package quiz

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/meera/lingua/internal/content"
	"github.com/meera/lingua/internal/gamification"
	"github.com/meera/lingua/internal/hints"
	"github.com/meera/lingua/internal/question"
	"github.com/meera/lingua/internal/router"
	"github.com/meera/lingua/internal/screen"
	"github.com/meera/lingua/internal/session"
	"github.com/meera/lingua/internal/store"
	"github.com/meera/lingua/internal/ui/components"
	"github.com/meera/lingua/internal/ui/layout"
)

type phase int

const (
	phaseAnswering phase = iota
	phaseFeedback
	phaseSummary
)

// Deps carries the collaborators a quiz run needs. EventRepo, Gamify and
// Hints may each be nil; the run degrades gracefully without them.
type Deps struct {
	Deck      *content.Deck
	EventRepo store.EventRepo
	Gamify    *gamification.Service
	Hints     *hints.Service
	RunID     string
}

// QuizScreen drives one practice run: one engine session per question.
type QuizScreen struct {
	deps Deps

	phase       phase
	quitConfirm bool
	startedAt   time.Time

	// Current question state.
	q          question.Question
	sess       *session.Session
	choice     components.Choice
	input      components.TextInput
	placements map[string]string
	targetIdx  int
	aiHints    map[question.HintTier]string

	feedback  session.Feedback
	milestone string

	// Run totals.
	served  int
	correct int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.TotalsProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over the given deck.
func New(deps Deps) *QuizScreen {
	return &QuizScreen{deps: deps, startedAt: time.Now()}
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.deps.EventRepo != nil {
		_ = s.deps.EventRepo.AppendSession(context.Background(), store.SessionEventData{
			RunID:  s.deps.RunID,
			Action: "start",
		})
	}
	if !s.nextQuestion() {
		s.phase = phaseSummary
		return nil
	}
	return tickCmd()
}

func (s *QuizScreen) Title() string {
	return "Practice"
}

func (s *QuizScreen) Totals() (int, int) {
	if s.deps.Gamify == nil {
		return 0, 0
	}
	return s.deps.Gamify.PointsEarned, s.deps.Gamify.Streak
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End run"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.phase {
	case phaseFeedback:
		if s.retriable() {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Try again"},
				{Key: "H", Description: "Hint"},
				{Key: "S", Description: "Skip"},
			}
		}
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case phaseSummary:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "H", Description: "Hint"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()

	case runEndMsg:
		return s.endRun()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Non-key messages (blink, paste) still reach the text input.
	if s.phase == phaseAnswering && s.usesTextInput() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *QuizScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.phase == phaseSummary {
		return s, nil
	}

	// AI hints arrive asynchronously; swap in the texts once ready.
	if s.deps.Hints != nil {
		if specs, ok := s.deps.Hints.ConsumeHints(s.q.ID); ok {
			for _, h := range specs {
				if h.Text != "" {
					s.aiHints[h.Tier] = h.Text
				}
			}
		}
	}

	// The countdown fires inside the session; the tick only discovers it.
	if s.phase == phaseAnswering && s.sess != nil {
		if res := s.sess.LastResult(); res != nil && res.TimedOut {
			s.persistSubmission(res)
			s.enterFeedback()
		}
	}

	return s, tickCmd()
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, func() tea.Msg { return runEndMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	switch s.phase {
	case phaseSummary:
		return s, router.Pop()

	case phaseFeedback:
		return s.handleFeedbackKey(key)

	case phaseAnswering:
		return s.handleAnswerKey(msg, key)
	}

	return s, nil
}

func (s *QuizScreen) handleFeedbackKey(key string) (screen.Screen, tea.Cmd) {
	if s.retriable() {
		switch key {
		case "enter", "r":
			if s.sess.Retry() {
				s.resetInputs()
				s.phase = phaseAnswering
			}
			return s, nil
		case "h":
			s.revealNextHint()
			if s.sess.Retry() {
				s.resetInputs()
				s.phase = phaseAnswering
			}
			return s, nil
		case "s":
			return s.advance()
		}
		return s, nil
	}

	// Terminal feedback: any key advances.
	return s.advance()
}

func (s *QuizScreen) handleAnswerKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc":
		s.quitConfirm = true
		return s, nil
	case "enter":
		return s.submit()
	}

	switch s.q.Variant {
	case question.MultipleChoice, question.ImageBased:
		s.choice = s.choice.Update(msg)
		s.syncDraft()

	case question.DragDrop:
		if key == "backspace" && s.targetIdx > 0 {
			s.targetIdx--
			delete(s.placements, s.q.Targets[s.targetIdx])
			s.syncDraft()
			return s, nil
		}
		s.choice = s.choice.Update(msg)

	case question.FillBlank, question.TextInput:
		if key == "h" && s.input.Value() == "" {
			// Bare 'h' on an empty input asks for a hint.
			s.revealNextHint()
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		s.syncDraft()
		return s, cmd
	}

	if key == "h" {
		s.revealNextHint()
	}
	return s, nil
}

// submit builds the candidate answer for the current variant and grades it.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	var candidate question.Answer

	switch s.q.Variant {
	case question.MultipleChoice:
		candidate = question.Text(s.choice.Selected())

	case question.FillBlank:
		if strings.TrimSpace(s.input.Value()) == "" {
			return s, nil
		}
		candidate = question.Blanks(splitBlanks(s.input.Value()))

	case question.DragDrop:
		// Enter places the selected item until the board is full.
		if s.targetIdx < len(s.q.Targets) {
			s.placements[s.q.Targets[s.targetIdx]] = s.choice.Selected()
			s.targetIdx++
			s.syncDraft()
			if s.targetIdx < len(s.q.Targets) {
				return s, nil
			}
		}
		candidate = question.Placements(s.placements)

	case question.TextInput:
		if strings.TrimSpace(s.input.Value()) == "" {
			return s, nil
		}
		candidate = question.Text(s.input.Value())

	case question.ImageBased:
		if s.q.Mode == question.RegionMulti {
			toggled := s.choice.Toggled()
			if len(toggled) == 0 {
				return s, nil
			}
			candidate = question.Regions(toggled)
		} else {
			candidate = question.Regions([]string{s.choice.Selected()})
		}
	}

	res := s.sess.Submit(candidate)
	if res == nil {
		return s, nil
	}

	s.persistSubmission(res)
	s.enterFeedback()
	return s, nil
}

func (s *QuizScreen) enterFeedback() {
	s.feedback = s.sess.Compose(session.ComposeOptions{})
	s.milestone = ""
	if s.deps.Gamify != nil {
		s.milestone = s.deps.Gamify.StreakMilestone()
	}
	s.phase = phaseFeedback
}

// retriable reports whether the learner may try the question again.
func (s *QuizScreen) retriable() bool {
	if s.sess == nil {
		return false
	}
	res := s.sess.LastResult()
	return res != nil && !res.IsCorrect && s.sess.Status() == session.StatusActive
}

// advance closes the current session and deals the next question.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	if res := s.sess.LastResult(); res != nil {
		s.served++
		if res.IsCorrect {
			s.correct++
		}
	}
	s.sess.Close()

	if !s.nextQuestion() {
		return s.endRun()
	}
	s.phase = phaseAnswering
	return s, nil
}

// nextQuestion deals from the deck and builds a fresh engine session.
func (s *QuizScreen) nextQuestion() bool {
	q, ok := s.deps.Deck.Next()
	if !ok {
		return false
	}

	if len(q.Hints) == 0 {
		q.Hints = question.GenerateHints(&q)
	}

	s.q = q
	s.aiHints = make(map[question.HintTier]string)
	s.placements = make(map[string]string)
	s.targetIdx = 0

	opts := []session.Option{session.WithScheduler(session.WallScheduler{})}
	if s.deps.Gamify != nil {
		opts = append(opts, session.WithObserver(s.deps.Gamify))
	}
	s.sess = session.New(&s.q, opts...)

	s.resetInputs()

	if s.deps.Hints != nil {
		s.deps.Hints.RequestHints(context.Background(), s.q)
	}
	return true
}

// resetInputs rebuilds the input widgets for the current question.
func (s *QuizScreen) resetInputs() {
	switch s.q.Variant {
	case question.MultipleChoice:
		s.choice = components.NewChoice(s.q.Options)
	case question.DragDrop:
		s.choice = components.NewChoice(s.q.Items)
		s.placements = make(map[string]string)
		s.targetIdx = 0
	case question.ImageBased:
		if s.q.Mode == question.RegionMulti {
			s.choice = components.NewMultiChoice(s.q.Regions)
		} else {
			s.choice = components.NewChoice(s.q.Regions)
		}
	case question.FillBlank:
		s.input = components.NewTextInput(fillBlankPlaceholder(&s.q), 120)
	case question.TextInput:
		s.input = components.NewTextInput("Type your answer...", 200)
	}
}

// syncDraft keeps the session's draft current so a timeout grades
// whatever the learner had in progress.
func (s *QuizScreen) syncDraft() {
	switch s.q.Variant {
	case question.MultipleChoice:
		s.sess.SetDraft(question.Text(s.choice.Selected()))
	case question.FillBlank:
		s.sess.SetDraft(question.Blanks(splitBlanks(s.input.Value())))
	case question.DragDrop:
		draft := make(map[string]string, len(s.placements))
		for k, v := range s.placements {
			draft[k] = v
		}
		s.sess.SetDraft(question.Placements(draft))
	case question.TextInput:
		s.sess.SetDraft(question.Text(s.input.Value()))
	case question.ImageBased:
		if s.q.Mode == question.RegionMulti {
			s.sess.SetDraft(question.Regions(s.choice.Toggled()))
		} else {
			s.sess.SetDraft(question.Regions([]string{s.choice.Selected()}))
		}
	}
}

// revealNextHint reveals the cheapest unrevealed hint and records it.
func (s *QuizScreen) revealNextHint() {
	avail := s.sess.AvailableHints()
	if len(avail) == 0 {
		return
	}
	h := avail[0]
	if s.sess.RevealHint(h.ID) != session.Revealed {
		return
	}
	if s.deps.EventRepo != nil {
		_ = s.deps.EventRepo.AppendHint(context.Background(), store.HintEventData{
			RunID:      s.deps.RunID,
			QuestionID: s.q.ID,
			HintID:     h.ID,
			Tier:       string(h.Tier),
			Cost:       h.Cost,
		})
	}
}

func (s *QuizScreen) persistSubmission(res *session.SubmissionResult) {
	if s.deps.EventRepo == nil {
		return
	}
	_ = s.deps.EventRepo.AppendSubmission(context.Background(), store.SubmissionEventData{
		RunID:        s.deps.RunID,
		QuestionID:   res.QuestionID,
		Variant:      string(res.Variant),
		Correct:      res.IsCorrect,
		MatchRatio:   res.Ratio,
		Score:        res.Score,
		ElapsedMs:    res.ElapsedMs,
		AttemptsUsed: res.AttemptsUsed,
		HintsUsed:    res.HintsUsed,
		TimedOut:     res.TimedOut,
	})
}

func (s *QuizScreen) endRun() (screen.Screen, tea.Cmd) {
	// Count an unresolved final question if it was actually graded.
	if s.sess != nil && s.phase != phaseSummary {
		s.sess.Close()
	}

	if s.deps.EventRepo != nil {
		points := 0
		if s.deps.Gamify != nil {
			points = s.deps.Gamify.PointsEarned
		}
		_ = s.deps.EventRepo.AppendSession(context.Background(), store.SessionEventData{
			RunID:           s.deps.RunID,
			Action:          "end",
			QuestionsServed: s.served,
			CorrectAnswers:  s.correct,
			PointsEarned:    points,
			DurationSecs:    int(time.Since(s.startedAt).Seconds()),
		})
	}

	s.phase = phaseSummary
	return s, nil
}

// usesTextInput reports whether the current variant types into a field.
func (s *QuizScreen) usesTextInput() bool {
	return s.q.Variant == question.FillBlank || s.q.Variant == question.TextInput
}

// splitBlanks turns "le, chat" into the per-blank candidate list.
func splitBlanks(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
