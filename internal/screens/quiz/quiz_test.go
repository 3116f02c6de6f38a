package quiz

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/meera/lingua/internal/content"
	"github.com/meera/lingua/internal/gamification"
	"github.com/meera/lingua/internal/question"
	"github.com/meera/lingua/internal/screen"
	"github.com/meera/lingua/internal/session"
	"github.com/meera/lingua/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	submissions []store.SubmissionEventData
	hintEvents  []store.HintEventData
	sessions    []store.SessionEventData
}

func (m *mockEventRepo) AppendSubmission(_ context.Context, data store.SubmissionEventData) error {
	m.submissions = append(m.submissions, data)
	return nil
}
func (m *mockEventRepo) AppendHint(_ context.Context, data store.HintEventData) error {
	m.hintEvents = append(m.hintEvents, data)
	return nil
}
func (m *mockEventRepo) AppendActivity(_ context.Context, _ store.ActivityEventData) error {
	return nil
}
func (m *mockEventRepo) AppendSession(_ context.Context, data store.SessionEventData) error {
	m.sessions = append(m.sessions, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) VariantBreakdown(_ context.Context) ([]store.VariantStats, error) {
	return nil, nil
}
func (m *mockEventRepo) TotalPoints(_ context.Context) (int, error) {
	return 0, nil
}
func (m *mockEventRepo) RecentRuns(_ context.Context, _ store.QueryOpts) ([]store.RunSummary, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func mcQuestion(id string) question.Question {
	return question.Question{
		ID:          id,
		Variant:     question.MultipleChoice,
		Prompt:      "Which article goes with 'Hund'?",
		Options:     []string{"der", "die", "das"},
		AnswerKey:   "der",
		PointValue:  10,
		Explanation: "Hund is masculine.",
	}
}

func newTestScreen(qs ...question.Question) (*QuizScreen, *mockEventRepo) {
	repo := &mockEventRepo{}
	s := New(Deps{
		Deck:      content.NewDeck(qs),
		EventRepo: repo,
		Gamify:    gamification.NewService(repo, "test-run"),
		RunID:     "test-run",
	})
	s.Init()
	return s, repo
}

func TestQuiz_CorrectAnswerFlow(t *testing.T) {
	s, repo := newTestScreen(mcQuestion("q1"))

	// Cursor starts on "der", which is correct.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)

	if qs.phase != phaseFeedback {
		t.Fatalf("phase = %v, want feedback", qs.phase)
	}
	if qs.feedback.Tier != session.TierCorrect {
		t.Errorf("feedback tier = %v, want correct", qs.feedback.Tier)
	}
	if len(repo.submissions) != 1 || !repo.submissions[0].Correct {
		t.Fatalf("expected one correct submission event, got %+v", repo.submissions)
	}

	// Any key advances; deck is empty so the run ends.
	scr, _ = qs.Update(keyPress(' '))
	qs = scr.(*QuizScreen)

	if qs.phase != phaseSummary {
		t.Fatalf("phase = %v, want summary", qs.phase)
	}
	if qs.served != 1 || qs.correct != 1 {
		t.Errorf("totals = %d served / %d correct, want 1/1", qs.served, qs.correct)
	}

	// Start and end events were recorded.
	if len(repo.sessions) != 2 || repo.sessions[0].Action != "start" || repo.sessions[1].Action != "end" {
		t.Fatalf("unexpected session events: %+v", repo.sessions)
	}
	if repo.sessions[1].CorrectAnswers != 1 {
		t.Errorf("end event correct answers = %d, want 1", repo.sessions[1].CorrectAnswers)
	}
}

func TestQuiz_IncorrectThenRetry(t *testing.T) {
	s, _ := newTestScreen(mcQuestion("q1"))

	// Move to "die" (wrong) and submit.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)

	if qs.phase != phaseFeedback {
		t.Fatalf("phase = %v, want feedback", qs.phase)
	}
	if !qs.retriable() {
		t.Fatal("expected a retriable state after first wrong attempt")
	}

	// Enter retries.
	scr, _ = qs.Update(specialKey(tea.KeyEnter))
	qs = scr.(*QuizScreen)

	if qs.phase != phaseAnswering {
		t.Fatalf("phase = %v, want answering after retry", qs.phase)
	}
	if qs.sess.Attempts() != 1 {
		t.Errorf("attempts = %d, want 1 preserved across retry", qs.sess.Attempts())
	}
}

func TestQuiz_HintRevealRecordsEvent(t *testing.T) {
	s, repo := newTestScreen(mcQuestion("q1"))

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('h'))
	qs := scr.(*QuizScreen)

	revealed := qs.sess.RevealedHints()
	if len(revealed) != 1 {
		t.Fatalf("revealed hints = %d, want 1", len(revealed))
	}
	if revealed[0].Tier != question.TierGentle {
		t.Errorf("first reveal tier = %v, want gentle", revealed[0].Tier)
	}
	if len(repo.hintEvents) != 1 || repo.hintEvents[0].QuestionID != "q1" {
		t.Fatalf("expected one hint event, got %+v", repo.hintEvents)
	}
}

func TestQuiz_FillBlankSubmit(t *testing.T) {
	q := question.Question{
		ID:           "fb1",
		Variant:      question.FillBlank,
		Prompt:       "___ chat mange ___ souris.",
		AnswerKey:    "le|la,une",
		PointValue:   12,
		AllowPartial: true,
	}
	s, repo := newTestScreen(q)

	s.input.Model.SetValue("le, la")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)

	if qs.phase != phaseFeedback {
		t.Fatalf("phase = %v, want feedback", qs.phase)
	}
	if len(repo.submissions) != 1 || !repo.submissions[0].Correct {
		t.Fatalf("expected a correct submission, got %+v", repo.submissions)
	}
}

func TestQuiz_DragDropBoardFlow(t *testing.T) {
	q := question.Question{
		ID:           "dd1",
		Variant:      question.DragDrop,
		Prompt:       "Match the articles.",
		Targets:      []string{"Hund", "Katze"},
		Items:        []string{"der", "die"},
		AnswerKey:    "Hund:der|Katze:die",
		PointValue:   15,
		AllowPartial: true,
	}
	s, repo := newTestScreen(q)

	// Place "der" on Hund, then "die" on Katze.
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)

	if qs.phase != phaseFeedback {
		t.Fatalf("phase = %v, want feedback after the board fills", qs.phase)
	}
	if len(repo.submissions) != 1 || !repo.submissions[0].Correct {
		t.Fatalf("expected a correct submission, got %+v", repo.submissions)
	}
}

func TestQuiz_ImageSingleSubmit(t *testing.T) {
	q := question.Question{
		ID:         "im1",
		Variant:    question.ImageBased,
		Prompt:     "Which picture shows 'der Apfel'?",
		Regions:    []string{"r1", "r2", "r3"},
		Mode:       question.RegionSingle,
		AnswerKey:  "r2",
		PointValue: 8,
	}
	s, repo := newTestScreen(q)

	// Move the cursor to r2 and submit.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)

	if qs.phase != phaseFeedback {
		t.Fatalf("phase = %v, want feedback", qs.phase)
	}
	if qs.feedback.Tier != session.TierCorrect {
		t.Errorf("feedback tier = %v, want correct", qs.feedback.Tier)
	}
	if len(repo.submissions) != 1 || !repo.submissions[0].Correct {
		t.Fatalf("expected a correct submission, got %+v", repo.submissions)
	}
}

func TestQuiz_ImageMultiToggleSubmit(t *testing.T) {
	q := question.Question{
		ID:           "im2",
		Variant:      question.ImageBased,
		Prompt:       "Select every animal.",
		Regions:      []string{"r1", "r2", "r3"},
		Mode:         question.RegionMulti,
		AnswerKey:    "r1,r3",
		PointValue:   10,
		AllowPartial: true,
	}
	s, repo := newTestScreen(q)

	// Toggle r1, move to r3, toggle it, submit.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress(' '))
	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(keyPress(' '))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)

	if qs.phase != phaseFeedback {
		t.Fatalf("phase = %v, want feedback", qs.phase)
	}
	if len(repo.submissions) != 1 || !repo.submissions[0].Correct {
		t.Fatalf("expected a correct submission, got %+v", repo.submissions)
	}
}

func TestQuiz_ImageMultiSwappedRegionScoresZero(t *testing.T) {
	q := question.Question{
		ID:           "im3",
		Variant:      question.ImageBased,
		Prompt:       "Select every animal.",
		Regions:      []string{"r1", "r2", "r3"},
		Mode:         question.RegionMulti,
		AnswerKey:    "r1,r3",
		PointValue:   10,
		AllowPartial: true,
	}
	s, repo := newTestScreen(q)

	// Toggle r1 and r2: one right, one outside the accepted set.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress(' '))
	scr, _ = scr.Update(keyPress('j'))
	scr, _ = scr.Update(keyPress(' '))
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)

	if qs.phase != phaseFeedback {
		t.Fatalf("phase = %v, want feedback", qs.phase)
	}
	if len(repo.submissions) != 1 {
		t.Fatalf("expected one submission, got %+v", repo.submissions)
	}
	sub := repo.submissions[0]
	if sub.Correct || sub.MatchRatio != 0 || sub.Score != 0 {
		t.Errorf("wrong selection must earn nothing, got %+v", sub)
	}
}

func TestQuiz_QuitConfirm(t *testing.T) {
	s, repo := newTestScreen(mcQuestion("q1"), mcQuestion("q2"))

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	qs := scr.(*QuizScreen)
	if !qs.quitConfirm {
		t.Fatal("expected quit confirmation after esc")
	}

	// N keeps going.
	scr, _ = qs.Update(keyPress('n'))
	qs = scr.(*QuizScreen)
	if qs.quitConfirm {
		t.Fatal("expected quit confirmation dismissed")
	}

	// Esc then Y ends the run.
	scr, _ = qs.Update(specialKey(tea.KeyEscape))
	qs = scr.(*QuizScreen)
	scr, cmd := qs.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	scr, _ = scr.Update(cmd())
	qs = scr.(*QuizScreen)

	if qs.phase != phaseSummary {
		t.Fatalf("phase = %v, want summary after early quit", qs.phase)
	}
	last := repo.sessions[len(repo.sessions)-1]
	if last.Action != "end" {
		t.Fatalf("expected an end event, got %+v", last)
	}
}

func TestQuiz_KeyHintsNonEmpty(t *testing.T) {
	s, _ := newTestScreen(mcQuestion("q1"))
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
	if s.Title() != "Practice" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestQuiz_ViewRenders(t *testing.T) {
	s, _ := newTestScreen(mcQuestion("q1"))
	if s.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	qs := scr.(*QuizScreen)
	if qs.View(80, 24) == "" {
		t.Error("expected non-empty feedback view")
	}
}
