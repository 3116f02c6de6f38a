package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meera/lingua/internal/question"
)

// fakeScheduler captures the scheduled callback so tests can fire the
// timeout on demand.
type fakeScheduler struct {
	fn        func()
	delay     time.Duration
	cancelled bool
}

func (f *fakeScheduler) Schedule(d time.Duration, fn func()) func() {
	f.fn = fn
	f.delay = d
	return func() { f.cancelled = true }
}

func (f *fakeScheduler) fire() {
	if f.fn != nil && !f.cancelled {
		f.fn()
	}
}

// fixedClock is a settable time source.
type fixedClock struct{ t time.Time }

func (c *fixedClock) now() time.Time          { return c.t }
func (c *fixedClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func mcQuestion() *question.Question {
	return &question.Question{
		ID:         "geo-1",
		Variant:    question.MultipleChoice,
		Prompt:     "Capital of France?",
		AnswerKey:  "Paris,paris",
		Options:    []string{"London", "Paris", "Berlin", "Madrid"},
		PointValue: 10,
	}
}

func TestSubmit_MultipleChoice_EndToEnd(t *testing.T) {
	s := New(mcQuestion())
	res := s.Submit(question.Text("  PARIS "))

	require.NotNil(t, res)
	assert.True(t, res.IsCorrect)
	assert.Equal(t, []bool{true}, res.Units)
	assert.Equal(t, 10, res.Score)
	assert.True(t, res.FirstAttempt)
	assert.Equal(t, StatusAnswered, s.Status())
}

func TestSubmit_FillBlank_EndToEnd(t *testing.T) {
	q := &question.Question{
		ID:         "fr-2",
		Variant:    question.FillBlank,
		Prompt:     "___ chat et ___ chien",
		AnswerKey:  "le,la|chat,chien",
		PointValue: 6,
	}
	s := New(q)
	res := s.Submit(question.Blanks{"la", "chien"})

	require.NotNil(t, res)
	assert.True(t, res.IsCorrect)
	assert.Equal(t, []bool{true, true}, res.Units)
}

func TestSubmit_AfterAnswered_ReturnsLastUnchanged(t *testing.T) {
	s := New(mcQuestion())
	first := s.Submit(question.Text("Paris"))
	second := s.Submit(question.Text("London"))

	assert.Same(t, first, second, "terminal submit must return the prior result")
	assert.Equal(t, 1, s.Attempts())
}

func TestSubmit_ExhaustsAfterMaxAttempts(t *testing.T) {
	s := New(mcQuestion())
	for i := 0; i < question.DefaultMaxAttempts; i++ {
		s.Submit(question.Text("London"))
		if i < question.DefaultMaxAttempts-1 {
			assert.Equal(t, StatusActive, s.Status())
			assert.True(t, s.Retry())
		}
	}
	assert.Equal(t, StatusExhausted, s.Status())
	assert.False(t, s.Retry(), "retry after exhaustion must be a no-op")
}

func TestRetry_NoOpWhenNotEligible(t *testing.T) {
	s := New(mcQuestion())

	// Before any submission.
	assert.False(t, s.Retry())

	// After a correct answer.
	s.Submit(question.Text("Paris"))
	before := snapshot(s)
	assert.False(t, s.Retry())
	assert.Equal(t, before, snapshot(s), "rejected retry must leave the session unchanged")
}

func TestRetry_PreservesAttemptsHintsAndClock(t *testing.T) {
	clock := &fixedClock{t: time.Unix(1000, 0)}
	q := mcQuestion()
	q.Hints = question.GenerateHints(q)
	s := New(q, WithClock(clock.now))

	s.SetDraft(question.Text("London"))
	s.RevealHint(q.Hints[0].ID)
	clock.advance(5 * time.Second)
	s.Submit(question.Text("London"))

	require.True(t, s.Retry())
	assert.Nil(t, s.Draft(), "retry clears the draft")
	assert.False(t, s.Answered(), "retry clears the feedback flag")
	assert.Equal(t, 1, s.Attempts(), "attempt count survives retry")
	assert.Len(t, s.RevealedHints(), 1, "revealed hints survive retry")

	clock.advance(5 * time.Second)
	assert.Equal(t, 10*time.Second, s.Elapsed(), "elapsed accumulates across retries")
}

func TestRevealHint(t *testing.T) {
	q := mcQuestion()
	q.Hints = question.GenerateHints(q)
	s := New(q)

	assert.Equal(t, Revealed, s.RevealHint(q.Hints[0].ID))
	assert.Equal(t, AlreadyRevealed, s.RevealHint(q.Hints[0].ID))
	assert.Equal(t, UnknownHint, s.RevealHint("nope"))
	assert.Len(t, s.AvailableHints(), 2)

	s.Submit(question.Text("Paris"))
	assert.Equal(t, RevealLocked, s.RevealHint(q.Hints[1].ID))
}

func TestHintCostReducesScore(t *testing.T) {
	q := mcQuestion()
	q.Hints = question.GenerateHints(q)
	s := New(q)

	s.RevealHint(q.Hints[0].ID) // gentle, cost 1
	s.RevealHint(q.Hints[1].ID) // medium, cost 2
	res := s.Submit(question.Text("Paris"))

	assert.Equal(t, 7, res.Score)
	assert.Equal(t, 2, res.HintsUsed)
	assert.Equal(t, 3, res.HintCost)
}

func TestTimeout_ForcesSingleSubmission(t *testing.T) {
	sched := &fakeScheduler{}
	q := mcQuestion()
	q.TimeLimitSeconds = 30
	s := New(q, WithScheduler(sched))

	require.NotNil(t, sched.fn, "timed question must schedule a timeout")
	assert.Equal(t, 30*time.Second, sched.delay)

	s.SetDraft(question.Text("London"))
	sched.fire()

	first := s.LastResult()
	require.NotNil(t, first)
	assert.True(t, first.TimedOut)
	assert.False(t, first.IsCorrect)

	// Second firing is a no-op.
	s.Timeout()
	assert.Same(t, first, s.LastResult())
	assert.Equal(t, 1, s.Attempts())
}

func TestTimeout_EmptyDraftSubmitsEmpty(t *testing.T) {
	sched := &fakeScheduler{}
	q := mcQuestion()
	q.TimeLimitSeconds = 10
	s := New(q, WithScheduler(sched))

	sched.fire()
	res := s.LastResult()
	require.NotNil(t, res)
	assert.Equal(t, []bool{false}, res.Units)
	assert.Zero(t, res.Score)
}

func TestSubmit_CancelsPendingTimeout(t *testing.T) {
	sched := &fakeScheduler{}
	q := mcQuestion()
	q.TimeLimitSeconds = 30
	s := New(q, WithScheduler(sched))

	res := s.Submit(question.Text("Paris"))
	assert.True(t, sched.cancelled, "submission must cancel the countdown")

	// Even a late firing must not create a second result.
	sched.cancelled = false
	sched.fire()
	assert.Same(t, res, s.LastResult())
	assert.Equal(t, 1, s.Attempts())
}

func TestTimeout_NoOpAfterFirstSubmission(t *testing.T) {
	s := New(mcQuestion())
	s.Submit(question.Text("London"))
	s.Timeout()

	res := s.LastResult()
	require.NotNil(t, res)
	assert.False(t, res.TimedOut)
	assert.Equal(t, 1, s.Attempts())
}

func TestObserver_ReceivesEveryResult(t *testing.T) {
	var seen []SubmissionResult
	obs := ObserverFunc(func(_ *question.Question, res SubmissionResult) {
		seen = append(seen, res)
	})
	s := New(mcQuestion(), WithObserver(obs))

	s.Submit(question.Text("London"))
	s.Retry()
	s.Submit(question.Text("Paris"))

	require.Len(t, seen, 2)
	assert.False(t, seen[0].IsCorrect)
	assert.True(t, seen[1].IsCorrect)
	assert.Equal(t, 2, seen[1].AttemptsUsed)
}

func TestMalformedKey_FailsClosedNotFatal(t *testing.T) {
	q := &question.Question{
		ID:         "bad",
		Variant:    question.FillBlank,
		Prompt:     "one ___ here",
		AnswerKey:  "a|b", // two groups, one blank
		PointValue: 5,
	}
	s := New(q)
	res := s.Submit(question.Blanks{"a"})

	require.NotNil(t, res)
	assert.False(t, res.IsCorrect)
	assert.Zero(t, res.Score)
}

// snapshot captures the externally observable session state for
// unchanged-after-no-op assertions.
type sessionSnapshot struct {
	status   Status
	attempts int
	answered bool
	last     *SubmissionResult
	hints    int
}

func snapshot(s *Session) sessionSnapshot {
	return sessionSnapshot{
		status:   s.Status(),
		attempts: s.Attempts(),
		answered: s.Answered(),
		last:     s.LastResult(),
		hints:    len(s.RevealedHints()),
	}
}
