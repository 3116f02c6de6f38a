// Package session owns the lifecycle of one question attempt: draft answer,
// attempt counting, hint ledger, time limit, and the submission flow through
// the matcher and scorer.
//
// Every operation is total. Calls that aren't valid in the current state
// (retry when not eligible, submit after a terminal state, a second timeout)
// are no-ops that leave the session unchanged — this state machine drives a
// live learner and must never strand them on an error.
package session

import (
	"sync"
	"time"

	"github.com/meera/lingua/internal/match"
	"github.com/meera/lingua/internal/question"
	"github.com/meera/lingua/internal/score"
)

// Status is the lifecycle state of a session.
type Status string

const (
	// StatusActive accepts submissions, retries, hint reveals, and timeout.
	StatusActive Status = "active"

	// StatusAnswered is terminal: the question was answered fully correctly.
	StatusAnswered Status = "answered"

	// StatusExhausted is terminal: every attempt was used without a fully
	// correct answer.
	StatusExhausted Status = "exhausted"
)

// Terminal reports whether no further submissions are accepted.
func (s Status) Terminal() bool {
	return s == StatusAnswered || s == StatusExhausted
}

// SubmissionResult is the immutable record of one graded submission.
type SubmissionResult struct {
	QuestionID string
	Variant    question.Variant

	// IsCorrect is true only if every scoring unit matched.
	IsCorrect bool

	// Units holds the per-unit outcomes in key order.
	Units []bool

	// Ratio is matched units over total units (word-overlap ratio for
	// text_input near-misses), in [0,1].
	Ratio float64

	// Score is the final point award.
	Score int

	ElapsedMs    int64
	AttemptsUsed int
	HintsUsed    int
	HintCost     int

	// FirstAttempt is true when this was the session's first submission.
	FirstAttempt bool

	// TimedOut is true when the submission was forced by the time limit.
	TimedOut bool
}

// Observer receives every SubmissionResult as it is produced. Observers run
// after the session state is updated; the session ignores anything they do,
// so slow or failing collaborators can't affect the learner.
type Observer interface {
	OnSubmission(q *question.Question, res SubmissionResult)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(q *question.Question, res SubmissionResult)

func (f ObserverFunc) OnSubmission(q *question.Question, res SubmissionResult) { f(q, res) }

// Option configures a Session at creation.
type Option func(*Session)

// WithScheduler sets the timer scheduler. Defaults to WallScheduler.
func WithScheduler(s Scheduler) Option {
	return func(sess *Session) { sess.scheduler = s }
}

// WithClock sets the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(sess *Session) { sess.now = now }
}

// WithScoring overrides the scoring constants.
func WithScoring(cfg score.Config) Option {
	return func(sess *Session) { sess.scoring = cfg }
}

// WithObserver registers a submission observer.
func WithObserver(obs Observer) Option {
	return func(sess *Session) { sess.observers = append(sess.observers, obs) }
}

// Session is the mutable state machine for one question. One session is
// driven by one interaction stream; the internal mutex exists only to make
// the timeout callback race-free against normal submissions.
type Session struct {
	mu sync.Mutex

	q   *question.Question
	key *question.Key // nil when the answer key is malformed; grading fails closed

	scoring   score.Config
	scheduler Scheduler
	now       func() time.Time

	draft     question.Answer
	attempts  int
	startedAt time.Time
	ledger    *HintLedger
	status    Status
	last      *SubmissionResult

	// answeredFlag tracks feedback presentation: set on submit, cleared by
	// Retry so the UI returns to the input state.
	answeredFlag bool

	timedOut    bool
	cancelTimer func()

	observers []Observer
}

// New creates an active session for q and starts the countdown when the
// question is timed. The answer key is parsed once here; if it is malformed
// the session still works but grades every submission as incorrect.
func New(q *question.Question, opts ...Option) *Session {
	s := &Session{
		q:         q,
		scoring:   score.DefaultConfig(),
		scheduler: WallScheduler{},
		now:       time.Now,
		ledger:    NewHintLedger(q.Hints),
		status:    StatusActive,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.startedAt = s.now()

	if key, err := question.ParseKey(q); err == nil {
		s.key = key
	}

	if q.TimeLimitSeconds > 0 {
		d := time.Duration(q.TimeLimitSeconds) * time.Second
		s.cancelTimer = s.scheduler.Schedule(d, s.Timeout)
	}
	return s
}

// Question returns the content unit this session grades.
func (s *Session) Question() *question.Question { return s.q }

// Status returns the current lifecycle state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// LastResult returns the most recent submission result, or nil before the
// first submission.
func (s *Session) LastResult() *SubmissionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Attempts returns how many submissions have been made.
func (s *Session) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

// AttemptsRemaining returns how many submissions are still allowed.
func (s *Session) AttemptsRemaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.q.AttemptLimit() - s.attempts
}

// Elapsed returns time since the session started. It keeps accumulating
// across retries; attempt time is never reset.
func (s *Session) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now().Sub(s.startedAt)
}

// Draft returns the in-progress candidate answer.
func (s *Session) Draft() question.Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// SetDraft stores the in-progress candidate answer. Ignored once the
// session is terminal.
func (s *Session) SetDraft(a question.Answer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status.Terminal() {
		return
	}
	s.draft = a
}

// AvailableHints returns the hints not yet revealed.
func (s *Session) AvailableHints() []question.HintSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Available()
}

// RevealedHints returns the hints revealed so far.
func (s *Session) RevealedHints() []question.HintSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.RevealedHints()
}

// RevealHint reveals the hint by ID. Reveals are learner-initiated only and
// are locked out once the session leaves the active state.
func (s *Session) RevealHint(hintID string) RevealOutcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusActive {
		return RevealLocked
	}
	return s.ledger.Reveal(hintID)
}

// Submit grades a candidate answer. On a terminal session it is a no-op
// that returns the last result unchanged.
func (s *Session) Submit(candidate question.Answer) *SubmissionResult {
	s.mu.Lock()
	if s.status.Terminal() {
		last := s.last
		s.mu.Unlock()
		return last
	}
	res, observers := s.submitLocked(candidate, false)
	s.mu.Unlock()

	s.notify(observers, res)
	return res
}

// Retry clears the draft and the feedback flag so the learner can try
// again. Only valid while active, after a not-fully-correct submission,
// with attempts remaining; otherwise a no-op returning false. Attempt
// count, revealed hints, and the start time all persist across retries.
func (s *Session) Retry() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusActive || s.last == nil || s.last.IsCorrect {
		return false
	}
	if s.attempts >= s.q.AttemptLimit() {
		return false
	}
	s.draft = nil
	s.answeredFlag = false
	return true
}

// Answered reports whether feedback for the last submission is being
// presented (cleared by Retry).
func (s *Session) Answered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answeredFlag
}

// Timeout force-submits whatever draft is present (or an empty answer).
// It fires at most once, and only if no submission has happened yet; the
// session lock makes a cancelled or late timer deterministic — it can
// never produce a second result.
func (s *Session) Timeout() {
	s.mu.Lock()
	if s.timedOut || s.status != StatusActive || s.attempts > 0 {
		s.mu.Unlock()
		return
	}
	s.timedOut = true
	res, observers := s.submitLocked(s.draft, true)
	s.mu.Unlock()

	s.notify(observers, res)
}

// Close cancels the pending timeout, if any. Call when the UI discards the
// session before it resolves.
func (s *Session) Close() {
	s.mu.Lock()
	cancel := s.cancelTimer
	s.cancelTimer = nil
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// submitLocked runs one grading pass. Caller holds the lock.
func (s *Session) submitLocked(candidate question.Answer, timedOut bool) (*SubmissionResult, []Observer) {
	s.attempts++

	var m match.Result
	if s.key != nil {
		m = match.MatchKey(s.key, candidate)
	} else {
		// Malformed answer key: fail closed.
		m = match.Result{Units: []bool{false}}
	}

	matched := 0
	for _, u := range m.Units {
		if u {
			matched++
		}
	}

	elapsedMs := s.now().Sub(s.startedAt).Milliseconds()
	pts := score.Compute(score.Input{
		MatchedUnits:     matched,
		TotalUnits:       len(m.Units),
		FullyCorrect:     m.Correct,
		AllowPartial:     s.q.AllowPartial,
		PointValue:       s.q.PointValue,
		ElapsedMs:        elapsedMs,
		TimeLimitSeconds: s.q.TimeLimitSeconds,
		AttemptsUsed:     s.attempts,
		HintCost:         s.ledger.TotalCost(),
	}, s.scoring)

	res := &SubmissionResult{
		QuestionID:   s.q.ID,
		Variant:      s.q.Variant,
		IsCorrect:    m.Correct,
		Units:        m.Units,
		Ratio:        m.Ratio,
		Score:        pts,
		ElapsedMs:    elapsedMs,
		AttemptsUsed: s.attempts,
		HintsUsed:    s.ledger.UsedCount(),
		HintCost:     s.ledger.TotalCost(),
		FirstAttempt: s.attempts == 1,
		TimedOut:     timedOut,
	}

	switch {
	case m.Correct:
		s.status = StatusAnswered
	case s.attempts >= s.q.AttemptLimit():
		s.status = StatusExhausted
	}
	s.answeredFlag = true
	s.last = res

	// Any submission retires the countdown.
	if s.cancelTimer != nil {
		cancel := s.cancelTimer
		s.cancelTimer = nil
		cancel()
	}

	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	return res, observers
}

// notify delivers the result outside the lock so observers can call back
// into the session.
func (s *Session) notify(observers []Observer, res *SubmissionResult) {
	if res == nil {
		return
	}
	for _, obs := range observers {
		obs.OnSubmission(s.q, *res)
	}
}
