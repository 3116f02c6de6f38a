package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int   // max results (0 = unlimited)
	After  int64 // sequence > After
	Before int64 // sequence < Before
}

// SubmissionEventData captures one graded answer submission.
type SubmissionEventData struct {
	RunID        string
	QuestionID   string
	Variant      string
	Correct      bool
	MatchRatio   float64
	Score        int
	ElapsedMs    int64
	AttemptsUsed int
	HintsUsed    int
	TimedOut     bool
}

// HintEventData captures one hint reveal.
type HintEventData struct {
	RunID      string
	QuestionID string
	HintID     string
	Tier       string
	Cost       int
}

// ActivityEventData captures one activity-completion award.
type ActivityEventData struct {
	RunID         string
	ActivityType  string
	BasePoints    int
	PointsAwarded int
	QuestionID    string
	Variant       string
	Correct       bool
	ElapsedMs     int64
	AttemptsUsed  int
	HintsUsed     int
	FirstAttempt  bool
}

// SessionEventData marks the start or end of a practice run.
type SessionEventData struct {
	RunID           string
	Action          string // "start" or "end"
	QuestionsServed int
	CorrectAnswers  int
	PointsEarned    int
	DurationSecs    int
}

// LLMRequestEventData captures one LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// VariantStats aggregates submissions for one question variant.
type VariantStats struct {
	Variant   string
	Attempted int
	Correct   int
	Points    int
}

// Accuracy returns correct over attempted, or 0 when nothing was attempted.
func (v VariantStats) Accuracy() float64 {
	if v.Attempted == 0 {
		return 0
	}
	return float64(v.Correct) / float64(v.Attempted)
}

// RunSummary describes one completed practice run.
type RunSummary struct {
	RunID           string
	Timestamp       time.Time
	QuestionsServed int
	CorrectAnswers  int
	PointsEarned    int
	DurationSecs    int
}

// EventRepo provides append and query access to the domain event log.
type EventRepo interface {
	AppendSubmission(ctx context.Context, data SubmissionEventData) error
	AppendHint(ctx context.Context, data HintEventData) error
	AppendActivity(ctx context.Context, data ActivityEventData) error
	AppendSession(ctx context.Context, data SessionEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// VariantBreakdown aggregates all submissions by question variant.
	VariantBreakdown(ctx context.Context) ([]VariantStats, error)

	// TotalPoints sums every activity award.
	TotalPoints(ctx context.Context) (int, error)

	// RecentRuns returns completed run summaries, newest first.
	RecentRuns(ctx context.Context, opts QueryOpts) ([]RunSummary, error)
}
