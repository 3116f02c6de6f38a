package gamification

import (
	"context"
	"fmt"
	"os"

	"github.com/meera/lingua/internal/question"
	"github.com/meera/lingua/internal/session"
	"github.com/meera/lingua/internal/store"
)

// Streak milestones award a celebratory banner during a run.
const BaseStreakThreshold = 5

// NextStreakThreshold returns the next streak milestone above the current
// streak length.
func NextStreakThreshold(current int) int {
	thresholds := []int{5, 10, 15, 20}
	for _, t := range thresholds {
		if t > current {
			return t
		}
	}
	// Beyond 20, celebrate every 5.
	return ((current / 5) + 1) * 5
}

// Service turns submission results into points-ledger activity events.
// Recording is fire-and-forget: persistence failures are logged and
// swallowed, never surfaced to the engine.
type Service struct {
	eventRepo store.EventRepo
	runID     string

	// Session accumulators, reset per run.
	PointsEarned  int
	Streak        int
	nextMilestone int
}

// NewService creates a gamification service for one practice run.
func NewService(eventRepo store.EventRepo, runID string) *Service {
	return &Service{
		eventRepo:     eventRepo,
		runID:         runID,
		nextMilestone: BaseStreakThreshold,
	}
}

// OnSubmission implements session.Observer. Any submission that earned
// points produces an activity-completion event.
func (s *Service) OnSubmission(q *question.Question, res session.SubmissionResult) {
	if res.IsCorrect {
		s.Streak++
	} else {
		s.Streak = 0
		s.nextMilestone = BaseStreakThreshold
	}

	if res.Score <= 0 {
		return
	}
	s.PointsEarned += res.Score

	activity := ActivityFor(q.Variant)
	s.persist(store.ActivityEventData{
		RunID:         s.runID,
		ActivityType:  activity.Type,
		BasePoints:    activity.BasePoints,
		PointsAwarded: res.Score,
		QuestionID:    res.QuestionID,
		Variant:       string(res.Variant),
		Correct:       res.IsCorrect,
		ElapsedMs:     res.ElapsedMs,
		AttemptsUsed:  res.AttemptsUsed,
		HintsUsed:     res.HintsUsed,
		FirstAttempt:  res.FirstAttempt,
	})
}

// StreakMilestone returns a celebration message when the current streak
// just hit a milestone, or "" otherwise. Consuming the milestone advances
// the threshold.
func (s *Service) StreakMilestone() string {
	if s.Streak < s.nextMilestone {
		return ""
	}
	msg := fmt.Sprintf("%d correct in a row!", s.Streak)
	s.nextMilestone = NextStreakThreshold(s.Streak)
	return msg
}

func (s *Service) persist(data store.ActivityEventData) {
	if s.eventRepo == nil {
		return
	}
	if err := s.eventRepo.AppendActivity(context.Background(), data); err != nil {
		fmt.Fprintln(os.Stderr, "gamification: record activity:", err)
	}
}
