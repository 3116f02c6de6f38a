package gamification

import (
	"context"
	"testing"

	"github.com/meera/lingua/internal/question"
	"github.com/meera/lingua/internal/session"
	"github.com/meera/lingua/internal/store"
)

// recordingRepo captures appended activity events.
type recordingRepo struct {
	store.EventRepo
	activities []store.ActivityEventData
}

func (r *recordingRepo) AppendActivity(_ context.Context, data store.ActivityEventData) error {
	r.activities = append(r.activities, data)
	return nil
}

func TestActivityFor_Table(t *testing.T) {
	tests := []struct {
		variant    question.Variant
		wantType   string
		wantPoints int
	}{
		{question.MultipleChoice, "multiple_choice_question", 2},
		{question.FillBlank, "grammar_exercise", 3},
		{question.DragDrop, "matching_exercise", 3},
		{question.TextInput, "free_response_exercise", 4},
		{question.ImageBased, "visual_exercise", 3},
		{question.Variant("bogus"), "exercise", 1},
	}

	for _, tc := range tests {
		a := ActivityFor(tc.variant)
		if a.Type != tc.wantType || a.BasePoints != tc.wantPoints {
			t.Errorf("ActivityFor(%s) = %+v, want {%s %d}", tc.variant, a, tc.wantType, tc.wantPoints)
		}
	}
}

func TestOnSubmission_RecordsOnlyScoringResults(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(repo, "run-1")
	q := &question.Question{ID: "q1", Variant: question.FillBlank}

	svc.OnSubmission(q, session.SubmissionResult{QuestionID: "q1", Variant: q.Variant, Score: 0})
	if len(repo.activities) != 0 {
		t.Fatal("zero-score submissions must not produce activity events")
	}

	svc.OnSubmission(q, session.SubmissionResult{
		QuestionID: "q1", Variant: q.Variant, IsCorrect: true, Score: 7, FirstAttempt: true,
	})
	if len(repo.activities) != 1 {
		t.Fatalf("activities = %d, want 1", len(repo.activities))
	}

	got := repo.activities[0]
	if got.ActivityType != "grammar_exercise" || got.BasePoints != 3 {
		t.Errorf("activity = %+v, want grammar_exercise/3", got)
	}
	if got.PointsAwarded != 7 || !got.FirstAttempt {
		t.Errorf("award metadata = %+v", got)
	}
	if svc.PointsEarned != 7 {
		t.Errorf("PointsEarned = %d, want 7", svc.PointsEarned)
	}
}

func TestOnSubmission_NilRepoIsSafe(t *testing.T) {
	svc := NewService(nil, "run-1")
	q := &question.Question{ID: "q1", Variant: question.MultipleChoice}
	svc.OnSubmission(q, session.SubmissionResult{QuestionID: "q1", IsCorrect: true, Score: 2})
	if svc.PointsEarned != 2 {
		t.Errorf("PointsEarned = %d, want 2", svc.PointsEarned)
	}
}

func TestStreakMilestones(t *testing.T) {
	svc := NewService(nil, "run-1")
	q := &question.Question{ID: "q1", Variant: question.MultipleChoice}
	correct := session.SubmissionResult{IsCorrect: true, Score: 1}

	for i := 0; i < 4; i++ {
		svc.OnSubmission(q, correct)
		if msg := svc.StreakMilestone(); msg != "" {
			t.Fatalf("milestone at streak %d: %q", svc.Streak, msg)
		}
	}

	svc.OnSubmission(q, correct)
	if msg := svc.StreakMilestone(); msg == "" {
		t.Error("expected milestone at streak 5")
	}
	if msg := svc.StreakMilestone(); msg != "" {
		t.Errorf("milestone must be consumed once, got %q", msg)
	}

	// A miss resets the streak and the threshold.
	svc.OnSubmission(q, session.SubmissionResult{IsCorrect: false})
	if svc.Streak != 0 {
		t.Errorf("Streak = %d after miss, want 0", svc.Streak)
	}
}

func TestNextStreakThreshold(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{0, 5},
		{5, 10},
		{12, 15},
		{20, 25},
		{27, 30},
	}
	for _, tc := range tests {
		if got := NextStreakThreshold(tc.current); got != tc.want {
			t.Errorf("NextStreakThreshold(%d) = %d, want %d", tc.current, got, tc.want)
		}
	}
}
