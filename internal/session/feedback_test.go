package session

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/meera/lingua/internal/question"
)

func composeRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestCompose_CorrectTier(t *testing.T) {
	s := New(mcQuestion())
	s.Submit(question.Text("Paris"))

	fb := s.Compose(ComposeOptions{Rand: composeRand()})
	if fb.Tier != TierCorrect {
		t.Errorf("Tier = %q, want correct", fb.Tier)
	}
	if fb.ScoreDisplay != "+10" {
		t.Errorf("ScoreDisplay = %q, want +10", fb.ScoreDisplay)
	}
	if fb.CorrectAnswer != "" {
		t.Error("correct answers need no disclosure")
	}
	if fb.Encouragement == "" {
		t.Error("encouragement must be drawn from the pool")
	}
}

func TestCompose_PartialTier(t *testing.T) {
	q := &question.Question{
		ID:           "fb-1",
		Variant:      question.FillBlank,
		Prompt:       "___ et ___",
		AnswerKey:    "le|chien",
		PointValue:   10,
		AllowPartial: true,
	}
	s := New(q)
	s.Submit(question.Blanks{"le", "chat"})

	fb := s.Compose(ComposeOptions{Rand: composeRand()})
	if fb.Tier != TierPartial {
		t.Errorf("Tier = %q, want partial", fb.Tier)
	}
	if fb.ScoreDisplay != "+5" {
		t.Errorf("ScoreDisplay = %q, want +5", fb.ScoreDisplay)
	}
	if fb.HintSuggestion != "" {
		t.Error("no hint suggestion when the question has no hints")
	}
}

func TestCompose_IncorrectSuggestsHint(t *testing.T) {
	q := mcQuestion()
	q.Hints = question.GenerateHints(q)
	s := New(q)
	s.Submit(question.Text("London"))

	fb := s.Compose(ComposeOptions{Rand: composeRand()})
	if fb.Tier != TierIncorrect {
		t.Errorf("Tier = %q, want incorrect", fb.Tier)
	}
	if !strings.Contains(fb.HintSuggestion, "gentle") {
		t.Errorf("HintSuggestion = %q, want mention of the cheapest tier", fb.HintSuggestion)
	}
	if fb.CorrectAnswer != "" {
		t.Error("no disclosure while retries remain")
	}
}

func TestCompose_DisclosureOnExhausted(t *testing.T) {
	s := New(mcQuestion())
	for i := 0; i < question.DefaultMaxAttempts; i++ {
		s.Submit(question.Text("London"))
		s.Retry()
	}

	fb := s.Compose(ComposeOptions{Rand: composeRand()})
	if fb.CorrectAnswer != "paris" {
		t.Errorf("CorrectAnswer = %q, want paris", fb.CorrectAnswer)
	}
}

func TestCompose_EagerDisclosure(t *testing.T) {
	s := New(mcQuestion())
	s.Submit(question.Text("London"))

	fb := s.Compose(ComposeOptions{EagerDisclosure: true, Rand: composeRand()})
	if fb.CorrectAnswer == "" {
		t.Error("eager disclosure must populate the correct answer")
	}
}

func TestCompose_BeforeFirstSubmission(t *testing.T) {
	s := New(mcQuestion())
	fb := s.Compose(ComposeOptions{Rand: composeRand()})
	if fb != (Feedback{}) {
		t.Errorf("Compose before submission = %+v, want zero value", fb)
	}
}

func TestDiscloseAnswer_PerVariant(t *testing.T) {
	tests := []struct {
		name string
		q    *question.Question
		want string
	}{
		{
			"fill blank joins groups",
			&question.Question{ID: "a", Variant: question.FillBlank, Prompt: "___ x ___", AnswerKey: "le,la|chat"},
			"la, chat",
		},
		{
			"drag drop shows pairs",
			&question.Question{ID: "b", Variant: question.DragDrop, AnswerKey: "der:Hund|die:Katze"},
			"der → hund; die → katze",
		},
		{
			"text input shows first accepted",
			&question.Question{ID: "c", Variant: question.TextInput, AnswerKey: "I am fine|I'm fine"},
			"i am fine",
		},
		{
			"image multi lists regions sorted",
			&question.Question{ID: "d", Variant: question.ImageBased, Mode: question.RegionMulti, AnswerKey: "r4,r2"},
			"r2, r4",
		},
	}

	for _, tc := range tests {
		if got := DiscloseAnswer(tc.q); got != tc.want {
			t.Errorf("%s: DiscloseAnswer = %q, want %q", tc.name, got, tc.want)
		}
	}
}
