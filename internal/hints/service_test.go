package hints

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/meera/lingua/internal/llm"
	"github.com/meera/lingua/internal/question"
)

func articleQuestion() question.Question {
	return question.Question{
		ID:         "q-article-1",
		Variant:    question.MultipleChoice,
		Prompt:     "Which article goes with 'Hund'?",
		Options:    []string{"der", "die", "das"},
		AnswerKey:  "der",
		PointValue: 10,
	}
}

func validHintJSON() json.RawMessage {
	return json.RawMessage(`{
		"gentle": "Think about the grammatical gender of the noun.",
		"medium": "Dog is a masculine noun in German.",
		"strong": "Masculine nouns take the article that starts with d-e-r."
	}`)
}

func consume(t *testing.T, svc *Service, questionID string) []question.HintSpec {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if specs, ok := svc.ConsumeHints(questionID); ok {
			return specs
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("hints never became ready")
	return nil
}

func TestService_GeneratesGradedHints(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validHintJSON()})
	svc := NewService(mock, DefaultConfig())

	q := articleQuestion()
	svc.RequestHints(t.Context(), q)
	specs := consume(t, svc, q.ID)

	if len(specs) != 3 {
		t.Fatalf("expected 3 hints, got %d", len(specs))
	}
	if specs[0].Tier != question.TierGentle || specs[2].Tier != question.TierStrong {
		t.Errorf("hints out of tier order: %v, %v", specs[0].Tier, specs[2].Tier)
	}
	if specs[1].Text != "Dog is a masculine noun in German." {
		t.Errorf("unexpected medium hint: %q", specs[1].Text)
	}
	if specs[0].Cost != question.TierGentle.Cost() {
		t.Errorf("gentle cost = %d, want %d", specs[0].Cost, question.TierGentle.Cost())
	}
}

func TestService_FallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(mock, DefaultConfig())

	q := articleQuestion()
	svc.RequestHints(t.Context(), q)
	specs := consume(t, svc, q.ID)

	if len(specs) != 3 {
		t.Fatalf("expected 3 fallback hints, got %d", len(specs))
	}
	for _, h := range specs {
		if h.Text == "" {
			t.Error("fallback hint has empty text")
		}
	}
}

func TestService_NilProviderUsesFallback(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	q := articleQuestion()
	svc.RequestHints(t.Context(), q)

	specs, ok := svc.ConsumeHints(q.ID)
	if !ok {
		t.Fatal("expected hints to be ready immediately")
	}
	if len(specs) != 3 {
		t.Fatalf("expected 3 hints, got %d", len(specs))
	}
}

func TestService_ConsumeWrongQuestionID(t *testing.T) {
	svc := NewService(nil, DefaultConfig())

	q := articleQuestion()
	svc.RequestHints(t.Context(), q)

	if _, ok := svc.ConsumeHints("some-other-question"); ok {
		t.Fatal("consumed hints for the wrong question")
	}
	if _, ok := svc.ConsumeHints(q.ID); !ok {
		t.Fatal("pending hints were lost")
	}
}
