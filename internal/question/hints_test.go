package question

import "testing"

func TestGenerateHints_TierOrderAndCosts(t *testing.T) {
	q := &Question{ID: "mc1", Variant: MultipleChoice, AnswerKey: "Paris"}
	hints := GenerateHints(q)
	if len(hints) != 3 {
		t.Fatalf("len(hints) = %d, want 3", len(hints))
	}
	wantTiers := []HintTier{TierGentle, TierMedium, TierStrong}
	for i, h := range hints {
		if h.Tier != wantTiers[i] {
			t.Errorf("hint %d tier = %q, want %q", i, h.Tier, wantTiers[i])
		}
		if h.Cost != wantTiers[i].Cost() {
			t.Errorf("hint %d cost = %d, want %d", i, h.Cost, wantTiers[i].Cost())
		}
		if h.Text == "" {
			t.Errorf("hint %d has empty text", i)
		}
	}
}

func TestGenerateHints_Deterministic(t *testing.T) {
	q := &Question{
		ID:        "fb1",
		Variant:   FillBlank,
		Prompt:    "___ chat et ___ chien",
		AnswerKey: "le,la|chat,chien",
	}
	a := GenerateHints(q)
	b := GenerateHints(q)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("hint %d differs between calls: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateHints_MalformedKeyStillHints(t *testing.T) {
	q := &Question{ID: "bad", Variant: FillBlank, Prompt: "no blanks", AnswerKey: "a|b"}
	hints := GenerateHints(q)
	if len(hints) != 3 {
		t.Fatalf("len(hints) = %d, want 3", len(hints))
	}
	for _, h := range hints {
		if h.Text == "" {
			t.Error("fallback hints should have text")
		}
	}
}
