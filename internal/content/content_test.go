package content

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/meera/lingua/internal/question"
)

func TestBuiltin_AllEntriesValid(t *testing.T) {
	qs := Builtin()
	if len(qs) == 0 {
		t.Fatal("builtin bank is empty")
	}

	covered := make(map[question.Variant]bool)
	seen := make(map[string]bool)

	for _, q := range qs {
		if seen[q.ID] {
			t.Errorf("duplicate id %q", q.ID)
		}
		seen[q.ID] = true
		covered[q.Variant] = true

		if _, err := question.ParseKey(&q); err != nil {
			t.Errorf("%s: answer key does not parse: %v", q.ID, err)
		}
		if q.PointValue <= 0 {
			t.Errorf("%s: non-positive point value", q.ID)
		}
	}

	for _, v := range question.Variants() {
		if !covered[v] {
			t.Errorf("builtin bank has no %s question", v)
		}
	}
}

func TestLoadBank_Valid(t *testing.T) {
	path := writeBank(t, `[
		{
			"id": "fr-mc-1",
			"variant": "multiple_choice",
			"prompt": "What does 'merci' mean?",
			"options": ["please", "thanks", "hello"],
			"answer_key": "thanks",
			"point_value": 10
		},
		{
			"id": "fr-fb-1",
			"variant": "fill_blank",
			"prompt": "___ chat dort.",
			"answer_key": "le",
			"point_value": 12,
			"allow_partial": true
		}
	]`)

	qs, err := LoadBank(path)
	if err != nil {
		t.Fatalf("LoadBank: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
	if qs[0].ID != "fr-mc-1" || qs[0].Variant != question.MultipleChoice {
		t.Errorf("first question mangled: %+v", qs[0])
	}
	if !qs[1].AllowPartial {
		t.Error("allow_partial not carried through")
	}
}

func TestLoadBank_RejectsBadKey(t *testing.T) {
	// Two blanks in the prompt, only one answer group.
	path := writeBank(t, `[
		{
			"id": "bad-1",
			"variant": "fill_blank",
			"prompt": "___ und ___",
			"answer_key": "der",
			"point_value": 10
		}
	]`)

	if _, err := LoadBank(path); err == nil {
		t.Fatal("expected error for blank/group mismatch")
	}
}

func TestLoadBank_RejectsUnknownVariant(t *testing.T) {
	path := writeBank(t, `[
		{"id": "x", "variant": "essay", "prompt": "Write.", "answer_key": "a", "point_value": 5}
	]`)

	if _, err := LoadBank(path); err == nil {
		t.Fatal("expected error for unknown variant")
	}
}

func TestLoadBank_RejectsDuplicateIDs(t *testing.T) {
	path := writeBank(t, `[
		{"id": "dup", "variant": "multiple_choice", "prompt": "A?", "options": ["x","y"], "answer_key": "x", "point_value": 5},
		{"id": "dup", "variant": "multiple_choice", "prompt": "B?", "options": ["x","y"], "answer_key": "y", "point_value": 5}
	]`)

	if _, err := LoadBank(path); err == nil {
		t.Fatal("expected error for duplicate ids")
	}
}

func TestDeck_DealsEveryQuestionOnce(t *testing.T) {
	deck := NewDeck(Builtin())
	deck.Shuffle(rand.New(rand.NewPCG(7, 11)))

	seen := make(map[string]bool)
	for {
		q, ok := deck.Next()
		if !ok {
			break
		}
		if seen[q.ID] {
			t.Fatalf("question %s dealt twice", q.ID)
		}
		seen[q.ID] = true
	}

	if len(seen) != deck.Len() {
		t.Fatalf("dealt %d of %d questions", len(seen), deck.Len())
	}
	if deck.Remaining() != 0 {
		t.Fatalf("deck reports %d remaining after exhaustion", deck.Remaining())
	}
}

func writeBank(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
