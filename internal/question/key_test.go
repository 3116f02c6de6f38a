package question

import "testing"

func TestCountBlanks(t *testing.T) {
	tests := []struct {
		prompt string
		want   int
	}{
		{"___ chat dort", 1},
		{"___ chat et ___ chien", 2},
		{"no blanks here", 0},
		{"long run _____ counts once", 1},
		{"__ too short", 0},
	}

	for _, tc := range tests {
		got := CountBlanks(tc.prompt)
		if got != tc.want {
			t.Errorf("CountBlanks(%q) = %d, want %d", tc.prompt, got, tc.want)
		}
	}
}

func TestParseKey_MultipleChoice(t *testing.T) {
	q := &Question{ID: "q1", Variant: MultipleChoice, AnswerKey: "Paris, paris"}
	key, err := ParseKey(q)
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	if len(key.Units) != 1 {
		t.Fatalf("units = %d, want 1", len(key.Units))
	}
	if !key.Units[0].Matches("  PARIS ") {
		t.Error("normalized candidate should match")
	}
	if key.Units[0].Matches("london") {
		t.Error("wrong option should not match")
	}
}

func TestParseKey_FillBlank(t *testing.T) {
	q := &Question{
		ID:        "q2",
		Variant:   FillBlank,
		Prompt:    "___ chat et ___ chien",
		AnswerKey: "le,la|chat,chien",
	}
	key, err := ParseKey(q)
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	if len(key.Units) != 2 {
		t.Fatalf("units = %d, want 2", len(key.Units))
	}
	if !key.Units[0].Matches("la") || !key.Units[1].Matches("chien") {
		t.Error("synonyms should match their blank group")
	}
}

func TestParseKey_FillBlank_GroupCountMismatch(t *testing.T) {
	q := &Question{
		ID:        "q3",
		Variant:   FillBlank,
		Prompt:    "___ chat dort", // one blank
		AnswerKey: "le,la|chat,chien",
	}
	if _, err := ParseKey(q); err == nil {
		t.Error("expected error for blank/group count mismatch")
	}
}

func TestParseKey_DragDrop(t *testing.T) {
	q := &Question{ID: "q4", Variant: DragDrop, AnswerKey: "der:Hund|die:Katze,Maus"}
	key, err := ParseKey(q)
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	if len(key.Units) != 2 {
		t.Fatalf("units = %d, want 2", len(key.Units))
	}
	if key.Units[0].Target != "der" || key.Units[1].Target != "die" {
		t.Errorf("targets = %q, %q", key.Units[0].Target, key.Units[1].Target)
	}
	if !key.Units[1].Matches("maus") {
		t.Error("second accepted item should match")
	}
}

func TestParseKey_DragDrop_Malformed(t *testing.T) {
	tests := []string{
		"der Hund",        // missing separator
		"der:Hund|der:Ox", // duplicate target
		":Hund",           // empty target
	}
	for _, raw := range tests {
		q := &Question{ID: "q5", Variant: DragDrop, AnswerKey: raw}
		if _, err := ParseKey(q); err == nil {
			t.Errorf("ParseKey(%q): expected error", raw)
		}
	}
}

func TestParseKey_TextInput(t *testing.T) {
	q := &Question{ID: "q6", Variant: TextInput, AnswerKey: "I am fine|I'm fine"}
	key, err := ParseKey(q)
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	if len(key.Answers) != 2 || key.Answers[0] != "i am fine" {
		t.Errorf("Answers = %v", key.Answers)
	}
	if !key.Units[0].Matches(" I'M FINE ") {
		t.Error("second accepted answer should match after normalization")
	}
}

func TestParseKey_ImageMulti_StableUnitOrder(t *testing.T) {
	q := &Question{ID: "q7", Variant: ImageBased, Mode: RegionMulti, AnswerKey: "r4,r2"}
	key, err := ParseKey(q)
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	if len(key.Units) != 2 {
		t.Fatalf("units = %d, want 2", len(key.Units))
	}
	if key.Units[0].Target != "r2" || key.Units[1].Target != "r4" {
		t.Errorf("unit order = %q, %q, want sorted", key.Units[0].Target, key.Units[1].Target)
	}
}

func TestParseKey_EmptyKey(t *testing.T) {
	q := &Question{ID: "q8", Variant: MultipleChoice, AnswerKey: "  "}
	if _, err := ParseKey(q); err == nil {
		t.Error("expected error for empty key")
	}
}

func TestAttemptLimit_Default(t *testing.T) {
	q := &Question{}
	if got := q.AttemptLimit(); got != DefaultMaxAttempts {
		t.Errorf("AttemptLimit() = %d, want %d", got, DefaultMaxAttempts)
	}
	q.MaxAttempts = 5
	if got := q.AttemptLimit(); got != 5 {
		t.Errorf("AttemptLimit() = %d, want 5", got)
	}
}
