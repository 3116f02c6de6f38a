package match

import (
	"math"
	"testing"

	"github.com/meera/lingua/internal/question"
)

func TestMatch_MultipleChoice_Normalization(t *testing.T) {
	q := &question.Question{ID: "mc", Variant: question.MultipleChoice, AnswerKey: "Paris,paris"}

	tests := []struct {
		candidate string
		want      bool
	}{
		{"  PARIS ", true},
		{"paris", true},
		{"Paris", true},
		{"London", false},
		{"", false},
	}

	for _, tc := range tests {
		r := Match(q, question.Text(tc.candidate))
		if r.Correct != tc.want {
			t.Errorf("Match(%q).Correct = %v, want %v", tc.candidate, r.Correct, tc.want)
		}
		if len(r.Units) != 1 {
			t.Errorf("Match(%q) units = %d, want 1", tc.candidate, len(r.Units))
		}
	}
}

func TestMatch_FillBlank_AllCorrect(t *testing.T) {
	q := &question.Question{
		ID:        "fb",
		Variant:   question.FillBlank,
		Prompt:    "___ chat et ___ chien",
		AnswerKey: "le,la|chat,chien",
	}
	r := Match(q, question.Blanks{"la", "chien"})
	if !r.Correct {
		t.Error("all blanks matching should be correct")
	}
	if r.Ratio != 1 {
		t.Errorf("Ratio = %v, want 1", r.Ratio)
	}
}

func TestMatch_FillBlank_MissingLastBlank(t *testing.T) {
	q := &question.Question{
		ID:        "fb",
		Variant:   question.FillBlank,
		Prompt:    "___ one ___ two ___ three",
		AnswerKey: "a|b|c",
	}
	r := Match(q, question.Blanks{"a", "b"})
	if r.Correct {
		t.Error("missing blank should not be correct")
	}
	want := []bool{true, true, false}
	for i, u := range r.Units {
		if u != want[i] {
			t.Errorf("Units[%d] = %v, want %v", i, u, want[i])
		}
	}
	if r.Ratio != 2.0/3.0 {
		t.Errorf("Ratio = %v, want 2/3", r.Ratio)
	}
}

func TestMatch_DragDrop(t *testing.T) {
	q := &question.Question{
		ID:        "dd",
		Variant:   question.DragDrop,
		AnswerKey: "der:Hund|die:Katze|das:Haus",
	}

	tests := []struct {
		name      string
		candidate question.Placements
		wantUnits []bool
	}{
		{"all placed right", question.Placements{"der": "Hund", "die": "Katze", "das": "Haus"}, []bool{true, true, true}},
		{"one swapped", question.Placements{"der": "Katze", "die": "Hund", "das": "Haus"}, []bool{false, false, true}},
		{"target left empty", question.Placements{"der": "Hund"}, []bool{true, false, false}},
		{"empty mapping", question.Placements{}, []bool{false, false, false}},
	}

	for _, tc := range tests {
		r := Match(q, tc.candidate)
		for i, u := range r.Units {
			if u != tc.wantUnits[i] {
				t.Errorf("%s: Units[%d] = %v, want %v", tc.name, i, u, tc.wantUnits[i])
			}
		}
	}
}

func TestMatch_TextInput_ExactAlwaysFull(t *testing.T) {
	q := &question.Question{ID: "ti", Variant: question.TextInput, AnswerKey: "the cat sleeps|the cat is sleeping"}

	for _, candidate := range []string{"the cat sleeps", " THE CAT SLEEPS ", "the cat is sleeping"} {
		r := Match(q, question.Text(candidate))
		if !r.Correct || r.Ratio != 1 {
			t.Errorf("Match(%q) = correct %v ratio %v, want true/1", candidate, r.Correct, r.Ratio)
		}
	}
}

func TestMatch_TextInput_OverlapThreshold(t *testing.T) {
	// Reference has 10 distinct tokens; sharing 7 passes, sharing fewer
	// than 7 fails.
	q := &question.Question{
		ID:        "ti",
		Variant:   question.TextInput,
		AnswerKey: "a b c d e f g h i j",
	}

	tests := []struct {
		candidate   string
		wantCorrect bool
		wantRatio   float64
	}{
		{"a b c d e f g", true, 0.70},
		{"a b c d e f", false, 0.60},
		{"a b c d e f g h i j", true, 1},
		{"x y z", false, 0},
	}

	for _, tc := range tests {
		r := Match(q, question.Text(tc.candidate))
		if r.Correct != tc.wantCorrect {
			t.Errorf("Match(%q).Correct = %v, want %v", tc.candidate, r.Correct, tc.wantCorrect)
		}
		if math.Abs(r.Ratio-tc.wantRatio) > 1e-9 {
			t.Errorf("Match(%q).Ratio = %v, want %v", tc.candidate, r.Ratio, tc.wantRatio)
		}
	}
}

func TestMatch_TextInput_DuplicateTokensCountOnce(t *testing.T) {
	q := &question.Question{ID: "ti", Variant: question.TextInput, AnswerKey: "very very good morning"}
	// Reference dedupes to {very, good, morning}; candidate shares 2 of 3.
	r := Match(q, question.Text("good morning"))
	if got, want := r.Ratio, 2.0/3.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("Ratio = %v, want %v", got, want)
	}
}

func TestMatch_ImageSingle(t *testing.T) {
	q := &question.Question{ID: "im", Variant: question.ImageBased, Mode: question.RegionSingle, AnswerKey: "r2,r3"}
	if r := Match(q, question.Text("r3")); !r.Correct {
		t.Error("picking any correct region should be correct")
	}
	if r := Match(q, question.Text("r1")); r.Correct {
		t.Error("wrong region should not be correct")
	}
}

func TestMatch_ImageSingle_RegionsCandidate(t *testing.T) {
	// The UI submits picks as a Regions slice in both modes; a lone pick
	// must grade the same as its Text form.
	q := &question.Question{ID: "im", Variant: question.ImageBased, Mode: question.RegionSingle, AnswerKey: "r2,r3"}

	r := Match(q, question.Regions{"r3"})
	if !r.Correct || r.Ratio != 1 {
		t.Errorf("correct pick as Regions: got %+v, want correct", r)
	}
	if r := Match(q, question.Regions{"r1"}); r.Correct {
		t.Error("wrong pick as Regions should not be correct")
	}
	if r := Match(q, question.Regions{"r2", "r3"}); r.Correct || r.Ratio != 0 {
		t.Errorf("multiple picks in single mode must fail closed, got %+v", r)
	}
	if r := Match(q, question.Regions{}); r.Correct || r.Ratio != 0 {
		t.Errorf("empty pick must fail closed, got %+v", r)
	}
}

func TestMatch_ImageMulti_ExactSet(t *testing.T) {
	q := &question.Question{ID: "im", Variant: question.ImageBased, Mode: question.RegionMulti, AnswerKey: "r1,r3"}

	tests := []struct {
		name        string
		candidate   question.Regions
		wantCorrect bool
		wantRatio   float64
	}{
		{"exact set", question.Regions{"r3", "r1"}, true, 1},
		{"extra region fails whole set", question.Regions{"r1", "r3", "r2"}, false, 0},
		{"swapped region fails whole set", question.Regions{"r1", "r2"}, false, 0},
		{"missing one", question.Regions{"r1"}, false, 0.5},
		{"empty", question.Regions{}, false, 0},
	}

	for _, tc := range tests {
		r := Match(q, tc.candidate)
		if r.Correct != tc.wantCorrect {
			t.Errorf("%s: Correct = %v, want %v", tc.name, r.Correct, tc.wantCorrect)
		}
		if math.Abs(r.Ratio-tc.wantRatio) > 1e-9 {
			t.Errorf("%s: Ratio = %v, want %v", tc.name, r.Ratio, tc.wantRatio)
		}
	}
}

func TestMatch_MalformedKeyFailsClosed(t *testing.T) {
	q := &question.Question{
		ID:        "bad",
		Variant:   question.FillBlank,
		Prompt:    "one blank ___ only",
		AnswerKey: "a|b|c",
	}
	r := Match(q, question.Blanks{"a"})
	if r.Correct || r.Ratio != 0 {
		t.Errorf("malformed key must grade fully incorrect, got %+v", r)
	}
}

func TestMatch_WrongAnswerShapeFailsClosed(t *testing.T) {
	q := &question.Question{ID: "mc", Variant: question.MultipleChoice, AnswerKey: "Paris"}
	r := Match(q, question.Blanks{"Paris"})
	if r.Correct {
		t.Error("wrong candidate shape must fail closed")
	}
}
