// Package content supplies questions to the engine: a built-in starter
// bank plus optional JSON banks loaded from disk.
package content

import "github.com/meera/lingua/internal/question"

// Builtin returns the embedded starter bank. Every variant is covered
// so a fresh install can run a full mixed session without any content
// files or API keys.
func Builtin() []question.Question {
	return []question.Question{
		{
			ID:          "de-art-001",
			Variant:     question.MultipleChoice,
			Prompt:      "Which article goes with 'Hund' (dog)?",
			Options:     []string{"der", "die", "das"},
			AnswerKey:   "der",
			PointValue:  10,
			Explanation: "Hund is a masculine noun, so it takes 'der'.",
		},
		{
			ID:          "de-voc-002",
			Variant:     question.MultipleChoice,
			Prompt:      "What does 'Entschuldigung' mean?",
			Options:     []string{"Goodbye", "Excuse me", "Good morning", "Thank you"},
			AnswerKey:   "Excuse me",
			PointValue:  10,
			Explanation: "'Entschuldigung' is used to apologize or get attention.",
		},
		{
			ID:           "de-fb-003",
			Variant:      question.FillBlank,
			Prompt:       "___ Katze trinkt ___ Milch.",
			AnswerKey:    "die|die",
			PointValue:   12,
			AllowPartial: true,
			Explanation:  "Katze and Milch are both feminine, so both blanks take 'die'.",
		},
		{
			ID:           "de-fb-004",
			Variant:      question.FillBlank,
			Prompt:       "Ich ___ aus Spanien und ___ in Berlin.",
			AnswerKey:    "komme|wohne,lebe",
			PointValue:   12,
			AllowPartial: true,
			Explanation:  "'Ich komme aus' states origin; 'wohne' or 'lebe' both work for residence.",
		},
		{
			ID:           "de-dd-005",
			Variant:      question.DragDrop,
			Prompt:       "Match each noun to its article.",
			Targets:      []string{"Hund", "Katze", "Haus"},
			Items:        []string{"der", "die", "das"},
			AnswerKey:    "Hund:der|Katze:die|Haus:das",
			PointValue:   15,
			AllowPartial: true,
			Explanation:  "Hund is masculine, Katze feminine, Haus neuter.",
		},
		{
			ID:               "de-ti-006",
			Variant:          question.TextInput,
			Prompt:           "Translate: 'I would like a coffee, please.'",
			AnswerKey:        "Ich hätte gern einen Kaffee, bitte|Ich möchte einen Kaffee, bitte",
			PointValue:       15,
			TimeLimitSeconds: 90,
			Explanation:      "'Ich hätte gern' and 'Ich möchte' are both polite ways to order.",
		},
		{
			ID:          "de-ti-007",
			Variant:     question.TextInput,
			Prompt:      "Answer in German: 'Wie geht es dir?'",
			AnswerKey:   "Mir geht es gut|Es geht mir gut|Gut, danke",
			PointValue:  12,
			Explanation: "Any short positive reply works; 'Mir geht es gut' is the textbook form.",
		},
		{
			ID:          "de-img-008",
			Variant:     question.ImageBased,
			Prompt:      "Tap the picture of 'der Apfel'.",
			Regions:     []string{"r1", "r2", "r3", "r4"},
			Mode:        question.RegionSingle,
			AnswerKey:   "r2",
			PointValue:  10,
			Explanation: "'Der Apfel' means the apple.",
		},
		{
			ID:           "de-img-009",
			Variant:      question.ImageBased,
			Prompt:       "Select every picture showing 'Obst' (fruit).",
			Regions:      []string{"r1", "r2", "r3", "r4", "r5"},
			Mode:         question.RegionMulti,
			AnswerKey:    "r1,r3,r4",
			PointValue:   15,
			AllowPartial: true,
			Explanation:  "The apple, the banana and the pear are fruit; the carrot and cheese are not.",
		},
		{
			ID:               "de-mc-010",
			Variant:          question.MultipleChoice,
			Prompt:           "Pick the correct past participle: 'Ich habe das Buch ___.'",
			Options:          []string{"lesen", "gelesen", "las", "liest"},
			AnswerKey:        "gelesen",
			PointValue:       10,
			TimeLimitSeconds: 30,
			Explanation:      "The perfect tense of 'lesen' uses the participle 'gelesen'.",
		},
	}
}
