package hints

import "github.com/meera/lingua/internal/llm"

// HintSetSchema defines the JSON schema for graded hint generation.
var HintSetSchema = &llm.Schema{
	Name:        "hint-set",
	Description: "Three progressively stronger hints for a language exercise",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"gentle": map[string]any{
				"type":        "string",
				"description": "A nudge toward the right approach without naming the answer (1 sentence)",
			},
			"medium": map[string]any{
				"type":        "string",
				"description": "A concrete clue such as a grammar rule, word class, or first letter (1 sentence)",
			},
			"strong": map[string]any{
				"type":        "string",
				"description": "A near-giveaway that still requires the learner to write the answer themselves (1 sentence)",
			},
		},
		"required":             []any{"gentle", "medium", "strong"},
		"additionalProperties": false,
	},
}
