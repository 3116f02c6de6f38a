// Package gamification receives activity-completion events from the
// question engine and records them in the points ledger. It is strictly a
// downstream collaborator: nothing here can fail a submission.
package gamification

import "github.com/meera/lingua/internal/question"

// Activity describes the ledger entry type a question variant maps to.
type Activity struct {
	Type       string
	BasePoints int
}

// activityTable is the fixed variant → activity mapping.
var activityTable = map[question.Variant]Activity{
	question.MultipleChoice: {Type: "multiple_choice_question", BasePoints: 2},
	question.FillBlank:      {Type: "grammar_exercise", BasePoints: 3},
	question.DragDrop:       {Type: "matching_exercise", BasePoints: 3},
	question.TextInput:      {Type: "free_response_exercise", BasePoints: 4},
	question.ImageBased:     {Type: "visual_exercise", BasePoints: 3},
}

// ActivityFor returns the ledger activity for a variant. Unknown variants
// fall back to a generic exercise entry so an award is never lost.
func ActivityFor(v question.Variant) Activity {
	if a, ok := activityTable[v]; ok {
		return a
	}
	return Activity{Type: "exercise", BasePoints: 1}
}
