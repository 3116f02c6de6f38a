package hints

import (
	"fmt"
	"strings"

	"github.com/meera/lingua/internal/question"
)

const hintSystemPrompt = `You are a supportive language tutor. A learner is stuck on an exercise and has asked for a hint. Write three hints of increasing strength. Never state the answer verbatim, even in the strong hint.`

func buildHintUserMessage(q question.Question) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Exercise type: %s\n", q.Variant.DisplayName())
	fmt.Fprintf(&b, "Prompt: %s\n", q.Prompt)

	if len(q.Options) > 0 {
		fmt.Fprintf(&b, "Choices: %s\n", strings.Join(q.Options, ", "))
	}
	if len(q.Items) > 0 {
		fmt.Fprintf(&b, "Items to place: %s\n", strings.Join(q.Items, ", "))
	}
	if len(q.Targets) > 0 {
		fmt.Fprintf(&b, "Targets: %s\n", strings.Join(q.Targets, ", "))
	}

	fmt.Fprintf(&b, "Answer key (do not reveal directly): %s\n", q.AnswerKey)

	b.WriteString(`
Instructions:
Write three hints for this exercise.
1. gentle: point the learner at the relevant rule or strategy without narrowing the choices.
2. medium: give a concrete clue, such as the grammatical gender, the word class, or the first letter.
3. strong: almost give it away, but leave the final step to the learner.
Each hint is a single sentence in plain English. Never quote the answer key.`)

	return b.String()
}
