package session

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/meera/lingua/internal/question"
)

// Tier is the encouragement band of a feedback message.
type Tier string

const (
	TierCorrect   Tier = "correct"
	TierPartial   Tier = "partial"
	TierIncorrect Tier = "incorrect"
)

// Feedback is the structured message shown after a submission.
type Feedback struct {
	Tier Tier

	// Encouragement is drawn at random from a small pool per tier; repeating
	// the same phrase every time wears on the learner, so this is
	// intentionally non-deterministic.
	Encouragement string

	// ScoreDisplay is the "+N" point text, empty for a zero score.
	ScoreDisplay string

	// Explanation carries the question's worked explanation, when present.
	Explanation string

	// CorrectAnswer discloses the expected answer. Populated only when the
	// answer was wrong and the session is exhausted, or when the caller
	// asked for eager disclosure — the UI owns the disclosure policy.
	CorrectAnswer string

	// HintSuggestion nudges toward the cheapest unrevealed hint, when
	// another attempt is still possible.
	HintSuggestion string
}

var encouragementPools = map[Tier][]string{
	TierCorrect: {
		"Perfect!",
		"Nailed it!",
		"Great work!",
		"You got it!",
	},
	TierPartial: {
		"So close!",
		"Good attempt — almost there.",
		"You're on the right track.",
	},
	TierIncorrect: {
		"Not quite.",
		"Don't worry, tricky one.",
		"Keep at it!",
	},
}

// ComposeOptions adjusts feedback composition per call site.
type ComposeOptions struct {
	// EagerDisclosure reveals the correct answer even before the session is
	// exhausted. Off by default.
	EagerDisclosure bool

	// Rand overrides the encouragement source for deterministic tests.
	Rand *rand.Rand
}

// Compose builds the feedback for the session's latest submission.
// Returns the zero Feedback if nothing has been submitted yet.
func (s *Session) Compose(opts ComposeOptions) Feedback {
	s.mu.Lock()
	res := s.last
	status := s.status
	avail := s.ledger.Available()
	s.mu.Unlock()

	if res == nil {
		return Feedback{}
	}

	fb := Feedback{
		Tier:        tierFor(res),
		Explanation: s.q.Explanation,
	}
	fb.Encouragement = pickEncouragement(fb.Tier, opts.Rand)
	if res.Score > 0 {
		fb.ScoreDisplay = fmt.Sprintf("+%d", res.Score)
	}

	disclose := (!res.IsCorrect && status == StatusExhausted) || opts.EagerDisclosure
	if disclose {
		fb.CorrectAnswer = DiscloseAnswer(s.q)
	}

	if !res.IsCorrect && status == StatusActive && len(avail) > 0 {
		h := avail[0]
		fb.HintSuggestion = fmt.Sprintf("Need a nudge? A %s hint costs %d points.", h.Tier, h.Cost)
	}
	return fb
}

func tierFor(res *SubmissionResult) Tier {
	switch {
	case res.IsCorrect:
		return TierCorrect
	case res.Score > 0:
		return TierPartial
	default:
		return TierIncorrect
	}
}

func pickEncouragement(tier Tier, rng *rand.Rand) string {
	pool := encouragementPools[tier]
	if len(pool) == 0 {
		return ""
	}
	if rng != nil {
		return pool[rng.IntN(len(pool))]
	}
	return pool[rand.IntN(len(pool))]
}

// DiscloseAnswer renders a question's answer key as learner-readable text.
func DiscloseAnswer(q *question.Question) string {
	key, err := question.ParseKey(q)
	if err != nil {
		return ""
	}

	switch q.Variant {
	case question.FillBlank:
		parts := make([]string, len(key.Units))
		for i, u := range key.Units {
			parts[i] = anyAccepted(u)
		}
		return strings.Join(parts, ", ")

	case question.DragDrop:
		parts := make([]string, len(key.Units))
		for i, u := range key.Units {
			parts[i] = fmt.Sprintf("%s → %s", u.Target, anyAccepted(u))
		}
		return strings.Join(parts, "; ")

	case question.TextInput:
		return key.Answers[0]

	case question.ImageBased:
		if key.Mode == question.RegionMulti {
			parts := make([]string, len(key.Units))
			for i, u := range key.Units {
				parts[i] = u.Target
			}
			return strings.Join(parts, ", ")
		}
		return anyAccepted(key.Units[0])

	default: // multiple_choice
		return anyAccepted(key.Units[0])
	}
}

// anyAccepted returns the lexically smallest accepted value so disclosure
// is stable.
func anyAccepted(u question.Unit) string {
	out := ""
	for v := range u.Accept {
		if out == "" || v < out {
			out = v
		}
	}
	return out
}
