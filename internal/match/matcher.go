// Package match grades a candidate answer against a question's answer key.
// Matching is pure: no state, safe from any goroutine. Malformed content
// fails closed — the learner sees "incorrect", never an error.
package match

import (
	"strings"

	"github.com/meera/lingua/internal/question"
)

// PassThreshold is the word-overlap ratio at which a text_input answer
// counts as correct when it isn't an exact match.
const PassThreshold = 0.70

// Result is the per-unit breakdown of one graded submission.
type Result struct {
	// Units holds one entry per scoring unit, in key order.
	Units []bool

	// Ratio is matched units over total units, in [0,1]. For text_input
	// near-misses it is the word-overlap ratio, surfaced even below the
	// pass threshold so feedback can acknowledge a close attempt.
	Ratio float64

	// Correct is true only when every unit matched.
	Correct bool
}

// failClosed builds a fully incorrect result sized to the question, used
// when the key is unparseable or the candidate has the wrong shape.
func failClosed(units int) Result {
	if units < 1 {
		units = 1
	}
	return Result{Units: make([]bool, units)}
}

// Match grades candidate against the question's answer key.
func Match(q *question.Question, candidate question.Answer) Result {
	key, err := question.ParseKey(q)
	if err != nil {
		return failClosed(1)
	}
	return MatchKey(key, candidate)
}

// MatchKey grades candidate against an already-parsed key. Sessions parse
// the key once and reuse it across attempts.
func MatchKey(key *question.Key, candidate question.Answer) Result {
	switch key.Variant {
	case question.MultipleChoice:
		return matchSingle(key, candidate)
	case question.FillBlank:
		return matchBlanks(key, candidate)
	case question.DragDrop:
		return matchPlacements(key, candidate)
	case question.TextInput:
		return matchText(key, candidate)
	case question.ImageBased:
		return matchRegions(key, candidate)
	default:
		return failClosed(len(key.Units))
	}
}

// matchSingle grades the single-unit variants that accept a Text candidate
// against one accept set: multiple_choice and image_based in single mode.
func matchSingle(key *question.Key, candidate question.Answer) Result {
	text, ok := candidate.(question.Text)
	if !ok {
		return failClosed(1)
	}
	hit := key.Units[0].Matches(string(text))
	r := Result{Units: []bool{hit}, Correct: hit}
	if hit {
		r.Ratio = 1
	}
	return r
}

func matchBlanks(key *question.Key, candidate question.Answer) Result {
	blanks, ok := candidate.(question.Blanks)
	if !ok && candidate != nil {
		return failClosed(len(key.Units))
	}
	units := make([]bool, len(key.Units))
	matched := 0
	for i, u := range key.Units {
		// Entries beyond the candidate's length are simply unmatched.
		if i < len(blanks) && u.Matches(blanks[i]) {
			units[i] = true
			matched++
		}
	}
	return tally(units, matched)
}

func matchPlacements(key *question.Key, candidate question.Answer) Result {
	placed, ok := candidate.(question.Placements)
	if !ok && candidate != nil {
		return failClosed(len(key.Units))
	}
	// Normalize the candidate's target IDs once.
	byTarget := make(map[string]string, len(placed))
	for target, item := range placed {
		byTarget[question.Normalize(target)] = item
	}
	units := make([]bool, len(key.Units))
	matched := 0
	for i, u := range key.Units {
		item, dropped := byTarget[u.Target]
		if dropped && u.Matches(item) {
			units[i] = true
			matched++
		}
	}
	return tally(units, matched)
}

func matchText(key *question.Key, candidate question.Answer) Result {
	text, ok := candidate.(question.Text)
	if !ok {
		return failClosed(1)
	}

	// Stage 1: exact match against any accepted full answer.
	if key.Units[0].Matches(string(text)) {
		return Result{Units: []bool{true}, Ratio: 1, Correct: true}
	}

	// Stage 2: word overlap against the first accepted answer. Tokens are
	// whitespace-delimited; duplicates count once.
	ratio := overlapRatio(question.Normalize(string(text)), key.Answers[0])
	if ratio >= PassThreshold {
		return Result{Units: []bool{true}, Ratio: ratio, Correct: true}
	}
	return Result{Units: []bool{false}, Ratio: ratio}
}

// overlapRatio returns shared tokens over reference tokens, both sides
// deduplicated.
func overlapRatio(candidate, reference string) float64 {
	refTokens := strings.Fields(reference)
	if len(refTokens) == 0 {
		return 0
	}
	refSet := make(map[string]bool, len(refTokens))
	for _, tok := range refTokens {
		refSet[tok] = true
	}
	candSet := make(map[string]bool)
	for _, tok := range strings.Fields(candidate) {
		candSet[tok] = true
	}
	shared := 0
	for tok := range refSet {
		if candSet[tok] {
			shared++
		}
	}
	return float64(shared) / float64(len(refSet))
}

func matchRegions(key *question.Key, candidate question.Answer) Result {
	if key.Mode == question.RegionSingle {
		// The UI hands over region picks as a Regions slice in both modes;
		// unwrap a lone pick so single mode grades it like a text choice.
		if regions, ok := candidate.(question.Regions); ok {
			if len(regions) != 1 {
				return failClosed(1)
			}
			candidate = question.Text(regions[0])
		}
		return matchSingle(key, candidate)
	}

	selected, ok := candidate.(question.Regions)
	if !ok && candidate != nil {
		return failClosed(len(key.Units))
	}
	picked := make(map[string]bool, len(selected))
	for _, id := range selected {
		picked[question.Normalize(id)] = true
	}

	// Exact set equality: any selection outside the accepted set fails
	// every unit, including swaps that keep the set size unchanged.
	accepted := make(map[string]bool, len(key.Units))
	for _, u := range key.Units {
		accepted[u.Target] = true
	}
	for id := range picked {
		if !accepted[id] {
			return Result{Units: make([]bool, len(key.Units))}
		}
	}

	units := make([]bool, len(key.Units))
	matched := 0
	for i, u := range key.Units {
		if picked[u.Target] {
			units[i] = true
			matched++
		}
	}
	return tally(units, matched)
}

func tally(units []bool, matched int) Result {
	return Result{
		Units:   units,
		Ratio:   float64(matched) / float64(len(units)),
		Correct: matched == len(units),
	}
}
