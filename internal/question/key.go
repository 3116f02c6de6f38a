package question

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Key grammar per variant (all comparisons are trimmed and case-folded):
//
//	multiple_choice  "Paris,paris"                 comma-separated accepted options
//	fill_blank       "le,la|chat,chien"            pipe-separated blank groups,
//	                                               each a comma list of synonyms
//	drag_drop        "der:Hund|die:Katze"          pipe-separated target:items pairs,
//	                                               items a comma list
//	text_input       "I am fine|I'm fine"          pipe-separated accepted full answers
//	image_based      "r2,r4"                       comma-separated correct region IDs

// blankPattern matches one blank marker in a fill_blank prompt. Any run of
// three or more underscores counts as a single blank.
var blankPattern = regexp.MustCompile(`_{3,}`)

// CountBlanks returns the number of blank markers in a prompt.
func CountBlanks(prompt string) int {
	return len(blankPattern.FindAllStringIndex(prompt, -1))
}

// Normalize applies the shared comparison normalization: surrounding
// whitespace trimmed, case folded. Nothing else (accents, punctuation)
// is touched.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Unit is one scoring unit of a parsed key: the set of accepted values,
// plus the target ID for drag_drop units.
type Unit struct {
	// Target is the drop-target ID this unit grades (drag_drop only).
	Target string

	// Accept holds the normalized accepted values.
	Accept map[string]bool
}

// Matches reports whether the normalized candidate is accepted.
func (u Unit) Matches(candidate string) bool {
	return u.Accept[Normalize(candidate)]
}

// Key is the parsed form of a Question's AnswerKey: a sequence of
// acceptable-answer sets, one per scoring unit.
type Key struct {
	Variant Variant

	// Units holds one entry per scoring unit, in grading order.
	Units []Unit

	// Answers preserves the text_input accepted full answers in key order,
	// normalized. The first entry is the reference for word-overlap scoring.
	Answers []string

	// Mode applies to image_based keys.
	Mode RegionMode
}

// ParseKey parses q.AnswerKey into its per-unit form. A non-nil error means
// the content is malformed; callers grading learner input must fail closed
// (treat the submission as fully incorrect) rather than surface the error
// to the learner.
func ParseKey(q *Question) (*Key, error) {
	raw := strings.TrimSpace(q.AnswerKey)
	if raw == "" {
		return nil, fmt.Errorf("question %s: empty answer key", q.ID)
	}

	switch q.Variant {
	case MultipleChoice:
		unit, err := parseSet(raw)
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", q.ID, err)
		}
		return &Key{Variant: q.Variant, Units: []Unit{unit}}, nil

	case FillBlank:
		groups := strings.Split(raw, "|")
		blanks := CountBlanks(q.Prompt)
		if blanks != len(groups) {
			return nil, fmt.Errorf("question %s: %d blank markers but %d key groups", q.ID, blanks, len(groups))
		}
		units := make([]Unit, 0, len(groups))
		for i, g := range groups {
			unit, err := parseSet(g)
			if err != nil {
				return nil, fmt.Errorf("question %s: blank %d: %w", q.ID, i+1, err)
			}
			units = append(units, unit)
		}
		return &Key{Variant: q.Variant, Units: units}, nil

	case DragDrop:
		pairs := strings.Split(raw, "|")
		units := make([]Unit, 0, len(pairs))
		seen := make(map[string]bool, len(pairs))
		for _, p := range pairs {
			target, items, ok := strings.Cut(p, ":")
			if !ok {
				return nil, fmt.Errorf("question %s: pair %q missing target separator", q.ID, p)
			}
			target = Normalize(target)
			if target == "" {
				return nil, fmt.Errorf("question %s: empty target in pair %q", q.ID, p)
			}
			if seen[target] {
				return nil, fmt.Errorf("question %s: duplicate target %q", q.ID, target)
			}
			seen[target] = true
			unit, err := parseSet(items)
			if err != nil {
				return nil, fmt.Errorf("question %s: target %q: %w", q.ID, target, err)
			}
			unit.Target = target
			units = append(units, unit)
		}
		return &Key{Variant: q.Variant, Units: units}, nil

	case TextInput:
		answers := strings.Split(raw, "|")
		accept := make(map[string]bool, len(answers))
		ordered := make([]string, 0, len(answers))
		for _, a := range answers {
			n := Normalize(a)
			if n == "" {
				return nil, fmt.Errorf("question %s: empty accepted answer", q.ID)
			}
			if !accept[n] {
				ordered = append(ordered, n)
			}
			accept[n] = true
		}
		return &Key{
			Variant: q.Variant,
			Units:   []Unit{{Accept: accept}},
			Answers: ordered,
		}, nil

	case ImageBased:
		unit, err := parseSet(raw)
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", q.ID, err)
		}
		mode := q.Mode
		if mode == "" {
			mode = RegionSingle
		}
		if mode != RegionSingle && mode != RegionMulti {
			return nil, fmt.Errorf("question %s: unknown region mode %q", q.ID, mode)
		}
		key := &Key{Variant: q.Variant, Mode: mode}
		if mode == RegionSingle {
			key.Units = []Unit{unit}
			return key, nil
		}
		// Multi mode grades one unit per correct region, in sorted order so
		// unit results are stable.
		regions := make([]string, 0, len(unit.Accept))
		for region := range unit.Accept {
			regions = append(regions, region)
		}
		sort.Strings(regions)
		for _, region := range regions {
			key.Units = append(key.Units, Unit{Accept: map[string]bool{region: true}, Target: region})
		}
		return key, nil

	default:
		return nil, fmt.Errorf("question %s: unknown variant %q", q.ID, q.Variant)
	}
}

// parseSet parses a comma-separated list into a normalized accept set.
func parseSet(raw string) (Unit, error) {
	accept := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		n := Normalize(part)
		if n == "" {
			continue
		}
		accept[n] = true
	}
	if len(accept) == 0 {
		return Unit{}, fmt.Errorf("no accepted values in %q", raw)
	}
	return Unit{Accept: accept}, nil
}
