package question

// Answer is a candidate answer in the shape the variant expects.
// It is a closed sum: exactly one of the four concrete types below.
// A nil Answer is a valid empty submission (used by timeouts).
type Answer interface {
	isAnswer()

	// Empty reports whether the answer carries no learner input.
	Empty() bool
}

// Text is a single string answer: the chosen option for multiple_choice,
// the typed response for text_input, or the picked region ID for
// image_based in single mode.
type Text string

func (Text) isAnswer()     {}
func (t Text) Empty() bool { return t == "" }

// Blanks is an ordered list of entries, one per blank, for fill_blank.
// A shorter list than the blank count is allowed; missing entries simply
// don't match.
type Blanks []string

func (Blanks) isAnswer()     {}
func (b Blanks) Empty() bool { return len(b) == 0 }

// Placements maps target ID to the item ID dropped there, for drag_drop.
// Targets with no drop are absent.
type Placements map[string]string

func (Placements) isAnswer()     {}
func (p Placements) Empty() bool { return len(p) == 0 }

// Regions is the set of selected region IDs for image_based in multi mode.
// Order is irrelevant.
type Regions []string

func (Regions) isAnswer()     {}
func (r Regions) Empty() bool { return len(r) == 0 }
