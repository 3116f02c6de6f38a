package question

// Variant identifies how a question is asked and answered.
// The set is closed: matching, scoring, and rendering all switch
// exhaustively over these five values.
type Variant string

const (
	// MultipleChoice presents fixed options, one of which is picked.
	MultipleChoice Variant = "multiple_choice"

	// FillBlank asks the learner to fill one or more blanks in the prompt.
	// Blanks are marked with "___" in the prompt text.
	FillBlank Variant = "fill_blank"

	// DragDrop asks the learner to place items onto named targets.
	DragDrop Variant = "drag_drop"

	// TextInput asks for a free-text answer, graded by exact match or
	// word overlap.
	TextInput Variant = "text_input"

	// ImageBased asks the learner to pick one or more labeled regions.
	ImageBased Variant = "image_based"
)

// Variants returns all question variants in display order.
func Variants() []Variant {
	return []Variant{MultipleChoice, FillBlank, DragDrop, TextInput, ImageBased}
}

// Valid reports whether v is one of the five known variants.
func (v Variant) Valid() bool {
	switch v {
	case MultipleChoice, FillBlank, DragDrop, TextInput, ImageBased:
		return true
	}
	return false
}

// DisplayName returns a human-readable label for the variant.
func (v Variant) DisplayName() string {
	switch v {
	case MultipleChoice:
		return "Multiple Choice"
	case FillBlank:
		return "Fill in the Blank"
	case DragDrop:
		return "Matching"
	case TextInput:
		return "Free Response"
	case ImageBased:
		return "Picture Quiz"
	default:
		return string(v)
	}
}

// RegionMode selects how an image_based question is answered.
type RegionMode string

const (
	// RegionSingle means the learner picks exactly one region; the pick is
	// correct if it is any of the key's region IDs.
	RegionSingle RegionMode = "single"

	// RegionMulti means the learner must select exactly the set of correct
	// regions for full credit. Any extra selection fails every unit.
	RegionMulti RegionMode = "multi"
)

// HintTier is the severity level of a hint.
type HintTier string

const (
	TierGentle HintTier = "gentle"
	TierMedium HintTier = "medium"
	TierStrong HintTier = "strong"
)

// Cost returns the default point cost for revealing a hint of this tier.
func (t HintTier) Cost() int {
	switch t {
	case TierGentle:
		return 1
	case TierMedium:
		return 2
	case TierStrong:
		return 3
	default:
		return 1
	}
}

// HintSpec describes one revealable hint.
type HintSpec struct {
	// ID is unique within the question's hint list.
	ID string

	// Tier is the severity level (gentle, medium, strong).
	Tier HintTier

	// Text is shown to the learner when the hint is revealed.
	Text string

	// Cost is deducted from the final score once the hint is revealed.
	Cost int
}

// DefaultMaxAttempts applies when a question doesn't override MaxAttempts.
const DefaultMaxAttempts = 3

// Question is an immutable content unit supplied by the content layer.
// The engine never mutates a Question.
type Question struct {
	// ID is an opaque unique identifier.
	ID string

	// Variant selects the matching and rendering rules.
	Variant Variant

	// Prompt is the display text. The engine only interprets it for
	// fill_blank, where "___" markers mark the blanks.
	Prompt string

	// AnswerKey is the variant-specific correct-answer encoding.
	// See ParseKey for the grammar per variant.
	AnswerKey string

	// Options holds the displayed choices for multiple_choice.
	Options []string

	// Targets and Items describe a drag_drop board: Targets are the drop
	// slots in display order, Items the draggable pieces.
	Targets []string
	Items   []string

	// Regions labels the selectable areas of an image_based question.
	Regions []string

	// Mode applies to image_based only.
	Mode RegionMode

	// PointValue is the maximum score for a fully correct submission.
	PointValue int

	// MaxAttempts caps submissions per session. Zero means DefaultMaxAttempts.
	MaxAttempts int

	// Hints is the ordered hint list, cheapest tier first.
	Hints []HintSpec

	// TimeLimitSeconds bounds the session when positive; zero means untimed.
	TimeLimitSeconds int

	// AllowPartial enables proportional credit for partially matched units.
	AllowPartial bool

	// Explanation is shown with feedback after the question is resolved.
	Explanation string
}

// AttemptLimit returns MaxAttempts with the default applied.
func (q *Question) AttemptLimit() int {
	if q.MaxAttempts > 0 {
		return q.MaxAttempts
	}
	return DefaultMaxAttempts
}

// HintByID returns the hint spec with the given ID, or nil.
func (q *Question) HintByID(id string) *HintSpec {
	for i := range q.Hints {
		if q.Hints[i].ID == id {
			return &q.Hints[i]
		}
	}
	return nil
}
