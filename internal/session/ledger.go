package session

import "github.com/meera/lingua/internal/question"

// RevealOutcome reports what a reveal attempt did.
type RevealOutcome int

const (
	// Revealed means the hint was newly revealed.
	Revealed RevealOutcome = iota

	// AlreadyRevealed means the hint had been revealed before; reveals are
	// idempotent, so this is not an error.
	AlreadyRevealed

	// UnknownHint means the ID names no hint of this question.
	UnknownHint

	// RevealLocked means the session no longer accepts reveals (returned by
	// Session.RevealHint once the session leaves the active state).
	RevealLocked
)

// HintLedger tracks which of a question's hints have been revealed.
// Reveals are monotonic: once shown, a hint stays shown for the rest of
// the session.
type HintLedger struct {
	specs    []question.HintSpec
	revealed map[string]bool
}

// NewHintLedger creates a ledger over the question's ordered hint list.
func NewHintLedger(specs []question.HintSpec) *HintLedger {
	return &HintLedger{
		specs:    specs,
		revealed: make(map[string]bool),
	}
}

// Reveal marks the hint as revealed.
func (l *HintLedger) Reveal(hintID string) RevealOutcome {
	found := false
	for _, s := range l.specs {
		if s.ID == hintID {
			found = true
			break
		}
	}
	if !found {
		return UnknownHint
	}
	if l.revealed[hintID] {
		return AlreadyRevealed
	}
	l.revealed[hintID] = true
	return Revealed
}

// Available returns the hints not yet revealed, in spec order.
func (l *HintLedger) Available() []question.HintSpec {
	var out []question.HintSpec
	for _, s := range l.specs {
		if !l.revealed[s.ID] {
			out = append(out, s)
		}
	}
	return out
}

// RevealedHints returns the revealed hints, in spec order.
func (l *HintLedger) RevealedHints() []question.HintSpec {
	var out []question.HintSpec
	for _, s := range l.specs {
		if l.revealed[s.ID] {
			out = append(out, s)
		}
	}
	return out
}

// UsedCount returns how many hints have been revealed.
func (l *HintLedger) UsedCount() int {
	return len(l.revealed)
}

// TotalCost returns the summed cost of every revealed hint.
func (l *HintLedger) TotalCost() int {
	cost := 0
	for _, s := range l.specs {
		if l.revealed[s.ID] {
			cost += s.Cost
		}
	}
	return cost
}
