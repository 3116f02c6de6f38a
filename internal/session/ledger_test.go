package session

import (
	"testing"

	"github.com/meera/lingua/internal/question"
)

func testHints() []question.HintSpec {
	return []question.HintSpec{
		{ID: "h1", Tier: question.TierGentle, Text: "a", Cost: 1},
		{ID: "h2", Tier: question.TierMedium, Text: "b", Cost: 2},
		{ID: "h3", Tier: question.TierStrong, Text: "c", Cost: 3},
	}
}

func TestLedger_RevealOutcomes(t *testing.T) {
	l := NewHintLedger(testHints())

	if got := l.Reveal("h2"); got != Revealed {
		t.Errorf("Reveal(h2) = %v, want Revealed", got)
	}
	if got := l.Reveal("h2"); got != AlreadyRevealed {
		t.Errorf("second Reveal(h2) = %v, want AlreadyRevealed", got)
	}
	if got := l.Reveal("missing"); got != UnknownHint {
		t.Errorf("Reveal(missing) = %v, want UnknownHint", got)
	}
}

func TestLedger_CostAndAvailability(t *testing.T) {
	l := NewHintLedger(testHints())

	l.Reveal("h1")
	l.Reveal("h3")
	l.Reveal("h1") // idempotent, cost counted once

	if got := l.TotalCost(); got != 4 {
		t.Errorf("TotalCost() = %d, want 4", got)
	}
	if got := l.UsedCount(); got != 2 {
		t.Errorf("UsedCount() = %d, want 2", got)
	}

	avail := l.Available()
	if len(avail) != 1 || avail[0].ID != "h2" {
		t.Errorf("Available() = %v, want [h2]", avail)
	}

	revealed := l.RevealedHints()
	if len(revealed) != 2 || revealed[0].ID != "h1" || revealed[1].ID != "h3" {
		t.Errorf("RevealedHints() = %v, want [h1 h3] in spec order", revealed)
	}
}

func TestLedger_Empty(t *testing.T) {
	l := NewHintLedger(nil)
	if got := l.Reveal("h1"); got != UnknownHint {
		t.Errorf("Reveal on empty ledger = %v, want UnknownHint", got)
	}
	if l.TotalCost() != 0 || l.UsedCount() != 0 {
		t.Error("empty ledger should report zero cost and usage")
	}
}
