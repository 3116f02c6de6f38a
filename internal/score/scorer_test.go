package score

import "testing"

func TestCompute_CleanFirstAttempt(t *testing.T) {
	got := Compute(Input{
		MatchedUnits: 1, TotalUnits: 1, FullyCorrect: true,
		PointValue: 10, AttemptsUsed: 1,
	}, DefaultConfig())
	if got != 10 {
		t.Errorf("score = %d, want 10", got)
	}
}

func TestCompute_SecondAttemptPenalty(t *testing.T) {
	got := Compute(Input{
		MatchedUnits: 1, TotalUnits: 1, FullyCorrect: true,
		PointValue: 10, AttemptsUsed: 2,
	}, DefaultConfig())
	if got != 8 {
		t.Errorf("score = %d, want 8 (10 - one retry penalty)", got)
	}
}

func TestCompute_CorrectNeverBelowOne(t *testing.T) {
	// Third attempt with every hint revealed: penalties exceed the value.
	got := Compute(Input{
		MatchedUnits: 1, TotalUnits: 1, FullyCorrect: true,
		PointValue: 3, AttemptsUsed: 3, HintCost: 6,
	}, DefaultConfig())
	if got != 1 {
		t.Errorf("score = %d, want floor of 1 for a correct answer", got)
	}
}

func TestCompute_IncorrectWithoutPartialIsZero(t *testing.T) {
	got := Compute(Input{
		MatchedUnits: 2, TotalUnits: 3, FullyCorrect: false, AllowPartial: false,
		PointValue: 9, AttemptsUsed: 1,
	}, DefaultConfig())
	if got != 0 {
		t.Errorf("score = %d, want 0 when partial credit is off", got)
	}
}

func TestCompute_PartialCredit(t *testing.T) {
	tests := []struct {
		matched, total, pointValue int
		want                       int
	}{
		{2, 3, 9, 6},  // round(9 * 2/3)
		{1, 3, 10, 3}, // round(10/3)
		{1, 2, 5, 3},  // round(2.5) rounds half away from zero
		{0, 3, 9, 0},
	}
	for _, tc := range tests {
		got := Compute(Input{
			MatchedUnits: tc.matched, TotalUnits: tc.total,
			AllowPartial: true, PointValue: tc.pointValue, AttemptsUsed: 1,
		}, DefaultConfig())
		if got != tc.want {
			t.Errorf("partial %d/%d of %d = %d, want %d", tc.matched, tc.total, tc.pointValue, got, tc.want)
		}
	}
}

func TestCompute_TimeBonus(t *testing.T) {
	cfg := DefaultConfig()

	// Instant answer on a 60s question: floor(20 * 1.0 * 0.15) = 3.
	got := Compute(Input{
		MatchedUnits: 1, TotalUnits: 1, FullyCorrect: true,
		PointValue: 20, TimeLimitSeconds: 60, ElapsedMs: 0, AttemptsUsed: 1,
	}, cfg)
	if got != 23 {
		t.Errorf("instant answer score = %d, want 23", got)
	}

	// Half the time used: floor(20 * 0.5 * 0.15) = 1.
	got = Compute(Input{
		MatchedUnits: 1, TotalUnits: 1, FullyCorrect: true,
		PointValue: 20, TimeLimitSeconds: 60, ElapsedMs: 30_000, AttemptsUsed: 1,
	}, cfg)
	if got != 21 {
		t.Errorf("half-time score = %d, want 21", got)
	}

	// Over time (late grading) never goes negative.
	got = Compute(Input{
		MatchedUnits: 1, TotalUnits: 1, FullyCorrect: true,
		PointValue: 20, TimeLimitSeconds: 60, ElapsedMs: 90_000, AttemptsUsed: 1,
	}, cfg)
	if got != 20 {
		t.Errorf("overtime score = %d, want 20 (no bonus)", got)
	}
}

func TestCompute_NoBonusWhenPartial(t *testing.T) {
	got := Compute(Input{
		MatchedUnits: 1, TotalUnits: 2, AllowPartial: true,
		PointValue: 10, TimeLimitSeconds: 30, ElapsedMs: 0, AttemptsUsed: 1,
	}, DefaultConfig())
	if got != 5 {
		t.Errorf("score = %d, want 5 (speed bonus requires a fully correct answer)", got)
	}
}

func TestCompute_HintCostDeducted(t *testing.T) {
	got := Compute(Input{
		MatchedUnits: 1, TotalUnits: 1, FullyCorrect: true,
		PointValue: 10, AttemptsUsed: 1, HintCost: 3,
	}, DefaultConfig())
	if got != 7 {
		t.Errorf("score = %d, want 7", got)
	}
}

func TestCompute_Untimed_NoBonus(t *testing.T) {
	got := Compute(Input{
		MatchedUnits: 1, TotalUnits: 1, FullyCorrect: true,
		PointValue: 10, TimeLimitSeconds: 0, ElapsedMs: 5, AttemptsUsed: 1,
	}, DefaultConfig())
	if got != 10 {
		t.Errorf("score = %d, want 10", got)
	}
}
