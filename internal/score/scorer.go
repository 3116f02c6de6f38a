// Package score turns a match breakdown plus question metadata into a
// final point score. Pure functions only; the evaluation order (partial
// base, time bonus, then penalties, then clamp) is fixed so scores are
// reproducible.
package score

import "math"

// Config holds the scoring constants.
type Config struct {
	// BonusFactor scales the speed bonus on timed questions. Kept small so
	// speed never dominates the base score.
	BonusFactor float64

	// AttemptPenalty is deducted once per attempt beyond the first.
	AttemptPenalty int
}

// DefaultConfig returns the production scoring constants.
func DefaultConfig() Config {
	return Config{
		BonusFactor:    0.15,
		AttemptPenalty: 2,
	}
}

// Input carries everything Compute needs for one submission.
type Input struct {
	MatchedUnits int
	TotalUnits   int

	// FullyCorrect is true when every unit matched.
	FullyCorrect bool

	// AllowPartial enables proportional credit when only some units matched.
	AllowPartial bool

	PointValue       int
	ElapsedMs        int64
	TimeLimitSeconds int // zero means untimed: no speed bonus
	AttemptsUsed     int
	HintCost         int // summed cost of every revealed hint
}

// Compute returns the final score for a submission.
//
// A fully correct answer always earns at least 1 point, no matter how many
// retries and hints it took. Anything else bottoms out at 0.
func Compute(in Input, cfg Config) int {
	if !in.FullyCorrect && !in.AllowPartial {
		return 0
	}

	var base int
	switch {
	case in.FullyCorrect:
		base = in.PointValue
	case in.TotalUnits > 0:
		base = int(math.Round(float64(in.PointValue) * float64(in.MatchedUnits) / float64(in.TotalUnits)))
	}

	bonus := 0
	if in.FullyCorrect && in.TimeLimitSeconds > 0 {
		remaining := float64(in.TimeLimitSeconds) - float64(in.ElapsedMs)/1000
		ratio := remaining / float64(in.TimeLimitSeconds)
		if ratio < 0 {
			ratio = 0
		}
		bonus = int(math.Floor(float64(in.PointValue) * ratio * cfg.BonusFactor))
	}

	penalty := in.HintCost
	if in.AttemptsUsed > 1 {
		penalty += (in.AttemptsUsed - 1) * cfg.AttemptPenalty
	}

	final := base + bonus - penalty
	floor := 0
	if in.FullyCorrect {
		floor = 1
	}
	if final < floor {
		final = floor
	}
	return final
}
