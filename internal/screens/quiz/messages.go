package quiz

import "time"

// timerTickMsg drives the countdown display and polls async collaborators.
type timerTickMsg time.Time

// runEndMsg triggers the end-of-run summary.
type runEndMsg struct{}
