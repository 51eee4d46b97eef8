package domain

// TimerState describes what a user is doing right now. It is never stored:
// it is always derived from which intervals are currently open.
type TimerState string

const (
	TimerIdle    TimerState = "idle"
	TimerRunning TimerState = "running"
	TimerOnBreak TimerState = "on_break"
)

// DeriveTimerState computes the timer state from open-interval presence.
// An open work interval wins over an open break interval; the two being
// open at once is an invariant violation the state machine never produces.
func DeriveTimerState(hasOpenWork, hasOpenBreak bool) TimerState {
	switch {
	case hasOpenWork:
		return TimerRunning
	case hasOpenBreak:
		return TimerOnBreak
	default:
		return TimerIdle
	}
}

type QueryStatus string

const (
	QueryOpen     QueryStatus = "open"
	QueryResolved QueryStatus = "resolved"
)
