package view

import "time"

// EaseOutCubic maps linear progress to a decelerating curve: 1-(1-p)^3.
// Monotonic on [0,1] and bounded by [0,1].
func EaseOutCubic(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	inv := 1 - p
	return 1 - inv*inv*inv
}

// Animation is the explicit state machine behind every eased transition:
// a start instant, a duration, and the value range being traversed.
type Animation struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
}

// NewAnimation starts an eased transition at the given instant.
func NewAnimation(from, to float64, start time.Time, duration time.Duration) *Animation {
	if duration <= 0 {
		duration = time.Millisecond
	}
	return &Animation{from: from, to: to, start: start, duration: duration}
}

// Target returns the terminal value of the transition.
func (a *Animation) Target() float64 {
	if a == nil {
		return 0
	}
	return a.to
}

// Progress returns elapsed/duration clamped to [0,1].
func (a *Animation) Progress(now time.Time) float64 {
	if a == nil {
		return 1
	}
	elapsed := now.Sub(a.start)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= a.duration {
		return 1
	}
	return float64(elapsed) / float64(a.duration)
}

// Value returns the eased value at the given instant. At completion it is
// exactly the target, so callers never see floating-point drift.
func (a *Animation) Value(now time.Time) float64 {
	if a == nil {
		return 0
	}
	p := a.Progress(now)
	if p >= 1 {
		return a.to
	}
	return a.from + (a.to-a.from)*EaseOutCubic(p)
}

// Done reports whether the transition has reached its target.
func (a *Animation) Done(now time.Time) bool {
	return a == nil || a.Progress(now) >= 1
}
