// Package timer provides a repeating countdown measured in seconds of
// simulation time.
package timer

import "math"

// Repeating fires every Duration seconds of ticked time. Completion is
// edge-triggered: JustFinished is true only for the tick that crossed the
// threshold, and the timer then carries the remainder into the next cycle.
type Repeating struct {
	duration      float64
	elapsed       float64
	justFinished  bool
	timesFinished int
}

// NewRepeating creates a timer with the given period in seconds.
func NewRepeating(duration float64) *Repeating {
	return &Repeating{duration: duration}
}

// Duration returns the current period.
func (t *Repeating) Duration() float64 {
	return t.duration
}

// SetDuration changes the period without resetting elapsed time.
func (t *Repeating) SetDuration(duration float64) {
	t.duration = duration
}

// Elapsed returns the time accumulated in the current cycle.
func (t *Repeating) Elapsed() float64 {
	return t.elapsed
}

// SetElapsed moves the timer to a phase inside its cycle.
func (t *Repeating) SetElapsed(elapsed float64) {
	t.elapsed = elapsed
}

// Tick advances the timer by dt seconds and reports whether it finished
// at least one cycle during this tick.
func (t *Repeating) Tick(dt float64) bool {
	t.justFinished = false
	t.timesFinished = 0
	if dt < 0 {
		dt = 0
	}
	t.elapsed += dt

	if t.duration <= 0 {
		t.elapsed = 0
		t.justFinished = true
		t.timesFinished = 1
		return true
	}

	if t.elapsed >= t.duration {
		t.timesFinished = int(t.elapsed / t.duration)
		t.elapsed = math.Mod(t.elapsed, t.duration)
		t.justFinished = true
	}
	return t.justFinished
}

// JustFinished reports whether the last Tick completed a cycle.
func (t *Repeating) JustFinished() bool {
	return t.justFinished
}

// TimesFinished returns how many cycles the last Tick completed.
func (t *Repeating) TimesFinished() int {
	return t.timesFinished
}

// Reset clears elapsed time and the finished flag.
func (t *Repeating) Reset() {
	t.elapsed = 0
	t.justFinished = false
	t.timesFinished = 0
}
