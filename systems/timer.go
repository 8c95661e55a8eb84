package systems

import "time"

// SpawnTimer is a repeating countdown. A zero duration fires on the first
// tick.
type SpawnTimer struct {
	Duration time.Duration
	Elapsed  time.Duration
	fired    bool
}

// NewSpawnTimer returns a timer that fires after d.
func NewSpawnTimer(d time.Duration) *SpawnTimer {
	return &SpawnTimer{Duration: d}
}

// Tick advances the timer by dt and reports whether it fired. Elapsed time
// past the duration carries into the next cycle.
func (t *SpawnTimer) Tick(dt time.Duration) bool {
	t.Elapsed += dt
	t.fired = t.Elapsed >= t.Duration
	if !t.fired {
		return false
	}
	if t.Duration > 0 {
		t.Elapsed %= t.Duration
	} else {
		t.Elapsed = 0
	}
	return true
}

// JustFired reports whether the last Tick fired.
func (t *SpawnTimer) JustFired() bool {
	return t.fired
}

// Reset rearms the timer with a new duration, keeping carried-over time.
func (t *SpawnTimer) Reset(d time.Duration) {
	t.Duration = d
}

// Remaining is the time left until the next firing.
func (t *SpawnTimer) Remaining() time.Duration {
	if t.Elapsed >= t.Duration {
		return 0
	}
	return t.Duration - t.Elapsed
}
