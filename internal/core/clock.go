package core

import (
	"math/rand"
	"time"
)

// Millis is a point on the monotonic game clock, in milliseconds.
type Millis int64

// Duration converts a millisecond count to a time.Duration.
func (m Millis) Duration() time.Duration {
	return time.Duration(m) * time.Millisecond
}

// Clock is the single time source of the game. Implementations must never
// go backwards.
type Clock interface {
	Now() Millis
}

// MonotonicClock counts milliseconds since it was created using the
// runtime's monotonic reading, so wall clock changes do not affect it.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock creates a clock starting at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns the milliseconds elapsed since the clock was created.
func (c *MonotonicClock) Now() Millis {
	return Millis(time.Since(c.start).Milliseconds())
}

// ManualClock is a clock advanced explicitly, used for deterministic replay.
type ManualClock struct {
	now Millis
}

// NewManualClock creates a manual clock at the given time.
func NewManualClock(start Millis) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() Millis {
	return c.now
}

// Advance moves the clock forward. Negative values are ignored.
func (c *ManualClock) Advance(d Millis) Millis {
	if d > 0 {
		c.now += d
	}
	return c.now
}

// Random is the uniform integer source used by the game.
// *rand.Rand satisfies it.
type Random interface {
	// Intn returns a uniform integer in [0, n). n must be positive.
	Intn(n int) int
}

// NewRandom returns a random source seeded once with the given seed.
// A zero seed means "unpredictable" and uses the current time.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
