package game

import "github.com/vovakirdan/pizza-rush/internal/core"

// Session is all mutable state of one round. It is owned by Game and
// rebuilt from scratch on every entry into Playing.
type Session struct {
	Player         core.Rect
	Pickup         core.Rect
	Score          int
	NextTurboScore int
	LastPickup     core.Millis
	Boost          Boost
}

// Elapsed returns the time since the last pickup (or round start).
func (s Session) Elapsed(now core.Millis) core.Millis {
	return now - s.LastPickup
}

// TimeRemaining returns the countdown fraction clamp((T - elapsed) / T, 0, 1).
func (s Session) TimeRemaining(now, timeout core.Millis) float64 {
	if timeout <= 0 {
		return 0
	}
	left := float64(timeout-s.Elapsed(now)) / float64(timeout)
	return core.ClampF(left, 0, 1)
}

// TimedOut reports whether the countdown has strictly passed the timeout.
func (s Session) TimedOut(now, timeout core.Millis) bool {
	return s.Elapsed(now) > timeout
}
