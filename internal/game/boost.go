package game

import "github.com/vovakirdan/pizza-rush/internal/core"

// Boost is the turbo state machine: Idle until triggered and eligible,
// then Active for Duration, then a cooldown measured from activation.
type Boost struct {
	duration core.Millis
	cooldown core.Millis

	active         bool
	activatedAt    core.Millis
	nextEligibleAt core.Millis
}

// BoostTransition reports what Update changed.
type BoostTransition int

const (
	BoostUnchanged BoostTransition = iota
	BoostStarted
	BoostEnded
)

// NewBoost creates an idle boost that is eligible immediately.
func NewBoost(duration, cooldown core.Millis) Boost {
	return Boost{duration: duration, cooldown: cooldown}
}

// Reset returns the boost to Idle, eligible from now.
func (b *Boost) Reset(now core.Millis) {
	b.active = false
	b.activatedAt = 0
	b.nextEligibleAt = now
}

// Update evaluates both transitions for one tick. Activation is checked
// first, so a boost that ends in this tick cannot restart in the same tick.
func (b *Boost) Update(now core.Millis, trigger bool) BoostTransition {
	started := false
	if trigger && !b.active && now >= b.nextEligibleAt {
		b.active = true
		b.activatedAt = now
		started = true
	}
	if b.active && now-b.activatedAt > b.duration {
		b.active = false
		b.nextEligibleAt = now + (b.cooldown - b.duration)
		return BoostEnded
	}
	if started {
		return BoostStarted
	}
	return BoostUnchanged
}

// Active reports whether the turbo is on.
func (b Boost) Active() bool {
	return b.active
}

// ActivatedAt returns the time of the latest activation.
func (b Boost) ActivatedAt() core.Millis {
	return b.activatedAt
}

// NextEligibleAt returns the earliest time the boost may activate again.
func (b Boost) NextEligibleAt() core.Millis {
	return b.nextEligibleAt
}

// Ready reports whether a trigger at now would activate the boost.
func (b Boost) Ready(now core.Millis) bool {
	return !b.active && now >= b.nextEligibleAt
}

// Speed returns the effective speed for the current state.
func (b Boost) Speed(base, boosted int) int {
	if b.active {
		return boosted
	}
	return base
}
