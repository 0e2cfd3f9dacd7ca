package game

import (
	"github.com/vovakirdan/pizza-rush/internal/config"
	"github.com/vovakirdan/pizza-rush/internal/core"
)

// Placer chooses pickup positions away from the player. The exclusion
// radius grows with the score up to a cap.
type Placer struct {
	field       Playfield
	rng         core.Random
	base        int
	step        int
	every       int
	max         int
	maxAttempts int
}

// NewPlacer creates a placer for the playfield using the given random source.
func NewPlacer(field Playfield, cfg config.PlacementConfig, rng core.Random) *Placer {
	return &Placer{
		field:       field,
		rng:         rng,
		base:        cfg.BaseExclusion,
		step:        cfg.ExclusionStep,
		every:       core.Max(cfg.StepEvery, 1),
		max:         cfg.MaxExclusion,
		maxAttempts: core.Max(cfg.MaxAttempts, 1),
	}
}

// MinDist returns the exclusion radius for a score:
// min(base + floor(score/every)*step, max).
func (p *Placer) MinDist(score int) int {
	if score < 0 {
		score = 0
	}
	return core.Min(p.base+(score/p.every)*p.step, p.max)
}

// Place samples uniform positions until one is at least MinDist(score) from
// the player, center to center. Once the attempt cap is reached it returns
// the farthest candidate seen, which is always inside the playfield.
func (p *Placer) Place(score int, player core.Rect) core.Rect {
	minDist := float64(p.MinDist(score))

	var best core.Rect
	bestDist := -1.0
	for range p.maxAttempts {
		candidate := p.sample()
		d := candidate.CenterDistance(player)
		if d >= minDist {
			return candidate
		}
		if d > bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// sample returns a uniform position with x in [0, W-S) and y in [0, H-S).
func (p *Placer) sample() core.Rect {
	x := p.rng.Intn(core.Max(p.field.MaxX(), 1))
	y := p.rng.Intn(core.Max(p.field.MaxY(), 1))
	return p.field.Entity(x, y)
}
