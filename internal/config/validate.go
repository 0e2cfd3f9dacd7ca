package config

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors. Validate wraps them with the offending values.
var (
	ErrInvalidPlayfield       = errors.New("invalid playfield")
	ErrInvalidSpawn           = errors.New("spawn position outside playfield")
	ErrInvalidSpeed           = errors.New("invalid speed")
	ErrInvalidTimers          = errors.New("invalid timers")
	ErrInvalidPlacement       = errors.New("invalid placement settings")
	ErrUnsatisfiableExclusion = errors.New("max exclusion cannot be satisfied inside the playfield")
	ErrInvalidTurbo           = errors.New("invalid turbo settings")
	ErrInvalidTerminal        = errors.New("invalid terminal settings")
)

// UnknownPresetError is returned for an unrecognized difficulty name.
type UnknownPresetError struct {
	Preset string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("config: unknown difficulty %q (want easy, normal or hard)", e.Preset)
}

// Validate checks the configuration once at startup. A configuration that
// passes guarantees that pickup placement always has a valid position.
func (c PizzaConfig) Validate() error {
	pf := c.Playfield
	if pf.SpriteSize <= 0 || pf.Width <= pf.SpriteSize || pf.Height <= pf.SpriteSize {
		return fmt.Errorf("config: %w: %dx%d with sprite %d", ErrInvalidPlayfield, pf.Width, pf.Height, pf.SpriteSize)
	}

	maxX, maxY := pf.Width-pf.SpriteSize, pf.Height-pf.SpriteSize
	if c.Player.SpawnX < 0 || c.Player.SpawnX > maxX || c.Player.SpawnY < 0 || c.Player.SpawnY > maxY {
		return fmt.Errorf("config: %w: (%d, %d) not in [0,%d]x[0,%d]",
			ErrInvalidSpawn, c.Player.SpawnX, c.Player.SpawnY, maxX, maxY)
	}

	if c.Speed.Base <= 0 || c.Speed.Boost <= 0 {
		return fmt.Errorf("config: %w: base %d, boost %d", ErrInvalidSpeed, c.Speed.Base, c.Speed.Boost)
	}

	t := c.Timers
	if t.PickupTimeoutMs <= 0 || t.BoostDurationMs <= 0 || t.BoostCooldownMs < t.BoostDurationMs {
		return fmt.Errorf("config: %w: timeout %dms, boost %dms, cooldown %dms",
			ErrInvalidTimers, t.PickupTimeoutMs, t.BoostDurationMs, t.BoostCooldownMs)
	}

	p := c.Placement
	if p.BaseExclusion < 0 || p.ExclusionStep < 0 || p.StepEvery <= 0 || p.MaxExclusion < 0 || p.MaxAttempts <= 0 {
		return fmt.Errorf("config: %w: %+v", ErrInvalidPlacement, p)
	}
	if reach := PlacementReach(pf); float64(p.MaxExclusion) > reach {
		return fmt.Errorf("config: %w: max_exclusion %d > %.1f", ErrUnsatisfiableExclusion, p.MaxExclusion, reach)
	}

	if c.Turbo.Offset <= 0 || c.Turbo.Spread < 0 {
		return fmt.Errorf("config: %w: offset %d, spread %d", ErrInvalidTurbo, c.Turbo.Offset, c.Turbo.Spread)
	}

	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 || c.Terminal.HoldMs < 0 {
		return fmt.Errorf("config: %w: %+v", ErrInvalidTerminal, c.Terminal)
	}
	return nil
}

// PlacementReach returns the largest exclusion radius that every player
// position can satisfy. Pickups are sampled on [0, W-S) x [0, H-S); from any
// point the farthest corner of that sampling area is at least half its
// diagonal away, and corners are valid samples.
func PlacementReach(pf PlayfieldConfig) float64 {
	spanX := float64(pf.Width - pf.SpriteSize - 1)
	spanY := float64(pf.Height - pf.SpriteSize - 1)
	return math.Hypot(spanX/2, spanY/2)
}
