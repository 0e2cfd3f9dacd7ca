// Package game implements Pizza Rush: the player collects pizzas before a
// countdown runs out, each pickup resets the countdown, and score milestones
// or the boost key grant a short turbo with a cooldown.
//
// The game is a pure state machine driven by an input snapshot and a
// monotonic timestamp per tick; it never reads a clock or a keyboard itself.
package game

import (
	"github.com/vovakirdan/pizza-rush/internal/config"
	"github.com/vovakirdan/pizza-rush/internal/core"
)

// Game holds the round state machine and the current session.
type Game struct {
	cfg    config.PizzaConfig
	field  Playfield
	rng    core.Random
	placer *Placer

	round           core.Round
	gameOverPending bool // Timeout seen; GameOver starts next tick
	session         Session
	timeRemaining   float64
	tick            uint64
}

// New creates a game in the Splash state. The random source is used for
// pickup placement and turbo thresholds and should be seeded once by the caller.
func New(cfg config.PizzaConfig, rng core.Random) *Game {
	field := Playfield{
		W:    cfg.Playfield.Width,
		H:    cfg.Playfield.Height,
		Size: cfg.Playfield.SpriteSize,
	}
	g := &Game{
		cfg:    cfg,
		field:  field,
		rng:    rng,
		placer: NewPlacer(field, cfg.Placement, rng),
		round:  core.RoundSplash,
	}
	g.session.Player = g.spawn()
	g.session.Boost = g.newBoost()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pizza"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pizza Rush"
}

// Playfield returns the play area.
func (g *Game) Playfield() Playfield {
	return g.field
}

// Round returns the current round state.
func (g *Game) Round() core.Round {
	return g.round
}

// Session returns a copy of the current session.
func (g *Game) Session() Session {
	return g.session
}

// MinDist returns the current pickup exclusion radius.
func (g *Game) MinDist() int {
	return g.placer.MinDist(g.session.Score)
}

// Reset reinitializes the session and enters Playing. It is the single reset
// path used by splash confirm, game over confirm and manual restart.
func (g *Game) Reset(now core.Millis) {
	g.resetSession(now)
	g.round = core.RoundPlaying
}

func (g *Game) resetSession(now core.Millis) {
	player := g.spawn()
	g.session = Session{
		Player:         player,
		Score:          0,
		NextTurboScore: g.rollTurboThreshold(0),
		LastPickup:     now,
		Boost:          g.newBoost(),
	}
	g.session.Boost.Reset(now)
	g.session.Pickup = g.placer.Place(0, player)
	g.gameOverPending = false
	g.timeRemaining = 1
}

// Step advances the game by one tick at time now.
func (g *Game) Step(in core.InputFrame, now core.Millis) core.StepResult {
	g.tick++

	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}

	var events []core.Event
	switch g.round {
	case core.RoundSplash, core.RoundGameOver:
		if in.Has(core.ActionConfirm) {
			g.Reset(now)
			events = append(events, core.EventRoundStarted)
		}

	case core.RoundPlaying:
		if g.gameOverPending {
			g.gameOverPending = false
			g.round = core.RoundGameOver
			events = append(events, core.EventGameOver)
			break
		}
		if in.Has(core.ActionRestart) {
			g.resetSession(now)
			events = append(events, core.EventRestarted)
		}
		events = g.update(in, now, events)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// update runs the per-tick rules of the Playing state, in order:
// boost, speed, motion, pickup, countdown, timeout.
func (g *Game) update(in core.InputFrame, now core.Millis, events []core.Event) []core.Event {
	s := &g.session

	byScore := s.Score >= s.NextTurboScore
	switch s.Boost.Update(now, in.Has(core.ActionBoost) || byScore) {
	case BoostStarted:
		if byScore {
			s.NextTurboScore = g.rollTurboThreshold(s.Score)
		}
		events = append(events, core.EventBoostStarted)
	case BoostEnded:
		events = append(events, core.EventBoostEnded)
	}

	speed := s.Boost.Speed(g.cfg.Speed.Base, g.cfg.Speed.Boost)
	s.Player = g.field.Move(s.Player, HeadingFrom(in), speed)

	if s.Player.Intersects(s.Pickup) {
		s.LastPickup = now
		s.Score++
		s.Pickup = g.placer.Place(s.Score, s.Player)
		events = append(events, core.EventPickup)
	}

	timeout := core.Millis(g.cfg.Timers.PickupTimeoutMs)
	g.timeRemaining = s.TimeRemaining(now, timeout)

	if s.TimedOut(now, timeout) {
		g.gameOverPending = true
		events = append(events, core.EventTimeout)
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Round:         g.round,
		Score:         g.session.Score,
		TimeRemaining: g.timeRemaining,
		Boosting:      g.session.Boost.Active(),
	}
}

func (g *Game) spawn() core.Rect {
	return g.field.Entity(g.cfg.Player.SpawnX, g.cfg.Player.SpawnY)
}

func (g *Game) newBoost() Boost {
	return NewBoost(
		core.Millis(g.cfg.Timers.BoostDurationMs),
		core.Millis(g.cfg.Timers.BoostCooldownMs),
	)
}

// rollTurboThreshold returns score + offset + rand[0, spread].
func (g *Game) rollTurboThreshold(score int) int {
	return score + g.cfg.Turbo.Offset + g.rng.Intn(g.cfg.Turbo.Spread+1)
}
