package game

import "github.com/vovakirdan/pizza-rush/internal/core"

// Role tags an entity for the renderer.
type Role int

const (
	RoleBackground Role = iota
	RolePickup
	RolePlayer
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleBackground:
		return "background"
	case RolePickup:
		return "pickup"
	case RolePlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Entity is something to draw, in logical playfield units.
type Entity struct {
	Role Role
	Rect core.Rect
}

// BoostStatus summarizes the turbo for the HUD.
type BoostStatus string

const (
	BoostStatusReady   BoostStatus = "ready"
	BoostStatusActive  BoostStatus = "active"
	BoostStatusCooling BoostStatus = "cooling"
)

// Snapshot captures everything a renderer needs after a tick, and the full
// session state for determinism testing.
type Snapshot struct {
	Tick           uint64
	Round          core.Round
	Score          int
	TimeRemaining  float64
	Boost          BoostStatus
	NextTurboScore int
	MinDist        int
	Entities       []Entity // Draw order: background, pickup, player
	Title          string   // Gate text, empty while playing
	Subtitle       string
}

// Snapshot returns the current game snapshot at time now.
func (g *Game) Snapshot(now core.Millis) Snapshot {
	snap := Snapshot{
		Tick:           g.tick,
		Round:          g.round,
		Score:          g.session.Score,
		TimeRemaining:  g.timeRemaining,
		Boost:          g.boostStatus(now),
		NextTurboScore: g.session.NextTurboScore,
		MinDist:        g.MinDist(),
		Entities: []Entity{
			{Role: RoleBackground, Rect: g.field.Bounds()},
		},
	}

	switch g.round {
	case core.RoundSplash:
		snap.Title = g.cfg.Text.SplashTitle
		snap.Subtitle = g.cfg.Text.SplashSubtitle
	case core.RoundGameOver:
		snap.Title = g.cfg.Text.GameOverTitle
		snap.Subtitle = g.cfg.Text.GameOverSubtitle
	default:
		snap.Entities = append(snap.Entities,
			Entity{Role: RolePickup, Rect: g.session.Pickup},
			Entity{Role: RolePlayer, Rect: g.session.Player},
		)
	}
	return snap
}

func (g *Game) boostStatus(now core.Millis) BoostStatus {
	b := g.session.Boost
	switch {
	case b.Active():
		return BoostStatusActive
	case b.Ready(now):
		return BoostStatusReady
	default:
		return BoostStatusCooling
	}
}
