package game

import (
	"testing"

	"github.com/vovakirdan/pizza-rush/internal/core"
)

func TestSnapshotSplash(t *testing.T) {
	g := New(testConfig(), newScriptedRand())
	snap := g.Snapshot(0)

	if snap.Round != core.RoundSplash {
		t.Errorf("Round = %v, expected splash", snap.Round)
	}
	if snap.Title != "Game Start!" || snap.Subtitle != "Press Enter to start" {
		t.Errorf("Splash text = %q / %q", snap.Title, snap.Subtitle)
	}
	if len(snap.Entities) != 1 || snap.Entities[0].Role != RoleBackground {
		t.Errorf("Splash should only draw the background, got %+v", snap.Entities)
	}
	if snap.Entities[0].Rect != core.NewRect(0, 0, 480, 320) {
		t.Errorf("Background = %+v, expected full playfield", snap.Entities[0].Rect)
	}
}

func TestSnapshotPlayingDrawOrder(t *testing.T) {
	g := startedGame(newScriptedRand(0, 400, 250), 0)
	snap := g.Snapshot(0)

	if snap.Title != "" || snap.Subtitle != "" {
		t.Errorf("No gate text expected while playing, got %q / %q", snap.Title, snap.Subtitle)
	}
	if len(snap.Entities) != 3 {
		t.Fatalf("Expected 3 entities, got %d", len(snap.Entities))
	}

	roles := []Role{RoleBackground, RolePickup, RolePlayer}
	for i, role := range roles {
		if snap.Entities[i].Role != role {
			t.Errorf("Entity %d role = %v, expected %v", i, snap.Entities[i].Role, role)
		}
	}
	if snap.Entities[1].Rect != g.Session().Pickup {
		t.Errorf("Pickup entity %+v, expected %+v", snap.Entities[1].Rect, g.Session().Pickup)
	}
	if snap.Entities[2].Rect != g.Session().Player {
		t.Errorf("Player entity %+v, expected %+v", snap.Entities[2].Rect, g.Session().Player)
	}
	if snap.MinDist != 20 || snap.NextTurboScore != 30 {
		t.Errorf("MinDist=%d NextTurboScore=%d, expected 20 and 30", snap.MinDist, snap.NextTurboScore)
	}
}

func TestSnapshotGameOver(t *testing.T) {
	g := startedGame(newScriptedRand(0, 400, 250), 0)
	g.Step(idle(), 2500)
	g.Step(idle(), 2516)

	snap := g.Snapshot(2516)
	if snap.Round != core.RoundGameOver {
		t.Fatalf("Round = %v, expected game over", snap.Round)
	}
	if snap.Title != "Game Over" || snap.Subtitle != "Press Enter to restart" {
		t.Errorf("Game over text = %q / %q", snap.Title, snap.Subtitle)
	}
	if len(snap.Entities) != 1 {
		t.Errorf("Game over should only draw the background, got %d entities", len(snap.Entities))
	}
}

func TestSnapshotBoostStatus(t *testing.T) {
	g := startedGame(newScriptedRand(0, 400, 250), 0)

	if s := g.Snapshot(0).Boost; s != BoostStatusReady {
		t.Errorf("Boost = %v, expected ready", s)
	}

	g.Step(core.FrameOf(core.ActionBoost), 16)
	if s := g.Snapshot(16).Boost; s != BoostStatusActive {
		t.Errorf("Boost = %v, expected active", s)
	}

	g.session.LastPickup = 1100
	g.Step(idle(), 1100)
	if s := g.Snapshot(1100).Boost; s != BoostStatusCooling {
		t.Errorf("Boost = %v, expected cooling", s)
	}
	if s := g.Snapshot(1100 + 4000).Boost; s != BoostStatusReady {
		t.Errorf("Boost = %v, expected ready after cooldown", s)
	}
}

func TestSnapshotTickCounts(t *testing.T) {
	g := New(testConfig(), newScriptedRand(0, 400, 250))
	for i := 0; i < 5; i++ {
		g.Step(idle(), core.Millis(i)*tickMs)
	}
	if tick := g.Snapshot(0).Tick; tick != 5 {
		t.Errorf("Tick = %d, expected 5", tick)
	}
}

func TestRoleString(t *testing.T) {
	if RolePlayer.String() != "player" || Role(42).String() != "unknown" {
		t.Errorf("Unexpected role names: %q %q", RolePlayer.String(), Role(42).String())
	}
}
