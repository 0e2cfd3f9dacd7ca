package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/pizza-rush/internal/core"
)

func defaultField() Playfield {
	cfg := testConfig()
	return Playfield{W: cfg.Playfield.Width, H: cfg.Playfield.Height, Size: cfg.Playfield.SpriteSize}
}

func TestMinDistSchedule(t *testing.T) {
	p := NewPlacer(defaultField(), testConfig().Placement, rand.New(rand.NewSource(1)))

	tests := []struct {
		score    int
		expected int
	}{
		{0, 20},
		{29, 20},
		{30, 40},
		{59, 40},
		{60, 60},
		{239, 160},
		{240, 180},
		{2400, 180},
		{100000, 180},
	}

	for _, tc := range tests {
		if got := p.MinDist(tc.score); got != tc.expected {
			t.Errorf("MinDist(%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}
}

func TestMinDistMonotonic(t *testing.T) {
	p := NewPlacer(defaultField(), testConfig().Placement, rand.New(rand.NewSource(1)))

	prev := p.MinDist(0)
	for s := 1; s <= 5000; s++ {
		d := p.MinDist(s)
		if d < prev {
			t.Fatalf("MinDist decreased at score %d: %d -> %d", s, prev, d)
		}
		if s >= 2400 && d != 180 {
			t.Fatalf("MinDist(%d) = %d, expected constant 180", s, d)
		}
		prev = d
	}
}

func TestPlaceRespectsExclusionAndBounds(t *testing.T) {
	field := defaultField()
	rng := rand.New(rand.NewSource(2024))
	p := NewPlacer(field, testConfig().Placement, rng)

	for i := 0; i < 2000; i++ {
		score := rng.Intn(400)
		player := field.Entity(rng.Intn(field.MaxX()+1), rng.Intn(field.MaxY()+1))

		pickup := p.Place(score, player)

		if !field.Inside(pickup) {
			t.Fatalf("Pickup %+v outside playfield", pickup)
		}
		if pickup.W != field.Size || pickup.H != field.Size {
			t.Fatalf("Pickup size %dx%d, expected %d", pickup.W, pickup.H, field.Size)
		}
		if d := pickup.CenterDistance(player); d < float64(p.MinDist(score)) {
			t.Fatalf("Pickup %+v at distance %.1f from player %+v, min %d", pickup, d, player, p.MinDist(score))
		}
	}
}

func TestPlaceWorstCasePlayerPositions(t *testing.T) {
	field := defaultField()
	p := NewPlacer(field, testConfig().Placement, rand.New(rand.NewSource(5)))

	positions := []core.Rect{
		field.Entity(0, 0),
		field.Entity(field.MaxX(), field.MaxY()),
		field.Entity(field.MaxX()/2, field.MaxY()/2),
	}
	for _, player := range positions {
		for i := 0; i < 200; i++ {
			pickup := p.Place(5000, player)
			if d := pickup.CenterDistance(player); d < 180 {
				t.Fatalf("Player %+v: pickup %+v only %.1f away at max exclusion", player, pickup, d)
			}
		}
	}
}

func TestPlaceSamplesHalfOpenRange(t *testing.T) {
	rng := newScriptedRand(400, 200)
	p := NewPlacer(defaultField(), testConfig().Placement, rng)

	p.Place(0, defaultField().Entity(60, 100))

	if len(rng.calls) != 2 {
		t.Fatalf("Expected one sample (2 calls), got %v", rng.calls)
	}
	if rng.calls[0] != 416 || rng.calls[1] != 256 {
		t.Errorf("Intn called with %v, expected [416 256]", rng.calls)
	}
}

func TestPlaceFallsBackToFarthestCandidate(t *testing.T) {
	cfg := testConfig().Placement
	cfg.MaxAttempts = 3
	field := defaultField()
	player := field.Entity(60, 100)

	// Three candidates, all inside the exclusion radius of 20
	rng := newScriptedRand(
		60, 100, // distance 0
		70, 100, // distance 10
		65, 100, // distance 5
	)
	p := NewPlacer(field, cfg, rng)

	pickup := p.Place(0, player)
	if pickup.X != 70 || pickup.Y != 100 {
		t.Errorf("Fallback pickup = (%d, %d), expected farthest candidate (70, 100)", pickup.X, pickup.Y)
	}
	if len(rng.calls) != 6 {
		t.Errorf("Expected exactly %d attempts, got %d calls", cfg.MaxAttempts, len(rng.calls))
	}
}

func TestPlaceAcceptsExactMinDist(t *testing.T) {
	field := defaultField()
	player := field.Entity(60, 100)
	// Center distance exactly 20 along x
	rng := newScriptedRand(80, 100)
	p := NewPlacer(field, testConfig().Placement, rng)

	pickup := p.Place(0, player)
	if pickup.X != 80 || pickup.Y != 100 {
		t.Errorf("Candidate at exactly MinDist should be accepted, got (%d, %d)", pickup.X, pickup.Y)
	}
}
