package game

import (
	"math/rand"

	"github.com/vovakirdan/pizza-rush/internal/config"
	"github.com/vovakirdan/pizza-rush/internal/core"
)

// scriptedRand returns queued values (modulo n) before falling back to a
// seeded source, so tests can pin pickup positions and turbo rolls.
type scriptedRand struct {
	queue    []int
	calls    []int // n of every Intn call
	fallback *rand.Rand
}

func newScriptedRand(values ...int) *scriptedRand {
	return &scriptedRand{queue: values, fallback: rand.New(rand.NewSource(1))}
}

func (r *scriptedRand) Intn(n int) int {
	r.calls = append(r.calls, n)
	if len(r.queue) > 0 {
		v := r.queue[0]
		r.queue = r.queue[1:]
		return v % n
	}
	return r.fallback.Intn(n)
}

func (r *scriptedRand) push(values ...int) {
	r.queue = append(r.queue, values...)
}

func testConfig() config.PizzaConfig {
	return config.DefaultPizzaConfig()
}

// startedGame returns a game that confirmed the splash at time now.
func startedGame(rng core.Random, now core.Millis) *Game {
	g := New(testConfig(), rng)
	g.Step(core.FrameOf(core.ActionConfirm), now)
	return g
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}
