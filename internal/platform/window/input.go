package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/pizza-rush/internal/core"
)

// Keyboard reports key state for the current tick.
type Keyboard interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// ebitenKeyboard reads the real keyboard through Ebiten.
type ebitenKeyboard struct{}

func (ebitenKeyboard) Pressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (ebitenKeyboard) JustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

// binding maps a game action to its keys.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

// Held actions are polled every tick, single-shot ones only on the press tick.
var (
	heldBindings = []binding{
		{core.ActionUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
		{core.ActionDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
		{core.ActionLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
		{core.ActionRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
		{core.ActionBoost, []ebiten.Key{ebiten.KeyE}},
	}
	shotBindings = []binding{
		{core.ActionConfirm, []ebiten.Key{ebiten.KeyA, ebiten.KeyEnter, ebiten.KeySpace}},
		{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
		{core.ActionQuit, []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}},
	}
)

// ReadInput builds the input frame for one tick from the keyboard.
func ReadInput(kb Keyboard) core.InputFrame {
	f := core.NewInputFrame()
	for _, b := range heldBindings {
		for _, k := range b.keys {
			if kb.Pressed(k) {
				f.Set(b.action)
				break
			}
		}
	}
	for _, b := range shotBindings {
		for _, k := range b.keys {
			if kb.JustPressed(k) {
				f.Set(b.action)
				break
			}
		}
	}
	return f
}
