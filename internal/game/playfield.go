package game

import "github.com/vovakirdan/pizza-rush/internal/core"

// Playfield is the immutable play area. Every entity is a Size x Size
// square whose top-left corner lies in [0, W-Size] x [0, H-Size].
type Playfield struct {
	W, H int
	Size int
}

// MaxX returns the largest valid x for an entity.
func (p Playfield) MaxX() int {
	return p.W - p.Size
}

// MaxY returns the largest valid y for an entity.
func (p Playfield) MaxY() int {
	return p.H - p.Size
}

// Bounds returns the whole playfield as a rectangle.
func (p Playfield) Bounds() core.Rect {
	return core.NewRect(0, 0, p.W, p.H)
}

// Entity returns a sprite rectangle at (x, y).
func (p Playfield) Entity(x, y int) core.Rect {
	return core.NewRect(x, y, p.Size, p.Size)
}

// Clamp moves r back inside the playfield, each axis independently.
func (p Playfield) Clamp(r core.Rect) core.Rect {
	r.X = core.Clamp(r.X, 0, p.MaxX())
	r.Y = core.Clamp(r.Y, 0, p.MaxY())
	return r
}

// Inside reports whether r lies fully within the playfield.
func (p Playfield) Inside(r core.Rect) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= p.W && r.Bottom() <= p.H
}

// Heading is the set of directions held during a tick.
// Opposite directions cancel out.
type Heading struct {
	Up, Down, Left, Right bool
}

// HeadingFrom extracts the held directions from an input frame.
func HeadingFrom(in core.InputFrame) Heading {
	return Heading{
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	}
}

// Move applies speed once per held direction and clamps the result to the
// playfield. Diagonals sum both axes without normalization.
func (p Playfield) Move(pos core.Rect, h Heading, speed int) core.Rect {
	if h.Up {
		pos.Y -= speed
	}
	if h.Down {
		pos.Y += speed
	}
	if h.Left {
		pos.X -= speed
	}
	if h.Right {
		pos.X += speed
	}
	return p.Clamp(pos)
}
