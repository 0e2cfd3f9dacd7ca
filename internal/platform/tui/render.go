package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pizza-rush/internal/core"
	"github.com/vovakirdan/pizza-rush/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

const (
	playerRune = '█'
	pickupRune = '@'
	groundRune = '·'
)

// Viewport maps logical playfield units onto terminal cells.
type Viewport struct {
	CellW int // Logical units per column
	CellH int // Logical units per row
	Cols  int // Playfield width in cells
	Rows  int // Playfield height in cells
}

// NewViewport creates a viewport for a playfield of w×h logical units.
func NewViewport(w, h, cellW, cellH int) Viewport {
	cellW, cellH = core.Max(cellW, 1), core.Max(cellH, 1)
	return Viewport{
		CellW: cellW,
		CellH: cellH,
		Cols:  (w + cellW - 1) / cellW,
		Rows:  (h + cellH - 1) / cellH,
	}
}

// ScreenSize returns the screen size needed for the playfield and its border.
func (v Viewport) ScreenSize() (int, int) {
	return v.Cols + 2, v.Rows + 2
}

// Cells converts a logical rect into the cells it covers, inside the border.
func (v Viewport) Cells(r core.Rect) core.Rect {
	x0 := r.X / v.CellW
	y0 := r.Y / v.CellH
	x1 := core.Min((r.Right()+v.CellW-1)/v.CellW, v.Cols)
	y1 := core.Min((r.Bottom()+v.CellH-1)/v.CellH, v.Rows)
	return core.NewRect(x0+1, y0+1, core.Max(x1-x0, 0), core.Max(y1-y0, 0))
}

// DrawSnapshot draws the playfield, its entities and any gate text.
func DrawSnapshot(s *core.Screen, snap game.Snapshot, v Viewport) {
	s.Clear()
	w, h := v.ScreenSize()

	for _, e := range snap.Entities {
		cells := v.Cells(e.Rect)
		switch e.Role {
		case game.RoleBackground:
			s.DrawRect(cells, groundRune, core.ColorGray)
		case game.RolePickup:
			s.DrawRect(cells, pickupRune, core.ColorOrange)
		case game.RolePlayer:
			color := core.ColorCyan
			if snap.Boost == game.BoostStatusActive {
				color = core.ColorBrightYellow
			}
			s.DrawRect(cells, playerRune, color)
		}
	}

	s.DrawBox(core.NewRect(0, 0, w, h), core.ColorWhite)

	if snap.Title != "" {
		drawGate(s, w, h, snap.Title, snap.Subtitle)
	}
}

// drawGate draws a centered message box with a title and a subtitle.
func drawGate(s *core.Screen, w, h int, title, subtitle string) {
	inner := core.Max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle))
	boxW := core.Min(inner+4, w)
	boxH := 4
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorBrightWhite)
	drawCentered(s, box, box.Y+1, title, core.ColorBrightYellow)
	drawCentered(s, box, box.Y+2, subtitle, core.ColorWhite)
}

func drawCentered(s *core.Screen, box core.Rect, y int, text string, c core.Color) {
	x := box.X + (box.W-utf8.RuneCountInString(text))/2
	s.DrawTextColored(core.Max(x, box.X+1), y, text, c)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
