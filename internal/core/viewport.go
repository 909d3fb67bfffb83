package core

// Canvas is the render sink a game draws into. Coordinates are play-field
// units; the implementation decides how they map to output.
type Canvas interface {
	// Clear resets the whole canvas to the background.
	Clear()
	// FillRect draws a solid rectangle.
	FillRect(r Rect, c Color)
	// Text draws a string starting at the field position (x, y).
	Text(x, y int, text string, c Color)
	// TextCentered draws a string horizontally centered on field row y.
	TextCentered(y int, text string, c Color)
}

// FillGlyph is the rune used for solid rectangles.
const FillGlyph = '█'

// Viewport projects a fixed-size play field onto a terminal Screen.
// Every rectangle that overlaps the visible field covers at least one cell,
// so small projectiles never vanish on narrow terminals.
type Viewport struct {
	screen *Screen
	fieldW int
	fieldH int
}

var _ Canvas = (*Viewport)(nil)

// NewViewport creates a viewport for a field of fieldW x fieldH units.
func NewViewport(screen *Screen, fieldW, fieldH int) *Viewport {
	return &Viewport{
		screen: screen,
		fieldW: max(fieldW, 1),
		fieldH: max(fieldH, 1),
	}
}

// Screen returns the underlying screen buffer.
func (v *Viewport) Screen() *Screen {
	return v.screen
}

// Clear clears the underlying screen.
func (v *Viewport) Clear() {
	v.screen.Clear()
}

// Project converts a field rectangle into screen cells.
func (v *Viewport) Project(r Rect) Rect {
	x0 := v.col(r.X)
	x1 := v.col(r.Right())
	y0 := v.row(r.Y)
	y1 := v.row(r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// FillRect draws r as solid cells.
func (v *Viewport) FillRect(r Rect, c Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	v.screen.FillRect(v.Project(r), FillGlyph, c)
}

// Text draws text anchored at the projected field position.
func (v *Viewport) Text(x, y int, text string, c Color) {
	v.screen.DrawText(v.col(x), v.row(y), text, c)
}

// TextCentered draws text centered on the projected field row.
func (v *Viewport) TextCentered(y int, text string, c Color) {
	v.screen.DrawTextCentered(v.row(y), text, c)
}

func (v *Viewport) col(x int) int {
	return floorDiv(x*v.screen.Width(), v.fieldW)
}

func (v *Viewport) row(y int) int {
	return floorDiv(y*v.screen.Height(), v.fieldH)
}
