package picker

import (
	"github.com/ironsheep/color-picker-mcp/internal/colormath"
	"github.com/ironsheep/color-picker-mcp/internal/surface"
)

// Color is the picker's current selection: the sampled color in every
// notation plus the pixel it came from.
type Color struct {
	RGB  colormath.RGB  `json:"rgb"`
	CMYK colormath.CMYK `json:"cmyk"`
	Hex  string         `json:"hex"`
	X    int            `json:"x"`
	Y    int            `json:"y"`
}

// Position returns the pixel the color was taken from.
func (c Color) Position() Position {
	return Position{X: c.X, Y: c.Y}
}

// HSL returns the selection in HSL notation.
func (c Color) HSL() colormath.HSL {
	return c.RGB.HSL()
}

func colorFromRGB(rgb colormath.RGB, pos Position) Color {
	return Color{
		RGB:  rgb,
		CMYK: rgb.CMYK(),
		Hex:  rgb.Hex(),
		X:    pos.X,
		Y:    pos.Y,
	}
}

// PickColorAtPosition repaints the gradient and reads the color under ev.
// A nil ev samples prev instead. The returned coordinate is always inside the
// surface.
func PickColorAtPosition(s surface.Surface, ev *PointerEvent, prev Position) (Color, error) {
	pos := EventPosition(s, ev, prev)
	if err := RenderGradient(s); err != nil {
		return Color{}, err
	}
	return readColor(s, pos)
}

func readColor(s surface.Surface, pos Position) (Color, error) {
	w, h := s.Size()
	if w == 0 || h == 0 {
		return Color{}, ErrSurfaceNotInitialized
	}
	px := s.ReadPixel(pos.X, pos.Y)
	rgb := colormath.RGB{R: int(px.R), G: int(px.G), B: int(px.B)}
	return colorFromRGB(rgb, pos), nil
}
