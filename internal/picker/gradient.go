package picker

import (
	"image"
	"image/color"

	"github.com/ironsheep/color-picker-mcp/internal/surface"
)

// HueStops are the horizontal gradient stops. Each channel is either 0 or
// 255, so the gradient is a hard-edged hue wheel rather than an HSL sweep.
// The inner offsets are i/7 rounded to two decimals.
var HueStops = []surface.Stop{
	{Offset: 0.01, Color: color.NRGBA{R: 255, A: 255}},
	{Offset: 0.29, Color: color.NRGBA{R: 255, G: 255, A: 255}},
	{Offset: 0.43, Color: color.NRGBA{G: 255, A: 255}},
	{Offset: 0.57, Color: color.NRGBA{G: 255, B: 255, A: 255}},
	{Offset: 0.71, Color: color.NRGBA{B: 255, A: 255}},
	{Offset: 0.86, Color: color.NRGBA{R: 255, B: 255, A: 255}},
	{Offset: 0.99, Color: color.NRGBA{R: 255, A: 255}},
}

// ShadeStops are the vertical overlay stops: white at the top, a clear band
// around the centre, black at the bottom. The clear stops keep the color of
// their opaque neighbour so the fade never passes through gray.
var ShadeStops = []surface.Stop{
	{Offset: 0.01, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	{Offset: 0.49, Color: color.NRGBA{R: 255, G: 255, B: 255}},
	{Offset: 0.51, Color: color.NRGBA{}},
	{Offset: 1, Color: color.NRGBA{A: 255}},
}

// GradientOps returns the instructions that paint the picker gradient on a
// w x h surface: the hue sweep, then the shade overlay composited on top.
func GradientOps(w, h int) []surface.Op {
	rect := image.Rect(0, 0, w, h)
	return []surface.Op{
		surface.FillRect{
			Rect:     rect,
			Gradient: surface.LinearGradient{X1: float64(w), Stops: HueStops},
		},
		surface.FillRect{
			Rect:     rect,
			Gradient: surface.LinearGradient{Y1: float64(h), Stops: ShadeStops},
		},
	}
}

// RenderGradient paints the picker gradient over the whole surface.
func RenderGradient(s surface.Surface) error {
	w, h := s.Size()
	if w == 0 || h == 0 {
		return ErrSurfaceNotInitialized
	}
	return s.Paint(GradientOps(w, h)...)
}

// SurfaceSize returns the surface dimensions for a vertical extent (the y
// coordinate of the stored color). The extra column keeps the rightmost
// sample inside the painted area.
func SurfaceSize(extent int) (width, height int) {
	return 2*extent + 1, 2 * extent
}
