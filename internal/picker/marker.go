package picker

import (
	"image/color"

	"github.com/ironsheep/color-picker-mcp/internal/surface"
)

// MarkerRadius is the radius of the selection ring in pixels.
const MarkerRadius = 5

var (
	markerDark  = color.NRGBA{A: 255}
	markerLight = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// MarkerStrokeColor picks the ring color for a selection.
//
// The fourth character of the hex string is the high nibble of the green
// channel. A letter a-f there means green is at least 0xa0, which covers the
// light hues from orange to light blue, so the ring is drawn black;
// everything else gets a white ring.
func MarkerStrokeColor(hex string) color.NRGBA {
	if len(hex) > 3 && hex[3] >= 'a' && hex[3] <= 'f' {
		return markerDark
	}
	return markerLight
}

func markerOp(pos Position, hex string, radius float64) surface.StrokeCircle {
	return surface.StrokeCircle{
		X:      float64(pos.X),
		Y:      float64(pos.Y),
		Radius: radius,
		Width:  1,
		Color:  MarkerStrokeColor(hex),
	}
}

// DrawSelectionMarker strokes the selection ring centred on pos.
func DrawSelectionMarker(s surface.Surface, pos Position, hex string) error {
	return s.Paint(markerOp(pos, hex, MarkerRadius))
}
