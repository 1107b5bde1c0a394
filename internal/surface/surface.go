package surface

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// ErrNotSized is returned when painting a surface that has not been given
// dimensions yet.
var ErrNotSized = errors.New("surface has not been sized")

// Surface is the drawing capability the picker needs.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)

	// Resize sets the pixel dimensions. Contents are discarded.
	Resize(width, height int) error

	// BoundingBox returns where the surface sits in client coordinates.
	BoundingBox() Box

	// Paint executes the instructions in order.
	Paint(ops ...Op) error

	// ReadPixel returns the pixel at (x, y). Coordinates outside the
	// surface yield a fully transparent pixel.
	ReadPixel(x, y int) color.RGBA
}

// Box is a rectangle in client coordinates.
type Box struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Empty reports whether the box has no area.
func (b Box) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Op is a single paint instruction.
type Op interface {
	isOp()
}

// Stop is a gradient color stop. Color is not alpha-premultiplied.
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// LinearGradient interpolates between stops along the line from (X0,Y0) to
// (X1,Y1). Positions before the first stop or after the last take the edge
// color.
type LinearGradient struct {
	X0, Y0 float64
	X1, Y1 float64
	Stops  []Stop
}

// FillRect composites a gradient over the pixels of Rect (source-over).
type FillRect struct {
	Rect     image.Rectangle
	Gradient LinearGradient
}

// StrokeCircle strokes the outline of a circle. Each instruction is its own
// path; consecutive strokes never join.
type StrokeCircle struct {
	X, Y   float64
	Radius float64
	Width  float64
	Color  color.NRGBA
}

func (FillRect) isOp()     {}
func (StrokeCircle) isOp() {}
