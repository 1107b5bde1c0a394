package surface

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"
)

// Canvas is a software Surface backed by a gg drawing context.
//
// Gradient fills are evaluated per pixel with a gg custom brush and
// composited straight into the context's pixmap; strokes go through the gg
// path rasterizer. A Canvas is not safe for concurrent use.
type Canvas struct {
	dc  *gg.Context
	box Box
}

// NewCanvas creates an unsized canvas. Call Resize before painting.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Size returns the canvas dimensions, or (0, 0) before the first Resize.
func (c *Canvas) Size() (int, int) {
	if c.dc == nil {
		return 0, 0
	}
	return c.dc.Width(), c.dc.Height()
}

// Resize reallocates the pixel buffer. The new buffer is transparent black.
func (c *Canvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("invalid canvas size %dx%d", width, height)
	}
	if c.dc == nil {
		c.dc = gg.NewContext(width, height)
		return nil
	}
	if err := c.dc.Resize(width, height); err != nil {
		return errors.Wrap(err, "resize canvas")
	}
	c.dc.Clear()
	return nil
}

// SetBoundingBox places the canvas in client coordinates.
func (c *Canvas) SetBoundingBox(b Box) {
	c.box = b
}

// BoundingBox returns the client placement. When none was set the canvas is
// assumed to be displayed unscaled at the client origin.
func (c *Canvas) BoundingBox() Box {
	if c.box.Empty() {
		w, h := c.Size()
		return Box{Width: float64(w), Height: float64(h)}
	}
	return c.box
}

// Paint executes the instructions in order.
func (c *Canvas) Paint(ops ...Op) error {
	if c.dc == nil {
		return ErrNotSized
	}
	for _, op := range ops {
		switch op := op.(type) {
		case FillRect:
			c.fillRect(op)
		case StrokeCircle:
			if err := c.strokeCircle(op); err != nil {
				return err
			}
		default:
			return errors.Errorf("unsupported paint instruction %T", op)
		}
	}
	return nil
}

// ReadPixel returns the 8-bit pixel at (x, y).
func (c *Canvas) ReadPixel(x, y int) color.RGBA {
	if c.dc == nil {
		return color.RGBA{}
	}
	pm := c.dc.ResizeTarget()
	if x < 0 || y < 0 || x >= pm.Width() || y >= pm.Height() {
		return color.RGBA{}
	}
	i := (y*pm.Width() + x) * 4
	p := pm.Data()[i : i+4 : i+4]
	return color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Image returns a copy of the canvas contents.
func (c *Canvas) Image() image.Image {
	if c.dc == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	return c.dc.Image()
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	if c.dc == nil {
		return nil
	}
	return c.dc.Close()
}

func (c *Canvas) fillRect(op FillRect) {
	brush := gradientBrush(op.Gradient)
	pm := c.dc.ResizeTarget()
	w, h := pm.Width(), pm.Height()
	data := pm.Data()

	r := op.Rect.Intersect(image.Rect(0, 0, w, h))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			src := brush.ColorAt(float64(x)+0.5, float64(y)+0.5)
			i := (y*w + x) * 4
			blendOver(data[i:i+4:i+4], src)
		}
	}
}

func (c *Canvas) strokeCircle(op StrokeCircle) error {
	width := op.Width
	if width <= 0 {
		width = 1
	}
	c.dc.ClearPath()
	c.dc.SetLineWidth(width)
	c.dc.SetStrokeBrush(gg.Solid(toRGBA(op.Color)))
	c.dc.DrawCircle(op.X, op.Y, op.Radius)
	// Stroke clears the path, so the next circle starts fresh.
	if err := c.dc.Stroke(); err != nil {
		return errors.Wrap(err, "stroke circle")
	}
	return nil
}

// gradientBrush evaluates g on gamma-encoded sRGB values, the way a browser
// canvas blends stops. Offsets before the first or after the last stop take
// the edge color.
func gradientBrush(g LinearGradient) gg.CustomBrush {
	stops := make([]gg.ColorStop, len(g.Stops))
	for i, s := range g.Stops {
		stops[i] = gg.ColorStop{Offset: s.Offset, Color: toRGBA(s.Color)}
	}
	sort.SliceStable(stops, func(i, j int) bool { return stops[i].Offset < stops[j].Offset })

	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	lengthSq := dx*dx + dy*dy
	return gg.NewCustomBrush(func(x, y float64) gg.RGBA {
		var t float64
		if lengthSq > 0 {
			t = ((x-g.X0)*dx + (y-g.Y0)*dy) / lengthSq
		}
		return colorAtOffset(stops, t)
	}).WithName("srgb_linear_gradient")
}

// colorAtOffset blends the two stops around t. stops must be sorted.
func colorAtOffset(stops []gg.ColorStop, t float64) gg.RGBA {
	if len(stops) == 0 {
		return gg.Transparent
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if t > hi.Offset {
			continue
		}
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return hi.Color
		}
		return lo.Color.Lerp(hi.Color, (t-lo.Offset)/span)
	}
	return stops[len(stops)-1].Color
}

// toRGBA converts a straight-alpha color without premultiplying, so a
// transparent stop keeps its hue for interpolation.
func toRGBA(c color.NRGBA) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// blendOver composites src over the straight-alpha RGBA pixel in dst.
func blendOver(dst []uint8, src gg.RGBA) {
	sa := clamp01(src.A)
	if sa == 0 {
		return
	}
	da := float64(dst[3]) / 255
	oa := sa + da*(1-sa)

	mix := func(s float64, d uint8) uint8 {
		v := (clamp01(s)*sa + float64(d)/255*da*(1-sa)) / oa
		return to8(v)
	}
	dst[0] = mix(src.R, dst[0])
	dst[1] = mix(src.G, dst[1])
	dst[2] = mix(src.B, dst[2])
	dst[3] = to8(oa)
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
