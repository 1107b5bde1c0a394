package surface

import (
	"image/color"

	"github.com/pkg/errors"
)

// Recorder is a Surface that records every paint instruction.
//
// When Target is set, calls are forwarded to it and pixels are read from it.
// Without a target the Recorder is a blank surface of its own: it tracks its
// size and returns Fill from ReadPixel, which is enough to drive the picker
// without any rasterization.
type Recorder struct {
	Target Surface
	Fill   color.RGBA
	Box    Box

	width, height int
	ops           []Op
	paints        int
}

// NewRecorder returns a Recorder forwarding to target (which may be nil).
func NewRecorder(target Surface) *Recorder {
	return &Recorder{Target: target}
}

// Size returns the target size, or the recorded size without a target.
func (r *Recorder) Size() (int, int) {
	if r.Target != nil {
		return r.Target.Size()
	}
	return r.width, r.height
}

// Resize records the new size and forwards it.
func (r *Recorder) Resize(width, height int) error {
	if r.Target != nil {
		return r.Target.Resize(width, height)
	}
	if width <= 0 || height <= 0 {
		return errors.Errorf("invalid surface size %dx%d", width, height)
	}
	r.width, r.height = width, height
	return nil
}

// BoundingBox returns Box when set, otherwise the target's box, otherwise
// an unscaled box at the origin.
func (r *Recorder) BoundingBox() Box {
	if !r.Box.Empty() {
		return r.Box
	}
	if r.Target != nil {
		return r.Target.BoundingBox()
	}
	return Box{Width: float64(r.width), Height: float64(r.height)}
}

// Paint records ops and forwards them.
func (r *Recorder) Paint(ops ...Op) error {
	if w, h := r.Size(); w == 0 || h == 0 {
		return ErrNotSized
	}
	r.ops = append(r.ops, ops...)
	r.paints++
	if r.Target != nil {
		return r.Target.Paint(ops...)
	}
	return nil
}

// ReadPixel reads from the target, or returns Fill inside the bounds.
func (r *Recorder) ReadPixel(x, y int) color.RGBA {
	if r.Target != nil {
		return r.Target.ReadPixel(x, y)
	}
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return color.RGBA{}
	}
	return r.Fill
}

// Ops returns the recorded instructions in order.
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// Paints returns how many Paint calls were made.
func (r *Recorder) Paints() int {
	return r.paints
}

// Strokes returns the recorded StrokeCircle instructions.
func (r *Recorder) Strokes() []StrokeCircle {
	var out []StrokeCircle
	for _, op := range r.ops {
		if s, ok := op.(StrokeCircle); ok {
			out = append(out, s)
		}
	}
	return out
}

// Reset forgets recorded instructions.
func (r *Recorder) Reset() {
	r.ops = nil
	r.paints = 0
}
