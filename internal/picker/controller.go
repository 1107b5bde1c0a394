package picker

import (
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/ironsheep/color-picker-mcp/internal/colormath"
	"github.com/ironsheep/color-picker-mcp/internal/surface"
)

var (
	// ErrSurfaceNotInitialized is returned when sampling a surface that has
	// never been sized.
	ErrSurfaceNotInitialized = errors.New("surface not initialized")
	// ErrUnknownChannel is returned for a slider name other than c, m, y or k.
	ErrUnknownChannel = errors.New("unknown channel")
)

// DefaultExtent is the initial y coordinate. The surface is sized from it,
// so it also fixes the picker height at 2*DefaultExtent.
const DefaultExtent = 100

// Channel names a CMYK slider.
type Channel string

// Slider channels, one per CMYK component.
const (
	ChannelCyan    Channel = "c"
	ChannelMagenta Channel = "m"
	ChannelYellow  Channel = "y"
	ChannelKey     Channel = "k"
)

// ParseChannel accepts a channel letter in either case.
func ParseChannel(s string) (Channel, error) {
	switch ch := Channel(strings.ToLower(strings.TrimSpace(s))); ch {
	case ChannelCyan, ChannelMagenta, ChannelYellow, ChannelKey:
		return ch, nil
	}
	return "", errors.Wrapf(ErrUnknownChannel, "%q", s)
}

// Option configures a Controller.
type Option func(*Controller)

// WithExtent sets the initial y coordinate and so the surface height.
func WithExtent(extent int) Option {
	return func(c *Controller) {
		if extent > 0 {
			c.color.Y = extent
		}
	}
}

// WithMarkerRadius overrides the selection ring radius.
func WithMarkerRadius(r float64) Option {
	return func(c *Controller) {
		if r > 0 {
			c.markerRadius = r
		}
	}
}

// Controller holds the picker selection and drives sampling from pointer
// events.
type Controller struct {
	state        State
	color        Color
	markerRadius float64
}

// NewController returns a Controller selecting pure red on the left edge
// of the centre line.
func NewController(opts ...Option) *Controller {
	red := colormath.RGB{R: 255}
	c := &Controller{
		color:        colorFromRGB(red, Position{X: 0, Y: DefaultExtent}),
		markerRadius: MarkerRadius,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Color returns the current selection.
func (c *Controller) Color() Color { return c.color }

// State returns the interaction state.
func (c *Controller) State() State { return c.state }

// Dragging reports whether pointer motion is being sampled.
func (c *Controller) Dragging() bool { return c.state == Engaged }

// Focus reports whether the picker has focus. Focus follows the pointer
// press, so it matches Dragging.
func (c *Controller) Focus() bool { return c.state == Engaged }

// InitializeSurface sizes s from the stored y coordinate and paints the
// gradient with the marker at the stored position. The stored color is not
// re-sampled.
func (c *Controller) InitializeSurface(s surface.Surface) error {
	w, h := SurfaceSize(c.color.Y)
	if err := s.Resize(w, h); err != nil {
		return errors.Wrap(err, "initialize surface")
	}
	return c.repaint(s, c.color.Position())
}

// Engage handles a pointer press: it enters the Engaged state and samples
// the pixel under ev.
func (c *Controller) Engage(s surface.Surface, ev *PointerEvent) error {
	return c.apply(s, PointerDown, ev)
}

// SampleColor samples the pixel under ev if the controller is engaged or
// force is set. A nil ev re-samples the stored position.
func (c *Controller) SampleColor(s surface.Surface, ev *PointerEvent, force bool) error {
	if !force && c.state != Engaged {
		return nil
	}
	return c.sample(s, ev)
}

// Disengage handles pointer release or leave.
func (c *Controller) Disengage() {
	// neither up nor leave samples, so there is no surface to touch
	_ = c.apply(nil, PointerUp, nil)
}

// Handle routes a pointer event through the interaction table.
func (c *Controller) Handle(s surface.Surface, ev PointerEvent) error {
	return c.apply(s, ev.Kind, &ev)
}

// SetChannelValue sets one CMYK component from a slider. The value is
// clamped to [0, 100]; NaN leaves the component unchanged. RGB and hex are
// recomputed and the position is kept.
func (c *Controller) SetChannelValue(ch Channel, value float64) error {
	cmyk := c.color.CMYK
	var target *float64
	switch ch {
	case ChannelCyan:
		target = &cmyk.C
	case ChannelMagenta:
		target = &cmyk.M
	case ChannelYellow:
		target = &cmyk.Y
	case ChannelKey:
		target = &cmyk.K
	default:
		return errors.Wrapf(ErrUnknownChannel, "%q", string(ch))
	}

	if math.IsNaN(value) {
		Logger().Warn("picker: ignoring slider value", "channel", string(ch), "value", value)
		return nil
	}
	*target = math.Max(0, math.Min(100, value))

	rgb := cmyk.RGB()
	c.color.CMYK = cmyk
	c.color.RGB = rgb
	c.color.Hex = rgb.Hex()
	return nil
}

func (c *Controller) apply(s surface.Surface, kind EventKind, ev *PointerEvent) error {
	next, effect := Transition(c.state, kind)
	if effect == EffectSample {
		// a failed sample leaves the state where it was
		if err := c.sample(s, ev); err != nil {
			return err
		}
	}
	if next != c.state {
		Logger().Debug("picker: transition", "from", c.state, "to", next, "event", kind)
	}
	c.state = next
	return nil
}

func (c *Controller) sample(s surface.Surface, ev *PointerEvent) error {
	w, h := s.Size()
	if w == 0 || h == 0 {
		return ErrSurfaceNotInitialized
	}
	pos := EventPosition(s, ev, c.color.Position())
	if err := c.repaint(s, pos); err != nil {
		return err
	}
	col, err := readColor(s, pos)
	if err != nil {
		return err
	}
	c.color = col
	Logger().Debug("picker: sampled", "x", pos.X, "y", pos.Y, "hex", col.Hex)
	return nil
}

// repaint draws the gradient and the marker at pos. The marker color comes
// from the selection before the sample is taken.
func (c *Controller) repaint(s surface.Surface, pos Position) error {
	w, h := s.Size()
	ops := append(GradientOps(w, h), markerOp(pos, c.color.Hex, c.markerRadius))
	if err := s.Paint(ops...); err != nil {
		return errors.Wrap(err, "repaint picker")
	}
	return nil
}
