package picker

import (
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/ironsheep/color-picker-mcp/internal/colormath"
	"github.com/ironsheep/color-picker-mcp/internal/surface"
)

var initialRed = Color{
	RGB:  colormath.RGB{R: 255},
	CMYK: colormath.CMYK{C: 0, M: 100, Y: 100, K: 0},
	Hex:  "#ff0000",
	X:    0,
	Y:    100,
}

// newRecordedController returns a controller with an initialized recorder
// that reads back fill for every pixel.
func newRecordedController(t *testing.T, fill color.RGBA) (*Controller, *surface.Recorder) {
	t.Helper()
	c := NewController()
	r := surface.NewRecorder(nil)
	r.Fill = fill
	if err := c.InitializeSurface(r); err != nil {
		t.Fatalf("InitializeSurface failed: %v", err)
	}
	return c, r
}

func TestNewController(t *testing.T) {
	c := NewController()

	if diff := cmp.Diff(initialRed, c.Color()); diff != "" {
		t.Errorf("initial color mismatch (-want +got):\n%s", diff)
	}
	if c.State() != Idle || c.Dragging() || c.Focus() {
		t.Errorf("new controller should be idle, got %v", c.State())
	}
}

func TestNewController_Options(t *testing.T) {
	c := NewController(WithExtent(50), WithMarkerRadius(8))
	if c.Color().Y != 50 {
		t.Errorf("Y: got %d, want 50", c.Color().Y)
	}

	r := surface.NewRecorder(nil)
	if err := c.InitializeSurface(r); err != nil {
		t.Fatalf("InitializeSurface failed: %v", err)
	}
	if w, h := r.Size(); w != 101 || h != 100 {
		t.Errorf("Size: got %dx%d, want 101x100", w, h)
	}
	if s := r.Strokes(); len(s) != 1 || s[0].Radius != 8 {
		t.Errorf("Strokes: got %+v, want one ring of radius 8", s)
	}

	// Non-positive values keep the defaults.
	c = NewController(WithExtent(0), WithMarkerRadius(-1))
	if c.Color().Y != DefaultExtent || c.markerRadius != MarkerRadius {
		t.Errorf("got Y=%d radius=%v, want defaults", c.Color().Y, c.markerRadius)
	}
}

func TestController_InitializeSurface(t *testing.T) {
	c, r := newRecordedController(t, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	if w, h := r.Size(); w != 201 || h != 200 {
		t.Errorf("Size: got %dx%d, want 201x200", w, h)
	}
	if r.Paints() != 1 {
		t.Errorf("Paints: got %d, want 1", r.Paints())
	}
	want := []surface.StrokeCircle{{X: 0, Y: 100, Radius: MarkerRadius, Width: 1, Color: markerLight}}
	if diff := cmp.Diff(want, r.Strokes()); diff != "" {
		t.Errorf("Strokes mismatch (-want +got):\n%s", diff)
	}
	// Initialization paints but does not sample.
	if diff := cmp.Diff(initialRed, c.Color()); diff != "" {
		t.Errorf("color changed (-want +got):\n%s", diff)
	}
}

func TestController_Engage(t *testing.T) {
	c, r := newRecordedController(t, color.RGBA{R: 58, G: 171, B: 205, A: 255})
	r.Reset()

	if err := c.Engage(r, &PointerEvent{ClientX: 58.5, ClientY: 171.2}); err != nil {
		t.Fatalf("Engage failed: %v", err)
	}

	want := Color{
		RGB:  colormath.RGB{R: 58, G: 171, B: 205},
		CMYK: colormath.CMYK{C: 72, M: 17, Y: 0, K: 20},
		Hex:  "#3aabcd",
		X:    58,
		Y:    171,
	}
	if diff := cmp.Diff(want, c.Color()); diff != "" {
		t.Errorf("color mismatch (-want +got):\n%s", diff)
	}
	if !c.Dragging() || !c.Focus() {
		t.Error("Engage should start dragging")
	}

	// The ring is drawn at the new position in the color chosen from the
	// previous selection.
	wantStrokes := []surface.StrokeCircle{{X: 58, Y: 171, Radius: MarkerRadius, Width: 1, Color: markerLight}}
	if diff := cmp.Diff(wantStrokes, r.Strokes()); diff != "" {
		t.Errorf("Strokes mismatch (-want +got):\n%s", diff)
	}
}

func TestController_DragSequence(t *testing.T) {
	c, r := newRecordedController(t, color.RGBA{R: 58, G: 171, B: 205, A: 255})
	r.Reset()

	steps := []struct {
		ev         PointerEvent
		wantState  State
		wantPaints int
		wantPos    Position
	}{
		{PointerEvent{Kind: PointerMove, ClientX: 5, ClientY: 5}, Idle, 0, Position{0, 100}},
		{PointerEvent{Kind: PointerDown, ClientX: 10, ClientY: 10}, Engaged, 1, Position{10, 10}},
		{PointerEvent{Kind: PointerMove, ClientX: 20, ClientY: 30}, Engaged, 2, Position{20, 30}},
		{PointerEvent{Kind: PointerMove, ClientX: -40, ClientY: 900}, Engaged, 3, Position{0, 199}},
		{PointerEvent{Kind: PointerLeave, ClientX: 60, ClientY: 60}, Idle, 3, Position{0, 199}},
		{PointerEvent{Kind: PointerMove, ClientX: 70, ClientY: 70}, Idle, 3, Position{0, 199}},
		{PointerEvent{Kind: PointerDown, ClientX: 80, ClientY: 80}, Engaged, 4, Position{80, 80}},
		{PointerEvent{Kind: PointerUp, ClientX: 90, ClientY: 90}, Idle, 4, Position{80, 80}},
	}

	for i, step := range steps {
		if err := c.Handle(r, step.ev); err != nil {
			t.Fatalf("step %d: Handle(%v) failed: %v", i, step.ev.Kind, err)
		}
		if c.State() != step.wantState {
			t.Errorf("step %d: state got %v, want %v", i, c.State(), step.wantState)
		}
		if r.Paints() != step.wantPaints {
			t.Errorf("step %d: paints got %d, want %d", i, r.Paints(), step.wantPaints)
		}
		if got := c.Color().Position(); got != step.wantPos {
			t.Errorf("step %d: position got %v, want %v", i, got, step.wantPos)
		}
	}

	// After the first sample the selection is #3aabcd, whose green nibble
	// selects a dark ring for every later sample.
	strokes := r.Strokes()
	if len(strokes) != 4 {
		t.Fatalf("Strokes: got %d, want 4", len(strokes))
	}
	if strokes[0].Color != markerLight {
		t.Errorf("first ring: got %v, want light", strokes[0].Color)
	}
	for i, s := range strokes[1:] {
		if s.Color != markerDark {
			t.Errorf("ring %d: got %v, want dark", i+1, s.Color)
		}
	}
}

func TestController_SampleColor(t *testing.T) {
	c, r := newRecordedController(t, color.RGBA{A: 255})
	r.Reset()

	if err := c.SampleColor(r, &PointerEvent{ClientX: 30, ClientY: 30}, false); err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if r.Paints() != 0 {
		t.Errorf("idle SampleColor without force should not paint, got %d paints", r.Paints())
	}
	if diff := cmp.Diff(initialRed, c.Color()); diff != "" {
		t.Errorf("color changed (-want +got):\n%s", diff)
	}

	if err := c.SampleColor(r, &PointerEvent{ClientX: 30, ClientY: 30}, true); err != nil {
		t.Fatalf("forced SampleColor failed: %v", err)
	}
	got := c.Color()
	if got.Hex != "#000000" || got.X != 30 || got.Y != 30 {
		t.Errorf("got %+v, want #000000 at (30,30)", got)
	}
	if got.CMYK != (colormath.CMYK{K: 100}) {
		t.Errorf("CMYK: got %+v, want pure key", got.CMYK)
	}
	if c.State() != Idle {
		t.Errorf("forced sample should not change state, got %v", c.State())
	}

	// Without an event the stored position is sampled again.
	if err := c.SampleColor(r, nil, true); err != nil {
		t.Fatalf("SampleColor(nil) failed: %v", err)
	}
	if got := c.Color().Position(); got != (Position{30, 30}) {
		t.Errorf("position: got %v, want (30,30)", got)
	}
}

func TestController_SampleUninitialized(t *testing.T) {
	c := NewController()
	r := surface.NewRecorder(nil)

	err := c.Engage(r, &PointerEvent{ClientX: 1, ClientY: 1})
	if !errors.Is(err, ErrSurfaceNotInitialized) {
		t.Errorf("got %v, want ErrSurfaceNotInitialized", err)
	}
	if diff := cmp.Diff(initialRed, c.Color()); diff != "" {
		t.Errorf("color changed (-want +got):\n%s", diff)
	}
	if c.State() != Idle || c.Dragging() || c.Focus() {
		t.Errorf("after failed engage: state=%v dragging=%v focus=%v, want idle and released",
			c.State(), c.Dragging(), c.Focus())
	}

	err = c.Handle(r, PointerEvent{Kind: PointerDown, ClientX: 1, ClientY: 1})
	if !errors.Is(err, ErrSurfaceNotInitialized) {
		t.Errorf("Handle: got %v, want ErrSurfaceNotInitialized", err)
	}
	if c.State() != Idle {
		t.Errorf("after failed press: state=%v, want idle", c.State())
	}
}

func TestController_Disengage(t *testing.T) {
	c, r := newRecordedController(t, color.RGBA{A: 255})
	if err := c.Engage(r, &PointerEvent{ClientX: 1, ClientY: 1}); err != nil {
		t.Fatalf("Engage failed: %v", err)
	}
	c.Disengage()
	if c.Dragging() || c.Focus() {
		t.Error("Disengage should stop dragging")
	}
	// Idempotent.
	c.Disengage()
	if c.State() != Idle {
		t.Errorf("state: got %v, want idle", c.State())
	}
}

func TestController_SetChannelValue(t *testing.T) {
	tests := []struct {
		name    string
		channel Channel
		value   float64
		want    colormath.CMYK
		wantHex string
	}{
		{"key halves red", ChannelKey, 50, colormath.CMYK{C: 0, M: 100, Y: 100, K: 50}, "#800000"},
		{"cyan removes red", ChannelCyan, 100, colormath.CMYK{C: 100, M: 100, Y: 100, K: 0}, "#000000"},
		{"above range clamps", ChannelYellow, 150, colormath.CMYK{C: 0, M: 100, Y: 100, K: 0}, "#ff0000"},
		{"below range clamps", ChannelMagenta, -10, colormath.CMYK{C: 0, M: 0, Y: 100, K: 0}, "#ffff00"},
		{"fractional value kept", ChannelMagenta, 50.5, colormath.CMYK{C: 0, M: 50.5, Y: 100, K: 0}, "#ff7e00"},
		{"NaN is ignored", ChannelKey, math.NaN(), colormath.CMYK{C: 0, M: 100, Y: 100, K: 0}, "#ff0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController()
			if err := c.SetChannelValue(tt.channel, tt.value); err != nil {
				t.Fatalf("SetChannelValue failed: %v", err)
			}
			got := c.Color()
			if got.CMYK != tt.want {
				t.Errorf("CMYK: got %+v, want %+v", got.CMYK, tt.want)
			}
			if got.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", got.Hex, tt.wantHex)
			}
			if got.RGB.Hex() != got.Hex {
				t.Errorf("RGB %+v does not match hex %s", got.RGB, got.Hex)
			}
			if got.Position() != (Position{0, 100}) {
				t.Errorf("position moved to %v", got.Position())
			}
		})
	}
}

func TestController_SetChannelValueUnknown(t *testing.T) {
	c := NewController()
	if err := c.SetChannelValue(Channel("x"), 10); !errors.Is(err, ErrUnknownChannel) {
		t.Errorf("got %v, want ErrUnknownChannel", err)
	}
	if diff := cmp.Diff(initialRed, c.Color()); diff != "" {
		t.Errorf("color changed (-want +got):\n%s", diff)
	}
}

func TestParseChannel(t *testing.T) {
	for in, want := range map[string]Channel{"c": ChannelCyan, "M": ChannelMagenta, " y ": ChannelYellow, "k": ChannelKey} {
		got, err := ParseChannel(in)
		if err != nil || got != want {
			t.Errorf("ParseChannel(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	for _, in := range []string{"", "r", "cyan"} {
		if _, err := ParseChannel(in); !errors.Is(err, ErrUnknownChannel) {
			t.Errorf("ParseChannel(%q): got %v, want ErrUnknownChannel", in, err)
		}
	}
}

func TestController_CanvasRoundTrip(t *testing.T) {
	c := NewController()
	canvas := surface.NewCanvas()
	t.Cleanup(func() { _ = canvas.Close() })

	if err := c.InitializeSurface(canvas); err != nil {
		t.Fatalf("InitializeSurface failed: %v", err)
	}

	if err := c.Engage(canvas, &PointerEvent{ClientX: 0, ClientY: 100}); err != nil {
		t.Fatalf("Engage failed: %v", err)
	}
	if diff := cmp.Diff(initialRed, c.Color()); diff != "" {
		t.Errorf("centre-left sample mismatch (-want +got):\n%s", diff)
	}

	if err := c.Handle(canvas, PointerEvent{Kind: PointerMove, ClientX: 500, ClientY: -20}); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	got := c.Color()
	if got.Hex != "#ffffff" || got.X != 200 || got.Y != 0 {
		t.Errorf("got %+v, want #ffffff at (200,0)", got)
	}
}

func TestController_RepaintClearsOldRing(t *testing.T) {
	c := NewController()
	canvas := surface.NewCanvas()
	t.Cleanup(func() { _ = canvas.Close() })
	if err := c.InitializeSurface(canvas); err != nil {
		t.Fatalf("InitializeSurface failed: %v", err)
	}

	if err := c.Engage(canvas, &PointerEvent{ClientX: 60, ClientY: 100}); err != nil {
		t.Fatalf("Engage failed: %v", err)
	}
	if err := c.Handle(canvas, PointerEvent{Kind: PointerMove, ClientX: 150, ClientY: 40}); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	ref := surface.NewCanvas()
	t.Cleanup(func() { _ = ref.Close() })
	if err := ref.Resize(canvas.Size()); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if err := RenderGradient(ref); err != nil {
		t.Fatalf("RenderGradient failed: %v", err)
	}

	// Pixels on the first ring match a clean gradient.
	for _, p := range []Position{{65, 100}, {55, 100}, {60, 95}, {60, 105}} {
		if got, want := canvas.ReadPixel(p.X, p.Y), ref.ReadPixel(p.X, p.Y); got != want {
			t.Errorf("pixel %v: got %v, want %v", p, got, want)
		}
	}
}
