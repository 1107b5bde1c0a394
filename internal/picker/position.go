package picker

import (
	"math"

	"github.com/ironsheep/color-picker-mcp/internal/surface"
)

// Position is a pixel coordinate on the surface.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// EventKind identifies a pointer event.
type EventKind int

const (
	// PointerDown is a button press over the surface.
	PointerDown EventKind = iota
	// PointerMove is motion with or without a button held.
	PointerMove
	// PointerUp is a button release.
	PointerUp
	// PointerLeave is the pointer exiting the surface.
	PointerLeave
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer event in client coordinates.
type PointerEvent struct {
	Kind    EventKind
	ClientX float64
	ClientY float64
}

// ClampPosition pulls p onto the nearest pixel of a w x h surface.
func ClampPosition(p Position, w, h int) Position {
	return Position{X: clampInt(p.X, 0, w-1), Y: clampInt(p.Y, 0, h-1)}
}

// EventPosition converts ev into a clamped surface pixel. A nil event (a
// sample not driven by the pointer) falls back to prev.
func EventPosition(s surface.Surface, ev *PointerEvent, prev Position) Position {
	w, h := s.Size()
	if ev == nil {
		return ClampPosition(prev, w, h)
	}

	box := s.BoundingBox()
	x := ev.ClientX - box.Left
	y := ev.ClientY - box.Top
	if !box.Empty() {
		x *= float64(w) / box.Width
		y *= float64(h) / box.Height
	}
	return ClampPosition(Position{X: floorInt(x), Y: floorInt(y)}, w, h)
}

func floorInt(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int(math.Floor(v))
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
