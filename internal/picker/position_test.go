package picker

import (
	"math"
	"testing"

	"github.com/ironsheep/color-picker-mcp/internal/surface"
)

func TestClampPosition(t *testing.T) {
	tests := []struct {
		name string
		in   Position
		want Position
	}{
		{"inside", Position{10, 20}, Position{10, 20}},
		{"negative", Position{-5, -1}, Position{0, 0}},
		{"past right and bottom", Position{201, 200}, Position{200, 199}},
		{"far away", Position{10000, -10000}, Position{200, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPosition(tt.in, 201, 200); got != tt.want {
				t.Errorf("ClampPosition(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEventPosition(t *testing.T) {
	r := surface.NewRecorder(nil)
	if err := r.Resize(201, 200); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	tests := []struct {
		name string
		box  surface.Box
		ev   *PointerEvent
		prev Position
		want Position
	}{
		{"unscaled", surface.Box{}, &PointerEvent{ClientX: 12.9, ClientY: 30.2}, Position{}, Position{12, 30}},
		{"offset box", surface.Box{Left: 10, Top: 20, Width: 201, Height: 200}, &PointerEvent{ClientX: 15, ClientY: 25}, Position{}, Position{5, 5}},
		{"scaled box", surface.Box{Left: 10, Top: 20, Width: 402, Height: 400}, &PointerEvent{ClientX: 110, ClientY: 70}, Position{}, Position{50, 25}},
		{"left of box", surface.Box{Left: 10, Top: 20, Width: 201, Height: 200}, &PointerEvent{ClientX: 0, ClientY: 0}, Position{}, Position{0, 0}},
		{"beyond box", surface.Box{}, &PointerEvent{ClientX: 9999, ClientY: 9999}, Position{}, Position{200, 199}},
		{"NaN coordinates", surface.Box{}, &PointerEvent{ClientX: math.NaN(), ClientY: math.Inf(1)}, Position{}, Position{0, 199}},
		{"no event keeps previous", surface.Box{}, nil, Position{7, 8}, Position{7, 8}},
		{"previous is clamped", surface.Box{}, nil, Position{0, 200}, Position{0, 199}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r.Box = tt.box
			if got := EventPosition(r, tt.ev, tt.prev); got != tt.want {
				t.Errorf("EventPosition = %v, want %v", got, tt.want)
			}
		})
	}
}
