package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/ironsheep/color-picker-mcp/internal/picker"
	"github.com/ironsheep/color-picker-mcp/internal/surface"
)

// statusRows are reserved below the gradient.
const statusRows = 3

// view renders the picker surface into terminal cells. Each cell shows two
// vertically stacked surface samples with an upper half block, so the
// gradient keeps roughly square pixels.
type view struct {
	screen  tcell.Screen
	canvas  *surface.Canvas
	picker  *picker.Controller
	channel picker.Channel

	cols, rows int // gradient area in cells
	pressed    bool
	status     string
}

// layout fits the gradient area to the screen and maps it onto the surface
// bounding box. Client coordinates are in half-cell units vertically.
func (v *view) layout() {
	w, h := v.screen.Size()
	v.cols = max(w, 1)
	v.rows = max(h-statusRows, 1)
	v.canvas.SetBoundingBox(surface.Box{
		Width:  float64(v.cols),
		Height: float64(v.rows * 2),
	})
}

func (v *view) inArea(x, y int) bool {
	return x >= 0 && y >= 0 && x < v.cols && y < v.rows
}

// pointer converts a cell to client coordinates at the cell's centre.
func (v *view) pointer(kind picker.EventKind, x, y int) picker.PointerEvent {
	return picker.PointerEvent{Kind: kind, ClientX: float64(x) + 0.5, ClientY: float64(y*2) + 1}
}

func (v *view) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	var kind picker.EventKind
	switch {
	case down && !v.pressed:
		if !v.inArea(x, y) {
			return
		}
		kind = picker.PointerDown
	case down:
		kind = picker.PointerMove
		if !v.inArea(x, y) {
			kind = picker.PointerLeave
		}
	case v.pressed:
		kind = picker.PointerUp
	default:
		kind = picker.PointerMove
	}
	v.pressed = down

	if err := v.picker.Handle(v.canvas, v.pointer(kind, x, y)); err != nil {
		v.status = err.Error()
	}
}

// handleKey returns false when the user quits.
func (v *view) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := ev.Rune(); r {
	case 'q':
		return false
	case 'c', 'm', 'y', 'k':
		v.channel = picker.Channel(string(r))
	case '+', '=':
		v.nudge(1)
	case '-', '_':
		v.nudge(-1)
	}
	return true
}

func (v *view) nudge(delta float64) {
	cmyk := v.picker.Color().CMYK
	cur := map[picker.Channel]float64{
		picker.ChannelCyan:    cmyk.C,
		picker.ChannelMagenta: cmyk.M,
		picker.ChannelYellow:  cmyk.Y,
		picker.ChannelKey:     cmyk.K,
	}[v.channel]
	if err := v.picker.SetChannelValue(v.channel, math.Round(cur)+delta); err != nil {
		v.status = err.Error()
	}
}

func (v *view) draw() {
	v.screen.Clear()

	img := surface.Downsample(v.canvas, v.cols, v.rows*2)
	for y := 0; y < v.rows; y++ {
		for x := 0; x < v.cols; x++ {
			top := img.NRGBAAt(x, y*2)
			bottom := img.NRGBAAt(x, y*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			v.screen.SetContent(x, y, '▀', nil, style)
		}
	}

	c := v.picker.Color()
	swatch := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.RGB.R), int32(c.RGB.G), int32(c.RGB.B)))
	row := v.rows
	v.text(0, row, "      ", swatch)
	v.text(7, row, fmt.Sprintf("%s  rgb(%d, %d, %d)  %s", c.Hex, c.RGB.R, c.RGB.G, c.RGB.B, v.picker.State()), tcell.StyleDefault)

	x := 0
	for _, ch := range []struct {
		name picker.Channel
		val  float64
	}{
		{picker.ChannelCyan, c.CMYK.C},
		{picker.ChannelMagenta, c.CMYK.M},
		{picker.ChannelYellow, c.CMYK.Y},
		{picker.ChannelKey, c.CMYK.K},
	} {
		style := tcell.StyleDefault
		if ch.name == v.channel {
			style = style.Reverse(true)
		}
		x += v.text(x, row+1, fmt.Sprintf(" %s %5.1f ", ch.name, ch.val), style) + 1
	}

	help := "drag to pick  c/m/y/k slider  +/- adjust  q quit"
	if v.status != "" {
		help = v.status
	}
	v.text(0, row+2, help, tcell.StyleDefault.Dim(true))

	v.screen.Show()
}

// text draws s at (x, y) and returns the number of cells used.
func (v *view) text(x, y int, s string, style tcell.Style) int {
	n := 0
	for _, r := range s {
		v.screen.SetContent(x+n, y, r, nil, style)
		n++
	}
	return n
}
