package colormath

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// RGB represents a color with 8-bit components.
type RGB struct {
	R int `json:"r"` // Red component (0-255)
	G int `json:"g"` // Green component (0-255)
	B int `json:"b"` // Blue component (0-255)
}

// HSL represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSL struct {
	H int `json:"h"` // Hue: 0-359 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// CMYK represents ink coverage percentages.
//
// Values produced by RGBToCMYK are whole numbers. Values entered through a
// slider may carry fractions.
type CMYK struct {
	C float64 `json:"c"` // Cyan: 0-100 percent
	M float64 `json:"m"` // Magenta: 0-100 percent
	Y float64 `json:"y"` // Yellow: 0-100 percent
	K float64 `json:"k"` // Key (black): 0-100 percent
}

// Hex returns the "#rrggbb" form of c.
func (c RGB) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

// HSL returns c converted to HSL.
func (c RGB) HSL() HSL {
	return RGBToHSL(float64(c.R), float64(c.G), float64(c.B))
}

// CMYK returns c converted to CMYK.
func (c RGB) CMYK() CMYK {
	return RGBToCMYK(float64(c.R), float64(c.G), float64(c.B))
}

// RGB returns the color described by the HSL value.
func (c HSL) RGB() RGB {
	return HSLToRGB(float64(c.H), float64(c.S), float64(c.L))
}

// RGB returns the color described by the ink coverage.
func (c CMYK) RGB() RGB {
	return CMYKToRGB(c.C, c.M, c.Y, c.K)
}

// Bundle holds one color in every representation the picker reports.
type Bundle struct {
	Hex  string `json:"hex"`
	RGB  RGB    `json:"rgb"`
	HSL  HSL    `json:"hsl"`
	CMYK CMYK   `json:"cmyk"`
}

// NewBundle computes all representations of c.
func NewBundle(c RGB) Bundle {
	return Bundle{
		Hex:  c.Hex(),
		RGB:  c,
		HSL:  c.HSL(),
		CMYK: c.CMYK(),
	}
}

// RGBToHex formats 8-bit channels as a lowercase "#rrggbb" string.
//
// Each channel is zero-padded to two digits, so RGBToHex(1, 0, 16) is
// "#010010". Channels outside 0-255 are clamped first.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(r), clampChannel(g), clampChannel(b))
}

// ParseHex parses "#rrggbb" or "#rgb" (the leading '#' is optional).
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return RGB{}, errors.Wrapf(err, "invalid hex color %q", s)
	}
	r, g, b := c.RGB255()
	return RGB{R: int(r), G: int(g), B: int(b)}, nil
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// validChannels reports whether every value lies in [0, 255].
func validChannels(vs ...float64) bool {
	return inRange(0, 255, vs...)
}

func inRange(lo, hi float64, vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || v < lo || v > hi {
			return false
		}
	}
	return true
}

// roundHalfUp rounds to the nearest integer, ties toward positive infinity.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// round2 rounds to two decimal places.
func round2(x float64) float64 {
	return roundHalfUp(x*100) / 100
}
