// Package colormath converts colors between the RGB, HSL, CMYK, and hex
// representations used by the picker.
//
// Every conversion is a pure, total function: invalid input (a channel out of
// range or NaN) never panics and instead produces a documented fallback value.
//
// # Ranges
//
//   - RGB: 8-bit channels, 0-255
//   - HSL: hue 0-360 degrees, saturation and lightness 0-100 percent
//   - CMYK: ink coverage 0-100 percent per channel
//   - Hex: "#rrggbb", lowercase, zero-padded
//
// # Rounding
//
// Intermediate values are rounded half-up (toward positive infinity), the
// same way a browser rounds, so that results line up with values produced by
// a canvas-based picker. Channel fractions are rounded to two decimals before
// HSL and CMYK arithmetic.
//
// # Fallbacks
//
//   - RGBToHSL: HSL{0, 0, 0}
//   - HSLToRGB: RGB{0, 0, 0}
//   - RGBToCMYK: CMYK{0, 0, 0, 1} (K is not scaled to a percentage)
//   - CMYKToRGB: RGB{0, 0, 0}
package colormath
