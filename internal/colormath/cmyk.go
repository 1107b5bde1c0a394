package colormath

// RGBToCMYK converts 8-bit RGB values to CMYK percentages.
//
// K is the smallest of the residual inks C=1-r/255, M=1-g/255, Y=1-b/255.
// Pure black short-circuits to C=M=Y=0; otherwise each ink has K removed and
// is rescaled by 1/(1-K). All four values are rounded to whole percentages.
//
// Returns CMYK{0, 0, 0, 1} if any channel is outside 0-255 or NaN. That
// fallback K is on the unscaled 0-1 axis, so callers that need to tell it
// apart from a real color should validate their input first.
func RGBToCMYK(r, g, b float64) CMYK {
	if !validChannels(r, g, b) {
		return CMYK{K: 1}
	}

	c := 1 - r/255
	m := 1 - g/255
	y := 1 - b/255
	k := min(c, m, y)

	if k == 1 {
		c, m, y = 0, 0, 0
	} else {
		c = round2((c - k) / (1 - k))
		m = round2((m - k) / (1 - k))
		y = round2((y - k) / (1 - k))
	}
	k = round2(k)

	return CMYK{
		C: percent(c),
		M: percent(m),
		Y: percent(y),
		K: percent(k),
	}
}

// CMYKToRGB converts CMYK percentages to 8-bit RGB using the standard
// inverse: channel = 255 * (1 - ink/100) * (1 - k/100).
//
// Returns RGB{0, 0, 0} if any parameter is outside 0-100 or NaN.
func CMYKToRGB(c, m, y, k float64) RGB {
	if !inRange(0, 100, c, m, y, k) {
		return RGB{}
	}
	black := 1 - k/100
	channel := func(ink float64) int {
		return int(roundHalfUp(255 * (1 - ink/100) * black))
	}
	return RGB{R: channel(c), G: channel(m), B: channel(y)}
}

// percent scales a two-decimal fraction to a whole percentage without the
// binary noise of a bare multiplication (0.29*100 is 28.999...).
func percent(v float64) float64 {
	return roundHalfUp(v * 100)
}
