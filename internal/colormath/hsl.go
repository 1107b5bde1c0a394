package colormath

// RGBToHSL converts 8-bit RGB values to HSL.
//
// The conversion follows the standard algorithm:
//  1. Normalize channels to 0-1, rounded to two decimals
//  2. Lightness is the midpoint of the smallest and largest channel
//  3. Saturation uses (max-min)/(2-max-min) when lightness exceeds 50%,
//     and (max-min)/(max+min) otherwise
//  4. Hue is measured from the zone of the largest channel (0, 120 or 240
//     degrees), offset by the difference of the other two channels
//
// Returns HSL{0, 0, 0} if any channel is outside 0-255 or NaN.
func RGBToHSL(r, g, b float64) HSL {
	if !validChannels(r, g, b) {
		return HSL{}
	}

	ch := [3]float64{round2(r / 255), round2(g / 255), round2(b / 255)}
	lo, hi := ch[0], ch[0]
	for _, v := range ch[1:] {
		if v > hi {
			hi = v
		}
		if v < lo {
			lo = v
		}
	}

	l := roundHalfUp((lo + hi) / 2 * 100)
	if hi == lo {
		return HSL{L: int(l)}
	}

	var s float64
	if l > 50 {
		s = (hi - lo) / (2 - hi - lo)
	} else {
		s = (hi - lo) / (hi + lo)
	}

	var h float64
	for i, v := range ch {
		if v != hi {
			continue
		}
		// Zone of the largest channel, shifted by the two channels after it.
		next, prev := ch[(i+1)%3], ch[(i+2)%3]
		h = float64(i*2) + (next-prev)/(hi-lo)
		h = roundHalfUp(round2(h) * 60)
		if h < 0 {
			h += 360
		}
	}

	return HSL{H: int(h), S: int(roundHalfUp(s * 100)), L: int(l)}
}

// HSLToRGB converts HSL to 8-bit RGB.
//
// Parameters:
//   - h: hue in degrees, 0-360
//   - s: saturation percent, 0-100
//   - l: lightness percent, 0-100
//
// Returns RGB{0, 0, 0} if any parameter is out of range or NaN.
func HSLToRGB(h, s, l float64) RGB {
	if !inRange(0, 360, h) || !inRange(0, 100, s, l) {
		return RGB{}
	}

	hue := h / 360
	sat := s * 0.01
	lum := l * 0.01

	if sat == 0 {
		v := int(roundHalfUp(lum * 255))
		return RGB{R: v, G: v, B: v}
	}

	var t1 float64
	if lum < 0.5 {
		t1 = lum * (1 + sat)
	} else {
		t1 = lum + sat - lum*sat
	}
	t2 := 2*lum - t1

	out := [3]int{}
	for i, offset := range [3]float64{1.0 / 3, 0, -1.0 / 3} {
		t := hue + offset
		if t < 0 {
			t++
		} else if t > 1 {
			t--
		}
		out[i] = int(roundHalfUp(hueChannel(t1, t2, t) * 255))
	}

	return RGB{R: out[0], G: out[1], B: out[2]}
}

// hueChannel evaluates one channel of the piecewise HSL formula.
func hueChannel(t1, t2, t float64) float64 {
	switch {
	case 6*t < 1:
		return t2 + (t1-t2)*6*t
	case 2*t < 1:
		return t1
	case 3*t < 2:
		return t2 + (t1-t2)*6*(2.0/3-t)
	default:
		return t2
	}
}
