// Package picker maps pointer positions on a rendered gradient to colors.
//
// The gradient is a hard-edged hue wheel running left to right (red, yellow,
// green, cyan, blue, magenta, red) with a vertical overlay that fades to
// white above the centre line and to black below it. The pure hue sits only
// on the vertical midpoint.
//
// A Controller owns the interaction: the current color bundle, the
// Idle/Engaged state machine, and the CMYK slider edits. Every sample
// repaints the whole surface (gradient plus selection marker) before reading
// the pixel under the pointer, so a read never sees a stale frame.
//
// Controllers are not safe for concurrent use.
package picker
