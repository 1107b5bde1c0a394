// Package surface defines the drawing surface the picker paints its gradient
// on and samples colors from.
//
// A Surface accepts a small set of paint instructions (gradient rectangle
// fills and stroked circles) and reads back single pixels. Two
// implementations are provided:
//
//   - Canvas: a software surface on a github.com/gogpu/gg context
//   - Recorder: records every instruction, optionally forwarding to another
//     surface, so callers can be tested headlessly
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner. Gradient
// geometry is expressed in continuous surface space, and a pixel is shaded
// by evaluating the gradient at its centre (x+0.5, y+0.5).
//
// The bounding box (Box) places the surface in the client coordinate space
// used by pointer events. Its size may differ from the pixel size when the
// surface is displayed scaled.
package surface
