package surface

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Snapshot size limits. Larger requests are rejected before any pixel
// buffer is allocated.
const (
	MaxSnapshotScale = 16
	MaxSnapshotSide  = 4096
)

// SnapshotOptions controls how a surface is captured.
type SnapshotOptions struct {
	// Crop limits the capture to a region. Nil captures the whole surface.
	Crop *image.Rectangle

	// Scale resizes the capture (nearest neighbour, so picked colors survive
	// enlargement). Zero or 1 leaves the size unchanged.
	Scale float64
}

// SnapshotResult contains the encoded surface image
type SnapshotResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Image copies the surface contents into an NRGBA image.
func Image(s Surface) *image.NRGBA {
	w, h := s.Size()
	img := imaging.New(w, h, color.NRGBA{})
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, s.ReadPixel(x, y))
		}
	}
	return img
}

// Downsample returns the surface resized to w x h, averaging the pixels each
// output pixel covers.
func Downsample(s Surface, w, h int) *image.NRGBA {
	return imaging.Resize(Image(s), w, h, imaging.Box)
}

// Snapshot encodes the surface as a base64 PNG.
func Snapshot(s Surface, opts SnapshotOptions) (*SnapshotResult, error) {
	w, h := s.Size()
	if w == 0 || h == 0 {
		return nil, ErrNotSized
	}

	img := Image(s)
	if opts.Crop != nil {
		r := opts.Crop.Intersect(img.Bounds())
		if r.Empty() {
			return nil, errors.Errorf("crop region %v outside surface bounds %v", *opts.Crop, img.Bounds())
		}
		img = imaging.Crop(img, r)
	}

	if opts.Scale > MaxSnapshotScale {
		return nil, errors.Errorf("scale %g exceeds maximum %d", opts.Scale, MaxSnapshotScale)
	}
	if opts.Scale != 1.0 && opts.Scale > 0 {
		newWidth := int(float64(img.Bounds().Dx()) * opts.Scale)
		newHeight := int(float64(img.Bounds().Dy()) * opts.Scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, errors.Errorf("scale %.3f leaves no pixels", opts.Scale)
		}
		if newWidth > MaxSnapshotSide || newHeight > MaxSnapshotSide {
			return nil, errors.Errorf("scaled snapshot %dx%d exceeds %d pixels per side", newWidth, newHeight, MaxSnapshotSide)
		}
		img = imaging.Resize(img, newWidth, newHeight, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, errors.Wrap(err, "failed to encode snapshot")
	}

	return &SnapshotResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
