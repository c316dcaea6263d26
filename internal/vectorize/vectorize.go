// Package vectorize converts raster images into SVG approximations via
// color quantization and contour path tracing. The conversion is a pure
// function of (image bytes, options): the same input always yields the
// same markup.
package vectorize

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/avastudio/avatar-api/internal/domain"
)

// Options controls quantization and tracing fidelity
type Options struct {
	// NumberOfColors bounds the quantized palette size
	NumberOfColors int

	// ColorQuantCycles is the number of palette refinement passes
	ColorQuantCycles int

	// LineTolerance is the max perpendicular deviation, in pixels, below
	// which a contour point is dropped during simplification
	LineTolerance float64

	// PathOmit drops traced contours with fewer points than this
	PathOmit int

	// RightAngleEnhance snaps nearly axis-aligned segments back onto the
	// axis after simplification
	RightAngleEnhance bool
}

// DefaultOptions mirrors the parameter set tuned for flat avatar art
func DefaultOptions() Options {
	return Options{
		NumberOfColors:    16,
		ColorQuantCycles:  3,
		LineTolerance:     1,
		PathOmit:          8,
		RightAngleEnhance: true,
	}
}

// FromBytes decodes PNG or JPEG bytes and traces them into SVG markup
func FromBytes(data []byte, opts Options) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: decode image: %v", domain.ErrVectorizationFailed, err)
	}
	return Trace(img, opts)
}

// Trace quantizes an image and renders its traced contours as SVG
func Trace(img image.Image, opts Options) (string, error) {
	if opts.NumberOfColors < 2 {
		opts.NumberOfColors = 2
	}
	if opts.ColorQuantCycles < 1 {
		opts.ColorQuantCycles = 1
	}

	palette, index := quantize(img, opts.NumberOfColors, opts.ColorQuantCycles)

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	var layers []layer
	for ci := range palette {
		contours := traceLayer(index, width, height, ci, opts)
		if len(contours) == 0 {
			continue
		}
		layers = append(layers, layer{color: palette[ci], contours: contours})
	}

	if len(layers) == 0 {
		return "", fmt.Errorf("%w: tracer produced no paths", domain.ErrVectorizationFailed)
	}

	return renderSVG(width, height, layers), nil
}
