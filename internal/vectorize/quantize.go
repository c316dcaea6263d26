package vectorize

import (
	"image"
	"image/color"
)

// quantize reduces an image to at most n colors and returns the palette
// plus a per-pixel palette index map (row-major, y*width+x).
//
// The initial palette is seeded by sampling pixels at evenly spaced
// positions, then refined with a fixed number of assignment/mean cycles.
// No randomness anywhere, so the result is stable across runs.
func quantize(img image.Image, n, cycles int) ([]color.RGBA, []int) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	total := width * height

	pixels := make([]color.RGBA, total)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*width+x] = color.RGBA{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
				A: uint8(a >> 8),
			}
		}
	}

	if n > total {
		n = total
	}

	// Deterministic seeding: evenly spaced sample positions
	palette := make([]color.RGBA, n)
	for i := 0; i < n; i++ {
		palette[i] = pixels[i*total/n]
	}

	index := make([]int, total)
	for cycle := 0; cycle < cycles; cycle++ {
		sumR := make([]int64, n)
		sumG := make([]int64, n)
		sumB := make([]int64, n)
		sumA := make([]int64, n)
		count := make([]int64, n)

		for i, p := range pixels {
			best := nearest(palette, p)
			index[i] = best
			sumR[best] += int64(p.R)
			sumG[best] += int64(p.G)
			sumB[best] += int64(p.B)
			sumA[best] += int64(p.A)
			count[best]++
		}

		// Last cycle keeps the assignment aligned with the palette
		if cycle == cycles-1 {
			break
		}

		for i := 0; i < n; i++ {
			if count[i] == 0 {
				continue // empty cluster keeps its seed color
			}
			palette[i] = color.RGBA{
				R: uint8(sumR[i] / count[i]),
				G: uint8(sumG[i] / count[i]),
				B: uint8(sumB[i] / count[i]),
				A: uint8(sumA[i] / count[i]),
			}
		}
	}

	return palette, index
}

func nearest(palette []color.RGBA, p color.RGBA) int {
	best, bestDist := 0, int64(1)<<62
	for i, c := range palette {
		dr := int64(p.R) - int64(c.R)
		dg := int64(p.G) - int64(c.G)
		db := int64(p.B) - int64(c.B)
		da := int64(p.A) - int64(c.A)
		dist := dr*dr + dg*dg + db*db + da*da
		if dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}
