package vectorize

import (
	"fmt"
	"strings"
)

// renderSVG serializes traced layers into a viewBox-scoped SVG document.
// Each layer becomes a single path whose subpaths carry every loop of that
// color; evenodd then leaves hole loops unfilled instead of painting them
// over whatever they enclose. Layers are emitted in palette order and
// contours in scanline order, so the output is byte-stable for identical
// input.
func renderSVG(width, height int, layers []layer) string {
	var b strings.Builder

	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" preserveAspectRatio="xMidYMid meet">`,
		width, height)

	for _, l := range layers {
		b.WriteString(`<path fill="`)
		fmt.Fprintf(&b, "#%02x%02x%02x", l.color.R, l.color.G, l.color.B)
		if l.color.A < 255 {
			fmt.Fprintf(&b, `" fill-opacity="%.3f`, float64(l.color.A)/255)
		}
		b.WriteString(`" fill-rule="evenodd" d="`)
		for i, c := range l.contours {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(pathData(c))
		}
		b.WriteString(`"/>`)
	}

	b.WriteString("</svg>")
	return b.String()
}

func pathData(c contour) string {
	var b strings.Builder
	for i, p := range c {
		if i == 0 {
			fmt.Fprintf(&b, "M%d %d", p.X, p.Y)
		} else {
			fmt.Fprintf(&b, "L%d %d", p.X, p.Y)
		}
	}
	b.WriteString("Z")
	return b.String()
}
