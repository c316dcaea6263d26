package vectorize

import (
	"image/color"
	"math"
	"sort"
)

type point struct {
	X, Y int
}

type contour []point

type layer struct {
	color    color.RGBA
	contours []contour
}

// traceLayer extracts the boundary loops of all pixels assigned to palette
// index ci. Boundary edges are oriented with the region on the left, so
// outer loops wind clockwise and hole loops counter-clockwise; renderSVG
// joins all of them into one evenodd path so the hole loops stay unfilled.
func traceLayer(index []int, width, height, ci int, opts Options) []contour {
	inside := func(x, y int) bool {
		if x < 0 || y < 0 || x >= width || y >= height {
			return false
		}
		return index[y*width+x] == ci
	}

	// Collect directed unit edges along exposed pixel sides. A vertex can
	// carry two outgoing edges where regions touch diagonally, so fan-out
	// is kept as a sorted slice for a deterministic walk.
	edges := make(map[point][]point)
	addEdge := func(from, to point) {
		edges[from] = append(edges[from], to)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !inside(x, y) {
				continue
			}
			if !inside(x, y-1) {
				addEdge(point{x, y}, point{x + 1, y})
			}
			if !inside(x+1, y) {
				addEdge(point{x + 1, y}, point{x + 1, y + 1})
			}
			if !inside(x, y+1) {
				addEdge(point{x + 1, y + 1}, point{x, y + 1})
			}
			if !inside(x-1, y) {
				addEdge(point{x, y + 1}, point{x, y})
			}
		}
	}
	for _, outs := range edges {
		sort.Slice(outs, func(i, j int) bool {
			if outs[i].Y != outs[j].Y {
				return outs[i].Y < outs[j].Y
			}
			return outs[i].X < outs[j].X
		})
	}

	// Walk loops starting from the smallest remaining vertex so output
	// ordering is deterministic
	starts := make([]point, 0, len(edges))
	for p := range edges {
		starts = append(starts, p)
	}
	sort.Slice(starts, func(i, j int) bool {
		if starts[i].Y != starts[j].Y {
			return starts[i].Y < starts[j].Y
		}
		return starts[i].X < starts[j].X
	})

	var contours []contour
	for _, start := range starts {
		if len(edges[start]) == 0 {
			continue
		}
		loop := walkLoop(edges, start)
		if len(loop) < opts.PathOmit {
			continue
		}
		loop = simplify(loop, opts.LineTolerance)
		if opts.RightAngleEnhance {
			loop = snapRightAngles(loop)
		}
		if len(loop) >= 3 {
			contours = append(contours, loop)
		}
	}
	return contours
}

func walkLoop(edges map[point][]point, start point) contour {
	var loop contour
	cur := start
	for {
		outs := edges[cur]
		if len(outs) == 0 {
			break
		}
		next := outs[0]
		edges[cur] = outs[1:]
		loop = append(loop, cur)
		cur = next
		if cur == start {
			break
		}
	}
	return loop
}

// simplify removes points whose perpendicular distance from the chord of
// their neighbors is below the tolerance. Collinear points always go.
func simplify(loop contour, tolerance float64) contour {
	if tolerance <= 0 || len(loop) < 4 {
		return loop
	}

	out := make(contour, 0, len(loop))
	n := len(loop)
	for i := 0; i < n; i++ {
		prev := loop[(i-1+n)%n]
		cur := loop[i]
		next := loop[(i+1)%n]
		if perpDistance(prev, cur, next) < tolerance {
			continue
		}
		out = append(out, cur)
	}
	if len(out) < 3 {
		return loop
	}
	return out
}

func perpDistance(a, p, b point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	if dx == 0 && dy == 0 {
		px := float64(p.X - a.X)
		py := float64(p.Y - a.Y)
		return math.Hypot(px, py)
	}
	num := dy*float64(p.X) - dx*float64(p.Y) + float64(b.X)*float64(a.Y) - float64(b.Y)*float64(a.X)
	return math.Abs(num) / math.Hypot(dx, dy)
}

// snapRightAngles restores axis alignment for segments that simplification
// left one pixel off axis
func snapRightAngles(loop contour) contour {
	n := len(loop)
	if n < 3 {
		return loop
	}
	out := make(contour, n)
	copy(out, loop)
	for i := 0; i < n; i++ {
		cur := &out[i]
		next := out[(i+1)%n]
		dx := next.X - cur.X
		dy := next.Y - cur.Y
		if dx != 0 && dy != 0 {
			if abs(dy) == 1 && abs(dx) > 1 {
				cur.Y = next.Y
			} else if abs(dx) == 1 && abs(dy) > 1 {
				cur.X = next.X
			}
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
