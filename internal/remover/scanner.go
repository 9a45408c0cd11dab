package remover

import "github.com/ivlev/img2clean/internal/raster"

// Region is one maximal 4-connected group of target-colour pixels,
// stored as flat indices into the buffer.
type Region []int

// scanRegion grows the full 4-connected region containing the start
// pixel, which must already match the target colour. Visited pixels are
// flagged in visited, which doubles as the region membership test, so
// every pixel is pushed at most once and the work list always drains.
//
// The traversal is iterative on purpose: a recursive walk has call
// stack depth proportional to the region size and blows up on large
// uniform areas.
func scanRegion(buf *raster.Buffer, target raster.Colour, startX, startY int, visited []bool) Region {
	start := buf.Index(startX, startY)
	visited[start] = true

	region := Region{start}
	stack := []int{start}

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		x := idx % buf.Width
		y := idx / buf.Width

		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nx, ny := x+d[0], y+d[1]
			if !buf.In(nx, ny) {
				continue
			}
			n := buf.Index(nx, ny)
			if visited[n] || buf.Pix[n] != target {
				continue
			}
			visited[n] = true
			region = append(region, n)
			stack = append(stack, n)
		}
	}

	return region
}
