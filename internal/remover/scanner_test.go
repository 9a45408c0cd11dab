package remover

import (
	"testing"

	"github.com/ivlev/img2clean/internal/raster"
)

func TestScanRegionIsMaximal(t *testing.T) {
	buf := raster.NewBuffer(5, 5, white)
	// A plus shape centered at (2,2).
	for _, p := range [][2]int{{2, 1}, {1, 2}, {2, 2}, {3, 2}, {2, 3}} {
		buf.Set(p[0], p[1], black)
	}
	// A separate pixel not 4-connected to the plus.
	buf.Set(4, 4, black)

	visited := make([]bool, buf.Width*buf.Height)
	region := scanRegion(buf, black, 2, 2, visited)

	if len(region) != 5 {
		t.Fatalf("Expected region of 5, got %d", len(region))
	}
	if visited[buf.Index(4, 4)] {
		t.Error("Unconnected pixel must not be visited")
	}

	// No pixel adjacent to the region may still match outside it.
	inRegion := make(map[int]bool, len(region))
	for _, p := range region {
		inRegion[p] = true
	}
	for _, p := range region {
		x, y := p%buf.Width, p/buf.Width
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nx, ny := x+d[0], y+d[1]
			if buf.In(nx, ny) && buf.At(nx, ny) == black && !inRegion[buf.Index(nx, ny)] {
				t.Errorf("Region not maximal: matching neighbour (%d,%d) excluded", nx, ny)
			}
		}
	}
}

func TestScanRegionSinglePixel(t *testing.T) {
	buf := raster.NewBuffer(3, 3, white)
	buf.Set(1, 1, black)

	visited := make([]bool, 9)
	region := scanRegion(buf, black, 1, 1, visited)

	if len(region) != 1 {
		t.Errorf("Isolated pixel should form a region of 1, got %d", len(region))
	}
	if !visited[buf.Index(1, 1)] {
		t.Error("Start pixel not marked visited")
	}
}

func TestScanRegionSharedVisited(t *testing.T) {
	// Two separate runs on one row share the visited set; scanning the
	// first must not claim the second.
	buf := raster.NewBuffer(7, 1, white)
	buf.Set(1, 0, black)
	buf.Set(2, 0, black)
	buf.Set(4, 0, black)
	buf.Set(5, 0, black)

	visited := make([]bool, 7)
	first := scanRegion(buf, black, 1, 0, visited)
	if len(first) != 2 {
		t.Fatalf("First region: expected 2, got %d", len(first))
	}

	second := scanRegion(buf, black, 4, 0, visited)
	if len(second) != 2 {
		t.Fatalf("Second region: expected 2, got %d", len(second))
	}

	total := 0
	for _, v := range visited {
		if v {
			total++
		}
	}
	if total != 4 {
		t.Errorf("Expected 4 visited pixels, got %d", total)
	}
}
