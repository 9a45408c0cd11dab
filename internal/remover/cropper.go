package remover

import "github.com/ivlev/img2clean/internal/raster"

// BoundingBox is the inclusive extent of non-background content.
type BoundingBox struct {
	MinX, MinY int
	MaxX, MaxY int
}

// ContentBounds finds the bounding box of every pixel that differs from
// the background colour. ok is false when the image is entirely
// background; callers must not treat that as a box.
func ContentBounds(buf *raster.Buffer, background raster.Colour) (box BoundingBox, ok bool) {
	box = BoundingBox{
		MinX: buf.Width,
		MinY: buf.Height,
		MaxX: -1,
		MaxY: -1,
	}

	for y := 0; y < buf.Height; y++ {
		row := buf.Pix[y*buf.Width : (y+1)*buf.Width]
		for x, c := range row {
			if c == background {
				continue
			}
			if x < box.MinX {
				box.MinX = x
			}
			if x > box.MaxX {
				box.MaxX = x
			}
			if y < box.MinY {
				box.MinY = y
			}
			if y > box.MaxY {
				box.MaxY = y
			}
		}
	}

	if box.MaxX < box.MinX {
		return BoundingBox{}, false
	}
	return box, true
}

// CropToContent returns a copy of buf cut down to its non-background
// bounding box. ok is false for an all-background image. The input is
// never mutated.
func CropToContent(buf *raster.Buffer, background raster.Colour) (*raster.Buffer, bool) {
	box, ok := ContentBounds(buf, background)
	if !ok {
		return nil, false
	}
	return buf.Crop(box.MinX, box.MinY, box.MaxX, box.MaxY), true
}
