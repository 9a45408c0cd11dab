package raster

import (
	"image"
	"image/draw"
)

// Buffer holds the working pixel grid as a flat slice for cache locality.
// Every coordinate inside the bounds always has a defined colour.
type Buffer struct {
	Width  int
	Height int
	Pix    []Colour // row-major, len = Width*Height
}

// NewBuffer allocates a buffer filled with the given colour.
func NewBuffer(w, h int, fill Colour) *Buffer {
	pix := make([]Colour, w*h)
	for i := range pix {
		pix[i] = fill
	}
	return &Buffer{Width: w, Height: h, Pix: pix}
}

// FromImage copies a decoded image into a Buffer. The source bounds may
// start anywhere; the buffer is always zero-based.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Normalize through NRGBA so every source model lands on the same
	// packed representation.
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(nrgba, nrgba.Rect, img, bounds.Min, draw.Src)
	}

	buf := &Buffer{Width: w, Height: h, Pix: make([]Colour, w*h)}
	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		for x := 0; x < w; x++ {
			p := row[x*4:]
			buf.Pix[y*w+x] = Colour(uint32(p[0])<<24 | uint32(p[1])<<16 | uint32(p[2])<<8 | uint32(p[3]))
		}
	}
	return buf
}

// In reports whether (x, y) lies inside the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Index maps (x, y) to the flat pixel index. Callers must check In first.
func (b *Buffer) Index(x, y int) int {
	return y*b.Width + x
}

// At returns the colour at (x, y).
func (b *Buffer) At(x, y int) Colour {
	return b.Pix[y*b.Width+x]
}

// Set overwrites the colour at (x, y).
func (b *Buffer) Set(x, y int, c Colour) {
	b.Pix[y*b.Width+x] = c
}

// Crop returns a copy of the sub-grid x0..x1, y0..y1 inclusive.
func (b *Buffer) Crop(x0, y0, x1, y1 int) *Buffer {
	w := x1 - x0 + 1
	h := y1 - y0 + 1
	out := &Buffer{Width: w, Height: h, Pix: make([]Colour, w*h)}
	for y := 0; y < h; y++ {
		copy(out.Pix[y*w:(y+1)*w], b.Pix[(y0+y)*b.Width+x0:(y0+y)*b.Width+x0+w])
	}
	return out
}

// WriteNRGBA fills dst with the buffer contents. dst must be zero-based
// and at least Width x Height; encoders pass pooled images here.
func (b *Buffer) WriteNRGBA(dst *image.NRGBA) {
	for y := 0; y < b.Height; y++ {
		row := dst.Pix[y*dst.Stride:]
		for x := 0; x < b.Width; x++ {
			c := b.Pix[y*b.Width+x]
			o := x * 4
			row[o+0] = uint8(c >> 24)
			row[o+1] = uint8(c >> 16)
			row[o+2] = uint8(c >> 8)
			row[o+3] = uint8(c)
		}
	}
}

// NRGBA converts the buffer to a freshly allocated *image.NRGBA.
func (b *Buffer) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	b.WriteNRGBA(img)
	return img
}
