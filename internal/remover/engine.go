package remover

import (
	"fmt"

	"github.com/ivlev/img2clean/internal/raster"
)

// Mode selects what Process produces besides the cleaned image.
type Mode int

const (
	// ModeErase only removes matching regions.
	ModeErase Mode = iota
	// ModeExtract additionally records removed pixels in a second buffer.
	ModeExtract
	// ModeCrop removes matching regions and crops the result to its
	// non-background bounding box.
	ModeCrop
)

// ParseMode maps the CLI mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "erase", "":
		return ModeErase, nil
	case "extract":
		return ModeExtract, nil
	case "crop":
		return ModeCrop, nil
	default:
		return 0, fmt.Errorf("unknown mode: %s", s)
	}
}

// Result carries the outputs of one Process call.
type Result struct {
	Output *raster.Buffer
	// Extracted holds removed pixels on a background canvas. Set only
	// in ModeExtract.
	Extracted *raster.Buffer
	// Removed is the total number of erased pixels.
	Removed int
	// Cropped is false when ModeCrop found no non-background content;
	// Output is then the uncropped buffer.
	Cropped bool
}

// Logf, when set, receives one line per removed region.
type Logf func(format string, args ...interface{})

// Engine removes connected regions of one colour from images. It holds
// no per-image state; the same Engine may process any number of images.
type Engine struct {
	Colour    raster.Colour
	Threshold int
	Log       Logf
}

// NewEngine returns an engine for the given colour and minimum region
// size.
func NewEngine(colour raster.Colour, threshold int) *Engine {
	return &Engine{Colour: colour, Threshold: threshold}
}

// Background infers the background colour of an image: the top-left
// pixel is assumed to belong to a uniform border. No statistical
// estimation is attempted.
func Background(buf *raster.Buffer) (raster.Colour, error) {
	if buf == nil || buf.Width < 1 || buf.Height < 1 {
		return 0, ErrInvalidImage
	}
	return buf.At(0, 0), nil
}

// remove reports whether a region of the given size must be erased.
// The bound is inclusive: a region exactly at the threshold goes.
func (e *Engine) remove(size int) bool {
	return size >= e.Threshold
}

// Process erases every region of the target colour whose pixel count
// meets the threshold, replacing it with the background colour taken
// from the top-left pixel. The buffer is mutated in place and returned
// inside the Result. Validation happens before any mutation.
func (e *Engine) Process(buf *raster.Buffer, mode Mode) (*Result, error) {
	background, err := Background(buf)
	if err != nil {
		return nil, err
	}
	if e.Threshold < 1 {
		return nil, ErrInvalidThreshold
	}

	var extracted *raster.Buffer
	if mode == ModeExtract {
		extracted = raster.NewBuffer(buf.Width, buf.Height, background)
	}

	visited := make([]bool, buf.Width*buf.Height)
	res := &Result{Output: buf, Extracted: extracted}

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			idx := buf.Index(x, y)
			if buf.Pix[idx] != e.Colour || visited[idx] {
				continue
			}

			region := scanRegion(buf, e.Colour, x, y, visited)
			if !e.remove(len(region)) {
				// Region is too small to remove.
				continue
			}

			if e.Log != nil {
				e.Log("[*] Удаляем область: %d пикселей", len(region))
			}

			for _, p := range region {
				buf.Pix[p] = background
				if extracted != nil {
					extracted.Pix[p] = e.Colour
				}
			}
			res.Removed += len(region)
		}
	}

	if mode == ModeCrop {
		if cropped, ok := CropToContent(buf, background); ok {
			res.Output = cropped
			res.Cropped = true
		}
	}

	return res, nil
}
