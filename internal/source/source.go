package source

import "github.com/ivlev/img2clean/internal/raster"

// Source enumerates the images of one input (directory, single file or
// PDF document) and decodes them into working buffers.
type Source interface {
	Count() int
	// Name returns the output base name for entry index, without
	// extension.
	Name(index int) string
	// Dimensions reports the pixel size of an entry without decoding
	// the full image.
	Dimensions(index int) (width, height int, err error)
	Load(index int) (*raster.Buffer, error)
	Close() error
}
