package sink

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"

	"github.com/ivlev/img2clean/internal/raster"
	"github.com/ivlev/img2clean/internal/system"
)

// Encoder persists a working buffer into one output format.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
	Ext() string
}

type PNGEncoder struct{}

func (PNGEncoder) Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func (PNGEncoder) Ext() string { return ".png" }

type WebPEncoder struct{}

func (WebPEncoder) Encode(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, nil)
}

func (WebPEncoder) Ext() string { return ".webp" }

// NewEncoder maps the CLI format name to an encoder.
func NewEncoder(format string) (Encoder, error) {
	switch format {
	case "png", "":
		return PNGEncoder{}, nil
	case "webp":
		return WebPEncoder{}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}

// Writer saves buffers into a single output directory.
type Writer struct {
	Dir string
	Enc Encoder
}

// Save encodes buf as <name><ext> inside the output directory and
// returns the written path. The conversion image comes from the shared
// pool since batches encode many same-sized frames.
func (w *Writer) Save(name string, buf *raster.Buffer) (string, error) {
	path := filepath.Join(w.Dir, name+w.Enc.Ext())

	img := system.GetImage(image.Rect(0, 0, buf.Width, buf.Height))
	defer system.PutImage(img)
	buf.WriteNRGBA(img)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := w.Enc.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	return path, f.Close()
}
