package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/ivlev/img2clean/internal/raster"
)

// FitzPDFSource rasterizes PDF pages so they can be cleaned like any
// other image. Each page becomes one entry.
type FitzPDFSource struct {
	doc  *fitz.Document
	path string
	dpi  int
}

func NewFitzPDFSource(path string, dpi int) (*FitzPDFSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return &FitzPDFSource{doc: doc, path: path, dpi: dpi}, nil
}

func (f *FitzPDFSource) Count() int {
	return f.doc.NumPage()
}

func (f *FitzPDFSource) Name(index int) string {
	base := filepath.Base(f.path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s_p%d", base, index+1)
}

func (f *FitzPDFSource) Dimensions(index int) (int, int, error) {
	rect, err := f.doc.Bound(index)
	if err != nil {
		return 0, 0, err
	}
	scale := float64(f.dpi) / 72.0
	return int(float64(rect.Dx()) * scale), int(float64(rect.Dy()) * scale), nil
}

func (f *FitzPDFSource) Load(index int) (*raster.Buffer, error) {
	// Отдельный документ на вызов: go-fitz не потокобезопасен, а
	// страницы загружаются из пула воркеров.
	workerDoc, err := fitz.New(f.path)
	if err != nil {
		return nil, err
	}
	defer workerDoc.Close()

	img, err := workerDoc.ImageDPI(index, float64(f.dpi))
	if err != nil {
		return nil, err
	}
	return raster.FromImage(img), nil
}

func (f *FitzPDFSource) Close() error {
	return f.doc.Close()
}
