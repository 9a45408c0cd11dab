package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ivlev/img2clean/internal/config"
	"github.com/ivlev/img2clean/internal/job"
	"github.com/ivlev/img2clean/internal/raster"
	"github.com/ivlev/img2clean/internal/sink"
)

// memSource serves synthetic buffers without touching the filesystem.
type memSource struct {
	bufs  []*raster.Buffer
	names []string
	fail  map[int]bool
}

func (m *memSource) Count() int        { return len(m.bufs) }
func (m *memSource) Name(i int) string { return m.names[i] }
func (m *memSource) Close() error      { return nil }

func (m *memSource) Dimensions(i int) (int, int, error) {
	return m.bufs[i].Width, m.bufs[i].Height, nil
}

func (m *memSource) Load(i int) (*raster.Buffer, error) {
	if m.fail[i] {
		return nil, fmt.Errorf("broken file")
	}
	// Copy so reruns inside one test stay independent.
	cp := *m.bufs[i]
	cp.Pix = append([]raster.Colour(nil), m.bufs[i].Pix...)
	return &cp, nil
}

func testImage() *raster.Buffer {
	white := raster.RGB(255, 255, 255)
	black := raster.RGB(0, 0, 0)
	buf := raster.NewBuffer(6, 6, white)
	for x := 1; x < 5; x++ {
		buf.Set(x, 2, black)
	}
	buf.Set(0, 5, black)
	return buf
}

func TestRunWritesOutputs(t *testing.T) {
	outDir := t.TempDir()

	src := &memSource{
		bufs:  []*raster.Buffer{testImage(), testImage()},
		names: []string{"one", "two"},
	}
	cfg := &config.Config{
		InputPath: "mem",
		OutputDir: outDir,
		Colour:    "0,0,0",
		Threshold: 2,
		Mode:      "extract",
		Workers:   2,
	}
	writer := &sink.Writer{Dir: outDir, Enc: sink.PNGEncoder{}}

	project := NewCleanProject(cfg, src, writer)
	if err := project.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, name := range []string{"one.png", "one_s.png", "two.png", "two_s.png"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("Expected output %s: %v", name, err)
		}
	}
}

func TestRunSurvivesBrokenFile(t *testing.T) {
	outDir := t.TempDir()

	src := &memSource{
		bufs:  []*raster.Buffer{testImage(), testImage()},
		names: []string{"bad", "good"},
		fail:  map[int]bool{0: true},
	}
	cfg := &config.Config{
		InputPath: "mem",
		OutputDir: outDir,
		Colour:    "0,0,0",
		Threshold: 2,
		Mode:      "erase",
		Workers:   1,
	}
	writer := &sink.Writer{Dir: outDir, Enc: sink.PNGEncoder{}}

	project := NewCleanProject(cfg, src, writer)
	if err := project.Run(); err != nil {
		t.Fatalf("One broken file must not abort the batch: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outDir, "good.png")); err != nil {
		t.Errorf("Expected good.png: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "bad.png")); err == nil {
		t.Error("bad.png should not exist")
	}
}

func TestRunJobFilePasses(t *testing.T) {
	outDir := t.TempDir()
	jobPath := filepath.Join(outDir, "passes.yaml")

	err := job.Write(&job.Job{
		Version: "1.0",
		Passes: []job.Pass{
			{Colour: "0,0,0", Threshold: 2, Mode: "extract"},
			{Colour: "255,0,0", Threshold: 1, Mode: "erase"},
		},
	}, jobPath)
	if err != nil {
		t.Fatal(err)
	}

	src := &memSource{
		bufs:  []*raster.Buffer{testImage()},
		names: []string{"img"},
	}
	cfg := &config.Config{
		InputPath: "mem",
		OutputDir: outDir,
		JobFile:   jobPath,
		Workers:   1,
	}
	writer := &sink.Writer{Dir: outDir, Enc: sink.PNGEncoder{}}

	if err := NewCleanProject(cfg, src, writer).Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Multi-pass extraction files carry the pass number.
	if _, err := os.Stat(filepath.Join(outDir, "img_s1.png")); err != nil {
		t.Errorf("Expected img_s1.png: %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "img.png")); err != nil {
		t.Errorf("Expected img.png: %v", err)
	}
}

func TestCompilePassesValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"bad colour", config.Config{Colour: "300,0,0", Threshold: 1}},
		{"bad threshold", config.Config{Colour: "0,0,0", Threshold: 0}},
		{"bad mode", config.Config{Colour: "0,0,0", Threshold: 1, Mode: "fuzzy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewCleanProject(&tt.cfg, &memSource{}, nil)
			if err := p.compilePasses(); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}
