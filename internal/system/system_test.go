package system

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"photo.png", true},
		{"scan.BMP", true},
		{"pic.JPG", true},
		{"pic.jpeg", true},
		{"anim.gif", true},
		{"doc.pdf", false},
		{"archive.tar.gz", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := IsImageFile(tt.name); got != tt.want {
			t.Errorf("IsImageFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFindImages(t *testing.T) {
	dir := t.TempDir()

	files := []string{"b.png", "a.jpg", "skip.txt", "c.GIF"}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	os.MkdirAll(filepath.Join(dir, "sub.png"), 0755) // directory, must be skipped

	paths, err := FindImages(dir)
	if err != nil {
		t.Fatalf("FindImages failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.png"),
		filepath.Join(dir, "c.GIF"),
	}
	if len(paths) != len(want) {
		t.Fatalf("Expected %d images, got %d: %v", len(want), len(paths), paths)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %s, want %s", i, paths[i], want[i])
		}
	}
}

func TestChooseWorkersDefaults(t *testing.T) {
	// Zero request falls back to NumCPU (possibly memory-capped).
	workers := ChooseWorkers(0, 100*100)
	if workers < 1 {
		t.Errorf("Expected at least one worker, got %d", workers)
	}

	// Tiny images should never be capped below the request on any sane
	// test machine.
	if got := ChooseWorkers(2, 10*10); got != 2 {
		t.Errorf("Expected 2 workers for tiny images, got %d", got)
	}
}
