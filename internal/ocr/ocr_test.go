// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeTestImage encodes a small grayscale PNG to dir and returns its path.
// Grayscale exercises the three-channel normalization in LoadInput.
func writeTestImage(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 3)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode image: %v", err)
	}
	return path
}

func TestLoadInput(t *testing.T) {
	path := writeTestImage(t, t.TempDir(), "note.png")

	in, err := LoadInput(path, WithLanguages("eng", "deu"), WithDPI(300))
	if err != nil {
		t.Fatalf("LoadInput() error = %v", err)
	}
	if in.ID != path {
		t.Errorf("ID = %q, want %q", in.ID, path)
	}
	if in.Format != ImageFormatPNG {
		t.Errorf("Format = %q, want %q", in.Format, ImageFormatPNG)
	}
	if len(in.Image) == 0 {
		t.Fatal("expected encoded image data")
	}
	if !reflect.DeepEqual(in.Languages, []string{"eng", "deu"}) {
		t.Errorf("Languages = %v", in.Languages)
	}
	if in.DPI != 300 {
		t.Errorf("DPI = %d, want 300", in.DPI)
	}

	// The normalized payload must decode to a three-channel color image.
	img, err := png.Decode(bytes.NewReader(in.Image))
	if err != nil {
		t.Fatalf("decoding normalized payload: %v", err)
	}
	if _, ok := img.(*image.Gray); ok {
		t.Error("normalized payload is still grayscale")
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0xffff {
		t.Errorf("unexpected alpha %d at origin", a)
	}
}

func TestLoadInputCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.jpg")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadInput(path); err == nil {
		t.Fatal("expected decode error for corrupt file")
	}
}

func TestLoadInputMissingFile(t *testing.T) {
	if _, err := LoadInput(filepath.Join(t.TempDir(), "gone.jpg")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWithLanguagesCopiesSlice(t *testing.T) {
	langs := []string{"eng"}
	var in Input
	WithLanguages(langs...)(&in)
	langs[0] = "spa"
	if in.Languages[0] != "eng" {
		t.Errorf("languages were not copied: %v", in.Languages)
	}
}

func TestWithLanguagesClearsEmpty(t *testing.T) {
	in := Input{Languages: []string{"eng"}}
	WithLanguages()(&in)
	if in.Languages != nil {
		t.Errorf("expected nil languages, got %v", in.Languages)
	}
}
