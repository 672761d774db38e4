// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/notescan/internal/ocr"
	"github.com/pdiddy/notescan/pkg/types"
)

// fakeEngine implements ocr.Engine for testing. It returns canned text or an
// error, depending on configuration.
type fakeEngine struct {
	text string
	err  error
}

func (f *fakeEngine) Name() string { return "fake" }

func (f *fakeEngine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	if f.err != nil {
		return ocr.Result{}, f.err
	}
	return ocr.Result{InputID: in.ID, PlainText: f.text}, nil
}

// selectiveEngine returns per-image text or errors keyed by basename.
type selectiveEngine struct {
	texts  map[string]string
	errors map[string]error
}

func (s *selectiveEngine) Name() string { return "selective" }

func (s *selectiveEngine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	name := filepath.Base(in.ID)
	if err, ok := s.errors[name]; ok {
		return ocr.Result{}, err
	}
	return ocr.Result{InputID: in.ID, PlainText: s.texts[name]}, nil
}

// writeImage creates a minimal valid image file so LoadInput can decode it.
func writeImage(t *testing.T, dir, name string) types.ImageRecord {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return types.ImageRecord{Name: name, Path: path}
}

func TestProcessImage(t *testing.T) {
	tests := []struct {
		name       string
		engine     ocr.Engine
		corrupt    bool
		wantText   string
		wantStatus types.PageStatus
		wantLog    string
	}{
		{
			name:       "successful recognition",
			engine:     &fakeEngine{text: "Hello world"},
			wantText:   "Hello world",
			wantStatus: types.PageRecognized,
		},
		{
			name:       "empty recognition",
			engine:     &fakeEngine{text: ""},
			wantText:   "",
			wantStatus: types.PageEmpty,
		},
		{
			name:       "engine failure yields sentinel",
			engine:     &fakeEngine{err: errors.New("tesseract crashed")},
			wantText:   "[Error processing image: note.jpg]",
			wantStatus: types.PageFailed,
			wantLog:    "tesseract crashed",
		},
		{
			name:       "corrupt image yields sentinel",
			engine:     &fakeEngine{text: "never reached"},
			corrupt:    true,
			wantText:   "[Error processing image: note.jpg]",
			wantStatus: types.PageFailed,
			wantLog:    "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			var rec types.ImageRecord
			if tt.corrupt {
				path := filepath.Join(dir, "note.jpg")
				if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
					t.Fatal(err)
				}
				rec = types.ImageRecord{Name: "note.jpg", Path: path}
			} else {
				rec = writeImage(t, dir, "note.jpg")
			}
			rec.Ordinal = 1

			var log bytes.Buffer
			page := ProcessImage(context.Background(), tt.engine, rec, &log)

			if page.Text != tt.wantText {
				t.Errorf("text = %q, want %q", page.Text, tt.wantText)
			}
			if page.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", page.Status, tt.wantStatus)
			}
			if page.Image != rec {
				t.Errorf("image record = %+v, want %+v", page.Image, rec)
			}
			if tt.wantLog != "" && !strings.Contains(log.String(), tt.wantLog) {
				t.Errorf("log %q does not contain %q", log.String(), tt.wantLog)
			}
		})
	}
}

func TestProcessBatchIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	names := []string{"p1.jpg", "p2.jpg", "p3.jpg", "p4.jpg", "p5.jpg"}
	records := make([]types.ImageRecord, len(names))
	for i, n := range names {
		records[i] = writeImage(t, dir, n)
		records[i].Ordinal = i + 1
	}

	// One image among five fails; the other four carry real text.
	engine := &selectiveEngine{
		texts: map[string]string{
			"p1.jpg": "alpha", "p2.jpg": "bravo",
			"p4.jpg": "delta", "p5.jpg": "echo",
		},
		errors: map[string]error{
			"p3.jpg": errors.New("unreadable page"),
		},
	}

	var log bytes.Buffer
	result := ProcessBatch(context.Background(), engine, records, &log)

	if result.Recognized != 4 {
		t.Errorf("recognized = %d, want 4", result.Recognized)
	}
	if result.Failed != 1 {
		t.Errorf("failed = %d, want 1", result.Failed)
	}
	if !result.HasFailures() {
		t.Error("HasFailures should be true")
	}
	if result.Total() != 5 {
		t.Errorf("total = %d, want 5", result.Total())
	}
	if len(result.Pages) != 5 {
		t.Fatalf("pages = %d, want 5", len(result.Pages))
	}

	wantTexts := []string{"alpha", "bravo", "[Error processing image: p3.jpg]", "delta", "echo"}
	for i, page := range result.Pages {
		if page.Image.Name != names[i] {
			t.Errorf("page %d image = %q, want %q", i, page.Image.Name, names[i])
		}
		if page.Text != wantTexts[i] {
			t.Errorf("page %d text = %q, want %q", i, page.Text, wantTexts[i])
		}
	}

	output := log.String()
	for i, n := range names {
		want := fmt.Sprintf("processing %d/5: %s", i+1, n)
		if !strings.Contains(output, want) {
			t.Errorf("missing progress line %q", want)
		}
	}
	if !strings.Contains(output, "Batch summary: 4 recognized, 0 empty, 1 failed (total: 5)") {
		t.Errorf("missing batch summary, got %q", output)
	}
}

func TestProcessBatchEmptyInput(t *testing.T) {
	var log bytes.Buffer
	result := ProcessBatch(context.Background(), &fakeEngine{}, nil, &log)

	if result.Total() != 0 {
		t.Errorf("total = %d, want 0", result.Total())
	}
	if len(result.Pages) != 0 {
		t.Errorf("pages = %d, want 0", len(result.Pages))
	}
}

func TestManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.tex.yaml")

	pages := []types.PageResult{
		{Image: types.ImageRecord{Name: "a.jpg", Ordinal: 1}, Text: "alpha", Status: types.PageRecognized},
		{Image: types.ImageRecord{Name: "b.jpg", Ordinal: 2}, Status: types.PageEmpty},
	}
	m := NewManifest("notes.tex", "tesseract", pages)

	if err := WriteManifest(path, m); err != nil {
		t.Fatalf("WriteManifest() error = %v", err)
	}

	got, err := ReadManifest(path)
	if err != nil {
		t.Fatalf("ReadManifest() error = %v", err)
	}
	if got.Document != "notes.tex" || got.Engine != "tesseract" {
		t.Errorf("manifest header = %q/%q", got.Document, got.Engine)
	}
	if len(got.Pages) != 2 {
		t.Fatalf("pages = %d, want 2", len(got.Pages))
	}
	if got.Pages[0].Text != "alpha" || got.Pages[1].Status != types.PageEmpty {
		t.Errorf("unexpected pages: %+v", got.Pages)
	}
}
