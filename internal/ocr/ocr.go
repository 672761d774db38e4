// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ocr defines a small abstraction for plugging OCR engines into the
// conversion pipeline. The interface is intentionally narrow so engines can be
// backed by native libraries or remote services without leaking
// provider-specific concerns into callers.
package ocr

import "context"

// ImageFormat identifies the content type of an OCR input image.
type ImageFormat string

const (
	ImageFormatPNG  ImageFormat = "image/png"
	ImageFormatJPEG ImageFormat = "image/jpeg"
)

// Input encapsulates a single image submitted for OCR.
type Input struct {
	// ID is a caller-provided identifier echoed back in the Result.
	ID string

	// Image is the encoded image payload in the format specified by Format.
	Image []byte

	// Format declares the image content type.
	Format ImageFormat

	// Languages lists language hints (e.g. "eng", "deu") that providers can
	// use to select trained data.
	Languages []string

	// DPI carries the effective dots-per-inch for the image; zero means
	// unknown.
	DPI int
}

// Result captures OCR output for a single input image.
type Result struct {
	// InputID mirrors the Input.ID that produced this result.
	InputID string

	// PlainText contains the extracted text, whitespace-trimmed. Empty means
	// the engine found no text.
	PlainText string
}

// Engine is the OCR provider contract: one image in, one result out. Any
// engine honoring it is substitutable for the default Tesseract backend.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, input Input) (Result, error)
}

// InputOption mutates an OCR input while it is being built.
type InputOption func(*Input)

// WithLanguages sets language hints on the OCR input.
func WithLanguages(langs ...string) InputOption {
	return func(in *Input) {
		if len(langs) == 0 {
			in.Languages = nil
			return
		}
		in.Languages = append([]string(nil), langs...)
	}
}

// WithDPI sets the DPI hint on the OCR input.
func WithDPI(dpi int) InputOption {
	return func(in *Input) { in.DPI = dpi }
}
