// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PageStatus indicates the OCR outcome for a single page image.
type PageStatus string

const (
	// PageRecognized means OCR produced non-empty text for the page.
	PageRecognized PageStatus = "recognized"

	// PageEmpty means OCR ran successfully but found no text.
	PageEmpty PageStatus = "empty"

	// PageFailed means decoding or recognition failed; the page text holds
	// the error sentinel instead of recognized content.
	PageFailed PageStatus = "failed"
)

// ImageRecord identifies one source image in a conversion run.
type ImageRecord struct {
	// Name is the image file basename, unique within a run.
	Name string `json:"name" yaml:"name"`

	// Path is the full filesystem path to the image file.
	Path string `json:"path" yaml:"path"`

	// Ordinal is the 1-based position assigned by ascending filename sort.
	// It is independent of any numbering embedded in the filename.
	Ordinal int `json:"ordinal" yaml:"ordinal"`
}

// PageResult pairs a source image with the text OCR extracted from it.
// A failed recognition still yields a PageResult so the assembled document
// keeps one section per image.
type PageResult struct {
	// Image is the source image this page was extracted from.
	Image ImageRecord `json:"image" yaml:"image"`

	// Text is the recognized text, the error sentinel for failed pages, or
	// empty when OCR found nothing.
	Text string `json:"text" yaml:"text"`

	// Status records the recognition outcome.
	Status PageStatus `json:"status" yaml:"status"`
}
