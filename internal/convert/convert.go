// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs the OCR conversion pipeline: each source image is
// recognized in turn and the results are folded into an ordered list of page
// results. Recognition failures are isolated per image; a failed page carries
// a sentinel text instead of aborting the batch.
package convert

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/notescan/internal/ocr"
	"github.com/pdiddy/notescan/pkg/types"
)

// ErrorSentinel returns the fixed placeholder text substituted for a page
// whose image could not be decoded or recognized.
func ErrorSentinel(name string) string {
	return fmt.Sprintf("[Error processing image: %s]", name)
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Recognized int
	Empty      int
	Failed     int

	// Pages lists one result per source image, in enumeration order,
	// regardless of per-image failures.
	Pages []types.PageResult
}

// Total returns the total number of images processed.
func (r BatchResult) Total() int {
	return r.Recognized + r.Empty + r.Failed
}

// HasFailures reports whether any image failed recognition.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ProcessImage runs OCR on a single image and always yields a PageResult:
// decode or recognition errors are reported to w and replaced by the error
// sentinel, never returned. This keeps the batch fold free of
// failure-handling logic.
func ProcessImage(ctx context.Context, engine ocr.Engine, rec types.ImageRecord, w io.Writer, opts ...ocr.InputOption) types.PageResult {
	in, err := ocr.LoadInput(rec.Path, opts...)
	if err != nil {
		fmt.Fprintf(w, "  error: %v\n", err)
		return types.PageResult{Image: rec, Text: ErrorSentinel(rec.Name), Status: types.PageFailed}
	}

	res, err := engine.Recognize(ctx, in)
	if err != nil {
		fmt.Fprintf(w, "  error: recognizing %s: %v\n", rec.Name, err)
		return types.PageResult{Image: rec, Text: ErrorSentinel(rec.Name), Status: types.PageFailed}
	}

	if res.PlainText == "" {
		return types.PageResult{Image: rec, Status: types.PageEmpty}
	}
	return types.PageResult{Image: rec, Text: res.PlainText, Status: types.PageRecognized}
}

// ProcessBatch folds the ordered image list into page results, printing
// per-image progress to w and a summary at the end. The number and order of
// results always equals the number and order of records.
func ProcessBatch(ctx context.Context, engine ocr.Engine, records []types.ImageRecord, w io.Writer, opts ...ocr.InputOption) BatchResult {
	result := BatchResult{Pages: make([]types.PageResult, 0, len(records))}

	for i, rec := range records {
		fmt.Fprintf(w, "processing %d/%d: %s\n", i+1, len(records), rec.Name)

		page := ProcessImage(ctx, engine, rec, w, opts...)
		switch page.Status {
		case types.PageRecognized:
			result.Recognized++
		case types.PageEmpty:
			result.Empty++
		case types.PageFailed:
			result.Failed++
		}
		result.Pages = append(result.Pages, page)
	}

	fmt.Fprintf(w, "\nBatch summary: %d recognized, %d empty, %d failed (total: %d)\n",
		result.Recognized, result.Empty, result.Failed, result.Total())
	return result
}
