// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notescan/internal/convert"
	"github.com/pdiddy/notescan/internal/index"
	"github.com/pdiddy/notescan/internal/latex"
	"github.com/pdiddy/notescan/internal/ocr"
	"github.com/pdiddy/notescan/internal/scan"
	"github.com/pdiddy/notescan/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Run OCR over the photos directory and assemble a LaTeX document",
	Long: `Convert enumerates the image files in the photos directory in ascending
filename order, runs OCR on each, and writes a single LaTeX document with one
section per page. A page whose recognition fails renders as an error sentinel
section; the batch is never aborted by a single bad image.

A YAML manifest describing the run is written next to the output document.
With --index, the recognized text is also ingested into the local page index.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("photos-dir", "photos", "directory holding the source page images")
	convertCmd.Flags().String("output", "notes.tex", "path of the assembled LaTeX document")
	convertCmd.Flags().String("suffix", ".jpg", "image file extension to include (case-insensitive)")
	convertCmd.Flags().StringSlice("lang", nil, "OCR language hints (e.g. eng, deu)")
	convertCmd.Flags().Int("dpi", 0, "DPI hint passed to the OCR engine (0 = unknown)")
	convertCmd.Flags().Bool("index", false, "also ingest recognized text into the page index")
	convertCmd.Flags().String("index-dir", "index", "directory containing the page index database")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	photosDir, _ := cmd.Flags().GetString("photos-dir")
	output, _ := cmd.Flags().GetString("output")
	suffix, _ := cmd.Flags().GetString("suffix")
	langs, _ := cmd.Flags().GetStringSlice("lang")
	dpi, _ := cmd.Flags().GetInt("dpi")
	ingest, _ := cmd.Flags().GetBool("index")
	indexDir, _ := cmd.Flags().GetString("index-dir")

	cfg := types.ConvertConfig{
		PhotosDir:  photosDir,
		OutputPath: output,
		Suffix:     suffix,
		Languages:  langs,
		DPI:        dpi,
	}

	records, err := scan.Enumerate(cfg.PhotosDir, cfg.Suffix)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Printf("No images found in %s\n", cfg.PhotosDir)
		return nil
	}
	fmt.Printf("Found %d images to process\n", len(records))

	engine := ocr.NewTesseractEngine()
	opts := []ocr.InputOption{}
	if len(cfg.Languages) > 0 {
		opts = append(opts, ocr.WithLanguages(cfg.Languages...))
	}
	if cfg.DPI > 0 {
		opts = append(opts, ocr.WithDPI(cfg.DPI))
	}

	ctx := context.Background()
	result := convert.ProcessBatch(ctx, engine, records, os.Stdout, opts...)

	doc := latex.Assemble(result.Pages)
	if err := latex.WriteDocument(cfg.OutputPath, doc); err != nil {
		return err
	}
	fmt.Printf("LaTeX document created: %s\n", cfg.OutputPath)

	manifest := convert.NewManifest(cfg.OutputPath, engine.Name(), result.Pages)
	if err := convert.WriteManifest(cfg.OutputPath+".yaml", manifest); err != nil {
		fmt.Fprintf(os.Stderr, "warning: manifest write failed: %v\n", err)
	}

	if ingest {
		if err := ingestRun(ctx, indexDir, cfg.OutputPath, engine.Name(), result.Pages); err != nil {
			fmt.Fprintf(os.Stderr, "warning: index ingest failed: %v\n", err)
		}
	}

	return nil
}

// ingestRun records the run in the page index. Index failures are reported
// as warnings by the caller; the written document stays valid either way.
func ingestRun(ctx context.Context, indexDir, document, engine string, pages []types.PageResult) error {
	store, err := index.NewStore(types.IndexConfig{IndexDir: indexDir})
	if err != nil {
		return err
	}
	defer store.Close()

	runID, err := store.IngestRun(ctx, document, engine, pages)
	if err != nil {
		return err
	}
	fmt.Printf("Indexed run %d (%d pages)\n", runID, len(pages))
	return nil
}
