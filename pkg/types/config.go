// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConvertConfig holds settings for the conversion stage.
type ConvertConfig struct {
	// PhotosDir is the directory holding the source page images.
	PhotosDir string `json:"photos_dir" yaml:"photos_dir"`

	// OutputPath is the path of the assembled LaTeX document.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Suffix is the image file extension to include, matched
	// case-insensitively (e.g. ".jpg").
	Suffix string `json:"suffix" yaml:"suffix"`

	// Languages lists OCR language hints (e.g. "eng", "deu").
	Languages []string `json:"languages,omitempty" yaml:"languages,omitempty"`

	// DPI is the effective dots-per-inch hint passed to the OCR engine;
	// zero means unknown.
	DPI int `json:"dpi,omitempty" yaml:"dpi,omitempty"`
}

// IndexConfig holds settings for the page index.
type IndexConfig struct {
	// IndexDir is the directory containing the SQLite index database.
	IndexDir string `json:"index_dir" yaml:"index_dir"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	Index   IndexConfig   `json:"index" yaml:"index"`
}
