// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/notescan/pkg/types"
)

// Manifest records one conversion run: which document was produced, by which
// engine, from which pages. It is written as a YAML sidecar next to the
// output document.
type Manifest struct {
	// CreatedAt is the run timestamp.
	CreatedAt time.Time `yaml:"created_at"`

	// Document is the path of the assembled LaTeX document.
	Document string `yaml:"document"`

	// Engine names the OCR engine that produced the page text.
	Engine string `yaml:"engine"`

	// Pages lists the per-page outcomes in document order.
	Pages []types.PageResult `yaml:"pages"`
}

// NewManifest builds a manifest for a completed run.
func NewManifest(document, engine string, pages []types.PageResult) Manifest {
	return Manifest{
		CreatedAt: time.Now().UTC(),
		Document:  document,
		Engine:    engine,
		Pages:     pages,
	}
}

// WriteManifest serializes the manifest to path as YAML.
func WriteManifest(path string, m Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads a previously written manifest.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}
