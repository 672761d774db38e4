// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// LoadInput decodes the image file at path, normalizes it to three-channel
// color, and re-encodes it to PNG for submission to an engine. Source photos
// arrive in whatever color mode the camera produced (grayscale, palette,
// CMYK); engines get a uniform representation. The input ID is the path as
// given.
func LoadInput(path string, opts ...InputOption) (Input, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return Input{}, fmt.Errorf("decoding image %s: %w", path, err)
	}

	// Clone converts any decoded color model to NRGBA.
	normalized := imaging.Clone(img)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, normalized, imaging.PNG); err != nil {
		return Input{}, fmt.Errorf("encoding image %s: %w", path, err)
	}

	in := Input{
		ID:     path,
		Image:  buf.Bytes(),
		Format: ImageFormatPNG,
	}
	for _, opt := range opts {
		opt(&in)
	}
	return in, nil
}
