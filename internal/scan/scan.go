// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan enumerates the source images for a conversion run.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/notescan/pkg/types"
)

// Enumerate lists the image files in dir whose extension case-insensitively
// matches suffix, ordered lexicographically ascending by basename. Ordinals
// are assigned from the sorted position, starting at 1. Page order is
// user-visible, so the ordering is part of the contract rather than whatever
// the filesystem happens to return.
//
// A missing directory yields an empty slice, not an error; any other
// directory-read failure propagates, since a partial page set would silently
// produce a wrong document.
func Enumerate(dir, suffix string) ([]types.ImageRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading photos directory %s: %w", dir, err)
	}

	suffix = strings.ToLower(suffix)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.ToLower(filepath.Ext(name)) != suffix {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	records := make([]types.ImageRecord, len(names))
	for i, name := range names {
		records[i] = types.ImageRecord{
			Name:    name,
			Path:    filepath.Join(dir, name),
			Ordinal: i + 1,
		}
	}
	return records, nil
}
