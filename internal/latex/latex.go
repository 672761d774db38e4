// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package latex assembles OCR page results into a single LaTeX document.
package latex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/notescan/pkg/types"
)

const header = `\documentclass[12pt,a4paper]{article}
\usepackage[utf8]{inputenc}
\usepackage{graphicx}
\usepackage{geometry}
\geometry{margin=1in}

\title{Converted Notes from Images}
\author{OCR Conversion System}
\date{\today}

\begin{document}

\maketitle

\section*{Introduction}
This document contains text extracted from handwritten notes using OCR (Optical Character Recognition).

`

const footer = `
\end{document}
`

// emptyPlaceholder renders instead of an empty verbatim block, so the
// document never contains a blank, unexplained section.
const emptyPlaceholder = `\textit{[No text extracted from this image]}`

// replacements maps each LaTeX special character to its escaped form.
var replacements = map[rune]string{
	'&':  `\&`,
	'%':  `\%`,
	'$':  `\$`,
	'#':  `\#`,
	'_':  `\_`,
	'{':  `\{`,
	'}':  `\}`,
	'~':  `\textasciitilde{}`,
	'^':  `\textasciicircum{}`,
	'\\': `\textbackslash{}`,
}

// Escape substitutes LaTeX special characters in s. The substitution is a
// single left-to-right pass over the original string; output is never
// re-scanned, so backslashes introduced by one replacement cannot be
// escaped again by another.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := replacements[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

const verbatimEnd = `\end{verbatim}`

// sanitizeVerbatim breaks any occurrence of the verbatim terminator inside
// OCR text so the text cannot close the block early. The inserted space
// keeps the characters legible while defusing the token.
func sanitizeVerbatim(s string) string {
	return strings.ReplaceAll(s, verbatimEnd, `\end {verbatim}`)
}

// Assemble builds the document from page results, in input order: a fixed
// header, one section per page, and a fixed footer. Section numbering comes
// from the position in pages, not from the source filenames. Filenames are
// escaped for the attribution line; page text is emitted verbatim, with the
// placeholder sentence standing in for pages where OCR found nothing.
func Assemble(pages []types.PageResult) []byte {
	var b strings.Builder
	b.WriteString(header)

	for i, page := range pages {
		fmt.Fprintf(&b, "\n\\section{Page %d}\n\n", i+1)

		fmt.Fprintf(&b, "\\textit{Source: \\texttt{%s}}\n\n", Escape(page.Image.Name))

		if page.Text != "" {
			b.WriteString("\\begin{verbatim}\n")
			b.WriteString(sanitizeVerbatim(page.Text))
			b.WriteString("\n\\end{verbatim}\n")
		} else {
			b.WriteString(emptyPlaceholder)
			b.WriteString("\n")
		}

		b.WriteString("\n\\vspace{1em}\n")
	}

	b.WriteString(footer)
	return []byte(b.String())
}

// WriteDocument writes the assembled document to path atomically: the bytes
// go to a temp file in the destination directory which is renamed into place
// on success. A write failure never leaves a partial document at path.
func WriteDocument(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".notescan-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing document: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing document: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming document into place: %w", err)
	}
	return nil
}
