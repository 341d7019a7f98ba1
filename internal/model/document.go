package model

import (
	"strings"
	"unicode"
)

// MinContentLength is the fewest non-whitespace characters a document
// needs to be worth an artifact. Shorter documents are counted as
// page-level errors and skipped.
const MinContentLength = 10

// ExtractedDocument is the cleaned textual content of a single crawled page
// together with its position in the generation sequence.
//
// The sequence index and total are fixed at generation time, after the full
// discovery phase has completed, because only then is the final page count
// known. Documents are consumed immediately into an artifact and not retained.
type ExtractedDocument struct {
	// URL is the normalized source URL the content was extracted from.
	URL string

	// Lines holds the cleaned text, one logical line per block boundary.
	// Every line is non-empty and has passed all noise filters.
	Lines []string

	// Sequence is the 1-based position of this document in the run.
	Sequence int

	// Total is the number of documents in the run.
	Total int
}

// Text returns the document content as a single newline-joined string.
func (d *ExtractedDocument) Text() string {
	return strings.Join(d.Lines, "\n")
}

// ContentLength returns the number of non-whitespace characters in the
// document. The pipeline skips documents below a minimum content length
// because retrying cannot produce more content.
func (d *ExtractedDocument) ContentLength() int {
	n := 0
	for _, line := range d.Lines {
		for _, r := range line {
			if !unicode.IsSpace(r) {
				n++
			}
		}
	}
	return n
}
