// Package keywords derives representative terms from extracted page text
// and turns them into collision-resistant artifact file names.
//
// The extractor is statistical: candidate words and short phrases are
// scored by frequency and position, deduplicated at the stem level, and
// cleaned for file-name use. When too few candidates survive, a simpler
// frequency count over stopword-filtered words fills the gap. The
// extractor never returns an empty list; pages without usable text get
// the generic term "content".
package keywords
