// Package document builds the printable content model for one crawled
// page and renders it to a PDF file.
//
// Assembly and rendering are separate steps. The assembler turns cleaned
// text plus metadata into an ordered sequence of typed blocks (title,
// metadata, headings, body paragraphs, footer); the renderer consumes
// blocks and geometry without knowing where the text came from. Tests
// exercise the assembler directly and never need a PDF library.
package document
