package document

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/papercrawl/papercrawl/internal/model"
)

const (
	// maxHeadingLength is the longest line still considered a heading
	// when fully uppercase.
	maxHeadingLength = 100

	// maxParagraphLength is the longest line rendered as one body block.
	// Longer lines are split at sentence boundaries.
	maxParagraphLength = 500

	// timestampLayout renders the creation time in the metadata block.
	timestampLayout = "2006-01-02 15:04:05"

	// emptyContentPlaceholder is shown when a page yielded no text.
	emptyContentPlaceholder = "Kein Textinhalt verfügbar"
)

// Assemble builds the ordered block sequence for one page document:
// title and metadata header, the cleaned content lines classified into
// headings and body paragraphs, and a pagination footer.
func Assemble(text, pageURL string, sequence, total int, kws []string, now time.Time) []model.Block {
	blocks := []model.Block{
		{Kind: model.BlockTitle, Text: fmt.Sprintf("papercrawl - Seite %d/%d", sequence, total)},
		{Kind: model.BlockMeta, Text: "URL: " + pageURL},
		{Kind: model.BlockMeta, Text: "Erstellt: " + now.Format(timestampLayout)},
		{Kind: model.BlockMeta, Text: "Schlüsselwörter: " + strings.Join(kws, ", ")},
		{Kind: model.BlockSpacer},
		{Kind: model.BlockDivider},
		{Kind: model.BlockSpacer},
	}

	blocks = append(blocks, contentBlocks(text)...)

	blocks = append(blocks,
		model.Block{Kind: model.BlockSpacer},
		model.Block{Kind: model.BlockDivider},
		model.Block{Kind: model.BlockFooter, Text: fmt.Sprintf("Seite %d von %d | papercrawl", sequence, total)},
	)
	return blocks
}

// contentBlocks classifies each text line into a block. Empty lines
// become spacers, short all-uppercase lines become headings, and
// overlong lines are split at sentence boundaries into separate body
// paragraphs.
func contentBlocks(text string) []model.Block {
	if strings.TrimSpace(text) == "" {
		return []model.Block{{Kind: model.BlockBody, Text: emptyContentPlaceholder}}
	}

	var blocks []model.Block
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			blocks = append(blocks, model.Block{Kind: model.BlockSpacer})
		case isHeading(line):
			blocks = append(blocks, model.Block{Kind: model.BlockHeading, Text: line})
		case utf8.RuneCountInString(line) > maxParagraphLength:
			for _, sentence := range splitSentences(line) {
				blocks = append(blocks, model.Block{Kind: model.BlockBody, Text: sentence})
			}
		default:
			blocks = append(blocks, model.Block{Kind: model.BlockBody, Text: line})
		}
	}
	return blocks
}

// isHeading reports whether the line is short and fully uppercase: every
// cased character uppercase, with at least one cased character present.
func isHeading(line string) bool {
	if utf8.RuneCountInString(line) >= maxHeadingLength {
		return false
	}

	cased := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// splitSentences breaks a long line after sentence-ending punctuation
// followed by whitespace. Trailing text without punctuation forms the
// last sentence.
func splitSentences(line string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(line)
	for i, r := range runes {
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
