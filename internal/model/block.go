package model

// BlockKind identifies the role of a content block within an artifact.
// The document renderer maps each kind to its own typography.
type BlockKind int

// Block kinds in the order they typically appear in an artifact.
const (
	// BlockTitle is the artifact title stating the sequence position.
	BlockTitle BlockKind = iota

	// BlockMeta is a metadata line (URL, timestamp, keywords).
	BlockMeta

	// BlockDivider is a horizontal rule separating sections.
	BlockDivider

	// BlockHeading is a short, fully upper-case line treated as a heading.
	BlockHeading

	// BlockBody is a regular paragraph of prose.
	BlockBody

	// BlockSpacer is vertical whitespace between paragraphs.
	BlockSpacer

	// BlockFooter is the closing line restating pagination.
	BlockFooter
)

// String returns the block kind name for logging.
func (k BlockKind) String() string {
	switch k {
	case BlockTitle:
		return "title"
	case BlockMeta:
		return "meta"
	case BlockDivider:
		return "divider"
	case BlockHeading:
		return "heading"
	case BlockBody:
		return "body"
	case BlockSpacer:
		return "spacer"
	case BlockFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// Block is one typed element of the structured content model handed to the
// document renderer. Blocks are ordered; the renderer lays them out top to
// bottom and paginates as needed.
type Block struct {
	// Kind determines how the renderer styles this block.
	Kind BlockKind

	// Text is the block content. Empty for dividers and spacers.
	Text string
}
