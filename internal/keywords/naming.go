package keywords

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// maxFilenameLength bounds the full artifact name. Over the bound
	// the keyword segment is dropped entirely; sequence, timestamp, and
	// domain always survive.
	maxFilenameLength = 150

	// maxKeywordSegment caps the joined keyword part of the name.
	maxKeywordSegment = 50

	// maxDomainSegment caps the domain part of the name.
	maxDomainSegment = 30

	// timestampLayout renders the run time compactly and sortably.
	timestampLayout = "20060102_150405"
)

var (
	// fileUnsafePattern removes characters that do not belong in a file
	// name segment. Whitespace survives here and is collapsed after.
	fileUnsafePattern = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)

	// whitespaceRun collapses any whitespace run to one underscore.
	whitespaceRun = regexp.MustCompile(`\s+`)

	// domainUnsafePattern replaces host characters like dots and colons.
	domainUnsafePattern = regexp.MustCompile(`[^\p{L}\p{N}_-]`)
)

// ArtifactName builds the file name for one generated document:
// sequence, timestamp, keywords, and domain, joined with underscores.
// Deterministic given its inputs; uniqueness within a run comes from the
// sequence number, across runs from the timestamp.
func ArtifactName(pageURL string, kws []string, sequence int, now time.Time) string {
	domain := domainSegment(pageURL)
	timestamp := now.Format(timestampLayout)
	keywordStr := keywordSegment(kws)

	name := fmt.Sprintf("%03d_%s_%s_%s.pdf", sequence, timestamp, keywordStr, domain)
	if utf8.RuneCountInString(name) > maxFilenameLength {
		name = fmt.Sprintf("%03d_%s_%s.pdf", sequence, timestamp, domain)
	}
	return name
}

// keywordSegment joins the keywords, caps the length, and rewrites the
// result to file-name-safe characters.
func keywordSegment(kws []string) string {
	joined := truncate(strings.Join(kws, "_"), maxKeywordSegment)
	joined = fileUnsafePattern.ReplaceAllString(joined, "")
	return whitespaceRun.ReplaceAllString(joined, "_")
}

// domainSegment derives the name's domain part from the page URL.
// An unparseable URL yields an empty segment rather than an error; the
// rest of the name still identifies the artifact.
func domainSegment(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	host := strings.ReplaceAll(u.Hostname(), "www.", "")
	host = domainUnsafePattern.ReplaceAllString(host, "_")
	return truncate(host, maxDomainSegment)
}

// truncate caps s at n characters, not bytes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
