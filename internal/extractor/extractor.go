package extractor

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Line filter thresholds. Fixed, not configuration: output parity across
// runs depends on them.
const (
	// maxColons is the highest colon count a line may carry. More colons
	// indicate a structured key:value dump rather than prose.
	maxColons = 5

	// maxDateTokens is the highest count of d.m date fragments a line may
	// carry. More indicate a schedule row.
	maxDateTokens = 5

	// maxWeekdayTokens is the highest count of weekday-name words a line
	// may carry. More indicate an opening-hours or timetable row.
	maxWeekdayTokens = 3
)

// structuralSelector matches nodes that never contain prose: script and
// style payloads, embedded frames, navigation chrome, and all tabular
// markup. Tables on the target sites encode timetables, not content.
const structuralSelector = "script, style, meta, link, noscript, svg, iframe, " +
	"nav, header, footer, aside, " +
	"table, tbody, thead, tr, td, th"

// noiseWords flag container elements as schedule or booking widgets when
// they appear in a class or id attribute. German and English variants.
var noiseWords = []string{
	"schedule", "timetable", "kursplan", "course", "zeitplan",
	"booking", "calendar", "datepicker", "event", "kalender",
	"termin", "buchen", "reservation", "availability",
}

// weekdays holds lowercase weekday tokens, German and English.
var weekdays = map[string]bool{
	"mon": true, "tue": true, "wed": true, "thu": true,
	"fri": true, "sat": true, "sun": true,
	"montag": true, "dienstag": true, "mittwoch": true, "donnerstag": true,
	"freitag": true, "samstag": true, "sonntag": true,
}

// datePattern matches date-like fragments such as 12.04 or 3.7.
var datePattern = regexp.MustCompile(`\d{1,2}\.\d{1,2}`)

// Extractor strips noise from rendered markup and returns cleaned lines.
// Stateless and safe for concurrent use.
type Extractor struct{}

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses markup, removes non-prose nodes, and returns the
// surviving text lines in document order. Unparseable input yields nil
// rather than an error; a page without extractable prose is a normal
// outcome, handled downstream.
//
// Extract is idempotent: plain text round-trips unchanged because the
// parser wraps it in a bare body and every line passes the filters again.
func (e *Extractor) Extract(markup string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	doc.Find(structuralSelector).Remove()
	removeNoiseContainers(doc)

	var lines []string
	for _, root := range doc.Selection.Nodes {
		collectLines(root, &lines)
	}
	return lines
}

// removeNoiseContainers drops div and section elements whose class or id
// attribute contains a schedule or booking marker word.
func removeNoiseContainers(doc *goquery.Document) {
	doc.Find("div, section").Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		id, _ := s.Attr("id")
		marker := strings.ToLower(class + " " + id)

		for _, word := range noiseWords {
			if strings.Contains(marker, word) {
				s.Remove()
				return
			}
		}
	})
}

// collectLines walks the node tree in document order, splitting each text
// node on newlines and appending every trimmed segment that survives the
// line filters.
func collectLines(n *html.Node, lines *[]string) {
	if n.Type == html.TextNode {
		for _, raw := range strings.Split(n.Data, "\n") {
			line := strings.TrimSpace(raw)
			if keepLine(line) {
				*lines = append(*lines, line)
			}
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectLines(c, lines)
	}
}

// keepLine applies the per-line density heuristics.
func keepLine(line string) bool {
	if line == "" {
		return false
	}
	if strings.Count(line, ":") > maxColons {
		return false
	}
	if len(datePattern.FindAllString(line, -1)) > maxDateTokens {
		return false
	}

	count := 0
	for _, word := range strings.Fields(strings.ToLower(line)) {
		if weekdays[word] {
			count++
		}
	}
	return count <= maxWeekdayTokens
}
