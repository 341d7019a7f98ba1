package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs summaries in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the run summary in Markdown format.
func (w *MarkdownWriter) Write(summary *Summary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Crawl Report")
	md.PlainText("")

	duration := summary.Stats.Duration()
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Start URL", "`" + summary.StartURL + "`"},
			{"Started", summary.Stats.StartTime.Format("2006-01-02 15:04:05 MST")},
			{"URLs Crawled", strconv.Itoa(summary.Stats.URLsCrawled)},
			{"PDFs Created", strconv.Itoa(summary.Stats.ArtifactsCreated)},
			{"Errors", strconv.Itoa(summary.Stats.Errors)},
			{"Duration", fmt.Sprintf("%.1fs", duration.Seconds())},
			{"Output Folder", "`" + summary.OutputDir + "`"},
		},
	})
	md.PlainText("")

	w.writeAlert(md, summary)

	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by papercrawl*")

	return len(md.String()), md.Build()
}

// writeAlert highlights the run outcome.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, summary *Summary) {
	switch {
	case summary.Stats.ArtifactsCreated == 0 && summary.Stats.Errors > 0:
		md.Warningf("No documents were created; %d page(s) failed.", summary.Stats.Errors)
	case summary.Stats.Errors > 0:
		md.Note(fmt.Sprintf("%d page(s) failed and were skipped.", summary.Stats.Errors))
	default:
		md.Tip(fmt.Sprintf("All %d pages processed without errors.", summary.Stats.URLsCrawled))
	}
	md.PlainText("")
}
