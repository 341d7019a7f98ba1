package report

import (
	"fmt"
	"io"
	"strings"
)

// SimpleWriter outputs human-readable text summaries.
// This format is designed for terminal display at the end of a run.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the run summary in human-readable format.
func (w *SimpleWriter) Write(summary *Summary) (int, error) {
	var sb strings.Builder

	rule := strings.Repeat("=", 70)
	duration := summary.Stats.Duration()

	sb.WriteString("\n")
	sb.WriteString(rule)
	sb.WriteString("\n")
	sb.WriteString("CRAWL STATISTICS\n")
	sb.WriteString(rule)
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Start URL:      %s\n", summary.StartURL))
	sb.WriteString(fmt.Sprintf("URLs Crawled:   %d\n", summary.Stats.URLsCrawled))
	sb.WriteString(fmt.Sprintf("PDFs Created:   %d\n", summary.Stats.ArtifactsCreated))
	sb.WriteString(fmt.Sprintf("Errors:         %d\n", summary.Stats.Errors))
	sb.WriteString(fmt.Sprintf("Duration:       %.1f seconds (%.1f minutes)\n",
		duration.Seconds(), duration.Minutes()))
	sb.WriteString(fmt.Sprintf("Output Folder:  %s\n", summary.OutputDir))
	sb.WriteString(rule)
	sb.WriteString("\n")

	return w.output.Write([]byte(sb.String()))
}
