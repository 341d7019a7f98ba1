package report

import (
	"encoding/json"
	"io"
	"time"
)

// JSONWriter outputs summaries in JSON format.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = ""
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter:   newBaseWriter(output),
		indent:       false,
		indentPrefix: "",
		indentString: "",
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// jsonSummary flattens the Summary into stable wire field names.
//
// Design decision: We map to a dedicated wire struct rather than tagging
// Summary directly because this allows output-specific fields without
// polluting the core data structure.
type jsonSummary struct {
	StartURL         string    `json:"start_url"`
	OutputDir        string    `json:"output_dir"`
	URLsCrawled      int       `json:"urls_crawled"` //nolint:tagliatelle // URLs is standard acronym
	ArtifactsCreated int       `json:"pdfs_created"`
	Errors           int       `json:"errors"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	DurationSeconds  float64   `json:"duration_seconds"`
}

// Write outputs the run summary in JSON format.
func (w *JSONWriter) Write(summary *Summary) (int, error) {
	wire := jsonSummary{
		StartURL:         summary.StartURL,
		OutputDir:        summary.OutputDir,
		URLsCrawled:      summary.Stats.URLsCrawled,
		ArtifactsCreated: summary.Stats.ArtifactsCreated,
		Errors:           summary.Stats.Errors,
		StartTime:        summary.Stats.StartTime,
		EndTime:          summary.Stats.EndTime,
		DurationSeconds:  summary.Stats.Duration().Seconds(),
	}

	var data []byte
	var err error
	if w.indent {
		data, err = json.MarshalIndent(wire, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(wire)
	}
	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
