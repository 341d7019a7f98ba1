package report

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/papercrawl/papercrawl/internal/model"
)

func testSummary() *Summary {
	start := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	return &Summary{
		StartURL:  "https://example.com",
		OutputDir: "/tmp/out",
		Stats: model.RunStatistics{
			URLsCrawled:      12,
			ArtifactsCreated: 10,
			Errors:           2,
			StartTime:        start,
			EndTime:          start.Add(90 * time.Second),
		},
	}
}

// TestSimpleWriter tests the terminal summary format.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	n, err := NewSimpleWriter(&sb).Write(testSummary())
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if n != sb.Len() {
		t.Errorf("reported %d bytes, wrote %d", n, sb.Len())
	}

	out := sb.String()
	for _, want := range []string{
		"CRAWL STATISTICS",
		"Start URL:      https://example.com",
		"URLs Crawled:   12",
		"PDFs Created:   10",
		"Errors:         2",
		"90.0 seconds (1.5 minutes)",
		"Output Folder:  /tmp/out",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// TestMarkdownWriter tests the Markdown summary format.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	if _, err := NewMarkdownWriter(&sb).Write(testSummary()); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	out := sb.String()
	for _, want := range []string{
		"# Crawl Report",
		"`https://example.com`",
		"URLs Crawled",
		"12",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// TestJSONWriter tests the machine-readable summary format.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	if _, err := NewJSONWriter(&sb, WithPrettyPrint()).Write(testSummary()); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(sb.String()), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["start_url"] != "https://example.com" {
		t.Errorf("start_url = %v", got["start_url"])
	}
	if got["pdfs_created"] != float64(10) {
		t.Errorf("pdfs_created = %v", got["pdfs_created"])
	}
	if got["duration_seconds"] != float64(90) {
		t.Errorf("duration_seconds = %v", got["duration_seconds"])
	}
}

// failingWriter always errors, for MultiWriter error propagation.
type failingWriter struct{}

func (failingWriter) Write(_ *Summary) (int, error) {
	return 0, errors.New("write failed")
}

// TestMultiWriter tests fan-out and error propagation.
func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all destinations", func(t *testing.T) {
		t.Parallel()

		var a, b strings.Builder
		mw := NewMultiWriter(NewSimpleWriter(&a), NewSimpleWriter(&b))

		if _, err := mw.Write(testSummary()); err != nil {
			t.Fatalf("Write() error: %v", err)
		}
		if a.String() != b.String() {
			t.Error("destinations received different output")
		}
		if a.Len() == 0 {
			t.Error("no output written")
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var after strings.Builder
		mw := NewMultiWriter(failingWriter{}, NewSimpleWriter(&after))

		if _, err := mw.Write(testSummary()); err == nil {
			t.Fatal("expected error from failing writer")
		}
		if after.Len() != 0 {
			t.Error("writer after the failure was still invoked")
		}
	})
}
